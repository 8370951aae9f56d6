package remote

import "fmt"

// Error is the typed failure every client call surfaces: which operation
// failed, the HTTP status if one was received, and the underlying cause.
// The cache is never touched when an Error is returned.
type Error struct {
	Op     string
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("remote %s: backend returned %d", e.Op, e.Status)
	}
	return fmt.Sprintf("remote %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
