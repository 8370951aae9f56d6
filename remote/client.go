package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/YarKhan02/Workshop-sub003/utils"
)

// Client talks to the workshop backend API and caches reads. Mutations
// invalidate exactly the keys the dependency table declares for them; a
// failed call leaves the cache untouched and is never retried.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Cache   *Cache
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		Cache:   NewCache(),
	}
}

// fetch serves the key from cache when fresh, otherwise performs a GET and
// caches the raw body. out is decoded either way so a cache hit behaves
// exactly like a remote read.
func (c *Client) fetch(ctx context.Context, op string, key Key, path string, out any) error {
	if body, ok := c.Cache.Get(key); ok {
		if err := json.Unmarshal(body, out); err != nil {
			return &Error{Op: op, Err: err}
		}
		return nil
	}

	body, err := c.do(ctx, op, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Op: op, Err: err}
	}
	c.Cache.Put(key, body)
	return nil
}

// mutate performs a write and, only on success, invalidates the keys the
// dependency table declares for op. recordID may be empty for creates.
func (c *Client) mutate(ctx context.Context, op, method, path string, payload any, recordID string, out any) error {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return &Error{Op: op, Err: err}
		}
		reqBody = bytes.NewReader(encoded)
	}

	body, err := c.do(ctx, op, method, path, reqBody)
	if err != nil {
		return err
	}
	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return &Error{Op: op, Err: err}
		}
	}

	keys := DependentKeys(op, recordID)
	c.Cache.Invalidate(keys...)
	utils.InfoLogger.Printf("remote %s succeeded, invalidated %d cache keys", op, len(keys))
	return nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, &Error{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &Error{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Op: op, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("%s %s: %s", method, path, raw)}
	}
	return raw, nil
}
