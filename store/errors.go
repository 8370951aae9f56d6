package store

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrSlotTaken          = errors.New("time slot already booked")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotConvertible     = errors.New("only confirmed bookings can be converted")
)
