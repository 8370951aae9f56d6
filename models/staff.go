package models

import (
	"time"
)

type Staff struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Role       StaffRole `json:"role"`
	Phone      string    `json:"phone,omitempty"`
	HourlyRate float64   `json:"hourly_rate"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
