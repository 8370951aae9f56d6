package models

import (
	"time"
)

// Booking is the pre-job intent coming from the public website. A confirmed
// booking can be converted into a scheduled Job by the dashboard.
type Booking struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customer_id"`
	CarID         string        `json:"car_id"`
	ServiceType   ServiceType   `json:"service_type"`
	PreferredDate string        `json:"preferred_date"` // "2006-01-02"
	PreferredTime string        `json:"preferred_time"` // "15:04"
	Status        BookingStatus `json:"status"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
