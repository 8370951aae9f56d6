package models

import (
	"time"
)

type TimeSlot struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`       // "2006-01-02"
	StartTime   string    `json:"start_time"` // "15:04"
	EndTime     string    `json:"end_time"`
	IsAvailable bool      `json:"is_available"`
	JobID       string    `json:"job_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
