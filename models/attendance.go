package models

import (
	"time"
)

type Attendance struct {
	ID        string           `json:"id"`
	StaffID   string           `json:"staff_id"`
	Date      string           `json:"date"` // "2006-01-02"
	CheckIn   string           `json:"check_in,omitempty"`
	CheckOut  string           `json:"check_out,omitempty"`
	Status    AttendanceStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
