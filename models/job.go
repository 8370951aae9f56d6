package models

import (
	"fmt"
	"time"
)

type JobStatus string

const (
	JobScheduled  JobStatus = "scheduled"
	JobInProgress JobStatus = "in_progress"
	JobCompleted  JobStatus = "completed"
	JobDelivered  JobStatus = "delivered"
	JobCancelled  JobStatus = "cancelled"
)

func (s JobStatus) IsValid() bool {
	switch s {
	case JobScheduled, JobInProgress, JobCompleted, JobDelivered, JobCancelled:
		return true
	}
	return false
}

// jobTransitions is the allowed status flow. Delivered and cancelled are
// terminal; cancellation is possible until the car leaves the shop.
var jobTransitions = map[JobStatus][]JobStatus{
	JobScheduled:  {JobInProgress, JobCancelled},
	JobInProgress: {JobCompleted, JobCancelled},
	JobCompleted:  {JobDelivered, JobCancelled},
	JobDelivered:  {},
	JobCancelled:  {},
}

// CanTransition reports whether from -> to is an allowed status change.
// Re-asserting the current status is allowed as a no-op, but terminal
// states admit no change at all, not even a self-loop.
func (s JobStatus) CanTransition(to JobStatus) bool {
	next := jobTransitions[s]
	if s == to {
		return len(next) > 0
	}
	for _, n := range next {
		if n == to {
			return true
		}
	}
	return false
}

type Job struct {
	ID              string      `json:"id"`
	CustomerID      string      `json:"customer_id"`
	CarID           string      `json:"car_id"`
	ServiceType     ServiceType `json:"service_type"`
	Status          JobStatus   `json:"status"`
	ScheduledDate   time.Time   `json:"scheduled_date"`
	AssignedStaffID string      `json:"assigned_staff_id,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	StartedAt       *time.Time  `json:"started_at,omitempty"`
	CompletedAt     *time.Time  `json:"completed_at,omitempty"`
	DeliveredAt     *time.Time  `json:"delivered_at,omitempty"`
	CancelledAt     *time.Time  `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// ApplyStatus moves the job to the given status and maintains the lifecycle
// timestamps. Callers must treat an error as "job unchanged".
func (j *Job) ApplyStatus(to JobStatus, now time.Time) error {
	if !j.Status.CanTransition(to) {
		return fmt.Errorf("invalid job status transition: %s -> %s", j.Status, to)
	}
	j.Status = to
	switch to {
	case JobInProgress:
		if j.StartedAt == nil {
			t := now
			j.StartedAt = &t
		}
	case JobCompleted:
		if j.CompletedAt == nil {
			t := now
			j.CompletedAt = &t
		}
	case JobDelivered:
		if j.DeliveredAt == nil {
			t := now
			j.DeliveredAt = &t
		}
	case JobCancelled:
		if j.CancelledAt == nil {
			t := now
			j.CancelledAt = &t
		}
	}
	return nil
}
