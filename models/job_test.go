package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJobStatusTransitions(t *testing.T) {
	assert.True(t, JobScheduled.CanTransition(JobInProgress))
	assert.True(t, JobScheduled.CanTransition(JobCancelled))
	assert.True(t, JobInProgress.CanTransition(JobCompleted))
	assert.True(t, JobCompleted.CanTransition(JobDelivered))
	assert.True(t, JobCompleted.CanTransition(JobCancelled))

	// No skipping ahead, no going back.
	assert.False(t, JobScheduled.CanTransition(JobCompleted))
	assert.False(t, JobScheduled.CanTransition(JobDelivered))
	assert.False(t, JobInProgress.CanTransition(JobScheduled))
	assert.False(t, JobCompleted.CanTransition(JobInProgress))

	// Terminal states stay terminal.
	assert.False(t, JobDelivered.CanTransition(JobCancelled))
	assert.False(t, JobCancelled.CanTransition(JobScheduled))

	// Re-asserting the current status is a no-op for live jobs only.
	assert.True(t, JobScheduled.CanTransition(JobScheduled))
	assert.True(t, JobInProgress.CanTransition(JobInProgress))
	assert.False(t, JobDelivered.CanTransition(JobDelivered))
	assert.False(t, JobCancelled.CanTransition(JobCancelled))
}

func TestApplyStatusSetsLifecycleTimestamps(t *testing.T) {
	now := time.Now()
	job := Job{Status: JobScheduled}

	assert.NoError(t, job.ApplyStatus(JobInProgress, now))
	assert.NotNil(t, job.StartedAt)
	assert.Equal(t, now, *job.StartedAt)
	assert.Nil(t, job.CompletedAt)

	later := now.Add(2 * time.Hour)
	assert.NoError(t, job.ApplyStatus(JobCompleted, later))
	assert.NotNil(t, job.CompletedAt)
	assert.Equal(t, later, *job.CompletedAt)

	assert.NoError(t, job.ApplyStatus(JobDelivered, later.Add(time.Hour)))
	assert.NotNil(t, job.DeliveredAt)
}

func TestApplyStatusRejectsInvalidTransition(t *testing.T) {
	job := Job{Status: JobScheduled}
	err := job.ApplyStatus(JobDelivered, time.Now())
	assert.Error(t, err)
	assert.Equal(t, JobScheduled, job.Status)
	assert.Nil(t, job.DeliveredAt)
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, ServiceCeramicCoating.IsValid())
	assert.False(t, ServiceType("oil_change").IsValid())

	assert.True(t, PaymentPartiallyPaid.IsValid())
	assert.False(t, PaymentStatus("overdue").IsValid())

	assert.True(t, BookingConverted.IsValid())
	assert.False(t, BookingStatus("done").IsValid())

	assert.True(t, CategorySpareParts.IsValid())
	assert.False(t, InventoryCategory("misc").IsValid())

	assert.True(t, RoleDetailer.IsValid())
	assert.False(t, StaffRole("janitor").IsValid())
}
