package store

import (
	"time"

	"github.com/YarKhan02/Workshop-sub003/models"
)

type JobInput struct {
	CustomerID      string
	CarID           string
	ServiceType     models.ServiceType
	ScheduledDate   time.Time
	AssignedStaffID string
	Notes           string
}

type JobPatch struct {
	ServiceType     *models.ServiceType
	ScheduledDate   *time.Time
	AssignedStaffID *string
	Notes           *string
}

func (s *Store) AddJob(in JobInput) models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	j := models.Job{
		ID:              newID(),
		CustomerID:      in.CustomerID,
		CarID:           in.CarID,
		ServiceType:     in.ServiceType,
		Status:          models.JobScheduled,
		ScheduledDate:   in.ScheduledDate,
		AssignedStaffID: in.AssignedStaffID,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.jobs = append(s.jobs, j)
	return j
}

// UpdateJob patches the job's plain fields. Status changes go through
// UpdateJobStatus so the transition table is enforced.
func (s *Store) UpdateJob(id string, patch JobPatch) (models.Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.jobs {
		if s.jobs[i].ID != id {
			continue
		}
		j := &s.jobs[i]
		if patch.ServiceType != nil {
			j.ServiceType = *patch.ServiceType
		}
		if patch.ScheduledDate != nil {
			j.ScheduledDate = *patch.ScheduledDate
		}
		if patch.AssignedStaffID != nil {
			j.AssignedStaffID = *patch.AssignedStaffID
		}
		if patch.Notes != nil {
			j.Notes = *patch.Notes
		}
		j.UpdatedAt = time.Now()
		return *j, true
	}
	return models.Job{}, false
}

// UpdateJobStatus applies a status transition and the matching lifecycle
// timestamp. The job is unchanged when the transition is not allowed.
func (s *Store) UpdateJobStatus(id string, to models.JobStatus) (models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.jobs {
		if s.jobs[i].ID != id {
			continue
		}
		j := &s.jobs[i]
		now := time.Now()
		if err := j.ApplyStatus(to, now); err != nil {
			return models.Job{}, err
		}
		j.UpdatedAt = now
		return *j, nil
	}
	return models.Job{}, ErrNotFound
}

func (s *Store) DeleteJob(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) JobByID(id string) (models.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			return s.jobs[i], true
		}
	}
	return models.Job{}, false
}

func (s *Store) Jobs() []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Job, len(s.jobs))
	copy(out, s.jobs)
	return out
}

func (s *Store) JobsByCustomer(customerID string) []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Job
	for i := range s.jobs {
		if s.jobs[i].CustomerID == customerID {
			out = append(out, s.jobs[i])
		}
	}
	return out
}

func (s *Store) JobsByCar(carID string) []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Job
	for i := range s.jobs {
		if s.jobs[i].CarID == carID {
			out = append(out, s.jobs[i])
		}
	}
	return out
}

func (s *Store) JobsByStaff(staffID string) []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Job
	for i := range s.jobs {
		if s.jobs[i].AssignedStaffID == staffID {
			out = append(out, s.jobs[i])
		}
	}
	return out
}
