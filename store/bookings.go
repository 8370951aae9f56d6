package store

import (
	"fmt"
	"time"

	"github.com/YarKhan02/Workshop-sub003/models"
)

type BookingInput struct {
	CustomerID    string
	CarID         string
	ServiceType   models.ServiceType
	PreferredDate string
	PreferredTime string
	Notes         string
}

type BookingPatch struct {
	ServiceType   *models.ServiceType
	PreferredDate *string
	PreferredTime *string
	Status        *models.BookingStatus
	Notes         *string
}

func (s *Store) AddBooking(in BookingInput) models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	b := models.Booking{
		ID:            newID(),
		CustomerID:    in.CustomerID,
		CarID:         in.CarID,
		ServiceType:   in.ServiceType,
		PreferredDate: in.PreferredDate,
		PreferredTime: in.PreferredTime,
		Status:        models.BookingPending,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.bookings = append(s.bookings, b)
	return b
}

func (s *Store) UpdateBooking(id string, patch BookingPatch) (models.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		b := &s.bookings[i]
		if patch.ServiceType != nil {
			b.ServiceType = *patch.ServiceType
		}
		if patch.PreferredDate != nil {
			b.PreferredDate = *patch.PreferredDate
		}
		if patch.PreferredTime != nil {
			b.PreferredTime = *patch.PreferredTime
		}
		if patch.Status != nil {
			b.Status = *patch.Status
		}
		if patch.Notes != nil {
			b.Notes = *patch.Notes
		}
		b.UpdatedAt = time.Now()
		return *b, true
	}
	return models.Booking{}, false
}

func (s *Store) DeleteBooking(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) BookingByID(id string) (models.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return s.bookings[i], true
		}
	}
	return models.Booking{}, false
}

func (s *Store) Bookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *Store) BookingsByCustomer(customerID string) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Booking
	for i := range s.bookings {
		if s.bookings[i].CustomerID == customerID {
			out = append(out, s.bookings[i])
		}
	}
	return out
}

// ConvertBooking turns a confirmed booking into a scheduled job and marks
// the booking converted. The preferred date and time become the job's
// schedule.
func (s *Store) ConvertBooking(bookingID, staffID string) (models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID != bookingID {
			continue
		}
		b := &s.bookings[i]
		if b.Status != models.BookingConfirmed {
			return models.Job{}, ErrNotConvertible
		}
		scheduled, err := time.ParseInLocation("2006-01-02 15:04",
			b.PreferredDate+" "+b.PreferredTime, time.Local)
		if err != nil {
			return models.Job{}, fmt.Errorf("booking %s has an unparseable schedule: %w", b.ID, err)
		}
		now := time.Now()
		j := models.Job{
			ID:              newID(),
			CustomerID:      b.CustomerID,
			CarID:           b.CarID,
			ServiceType:     b.ServiceType,
			Status:          models.JobScheduled,
			ScheduledDate:   scheduled,
			AssignedStaffID: staffID,
			Notes:           b.Notes,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		s.jobs = append(s.jobs, j)
		b.Status = models.BookingConverted
		b.UpdatedAt = now
		return j, nil
	}
	return models.Job{}, ErrNotFound
}
