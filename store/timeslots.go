package store

import (
	"time"

	"github.com/YarKhan02/Workshop-sub003/models"
)

type TimeSlotInput struct {
	Date      string
	StartTime string
	EndTime   string
}

func (s *Store) AddTimeSlot(in TimeSlotInput) models.TimeSlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	slot := models.TimeSlot{
		ID:          newID(),
		Date:        in.Date,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.timeSlots = append(s.timeSlots, slot)
	return slot
}

func (s *Store) DeleteTimeSlot(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.timeSlots {
		if s.timeSlots[i].ID == id {
			s.timeSlots = append(s.timeSlots[:i], s.timeSlots[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) TimeSlotByID(id string) (models.TimeSlot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.timeSlots {
		if s.timeSlots[i].ID == id {
			return s.timeSlots[i], true
		}
	}
	return models.TimeSlot{}, false
}

func (s *Store) TimeSlotsByDate(date string) []models.TimeSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.TimeSlot
	for i := range s.timeSlots {
		if s.timeSlots[i].Date == date {
			out = append(out, s.timeSlots[i])
		}
	}
	return out
}

func (s *Store) AvailableTimeSlots(date string) []models.TimeSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.TimeSlot
	for i := range s.timeSlots {
		if s.timeSlots[i].Date == date && s.timeSlots[i].IsAvailable {
			out = append(out, s.timeSlots[i])
		}
	}
	return out
}

// HasTimeSlot lets the scheduler skip dates it already generated.
func (s *Store) HasTimeSlot(date, startTime string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.timeSlots {
		if s.timeSlots[i].Date == date && s.timeSlots[i].StartTime == startTime {
			return true
		}
	}
	return false
}

// BookTimeSlot pins a job onto an available slot.
func (s *Store) BookTimeSlot(slotID, jobID string) (models.TimeSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.timeSlots {
		if s.timeSlots[i].ID != slotID {
			continue
		}
		slot := &s.timeSlots[i]
		if !slot.IsAvailable {
			return models.TimeSlot{}, ErrSlotTaken
		}
		slot.IsAvailable = false
		slot.JobID = jobID
		slot.UpdatedAt = time.Now()
		return *slot, nil
	}
	return models.TimeSlot{}, ErrNotFound
}

func (s *Store) ReleaseTimeSlot(slotID string) (models.TimeSlot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.timeSlots {
		if s.timeSlots[i].ID != slotID {
			continue
		}
		slot := &s.timeSlots[i]
		slot.IsAvailable = true
		slot.JobID = ""
		slot.UpdatedAt = time.Now()
		return *slot, true
	}
	return models.TimeSlot{}, false
}
