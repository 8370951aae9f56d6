package store

import (
	"time"

	"github.com/YarKhan02/Workshop-sub003/models"
)

type AttendanceInput struct {
	StaffID  string
	Date     string
	CheckIn  string
	CheckOut string
	Status   models.AttendanceStatus
}

type AttendancePatch struct {
	CheckIn  *string
	CheckOut *string
	Status   *models.AttendanceStatus
}

func (s *Store) AddAttendance(in AttendanceInput) models.Attendance {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	a := models.Attendance{
		ID:        newID(),
		StaffID:   in.StaffID,
		Date:      in.Date,
		CheckIn:   in.CheckIn,
		CheckOut:  in.CheckOut,
		Status:    in.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.attendance = append(s.attendance, a)
	return a
}

func (s *Store) UpdateAttendance(id string, patch AttendancePatch) (models.Attendance, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.attendance {
		if s.attendance[i].ID != id {
			continue
		}
		a := &s.attendance[i]
		if patch.CheckIn != nil {
			a.CheckIn = *patch.CheckIn
		}
		if patch.CheckOut != nil {
			a.CheckOut = *patch.CheckOut
		}
		if patch.Status != nil {
			a.Status = *patch.Status
		}
		a.UpdatedAt = time.Now()
		return *a, true
	}
	return models.Attendance{}, false
}

func (s *Store) DeleteAttendance(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.attendance {
		if s.attendance[i].ID == id {
			s.attendance = append(s.attendance[:i], s.attendance[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) AttendanceByID(id string) (models.Attendance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.attendance {
		if s.attendance[i].ID == id {
			return s.attendance[i], true
		}
	}
	return models.Attendance{}, false
}

func (s *Store) AttendanceByStaff(staffID string) []models.Attendance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Attendance
	for i := range s.attendance {
		if s.attendance[i].StaffID == staffID {
			out = append(out, s.attendance[i])
		}
	}
	return out
}
