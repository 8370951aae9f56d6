package store

import (
	"time"

	"github.com/YarKhan02/Workshop-sub003/models"
)

type StaffInput struct {
	Name       string
	Role       models.StaffRole
	Phone      string
	HourlyRate float64
	IsActive   bool
}

type StaffPatch struct {
	Name       *string
	Role       *models.StaffRole
	Phone      *string
	HourlyRate *float64
	IsActive   *bool
}

func (s *Store) AddStaff(in StaffInput) models.Staff {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	st := models.Staff{
		ID:         newID(),
		Name:       in.Name,
		Role:       in.Role,
		Phone:      in.Phone,
		HourlyRate: in.HourlyRate,
		IsActive:   in.IsActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.staff = append(s.staff, st)
	return st
}

func (s *Store) UpdateStaff(id string, patch StaffPatch) (models.Staff, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.staff {
		if s.staff[i].ID != id {
			continue
		}
		st := &s.staff[i]
		if patch.Name != nil {
			st.Name = *patch.Name
		}
		if patch.Role != nil {
			st.Role = *patch.Role
		}
		if patch.Phone != nil {
			st.Phone = *patch.Phone
		}
		if patch.HourlyRate != nil {
			st.HourlyRate = *patch.HourlyRate
		}
		if patch.IsActive != nil {
			st.IsActive = *patch.IsActive
		}
		st.UpdatedAt = time.Now()
		return *st, true
	}
	return models.Staff{}, false
}

func (s *Store) DeleteStaff(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.staff {
		if s.staff[i].ID == id {
			s.staff = append(s.staff[:i], s.staff[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) StaffByID(id string) (models.Staff, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.staff {
		if s.staff[i].ID == id {
			return s.staff[i], true
		}
	}
	return models.Staff{}, false
}

func (s *Store) StaffMembers() []models.Staff {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Staff, len(s.staff))
	copy(out, s.staff)
	return out
}
