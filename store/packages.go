package store

import (
	"time"

	"github.com/YarKhan02/Workshop-sub003/models"
)

type ServicePackageInput struct {
	Name        string
	Description string
	Price       float64
	Duration    int
	IsActive    bool
}

type ServicePackagePatch struct {
	Name        *string
	Description *string
	Price       *float64
	Duration    *int
	IsActive    *bool
}

func (s *Store) AddServicePackage(in ServicePackageInput) models.ServicePackage {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	p := models.ServicePackage{
		ID:          newID(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Duration:    in.Duration,
		IsActive:    in.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.packages = append(s.packages, p)
	return p
}

func (s *Store) UpdateServicePackage(id string, patch ServicePackagePatch) (models.ServicePackage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.packages {
		if s.packages[i].ID != id {
			continue
		}
		p := &s.packages[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Duration != nil {
			p.Duration = *patch.Duration
		}
		if patch.IsActive != nil {
			p.IsActive = *patch.IsActive
		}
		p.UpdatedAt = time.Now()
		return *p, true
	}
	return models.ServicePackage{}, false
}

func (s *Store) DeleteServicePackage(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.packages {
		if s.packages[i].ID == id {
			s.packages = append(s.packages[:i], s.packages[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) ServicePackageByID(id string) (models.ServicePackage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.packages {
		if s.packages[i].ID == id {
			return s.packages[i], true
		}
	}
	return models.ServicePackage{}, false
}

func (s *Store) ServicePackages() []models.ServicePackage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ServicePackage, len(s.packages))
	copy(out, s.packages)
	return out
}

// ActiveServicePackages is what the public pricing page lists.
func (s *Store) ActiveServicePackages() []models.ServicePackage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.ServicePackage
	for i := range s.packages {
		if s.packages[i].IsActive {
			out = append(out, s.packages[i])
		}
	}
	return out
}
