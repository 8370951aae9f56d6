package store

import (
	"time"

	"github.com/YarKhan02/Workshop-sub003/models"
)

type CarInput struct {
	CustomerID string
	Make       string
	Model      string
	Year       int
	Color      string
	Plate      string
}

type CarPatch struct {
	Make  *string
	Model *string
	Year  *int
	Color *string
	Plate *string
}

func (s *Store) AddCar(in CarInput) models.Car {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	c := models.Car{
		ID:         newID(),
		CustomerID: in.CustomerID,
		Make:       in.Make,
		Model:      in.Model,
		Year:       in.Year,
		Color:      in.Color,
		Plate:      in.Plate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.cars = append(s.cars, c)
	return c
}

func (s *Store) UpdateCar(id string, patch CarPatch) (models.Car, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cars {
		if s.cars[i].ID != id {
			continue
		}
		c := &s.cars[i]
		if patch.Make != nil {
			c.Make = *patch.Make
		}
		if patch.Model != nil {
			c.Model = *patch.Model
		}
		if patch.Year != nil {
			c.Year = *patch.Year
		}
		if patch.Color != nil {
			c.Color = *patch.Color
		}
		if patch.Plate != nil {
			c.Plate = *patch.Plate
		}
		c.UpdatedAt = time.Now()
		return *c, true
	}
	return models.Car{}, false
}

func (s *Store) DeleteCar(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cars {
		if s.cars[i].ID == id {
			s.cars = append(s.cars[:i], s.cars[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) CarByID(id string) (models.Car, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.cars {
		if s.cars[i].ID == id {
			return s.cars[i], true
		}
	}
	return models.Car{}, false
}

func (s *Store) Cars() []models.Car {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Car, len(s.cars))
	copy(out, s.cars)
	return out
}

// CarsByCustomer returns the customer's cars in insertion order.
func (s *Store) CarsByCustomer(customerID string) []models.Car {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Car
	for i := range s.cars {
		if s.cars[i].CustomerID == customerID {
			out = append(out, s.cars[i])
		}
	}
	return out
}
