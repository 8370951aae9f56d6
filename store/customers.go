package store

import (
	"time"

	"github.com/YarKhan02/Workshop-sub003/models"
)

type CustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

type CustomerPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

func (s *Store) AddCustomer(in CustomerInput) models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	c := models.Customer{
		ID:        newID(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.customers = append(s.customers, c)
	return c
}

func (s *Store) UpdateCustomer(id string, patch CustomerPatch) (models.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID != id {
			continue
		}
		c := &s.customers[i]
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Email != nil {
			c.Email = *patch.Email
		}
		if patch.Phone != nil {
			c.Phone = *patch.Phone
		}
		if patch.Address != nil {
			c.Address = *patch.Address
		}
		c.UpdatedAt = time.Now()
		return *c, true
	}
	return models.Customer{}, false
}

// DeleteCustomer removes only the customer record. Cars, jobs and invoices
// referencing it keep their customer_id; there is no cascade (known gap).
func (s *Store) DeleteCustomer(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) CustomerByID(id string) (models.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			return s.customers[i], true
		}
	}
	return models.Customer{}, false
}

func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}
