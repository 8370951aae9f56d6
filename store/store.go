package store

import (
	"sync"

	"github.com/YarKhan02/Workshop-sub003/models"
	"github.com/google/uuid"
)

// Store is the single source of truth for every in-memory collection the
// workshop works with, plus the dashboard's UI selection state. Collections
// are kept as slices so foreign-key lookups always come back in insertion
// order. All state lives in process memory; the backend API reached through
// the remote package is the only durable side of the system.
type Store struct {
	mu sync.RWMutex

	customers     []models.Customer
	cars          []models.Car
	jobs          []models.Job
	packages      []models.ServicePackage
	invoices      []models.Invoice
	inventory     []models.InventoryItem
	staff         []models.Staff
	attendance    []models.Attendance
	bookings      []models.Booking
	timeSlots     []models.TimeSlot
	notifications []models.Notification
	users         []models.User

	selectedCustomerID string
	selectedJobID      string
}

func New() *Store {
	return &Store{}
}

func newID() string {
	return uuid.NewString()
}

// SelectCustomer replaces the current customer selection. An empty id
// clears it. Selection has no side effects on any other state.
func (s *Store) SelectCustomer(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCustomerID = id
}

func (s *Store) SelectedCustomer() (models.Customer, bool) {
	s.mu.RLock()
	id := s.selectedCustomerID
	s.mu.RUnlock()
	if id == "" {
		return models.Customer{}, false
	}
	return s.CustomerByID(id)
}

// SelectJob replaces the current job selection; an empty id clears it.
func (s *Store) SelectJob(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedJobID = id
}

func (s *Store) SelectedJob() (models.Job, bool) {
	s.mu.RLock()
	id := s.selectedJobID
	s.mu.RUnlock()
	if id == "" {
		return models.Job{}, false
	}
	return s.JobByID(id)
}
