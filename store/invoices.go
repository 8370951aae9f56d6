package store

import (
	"time"

	"github.com/YarKhan02/Workshop-sub003/models"
)

type InvoiceInput struct {
	JobID         string
	CustomerID    string
	Items         []models.InvoiceItem
	Tax           float64
	Discount      float64
	PaymentStatus models.PaymentStatus
}

type InvoicePatch struct {
	Items         *[]models.InvoiceItem
	Tax           *float64
	Discount      *float64
	PaymentStatus *models.PaymentStatus
}

func (s *Store) AddInvoice(in InvoiceInput) models.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	status := in.PaymentStatus
	if status == "" {
		status = models.PaymentPending
	}
	inv := models.Invoice{
		ID:            newID(),
		JobID:         in.JobID,
		CustomerID:    in.CustomerID,
		Items:         append([]models.InvoiceItem(nil), in.Items...),
		Tax:           in.Tax,
		Discount:      in.Discount,
		PaymentStatus: status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	inv.ComputeTotals()
	s.invoices = append(s.invoices, inv)
	return inv
}

func (s *Store) UpdateInvoice(id string, patch InvoicePatch) (models.Invoice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.invoices {
		if s.invoices[i].ID != id {
			continue
		}
		inv := &s.invoices[i]
		if patch.Items != nil {
			inv.Items = append([]models.InvoiceItem(nil), (*patch.Items)...)
		}
		if patch.Tax != nil {
			inv.Tax = *patch.Tax
		}
		if patch.Discount != nil {
			inv.Discount = *patch.Discount
		}
		if patch.PaymentStatus != nil {
			inv.PaymentStatus = *patch.PaymentStatus
		}
		inv.ComputeTotals()
		inv.UpdatedAt = time.Now()
		return *inv, true
	}
	return models.Invoice{}, false
}

func (s *Store) DeleteInvoice(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			s.invoices = append(s.invoices[:i], s.invoices[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) InvoiceByID(id string) (models.Invoice, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			return s.invoices[i], true
		}
	}
	return models.Invoice{}, false
}

func (s *Store) Invoices() []models.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Invoice, len(s.invoices))
	copy(out, s.invoices)
	return out
}

func (s *Store) InvoicesByCustomer(customerID string) []models.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Invoice
	for i := range s.invoices {
		if s.invoices[i].CustomerID == customerID {
			out = append(out, s.invoices[i])
		}
	}
	return out
}

func (s *Store) InvoicesByJob(jobID string) []models.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Invoice
	for i := range s.invoices {
		if s.invoices[i].JobID == jobID {
			out = append(out, s.invoices[i])
		}
	}
	return out
}
