package models

import (
	"time"
)

type InvoiceItem struct {
	PackageID   string  `json:"package_id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

type Invoice struct {
	ID            string        `json:"id"`
	JobID         string        `json:"job_id"`
	CustomerID    string        `json:"customer_id"`
	Items         []InvoiceItem `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	Discount      float64       `json:"discount"`
	Total         float64       `json:"total"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// ComputeTotals recalculates the item totals and the invoice amounts from
// the line items plus tax and discount.
func (inv *Invoice) ComputeTotals() {
	subtotal := 0.0
	for i := range inv.Items {
		item := &inv.Items[i]
		item.TotalPrice = item.UnitPrice * float64(item.Quantity)
		subtotal += item.TotalPrice
	}
	inv.Subtotal = subtotal
	inv.Total = subtotal + inv.Tax - inv.Discount
}
