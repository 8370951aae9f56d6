package models

import (
	"time"
)

type InventoryItem struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Category     InventoryCategory `json:"category"`
	CurrentStock int               `json:"current_stock"`
	MinimumStock int               `json:"minimum_stock"`
	UnitPrice    float64           `json:"unit_price"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// IsLowStock reports whether the item has fallen under its restock threshold.
func (i InventoryItem) IsLowStock() bool {
	return i.CurrentStock < i.MinimumStock
}
