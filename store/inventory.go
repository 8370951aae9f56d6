package store

import (
	"time"

	"github.com/YarKhan02/Workshop-sub003/models"
)

type InventoryItemInput struct {
	Name         string
	Category     models.InventoryCategory
	CurrentStock int
	MinimumStock int
	UnitPrice    float64
}

type InventoryItemPatch struct {
	Name         *string
	Category     *models.InventoryCategory
	CurrentStock *int
	MinimumStock *int
	UnitPrice    *float64
}

func (s *Store) AddInventoryItem(in InventoryItemInput) models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	item := models.InventoryItem{
		ID:           newID(),
		Name:         in.Name,
		Category:     in.Category,
		CurrentStock: in.CurrentStock,
		MinimumStock: in.MinimumStock,
		UnitPrice:    in.UnitPrice,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.inventory = append(s.inventory, item)
	return item
}

func (s *Store) UpdateInventoryItem(id string, patch InventoryItemPatch) (models.InventoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.inventory {
		if s.inventory[i].ID != id {
			continue
		}
		item := &s.inventory[i]
		if patch.Name != nil {
			item.Name = *patch.Name
		}
		if patch.Category != nil {
			item.Category = *patch.Category
		}
		if patch.CurrentStock != nil {
			item.CurrentStock = *patch.CurrentStock
		}
		if patch.MinimumStock != nil {
			item.MinimumStock = *patch.MinimumStock
		}
		if patch.UnitPrice != nil {
			item.UnitPrice = *patch.UnitPrice
		}
		item.UpdatedAt = time.Now()
		return *item, true
	}
	return models.InventoryItem{}, false
}

// AdjustStock adds delta (negative for consumption) to the item's stock.
// Stock never goes below zero.
func (s *Store) AdjustStock(id string, delta int) (models.InventoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.inventory {
		if s.inventory[i].ID != id {
			continue
		}
		item := &s.inventory[i]
		item.CurrentStock += delta
		if item.CurrentStock < 0 {
			item.CurrentStock = 0
		}
		item.UpdatedAt = time.Now()
		return *item, true
	}
	return models.InventoryItem{}, false
}

func (s *Store) DeleteInventoryItem(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.inventory {
		if s.inventory[i].ID == id {
			s.inventory = append(s.inventory[:i], s.inventory[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) InventoryItemByID(id string) (models.InventoryItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.inventory {
		if s.inventory[i].ID == id {
			return s.inventory[i], true
		}
	}
	return models.InventoryItem{}, false
}

func (s *Store) InventoryItems() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.InventoryItem, len(s.inventory))
	copy(out, s.inventory)
	return out
}

// LowStockItems is a derived view: current stock under the minimum.
func (s *Store) LowStockItems() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.InventoryItem
	for i := range s.inventory {
		if s.inventory[i].IsLowStock() {
			out = append(out, s.inventory[i])
		}
	}
	return out
}
