package services

import (
	"time"

	"github.com/YarKhan02/Workshop-sub003/models"
	"github.com/YarKhan02/Workshop-sub003/store"
	"github.com/YarKhan02/Workshop-sub003/utils"
)

// StockMonitor polls the inventory and raises a warning notification the
// first time an item drops below its minimum stock. An item only produces a
// new notification after it has recovered above the threshold.
type StockMonitor struct {
	Store    *store.Store
	StopChan chan struct{}
	Interval time.Duration

	notified map[string]bool
}

func NewStockMonitor(s *store.Store) *StockMonitor {
	return &StockMonitor{
		Store:    s,
		StopChan: make(chan struct{}),
		Interval: 1 * time.Minute,
		notified: make(map[string]bool),
	}
}

func (sm *StockMonitor) Start() {
	go func() {
		ticker := time.NewTicker(sm.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sm.checkStock()
			case <-sm.StopChan:
				return
			}
		}
	}()
}

func (sm *StockMonitor) Stop() {
	close(sm.StopChan)
}

func (sm *StockMonitor) checkStock() {
	low := sm.Store.LowStockItems()

	lowIDs := make(map[string]bool, len(low))
	for _, item := range low {
		lowIDs[item.ID] = true
		if sm.notified[item.ID] {
			continue
		}
		sm.notified[item.ID] = true

		utils.InfoLogger.Printf("Low stock: %s (%d < %d)", item.Name, item.CurrentStock, item.MinimumStock)
		sm.Store.AddNotification(
			models.NotificationWarning,
			"Low stock alert",
			item.Name+" is below its minimum stock level",
		)
	}

	// Recovered items become eligible for a fresh alert.
	for id := range sm.notified {
		if !lowIDs[id] {
			delete(sm.notified, id)
		}
	}
}
