package services

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/YarKhan02/Workshop-sub003/store"
	"github.com/YarKhan02/Workshop-sub003/utils"
	"github.com/robfig/cron/v3"
)

// SlotScheduler generates the next day's booking slots every night. Opening
// hours and slot length come from the environment so the shop can tune them
// without a redeploy.
type SlotScheduler struct {
	Store       *store.Store
	OpenHour    int
	CloseHour   int
	SlotMinutes int

	cron *cron.Cron
}

func NewSlotScheduler(s *store.Store) *SlotScheduler {
	return &SlotScheduler{
		Store:       s,
		OpenHour:    envInt("OPEN_HOUR", 9),
		CloseHour:   envInt("CLOSE_HOUR", 18),
		SlotMinutes: envInt("SLOT_MINUTES", 60),
		cron:        cron.New(),
	}
}

// Start seeds slots for today and tomorrow immediately, then regenerates
// every midnight.
func (ss *SlotScheduler) Start() error {
	ss.GenerateSlots(time.Now())
	ss.GenerateSlots(time.Now().AddDate(0, 0, 1))

	if _, err := ss.cron.AddFunc("0 0 * * *", func() {
		ss.GenerateSlots(time.Now().AddDate(0, 0, 1))
	}); err != nil {
		return err
	}
	ss.cron.Start()
	return nil
}

func (ss *SlotScheduler) Stop() {
	ss.cron.Stop()
}

// GenerateSlots creates the day's slots, skipping any start time that
// already exists so reruns are harmless.
func (ss *SlotScheduler) GenerateSlots(day time.Time) {
	date := day.Format("2006-01-02")
	created := 0

	for minute := ss.OpenHour * 60; minute+ss.SlotMinutes <= ss.CloseHour*60; minute += ss.SlotMinutes {
		start := fmt.Sprintf("%02d:%02d", minute/60, minute%60)
		end := fmt.Sprintf("%02d:%02d", (minute+ss.SlotMinutes)/60, (minute+ss.SlotMinutes)%60)

		if ss.Store.HasTimeSlot(date, start) {
			continue
		}
		ss.Store.AddTimeSlot(store.TimeSlotInput{
			Date:      date,
			StartTime: start,
			EndTime:   end,
		})
		created++
	}

	if created > 0 {
		utils.InfoLogger.Printf("Generated %d time slots for %s", created, date)
	}
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
