package controllers

import (
	"errors"
	"net/http"

	"github.com/YarKhan02/Workshop-sub003/store"
	"github.com/YarKhan02/Workshop-sub003/utils"
	"github.com/gin-gonic/gin"
)

type TimeSlotController struct {
	Store *store.Store
}

func NewTimeSlotController(s *store.Store) *TimeSlotController {
	return &TimeSlotController{Store: s}
}

// GetAvailableSlots backs the public booking form's slot picker.
func (tc *TimeSlotController) GetAvailableSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("date query parameter is required"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Available time slots", tc.Store.AvailableTimeSlots(date))
}

func (tc *TimeSlotController) GetSlotsByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("date query parameter is required"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Time slots", tc.Store.TimeSlotsByDate(date))
}

func (tc *TimeSlotController) CreateSlot(c *gin.Context) {
	var body struct {
		Date      string `json:"date" binding:"required"`
		StartTime string `json:"start_time" binding:"required"`
		EndTime   string `json:"end_time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	slot := tc.Store.AddTimeSlot(store.TimeSlotInput{
		Date:      body.Date,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
	})

	utils.InfoLogger.Printf("Time slot created: %s %s-%s", slot.Date, slot.StartTime, slot.EndTime)
	utils.RespondJSON(c, http.StatusCreated, "Time slot created", slot)
}

// BookSlot pins a job onto an available slot.
func (tc *TimeSlotController) BookSlot(c *gin.Context) {
	id := c.Param("slot_id")
	var body struct {
		JobID string `json:"job_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if _, ok := tc.Store.JobByID(body.JobID); !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("job not found"))
		return
	}

	slot, err := tc.Store.BookTimeSlot(id, body.JobID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusConflict, err)
		return
	}

	utils.InfoLogger.Printf("Time slot %s booked for job %s", slot.ID, body.JobID)
	utils.RespondJSON(c, http.StatusOK, "Time slot booked", slot)
}

func (tc *TimeSlotController) ReleaseSlot(c *gin.Context) {
	id := c.Param("slot_id")
	slot, ok := tc.Store.ReleaseTimeSlot(id)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("time slot not found"))
		return
	}
	utils.InfoLogger.Printf("Time slot %s released", slot.ID)
	utils.RespondJSON(c, http.StatusOK, "Time slot released", slot)
}

func (tc *TimeSlotController) DeleteSlot(c *gin.Context) {
	id := c.Param("slot_id")
	if !tc.Store.DeleteTimeSlot(id) {
		utils.RespondError(c, http.StatusNotFound, errors.New("time slot not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Time slot deleted", nil)
}
