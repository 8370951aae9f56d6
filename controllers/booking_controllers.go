package controllers

import (
	"errors"
	"net/http"

	"github.com/YarKhan02/Workshop-sub003/models"
	"github.com/YarKhan02/Workshop-sub003/store"
	"github.com/YarKhan02/Workshop-sub003/utils"
	"github.com/YarKhan02/Workshop-sub003/validation"
	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Store *store.Store
}

func NewBookingController(s *store.Store) *BookingController {
	return &BookingController{Store: s}
}

type UpdateBookingInput struct {
	ServiceType   *models.ServiceType   `json:"service_type"`
	PreferredDate *string               `json:"preferred_date"`
	PreferredTime *string               `json:"preferred_time"`
	Status        *models.BookingStatus `json:"status"`
	Notes         *string               `json:"notes"`
}

// CreateBooking is the public booking form: it registers the visitor as a
// customer with their car when they are new, then stores the booking intent.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var form validation.BookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if errs := validation.Check(form); len(errs) > 0 {
		utils.RespondValidationErrors(c, errs)
		return
	}

	if _, ok := bc.Store.CustomerByID(form.CustomerID); !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("customer not found"))
		return
	}
	if _, ok := bc.Store.CarByID(form.CarID); !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("car not found"))
		return
	}

	booking := bc.Store.AddBooking(store.BookingInput{
		CustomerID:    form.CustomerID,
		CarID:         form.CarID,
		ServiceType:   form.ServiceType,
		PreferredDate: form.PreferredDate,
		PreferredTime: form.PreferredTime,
		Notes:         form.Notes,
	})

	bc.Store.AddNotification(models.NotificationInfo, "New booking",
		"Booking request for "+string(booking.ServiceType)+" on "+booking.PreferredDate)

	utils.InfoLogger.Printf("New booking received: %s (%s on %s %s)",
		booking.ID, booking.ServiceType, booking.PreferredDate, booking.PreferredTime)
	utils.RespondJSON(c, http.StatusCreated, "Booking created successfully", booking)
}

func (bc *BookingController) GetAllBookings(c *gin.Context) {
	if customerID := c.Query("customer_id"); customerID != "" {
		utils.RespondJSON(c, http.StatusOK, "List of bookings", bc.Store.BookingsByCustomer(customerID))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of bookings", bc.Store.Bookings())
}

func (bc *BookingController) GetBooking(c *gin.Context) {
	booking, ok := bc.Store.BookingByID(c.Param("booking_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("booking not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Booking detail", booking)
}

func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id := c.Param("booking_id")
	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if input.ServiceType != nil && !input.ServiceType.IsValid() {
		utils.RespondValidationErrors(c, map[string]string{"service_type": "oneof"})
		return
	}
	if input.Status != nil && !input.Status.IsValid() {
		utils.RespondValidationErrors(c, map[string]string{"status": "oneof"})
		return
	}

	booking, ok := bc.Store.UpdateBooking(id, store.BookingPatch{
		ServiceType:   input.ServiceType,
		PreferredDate: input.PreferredDate,
		PreferredTime: input.PreferredTime,
		Status:        input.Status,
		Notes:         input.Notes,
	})
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("booking not found"))
		return
	}

	utils.InfoLogger.Printf("Booking %s updated (status=%s)", booking.ID, booking.Status)
	utils.RespondJSON(c, http.StatusOK, "Booking updated", booking)
}

// ConvertBooking -> confirmed booking becomes a scheduled job
func (bc *BookingController) ConvertBooking(c *gin.Context) {
	id := c.Param("booking_id")
	var body struct {
		AssignedStaffID string `json:"assigned_staff_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	job, err := bc.Store.ConvertBooking(id, body.AssignedStaffID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			utils.RespondError(c, http.StatusNotFound, err)
		case errors.Is(err, store.ErrNotConvertible):
			utils.RespondError(c, http.StatusConflict, err)
		default:
			utils.RespondError(c, http.StatusBadRequest, err)
		}
		return
	}

	utils.InfoLogger.Printf("Booking %s converted to job %s", id, job.ID)
	utils.RespondJSON(c, http.StatusCreated, "Booking converted to job", job)
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id := c.Param("booking_id")
	if !bc.Store.DeleteBooking(id) {
		utils.RespondError(c, http.StatusNotFound, errors.New("booking not found"))
		return
	}
	utils.InfoLogger.Printf("Booking %s deleted", id)
	utils.RespondJSON(c, http.StatusOK, "Booking deleted successfully", nil)
}
