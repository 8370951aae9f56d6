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

type StaffController struct {
	Store *store.Store
}

func NewStaffController(s *store.Store) *StaffController {
	return &StaffController{Store: s}
}

type UpdateStaffInput struct {
	Name       *string           `json:"name"`
	Role       *models.StaffRole `json:"role"`
	Phone      *string           `json:"phone"`
	HourlyRate *float64          `json:"hourly_rate"`
	IsActive   *bool             `json:"is_active"`
}

type UpdateAttendanceInput struct {
	CheckIn  *string                  `json:"check_in"`
	CheckOut *string                  `json:"check_out"`
	Status   *models.AttendanceStatus `json:"status"`
}

func (sc *StaffController) CreateStaff(c *gin.Context) {
	var form validation.StaffForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if errs := validation.Check(form); len(errs) > 0 {
		utils.RespondValidationErrors(c, errs)
		return
	}

	member := sc.Store.AddStaff(store.StaffInput{
		Name:       form.Name,
		Role:       form.Role,
		Phone:      form.Phone,
		HourlyRate: form.HourlyRate,
		IsActive:   form.IsActive,
	})

	utils.InfoLogger.Printf("New staff member: %s (role=%s)", member.Name, member.Role)
	utils.RespondJSON(c, http.StatusCreated, "Staff member created successfully", member)
}

func (sc *StaffController) GetAllStaff(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of staff members", sc.Store.StaffMembers())
}

func (sc *StaffController) GetStaff(c *gin.Context) {
	member, ok := sc.Store.StaffByID(c.Param("staff_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("staff member not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Staff member detail", gin.H{
		"staff":      member,
		"jobs":       sc.Store.JobsByStaff(member.ID),
		"attendance": sc.Store.AttendanceByStaff(member.ID),
	})
}

func (sc *StaffController) UpdateStaff(c *gin.Context) {
	id := c.Param("staff_id")
	var input UpdateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if input.Role != nil && !input.Role.IsValid() {
		utils.RespondValidationErrors(c, map[string]string{"role": "oneof"})
		return
	}

	member, ok := sc.Store.UpdateStaff(id, store.StaffPatch{
		Name:       input.Name,
		Role:       input.Role,
		Phone:      input.Phone,
		HourlyRate: input.HourlyRate,
		IsActive:   input.IsActive,
	})
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("staff member not found"))
		return
	}

	utils.InfoLogger.Printf("Staff member %s updated", member.ID)
	utils.RespondJSON(c, http.StatusOK, "Staff member updated", member)
}

func (sc *StaffController) DeleteStaff(c *gin.Context) {
	id := c.Param("staff_id")
	if !sc.Store.DeleteStaff(id) {
		utils.RespondError(c, http.StatusNotFound, errors.New("staff member not found"))
		return
	}
	utils.InfoLogger.Printf("Staff member %s deleted", id)
	utils.RespondJSON(c, http.StatusOK, "Staff member deleted successfully", nil)
}

// AddAttendance records a day entry for a local staff member.
func (sc *StaffController) AddAttendance(c *gin.Context) {
	var form validation.AttendanceForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if errs := validation.Check(form); len(errs) > 0 {
		utils.RespondValidationErrors(c, errs)
		return
	}

	if _, ok := sc.Store.StaffByID(form.StaffID); !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("staff member not found"))
		return
	}

	entry := sc.Store.AddAttendance(store.AttendanceInput{
		StaffID:  form.StaffID,
		Date:     form.Date,
		CheckIn:  form.CheckIn,
		CheckOut: form.CheckOut,
		Status:   form.Status,
	})

	utils.InfoLogger.Printf("Attendance recorded for staff %s on %s (%s)", entry.StaffID, entry.Date, entry.Status)
	utils.RespondJSON(c, http.StatusCreated, "Attendance recorded", entry)
}

func (sc *StaffController) GetAttendanceByStaff(c *gin.Context) {
	staffID := c.Param("staff_id")
	if _, ok := sc.Store.StaffByID(staffID); !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("staff member not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Attendance entries", sc.Store.AttendanceByStaff(staffID))
}

func (sc *StaffController) UpdateAttendance(c *gin.Context) {
	id := c.Param("attendance_id")
	var input UpdateAttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if input.Status != nil && !input.Status.IsValid() {
		utils.RespondValidationErrors(c, map[string]string{"status": "oneof"})
		return
	}

	entry, ok := sc.Store.UpdateAttendance(id, store.AttendancePatch{
		CheckIn:  input.CheckIn,
		CheckOut: input.CheckOut,
		Status:   input.Status,
	})
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("attendance entry not found"))
		return
	}

	utils.InfoLogger.Printf("Attendance entry %s updated", entry.ID)
	utils.RespondJSON(c, http.StatusOK, "Attendance updated", entry)
}
