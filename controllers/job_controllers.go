package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/YarKhan02/Workshop-sub003/models"
	"github.com/YarKhan02/Workshop-sub003/store"
	"github.com/YarKhan02/Workshop-sub003/utils"
	"github.com/YarKhan02/Workshop-sub003/validation"
	"github.com/gin-gonic/gin"
)

type JobController struct {
	Store *store.Store
}

func NewJobController(s *store.Store) *JobController {
	return &JobController{Store: s}
}

type UpdateJobInput struct {
	ServiceType     *models.ServiceType `json:"service_type"`
	ScheduledDate   *string             `json:"scheduled_date"`
	AssignedStaffID *string             `json:"assigned_staff_id"`
	Notes           *string             `json:"notes"`
}

func (jc *JobController) CreateJob(c *gin.Context) {
	var form validation.JobForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if errs := validation.Check(form); len(errs) > 0 {
		utils.RespondValidationErrors(c, errs)
		return
	}

	if _, ok := jc.Store.CustomerByID(form.CustomerID); !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("customer not found"))
		return
	}
	if _, ok := jc.Store.CarByID(form.CarID); !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("car not found"))
		return
	}

	scheduled, err := time.ParseInLocation("2006-01-02 15:04", form.ScheduledDate, time.Local)
	if err != nil {
		if scheduled, err = time.ParseInLocation("2006-01-02", form.ScheduledDate, time.Local); err != nil {
			utils.RespondValidationErrors(c, map[string]string{"scheduled_date": "dateformat"})
			return
		}
	}

	job := jc.Store.AddJob(store.JobInput{
		CustomerID:      form.CustomerID,
		CarID:           form.CarID,
		ServiceType:     form.ServiceType,
		ScheduledDate:   scheduled,
		AssignedStaffID: form.AssignedStaffID,
		Notes:           form.Notes,
	})

	utils.InfoLogger.Printf("New job created: %s (%s)", job.ID, job.ServiceType)
	utils.RespondJSON(c, http.StatusCreated, "Job created successfully", job)
}

func (jc *JobController) GetAllJobs(c *gin.Context) {
	switch {
	case c.Query("customer_id") != "":
		utils.RespondJSON(c, http.StatusOK, "List of jobs", jc.Store.JobsByCustomer(c.Query("customer_id")))
	case c.Query("car_id") != "":
		utils.RespondJSON(c, http.StatusOK, "List of jobs", jc.Store.JobsByCar(c.Query("car_id")))
	case c.Query("staff_id") != "":
		utils.RespondJSON(c, http.StatusOK, "List of jobs", jc.Store.JobsByStaff(c.Query("staff_id")))
	default:
		utils.RespondJSON(c, http.StatusOK, "List of jobs", jc.Store.Jobs())
	}
}

func (jc *JobController) GetJob(c *gin.Context) {
	job, ok := jc.Store.JobByID(c.Param("job_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("job not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Job detail", gin.H{
		"job":      job,
		"invoices": jc.Store.InvoicesByJob(job.ID),
	})
}

func (jc *JobController) UpdateJob(c *gin.Context) {
	id := c.Param("job_id")
	var input UpdateJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	patch := store.JobPatch{
		AssignedStaffID: input.AssignedStaffID,
		Notes:           input.Notes,
	}
	if input.ServiceType != nil {
		if !input.ServiceType.IsValid() {
			utils.RespondValidationErrors(c, map[string]string{"service_type": "oneof"})
			return
		}
		patch.ServiceType = input.ServiceType
	}
	if input.ScheduledDate != nil {
		scheduled, err := time.ParseInLocation("2006-01-02 15:04", *input.ScheduledDate, time.Local)
		if err != nil {
			utils.RespondValidationErrors(c, map[string]string{"scheduled_date": "dateformat"})
			return
		}
		patch.ScheduledDate = &scheduled
	}

	job, ok := jc.Store.UpdateJob(id, patch)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("job not found"))
		return
	}

	utils.InfoLogger.Printf("Job %s updated", job.ID)
	utils.RespondJSON(c, http.StatusOK, "Job updated", job)
}

// UpdateJobStatus -> move the job along its lifecycle
func (jc *JobController) UpdateJobStatus(c *gin.Context) {
	id := c.Param("job_id")
	var body struct {
		Status models.JobStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !body.Status.IsValid() {
		utils.RespondValidationErrors(c, map[string]string{"status": "oneof"})
		return
	}

	job, err := jc.Store.UpdateJobStatus(id, body.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusConflict, err)
		return
	}

	utils.InfoLogger.Printf("Job %s status changed to %s", job.ID, job.Status)
	utils.RespondJSON(c, http.StatusOK, "Job status updated", job)
}

func (jc *JobController) DeleteJob(c *gin.Context) {
	id := c.Param("job_id")
	if !jc.Store.DeleteJob(id) {
		utils.RespondError(c, http.StatusNotFound, errors.New("job not found"))
		return
	}
	utils.InfoLogger.Printf("Job %s deleted", id)
	utils.RespondJSON(c, http.StatusOK, "Job deleted successfully", nil)
}
