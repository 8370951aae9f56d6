package controllers

import (
	"errors"
	"net/http"

	"github.com/YarKhan02/Workshop-sub003/models"
	"github.com/YarKhan02/Workshop-sub003/remote"
	"github.com/YarKhan02/Workshop-sub003/utils"
	"github.com/YarKhan02/Workshop-sub003/validation"
	"github.com/gin-gonic/gin"
)

// EmployeeController serves HR data living in the backend API through the
// cached remote client. Failures here propagate; there is no stale-data
// fallback for entity reads.
type EmployeeController struct {
	Client *remote.Client
}

func NewEmployeeController(client *remote.Client) *EmployeeController {
	return &EmployeeController{Client: client}
}

// respondRemoteError maps a backend failure onto our envelope. A 404 from
// the backend stays a 404; everything else is a bad gateway.
func respondRemoteError(c *gin.Context, err error) {
	var remoteErr *remote.Error
	if errors.As(err, &remoteErr) && remoteErr.Status == http.StatusNotFound {
		utils.RespondError(c, http.StatusNotFound, errors.New("employee not found"))
		return
	}
	utils.ErrorLogger.Printf("backend call failed: %v", err)
	utils.RespondError(c, http.StatusBadGateway, err)
}

func (ec *EmployeeController) GetAllEmployees(c *gin.Context) {
	employees, err := ec.Client.Employees(c.Request.Context())
	if err != nil {
		respondRemoteError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of employees", employees)
}

func (ec *EmployeeController) GetEmployee(c *gin.Context) {
	employee, err := ec.Client.Employee(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		respondRemoteError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Employee detail", employee)
}

func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var form validation.EmployeeForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if errs := validation.Check(form); len(errs) > 0 {
		utils.RespondValidationErrors(c, errs)
		return
	}

	employee, err := ec.Client.CreateEmployee(c.Request.Context(), remote.EmployeePayload{
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Role:     form.Role,
		Salary:   form.Salary,
		JoinedAt: form.JoinedAt,
	})
	if err != nil {
		respondRemoteError(c, err)
		return
	}

	utils.InfoLogger.Printf("Employee created: %s", employee.ID)
	utils.RespondJSON(c, http.StatusCreated, "Employee created successfully", employee)
}

func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	var form validation.EmployeeForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if errs := validation.Check(form); len(errs) > 0 {
		utils.RespondValidationErrors(c, errs)
		return
	}

	id := c.Param("employee_id")
	employee, err := ec.Client.UpdateEmployee(c.Request.Context(), id, remote.EmployeePayload{
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Role:     form.Role,
		Salary:   form.Salary,
		JoinedAt: form.JoinedAt,
	})
	if err != nil {
		respondRemoteError(c, err)
		return
	}

	utils.InfoLogger.Printf("Employee %s updated", id)
	utils.RespondJSON(c, http.StatusOK, "Employee updated", employee)
}

func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	id := c.Param("employee_id")
	if err := ec.Client.DeleteEmployee(c.Request.Context(), id); err != nil {
		respondRemoteError(c, err)
		return
	}
	utils.InfoLogger.Printf("Employee %s deleted", id)
	utils.RespondJSON(c, http.StatusOK, "Employee deleted successfully", nil)
}

// PaySalary records a salary payment through the backend.
func (ec *EmployeeController) PaySalary(c *gin.Context) {
	id := c.Param("employee_id")
	var body struct {
		Month      string  `json:"month" binding:"required"`
		Bonus      float64 `json:"bonus"`
		Deductions float64 `json:"deductions"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	payslip, err := ec.Client.PaySalary(c.Request.Context(), id, remote.SalaryPayload{
		Month:  body.Month,
		Bonus:  body.Bonus,
		Deduct: body.Deductions,
	})
	if err != nil {
		respondRemoteError(c, err)
		return
	}

	utils.InfoLogger.Printf("Salary paid to employee %s for %s", id, body.Month)
	utils.RespondJSON(c, http.StatusOK, "Salary paid", payslip)
}

func (ec *EmployeeController) GetPayslips(c *gin.Context) {
	var (
		payslips []models.Payslip
		err      error
	)
	if employeeID := c.Query("employee_id"); employeeID != "" {
		payslips, err = ec.Client.PayslipsByEmployee(c.Request.Context(), employeeID)
	} else {
		payslips, err = ec.Client.Payslips(c.Request.Context())
	}
	if err != nil {
		respondRemoteError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of payslips", payslips)
}

func (ec *EmployeeController) GetAttendance(c *gin.Context) {
	records, err := ec.Client.AttendanceRecords(c.Request.Context())
	if err != nil {
		respondRemoteError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of attendance records", records)
}

func (ec *EmployeeController) AddAttendance(c *gin.Context) {
	var record models.AttendanceRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	created, err := ec.Client.AddAttendanceRecord(c.Request.Context(), record)
	if err != nil {
		respondRemoteError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Attendance recorded", created)
}
