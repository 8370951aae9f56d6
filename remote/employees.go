package remote

import (
	"context"
	"net/http"

	"github.com/YarKhan02/Workshop-sub003/models"
)

// EmployeePayload is the write shape for employee create/update calls.
type EmployeePayload struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Role     string  `json:"role"`
	Salary   float64 `json:"salary"`
	JoinedAt string  `json:"joined_at,omitempty"`
}

type SalaryPayload struct {
	Month  string  `json:"month"` // "2006-01"
	Bonus  float64 `json:"bonus"`
	Deduct float64 `json:"deductions"`
}

func (c *Client) Employees(ctx context.Context) ([]models.Employee, error) {
	var out []models.Employee
	if err := c.fetch(ctx, "employee.list", ListKey("employees"), "/api/employees", &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Employee{}
	}
	return out, nil
}

func (c *Client) Employee(ctx context.Context, id string) (models.Employee, error) {
	var out models.Employee
	err := c.fetch(ctx, "employee.detail", DetailKey("employees", id), "/api/employees/"+id, &out)
	return out, err
}

func (c *Client) CreateEmployee(ctx context.Context, payload EmployeePayload) (models.Employee, error) {
	var out models.Employee
	err := c.mutate(ctx, "employee.create", http.MethodPost, "/api/employees", payload, "", &out)
	return out, err
}

func (c *Client) UpdateEmployee(ctx context.Context, id string, payload EmployeePayload) (models.Employee, error) {
	var out models.Employee
	err := c.mutate(ctx, "employee.update", http.MethodPut, "/api/employees/"+id, payload, id, &out)
	return out, err
}

func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.mutate(ctx, "employee.delete", http.MethodDelete, "/api/employees/"+id, nil, id, nil)
}

// PaySalary records a salary payment for the employee; the payslip listings
// and the employee itself go stale on success.
func (c *Client) PaySalary(ctx context.Context, employeeID string, payload SalaryPayload) (models.Payslip, error) {
	var out models.Payslip
	err := c.mutate(ctx, "salary.pay", http.MethodPost, "/api/employees/"+employeeID+"/salary", payload, employeeID, &out)
	return out, err
}

func (c *Client) Payslips(ctx context.Context) ([]models.Payslip, error) {
	var out []models.Payslip
	if err := c.fetch(ctx, "payslip.list", ListKey("payslips"), "/api/payslips", &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Payslip{}
	}
	return out, nil
}

func (c *Client) PayslipsByEmployee(ctx context.Context, employeeID string) ([]models.Payslip, error) {
	key := Key{Entity: "payslips", Sub: "employee", ID: employeeID}
	var out []models.Payslip
	if err := c.fetch(ctx, "payslip.list", key, "/api/employees/"+employeeID+"/payslips", &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Payslip{}
	}
	return out, nil
}

func (c *Client) AttendanceRecords(ctx context.Context) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	if err := c.fetch(ctx, "attendance.list", ListKey("attendance"), "/api/attendance", &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.AttendanceRecord{}
	}
	return out, nil
}

func (c *Client) AddAttendanceRecord(ctx context.Context, record models.AttendanceRecord) (models.AttendanceRecord, error) {
	var out models.AttendanceRecord
	err := c.mutate(ctx, "attendance.add", http.MethodPost, "/api/attendance", record, "", &out)
	return out, err
}
