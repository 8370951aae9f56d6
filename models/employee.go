package models

// Employee, Payslip and AttendanceRecord live in the backend API; the
// dashboard only reads and mutates them through the remote client. Their
// shapes mirror the backend JSON.

type Employee struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Role     string  `json:"role"`
	Salary   float64 `json:"salary"`
	JoinedAt string  `json:"joined_at"`
	IsActive bool    `json:"is_active"`
}

type Payslip struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Month      string  `json:"month"` // "2006-01"
	BaseSalary float64 `json:"base_salary"`
	Bonus      float64 `json:"bonus"`
	Deductions float64 `json:"deductions"`
	NetPay     float64 `json:"net_pay"`
	PaidAt     string  `json:"paid_at,omitempty"`
}

type AttendanceRecord struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	CheckIn    string `json:"check_in,omitempty"`
	CheckOut   string `json:"check_out,omitempty"`
	Status     string `json:"status"`
}
