package validation

import (
	"github.com/YarKhan02/Workshop-sub003/models"
)

// Form structs double as the JSON request bodies of the create endpoints.
// Update endpoints use pointer-field patch bodies and only validate the
// fields that are present.

type CustomerForm struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,phone"`
	Address string `json:"address"`
}

type CarForm struct {
	CustomerID string `json:"customer_id" validate:"required"`
	Make       string `json:"make" validate:"required"`
	Model      string `json:"model" validate:"required"`
	Year       int    `json:"year" validate:"required,gte=1950,lte=2100"`
	Color      string `json:"color"`
	Plate      string `json:"plate" validate:"required"`
}

type JobForm struct {
	CustomerID      string             `json:"customer_id" validate:"required"`
	CarID           string             `json:"car_id" validate:"required"`
	ServiceType     models.ServiceType `json:"service_type" validate:"required,oneof=basic_wash premium_wash interior_detailing exterior_detailing full_detailing ceramic_coating"`
	ScheduledDate   string             `json:"scheduled_date" validate:"required"`
	AssignedStaffID string             `json:"assigned_staff_id"`
	Notes           string             `json:"notes"`
}

type ServicePackageForm struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Duration    int     `json:"duration" validate:"required,gt=0"`
	IsActive    bool    `json:"is_active"`
}

type InvoiceItemForm struct {
	PackageID   string  `json:"package_id" validate:"required"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
}

type InvoiceForm struct {
	JobID      string            `json:"job_id" validate:"required"`
	CustomerID string            `json:"customer_id" validate:"required"`
	Items      []InvoiceItemForm `json:"items" validate:"required,min=1,dive"`
	Tax        float64           `json:"tax" validate:"gte=0"`
	Discount   float64           `json:"discount" validate:"gte=0"`
}

type InventoryItemForm struct {
	Name         string                   `json:"name" validate:"required"`
	Category     models.InventoryCategory `json:"category" validate:"required,oneof=cleaning_supplies polishes_waxes tools_equipment spare_parts consumables"`
	CurrentStock int                      `json:"current_stock" validate:"gte=0"`
	MinimumStock int                      `json:"minimum_stock" validate:"gte=0"`
	UnitPrice    float64                  `json:"unit_price" validate:"gte=0"`
}

type StaffForm struct {
	Name       string           `json:"name" validate:"required"`
	Role       models.StaffRole `json:"role" validate:"required,oneof=manager detailer washer receptionist"`
	Phone      string           `json:"phone" validate:"omitempty,phone"`
	HourlyRate float64          `json:"hourly_rate" validate:"required,gt=0"`
	IsActive   bool             `json:"is_active"`
}

type AttendanceForm struct {
	StaffID  string                  `json:"staff_id" validate:"required"`
	Date     string                  `json:"date" validate:"required,dateformat"`
	CheckIn  string                  `json:"check_in" validate:"omitempty,timeformat"`
	CheckOut string                  `json:"check_out" validate:"omitempty,timeformat"`
	Status   models.AttendanceStatus `json:"status" validate:"required,oneof=present absent half_day leave"`
}

type BookingForm struct {
	CustomerID    string             `json:"customer_id" validate:"required"`
	CarID         string             `json:"car_id" validate:"required"`
	ServiceType   models.ServiceType `json:"service_type" validate:"required,oneof=basic_wash premium_wash interior_detailing exterior_detailing full_detailing ceramic_coating"`
	PreferredDate string             `json:"preferred_date" validate:"required,dateformat"`
	PreferredTime string             `json:"preferred_time" validate:"required,timeformat"`
	Notes         string             `json:"notes"`
}

type EmployeeForm struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    string  `json:"phone" validate:"required,phone"`
	Role     string  `json:"role" validate:"required"`
	Salary   float64 `json:"salary" validate:"required,gt=0"`
	JoinedAt string  `json:"joined_at" validate:"omitempty,dateformat"`
}

type RegisterForm struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin staff"`
}

type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
