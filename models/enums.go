package models

// Closed enumerations shared by the whole application. Every enumerated
// field on an entity only ever takes values from these sets.

type ServiceType string

const (
	ServiceBasicWash         ServiceType = "basic_wash"
	ServicePremiumWash       ServiceType = "premium_wash"
	ServiceInteriorDetailing ServiceType = "interior_detailing"
	ServiceExteriorDetailing ServiceType = "exterior_detailing"
	ServiceFullDetailing     ServiceType = "full_detailing"
	ServiceCeramicCoating    ServiceType = "ceramic_coating"
)

func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceBasicWash, ServicePremiumWash, ServiceInteriorDetailing,
		ServiceExteriorDetailing, ServiceFullDetailing, ServiceCeramicCoating:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "pending"
	PaymentPartiallyPaid PaymentStatus = "partially_paid"
	PaymentPaid          PaymentStatus = "paid"
	PaymentRefunded      PaymentStatus = "refunded"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPartiallyPaid, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

type StaffRole string

const (
	RoleManager      StaffRole = "manager"
	RoleDetailer     StaffRole = "detailer"
	RoleWasher       StaffRole = "washer"
	RoleReceptionist StaffRole = "receptionist"
)

func (r StaffRole) IsValid() bool {
	switch r {
	case RoleManager, RoleDetailer, RoleWasher, RoleReceptionist:
		return true
	}
	return false
}

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceHalfDay AttendanceStatus = "half_day"
	AttendanceLeave   AttendanceStatus = "leave"
)

func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceHalfDay, AttendanceLeave:
		return true
	}
	return false
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingConverted BookingStatus = "converted"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingConverted, BookingCancelled:
		return true
	}
	return false
}

// PurchaseOrderStatus belongs to the restocking flow handled by the backend;
// the enum lives here with the other closed sets.
type PurchaseOrderStatus string

const (
	PurchaseOrderDraft    PurchaseOrderStatus = "draft"
	PurchaseOrderOrdered  PurchaseOrderStatus = "ordered"
	PurchaseOrderReceived PurchaseOrderStatus = "received"
	PurchaseOrderCanceled PurchaseOrderStatus = "cancelled"
)

func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderDraft, PurchaseOrderOrdered, PurchaseOrderReceived, PurchaseOrderCanceled:
		return true
	}
	return false
}

type InventoryCategory string

const (
	CategoryCleaningSupplies InventoryCategory = "cleaning_supplies"
	CategoryPolishesWaxes    InventoryCategory = "polishes_waxes"
	CategoryToolsEquipment   InventoryCategory = "tools_equipment"
	CategorySpareParts       InventoryCategory = "spare_parts"
	CategoryConsumables      InventoryCategory = "consumables"
)

func (c InventoryCategory) IsValid() bool {
	switch c {
	case CategoryCleaningSupplies, CategoryPolishesWaxes, CategoryToolsEquipment,
		CategorySpareParts, CategoryConsumables:
		return true
	}
	return false
}

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationInfo, NotificationSuccess, NotificationWarning, NotificationError:
		return true
	}
	return false
}
