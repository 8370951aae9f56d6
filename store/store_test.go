package store

import (
	"testing"

	"github.com/YarKhan02/Workshop-sub003/models"
	"github.com/stretchr/testify/assert"
)

func TestAddCustomerAssignsIDAndTimestamps(t *testing.T) {
	s := New()
	c := s.AddCustomer(CustomerInput{Name: "Ali", Email: "ali@example.com", Phone: "+14155550100"})

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, c.CreatedAt, c.UpdatedAt)

	got, ok := s.CustomerByID(c.ID)
	assert.True(t, ok)
	assert.Equal(t, c, got)
}

func TestIDsAreUnique(t *testing.T) {
	s := New()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		c := s.AddCustomer(CustomerInput{Name: "Customer"})
		assert.False(t, seen[c.ID])
		seen[c.ID] = true
	}
}

func TestUpdateCustomerPartialMerge(t *testing.T) {
	s := New()
	c := s.AddCustomer(CustomerInput{Name: "Ali", Email: "ali@example.com", Phone: "+14155550100", Address: "12 Main St"})

	newPhone := "+14155550199"
	updated, ok := s.UpdateCustomer(c.ID, CustomerPatch{Phone: &newPhone})
	assert.True(t, ok)
	assert.Equal(t, newPhone, updated.Phone)
	// Untouched fields survive the patch.
	assert.Equal(t, "Ali", updated.Name)
	assert.Equal(t, "ali@example.com", updated.Email)
	assert.Equal(t, "12 Main St", updated.Address)
	assert.True(t, updated.UpdatedAt.After(c.UpdatedAt) || updated.UpdatedAt.Equal(c.UpdatedAt))
}

func TestUpdateMissingCustomerIsNoOp(t *testing.T) {
	s := New()
	name := "Nobody"
	_, ok := s.UpdateCustomer("missing-id", CustomerPatch{Name: &name})
	assert.False(t, ok)
	assert.Empty(t, s.Customers())
}

func TestDeleteCustomerDoesNotCascade(t *testing.T) {
	s := New()
	c := s.AddCustomer(CustomerInput{Name: "Ali"})
	car := s.AddCar(CarInput{CustomerID: c.ID, Make: "Toyota", Model: "Corolla", Year: 2020, Plate: "ABC-123"})

	assert.True(t, s.DeleteCustomer(c.ID))
	_, ok := s.CustomerByID(c.ID)
	assert.False(t, ok)

	// The car keeps its dangling customer_id; nothing else is removed.
	got, ok := s.CarByID(car.ID)
	assert.True(t, ok)
	assert.Equal(t, c.ID, got.CustomerID)
}

func TestForeignKeyLookupsPreserveInsertionOrder(t *testing.T) {
	s := New()
	owner := s.AddCustomer(CustomerInput{Name: "Ali"})
	other := s.AddCustomer(CustomerInput{Name: "Sara"})

	first := s.AddCar(CarInput{CustomerID: owner.ID, Make: "Honda", Model: "Civic"})
	s.AddCar(CarInput{CustomerID: other.ID, Make: "Ford", Model: "Focus"})
	second := s.AddCar(CarInput{CustomerID: owner.ID, Make: "BMW", Model: "M3"})

	cars := s.CarsByCustomer(owner.ID)
	assert.Len(t, cars, 2)
	assert.Equal(t, first.ID, cars[0].ID)
	assert.Equal(t, second.ID, cars[1].ID)
}

func TestJobStatusFlow(t *testing.T) {
	s := New()
	job := s.AddJob(JobInput{CustomerID: "c1", CarID: "car1", ServiceType: models.ServiceFullDetailing})
	assert.Equal(t, models.JobScheduled, job.Status)

	job, err := s.UpdateJobStatus(job.ID, models.JobInProgress)
	assert.NoError(t, err)
	assert.Equal(t, models.JobInProgress, job.Status)
	assert.NotNil(t, job.StartedAt)

	// Jumping straight to delivered is rejected and leaves the job alone.
	_, err = s.UpdateJobStatus(job.ID, models.JobDelivered)
	assert.Error(t, err)
	unchanged, ok := s.JobByID(job.ID)
	assert.True(t, ok)
	assert.Equal(t, models.JobInProgress, unchanged.Status)

	job, err = s.UpdateJobStatus(job.ID, models.JobCompleted)
	assert.NoError(t, err)
	job, err = s.UpdateJobStatus(job.ID, models.JobDelivered)
	assert.NoError(t, err)
	assert.NotNil(t, job.DeliveredAt)

	// Delivered is terminal: re-asserting the status is rejected and
	// does not refresh the update stamp.
	delivered := job
	_, err = s.UpdateJobStatus(job.ID, models.JobDelivered)
	assert.Error(t, err)
	frozen, ok := s.JobByID(job.ID)
	assert.True(t, ok)
	assert.Equal(t, delivered.UpdatedAt, frozen.UpdatedAt)
}

func TestUpdateJobStatusMissingJob(t *testing.T) {
	s := New()
	_, err := s.UpdateJobStatus("missing", models.JobInProgress)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConvertBooking(t *testing.T) {
	s := New()
	b := s.AddBooking(BookingInput{
		CustomerID:    "c1",
		CarID:         "car1",
		ServiceType:   models.ServicePremiumWash,
		PreferredDate: "2026-09-15",
		PreferredTime: "10:00",
		Notes:         "ring the bell",
	})

	// Pending bookings cannot convert.
	_, err := s.ConvertBooking(b.ID, "staff1")
	assert.ErrorIs(t, err, ErrNotConvertible)

	confirmed := models.BookingConfirmed
	_, ok := s.UpdateBooking(b.ID, BookingPatch{Status: &confirmed})
	assert.True(t, ok)

	job, err := s.ConvertBooking(b.ID, "staff1")
	assert.NoError(t, err)
	assert.Equal(t, models.JobScheduled, job.Status)
	assert.Equal(t, "c1", job.CustomerID)
	assert.Equal(t, models.ServicePremiumWash, job.ServiceType)
	assert.Equal(t, "staff1", job.AssignedStaffID)
	assert.Equal(t, "ring the bell", job.Notes)
	assert.Equal(t, 2026, job.ScheduledDate.Year())
	assert.Equal(t, 10, job.ScheduledDate.Hour())

	after, _ := s.BookingByID(b.ID)
	assert.Equal(t, models.BookingConverted, after.Status)

	// A converted booking cannot convert again.
	_, err = s.ConvertBooking(b.ID, "staff1")
	assert.ErrorIs(t, err, ErrNotConvertible)
}

func TestBookTimeSlotConflict(t *testing.T) {
	s := New()
	slot := s.AddTimeSlot(TimeSlotInput{Date: "2026-09-15", StartTime: "10:00", EndTime: "11:00"})
	assert.True(t, slot.IsAvailable)

	booked, err := s.BookTimeSlot(slot.ID, "job1")
	assert.NoError(t, err)
	assert.False(t, booked.IsAvailable)
	assert.Equal(t, "job1", booked.JobID)

	_, err = s.BookTimeSlot(slot.ID, "job2")
	assert.ErrorIs(t, err, ErrSlotTaken)

	released, ok := s.ReleaseTimeSlot(slot.ID)
	assert.True(t, ok)
	assert.True(t, released.IsAvailable)
	assert.Empty(t, released.JobID)

	_, err = s.BookTimeSlot(slot.ID, "job2")
	assert.NoError(t, err)
}

func TestAvailableTimeSlotsFiltersBooked(t *testing.T) {
	s := New()
	a := s.AddTimeSlot(TimeSlotInput{Date: "2026-09-15", StartTime: "09:00", EndTime: "10:00"})
	b := s.AddTimeSlot(TimeSlotInput{Date: "2026-09-15", StartTime: "10:00", EndTime: "11:00"})
	s.AddTimeSlot(TimeSlotInput{Date: "2026-09-16", StartTime: "09:00", EndTime: "10:00"})

	_, err := s.BookTimeSlot(a.ID, "job1")
	assert.NoError(t, err)

	available := s.AvailableTimeSlots("2026-09-15")
	assert.Len(t, available, 1)
	assert.Equal(t, b.ID, available[0].ID)

	assert.True(t, s.HasTimeSlot("2026-09-15", "09:00"))
	assert.False(t, s.HasTimeSlot("2026-09-15", "12:00"))
}

func TestAdjustStockClampsAtZero(t *testing.T) {
	s := New()
	item := s.AddInventoryItem(InventoryItemInput{
		Name: "Wax", Category: models.CategoryPolishesWaxes,
		CurrentStock: 5, MinimumStock: 3, UnitPrice: 12,
	})

	item, ok := s.AdjustStock(item.ID, -2)
	assert.True(t, ok)
	assert.Equal(t, 3, item.CurrentStock)

	item, ok = s.AdjustStock(item.ID, -10)
	assert.True(t, ok)
	assert.Equal(t, 0, item.CurrentStock)
}

func TestLowStockItems(t *testing.T) {
	s := New()
	low := s.AddInventoryItem(InventoryItemInput{Name: "Shampoo", Category: models.CategoryCleaningSupplies, CurrentStock: 1, MinimumStock: 5})
	s.AddInventoryItem(InventoryItemInput{Name: "Towels", Category: models.CategoryConsumables, CurrentStock: 50, MinimumStock: 10})

	items := s.LowStockItems()
	assert.Len(t, items, 1)
	assert.Equal(t, low.ID, items[0].ID)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	s := New()
	u, err := s.RegisterUser("Admin", "Admin@Example.com", "supersecret", "admin")
	assert.NoError(t, err)
	assert.Equal(t, "admin@example.com", u.Email)
	assert.NotEqual(t, "supersecret", u.PasswordHash)

	_, err = s.RegisterUser("Dup", "admin@example.com", "whatever1", "staff")
	assert.ErrorIs(t, err, ErrEmailTaken)

	got, err := s.Authenticate("ADMIN@example.com", "supersecret")
	assert.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.Authenticate("admin@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Authenticate("ghost@example.com", "supersecret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSelectionState(t *testing.T) {
	s := New()
	c := s.AddCustomer(CustomerInput{Name: "Ali"})

	_, ok := s.SelectedCustomer()
	assert.False(t, ok)

	s.SelectCustomer(c.ID)
	got, ok := s.SelectedCustomer()
	assert.True(t, ok)
	assert.Equal(t, c.ID, got.ID)

	// Clearing the selection.
	s.SelectCustomer("")
	_, ok = s.SelectedCustomer()
	assert.False(t, ok)

	// Deleting the selected customer leaves a dangling selection that
	// resolves to nothing.
	s.SelectCustomer(c.ID)
	s.DeleteCustomer(c.ID)
	_, ok = s.SelectedCustomer()
	assert.False(t, ok)
}

func TestNotificationsLifecycle(t *testing.T) {
	s := New()
	n := s.AddNotification(models.NotificationWarning, "Low stock alert", "Wax is running out")
	assert.False(t, n.IsRead)

	assert.Len(t, s.UnreadNotifications(), 1)
	assert.True(t, s.MarkNotificationRead(n.ID))
	assert.Empty(t, s.UnreadNotifications())
	assert.Len(t, s.Notifications(), 1)

	assert.True(t, s.DeleteNotification(n.ID))
	assert.Empty(t, s.Notifications())
	assert.False(t, s.MarkNotificationRead(n.ID))
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	s := New()
	s.SeedDefaults()
	first := s.ServicePackages()
	assert.Len(t, first, 6)

	s.SeedDefaults()
	assert.Len(t, s.ServicePackages(), 6)
}
