package router

import (
	"time"

	"github.com/YarKhan02/Workshop-sub003/controllers"
	"github.com/YarKhan02/Workshop-sub003/middlewares"
	"github.com/YarKhan02/Workshop-sub003/remote"
	"github.com/YarKhan02/Workshop-sub003/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(s *store.Store, client *remote.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	// Registered before any route so every handler chain carries it.
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	userCtrl := controllers.NewUserController(s)
	customerCtrl := controllers.NewCustomerController(s)
	carCtrl := controllers.NewCarController(s)
	jobCtrl := controllers.NewJobController(s)
	packageCtrl := controllers.NewPackageController(s)
	invoiceCtrl := controllers.NewInvoiceController(s)
	inventoryCtrl := controllers.NewInventoryController(s)
	staffCtrl := controllers.NewStaffController(s)
	bookingCtrl := controllers.NewBookingController(s)
	slotCtrl := controllers.NewTimeSlotController(s)
	notificationCtrl := controllers.NewNotificationController(s)
	selectionCtrl := controllers.NewSelectionController(s)
	employeeCtrl := controllers.NewEmployeeController(client)
	dashboardCtrl := controllers.NewDashboardController(client)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/api/auth")
	auth.Use(middlewares.NewStrictRateLimiter())
	{
		auth.POST("/register", userCtrl.Register)
		auth.POST("/login", userCtrl.Login)
	}

	// The booking form runs without a login: walk-ins register themselves
	// and their car, then post the booking intent.
	r.GET("/api/packages/active", packageCtrl.GetActivePackages)
	r.GET("/api/timeslots/available", slotCtrl.GetAvailableSlots)
	r.POST("/api/customers", customerCtrl.CreateCustomer)
	r.POST("/api/cars", carCtrl.CreateCar)
	r.POST("/api/bookings", bookingCtrl.CreateBooking)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())

	api.GET("/auth/me", userCtrl.Me)

	// CUSTOMERS (creation is public, see above)
	api.GET("/customers", customerCtrl.GetAllCustomers)
	api.GET("/customers/:customer_id", customerCtrl.GetCustomer)
	api.PATCH("/customers/:customer_id", customerCtrl.UpdateCustomer)
	api.DELETE("/customers/:customer_id", customerCtrl.DeleteCustomer)

	// CARS (creation is public, see above)
	api.GET("/cars", carCtrl.GetAllCars)
	api.GET("/cars/:car_id", carCtrl.GetCar)
	api.PATCH("/cars/:car_id", carCtrl.UpdateCar)
	api.DELETE("/cars/:car_id", carCtrl.DeleteCar)

	// JOBS
	api.POST("/jobs", jobCtrl.CreateJob)
	api.GET("/jobs", jobCtrl.GetAllJobs)
	api.GET("/jobs/:job_id", jobCtrl.GetJob)
	api.PATCH("/jobs/:job_id", jobCtrl.UpdateJob)
	api.PATCH("/jobs/:job_id/status", jobCtrl.UpdateJobStatus)
	api.DELETE("/jobs/:job_id", jobCtrl.DeleteJob)

	// SERVICE PACKAGES
	api.POST("/packages", packageCtrl.CreatePackage)
	api.GET("/packages", packageCtrl.GetAllPackages)
	api.GET("/packages/:package_id", packageCtrl.GetPackage)
	api.PATCH("/packages/:package_id", packageCtrl.UpdatePackage)
	api.DELETE("/packages/:package_id", packageCtrl.DeletePackage)

	// INVOICES
	api.POST("/invoices", invoiceCtrl.CreateInvoice)
	api.GET("/invoices", invoiceCtrl.GetAllInvoices)
	api.GET("/invoices/:invoice_id", invoiceCtrl.GetInvoice)
	api.PATCH("/invoices/:invoice_id", invoiceCtrl.UpdateInvoice)
	api.DELETE("/invoices/:invoice_id", invoiceCtrl.DeleteInvoice)

	// INVENTORY
	api.POST("/inventory", inventoryCtrl.CreateItem)
	api.GET("/inventory", inventoryCtrl.GetAllItems)
	api.GET("/inventory/low-stock", inventoryCtrl.GetLowStockItems)
	api.GET("/inventory/:item_id", inventoryCtrl.GetItem)
	api.PATCH("/inventory/:item_id", inventoryCtrl.UpdateItem)
	api.POST("/inventory/:item_id/adjust", inventoryCtrl.AdjustStock)
	api.DELETE("/inventory/:item_id", inventoryCtrl.DeleteItem)

	// STAFF + local attendance
	api.POST("/staff", staffCtrl.CreateStaff)
	api.GET("/staff", staffCtrl.GetAllStaff)
	api.GET("/staff/:staff_id", staffCtrl.GetStaff)
	api.PATCH("/staff/:staff_id", staffCtrl.UpdateStaff)
	api.DELETE("/staff/:staff_id", staffCtrl.DeleteStaff)
	api.GET("/staff/:staff_id/attendance", staffCtrl.GetAttendanceByStaff)
	api.POST("/attendance", staffCtrl.AddAttendance)
	api.PATCH("/attendance/:attendance_id", staffCtrl.UpdateAttendance)

	// BOOKINGS
	api.GET("/bookings", bookingCtrl.GetAllBookings)
	api.GET("/bookings/:booking_id", bookingCtrl.GetBooking)
	api.PATCH("/bookings/:booking_id", bookingCtrl.UpdateBooking)
	api.POST("/bookings/:booking_id/convert", bookingCtrl.ConvertBooking)
	api.DELETE("/bookings/:booking_id", bookingCtrl.DeleteBooking)

	// TIME SLOTS
	api.GET("/timeslots", slotCtrl.GetSlotsByDate)
	api.POST("/timeslots", slotCtrl.CreateSlot)
	api.POST("/timeslots/:slot_id/book", slotCtrl.BookSlot)
	api.POST("/timeslots/:slot_id/release", slotCtrl.ReleaseSlot)
	api.DELETE("/timeslots/:slot_id", slotCtrl.DeleteSlot)

	// NOTIFICATIONS
	api.GET("/notifications", notificationCtrl.GetAllNotifications)
	api.PATCH("/notifications/:notification_id/read", notificationCtrl.MarkAsRead)
	api.DELETE("/notifications/:notification_id", notificationCtrl.DeleteNotification)

	// SELECTION (shared dashboard focus)
	api.GET("/selection", selectionCtrl.GetSelection)
	api.PUT("/selection/customer", selectionCtrl.SetCustomerSelection)
	api.PUT("/selection/job", selectionCtrl.SetJobSelection)

	// HR data proxied from the backend API. Mutations are admin-only.
	hr := api.Group("/hr")
	{
		hr.GET("/employees", employeeCtrl.GetAllEmployees)
		hr.GET("/employees/:employee_id", employeeCtrl.GetEmployee)
		hr.POST("/employees", middlewares.RequireRole("admin"), employeeCtrl.CreateEmployee)
		hr.PUT("/employees/:employee_id", middlewares.RequireRole("admin"), employeeCtrl.UpdateEmployee)
		hr.DELETE("/employees/:employee_id", middlewares.RequireRole("admin"), employeeCtrl.DeleteEmployee)
		hr.POST("/employees/:employee_id/salary", middlewares.RequireRole("admin"), employeeCtrl.PaySalary)
		hr.GET("/payslips", employeeCtrl.GetPayslips)
		hr.GET("/attendance", employeeCtrl.GetAttendance)
		hr.POST("/attendance", employeeCtrl.AddAttendance)
	}

	// DASHBOARD
	api.GET("/dashboard/summary", dashboardCtrl.GetSummary)
	api.GET("/dashboard/charts", dashboardCtrl.GetCharts)
	api.GET("/dashboard/services", dashboardCtrl.GetServiceInsights)

	return r
}
