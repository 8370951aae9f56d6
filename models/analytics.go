package models

// Analytics aggregates returned by the backend API. Charts render these
// as-is; a failed fetch degrades to an empty slice or ZeroDashboardMetrics
// so the dashboard always renders.

type MonthlyRevenue struct {
	Month   string  `json:"month"` // "2006-01"
	Revenue float64 `json:"revenue"`
}

type DailyBookingStat struct {
	Date     string `json:"date"`
	Bookings int    `json:"bookings"`
}

type ServiceStat struct {
	ServiceType string  `json:"service_type"`
	Count       int     `json:"count"`
	Revenue     float64 `json:"revenue"`
}

type CarTypeStat struct {
	Make  string `json:"make"`
	Count int    `json:"count"`
}

type YearlyCarStat struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

type SparePartStat struct {
	Name     string  `json:"name"`
	Used     int     `json:"used"`
	Spending float64 `json:"spending"`
}

type DashboardMetrics struct {
	MonthlyRevenue  float64 `json:"monthly_revenue"`
	TotalBookings   int     `json:"total_bookings"`
	TotalCustomers  int     `json:"total_customers"`
	ActiveJobs      int     `json:"active_jobs"`
	CompletedJobs   int     `json:"completed_jobs"`
	LowStockItems   int     `json:"low_stock_items"`
	PendingInvoices int     `json:"pending_invoices"`
}

// ZeroDashboardMetrics is the documented fallback when the metrics fetch
// fails: the dashboard shows zeroes instead of an error banner.
func ZeroDashboardMetrics() DashboardMetrics {
	return DashboardMetrics{}
}
