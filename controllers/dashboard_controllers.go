package controllers

import (
	"net/http"

	"github.com/YarKhan02/Workshop-sub003/models"
	"github.com/YarKhan02/Workshop-sub003/remote"
	"github.com/YarKhan02/Workshop-sub003/utils"
	"github.com/gin-gonic/gin"
)

// DashboardController aggregates the analytics charts. Every read degrades
// to an empty series (or the zeroed metrics object) when the backend is
// unreachable so the dashboard always renders.
type DashboardController struct {
	Client *remote.Client
}

func NewDashboardController(client *remote.Client) *DashboardController {
	return &DashboardController{Client: client}
}

func (dc *DashboardController) GetSummary(c *gin.Context) {
	metrics, err := dc.Client.SummaryMetrics(c.Request.Context())
	if err != nil {
		utils.ErrorLogger.Printf("summary metrics fetch failed, serving zeroes: %v", err)
		metrics = models.ZeroDashboardMetrics()
	}
	utils.RespondJSON(c, http.StatusOK, "Dashboard summary", metrics)
}

func (dc *DashboardController) GetCharts(c *gin.Context) {
	ctx := c.Request.Context()

	monthlyRevenue, err := dc.Client.MonthlyRevenue(ctx)
	if err != nil {
		utils.ErrorLogger.Printf("monthly revenue fetch failed: %v", err)
		monthlyRevenue = []models.MonthlyRevenue{}
	}
	dailyBookings, err := dc.Client.DailyBookings(ctx)
	if err != nil {
		utils.ErrorLogger.Printf("daily bookings fetch failed: %v", err)
		dailyBookings = []models.DailyBookingStat{}
	}
	topServices, err := dc.Client.TopServices(ctx)
	if err != nil {
		utils.ErrorLogger.Printf("top services fetch failed: %v", err)
		topServices = []models.ServiceStat{}
	}
	carTypes, err := dc.Client.CarTypes(ctx)
	if err != nil {
		utils.ErrorLogger.Printf("car types fetch failed: %v", err)
		carTypes = []models.CarTypeStat{}
	}
	yearlyCars, err := dc.Client.YearlyCars(ctx)
	if err != nil {
		utils.ErrorLogger.Printf("yearly cars fetch failed: %v", err)
		yearlyCars = []models.YearlyCarStat{}
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard charts", gin.H{
		"monthly_revenue": monthlyRevenue,
		"daily_bookings":  dailyBookings,
		"top_services":    topServices,
		"car_types":       carTypes,
		"yearly_cars":     yearlyCars,
	})
}

func (dc *DashboardController) GetServiceInsights(c *gin.Context) {
	ctx := c.Request.Context()

	profitable, err := dc.Client.ProfitableServices(ctx)
	if err != nil {
		utils.ErrorLogger.Printf("profitable services fetch failed: %v", err)
		profitable = []models.ServiceStat{}
	}
	popular, err := dc.Client.PopularServices(ctx)
	if err != nil {
		utils.ErrorLogger.Printf("popular services fetch failed: %v", err)
		popular = []models.ServiceStat{}
	}
	spareParts, err := dc.Client.TopSpareParts(ctx)
	if err != nil {
		utils.ErrorLogger.Printf("top spare parts fetch failed: %v", err)
		spareParts = []models.SparePartStat{}
	}

	utils.RespondJSON(c, http.StatusOK, "Service insights", gin.H{
		"profitable_services": profitable,
		"popular_services":    popular,
		"top_spare_parts":     spareParts,
	})
}
