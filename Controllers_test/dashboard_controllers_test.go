package Controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/YarKhan02/Workshop-sub003/controllers"
	"github.com/YarKhan02/Workshop-sub003/remote"
)

func setupDashboardRouter(client *remote.Client) *gin.Engine {
	router := gin.New()
	dashboardCtrl := controllers.NewDashboardController(client)
	router.GET("/api/dashboard/summary", dashboardCtrl.GetSummary)
	router.GET("/api/dashboard/charts", dashboardCtrl.GetCharts)
	return router
}

func TestDashboardSummary(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/analytics/summary" {
			w.Write([]byte(`{"monthly_revenue":4200,"total_bookings":31,"total_customers":12,"active_jobs":4,"completed_jobs":27,"low_stock_items":2,"pending_invoices":3}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer backend.Close()

	router := setupDashboardRouter(remote.NewClient(backend.URL))
	w := doJSON(t, router, "GET", "/api/dashboard/summary", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := parseResponse(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 4200.0, data["monthly_revenue"])
	assert.Equal(t, 31.0, data["total_bookings"])
}

func TestDashboardSummaryDegradesToZeroes(t *testing.T) {
	// Point the client at a server that is already gone.
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := remote.NewClient(backend.URL)
	backend.Close()

	router := setupDashboardRouter(client)
	w := doJSON(t, router, "GET", "/api/dashboard/summary", nil)

	// The dashboard always renders; metrics fall back to zeroes.
	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseResponse(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 0.0, data["monthly_revenue"])
	assert.Equal(t, 0.0, data["active_jobs"])
}

func TestDashboardChartsDegradeToEmptySeries(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/analytics/monthly-revenue" {
			w.Write([]byte(`[{"month":"2026-08","revenue":4200}]`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer backend.Close()

	router := setupDashboardRouter(remote.NewClient(backend.URL))
	w := doJSON(t, router, "GET", "/api/dashboard/charts", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := parseResponse(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Len(t, data["monthly_revenue"].([]interface{}), 1)
	assert.Empty(t, data["daily_bookings"].([]interface{}))
	assert.Empty(t, data["top_services"].([]interface{}))
}
