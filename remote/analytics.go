package remote

import (
	"context"

	"github.com/YarKhan02/Workshop-sub003/models"
)

// Analytics reads. Each aggregate gets its own cache key so a slow endpoint
// never blocks the others from being served warm.

func (c *Client) MonthlyRevenue(ctx context.Context) ([]models.MonthlyRevenue, error) {
	var out []models.MonthlyRevenue
	if err := c.fetch(ctx, "analytics.monthly_revenue", AnalyticsKey("monthly_revenue"), "/api/analytics/monthly-revenue", &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.MonthlyRevenue{}
	}
	return out, nil
}

func (c *Client) DailyBookings(ctx context.Context) ([]models.DailyBookingStat, error) {
	var out []models.DailyBookingStat
	if err := c.fetch(ctx, "analytics.daily_bookings", AnalyticsKey("daily_bookings"), "/api/analytics/daily-bookings", &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.DailyBookingStat{}
	}
	return out, nil
}

func (c *Client) TopServices(ctx context.Context) ([]models.ServiceStat, error) {
	var out []models.ServiceStat
	if err := c.fetch(ctx, "analytics.top_services", AnalyticsKey("top_services"), "/api/analytics/top-services", &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.ServiceStat{}
	}
	return out, nil
}

func (c *Client) ProfitableServices(ctx context.Context) ([]models.ServiceStat, error) {
	var out []models.ServiceStat
	if err := c.fetch(ctx, "analytics.profitable_services", AnalyticsKey("profitable_services"), "/api/analytics/profitable-services", &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.ServiceStat{}
	}
	return out, nil
}

func (c *Client) PopularServices(ctx context.Context) ([]models.ServiceStat, error) {
	var out []models.ServiceStat
	if err := c.fetch(ctx, "analytics.popular_services", AnalyticsKey("popular_services"), "/api/analytics/popular-services", &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.ServiceStat{}
	}
	return out, nil
}

func (c *Client) CarTypes(ctx context.Context) ([]models.CarTypeStat, error) {
	var out []models.CarTypeStat
	if err := c.fetch(ctx, "analytics.car_types", AnalyticsKey("car_types"), "/api/analytics/car-types", &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.CarTypeStat{}
	}
	return out, nil
}

func (c *Client) YearlyCars(ctx context.Context) ([]models.YearlyCarStat, error) {
	var out []models.YearlyCarStat
	if err := c.fetch(ctx, "analytics.yearly_cars", AnalyticsKey("yearly_cars"), "/api/analytics/yearly-cars", &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.YearlyCarStat{}
	}
	return out, nil
}

func (c *Client) TopSpareParts(ctx context.Context) ([]models.SparePartStat, error) {
	var out []models.SparePartStat
	if err := c.fetch(ctx, "analytics.top_spare_parts", AnalyticsKey("top_spare_parts"), "/api/analytics/top-spare-parts", &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.SparePartStat{}
	}
	return out, nil
}

// SummaryMetrics fetches the headline dashboard numbers. Callers that want
// the always-renderable dashboard behavior substitute ZeroDashboardMetrics
// on error; the client itself never does.
func (c *Client) SummaryMetrics(ctx context.Context) (models.DashboardMetrics, error) {
	var out models.DashboardMetrics
	err := c.fetch(ctx, "analytics.summary", AnalyticsKey("summary"), "/api/analytics/summary", &out)
	return out, err
}
