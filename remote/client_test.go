package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL), srv
}

func TestFetchServesSecondReadFromCache(t *testing.T) {
	var hits int32
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`[{"id":"e1","name":"Ana"}]`))
	}))
	defer srv.Close()

	ctx := context.Background()
	first, err := c.Employees(ctx)
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := c.Employees(ctx)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestMutateInvalidatesDeclaredKeys(t *testing.T) {
	var listHits int32
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/employees":
			atomic.AddInt32(&listHits, 1)
			w.Write([]byte(`[{"id":"e1"}]`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/employees":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"e2","name":"New"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	_, err := c.Employees(ctx)
	assert.NoError(t, err)

	created, err := c.CreateEmployee(ctx, EmployeePayload{Name: "New", Email: "n@x.com", Phone: "+10000000000", Role: "detailer", Salary: 900})
	assert.NoError(t, err)
	assert.Equal(t, "e2", created.ID)

	// The employees listing went stale, so the next read goes remote.
	_, err = c.Employees(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&listHits))
}

func TestFailedMutationLeavesCacheIntact(t *testing.T) {
	var listHits int32
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			atomic.AddInt32(&listHits, 1)
			w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	_, err := c.Employees(ctx)
	assert.NoError(t, err)

	_, err = c.CreateEmployee(ctx, EmployeePayload{Name: "X"})
	assert.Error(t, err)
	var remoteErr *Error
	assert.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusInternalServerError, remoteErr.Status)

	_, err = c.Employees(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&listHits))
}

func TestNullListDecodesToEmptySlice(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	}))
	defer srv.Close()

	employees, err := c.Employees(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, employees)
	assert.Empty(t, employees)
}

func TestRemoteErrorCarriesStatus(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := c.Employee(context.Background(), "ghost")
	var remoteErr *Error
	assert.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusNotFound, remoteErr.Status)
	assert.Equal(t, "employee.detail", remoteErr.Op)
	assert.Contains(t, remoteErr.Error(), "404")
}

func TestAnalyticsEndpointsAreCachedIndependently(t *testing.T) {
	var revenueHits, bookingsHits int32
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/analytics/monthly-revenue":
			atomic.AddInt32(&revenueHits, 1)
			w.Write([]byte(`[{"month":"2026-08","revenue":4200}]`))
		case "/api/analytics/daily-bookings":
			atomic.AddInt32(&bookingsHits, 1)
			w.Write([]byte(`[{"date":"2026-08-30","bookings":7}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	revenue, err := c.MonthlyRevenue(ctx)
	assert.NoError(t, err)
	assert.Len(t, revenue, 1)
	assert.Equal(t, 4200.0, revenue[0].Revenue)

	bookings, err := c.DailyBookings(ctx)
	assert.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.Equal(t, 7, bookings[0].Bookings)

	_, err = c.MonthlyRevenue(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&revenueHits))
	assert.Equal(t, int32(1), atomic.LoadInt32(&bookingsHits))
}
