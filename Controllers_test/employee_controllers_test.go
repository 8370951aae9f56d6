package Controllers_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/YarKhan02/Workshop-sub003/controllers"
	"github.com/YarKhan02/Workshop-sub003/remote"
)

func setupEmployeeRouter(client *remote.Client) *gin.Engine {
	router := gin.New()
	employeeCtrl := controllers.NewEmployeeController(client)
	router.GET("/api/hr/employees", employeeCtrl.GetAllEmployees)
	router.GET("/api/hr/employees/:employee_id", employeeCtrl.GetEmployee)
	router.POST("/api/hr/employees", employeeCtrl.CreateEmployee)
	return router
}

func TestGetAllEmployeesCachesBackendReads(t *testing.T) {
	var hits int32
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`[{"id":"e1","name":"Ana","role":"detailer"}]`))
	}))
	defer backend.Close()

	router := setupEmployeeRouter(remote.NewClient(backend.URL))

	for i := 0; i < 3; i++ {
		w := doJSON(t, router, "GET", "/api/hr/employees", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		employees := resp["data"].([]interface{})
		assert.Len(t, employees, 1)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestGetEmployeeNotFoundPassesThrough(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer backend.Close()

	router := setupEmployeeRouter(remote.NewClient(backend.URL))
	w := doJSON(t, router, "GET", "/api/hr/employees/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmployeeEndpointsSurfaceBackendOutage(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := remote.NewClient(backend.URL)
	backend.Close()

	router := setupEmployeeRouter(client)
	w := doJSON(t, router, "GET", "/api/hr/employees", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestCreateEmployeeValidatesBeforeCalling(t *testing.T) {
	var hits int32
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer backend.Close()

	router := setupEmployeeRouter(remote.NewClient(backend.URL))
	w := doJSON(t, router, "POST", "/api/hr/employees", map[string]interface{}{
		"name":   "",
		"email":  "broken",
		"phone":  "abc",
		"role":   "",
		"salary": 0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func TestCreateEmployeeInvalidatesListing(t *testing.T) {
	var listHits int32
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			atomic.AddInt32(&listHits, 1)
			w.Write([]byte(`[]`))
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"e9","name":"New Hire"}`))
		}
	}))
	defer backend.Close()

	router := setupEmployeeRouter(remote.NewClient(backend.URL))

	doJSON(t, router, "GET", "/api/hr/employees", nil)
	doJSON(t, router, "GET", "/api/hr/employees", nil)
	assert.Equal(t, int32(1), atomic.LoadInt32(&listHits))

	w := doJSON(t, router, "POST", "/api/hr/employees", map[string]interface{}{
		"name":   "New Hire",
		"email":  "new@example.com",
		"phone":  "+14155550123",
		"role":   "washer",
		"salary": 2800,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	doJSON(t, router, "GET", "/api/hr/employees", nil)
	assert.Equal(t, int32(2), atomic.LoadInt32(&listHits))
}
