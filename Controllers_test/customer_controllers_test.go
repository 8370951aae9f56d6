package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/YarKhan02/Workshop-sub003/controllers"
	"github.com/YarKhan02/Workshop-sub003/store"
)

func setupCustomerRouter(s *store.Store) *gin.Engine {
	router := gin.New()
	customerCtrl := controllers.NewCustomerController(s)
	carCtrl := controllers.NewCarController(s)
	router.POST("/api/customers", customerCtrl.CreateCustomer)
	router.GET("/api/customers", customerCtrl.GetAllCustomers)
	router.GET("/api/customers/:customer_id", customerCtrl.GetCustomer)
	router.PATCH("/api/customers/:customer_id", customerCtrl.UpdateCustomer)
	router.DELETE("/api/customers/:customer_id", customerCtrl.DeleteCustomer)
	router.POST("/api/cars", carCtrl.CreateCar)
	return router
}

func TestCustomerCRUD(t *testing.T) {
	s := store.New()
	router := setupCustomerRouter(s)

	w := doJSON(t, router, "POST", "/api/customers", map[string]string{
		"name":    "Ali Hassan",
		"email":   "ali@example.com",
		"phone":   "+14155550100",
		"address": "12 Main St",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	resp := parseResponse(t, w)
	customer := resp["data"].(map[string]interface{})
	id := customer["id"].(string)
	assert.NotEmpty(t, id)

	// Patch only the phone; everything else stays.
	w = doJSON(t, router, "PATCH", "/api/customers/"+id, map[string]string{
		"phone": "+14155550199",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	resp = parseResponse(t, w)
	updated := resp["data"].(map[string]interface{})
	assert.Equal(t, "+14155550199", updated["phone"])
	assert.Equal(t, "Ali Hassan", updated["name"])

	w = doJSON(t, router, "DELETE", "/api/customers/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/api/customers/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCustomerValidation(t *testing.T) {
	s := store.New()
	router := setupCustomerRouter(s)

	w := doJSON(t, router, "POST", "/api/customers", map[string]string{
		"name":  "No Contact",
		"email": "bad",
		"phone": "xyz",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := parseResponse(t, w)
	assert.Equal(t, false, resp["status"])
	errs := resp["data"].(map[string]interface{})["errors"].(map[string]interface{})
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "phone")
	assert.Empty(t, s.Customers())
}

func TestGetCustomerIncludesRelations(t *testing.T) {
	s := store.New()
	router := setupCustomerRouter(s)

	customer := s.AddCustomer(store.CustomerInput{Name: "Ali", Email: "ali@example.com", Phone: "+14155550100"})

	w := doJSON(t, router, "POST", "/api/cars", map[string]interface{}{
		"customer_id": customer.ID,
		"make":        "Toyota",
		"model":       "Corolla",
		"year":        2021,
		"plate":       "ABC-123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "GET", "/api/customers/"+customer.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := parseResponse(t, w)
	data := resp["data"].(map[string]interface{})
	assert.NotNil(t, data["customer"])
	cars := data["cars"].([]interface{})
	assert.Len(t, cars, 1)
}
