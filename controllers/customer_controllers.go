package controllers

import (
	"errors"
	"net/http"

	"github.com/YarKhan02/Workshop-sub003/store"
	"github.com/YarKhan02/Workshop-sub003/utils"
	"github.com/YarKhan02/Workshop-sub003/validation"
	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	Store *store.Store
}

func NewCustomerController(s *store.Store) *CustomerController {
	return &CustomerController{Store: s}
}

// UpdateCustomerInput: only the supplied fields are changed.
type UpdateCustomerInput struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var form validation.CustomerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if errs := validation.Check(form); len(errs) > 0 {
		utils.RespondValidationErrors(c, errs)
		return
	}

	customer := cc.Store.AddCustomer(store.CustomerInput{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Address: form.Address,
	})

	utils.InfoLogger.Printf("New customer created: %s (%s)", customer.Name, customer.ID)
	utils.RespondJSON(c, http.StatusCreated, "Customer created successfully", customer)
}

func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of customers", cc.Store.Customers())
}

func (cc *CustomerController) GetCustomer(c *gin.Context) {
	id := c.Param("customer_id")
	customer, ok := cc.Store.CustomerByID(id)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("customer not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer detail", gin.H{
		"customer": customer,
		"cars":     cc.Store.CarsByCustomer(id),
		"jobs":     cc.Store.JobsByCustomer(id),
		"invoices": cc.Store.InvoicesByCustomer(id),
	})
}

func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id := c.Param("customer_id")
	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if input.Email != nil || input.Phone != nil {
		errs := make(map[string]string)
		if input.Email != nil {
			if check := validation.Check(struct {
				Email string `json:"email" validate:"required,email"`
			}{*input.Email}); len(check) > 0 {
				errs["email"] = check["email"]
			}
		}
		if input.Phone != nil && !validation.ValidPhone(*input.Phone) {
			errs["phone"] = "phone"
		}
		if len(errs) > 0 {
			utils.RespondValidationErrors(c, errs)
			return
		}
	}

	customer, ok := cc.Store.UpdateCustomer(id, store.CustomerPatch{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	})
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("customer not found"))
		return
	}

	utils.InfoLogger.Printf("Customer %s updated", customer.ID)
	utils.RespondJSON(c, http.StatusOK, "Customer updated", customer)
}

// DeleteCustomer removes the customer only; their cars, jobs and invoices
// stay behind with dangling references.
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id := c.Param("customer_id")
	if !cc.Store.DeleteCustomer(id) {
		utils.RespondError(c, http.StatusNotFound, errors.New("customer not found"))
		return
	}

	utils.InfoLogger.Printf("Customer %s deleted", id)
	utils.RespondJSON(c, http.StatusOK, "Customer deleted successfully", nil)
}
