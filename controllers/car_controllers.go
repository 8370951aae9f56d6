package controllers

import (
	"errors"
	"net/http"

	"github.com/YarKhan02/Workshop-sub003/store"
	"github.com/YarKhan02/Workshop-sub003/utils"
	"github.com/YarKhan02/Workshop-sub003/validation"
	"github.com/gin-gonic/gin"
)

type CarController struct {
	Store *store.Store
}

func NewCarController(s *store.Store) *CarController {
	return &CarController{Store: s}
}

type UpdateCarInput struct {
	Make  *string `json:"make"`
	Model *string `json:"model"`
	Year  *int    `json:"year"`
	Color *string `json:"color"`
	Plate *string `json:"plate"`
}

func (cc *CarController) CreateCar(c *gin.Context) {
	var form validation.CarForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if errs := validation.Check(form); len(errs) > 0 {
		utils.RespondValidationErrors(c, errs)
		return
	}

	if _, ok := cc.Store.CustomerByID(form.CustomerID); !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("customer not found"))
		return
	}

	car := cc.Store.AddCar(store.CarInput{
		CustomerID: form.CustomerID,
		Make:       form.Make,
		Model:      form.Model,
		Year:       form.Year,
		Color:      form.Color,
		Plate:      form.Plate,
	})

	utils.InfoLogger.Printf("New car registered: %s %s (%s)", car.Make, car.Model, car.Plate)
	utils.RespondJSON(c, http.StatusCreated, "Car created successfully", car)
}

func (cc *CarController) GetAllCars(c *gin.Context) {
	if customerID := c.Query("customer_id"); customerID != "" {
		utils.RespondJSON(c, http.StatusOK, "List of cars", cc.Store.CarsByCustomer(customerID))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of cars", cc.Store.Cars())
}

func (cc *CarController) GetCar(c *gin.Context) {
	car, ok := cc.Store.CarByID(c.Param("car_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("car not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Car detail", gin.H{
		"car":  car,
		"jobs": cc.Store.JobsByCar(car.ID),
	})
}

func (cc *CarController) UpdateCar(c *gin.Context) {
	id := c.Param("car_id")
	var input UpdateCarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	car, ok := cc.Store.UpdateCar(id, store.CarPatch{
		Make:  input.Make,
		Model: input.Model,
		Year:  input.Year,
		Color: input.Color,
		Plate: input.Plate,
	})
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("car not found"))
		return
	}

	utils.InfoLogger.Printf("Car %s updated", car.ID)
	utils.RespondJSON(c, http.StatusOK, "Car updated", car)
}

func (cc *CarController) DeleteCar(c *gin.Context) {
	id := c.Param("car_id")
	if !cc.Store.DeleteCar(id) {
		utils.RespondError(c, http.StatusNotFound, errors.New("car not found"))
		return
	}
	utils.InfoLogger.Printf("Car %s deleted", id)
	utils.RespondJSON(c, http.StatusOK, "Car deleted successfully", nil)
}
