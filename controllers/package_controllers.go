package controllers

import (
	"errors"
	"net/http"

	"github.com/YarKhan02/Workshop-sub003/store"
	"github.com/YarKhan02/Workshop-sub003/utils"
	"github.com/YarKhan02/Workshop-sub003/validation"
	"github.com/gin-gonic/gin"
)

type PackageController struct {
	Store *store.Store
}

func NewPackageController(s *store.Store) *PackageController {
	return &PackageController{Store: s}
}

type UpdatePackageInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
	IsActive    *bool    `json:"is_active"`
}

func (pc *PackageController) CreatePackage(c *gin.Context) {
	var form validation.ServicePackageForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if errs := validation.Check(form); len(errs) > 0 {
		utils.RespondValidationErrors(c, errs)
		return
	}

	pkg := pc.Store.AddServicePackage(store.ServicePackageInput{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		Duration:    form.Duration,
		IsActive:    form.IsActive,
	})

	utils.InfoLogger.Printf("New service package created: %s (%s)", pkg.Name, utils.FormatCurrency(pkg.Price))
	utils.RespondJSON(c, http.StatusCreated, "Service package created successfully", pkg)
}

func (pc *PackageController) GetAllPackages(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of service packages", pc.Store.ServicePackages())
}

// GetActivePackages backs the public pricing page.
func (pc *PackageController) GetActivePackages(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of service packages", pc.Store.ActiveServicePackages())
}

func (pc *PackageController) GetPackage(c *gin.Context) {
	pkg, ok := pc.Store.ServicePackageByID(c.Param("package_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("service package not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Service package detail", pkg)
}

func (pc *PackageController) UpdatePackage(c *gin.Context) {
	id := c.Param("package_id")
	var input UpdatePackageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	pkg, ok := pc.Store.UpdateServicePackage(id, store.ServicePackagePatch{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Duration:    input.Duration,
		IsActive:    input.IsActive,
	})
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("service package not found"))
		return
	}

	utils.InfoLogger.Printf("Service package %s updated", pkg.ID)
	utils.RespondJSON(c, http.StatusOK, "Service package updated", pkg)
}

func (pc *PackageController) DeletePackage(c *gin.Context) {
	id := c.Param("package_id")
	if !pc.Store.DeleteServicePackage(id) {
		utils.RespondError(c, http.StatusNotFound, errors.New("service package not found"))
		return
	}
	utils.InfoLogger.Printf("Service package %s deleted", id)
	utils.RespondJSON(c, http.StatusOK, "Service package deleted successfully", nil)
}
