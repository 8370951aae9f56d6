package controllers

import (
	"errors"
	"net/http"

	"github.com/YarKhan02/Workshop-sub003/models"
	"github.com/YarKhan02/Workshop-sub003/store"
	"github.com/YarKhan02/Workshop-sub003/utils"
	"github.com/YarKhan02/Workshop-sub003/validation"
	"github.com/gin-gonic/gin"
)

type InventoryController struct {
	Store *store.Store
}

func NewInventoryController(s *store.Store) *InventoryController {
	return &InventoryController{Store: s}
}

type UpdateInventoryInput struct {
	Name         *string                   `json:"name"`
	Category     *models.InventoryCategory `json:"category"`
	CurrentStock *int                      `json:"current_stock"`
	MinimumStock *int                      `json:"minimum_stock"`
	UnitPrice    *float64                  `json:"unit_price"`
}

func (ic *InventoryController) CreateItem(c *gin.Context) {
	var form validation.InventoryItemForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if errs := validation.Check(form); len(errs) > 0 {
		utils.RespondValidationErrors(c, errs)
		return
	}

	item := ic.Store.AddInventoryItem(store.InventoryItemInput{
		Name:         form.Name,
		Category:     form.Category,
		CurrentStock: form.CurrentStock,
		MinimumStock: form.MinimumStock,
		UnitPrice:    form.UnitPrice,
	})

	utils.InfoLogger.Printf("New inventory item: %s (stock=%d)", item.Name, item.CurrentStock)
	utils.RespondJSON(c, http.StatusCreated, "Inventory item created successfully", item)
}

func (ic *InventoryController) GetAllItems(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of inventory items", ic.Store.InventoryItems())
}

func (ic *InventoryController) GetLowStockItems(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of low stock items", ic.Store.LowStockItems())
}

func (ic *InventoryController) GetItem(c *gin.Context) {
	item, ok := ic.Store.InventoryItemByID(c.Param("item_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("inventory item not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory item detail", item)
}

func (ic *InventoryController) UpdateItem(c *gin.Context) {
	id := c.Param("item_id")
	var input UpdateInventoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if input.Category != nil && !input.Category.IsValid() {
		utils.RespondValidationErrors(c, map[string]string{"category": "oneof"})
		return
	}

	item, ok := ic.Store.UpdateInventoryItem(id, store.InventoryItemPatch{
		Name:         input.Name,
		Category:     input.Category,
		CurrentStock: input.CurrentStock,
		MinimumStock: input.MinimumStock,
		UnitPrice:    input.UnitPrice,
	})
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("inventory item not found"))
		return
	}

	utils.InfoLogger.Printf("Inventory item %s updated", item.ID)
	utils.RespondJSON(c, http.StatusOK, "Inventory item updated", item)
}

// AdjustStock -> add or consume stock without replacing the whole record
func (ic *InventoryController) AdjustStock(c *gin.Context) {
	id := c.Param("item_id")
	var body struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, ok := ic.Store.AdjustStock(id, body.Delta)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("inventory item not found"))
		return
	}

	utils.InfoLogger.Printf("Inventory item %s stock adjusted by %d (now %d)", item.ID, body.Delta, item.CurrentStock)
	utils.RespondJSON(c, http.StatusOK, "Stock adjusted", item)
}

func (ic *InventoryController) DeleteItem(c *gin.Context) {
	id := c.Param("item_id")
	if !ic.Store.DeleteInventoryItem(id) {
		utils.RespondError(c, http.StatusNotFound, errors.New("inventory item not found"))
		return
	}
	utils.InfoLogger.Printf("Inventory item %s deleted", id)
	utils.RespondJSON(c, http.StatusOK, "Inventory item deleted successfully", nil)
}
