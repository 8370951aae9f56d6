package controllers

import (
	"net/http"

	"github.com/YarKhan02/Workshop-sub003/store"
	"github.com/YarKhan02/Workshop-sub003/utils"
	"github.com/gin-gonic/gin"
)

// SelectionController exposes the dashboard's current customer/job focus so
// detail panes opened in separate views stay in sync.
type SelectionController struct {
	Store *store.Store
}

func NewSelectionController(s *store.Store) *SelectionController {
	return &SelectionController{Store: s}
}

func (sc *SelectionController) GetSelection(c *gin.Context) {
	data := gin.H{"customer": nil, "job": nil}
	if customer, ok := sc.Store.SelectedCustomer(); ok {
		data["customer"] = customer
	}
	if job, ok := sc.Store.SelectedJob(); ok {
		data["job"] = job
	}
	utils.RespondJSON(c, http.StatusOK, "Current selection", data)
}

// SetCustomerSelection replaces the selected customer; an empty id clears it.
func (sc *SelectionController) SetCustomerSelection(c *gin.Context) {
	var body struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	sc.Store.SelectCustomer(body.ID)
	utils.RespondJSON(c, http.StatusOK, "Customer selection updated", nil)
}

func (sc *SelectionController) SetJobSelection(c *gin.Context) {
	var body struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	sc.Store.SelectJob(body.ID)
	utils.RespondJSON(c, http.StatusOK, "Job selection updated", nil)
}
