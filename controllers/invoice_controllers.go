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

type InvoiceController struct {
	Store *store.Store
}

func NewInvoiceController(s *store.Store) *InvoiceController {
	return &InvoiceController{Store: s}
}

type UpdateInvoiceInput struct {
	Items         *[]models.InvoiceItem `json:"items"`
	Tax           *float64              `json:"tax"`
	Discount      *float64              `json:"discount"`
	PaymentStatus *models.PaymentStatus `json:"payment_status"`
}

func (ic *InvoiceController) CreateInvoice(c *gin.Context) {
	var form validation.InvoiceForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if errs := validation.Check(form); len(errs) > 0 {
		utils.RespondValidationErrors(c, errs)
		return
	}

	if _, ok := ic.Store.JobByID(form.JobID); !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("job not found"))
		return
	}
	if _, ok := ic.Store.CustomerByID(form.CustomerID); !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("customer not found"))
		return
	}

	items := make([]models.InvoiceItem, 0, len(form.Items))
	for _, it := range form.Items {
		unitPrice := it.UnitPrice
		description := it.Description
		if pkg, ok := ic.Store.ServicePackageByID(it.PackageID); ok {
			if unitPrice == 0 {
				unitPrice = pkg.Price
			}
			if description == "" {
				description = pkg.Name
			}
		}
		items = append(items, models.InvoiceItem{
			PackageID:   it.PackageID,
			Description: description,
			Quantity:    it.Quantity,
			UnitPrice:   unitPrice,
		})
	}

	invoice := ic.Store.AddInvoice(store.InvoiceInput{
		JobID:      form.JobID,
		CustomerID: form.CustomerID,
		Items:      items,
		Tax:        form.Tax,
		Discount:   form.Discount,
	})

	utils.InfoLogger.Printf("New invoice created: %s, total %s", invoice.ID, utils.FormatCurrency(invoice.Total))
	utils.RespondJSON(c, http.StatusCreated, "Invoice created successfully", invoice)
}

func (ic *InvoiceController) GetAllInvoices(c *gin.Context) {
	switch {
	case c.Query("customer_id") != "":
		utils.RespondJSON(c, http.StatusOK, "List of invoices", ic.Store.InvoicesByCustomer(c.Query("customer_id")))
	case c.Query("job_id") != "":
		utils.RespondJSON(c, http.StatusOK, "List of invoices", ic.Store.InvoicesByJob(c.Query("job_id")))
	default:
		utils.RespondJSON(c, http.StatusOK, "List of invoices", ic.Store.Invoices())
	}
}

func (ic *InvoiceController) GetInvoice(c *gin.Context) {
	invoice, ok := ic.Store.InvoiceByID(c.Param("invoice_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("invoice not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Invoice detail", invoice)
}

func (ic *InvoiceController) UpdateInvoice(c *gin.Context) {
	id := c.Param("invoice_id")
	var input UpdateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if input.PaymentStatus != nil && !input.PaymentStatus.IsValid() {
		utils.RespondValidationErrors(c, map[string]string{"payment_status": "oneof"})
		return
	}

	invoice, ok := ic.Store.UpdateInvoice(id, store.InvoicePatch{
		Items:         input.Items,
		Tax:           input.Tax,
		Discount:      input.Discount,
		PaymentStatus: input.PaymentStatus,
	})
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("invoice not found"))
		return
	}

	utils.InfoLogger.Printf("Invoice %s updated (status=%s)", invoice.ID, invoice.PaymentStatus)
	utils.RespondJSON(c, http.StatusOK, "Invoice updated", invoice)
}

func (ic *InvoiceController) DeleteInvoice(c *gin.Context) {
	id := c.Param("invoice_id")
	if !ic.Store.DeleteInvoice(id) {
		utils.RespondError(c, http.StatusNotFound, errors.New("invoice not found"))
		return
	}
	utils.InfoLogger.Printf("Invoice %s deleted", id)
	utils.RespondJSON(c, http.StatusOK, "Invoice deleted successfully", nil)
}
