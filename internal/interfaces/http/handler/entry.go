package handler

import (
	"github.com/docs2ai/gateway/internal/application/accounting"
	"github.com/docs2ai/gateway/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// EntryHandler serves invoice, purchase entry, and vendor bill endpoints
type EntryHandler struct {
	BaseHandler
	entryService *accounting.EntryService
}

// NewEntryHandler creates a new EntryHandler
func NewEntryHandler(entryService *accounting.EntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// RegisterRoutes registers entry routes on the API group
func (h *EntryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/sales-entries", h.ListSales)
	rg.POST("/sales-entries", h.CreateSales)
	rg.GET("/purchase-entries", h.ListPurchases)
	rg.POST("/purchase-entries", h.CreatePurchase)
	rg.GET("/bills", h.ListBills)
	rg.POST("/bills", h.CreateBill)
}

// ListSales returns customer invoices and credit notes
func (h *EntryHandler) ListSales(c *gin.Context) {
	responses, total, err := h.entryService.ListSales(c.Request.Context(), dto.ParseFilter(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.List(c, responses, len(responses), total)
}

// CreateSales creates a draft customer invoice
func (h *EntryHandler) CreateSales(c *gin.Context) {
	var req accounting.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid JSON payload")
		return
	}
	resp, err := h.entryService.CreateSalesEntry(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, "Sales entry created successfully", resp)
}

// ListPurchases returns vendor bills and credit notes
func (h *EntryHandler) ListPurchases(c *gin.Context) {
	responses, total, err := h.entryService.ListPurchases(c.Request.Context(), dto.ParseFilter(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.List(c, responses, len(responses), total)
}

// CreatePurchase creates a draft vendor bill
func (h *EntryHandler) CreatePurchase(c *gin.Context) {
	var req accounting.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid JSON payload")
		return
	}
	resp, err := h.entryService.CreatePurchaseEntry(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, "Purchase entry created successfully", resp)
}

// ListBills returns vendor bills and purchase receipts
func (h *EntryHandler) ListBills(c *gin.Context) {
	responses, total, err := h.entryService.ListBills(c.Request.Context(), dto.ParseFilter(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.List(c, responses, len(responses), total)
}

// CreateBill creates and posts a vendor bill or purchase receipt
func (h *EntryHandler) CreateBill(c *gin.Context) {
	var req accounting.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid JSON payload")
		return
	}
	resp, err := h.entryService.CreateBill(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, "Bill created successfully", resp)
}
