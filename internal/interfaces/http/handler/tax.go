package handler

import (
	"github.com/docs2ai/gateway/internal/application/accounting"
	"github.com/docs2ai/gateway/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// TaxHandler serves tax catalog endpoints
type TaxHandler struct {
	BaseHandler
	taxService *accounting.TaxService
}

// NewTaxHandler creates a new TaxHandler
func NewTaxHandler(taxService *accounting.TaxService) *TaxHandler {
	return &TaxHandler{taxService: taxService}
}

// RegisterRoutes registers tax routes on the API group
func (h *TaxHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/taxes", h.ListTaxes)
	rg.POST("/taxes", h.CreateTax)
}

// ListTaxes returns active taxes, optionally filtered by type_tax_use
func (h *TaxHandler) ListTaxes(c *gin.Context) {
	responses, total, err := h.taxService.ListTaxes(c.Request.Context(), c.Query("type_tax_use"), dto.ParseFilter(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.List(c, responses, len(responses), total)
}

// CreateTax creates a tax with its default distribution
func (h *TaxHandler) CreateTax(c *gin.Context) {
	var req accounting.CreateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid JSON payload")
		return
	}
	resp, err := h.taxService.CreateTax(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, "Tax created successfully", resp)
}
