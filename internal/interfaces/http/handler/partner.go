package handler

import (
	"strconv"

	"github.com/docs2ai/gateway/internal/application/partner"
	"github.com/docs2ai/gateway/internal/domain/shared"
	"github.com/docs2ai/gateway/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// PartnerHandler serves customer and vendor endpoints
type PartnerHandler struct {
	BaseHandler
	partnerService *partner.PartnerService
}

// NewPartnerHandler creates a new PartnerHandler
func NewPartnerHandler(partnerService *partner.PartnerService) *PartnerHandler {
	return &PartnerHandler{partnerService: partnerService}
}

// RegisterRoutes registers partner routes on the API group
func (h *PartnerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/customers", h.ListCustomers)
	rg.POST("/customers", h.CreateCustomer)
	rg.GET("/vendors", h.ListVendors)
	rg.POST("/vendors", h.CreateVendor)
	rg.GET("/vendors/:id", h.GetVendor)
	rg.DELETE("/vendors/:id", h.DeleteVendor)
}

// ListCustomers returns partners acting as customers
func (h *PartnerHandler) ListCustomers(c *gin.Context) {
	responses, total, err := h.partnerService.ListCustomers(c.Request.Context(), dto.ParseFilter(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.List(c, responses, len(responses), total)
}

// CreateCustomer creates a partner with customer rank
func (h *PartnerHandler) CreateCustomer(c *gin.Context) {
	var req partner.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid JSON payload")
		return
	}
	resp, err := h.partnerService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, "Customer created successfully", resp)
}

// ListVendors returns partners acting as vendors
func (h *PartnerHandler) ListVendors(c *gin.Context) {
	responses, total, err := h.partnerService.ListVendors(c.Request.Context(), dto.ParseFilter(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.List(c, responses, len(responses), total)
}

// CreateVendor creates a partner with supplier rank
func (h *PartnerHandler) CreateVendor(c *gin.Context) {
	var req partner.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid JSON payload")
		return
	}
	resp, err := h.partnerService.CreateVendor(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, "Vendor created successfully", resp)
}

// GetVendor returns one vendor by id
func (h *PartnerHandler) GetVendor(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Error(c, err)
		return
	}
	resp, err := h.partnerService.GetVendor(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, "Vendor retrieved successfully", resp)
}

// DeleteVendor permanently removes a vendor
func (h *PartnerHandler) DeleteVendor(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Error(c, err)
		return
	}
	if err := h.partnerService.DeleteVendor(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, "Vendor deleted successfully", nil)
}

// parseID reads the numeric :id path parameter
func parseID(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, shared.NewValidationError("Invalid id: " + raw)
	}
	return id, nil
}
