package handler

import (
	"github.com/docs2ai/gateway/internal/application/identity"
	"github.com/docs2ai/gateway/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ManagerHandler serves expense approver endpoints
type ManagerHandler struct {
	BaseHandler
	managerService *identity.ManagerService
}

// NewManagerHandler creates a new ManagerHandler
func NewManagerHandler(managerService *identity.ManagerService) *ManagerHandler {
	return &ManagerHandler{managerService: managerService}
}

// RegisterRoutes registers manager routes on the API group
func (h *ManagerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/managers", h.ListManagers)
	rg.POST("/managers", h.CreateManager)
}

// ListManagers returns internal users holding the approver group
func (h *ManagerHandler) ListManagers(c *gin.Context) {
	responses, total, err := h.managerService.ListManagers(c.Request.Context(), dto.ParseFilter(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.List(c, responses, len(responses), total)
}

// CreateManager creates a user with the approver group granted
func (h *ManagerHandler) CreateManager(c *gin.Context) {
	var req identity.CreateManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid JSON payload")
		return
	}
	resp, err := h.managerService.CreateManager(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, "Manager created successfully", resp)
}
