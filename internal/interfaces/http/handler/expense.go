package handler

import (
	"github.com/docs2ai/gateway/internal/application/expense"
	"github.com/docs2ai/gateway/internal/interfaces/http/dto"
	"github.com/docs2ai/gateway/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// ExpenseHandler serves employee expense endpoints
type ExpenseHandler struct {
	BaseHandler
	expenseService *expense.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *expense.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// RegisterRoutes registers expense routes on the API group
func (h *ExpenseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/expenses", h.ListExpenses)
	rg.POST("/expenses", h.CreateExpense)
}

// ListExpenses returns expenses, newest first
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	responses, total, err := h.expenseService.ListExpenses(c.Request.Context(), dto.ParseFilter(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.List(c, responses, len(responses), total)
}

// CreateExpense records an expense for an employee or the caller
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req expense.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid JSON payload")
		return
	}
	resp, err := h.expenseService.CreateExpense(c.Request.Context(), middleware.GetUserID(c), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, "Expense created successfully", resp)
}
