package catalog

import (
	"github.com/docs2ai/gateway/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest is the payload for creating an expense category
type CreateCategoryRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	DefaultCode   string          `json:"default_code"`
	Type          string          `json:"type"`
	StandardPrice decimal.Decimal `json:"standard_price"`
	UoM           string          `json:"uom"`
}

// CategoryResponse is the API shape of an expense category
type CategoryResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	DefaultCode   string          `json:"default_code,omitempty"`
	Type          string          `json:"type"`
	StandardPrice decimal.Decimal `json:"standard_price"`
	UoM           string          `json:"uom"`
	CanBeExpensed bool            `json:"can_be_expensed"`
	PurchaseOK    bool            `json:"purchase_ok"`
	Active        bool            `json:"active"`
}

// ToCategoryResponse converts a domain product to its API shape
func ToCategoryResponse(p *catalog.Product) CategoryResponse {
	return CategoryResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		DefaultCode:   p.DefaultCode,
		Type:          string(p.Type),
		StandardPrice: p.StandardPrice,
		UoM:           p.UoM,
		CanBeExpensed: p.CanBeExpensed,
		PurchaseOK:    p.PurchaseOK,
		Active:        p.Active,
	}
}
