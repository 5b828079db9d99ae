package catalog

import (
	"context"

	"github.com/docs2ai/gateway/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id int64) (*Product, error)

	// FindExpensable lists active products flagged can_be_expensed, newest first
	FindExpensable(ctx context.Context, filter shared.Filter) (shared.ListPage[Product], error)

	// Save creates or updates a product
	Save(ctx context.Context, p *Product) error
}
