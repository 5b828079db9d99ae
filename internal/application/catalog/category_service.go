package catalog

import (
	"context"

	"github.com/docs2ai/gateway/internal/domain/catalog"
	"github.com/docs2ai/gateway/internal/domain/shared"
)

// CategoryService handles expense category operations
type CategoryService struct {
	productRepo catalog.ProductRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(productRepo catalog.ProductRepository) *CategoryService {
	return &CategoryService{productRepo: productRepo}
}

// ListCategories lists products usable as expense categories
func (s *CategoryService) ListCategories(ctx context.Context, filter shared.Filter) ([]CategoryResponse, int64, error) {
	page, err := s.productRepo.FindExpensable(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]CategoryResponse, len(page.Items))
	for i := range page.Items {
		responses[i] = ToCategoryResponse(&page.Items[i])
	}
	return responses, page.Total, nil
}

// CreateCategory creates an expensable product with catalog defaults
func (s *CategoryService) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	product, err := catalog.NewExpenseCategory(req.Name, catalog.ProductType(req.Type))
	if err != nil {
		return nil, err
	}
	product.Description = req.Description
	product.DefaultCode = req.DefaultCode
	product.StandardPrice = req.StandardPrice
	if req.UoM != "" {
		product.UoM = req.UoM
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(product)
	return &resp, nil
}
