package persistence

import (
	"context"
	"errors"

	"github.com/docs2ai/gateway/internal/domain/catalog"
	"github.com/docs2ai/gateway/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	var p catalog.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindExpensable lists active products flagged can_be_expensed, newest first
func (r *GormProductRepository) FindExpensable(ctx context.Context, filter shared.Filter) (shared.ListPage[catalog.Product], error) {
	query := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("can_be_expensed = ? AND active = ?", true, true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.ListPage[catalog.Product]{}, err
	}

	var products []catalog.Product
	if err := applyWindow(query, filter).Find(&products).Error; err != nil {
		return shared.ListPage[catalog.Product]{}, err
	}
	return shared.ListPage[catalog.Product]{Items: products, Total: total}, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
