package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/docs2ai/gateway/internal/domain/accounting"
	"github.com/docs2ai/gateway/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCurrencyRepository implements CurrencyRepository using GORM
type GormCurrencyRepository struct {
	db *gorm.DB
}

// NewGormCurrencyRepository creates a new GormCurrencyRepository
func NewGormCurrencyRepository(db *gorm.DB) *GormCurrencyRepository {
	return &GormCurrencyRepository{db: db}
}

// FindByID finds a currency by raw id, active or not
func (r *GormCurrencyRepository) FindByID(ctx context.Context, id int64) (*accounting.Currency, error) {
	var c accounting.Currency
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindByCode finds a currency by name or symbol, inactive included
func (r *GormCurrencyRepository) FindByCode(ctx context.Context, code string) (*accounting.Currency, error) {
	code = strings.TrimSpace(code)
	var c accounting.Currency
	if err := r.db.WithContext(ctx).
		Where("name = ? OR symbol = ?", strings.ToUpper(code), code).
		First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Save creates or updates a currency
func (r *GormCurrencyRepository) Save(ctx context.Context, c *accounting.Currency) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Ensure GormCurrencyRepository implements CurrencyRepository
var _ accounting.CurrencyRepository = (*GormCurrencyRepository)(nil)
