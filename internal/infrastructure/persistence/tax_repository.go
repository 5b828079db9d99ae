package persistence

import (
	"context"
	"errors"

	"github.com/docs2ai/gateway/internal/domain/accounting"
	"github.com/docs2ai/gateway/internal/domain/shared"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormTaxRepository implements TaxRepository using GORM
type GormTaxRepository struct {
	db *gorm.DB
}

// NewGormTaxRepository creates a new GormTaxRepository
func NewGormTaxRepository(db *gorm.DB) *GormTaxRepository {
	return &GormTaxRepository{db: db}
}

// FindByID finds a tax with its repartition lines
func (r *GormTaxRepository) FindByID(ctx context.Context, id int64) (*accounting.Tax, error) {
	var t accounting.Tax
	if err := r.db.WithContext(ctx).Preload("Repartition").First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// FindByUse lists taxes, optionally restricted to one tax use
func (r *GormTaxRepository) FindByUse(ctx context.Context, use accounting.TaxUse, filter shared.Filter) (shared.ListPage[accounting.Tax], error) {
	query := r.db.WithContext(ctx).Model(&accounting.Tax{}).Where("active = ?", true)
	if use != "" {
		query = query.Where("type_tax_use = ?", use)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.ListPage[accounting.Tax]{}, err
	}

	var taxes []accounting.Tax
	if err := applyWindow(query, filter).Preload("Repartition").Find(&taxes).Error; err != nil {
		return shared.ListPage[accounting.Tax]{}, err
	}
	return shared.ListPage[accounting.Tax]{Items: taxes, Total: total}, nil
}

// FindByAmountAndUse finds an active percentage tax by rate and use
func (r *GormTaxRepository) FindByAmountAndUse(ctx context.Context, amount decimal.Decimal, use accounting.TaxUse) (*accounting.Tax, error) {
	var t accounting.Tax
	if err := r.db.WithContext(ctx).
		Preload("Repartition").
		Where("amount = ? AND amount_type = ? AND type_tax_use = ? AND active = ?", amount, accounting.TaxAmountTypePercent, use, true).
		Order("id ASC").
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// FirstByUse returns any active tax for the given use, or shared.ErrNotFound
func (r *GormTaxRepository) FirstByUse(ctx context.Context, use accounting.TaxUse) (*accounting.Tax, error) {
	var t accounting.Tax
	if err := r.db.WithContext(ctx).
		Preload("Repartition").
		Where("type_tax_use = ? AND active = ?", use, true).
		Order("id ASC").
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Save creates or updates a tax
func (r *GormTaxRepository) Save(ctx context.Context, tax *accounting.Tax) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(tax).Error
}

// Ensure GormTaxRepository implements TaxRepository
var _ accounting.TaxRepository = (*GormTaxRepository)(nil)
