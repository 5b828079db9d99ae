package persistence

import (
	"context"
	"errors"

	"github.com/docs2ai/gateway/internal/domain/partner"
	"github.com/docs2ai/gateway/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPartnerRepository implements PartnerRepository using GORM
type GormPartnerRepository struct {
	db *gorm.DB
}

// NewGormPartnerRepository creates a new GormPartnerRepository
func NewGormPartnerRepository(db *gorm.DB) *GormPartnerRepository {
	return &GormPartnerRepository{db: db}
}

// FindByID finds a partner by its ID
func (r *GormPartnerRepository) FindByID(ctx context.Context, id int64) (*partner.Partner, error) {
	var p partner.Partner
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindByRole lists partners holding the given role, newest first
func (r *GormPartnerRepository) FindByRole(ctx context.Context, role partner.Role, filter shared.Filter) (shared.ListPage[partner.Partner], error) {
	query := r.db.WithContext(ctx).Model(&partner.Partner{}).Where("active = ?", true)
	switch role {
	case partner.RoleCustomer:
		query = query.Where("customer_rank > 0")
	case partner.RoleVendor:
		query = query.Where("supplier_rank > 0")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.ListPage[partner.Partner]{}, err
	}

	var partners []partner.Partner
	if err := applyWindow(query, filter).Find(&partners).Error; err != nil {
		return shared.ListPage[partner.Partner]{}, err
	}
	return shared.ListPage[partner.Partner]{Items: partners, Total: total}, nil
}

// Save creates or updates a partner
func (r *GormPartnerRepository) Save(ctx context.Context, p *partner.Partner) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete removes a partner permanently
func (r *GormPartnerRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&partner.Partner{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormPartnerRepository implements PartnerRepository
var _ partner.PartnerRepository = (*GormPartnerRepository)(nil)
