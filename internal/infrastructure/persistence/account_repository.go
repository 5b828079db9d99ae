package persistence

import (
	"context"
	"errors"

	"github.com/docs2ai/gateway/internal/domain/accounting"
	"github.com/docs2ai/gateway/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GormAccountRepository
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// FindByID finds an account by its ID
func (r *GormAccountRepository) FindByID(ctx context.Context, id int64) (*accounting.Account, error) {
	var a accounting.Account
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FirstByType returns any account of the given type, lowest code first
func (r *GormAccountRepository) FirstByType(ctx context.Context, accountType accounting.AccountType) (*accounting.Account, error) {
	var a accounting.Account
	if err := r.db.WithContext(ctx).
		Where("account_type = ?", accountType).
		Order("code ASC").
		First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Ensure GormAccountRepository implements AccountRepository
var _ accounting.AccountRepository = (*GormAccountRepository)(nil)
