package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/docs2ai/gateway/internal/domain/identity"
	"github.com/docs2ai/gateway/internal/domain/shared"
	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user with group memberships
func (r *GormUserRepository) FindByID(ctx context.Context, id int64) (*identity.User, error) {
	var u identity.User
	if err := r.db.WithContext(ctx).Preload("Groups").First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByLogin finds an active user by login
func (r *GormUserRepository) FindByLogin(ctx context.Context, login string) (*identity.User, error) {
	var u identity.User
	if err := r.db.WithContext(ctx).
		Preload("Groups").
		Where("login = ? AND active = ?", strings.ToLower(login), true).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindInternalByGroup lists active internal users holding a group, newest first
func (r *GormUserRepository) FindInternalByGroup(ctx context.Context, group string, filter shared.Filter) (shared.ListPage[identity.User], error) {
	sub := r.db.Model(&identity.UserGroup{}).Select("user_id").Where("\"group\" = ?", group)
	query := r.db.WithContext(ctx).
		Model(&identity.User{}).
		Where("internal = ? AND active = ? AND id IN (?)", true, true, sub)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.ListPage[identity.User]{}, err
	}

	var users []identity.User
	if err := applyWindow(query, filter).Preload("Groups").Find(&users).Error; err != nil {
		return shared.ListPage[identity.User]{}, err
	}
	return shared.ListPage[identity.User]{Items: users, Total: total}, nil
}

// Save creates or updates a user with group memberships
func (r *GormUserRepository) Save(ctx context.Context, u *identity.User) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(u).Error
}

// Ensure GormUserRepository implements UserRepository
var _ identity.UserRepository = (*GormUserRepository)(nil)
