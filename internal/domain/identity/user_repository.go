package identity

import (
	"context"

	"github.com/docs2ai/gateway/internal/domain/shared"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user with group memberships
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindByLogin finds an active user by login
	FindByLogin(ctx context.Context, login string) (*User, error)

	// FindInternalByGroup lists active internal users holding a group, newest first
	FindInternalByGroup(ctx context.Context, group string, filter shared.Filter) (shared.ListPage[User], error)

	// Save creates or updates a user with group memberships
	Save(ctx context.Context, u *User) error
}
