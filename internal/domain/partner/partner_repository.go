package partner

import (
	"context"

	"github.com/docs2ai/gateway/internal/domain/shared"
)

// Role selects which commercial side of a partner a query targets
type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
)

// PartnerRepository defines the interface for partner persistence
type PartnerRepository interface {
	// FindByID finds a partner by its ID
	FindByID(ctx context.Context, id int64) (*Partner, error)

	// FindByRole lists partners holding the given role, newest first
	FindByRole(ctx context.Context, role Role, filter shared.Filter) (shared.ListPage[Partner], error)

	// Save creates or updates a partner
	Save(ctx context.Context, p *Partner) error

	// Delete removes a partner permanently
	Delete(ctx context.Context, id int64) error
}
