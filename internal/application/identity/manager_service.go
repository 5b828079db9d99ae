package identity

import (
	"context"
	"errors"

	"github.com/docs2ai/gateway/internal/domain/identity"
	"github.com/docs2ai/gateway/internal/domain/shared"
)

// ManagerService handles expense approver accounts
type ManagerService struct {
	userRepo identity.UserRepository
}

// NewManagerService creates a new ManagerService
func NewManagerService(userRepo identity.UserRepository) *ManagerService {
	return &ManagerService{userRepo: userRepo}
}

// ListManagers lists internal users holding the expense approver group
func (s *ManagerService) ListManagers(ctx context.Context, filter shared.Filter) ([]ManagerResponse, int64, error) {
	page, err := s.userRepo.FindInternalByGroup(ctx, identity.GroupExpenseApprover, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]ManagerResponse, len(page.Items))
	for i := range page.Items {
		responses[i] = ToManagerResponse(&page.Items[i])
	}
	return responses, page.Total, nil
}

// CreateManager creates a user and grants it the expense approver group.
// Reusing an existing login is rejected.
func (s *ManagerService) CreateManager(ctx context.Context, req CreateManagerRequest) (*ManagerResponse, error) {
	user, err := identity.NewUser(req.Name, req.Login, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByLogin(ctx, user.Login); err == nil {
		return nil, shared.NewValidationError("Login is already taken")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	user.GrantGroup(identity.GroupExpenseApprover)
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	resp := ToManagerResponse(user)
	return &resp, nil
}
