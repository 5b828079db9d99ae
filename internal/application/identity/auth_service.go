package identity

import (
	"context"
	"errors"

	"github.com/docs2ai/gateway/internal/domain/identity"
	"github.com/docs2ai/gateway/internal/domain/shared"
	"github.com/docs2ai/gateway/internal/infrastructure/auth"
)

// ErrInvalidCredentials hides whether the login or the password was wrong
var ErrInvalidCredentials = shared.NewValidationError("Invalid login or password")

// AuthService exchanges credentials for bearer tokens
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{userRepo: userRepo, jwtService: jwtService}
}

// Login verifies credentials and mints a token
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Login == "" || req.Password == "" {
		return nil, shared.NewValidationError("Login and password are required")
	}
	user, err := s.userRepo.FindByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.CheckPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateToken(user.ID, user.Login)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
		Name:      user.Name,
	}, nil
}
