package identity

import (
	"context"
	"testing"
	"time"

	"github.com/docs2ai/gateway/internal/domain/shared"
	"github.com/docs2ai/gateway/internal/infrastructure/auth"
	"github.com/docs2ai/gateway/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthService(repo *MockUserRepository) *AuthService {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:          "test-secret-at-least-32-characters!!",
		TokenExpiration: time.Hour,
		Issuer:          "docs2ai-gateway",
	})
	return NewAuthService(repo, jwtService)
}

func TestLogin(t *testing.T) {
	t.Run("mints a token for valid credentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newAuthService(repo)
		repo.On("FindByLogin", mock.Anything, "jane@example.com").
			Return(userFixture(t, 2, "Jane Approver", "jane@example.com", "s3cret-password"), nil)

		resp, err := service.Login(context.Background(), LoginRequest{
			Login:    "jane@example.com",
			Password: "s3cret-password",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, int64(2), resp.UserID)
		assert.Equal(t, "Jane Approver", resp.Name)
		assert.True(t, resp.ExpiresAt.After(time.Now()))
	})

	t.Run("wrong password and unknown login read the same", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newAuthService(repo)
		repo.On("FindByLogin", mock.Anything, "jane@example.com").
			Return(userFixture(t, 2, "Jane", "jane@example.com", "s3cret-password"), nil)
		repo.On("FindByLogin", mock.Anything, "nobody@example.com").Return(nil, shared.ErrNotFound)

		_, err := service.Login(context.Background(), LoginRequest{Login: "jane@example.com", Password: "wrong"})
		require.Error(t, err)
		wrongPassword := err.Error()

		_, err = service.Login(context.Background(), LoginRequest{Login: "nobody@example.com", Password: "whatever"})
		require.Error(t, err)
		assert.Equal(t, wrongPassword, err.Error())
	})

	t.Run("requires login and password", func(t *testing.T) {
		service := newAuthService(new(MockUserRepository))

		_, err := service.Login(context.Background(), LoginRequest{Login: "jane@example.com"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Login and password are required")
	})
}
