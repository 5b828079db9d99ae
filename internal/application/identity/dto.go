package identity

import (
	"time"

	"github.com/docs2ai/gateway/internal/domain/identity"
)

// CreateManagerRequest is the payload for creating an expense approver
type CreateManagerRequest struct {
	Name     string `json:"name"`
	Login    string `json:"login"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ManagerResponse is the API shape of a manager account
type ManagerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Login     string    `json:"login"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// ToManagerResponse converts a domain user to its manager API shape
func ToManagerResponse(u *identity.User) ManagerResponse {
	return ManagerResponse{
		ID:        u.ID,
		Name:      u.Name,
		Login:     u.Login,
		Email:     u.Email,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

// LoginRequest is the payload for obtaining a bearer token
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginResponse carries a freshly minted bearer token
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
}
