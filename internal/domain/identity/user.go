package identity

import (
	"strings"
	"time"

	"github.com/docs2ai/gateway/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt cost for password hashing
const bcryptCost = 12

// GroupExpenseApprover marks users allowed to approve employee expenses
const GroupExpenseApprover = "expense_team_approver"

// User is a login account. Internal users belong to the company;
// non-internal ones are portal or share accounts and never show up
// as managers.
type User struct {
	shared.BaseEntity
	Name         string      `gorm:"type:varchar(200);not null"`
	Login        string      `gorm:"type:varchar(200);not null;uniqueIndex"`
	Email        string      `gorm:"type:varchar(200)"`
	PasswordHash string      `gorm:"type:varchar(100);not null"`
	Internal     bool        `gorm:"not null;default:true"`
	Active       bool        `gorm:"not null;default:true"`
	Groups       []UserGroup `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// UserGroup is one group membership row
type UserGroup struct {
	shared.BaseEntity
	UserID int64  `gorm:"not null;uniqueIndex:idx_user_group,priority:1"`
	Group  string `gorm:"type:varchar(100);not null;uniqueIndex:idx_user_group,priority:2"`
}

// TableName returns the table name for GORM
func (UserGroup) TableName() string {
	return "user_groups"
}

// NewUser creates an active internal user with a hashed password
func NewUser(name, login, email, password string) (*User, error) {
	if name == "" {
		return nil, shared.NewValidationError("Name is required")
	}
	login = strings.TrimSpace(strings.ToLower(login))
	if login == "" {
		return nil, shared.NewValidationError("Login is required")
	}
	if password == "" {
		return nil, shared.NewValidationError("Password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}
	if email == "" {
		email = login
	}
	return &User{
		Name:         name,
		Login:        login,
		Email:        email,
		PasswordHash: string(hash),
		Internal:     true,
		Active:       true,
	}, nil
}

// CheckPassword verifies a cleartext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// GrantGroup adds the user to a group. Granting twice is a no-op.
func (u *User) GrantGroup(group string) {
	if u.InGroup(group) {
		return
	}
	u.Groups = append(u.Groups, UserGroup{UserID: u.ID, Group: group})
	u.UpdatedAt = time.Now()
}

// InGroup reports membership in a group
func (u *User) InGroup(group string) bool {
	for i := range u.Groups {
		if u.Groups[i].Group == group {
			return true
		}
	}
	return false
}
