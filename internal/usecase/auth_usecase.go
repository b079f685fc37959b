// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ledger/internal/domain/entity"
)

// UserView is the outward-facing representation of an account. It is the
// only user shape that ever leaves the application layer; the password
// hash stays behind the store boundary.
type UserView struct {
	ID        uuid.UUID   `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// NewUserView strips an account down to its outward-facing fields.
func NewUserView(user *entity.User) *UserView {
	return &UserView{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     entity.Role
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string
	Password string
}

// RegisterOutput returns the newly created account without its hash.
type RegisterOutput struct {
	User *UserView
}

// LoginOutput returns the issued token alongside the account.
type LoginOutput struct {
	Token string
	User  *UserView
}

// AuthUsecase defines the interface for authentication operations.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
