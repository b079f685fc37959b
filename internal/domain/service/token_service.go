package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ledger/internal/domain/entity"
)

// Claims defines the payload embedded in an issued token. Validity is
// entirely self-contained: the signature plus the registered expiry are
// the only things checked, nothing is stored server-side.
type Claims struct {
	UserID   uuid.UUID `json:"uid"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a signed token carrying the user's identity and role.
	Generate(user *entity.User) (string, error)

	// Validate checks the signature and expiry of a token string and
	// returns its claims. Any malformed, tampered or expired token yields
	// a typed failure, never a partially decoded payload.
	Validate(tokenString string) (*Claims, error)

	// TokenDuration returns the configured validity window for issued tokens.
	TokenDuration() time.Duration
}
