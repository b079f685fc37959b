package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"ledger/config"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/errors"
)

func newTestTokenConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Token = secret
	cfg.Auth.TokenTTL = 24 * time.Hour

	return cfg
}

func testUser() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "a@x.com",
		Role:     entity.RoleUser,
	}
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test_secret_key_very_long_for_testing"))
	assert.NoError(t, err)
	assert.NotNil(t, svc)

	user := testUser()

	token, err := svc.Generate(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, entity.RoleUser.String(), claims.Role)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	claims, err := svc.Validate("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestTokenConfig("issuer_secret_key_very_long_for_testing"))
	assert.NoError(t, err)
	verifier, err := NewJWTService(newTestTokenConfig("another_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	token, err := issuer.Generate(testUser())
	assert.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := &jwtService{
		secret:   "test_secret_key_very_long_for_testing",
		tokenTTL: -time.Minute, // Already expired at issuance.
	}

	token, err := svc.Generate(testUser())
	assert.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_TokenDuration(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test_secret_key_very_long_for_testing"))
	assert.NoError(t, err)
	assert.Equal(t, 24*time.Hour, svc.TokenDuration())
}
