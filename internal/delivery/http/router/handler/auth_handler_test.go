package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/errors"
	mockUsecase "ledger/internal/mocks/usecase"
	"ledger/internal/usecase"
)

func TestAuthHandler_Register_Success(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())

	view := &usecase.UserView{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "a@x.com",
		Role:     "user",
	}
	uc.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(input *usecase.RegisterInput) bool {
			return input.Username == "alice" && input.Email == "a@x.com"
		})).
		Return(&usecase.RegisterOutput{User: view}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"a@x.com","password":"secret123"}`)

	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])

	user := body["data"].(map[string]any)["user"].(map[string]any)
	assert.Equal(t, "alice", user["username"])
	// The password hash never leaves the application layer.
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "passwordHash")
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"a@x.com"}`)

	err := h.Register(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthHandler_Register_RejectsUnknownRole(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"a@x.com","password":"secret123","role":"superuser"}`)

	err := h.Register(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())

	view := &usecase.UserView{ID: uuid.New(), Username: "alice", Role: "admin"}
	uc.EXPECT().
		Login(mock.Anything, mock.MatchedBy(func(input *usecase.LoginInput) bool {
			return input.Username == "alice" && input.Password == "secret123"
		})).
		Return(&usecase.LoginOutput{Token: "signed.token", User: view}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"secret123"}`)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "signed.token", data["token"])
	assert.Equal(t, "alice", data["user"].(map[string]any)["username"])
}

func TestAuthHandler_Login_PassesThroughCredentialFailure(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())

	uc.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed"))

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"wrong"}`)

	err := h.Login(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
