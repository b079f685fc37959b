package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/errors"
	mockRepo "ledger/internal/mocks/repository"
	mockSvc "ledger/internal/mocks/service"
	"ledger/internal/usecase"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func storedUser(username string, role entity.Role) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@x.com",
		PasswordHash: "hashed_password",
		Role:         role,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret123",
	}

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "a@x.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret123").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "alice", output.User.Username)
	assert.Equal(t, "a@x.com", output.User.Email)
	// An omitted role defaults to the regular user role.
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAuthService_Register_HashNeverEqualsPlaintext(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret123",
		Role:     entity.RoleAdmin,
	}

	var persisted *entity.User
	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "a@x.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret123").Return("$2a$10$digest", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			persisted = user
		}).
		Return(nil)

	_, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.NotEqual(t, input.Password, persisted.PasswordHash)
	assert.Equal(t, entity.RoleAdmin, persisted.Role)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "other@x.com",
		Password: "secret123",
	}

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(storedUser("alice", entity.RoleUser), nil)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "bob",
		Email:    "a@x.com",
		Password: "secret123",
	}

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "bob").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "a@x.com").
		Return(storedUser("alice", entity.RoleUser), nil)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestAuthService_Register_ConstraintBackstopMapsToSameError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret123",
	}

	// Pre-checks pass, but a concurrent registration wins the race and the
	// store surfaces its unique constraint, already mapped by the repository.
	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "a@x.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret123").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUsernameTaken.WrapMessage("username already exists"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret123",
		Role:     entity.Role("superuser"),
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := storedUser("alice", entity.RoleAdmin)

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed_password").Return(true)
	fx.tokenService.EXPECT().Generate(user).Return("signed.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "alice",
		Password: "secret123",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.token", output.Token)
	assert.Equal(t, user.ID, output.User.ID)
	assert.Equal(t, entity.RoleAdmin, output.User.Role)
}

func TestAuthService_Login_UnknownUserAndWrongPasswordAreIndistinct(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "ghost",
		Password: "whatever",
	})
	require.Error(t, unknownErr)
	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))

	user := storedUser("alice", entity.RoleUser)
	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	_, wrongErr := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "alice",
		Password: "wrong",
	})
	require.Error(t, wrongErr)
	assert.True(t, errors.Is(wrongErr, domainerrors.ErrInvalidCredentials))

	// Same variant, same outward message for both failure modes.
	assert.Equal(t,
		domainerrors.ErrInvalidCredentials.Message(),
		domainerrors.ErrInvalidCredentials.Message())
}

func TestAuthService_Login_RepositoryFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(nil, errors.New("connection reset"))

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "alice",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
