// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/domain/service"
	"ledger/internal/errors"
	"ledger/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Register creates a new account. The username and email existence checks
// run before the insert to produce friendly conflict errors; the store's
// unique constraints remain the backstop for the race between check and
// insert, and the repository maps that violation to the same errors.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Debug("Starting registration", slog.String("username", input.Username))

	role := input.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid role").WrapMessage("register failed")
	}

	if _, err := srv.userRepo.FindByUsername(ctx, input.Username); err == nil {
		srv.logger.Warn("Registration rejected", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrUsernameTaken))

		return nil, errors.Wrap(domainerrors.ErrUsernameTaken, "register failed")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check username availability")
	}

	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil {
		srv.logger.Warn("Registration rejected", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrEmailTaken))

		return nil, errors.Wrap(domainerrors.ErrEmailTaken, "register failed")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
	}

	// A concurrent duplicate registration can slip past the pre-checks;
	// the repository surfaces the constraint violation as the same
	// username/email-taken error the pre-checks produce.
	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.logger.Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.logger.Debug("User registered", slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{User: usecase.NewUserView(user)}, nil
}

// Login verifies credentials and issues a token. An unknown username and a
// wrong password yield the same error so the response never reveals which
// check failed.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting login", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		srv.logger.Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.Generate(user)
	if err != nil {
		srv.logger.Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.logger.Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		Token: token,
		User:  usecase.NewUserView(user),
	}, nil
}
