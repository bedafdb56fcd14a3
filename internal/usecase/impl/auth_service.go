package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "kitchen/internal/delivery/context"
	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	"kitchen/internal/domain/service"
	"kitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	identityProvider service.IdentityProvider
	roleRepo         repository.RoleAssignmentRepository
	userRepo         repository.UserRepository
	tokenService     service.TokenService
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	IdentityProvider service.IdentityProvider
	RoleRepo         repository.RoleAssignmentRepository
	UserRepo         repository.UserRepository
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		identityProvider: params.IdentityProvider,
		roleRepo:         params.RoleRepo,
		userRepo:         params.UserRepo,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies an email/password pair. Every rejection cause yields the same INVALID_CREDENTIALS error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	identity, err := srv.identityProvider.SignInWithPassword(ctx, email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Password sign-in rejected", slog.String("email", email), slog.Any("error", err))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.establishSession(ctx, identity)
}

// LoginWithIDToken exchanges a client SDK ID token for an access token.
func (srv *authService) LoginWithIDToken(ctx context.Context, idToken string) (*usecase.LoginOutput, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	identity, err := srv.identityProvider.VerifyIDToken(ctx, idToken)
	if err != nil {
		srv.log(ctx).Warn("ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.establishSession(ctx, identity)
}

// establishSession looks up the role assignment, materializes the user record and signs a token.
func (srv *authService) establishSession(ctx context.Context, identity *service.Identity) (*usecase.LoginOutput, error) {
	email := entity.NormalizeEmail(identity.Email)

	assignment, err := srv.roleRepo.FindAssignmentByEmail(ctx, email)
	if errors.Is(err, repository.ErrRoleAssignmentNotFound) {
		srv.log(ctx).Warn("Login refused: no role assignment", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load role assignment")
	}
	if !assignment.IsActive {
		srv.log(ctx).Warn("Login refused: role assignment inactive", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	fullName := assignment.FullName
	if fullName == "" {
		fullName = identity.DisplayName
	}
	if fullName == "" {
		fullName = email
	}

	user := &entity.User{
		Email:             email,
		FullName:          fullName,
		Role:              assignment.Role,
		AssignedLocations: assignment.AssignedLocations,
		IsActive:          true,
	}
	if err := srv.userRepo.UpsertUserByEmail(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to materialize user")
	}

	token, expiresAt, err := srv.tokenService.GenerateAccessToken(
		user.ID,
		user.Email,
		[]string{user.Role.String()},
		user.AssignedLocations.ToStrings(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("User logged in", slog.String("user_id", user.ID.String()), slog.String("role", user.Role.String()))

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

func (srv *authService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrNotFound.WrapMessage("user not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
