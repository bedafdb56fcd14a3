package impl

import (
	"context"
	"testing"
	"time"

	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	"kitchen/internal/domain/service"
	mockRepo "kitchen/internal/mocks/repository"
	mockSvc "kitchen/internal/mocks/service"
	"kitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service          usecase.AuthUsecase
	identityProvider *mockSvc.MockIdentityProvider
	roleRepo         *mockRepo.MockRoleAssignmentRepository
	userRepo         *mockRepo.MockUserRepository
	tokenService     *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		identityProvider: mockSvc.NewMockIdentityProvider(t),
		roleRepo:         mockRepo.NewMockRoleAssignmentRepository(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		tokenService:     mockSvc.NewMockTokenService(t),
	}

	fx.service = NewAuthService(AuthServiceParams{
		IdentityProvider: fx.identityProvider,
		RoleRepo:         fx.roleRepo,
		UserRepo:         fx.userRepo,
		TokenService:     fx.tokenService,
		Logger:           newDiscardLogger(),
	})

	return fx
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	expiresAt := time.Now().Add(time.Hour)

	fx.identityProvider.EXPECT().
		SignInWithPassword(ctx, "sara@example.com", "secret").
		Return(&service.Identity{UID: "uid-1", Email: "sara@example.com"}, nil)
	fx.roleRepo.EXPECT().
		FindAssignmentByEmail(ctx, "sara@example.com").
		Return(&entity.RoleAssignment{
			Email:             "sara@example.com",
			FullName:          "Sara",
			Role:              entity.RoleStaff,
			AssignedLocations: entity.Locations{entity.LocationNorthYork},
			IsActive:          true,
		}, nil)
	fx.userRepo.EXPECT().
		UpsertUserByEmail(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) { user.ID = userID }).
		Return(nil)
	fx.tokenService.EXPECT().
		GenerateAccessToken(userID, "sara@example.com", []string{"Staff"}, []string{"North York"}).
		Return("signed-token", expiresAt, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: " Sara@Example.com ", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, expiresAt, output.ExpiresAt)
	assert.Equal(t, "Sara", output.User.FullName)
	assert.Equal(t, entity.RoleStaff, output.User.Role)
}

func TestAuthService_Login_RejectionsLookTheSame(t *testing.T) {
	tests := []struct {
		name  string
		setup func(fx authServiceFixtures, ctx context.Context)
		input *usecase.LoginInput
	}{
		{
			name:  "blank password",
			input: &usecase.LoginInput{Email: "sara@example.com"},
		},
		{
			name: "wrong password",
			setup: func(fx authServiceFixtures, ctx context.Context) {
				fx.identityProvider.EXPECT().
					SignInWithPassword(ctx, "sara@example.com", "nope").
					Return(nil, service.ErrIdentityRejected)
			},
			input: &usecase.LoginInput{Email: "sara@example.com", Password: "nope"},
		},
		{
			name: "no role assignment",
			setup: func(fx authServiceFixtures, ctx context.Context) {
				fx.identityProvider.EXPECT().
					SignInWithPassword(ctx, "sara@example.com", "secret").
					Return(&service.Identity{Email: "sara@example.com"}, nil)
				fx.roleRepo.EXPECT().
					FindAssignmentByEmail(ctx, "sara@example.com").
					Return(nil, repository.ErrRoleAssignmentNotFound)
			},
			input: &usecase.LoginInput{Email: "sara@example.com", Password: "secret"},
		},
		{
			name: "inactive role assignment",
			setup: func(fx authServiceFixtures, ctx context.Context) {
				fx.identityProvider.EXPECT().
					SignInWithPassword(ctx, "sara@example.com", "secret").
					Return(&service.Identity{Email: "sara@example.com"}, nil)
				fx.roleRepo.EXPECT().
					FindAssignmentByEmail(ctx, "sara@example.com").
					Return(&entity.RoleAssignment{Email: "sara@example.com", Role: entity.RoleAdmin}, nil)
			},
			input: &usecase.LoginInput{Email: "sara@example.com", Password: "secret"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			ctx := context.Background()
			if tt.setup != nil {
				tt.setup(fx, ctx)
			}

			output, err := fx.service.Login(ctx, tt.input)

			assert.Nil(t, output)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		})
	}
}

func TestAuthService_LoginWithIDToken_FallsBackToDisplayName(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.identityProvider.EXPECT().
		VerifyIDToken(ctx, "id-token").
		Return(&service.Identity{Email: "boss@example.com", DisplayName: "The Boss"}, nil)
	fx.roleRepo.EXPECT().
		FindAssignmentByEmail(ctx, "boss@example.com").
		Return(&entity.RoleAssignment{Email: "boss@example.com", Role: entity.RoleAdmin, IsActive: true}, nil)
	fx.userRepo.EXPECT().UpsertUserByEmail(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.tokenService.EXPECT().
		GenerateAccessToken(mock.Anything, "boss@example.com", []string{"Admin"}, []string{}).
		Return("admin-token", time.Now(), nil)

	output, err := fx.service.LoginWithIDToken(ctx, "id-token")

	require.NoError(t, err)
	assert.Equal(t, "The Boss", output.User.FullName)
}

func TestAuthService_GetCurrentUser_NotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().FindUserByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetCurrentUser(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
