package impl

import (
	"context"
	"testing"

	"kitchen/config"
	"kitchen/internal/domain/entity"
	mockRepo "kitchen/internal/mocks/repository"
	mockSvc "kitchen/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bootstrapFixtures holds all test dependencies for startup seeding tests.
type bootstrapFixtures struct {
	cfg            *config.Config
	roleRepo       *mockRepo.MockRoleAssignmentRepository
	credentialRepo *mockRepo.MockCredentialRepository
	itemRepo       *mockRepo.MockItemRepository
	hasher         *mockSvc.MockPasswordHasher
}

func createTestBootstrap(t *testing.T) bootstrapFixtures {
	return bootstrapFixtures{
		cfg:            newTestConfig(),
		roleRepo:       mockRepo.NewMockRoleAssignmentRepository(t),
		credentialRepo: mockRepo.NewMockCredentialRepository(t),
		itemRepo:       mockRepo.NewMockItemRepository(t),
		hasher:         mockSvc.NewMockPasswordHasher(t),
	}
}

func (fx bootstrapFixtures) seed(ctx context.Context) error {
	return NewBootstrapService(BootstrapServiceParams{
		Config:         fx.cfg,
		RoleRepo:       fx.roleRepo,
		CredentialRepo: fx.credentialRepo,
		ItemRepo:       fx.itemRepo,
		Hasher:         fx.hasher,
		Logger:         newDiscardLogger(),
	}).Seed(ctx)
}

func TestBootstrap_SeedsAssignmentsAndLocalCredentials(t *testing.T) {
	fx := createTestBootstrap(t)

	ctx := context.Background()
	fx.cfg.Auth.RoleAssignments = []config.RoleAssignmentSeed{
		{Email: "Admin@Example.com", FullName: "Admin", Role: "Admin", Password: "changeme"},
		{Email: "cook@example.com", Role: "Staff", AssignedLocations: []string{"Thornhill"}},
		{Email: "broken", Role: "Staff"},
	}

	fx.roleRepo.EXPECT().
		CreateAssignmentIfMissing(ctx, mock.MatchedBy(func(a *entity.RoleAssignment) bool {
			return a.Email == "admin@example.com" && a.Role == entity.RoleAdmin && a.IsActive
		})).
		Return(true, nil)
	fx.roleRepo.EXPECT().
		CreateAssignmentIfMissing(ctx, mock.MatchedBy(func(a *entity.RoleAssignment) bool {
			return a.Email == "cook@example.com" && a.AssignedLocations.Offers(entity.LocationThornhill)
		})).
		Return(false, nil)
	fx.hasher.EXPECT().Hash("changeme").Return("$2a$hash", nil)
	fx.credentialRepo.EXPECT().
		CreateCredentialIfMissing(ctx, mock.MatchedBy(func(c *entity.Credential) bool {
			return c.Email == "admin@example.com" && c.PasswordHash == "$2a$hash"
		})).
		Return(true, nil)

	require.NoError(t, fx.seed(ctx))
}

func TestBootstrap_FirebaseProviderSkipsCredentials(t *testing.T) {
	fx := createTestBootstrap(t)

	ctx := context.Background()
	fx.cfg.Auth.IdentityProvider = "firebase"
	fx.cfg.Auth.RoleAssignments = []config.RoleAssignmentSeed{
		{Email: "admin@example.com", Role: "Admin", Password: "ignored"},
	}

	fx.roleRepo.EXPECT().CreateAssignmentIfMissing(ctx, mock.Anything).Return(true, nil)

	require.NoError(t, fx.seed(ctx))
}

func TestBootstrap_SeedsCatalogOnlyWhenEmpty(t *testing.T) {
	fx := createTestBootstrap(t)

	ctx := context.Background()
	fx.cfg.Catalog.SeedItems = []string{"Rice", " ", "Stew"}

	fx.itemRepo.EXPECT().CountItems(ctx).Return(0, nil)

	var created []*entity.Item
	fx.itemRepo.EXPECT().
		CreateItem(ctx, mock.AnythingOfType("*entity.Item")).
		Run(func(_ context.Context, item *entity.Item) { created = append(created, item) }).
		Return(nil).
		Times(2)

	require.NoError(t, fx.seed(ctx))
	require.Len(t, created, 2)
	assert.Equal(t, "Rice", created[0].Name)
	assert.Equal(t, 1, created[0].DisplayOrder)
	assert.Equal(t, "Stew", created[1].Name)
	assert.Equal(t, 2, created[1].DisplayOrder)
	assert.Equal(t, entity.Locations{entity.LocationBoth}, created[1].AssignedLocations)
}

func TestBootstrap_ExistingCatalogIsLeftAlone(t *testing.T) {
	fx := createTestBootstrap(t)

	ctx := context.Background()
	fx.cfg.Catalog.SeedItems = []string{"Rice"}

	fx.itemRepo.EXPECT().CountItems(ctx).Return(12, nil)

	require.NoError(t, fx.seed(ctx))
}
