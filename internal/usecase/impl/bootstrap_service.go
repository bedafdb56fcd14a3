package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"kitchen/config"
	"kitchen/internal/domain/constants"
	"kitchen/internal/domain/entity"
	"kitchen/internal/domain/repository"
	"kitchen/internal/domain/service"
	"kitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type bootstrapService struct {
	cfg            *config.Config
	roleRepo       repository.RoleAssignmentRepository
	credentialRepo repository.CredentialRepository
	itemRepo       repository.ItemRepository
	hasher         service.PasswordHasher
	logger         *slog.Logger
}

// BootstrapServiceParams holds dependencies for BootstrapService, injected by Fx.
type BootstrapServiceParams struct {
	fx.In

	Config         *config.Config
	RoleRepo       repository.RoleAssignmentRepository
	CredentialRepo repository.CredentialRepository
	ItemRepo       repository.ItemRepository
	Hasher         service.PasswordHasher
	Logger         *slog.Logger
}

// NewBootstrapService creates the startup seeding service
func NewBootstrapService(params BootstrapServiceParams) usecase.BootstrapUsecase {
	return &bootstrapService{
		cfg:            params.Config,
		roleRepo:       params.RoleRepo,
		credentialRepo: params.CredentialRepo,
		itemRepo:       params.ItemRepo,
		hasher:         params.Hasher,
		logger:         params.Logger,
	}
}

// Seed inserts configured data without overwriting anything admins changed since.
func (s *bootstrapService) Seed(ctx context.Context) error {
	if err := s.seedRoleAssignments(ctx); err != nil {
		return err
	}

	return s.seedCatalog(ctx)
}

func (s *bootstrapService) seedRoleAssignments(ctx context.Context) error {
	if s.cfg.Auth == nil {
		return nil
	}

	seedCredentials := s.cfg.Auth.IdentityProvider == constants.IdentityProviderLocal
	created := 0

	for _, seed := range s.cfg.Auth.RoleAssignments {
		assignment, err := buildRoleAssignment(
			seed.Email,
			seed.FullName,
			entity.Role(seed.Role),
			entity.LocationsFromStrings(seed.AssignedLocations),
			true,
		)
		if err != nil {
			s.logger.Warn("Skipping invalid role assignment seed", slog.String("email", seed.Email), slog.Any("error", err))

			continue
		}

		inserted, err := s.roleRepo.CreateAssignmentIfMissing(ctx, assignment)
		if err != nil {
			return errors.Wrapf(err, "failed to seed role assignment for %s", assignment.Email)
		}
		if inserted {
			created++
		}

		if seedCredentials && seed.Password != "" {
			if err := s.seedCredential(ctx, assignment.Email, seed.Password); err != nil {
				return err
			}
		}
	}

	s.logger.Info("Role assignments seeded", slog.Int("configured", len(s.cfg.Auth.RoleAssignments)), slog.Int("created", created))

	return nil
}

func (s *bootstrapService) seedCredential(ctx context.Context, email, password string) error {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash seed password")
	}

	now := time.Now()
	if _, err := s.credentialRepo.CreateCredentialIfMissing(ctx, &entity.Credential{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		return errors.Wrapf(err, "failed to seed credential for %s", email)
	}

	return nil
}

// seedCatalog writes the starter menu, offered at every branch, only into an empty catalog.
func (s *bootstrapService) seedCatalog(ctx context.Context) error {
	if s.cfg.Catalog == nil || len(s.cfg.Catalog.SeedItems) == 0 {
		return nil
	}

	count, err := s.itemRepo.CountItems(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count catalog items")
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	order := 0
	for _, name := range s.cfg.Catalog.SeedItems {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		order++

		if err := s.itemRepo.CreateItem(ctx, &entity.Item{
			ID:                uuid.Must(uuid.NewV7()),
			Name:              name,
			NamePersian:       name,
			DisplayOrder:      order,
			AssignedLocations: entity.Locations{entity.LocationBoth},
			IsActive:          true,
			CreatedAt:         now,
			UpdatedAt:         now,
		}); err != nil {
			return errors.Wrapf(err, "failed to seed catalog item %q", name)
		}
	}

	s.logger.Info("Starter catalog seeded", slog.Int("items", order))

	return nil
}
