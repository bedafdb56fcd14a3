package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "kitchen/internal/delivery/context"
	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/repository"
	"kitchen/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type roleAssignmentService struct {
	roleRepo repository.RoleAssignmentRepository
	logger   *slog.Logger
}

// RoleAssignmentServiceParams holds dependencies for RoleAssignmentService, injected by Fx.
type RoleAssignmentServiceParams struct {
	fx.In

	RoleRepo repository.RoleAssignmentRepository
	Logger   *slog.Logger
}

// NewRoleAssignmentService creates a new role assignment service instance
func NewRoleAssignmentService(params RoleAssignmentServiceParams) usecase.RoleAssignmentUsecase {
	return &roleAssignmentService{
		roleRepo: params.RoleRepo,
		logger:   params.Logger,
	}
}

func (s *roleAssignmentService) ListAssignments(ctx context.Context) ([]*entity.RoleAssignment, error) {
	assignments, err := s.roleRepo.ListAssignments(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list role assignments")
	}

	return assignments, nil
}

// UpsertAssignment creates or replaces the mapping for an email. The change applies at the next login.
func (s *roleAssignmentService) UpsertAssignment(ctx context.Context, input *usecase.UpsertRoleAssignmentInput) (*entity.RoleAssignment, error) {
	assignment, err := buildRoleAssignment(input.Email, input.FullName, input.Role, input.AssignedLocations, input.IsActive)
	if err != nil {
		return nil, err
	}

	if err := s.roleRepo.UpsertAssignment(ctx, assignment); err != nil {
		return nil, errors.Wrap(err, "failed to save role assignment")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Role assignment saved",
		slog.String("email", assignment.Email),
		slog.String("role", assignment.Role.String()),
		slog.Bool("active", assignment.IsActive),
	)

	return assignment, nil
}

func (s *roleAssignmentService) DeleteAssignment(ctx context.Context, email string) error {
	if err := s.roleRepo.DeleteAssignment(ctx, entity.NormalizeEmail(email)); err != nil {
		if errors.Is(err, repository.ErrRoleAssignmentNotFound) {
			return domainerrors.ErrRoleAssignmentNotFound
		}

		return errors.Wrap(err, "failed to delete role assignment")
	}

	return nil
}

// buildRoleAssignment validates and normalizes one identity-to-role mapping.
func buildRoleAssignment(email, fullName string, role entity.Role, locations entity.Locations, active bool) (*entity.RoleAssignment, error) {
	normalized := entity.NormalizeEmail(email)
	if normalized == "" || !strings.Contains(normalized, "@") {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("a valid email is required")
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("role must be Admin or Staff")
	}
	for _, loc := range locations {
		if !loc.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown location " + loc.String())
		}
	}
	if role == entity.RoleStaff && len(locations) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("staff need at least one location")
	}

	now := time.Now()

	return &entity.RoleAssignment{
		Email:             normalized,
		FullName:          strings.TrimSpace(fullName),
		Role:              role,
		AssignedLocations: locations,
		IsActive:          active,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}
