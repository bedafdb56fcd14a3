package usecase

import (
	"context"

	"kitchen/internal/domain/entity"
)

// UpsertRoleAssignmentInput maps one identity to a role.
type UpsertRoleAssignmentInput struct {
	Email             string
	FullName          string
	Role              entity.Role
	AssignedLocations entity.Locations
	IsActive          bool
}

// RoleAssignmentUsecase lets admins edit the identity-to-role table.
type RoleAssignmentUsecase interface {
	ListAssignments(ctx context.Context) ([]*entity.RoleAssignment, error)
	UpsertAssignment(ctx context.Context, input *UpsertRoleAssignmentInput) (*entity.RoleAssignment, error)
	DeleteAssignment(ctx context.Context, email string) error
}
