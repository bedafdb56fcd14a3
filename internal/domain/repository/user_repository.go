package repository

import (
	"context"

	"kitchen/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrRoleAssignmentNotFound is returned when an identity has no role mapping.
	ErrRoleAssignmentNotFound = errors.New("role assignment not found")
	// ErrCredentialNotFound is returned when no local password exists for an email.
	ErrCredentialNotFound = errors.New("credential not found")
)

// UserRepository defines persistence for materialized user records.
type UserRepository interface {
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpsertUserByEmail creates the user or refreshes role, name and locations of the existing row.
	// The stored ID and CreatedAt are written back into user.
	UpsertUserByEmail(ctx context.Context, user *entity.User) error
}

// RoleAssignmentRepository defines persistence for the identity-to-role table.
type RoleAssignmentRepository interface {
	FindAssignmentByEmail(ctx context.Context, email string) (*entity.RoleAssignment, error)
	ListAssignments(ctx context.Context) ([]*entity.RoleAssignment, error)
	UpsertAssignment(ctx context.Context, assignment *entity.RoleAssignment) error
	DeleteAssignment(ctx context.Context, email string) error

	// CreateAssignmentIfMissing inserts without overwriting admin edits and reports whether a row was written.
	CreateAssignmentIfMissing(ctx context.Context, assignment *entity.RoleAssignment) (bool, error)
}

// CredentialRepository stores password hashes for the local identity provider.
type CredentialRepository interface {
	FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error)
	CreateCredentialIfMissing(ctx context.Context, credential *entity.Credential) (bool, error)
}
