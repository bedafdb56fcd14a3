// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"kitchen/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated caller as read from the access token.
type Actor struct {
	UserID    uuid.UUID
	Email     string
	Role      entity.Role
	Locations entity.Locations
}

// IsAdmin reports whether the caller holds the admin role.
func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == entity.RoleAdmin
}
