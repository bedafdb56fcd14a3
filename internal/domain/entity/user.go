// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a staff or admin account materialized on first login.
type User struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`             // Lower-cased login identifier.
	FullName          string    `json:"fullName"`          // Shown on orders as placedByName.
	Role              Role      `json:"role"`              // Copied from the role assignment at each login.
	AssignedLocations Locations `json:"assignedLocations"` // Branches the user may order for.
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// CanOrderFor reports whether the user may place orders for branch.
func (u *User) CanOrderFor(branch Location) bool {
	if u.Role == RoleAdmin {
		return true
	}

	return u.AssignedLocations.Offers(branch)
}

// RoleAssignment maps an external identity to an internal role.
// Login is refused for identities without an active assignment.
type RoleAssignment struct {
	Email             string    `json:"email"`
	FullName          string    `json:"fullName"`
	Role              Role      `json:"role"`
	AssignedLocations Locations `json:"assignedLocations"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Credential is a locally stored password hash used by the local identity provider.
type Credential struct {
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail lower-cases and trims an email for lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
