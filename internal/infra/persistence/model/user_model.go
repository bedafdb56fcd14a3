package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID                uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email             string                      `gorm:"type:varchar(255);unique;not null"`
	FullName          string                      `gorm:"type:varchar(255)"`
	Role              string                      `gorm:"type:varchar(20);not null"`
	AssignedLocations datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	IsActive          bool                        `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// RoleAssignmentModel mirrors the 'role_assignments' table, keyed by lower-cased email.
type RoleAssignmentModel struct {
	Email             string                      `gorm:"type:varchar(255);primaryKey"`
	FullName          string                      `gorm:"type:varchar(255)"`
	Role              string                      `gorm:"type:varchar(20);not null"`
	AssignedLocations datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	IsActive          bool                        `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleAssignmentModel) TableName() string {
	return "role_assignments"
}

// CredentialModel mirrors the 'credentials' table used by the local identity provider.
type CredentialModel struct {
	Email        string `gorm:"type:varchar(255);primaryKey"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}
