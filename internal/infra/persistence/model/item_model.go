package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ItemModel is the GORM-specific struct for the 'items' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type ItemModel struct {
	ID                uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name              string                      `gorm:"type:varchar(255);not null"`
	NamePersian       string                      `gorm:"type:varchar(255);not null"`
	DisplayOrder      int                         `gorm:"not null;index"`
	AssignedLocations datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	IsActive          bool                        `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}
