package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderLine is the JSON shape of one line in the orders.items column.
type OrderLine struct {
	ItemID          uuid.UUID `json:"itemId"`
	ItemName        string    `json:"itemName"`
	ItemNamePersian string    `json:"itemNamePersian"`
	Quantity        int       `json:"quantity"`
}

// OrderModel is the GORM-specific struct for the 'orders' table.
// Line items are stored by value so catalog edits never rewrite history.
type OrderModel struct {
	ID           uuid.UUID                      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderNumber  string                         `gorm:"type:varchar(5);not null;index"`
	OrderDate    time.Time                      `gorm:"type:date;not null;index"`
	Location     string                         `gorm:"type:varchar(50);not null"`
	PlacedBy     uuid.UUID                      `gorm:"type:uuid;not null;index"`
	PlacedByName string                         `gorm:"type:varchar(255);not null"`
	Items        datatypes.JSONSlice[OrderLine] `gorm:"type:jsonb;not null"`
	StaffNote    string                         `gorm:"type:text"`
	Status       string                         `gorm:"type:varchar(20);not null;default:'Active'"`
	CreatedAt    time.Time                      `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
