package entity

import (
	"time"

	"github.com/google/uuid"
)

// Item is a catalog entry staff can put in a cart.
type Item struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	NamePersian       string    `json:"namePersian"`
	DisplayOrder      int       `json:"displayOrder"`      // Sort position in every listing, ascending.
	AssignedLocations Locations `json:"assignedLocations"` // Branches offering the item; Both covers all.
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// AvailableAt reports whether staff at branch may order the item.
func (i *Item) AvailableAt(branch Location) bool {
	return i.IsActive && i.AssignedLocations.Offers(branch)
}

// Snapshot copies the display fields into an order line.
func (i *Item) Snapshot(quantity int) OrderItem {
	return OrderItem{
		ItemID:          i.ID,
		ItemName:        i.Name,
		ItemNamePersian: i.NamePersian,
		Quantity:        quantity,
	}
}
