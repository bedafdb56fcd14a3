package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Cart accumulates item selections for one staff member before checkout.
type Cart struct {
	OwnerID   uuid.UUID   `json:"ownerId"`
	Location  Location    `json:"location"`
	OrderDate time.Time   `json:"orderDate"`
	Lines     []OrderItem `json:"lines"`
	StaffNote string      `json:"staffNote,omitempty"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// NewCart returns an empty cart for owner.
func NewCart(ownerID uuid.UUID) *Cart {
	return &Cart{OwnerID: ownerID, Lines: []OrderItem{}}
}

// Add puts quantity units of item in the cart, merging with an existing line.
func (c *Cart) Add(item *Item, quantity int) {
	if quantity <= 0 {
		return
	}

	if idx := c.indexOf(item.ID); idx >= 0 {
		c.Lines[idx].Quantity += quantity

		return
	}

	c.Lines = append(c.Lines, item.Snapshot(quantity))
}

// SetQuantity overwrites the quantity of a line. Zero or less removes it.
// It reports whether the line existed.
func (c *Cart) SetQuantity(itemID uuid.UUID, quantity int) bool {
	idx := c.indexOf(itemID)
	if idx < 0 {
		return false
	}

	if quantity <= 0 {
		c.Lines = slices.Delete(c.Lines, idx, idx+1)
	} else {
		c.Lines[idx].Quantity = quantity
	}

	return true
}

// Remove drops the line for itemID and reports whether it existed.
func (c *Cart) Remove(itemID uuid.UUID) bool {
	return c.SetQuantity(itemID, 0)
}

// Clear empties the cart and forgets the note. Location and date stay selected.
func (c *Cart) Clear() {
	c.Lines = []OrderItem{}
	c.StaffNote = ""
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) indexOf(itemID uuid.UUID) int {
	return slices.IndexFunc(c.Lines, func(line OrderItem) bool {
		return line.ItemID == itemID
	})
}
