package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusActive   OrderStatus = "Active"
	OrderStatusComplete OrderStatus = "Complete"
	OrderStatusVoided   OrderStatus = "Voided"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// OrderItem is an item snapshot stored by value inside an order.
type OrderItem struct {
	ItemID          uuid.UUID `json:"itemId"`
	ItemName        string    `json:"itemName"`
	ItemNamePersian string    `json:"itemNamePersian"`
	Quantity        int       `json:"quantity"`
}

// Order is a submitted cart.
type Order struct {
	ID           uuid.UUID   `json:"id"`
	OrderNumber  string      `json:"orderNumber"`  // Five random digits; not unique.
	OrderDate    time.Time   `json:"orderDate"`    // Requested delivery date.
	Location     Location    `json:"location"`     // Destination branch.
	PlacedBy     uuid.UUID   `json:"placedBy"`     // ID of the submitting staff member.
	PlacedByName string      `json:"placedByName"` // Name captured at submission.
	Items        []OrderItem `json:"items"`
	StaffNote    string      `json:"staffNote,omitempty"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// CanComplete reports whether the order may move to Complete.
func (o *Order) CanComplete() bool {
	return o.Status == OrderStatusActive
}

// TotalQuantity sums the quantities of all lines.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}

	return total
}
