package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(name string) *Item {
	return &Item{
		ID:                uuid.New(),
		Name:              name,
		NamePersian:       name,
		AssignedLocations: Locations{LocationBoth},
		IsActive:          true,
	}
}

func TestCart_AddMergesExistingLine(t *testing.T) {
	cart := NewCart(uuid.New())
	rice := newTestItem("Rice")
	soup := newTestItem("Soup")

	cart.Add(rice, 2)
	cart.Add(soup, 1)
	cart.Add(rice, 3)

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, rice.ID, cart.Lines[0].ItemID)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
	assert.Equal(t, "Rice", cart.Lines[0].ItemName)
	assert.Equal(t, 1, cart.Lines[1].Quantity)
}

func TestCart_AddIgnoresNonPositiveQuantity(t *testing.T) {
	cart := NewCart(uuid.New())

	cart.Add(newTestItem("Rice"), 0)
	cart.Add(newTestItem("Soup"), -2)

	assert.True(t, cart.IsEmpty())
}

func TestCart_SetQuantity(t *testing.T) {
	cart := NewCart(uuid.New())
	rice := newTestItem("Rice")
	cart.Add(rice, 1)

	assert.True(t, cart.SetQuantity(rice.ID, 4))
	assert.Equal(t, 4, cart.Lines[0].Quantity)

	assert.True(t, cart.SetQuantity(rice.ID, 0))
	assert.True(t, cart.IsEmpty())

	assert.False(t, cart.SetQuantity(uuid.New(), 2))
}

func TestCart_RemoveAndClear(t *testing.T) {
	cart := NewCart(uuid.New())
	rice := newTestItem("Rice")
	soup := newTestItem("Soup")
	cart.Location = LocationThornhill
	cart.StaffNote = "extra bread"
	cart.Add(rice, 1)
	cart.Add(soup, 1)

	assert.True(t, cart.Remove(rice.ID))
	assert.False(t, cart.Remove(rice.ID))
	require.Len(t, cart.Lines, 1)

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.StaffNote)
	assert.Equal(t, LocationThornhill, cart.Location)
}

func TestItem_AvailableAt(t *testing.T) {
	tests := []struct {
		name      string
		locations Locations
		active    bool
		branch    Location
		want      bool
	}{
		{"both covers north york", Locations{LocationBoth}, true, LocationNorthYork, true},
		{"exact branch", Locations{LocationThornhill}, true, LocationThornhill, true},
		{"other branch", Locations{LocationThornhill}, true, LocationNorthYork, false},
		{"inactive", Locations{LocationBoth}, false, LocationNorthYork, false},
		{"no locations", Locations{}, true, LocationNorthYork, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &Item{AssignedLocations: tt.locations, IsActive: tt.active}
			assert.Equal(t, tt.want, item.AvailableAt(tt.branch))
		})
	}
}

func TestLocationsFromStrings(t *testing.T) {
	got := LocationsFromStrings([]string{"North York", "Mars", "North York", "Both"})

	assert.Equal(t, Locations{LocationNorthYork, LocationBoth}, got)
	assert.Equal(t, []string{"North York", "Both"}, got.ToStrings())
}

func TestCompactRecipients(t *testing.T) {
	got := CompactRecipients([]string{" 4161234567 ", "", "   ", "+14165550000"})

	assert.Equal(t, []string{"4161234567", "+14165550000"}, got)
}

func TestNotificationSettings_Recipients(t *testing.T) {
	settings := &NotificationSettings{
		PhoneNumbers:   []string{"4161234567", " "},
		EmailAddresses: []string{"a@example.com"},
		SMSEnabled:     false,
		EmailEnabled:   true,
	}

	assert.Empty(t, settings.SMSRecipients())
	assert.Equal(t, []string{"a@example.com"}, settings.EmailRecipients())

	settings.SMSEnabled = true
	assert.Equal(t, []string{"4161234567"}, settings.SMSRecipients())
}

func TestUser_CanOrderFor(t *testing.T) {
	staff := &User{Role: RoleStaff, AssignedLocations: Locations{LocationNorthYork}}
	admin := &User{Role: RoleAdmin}

	assert.True(t, staff.CanOrderFor(LocationNorthYork))
	assert.False(t, staff.CanOrderFor(LocationThornhill))
	assert.True(t, admin.CanOrderFor(LocationThornhill))
}
