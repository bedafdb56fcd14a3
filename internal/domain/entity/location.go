// Package entity contains the core business objects of the project.
package entity

import "slices"

// Location is a restaurant branch tag.
type Location string

const (
	// LocationNorthYork is the North York kitchen.
	LocationNorthYork Location = "North York"
	// LocationThornhill is the Thornhill kitchen.
	LocationThornhill Location = "Thornhill"
	// LocationBoth marks an item offered at every branch. It is never an order destination.
	LocationBoth Location = "Both"
)

// String returns the string representation of the Location.
func (l Location) String() string {
	return string(l)
}

// IsValid reports whether l is one of the known tags, including Both.
func (l Location) IsValid() bool {
	switch l {
	case LocationNorthYork, LocationThornhill, LocationBoth:
		return true
	default:
		return false
	}
}

// IsBranch reports whether l names a single physical branch an order can be delivered to.
func (l Location) IsBranch() bool {
	return l == LocationNorthYork || l == LocationThornhill
}

// Locations is a set of location tags.
type Locations []Location

// Offers reports whether the set covers the given branch.
func (ls Locations) Offers(branch Location) bool {
	return slices.Contains(ls, LocationBoth) || slices.Contains(ls, branch)
}

// ToStrings converts Locations to []string for storage and tokens.
func (ls Locations) ToStrings() []string {
	result := make([]string, len(ls))
	for i, l := range ls {
		result[i] = l.String()
	}

	return result
}

// LocationsFromStrings converts []string to Locations, dropping unknown values and duplicates.
func LocationsFromStrings(ss []string) Locations {
	result := make(Locations, 0, len(ss))
	for _, s := range ss {
		loc := Location(s)
		if loc.IsValid() && !slices.Contains(result, loc) {
			result = append(result, loc)
		}
	}

	return result
}
