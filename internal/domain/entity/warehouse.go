package entity

import "github.com/paulmach/orb"

// Warehouse is a supply source managers draw stock from.
type Warehouse struct {
	ID       int64     // Auto-assigned identifier for the warehouse.
	Area     int       // Service area code.
	Location orb.Point // The warehouse's coordinates.
}
