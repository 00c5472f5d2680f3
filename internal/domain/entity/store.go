package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// Store is a single-manager retail location carrying its own product stock.
// Invariant: a store has exactly one manager; a manager may own zero or more stores.
type Store struct {
	ID              int64     // Auto-assigned identifier for the store.
	ManagerID       int64     // Identity of the owning manager (role = manager).
	Location        orb.Point // The store's coordinates.
	DateEstablished time.Time // When the store opened.
}

// Point returns the store's location, satisfying geo.Locator.
func (s *Store) Point() orb.Point {
	return s.Location
}

// OwnedBy reports whether the given user is the store's recorded manager.
func (s *Store) OwnedBy(userID int64) bool {
	return s.ManagerID == userID
}
