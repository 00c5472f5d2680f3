// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// User is the core identity entity. It carries the minimal projection the
// business layer needs per operation: identity, role, and location.
type User struct {
	ID        int64      // Auto-assigned identifier for the user.
	Name      string     // Unique login name.
	Secret    string     // Login credential. Compared by the configured CredentialVerifier.
	Role      Role       // The user's role. Immutable after creation.
	Location  *orb.Point // Recorded coordinates. Nil when the user has no recorded location.
	CreatedAt time.Time  // Timestamp of when this user account was created.
}

// HasLocation reports whether the user has a recorded location.
// Proximity-scoped operations must fail for users without one.
func (u *User) HasLocation() bool {
	return u != nil && u.Location != nil
}
