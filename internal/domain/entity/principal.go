package entity

import "github.com/paulmach/orb"

// Principal is the authenticated identity for the lifetime of a session.
// It is established at login and passed explicitly into every operation;
// there is no global current-user state.
type Principal struct {
	UserID   int64      // Identity of the authenticated user.
	Name     string     // Login name, for display and audit attribution.
	Role     Role       // Role captured at login.
	Location *orb.Point // Location captured at login. Nil when none is recorded.
}

// HasLocation reports whether the principal carries a recorded location.
func (p *Principal) HasLocation() bool {
	return p != nil && p.Location != nil
}
