package domain

// Identity is the authenticated principal resolved from a validated token.
// It is a per-request snapshot of the backing User taken at resolution
// time; a deactivation that lands after resolution does not retroactively
// invalidate a request already in flight.
type Identity struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Active bool   `json:"active"`
}
