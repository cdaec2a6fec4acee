package domain

import "time"

// CourierToken is one cached bearer token for the courier API.
// Rows are append-only; the current token is the most recently issued one
// whose expiry is strictly in the future.
type CourierToken struct {
	ID        int64
	Token     string
	ExpiresAt time.Time
}

// ValidAt reports whether the token is usable at the given instant.
func (t *CourierToken) ValidAt(now time.Time) bool {
	return t != nil && t.ExpiresAt.After(now)
}
