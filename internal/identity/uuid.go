package identity

import "github.com/google/uuid"

// UUID yields random version 4 identifiers.
type UUID struct {
	pending string
}

// NewUUID creates a random identifier generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Next returns the pending identifier, drawing a new one if none is pending.
func (u *UUID) Next() string {
	if u.pending == "" {
		u.pending = uuid.NewString()
	}
	return u.pending
}

// Advance discards the pending identifier.
func (u *UUID) Advance() { u.pending = "" }
