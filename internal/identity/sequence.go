package identity

import "strconv"

// DefaultStart is the first identifier a Sequence hands out.
const DefaultStart = 1

// Sequence yields decimal identifiers "1", "2", ... in strictly increasing order.
type Sequence struct {
	next int64
}

// NewSequence creates a sequence starting at start (DefaultStart when start < 1).
func NewSequence(start int64) *Sequence {
	if start < 1 {
		start = DefaultStart
	}
	return &Sequence{next: start}
}

// Next returns the pending identifier.
func (s *Sequence) Next() string { return strconv.FormatInt(s.next, 10) }

// Advance moves to the following identifier.
func (s *Sequence) Advance() { s.next++ }
