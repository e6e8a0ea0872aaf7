package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestSequence_StartsAtOne(t *testing.T) {
	s := NewSequence(0)
	if got := s.Next(); got != "1" {
		t.Fatalf("Next() = %q, want 1", got)
	}
}

func TestSequence_NextDoesNotConsume(t *testing.T) {
	s := NewSequence(DefaultStart)
	if s.Next() != s.Next() {
		t.Fatal("Next() changed without Advance()")
	}
}

func TestSequence_Advance(t *testing.T) {
	s := NewSequence(DefaultStart)
	want := []string{"1", "2", "3", "4"}
	for _, w := range want {
		if got := s.Next(); got != w {
			t.Fatalf("Next() = %q, want %q", got, w)
		}
		s.Advance()
	}
}

func TestSequence_CustomStart(t *testing.T) {
	s := NewSequence(100)
	if got := s.Next(); got != "100" {
		t.Fatalf("Next() = %q, want 100", got)
	}
}

func TestUUID_PendingUntilAdvance(t *testing.T) {
	u := NewUUID()
	first := u.Next()
	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("Next() = %q is not a uuid: %v", first, err)
	}
	if u.Next() != first {
		t.Fatal("Next() changed without Advance()")
	}
	u.Advance()
	if u.Next() == first {
		t.Fatal("Advance() did not discard the pending id")
	}
}

func TestUUID_Distinct(t *testing.T) {
	u := NewUUID()
	seen := make(map[string]bool)
	for range 100 {
		id := u.Next()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
		u.Advance()
	}
}

func TestGenerators_SatisfyInterface(t *testing.T) {
	var _ Generator = NewSequence(1)
	var _ Generator = NewUUID()
}
