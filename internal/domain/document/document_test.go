package document

import (
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/docstore/internal/domain"
)

var created = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestNew_Valid(t *testing.T) {
	doc, err := New("1", "Test Title", "Test Content", NewAuthor("a1", "Author One"), created)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.ID() != "1" {
		t.Errorf("ID() = %q", doc.ID())
	}
	if doc.Title() != "Test Title" {
		t.Errorf("Title() = %q", doc.Title())
	}
	if doc.Content() != "Test Content" {
		t.Errorf("Content() = %q", doc.Content())
	}
	if doc.Author().ID() != "a1" || doc.Author().Name() != "Author One" {
		t.Errorf("Author() = %+v", doc.Author())
	}
	if !doc.Created().Equal(created) {
		t.Errorf("Created() = %v", doc.Created())
	}
}

func TestNew_EmptyIDAllowed(t *testing.T) {
	doc, err := New("", "t", "c", NewAuthor("a1", "n"), created)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.HasID() {
		t.Error("HasID() = true for empty id")
	}
}

func TestNew_EmptyTitleAndContentAllowed(t *testing.T) {
	if _, err := New("", "", "", NewAuthor("a1", "n"), created); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNew_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		author  Author
		created time.Time
		field   string
	}{
		{"no author", Author{}, created, "author.id"},
		{"author name only", NewAuthor("", "n"), created, "author.id"},
		{"no created", NewAuthor("a1", "n"), time.Time{}, "created"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("", "t", "c", tt.author, tt.created)
			if !errors.Is(err, domain.ErrMissingField) {
				t.Fatalf("expected ErrMissingField, got %v", err)
			}
			var mf *domain.MissingFieldError
			if !errors.As(err, &mf) {
				t.Fatalf("expected *MissingFieldError, got %T", err)
			}
			if mf.Field != tt.field {
				t.Errorf("Field = %q, want %q", mf.Field, tt.field)
			}
		})
	}
}

func TestReconstruct_SkipsValidation(t *testing.T) {
	doc := Reconstruct("x", "", "", Author{}, time.Time{})
	if doc.ID() != "x" {
		t.Errorf("ID() = %q", doc.ID())
	}
	if err := doc.Validate(); err == nil {
		t.Error("Validate() should report the missing author")
	}
}

func TestWithID_DoesNotMutateOriginal(t *testing.T) {
	doc := Reconstruct("", "t", "c", NewAuthor("a1", "n"), created)
	withID := doc.WithID("7")

	if withID.ID() != "7" {
		t.Errorf("WithID().ID() = %q", withID.ID())
	}
	if doc.HasID() {
		t.Error("original document gained an id")
	}
	if withID.Title() != "t" {
		t.Errorf("WithID() lost title: %q", withID.Title())
	}
}

func TestMerge_KeepsIDTakesFields(t *testing.T) {
	stored := Reconstruct("1", "old", "old body", NewAuthor("a1", "Old"), created)
	later := created.Add(time.Hour)
	incoming := Reconstruct("ignored", "new", "new body", NewAuthor("a2", "New"), later)

	merged := stored.Merge(incoming)

	if merged.ID() != "1" {
		t.Errorf("ID() = %q, want 1", merged.ID())
	}
	if merged.Title() != "new" || merged.Content() != "new body" {
		t.Errorf("merged fields = %q / %q", merged.Title(), merged.Content())
	}
	if !merged.Author().Equal(NewAuthor("a2", "New")) {
		t.Errorf("Author() = %+v", merged.Author())
	}
	if !merged.Created().Equal(later) {
		t.Errorf("Created() = %v", merged.Created())
	}
}

func TestEqual(t *testing.T) {
	base := Reconstruct("1", "t", "c", NewAuthor("a1", "n"), created)

	tests := []struct {
		name  string
		other Document
		want  bool
	}{
		{"identical", Reconstruct("1", "t", "c", NewAuthor("a1", "n"), created), true},
		{"same instant other zone", Reconstruct("1", "t", "c", NewAuthor("a1", "n"), created.In(time.FixedZone("X", 3*3600))), true},
		{"different id", Reconstruct("2", "t", "c", NewAuthor("a1", "n"), created), false},
		{"different title", Reconstruct("1", "T", "c", NewAuthor("a1", "n"), created), false},
		{"different content", Reconstruct("1", "t", "C", NewAuthor("a1", "n"), created), false},
		{"different author id", Reconstruct("1", "t", "c", NewAuthor("a2", "n"), created), false},
		{"different author name", Reconstruct("1", "t", "c", NewAuthor("a1", "m"), created), false},
		{"different created", Reconstruct("1", "t", "c", NewAuthor("a1", "n"), created.Add(time.Nanosecond)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Equal(tt.other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}
