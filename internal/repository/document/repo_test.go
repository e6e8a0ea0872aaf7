package document

import (
	"testing"
	"time"

	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
)

var created = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testDocument(id, title string) domdoc.Document {
	return domdoc.Reconstruct(id, title, "content", domdoc.NewAuthor("a1", "Author One"), created)
}

func TestPut_Get(t *testing.T) {
	repo := New()
	if !repo.Put(testDocument("1", "first")) {
		t.Fatal("Put() = false")
	}

	got, ok := repo.Get("1")
	if !ok {
		t.Fatal("Get() missed stored document")
	}
	if got.ID() != "1" || got.Title() != "first" {
		t.Errorf("Get() = %q / %q", got.ID(), got.Title())
	}
}

func TestGet_Missing(t *testing.T) {
	repo := New()
	if _, ok := repo.Get("does-not-exist"); ok {
		t.Fatal("Get() found a document in an empty repo")
	}
	if repo.Exists("does-not-exist") {
		t.Fatal("Exists() = true for missing key")
	}
}

func TestPut_RejectsEmptyID(t *testing.T) {
	repo := New()
	if repo.Put(testDocument("", "no id")) {
		t.Fatal("Put() accepted a document without id")
	}
	if repo.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", repo.Count())
	}
}

func TestPut_ReplaceKeepsSingleEntryAndPosition(t *testing.T) {
	repo := New()
	repo.Put(testDocument("1", "first"))
	repo.Put(testDocument("2", "second"))
	repo.Put(testDocument("1", "first, revised"))

	if repo.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", repo.Count())
	}
	all := repo.All()
	if all[0].ID() != "1" || all[0].Title() != "first, revised" {
		t.Errorf("All()[0] = %q / %q", all[0].ID(), all[0].Title())
	}
	if all[1].ID() != "2" {
		t.Errorf("All()[1] = %q", all[1].ID())
	}
}

func TestAll_InsertionOrder(t *testing.T) {
	repo := New()
	ids := []string{"3", "1", "10", "2"}
	for _, id := range ids {
		repo.Put(testDocument(id, "t"))
	}

	all := repo.All()
	if len(all) != len(ids) {
		t.Fatalf("All() len = %d, want %d", len(all), len(ids))
	}
	for i, id := range ids {
		if all[i].ID() != id {
			t.Errorf("All()[%d] = %q, want %q", i, all[i].ID(), id)
		}
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	repo := New()
	repo.Put(testDocument("1", "t"))

	all := repo.All()
	all[0] = testDocument("1", "changed")

	got, _ := repo.Get("1")
	if got.Title() != "t" {
		t.Errorf("mutating All() result changed the store: %q", got.Title())
	}
}
