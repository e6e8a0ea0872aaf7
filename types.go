package docstore

import "time"

// Author identifies who wrote a document.
type Author struct {
	ID   string
	Name string
}

// Document is a stored record. An empty ID means "not yet assigned".
type Document struct {
	ID      string
	Title   string
	Content string
	Author  Author
	Created time.Time
}

// Equal reports whether two documents hold the same values.
// Created is compared as an instant, so time zones do not matter.
func (d Document) Equal(other Document) bool {
	return d.ID == other.ID &&
		d.Title == other.Title &&
		d.Content == other.Content &&
		d.Author == other.Author &&
		d.Created.Equal(other.Created)
}

// SearchRequest holds optional search criteria. Nil or empty fields are
// not applied. Both time bounds are inclusive.
type SearchRequest struct {
	TitlePrefixes    []string
	ContainsContents []string
	AuthorIDs        []string
	CreatedFrom      *time.Time
	CreatedTo        *time.Time
}

// BatchStatus describes what happened to one batch item.
type BatchStatus string

// Batch status constants.
const (
	BatchInserted  BatchStatus = "inserted"
	BatchUpdated   BatchStatus = "updated"
	BatchUnchanged BatchStatus = "unchanged"
	BatchError     BatchStatus = "error"
)

// BatchResult is the outcome of one item in SaveAll.
type BatchResult struct {
	ID     string
	Status BatchStatus
	Err    error
}

// OK reports whether the item was saved.
func (r BatchResult) OK() bool { return r.Status != BatchError }
