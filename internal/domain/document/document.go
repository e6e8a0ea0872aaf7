package document

import (
	"time"

	"github.com/kailas-cloud/docstore/internal/domain"
)

// Document is the document aggregate (immutable value object).
// An empty ID means the store has not assigned one yet.
type Document struct {
	id      string
	title   string
	content string
	author  Author
	created time.Time
}

// New validates and creates a Document.
// Author ID and created timestamp are required; title and content may be empty.
func New(id, title, content string, author Author, created time.Time) (Document, error) {
	d := Reconstruct(id, title, content, author, created)
	if err := d.Validate(); err != nil {
		return Document{}, err
	}
	return d, nil
}

// Reconstruct creates a Document without validation.
func Reconstruct(id, title, content string, author Author, created time.Time) Document {
	return Document{id: id, title: title, content: content, author: author, created: created}
}

// Validate checks the required fields.
func (d Document) Validate() error {
	if d.author.IsZero() {
		return domain.NewMissingField("author.id")
	}
	if d.created.IsZero() {
		return domain.NewMissingField("created")
	}
	return nil
}

// ID returns the document identifier.
func (d Document) ID() string { return d.id }

// HasID reports whether an identifier has been assigned.
func (d Document) HasID() bool { return d.id != "" }

// Title returns the document title.
func (d Document) Title() string { return d.title }

// Content returns the document text content.
func (d Document) Content() string { return d.content }

// Author returns the document author.
func (d Document) Author() Author { return d.author }

// Created returns the creation instant.
func (d Document) Created() time.Time { return d.created }

// WithID returns a copy carrying the given identifier.
func (d Document) WithID(id string) Document {
	d.id = id
	return d
}

// Merge returns a copy of d whose mutable fields are taken from src.
// The identifier of d is kept.
func (d Document) Merge(src Document) Document {
	return Document{
		id:      d.id,
		title:   src.title,
		content: src.content,
		author:  src.author,
		created: src.created,
	}
}

// Equal reports full value equality, including the nested author.
// Timestamps compare as instants, so the same moment in two locations is equal.
func (d Document) Equal(other Document) bool {
	return d.id == other.id &&
		d.title == other.title &&
		d.content == other.content &&
		d.author.Equal(other.author) &&
		d.created.Equal(other.created)
}
