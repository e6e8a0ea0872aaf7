package document

import (
	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
)

// Repository defines the storage contract for documents.
type Repository interface {
	Get(id string) (domdoc.Document, bool)
	Exists(id string) bool
	Put(doc domdoc.Document) bool
	Count() int
}

// IDGenerator hands out identifiers for documents saved without one.
type IDGenerator interface {
	Next() string
	Advance()
}
