package search

import (
	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
)

// Repository lists stored documents in a stable order.
// All must return a slice the caller owns.
type Repository interface {
	All() []domdoc.Document
}
