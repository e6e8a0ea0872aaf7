package document

import (
	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
)

// Repo is the in-memory document store. It keeps documents keyed by ID and
// remembers insertion order so iteration is deterministic.
// Repo is not safe for concurrent use.
type Repo struct {
	docs  map[string]domdoc.Document
	order []string
}

// New creates an empty document repository.
func New() *Repo {
	return &Repo{docs: make(map[string]domdoc.Document)}
}

// Get returns the document stored under id.
func (r *Repo) Get(id string) (domdoc.Document, bool) {
	d, ok := r.docs[id]
	return d, ok
}

// Exists reports whether id is a stored key.
func (r *Repo) Exists(id string) bool {
	_, ok := r.docs[id]
	return ok
}

// Put stores doc under its own ID. A replaced document keeps its position in
// iteration order. Documents without an ID are ignored and Put reports false.
func (r *Repo) Put(doc domdoc.Document) bool {
	if !doc.HasID() {
		return false
	}
	if _, ok := r.docs[doc.ID()]; !ok {
		r.order = append(r.order, doc.ID())
	}
	r.docs[doc.ID()] = doc
	return true
}

// All returns every stored document in insertion order.
func (r *Repo) All() []domdoc.Document {
	out := make([]domdoc.Document, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.docs[id])
	}
	return out
}

// Count returns the number of stored documents.
func (r *Repo) Count() int { return len(r.docs) }
