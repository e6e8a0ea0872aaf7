package batch

import domdoc "github.com/kailas-cloud/docstore/internal/domain/document"

// ItemStatus is the processing outcome of a single batch item.
type ItemStatus string

// Batch item status values.
const (
	StatusInserted  ItemStatus = ItemStatus(domdoc.Inserted)
	StatusUpdated   ItemStatus = ItemStatus(domdoc.Updated)
	StatusUnchanged ItemStatus = ItemStatus(domdoc.Unchanged)
	StatusError     ItemStatus = "error"
)

// Result is the outcome of processing one item in a batch operation.
type Result struct {
	id     string
	status ItemStatus
	err    error
}

// NewOK creates a successful batch result for the given upsert outcome.
func NewOK(id string, outcome domdoc.Outcome) Result {
	return Result{id: id, status: ItemStatus(outcome)}
}

// NewError creates a failed batch result.
func NewError(id string, err error) Result { return Result{id: id, status: StatusError, err: err} }

// ID returns the item identifier. Empty for items that failed before an id was assigned.
func (r Result) ID() string { return r.id }

// Status returns the processing outcome.
func (r Result) Status() ItemStatus { return r.status }

// Err returns the error, if any.
func (r Result) Err() error { return r.err }

// OK reports whether the item was stored or already up to date.
func (r Result) OK() bool { return r.status != StatusError }
