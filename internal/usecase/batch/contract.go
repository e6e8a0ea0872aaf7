package batch

import (
	"context"

	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
)

// DocumentSaver upserts a single document.
type DocumentSaver interface {
	Save(ctx context.Context, doc domdoc.Document) (domdoc.Document, domdoc.Outcome, error)
}
