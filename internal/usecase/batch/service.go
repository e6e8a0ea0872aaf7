package batch

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/docstore/internal/domain"
	dombatch "github.com/kailas-cloud/docstore/internal/domain/batch"
	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
	"github.com/kailas-cloud/docstore/internal/logger"
)

// MaxBatchSize is the default maximum number of items per batch.
const MaxBatchSize = 1000

// Service handles batch upserts with per-item error reporting.
type Service struct {
	docs         DocumentSaver
	maxBatchSize int
}

// New creates a batch service.
func New(docs DocumentSaver) *Service {
	return &Service{docs: docs, maxBatchSize: MaxBatchSize}
}

// WithMaxBatchSize configures the maximum batch size.
func (s *Service) WithMaxBatchSize(size int) *Service {
	if size > 0 {
		s.maxBatchSize = size
	}
	return s
}

// Save upserts items in order. Each item succeeds or fails on its own;
// results[i] describes items[i].
func (s *Service) Save(ctx context.Context, items []domdoc.Document) []dombatch.Result {
	results := make([]dombatch.Result, len(items))

	if len(items) > s.maxBatchSize {
		for i, item := range items {
			results[i] = dombatch.NewError(
				item.ID(),
				fmt.Errorf("batch size %d exceeds %d: %w", len(items), s.maxBatchSize, domain.ErrInvalidRequest),
			)
		}
		return results
	}

	failed := 0
	for i, item := range items {
		saved, outcome, err := s.docs.Save(ctx, item)
		if err != nil {
			results[i] = dombatch.NewError(item.ID(), fmt.Errorf("item %d: %w", i, err))
			failed++
			continue
		}
		results[i] = dombatch.NewOK(saved.ID(), outcome)
	}

	logger.FromContext(ctx).Debug("batch saved",
		zap.Int("items", len(items)),
		zap.Int("failed", failed),
	)
	return results
}
