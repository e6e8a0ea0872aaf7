package search

import (
	"context"

	"go.uber.org/zap"

	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
	"github.com/kailas-cloud/docstore/internal/domain/search/filter"
	"github.com/kailas-cloud/docstore/internal/domain/search/request"
	"github.com/kailas-cloud/docstore/internal/logger"
)

// Service runs filtered searches over the document store.
type Service struct {
	repo Repository
}

// New creates a search service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search returns every stored document matching all criteria set on req,
// in store order. Unset criteria match everything.
func (s *Service) Search(ctx context.Context, req request.Request) []domdoc.Document {
	criteria := filter.FromRequest(req)
	docs := s.repo.All()

	matched := docs[:0]
	for _, d := range docs {
		if criteria.Matches(d) {
			matched = append(matched, d)
		}
	}

	logger.FromContext(ctx).Debug("search completed",
		zap.Int("criteria", criteria.Len()),
		zap.Int("scanned", len(docs)),
		zap.Int("matched", len(matched)),
	)
	return matched
}
