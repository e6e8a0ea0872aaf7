package document

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
	"github.com/kailas-cloud/docstore/internal/logger"
)

// Service implements upsert and lookup of documents.
type Service struct {
	repo     Repository
	ids      IDGenerator
	validate bool
}

// New creates a document service. Validation is enabled by default.
func New(repo Repository, ids IDGenerator) *Service {
	return &Service{repo: repo, ids: ids, validate: true}
}

// WithValidation toggles required-field validation on Save.
func (s *Service) WithValidation(enabled bool) *Service {
	s.validate = enabled
	return s
}

// Save upserts doc and returns the stored state together with what happened:
//   - no ID: a fresh identifier is assigned and the document is inserted;
//   - known ID, equal value: nothing changes;
//   - known ID, different value: title, content, author and created replace the stored ones;
//   - unknown ID: the document is inserted under the caller's ID.
//
// Every insertion advances the identifier generator, including inserts with a
// caller-supplied ID. Merges and no-ops never do.
func (s *Service) Save(ctx context.Context, doc domdoc.Document) (domdoc.Document, domdoc.Outcome, error) {
	if s.validate {
		if err := doc.Validate(); err != nil {
			return domdoc.Document{}, "", fmt.Errorf("validate document: %w", err)
		}
	}

	log := logger.FromContext(ctx)

	if !doc.HasID() {
		doc = doc.WithID(s.nextFreeID(log))
		s.insert(doc)
		log.Debug("document inserted", zap.String("id", doc.ID()), zap.Bool("generated_id", true))
		return doc, domdoc.Inserted, nil
	}

	stored, ok := s.repo.Get(doc.ID())
	if !ok {
		s.insert(doc)
		log.Debug("document inserted", zap.String("id", doc.ID()), zap.Bool("generated_id", false))
		return doc, domdoc.Inserted, nil
	}

	if stored.Equal(doc) {
		log.Debug("document unchanged", zap.String("id", doc.ID()))
		return doc, domdoc.Unchanged, nil
	}

	merged := stored.Merge(doc)
	s.repo.Put(merged)
	log.Debug("document updated", zap.String("id", merged.ID()))
	return merged, domdoc.Updated, nil
}

// Get returns the document stored under id.
func (s *Service) Get(id string) (domdoc.Document, bool) {
	return s.repo.Get(id)
}

// Count returns the number of stored documents.
func (s *Service) Count() int {
	return s.repo.Count()
}

func (s *Service) insert(doc domdoc.Document) {
	s.repo.Put(doc)
	s.ids.Advance()
}

// nextFreeID skips generated identifiers already taken by caller-supplied IDs,
// so a generated ID never overwrites a stored document.
func (s *Service) nextFreeID(log *zap.Logger) string {
	id := s.ids.Next()
	for s.repo.Exists(id) {
		log.Debug("generated id already taken, skipping", zap.String("id", id))
		s.ids.Advance()
		id = s.ids.Next()
	}
	return id
}
