package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docstore/internal/config"
	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
	"github.com/kailas-cloud/docstore/internal/identity"
	"github.com/kailas-cloud/docstore/internal/logger"
	docrepo "github.com/kailas-cloud/docstore/internal/repository/document"
	batchuc "github.com/kailas-cloud/docstore/internal/usecase/batch"
	documentuc "github.com/kailas-cloud/docstore/internal/usecase/document"
	searchuc "github.com/kailas-cloud/docstore/internal/usecase/search"
	"github.com/kailas-cloud/docstore/internal/version"
)

// Manager is the docstore entry point. Each Manager owns its own documents
// and ID generator. It is not safe for concurrent use.
type Manager struct {
	docSvc    *documentuc.Service
	searchSvc *searchuc.Service
	batchSvc  *batchuc.Service

	log *zap.Logger
	obs *observer
}

// New creates an empty Manager.
func New(opts ...Option) (*Manager, error) {
	return newManager(&managerConfig{cfg: config.Default()}, opts)
}

// NewFromFile creates an empty Manager configured from a YAML file.
// Options override file settings.
func NewFromFile(path string, opts ...Option) (*Manager, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("docstore: %w", err)
	}
	return newManager(&managerConfig{cfg: cfg}, opts)
}

func newManager(mc *managerConfig, opts []Option) (*Manager, error) {
	for _, o := range opts {
		o.apply(mc)
	}

	cfg := mc.cfg
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("docstore: invalid config: %w", err)
	}

	log := mc.logger
	if log == nil {
		var err error
		log, err = logger.NewLogger(cfg.Logging.Env, cfg.Logging.Level)
		if err != nil {
			return nil, fmt.Errorf("docstore: create logger: %w", err)
		}
	}

	reg := mc.metricsReg
	if reg == nil && cfg.Metrics.Enabled {
		reg = prometheus.DefaultRegisterer
	}
	obs, err := newObserver(log, reg)
	if err != nil {
		return nil, err
	}

	repo := docrepo.New()
	docSvc := documentuc.New(repo, newGenerator(cfg.IDs)).
		WithValidation(cfg.ValidationEnabled())
	searchSvc := searchuc.New(repo)
	batchSvc := batchuc.New(docSvc).WithMaxBatchSize(cfg.Batch.MaxSize)

	log.Debug("docstore initialized",
		zap.String("version", version.String()),
		zap.String("id_strategy", cfg.IDs.Strategy),
		zap.Bool("validation", cfg.ValidationEnabled()),
		zap.Int("max_batch_size", cfg.Batch.MaxSize),
		zap.Bool("metrics", reg != nil),
	)

	return &Manager{
		docSvc:    docSvc,
		searchSvc: searchSvc,
		batchSvc:  batchSvc,
		log:       log,
		obs:       obs,
	}, nil
}

func newGenerator(cfg config.IDConfig) documentuc.IDGenerator {
	if cfg.Strategy == config.StrategyUUID {
		return identity.NewUUID()
	}
	return identity.NewSequence(cfg.Start)
}

// Save inserts or updates a document and returns the stored state.
//
// A document without an ID is inserted under a generated ID. A document
// whose ID is stored and whose values are equal leaves the store unchanged;
// otherwise every field but the ID is overwritten.
func (m *Manager) Save(ctx context.Context, doc Document) (Document, error) {
	start := time.Now()
	saved, outcome, err := m.docSvc.Save(m.withLogger(ctx), toDomainDocument(doc))
	m.obs.observe("save", start, err)
	if err != nil {
		return Document{}, fmt.Errorf("save: %w", err)
	}
	m.obs.upserted(outcome)
	return fromDomainDocument(saved), nil
}

// SaveAll saves documents in order. results[i] describes docs[i]; items
// fail independently. A batch over the size limit fails every item
// with ErrInvalidRequest.
func (m *Manager) SaveAll(ctx context.Context, docs []Document) []BatchResult {
	start := time.Now()

	items := make([]domdoc.Document, len(docs))
	for i, d := range docs {
		items[i] = toDomainDocument(d)
	}

	results := m.batchSvc.Save(m.withLogger(ctx), items)

	out := make([]BatchResult, len(results))
	var errs []error
	for i, r := range results {
		out[i] = fromDomainBatchResult(r)
		if !r.OK() {
			errs = append(errs, r.Err())
			continue
		}
		m.obs.upserted(domdoc.Outcome(r.Status()))
	}
	m.obs.observe("save_all", start, errors.Join(errs...))
	return out
}

// Search returns the documents matching every set criterion, in the
// order they were first inserted. An empty request returns all documents.
func (m *Manager) Search(ctx context.Context, req SearchRequest) []Document {
	start := time.Now()
	docs := m.searchSvc.Search(m.withLogger(ctx), toDomainRequest(req))
	m.obs.observe("search", start, nil)
	m.obs.searched(len(docs))
	return fromDomainDocuments(docs)
}

// FindByID returns the stored document with the given ID.
func (m *Manager) FindByID(id string) (Document, bool) {
	doc, ok := m.docSvc.Get(id)
	if !ok {
		return Document{}, false
	}
	return fromDomainDocument(doc), true
}

// Count returns the number of stored documents.
func (m *Manager) Count() int {
	return m.docSvc.Count()
}

// withLogger attaches the manager logger unless ctx already carries one.
func (m *Manager) withLogger(ctx context.Context) context.Context {
	if logger.HasLogger(ctx) {
		return ctx
	}
	return logger.ContextWithLogger(ctx, m.log)
}
