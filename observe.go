package docstore

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
	"github.com/kailas-cloud/docstore/internal/metrics"
)

// observer provides logging and metrics for store operations.
type observer struct {
	logger  *zap.Logger
	metrics *metrics.Store
}

func newObserver(logger *zap.Logger, reg prometheus.Registerer) (*observer, error) {
	var m *metrics.Store
	if reg != nil {
		var err error
		m, err = metrics.New(reg)
		if err != nil {
			return nil, err
		}
	}
	return &observer{logger: logger, metrics: m}, nil
}

func (o *observer) observe(op string, start time.Time, err error) {
	if o == nil {
		return
	}
	dur := time.Since(start)

	if o.metrics != nil {
		o.metrics.ObserveOperation(op, start, err)
	}

	if err != nil {
		o.logger.Warn("operation failed",
			zap.String("op", op),
			zap.Duration("duration", dur),
			zap.Error(err),
		)
		return
	}
	o.logger.Debug("operation completed",
		zap.String("op", op),
		zap.Duration("duration", dur),
	)
}

func (o *observer) upserted(outcome domdoc.Outcome) {
	if o == nil || o.metrics == nil {
		return
	}
	o.metrics.ObserveUpsert(string(outcome))
}

func (o *observer) searched(matched int) {
	if o == nil || o.metrics == nil {
		return
	}
	o.metrics.ObserveSearch(matched)
}
