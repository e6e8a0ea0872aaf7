package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every docstore metric.
const Namespace = "docstore"

// Store holds the Prometheus collectors of one or more document stores.
// Stores sharing a registerer share collectors, so counters aggregate.
type Store struct {
	Operations    *prometheus.CounterVec
	Duration      *prometheus.HistogramVec
	Upserts       *prometheus.CounterVec
	Documents     prometheus.Gauge
	SearchResults prometheus.Histogram
}

// New creates the collectors and registers them with reg, reusing any
// already registered by another store.
func New(reg prometheus.Registerer) (*Store, error) {
	m := &Store{
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "operations_total",
			Help:      "Total store operations by type and status.",
		}, []string{"operation", "status"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "operation_duration_seconds",
			Help:      "Store operation duration in seconds.",
			Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}, []string{"operation"}),
		Upserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "upserts_total",
			Help:      "Upserts by outcome (inserted, updated, unchanged).",
		}, []string{"outcome"}),
		Documents: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "documents",
			Help:      "Number of stored documents.",
		}),
		SearchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "search_results",
			Help:      "Number of documents returned per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
	if err := registerOrReuse(reg, &m.Operations); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.Duration); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.Upserts); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.Documents); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.SearchResults); err != nil {
		return nil, err
	}
	return m, nil
}

// ObserveOperation records one operation and its duration.
func (m *Store) ObserveOperation(op string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.Operations.WithLabelValues(op, status).Inc()
	m.Duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// ObserveUpsert records an upsert outcome. Insertions grow the document gauge.
func (m *Store) ObserveUpsert(outcome string) {
	m.Upserts.WithLabelValues(outcome).Inc()
	if outcome == "inserted" {
		m.Documents.Inc()
	}
}

// ObserveSearch records the result size of one search.
func (m *Store) ObserveSearch(matched int) {
	m.SearchResults.Observe(float64(matched))
}

// registerOrReuse registers a collector or reuses an existing one.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	if err := reg.Register(*c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			existing, ok := are.ExistingCollector.(T)
			if !ok {
				return fmt.Errorf("docstore: metric already registered with incompatible type: %T", are.ExistingCollector)
			}
			*c = existing
			return nil
		}
		return fmt.Errorf("docstore: register metric: %w", err)
	}
	return nil
}
