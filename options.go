package docstore

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docstore/internal/config"
)

// Option configures the Manager.
type Option interface {
	apply(*managerConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*managerConfig)

func (f optionFunc) apply(c *managerConfig) { f(c) }

type managerConfig struct {
	cfg config.Config

	logger     *zap.Logger
	metricsReg prometheus.Registerer
}

// WithLogger enables structured logging for store operations.
// Pass nil to fall back to the configured logger (no-op by default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *managerConfig) {
		c.logger = l
	})
}

// WithMetrics registers store metrics on the given registerer.
// Nil defers to the configured setting: metrics.enabled registers on
// prometheus.DefaultRegisterer, otherwise metrics are off (default).
func WithMetrics(reg prometheus.Registerer) Option {
	return optionFunc(func(c *managerConfig) {
		c.metricsReg = reg
	})
}

// WithUUIDs makes generated document IDs random UUIDs instead of a sequence.
func WithUUIDs() Option {
	return optionFunc(func(c *managerConfig) {
		c.cfg.IDs.Strategy = config.StrategyUUID
	})
}

// WithIDStart sets the first value of the ID sequence. Default: 1.
// It has no effect with WithUUIDs.
func WithIDStart(start int64) Option {
	return optionFunc(func(c *managerConfig) {
		c.cfg.IDs.Start = start
	})
}

// WithValidation toggles required-field checks on save. Enabled by default.
func WithValidation(enabled bool) Option {
	return optionFunc(func(c *managerConfig) {
		c.cfg.Validation.Enabled = &enabled
	})
}

// WithMaxBatchSize sets the maximum number of items per SaveAll call.
// Default: 1000.
func WithMaxBatchSize(size int) Option {
	return optionFunc(func(c *managerConfig) {
		c.cfg.Batch.MaxSize = size
	})
}
