package paramsync

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/paramsync/paramsync/host"
)

type Option = func(*config)

// WithHistory sets how location updates are recorded in navigation history.
// The default is [host.Replace].
func WithHistory(mode host.History) Option {
	if mode != host.Replace && mode != host.Push {
		panic("unknown history mode")
	}
	return func(c *config) {
		c.history = mode
	}
}

// WithHash reads and writes the location's hash fragment instead of its
// query string.
func WithHash() Option {
	return func(c *config) {
		c.useHash = true
	}
}

// WithHashRouting treats the hash fragment as a pseudo-path plus query
// string ("#/path?k=v"): the path portion is preserved across updates and
// only the part after the first "?" is synchronized. Implies hash mode.
func WithHashRouting() Option {
	return func(c *config) {
		c.useHash = true
		c.hashRouting = true
	}
}

// WithLogger sets the logger that receives storage failures. The default is
// [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("logger can't be nil")
	}
	return func(c *config) {
		c.logger = logger
	}
}

// WithPrometheus enables synchronization metrics. If registerer is nil, the
// metrics are created but not registered.
func WithPrometheus(
	registerer prometheus.Registerer,
	namespace, subsystem string,
) Option {
	return func(c *config) {
		c.metrics = newMetrics(registerer, namespace, subsystem)
	}
}

type config struct {
	history     host.History
	useHash     bool
	hashRouting bool
	logger      *slog.Logger
	metrics     *metrics
}

func newConfig(options ...Option) *config {
	options = append([]Option{
		WithHistory(host.Replace),
		WithLogger(slog.Default()),
		WithPrometheus(nil, "paramsync", ""),
	}, options...)

	cfg := config{}
	for _, opt := range options {
		opt(&cfg)
	}

	return &cfg
}
