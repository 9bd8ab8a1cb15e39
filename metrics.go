package paramsync

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	reads         prometheus.Counter
	readFallbacks prometheus.Counter
	writes        *prometheus.CounterVec
	storeErrors   prometheus.Counter
}

func newMetrics(registerer prometheus.Registerer, namespace, subsystem string) *metrics {
	m := metrics{
		reads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "reads",
			Help:      "Number of reads from the location or storage",
		}),
		readFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "read_fallbacks",
			Help:      "Number of reads that resolved to a fallback value",
		}),
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "writes",
			Help:      "Number of writes to the location or storage",
		}, []string{"result"}),
		storeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "store_errors",
			Help:      "Number of storage read/write failures",
		}),
	}

	if registerer != nil {
		registerer = prometheus.WrapRegistererWith(
			prometheus.Labels{"component": "paramsync"},
			registerer,
		)
		registerer.MustRegister(
			m.reads,
			m.readFallbacks,
			m.writes,
			m.storeErrors,
		)
	}

	return &m
}
