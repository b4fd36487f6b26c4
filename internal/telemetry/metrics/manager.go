package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterIndexComputed  prometheus.Counter
	CounterSnapshotWrites prometheus.Counter
	CounterWorkoutsAdded  prometheus.Counter

	// histograms
	HistComputeDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("fitindex", "engine", prometheus.NewRegistry())
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterIndexComputed := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "index_computed",
		Help:      "The total number of computed performance indexes",
	})
	counterSnapshotWrites := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "snapshot_writes",
		Help:      "The total number of snapshot history writes",
	})
	counterWorkoutsAdded := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_added",
		Help:      "The total number of added workout records",
	})
	histComputeDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "compute_duration_seconds",
		Help:      "Duration of a full index computation, history write included",
		Buckets:   prometheus.DefBuckets,
	})

	return &Manager{
		CounterIndexComputed:  counterIndexComputed,
		CounterSnapshotWrites: counterSnapshotWrites,
		CounterWorkoutsAdded:  counterWorkoutsAdded,
		HistComputeDuration:   histComputeDuration,
	}
}
