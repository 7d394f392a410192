// Package metrics provides the dynarray-demo CLI's Prometheus
// instrumentation: storage shape transitions and sort durations. Only
// the CLI registers and records these — the cell/storage/array/sorter
// packages stay free of any observability dependency (SPEC_FULL.md's
// ambient-stack section).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dynarray"

// Recorder holds every metric the demo CLI emits.
type Recorder struct {
	shapeTransitions *prometheus.CounterVec
	sortDuration     *prometheus.HistogramVec
	liveCount        prometheus.Gauge
}

// NewRecorder registers the demo's metrics against the default
// Prometheus registry.
func NewRecorder() *Recorder {
	return &Recorder{
		shapeTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shape_transitions_total",
			Help:      "Total number of storage shape transitions, labeled by from/to shape.",
		}, []string{"from", "to"}),

		sortDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sort_duration_seconds",
			Help:      "Duration of Sort/SortOn calls issued by the demo CLI.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),

		liveCount: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_count",
			Help:      "Number of live (non-hole) elements in the demo array after the last command.",
		}),
	}
}

// RecordTransition is called by the CLI's storage.TransitionObserver
// adapter (see cmd/dynarray-demo) with the shapes already rendered to
// their String() form — this package has no dependency on storage.
func (r *Recorder) RecordTransition(from, to string, liveCount int) {
	r.shapeTransitions.WithLabelValues(from, to).Inc()
	r.liveCount.Set(float64(liveCount))
}

// SetLiveCount updates the live-element gauge outside of a transition,
// e.g. after a bulk push or sort where no shape change occurred.
func (r *Recorder) SetLiveCount(n int) {
	r.liveCount.Set(float64(n))
}

// ObserveSortDuration records how long a sort/sortOn call took.
func (r *Recorder) ObserveSortDuration(op string, seconds float64) {
	r.sortDuration.WithLabelValues(op).Observe(seconds)
}
