// Package metrics exposes Prometheus collectors for scan runs.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const Namespace = "algovibe"

// Outcome label values for finished scans.
const (
	OutcomeDefended = "defended" // a qualifying run was found
	OutcomeBreached = "breached" // no run qualifies
)

// Labels holds constant labels applied to all metrics.
type Labels struct {
	Instance string // CLI instance name, e.g. hostname or "demo"
}

// toPrometheusLabels converts Labels to prometheus.Labels map.
// Only non-empty labels are included.
func (l Labels) toPrometheusLabels() prometheus.Labels {
	labels := prometheus.Labels{}
	if l.Instance != "" {
		labels["instance_name"] = l.Instance
	}
	return labels
}

type Metrics struct {
	scansStarted    prometheus.Counter
	scansSuperseded prometheus.Counter
	scansCompleted  *prometheus.CounterVec // by outcome
	steps           prometheus.Counter
	fallen          prometheus.Counter
	scanDuration    prometheus.Histogram
	bestLength      prometheus.Gauge
	segments        prometheus.Gauge
}

// New creates a new Metrics instance and registers all metrics with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	return NewWithLabels(reg, Labels{})
}

// NewWithLabels creates a new Metrics instance with constant labels applied to all metrics.
func NewWithLabels(reg prometheus.Registerer, labels Labels) (*Metrics, error) {
	promLabels := labels.toPrometheusLabels()
	if len(promLabels) > 0 {
		reg = prometheus.WrapRegistererWith(promLabels, reg)
	}

	return newMetrics(reg)
}

// newMetrics is the internal constructor that creates and registers all metrics.
func newMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		scansStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "scans_started_total",
			Help:      "Total number of scans started",
		}),
		scansSuperseded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "scans_superseded_total",
			Help:      "Total number of scans cancelled by a restart or stop before completing",
		}),
		scansCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "scans_completed_total",
			Help:      "Total number of scans that emitted a final result, by outcome",
		}, []string{"outcome"}),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "scan_steps_total",
			Help:      "Total number of cursor moves observed, including past-end moves",
		}),
		fallen: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "segments_fallen_total",
			Help:      "Total number of segments marked below threshold",
		}),
		scanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "scan_duration_seconds",
			Help:      "Wall-clock duration of completed scans",
			Buckets:   []float64{.001, .01, .1, .5, 1, 2.5, 5, 10, 30, 60},
		}),
		bestLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "last_best_length",
			Help:      "Length of the best run reported by the most recent completed scan",
		}),
		segments: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "last_segments",
			Help:      "Number of segments in the most recently started scan",
		}),
	}

	collectors := []prometheus.Collector{
		m.scansStarted,
		m.scansSuperseded,
		m.scansCompleted,
		m.steps,
		m.fallen,
		m.scanDuration,
		m.bestLength,
		m.segments,
	}
	var errs []error
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	return m, nil
}

// ScanStarted records a new scan over n segments.
func (m *Metrics) ScanStarted(n int) {
	if m == nil {
		return
	}
	m.scansStarted.Inc()
	m.segments.Set(float64(n))
}

// ScanSuperseded records a scan cancelled before its result.
func (m *Metrics) ScanSuperseded() {
	if m == nil {
		return
	}
	m.scansSuperseded.Inc()
}

// Step records one cursor move.
func (m *Metrics) Step() {
	if m == nil {
		return
	}
	m.steps.Inc()
}

// SegmentFallen records one fallen segment.
func (m *Metrics) SegmentFallen() {
	if m == nil {
		return
	}
	m.fallen.Inc()
}

// ScanCompleted records the final result length and the scan duration.
func (m *Metrics) ScanCompleted(bestLength int, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeBreached
	if bestLength > 0 {
		outcome = OutcomeDefended
	}
	m.scansCompleted.WithLabelValues(outcome).Inc()
	m.scanDuration.Observe(elapsed.Seconds())
	m.bestLength.Set(float64(bestLength))
}
