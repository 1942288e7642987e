package engine

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/ayushran32/Error-404-Algovibe/logging"
	"github.com/ayushran32/Error-404-Algovibe/metrics"
	"github.com/ayushran32/Error-404-Algovibe/scan"
)

var (
	// ErrSuperseded is returned by Wait when the awaited run was replaced
	// by a newer Start or cancelled by Stop before it produced a result.
	ErrSuperseded = errors.New("engine: run superseded")

	// ErrIdle is returned by Wait when no run has been started.
	ErrIdle = errors.New("engine: no run started")
)

// State is the lifecycle state of an Engine.
type State int

const (
	// Idle means no run is in flight and no result is held.
	Idle State = iota

	// Running means a scan goroutine is producing emissions.
	Running

	// Complete means the current run delivered its Final event.
	Complete
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Complete:
		return "complete"
	default:
		return "state(" + strconv.Itoa(int(s)) + ")"
	}
}

// Ticket identifies one run started by Engine.Start.
type Ticket struct {
	Generation uint64
	RunID      string
}

// Emission is a scan event tagged with the run that produced it.
type Emission struct {
	Generation uint64
	RunID      string
	scan.Event
}

// Option configures an Engine.
type Option func(*Options)

// Options holds Engine settings.
type Options struct {
	// Delay is the per-step pause handed to every scan. Negative values
	// are treated as zero.
	Delay time.Duration

	// Sleep overrides the pause implementation (see scan.WithSleeper).
	Sleep func(ctx context.Context, d time.Duration) error

	// Logger receives run lifecycle logs.
	Logger *zap.SugaredLogger

	// Metrics records run counters; nil disables recording.
	Metrics *metrics.Metrics

	// Observer receives every non-stale emission on the scan goroutine.
	// It must not call Start, Stop or Close synchronously.
	Observer func(Emission)
}

// DefaultOptions returns Options with zero delay, a no-op logger,
// no metrics and a no-op observer.
func DefaultOptions() Options {
	return Options{
		Delay:    0,
		Sleep:    scan.Sleep,
		Logger:   logging.OrNop(nil),
		Metrics:  nil,
		Observer: func(Emission) {},
	}
}

// WithDelay sets the per-step pause.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			d = 0
		}
		o.Delay = d
	}
}

// WithSleeper replaces the pause implementation.
func WithSleeper(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.Sleep = fn
		}
	}
}

// WithLogger sets the lifecycle logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(o *Options) {
		o.Logger = logging.OrNop(log)
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// WithObserver registers the emission callback.
func WithObserver(fn func(Emission)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Observer = fn
		}
	}
}
