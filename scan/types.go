// Package scan provides tunable options, event types and error definitions
// for the animated longest-run scan.
package scan

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("scan: invalid option supplied")

// NoStart is the BestStart/Result.Start value meaning "no qualifying run".
const NoStart = -1

// Kind identifies what a single Event reports.
type Kind int

const (
	// CursorAt reports the index under examination, or the past-end sentinel.
	CursorAt Kind = iota

	// Fallen reports an index whose strength is below the threshold.
	Fallen

	// InterimBest reports a new best run discovered at a breach.
	InterimBest

	// Final is the terminal Result emission; it is always the last event.
	Final
)

// String returns the lower-case event name.
func (k Kind) String() string {
	switch k {
	case CursorAt:
		return "cursor"
	case Fallen:
		return "fallen"
	case InterimBest:
		return "interim_best"
	case Final:
		return "result"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// MarshalText encodes the kind by name for trace files.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "cursor":
		*k = CursorAt
	case "fallen":
		*k = Fallen
	case "interim_best":
		*k = InterimBest
	case "result":
		*k = Final
	default:
		return fmt.Errorf("scan: unknown event kind %q", text)
	}
	return nil
}

// Result is the outcome of a scan: the longest run of strengths ≥ K.
// Length == 0 and Start == NoStart means no qualifying run exists.
type Result struct {
	Length int `json:"length" yaml:"length"`
	Start  int `json:"start" yaml:"start"`
}

// Found reports whether a non-empty run was found.
func (r Result) Found() bool { return r.Length > 0 }

// End returns the exclusive end index of the run (Start+Length).
// For an empty result End returns NoStart.
func (r Result) End() int {
	if !r.Found() {
		return NoStart
	}
	return r.Start + r.Length
}

// Contains reports whether index i lies inside [Start, Start+Length).
func (r Result) Contains(i int) bool {
	return r.Found() && i >= r.Start && i < r.Start+r.Length
}

// String renders the run as "len=3 [3,6)" or "none".
func (r Result) String() string {
	if !r.Found() {
		return "none"
	}
	return fmt.Sprintf("len=%d [%d,%d)", r.Length, r.Start, r.End())
}

// Snapshot is an immutable copy of the scan state taken right after an
// event was produced. Fallen is a fresh slice owned by the receiver.
type Snapshot struct {
	Cursor      int   `json:"cursor" yaml:"cursor"`
	WindowStart int   `json:"window_start" yaml:"window_start"`
	BestLength  int   `json:"best_length" yaml:"best_length"`
	BestStart   int   `json:"best_start" yaml:"best_start"`
	Fallen      []int `json:"fallen" yaml:"fallen"`
	Segments    int   `json:"segments" yaml:"segments"`
}

// Best returns the best run recorded in the snapshot.
func (s Snapshot) Best() Result {
	return Result{Length: s.BestLength, Start: s.BestStart}
}

// Event is one emission of a running scan.
//
//   - CursorAt:    Index is the examined index; PastEnd is set when Index == len.
//   - Fallen:      Index is the newly fallen index.
//   - InterimBest: Result carries (length, start) of the new best.
//   - Final:       Result carries the terminal outcome.
type Event struct {
	Kind     Kind     `json:"kind" yaml:"kind"`
	Index    int      `json:"index" yaml:"index"`
	PastEnd  bool     `json:"past_end,omitempty" yaml:"past_end,omitempty"`
	Result   Result   `json:"result" yaml:"result"`
	Snapshot Snapshot `json:"snapshot" yaml:"snapshot"`
}

// Option configures scan behavior via functional arguments.
// If an Option is invalid (e.g. negative delay), it is recorded
// internally and surfaced as ErrOptionViolation when Longest is invoked.
type Option func(*ScanOptions)

// ScanOptions holds parameters and callbacks to customize a scan.
type ScanOptions struct {
	// Ctx allows cancellation of a scan between steps and during pauses.
	Ctx context.Context

	// Delay is the visualization pause after every index and after the
	// past-end cursor. Zero disables pausing.
	Delay time.Duration

	// Sleep performs a pause; it must return ctx.Err() when ctx is done.
	Sleep func(ctx context.Context, d time.Duration) error

	// OnEvent receives every event in emission order.
	OnEvent func(Event)

	// OnCursor is called for every cursor move, including past end.
	OnCursor func(index int)

	// OnFallen is called when an index is marked fallen.
	OnFallen func(index int)

	// OnInterimBest is called when a breach produces a new best run.
	OnInterimBest func(best Result)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns ScanOptions with sane defaults:
//   - Context.Background()
//   - zero delay (no pauses)
//   - timer-based Sleep honoring ctx
//   - no-op hooks.
func DefaultOptions() ScanOptions {
	return ScanOptions{
		Ctx:           context.Background(),
		Delay:         0,
		Sleep:         Sleep,
		OnEvent:       func(Event) {},
		OnCursor:      func(int) {},
		OnFallen:      func(int) {},
		OnInterimBest: func(Result) {},
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *ScanOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDelay sets the per-step visualization pause.
//
//	d > 0:  pause d after each step
//	d == 0: no pauses, events are produced back to back
//	d < 0:  invalid option → ErrOptionViolation
func WithDelay(d time.Duration) Option {
	return func(o *ScanOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: delay cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.Delay = d
	}
}

// WithSleeper replaces the pause implementation.
func WithSleeper(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(o *ScanOptions) {
		if fn != nil {
			o.Sleep = fn
		}
	}
}

// WithObserver registers a callback receiving every event.
func WithObserver(fn func(Event)) Option {
	return func(o *ScanOptions) {
		if fn != nil {
			o.OnEvent = fn
		}
	}
}

// WithOnCursor registers a callback to run on every cursor move.
func WithOnCursor(fn func(index int)) Option {
	return func(o *ScanOptions) {
		if fn != nil {
			o.OnCursor = fn
		}
	}
}

// WithOnFallen registers a callback to run when an index falls.
func WithOnFallen(fn func(index int)) Option {
	return func(o *ScanOptions) {
		if fn != nil {
			o.OnFallen = fn
		}
	}
}

// WithOnInterimBest registers a callback to run on a new interim best.
func WithOnInterimBest(fn func(best Result)) Option {
	return func(o *ScanOptions) {
		if fn != nil {
			o.OnInterimBest = fn
		}
	}
}

// Sleep pauses for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
