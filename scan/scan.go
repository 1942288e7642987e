package scan

import (
	"context"
)

// walker encapsulates mutable scan state. It is owned by exactly one
// Longest call and never shared.
type walker struct {
	strengths []int
	k         int
	opts      ScanOptions
	ctx       context.Context

	cursor      int
	windowStart int
	best        Result
	fallen      []int
}

// Longest scans strengths left to right and returns the longest run of
// elements ≥ k, emitting one event per step through the configured hooks.
//
// Preconditions: every strength and k are non-negative. They are not
// checked at runtime; callers filter raw input first (see package parse).
//
// Returns ErrOptionViolation for bad options, or the context error if the
// scan is cancelled; in both cases the Result is {0, NoStart} and no
// Final event has been emitted.
func Longest(strengths []int, k int, opts ...Option) (Result, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return noRun(), o.err
	}

	w := &walker{
		strengths: strengths,
		k:         k,
		opts:      o,
		ctx:       o.Ctx,
		best:      noRun(),
		fallen:    make([]int, 0, len(strengths)),
	}
	if err := w.loop(); err != nil {
		return noRun(), err
	}
	return w.finish()
}

// loop visits every index in order, pausing after each one.
func (w *walker) loop() error {
	for i := range w.strengths {
		// cancellation check (once per index)
		if err := w.ctx.Err(); err != nil {
			return err
		}
		w.step(i)
		if err := w.pause(); err != nil {
			return err
		}
	}
	return nil
}

// step examines index i: moves the cursor and, on a breach, closes the
// current window and records it if strictly longer than the best.
func (w *walker) step(i int) {
	w.cursor = i
	w.opts.OnCursor(i)
	w.emit(Event{Kind: CursorAt, Index: i})

	if w.strengths[i] >= w.k {
		return
	}
	w.fallen = append(w.fallen, i)
	w.opts.OnFallen(i)
	w.emit(Event{Kind: Fallen, Index: i})

	if cand := i - w.windowStart; cand > w.best.Length {
		w.best = Result{Length: cand, Start: w.windowStart}
		w.opts.OnInterimBest(w.best)
		w.emit(Event{Kind: InterimBest, Index: i, Result: w.best})
	}
	w.windowStart = i + 1
}

// finish moves the cursor past the end, closes the trailing window and
// emits the terminal result.
func (w *walker) finish() (Result, error) {
	n := len(w.strengths)
	if err := w.ctx.Err(); err != nil {
		return noRun(), err
	}
	w.cursor = n
	w.opts.OnCursor(n)
	w.emit(Event{Kind: CursorAt, Index: n, PastEnd: true})
	if err := w.pause(); err != nil {
		return noRun(), err
	}
	if err := w.ctx.Err(); err != nil {
		return noRun(), err
	}

	// trailing window that never met a breach
	if last := n - w.windowStart; last > w.best.Length {
		w.best = Result{Length: last, Start: w.windowStart}
	}
	w.emit(Event{Kind: Final, Index: n, Result: w.best})
	return w.best, nil
}

// pause sleeps for the configured delay; zero delay never suspends.
func (w *walker) pause() error {
	if w.opts.Delay <= 0 {
		return nil
	}
	return w.opts.Sleep(w.ctx, w.opts.Delay)
}

// emit stamps ev with a snapshot of the current state and hands it to OnEvent.
func (w *walker) emit(ev Event) {
	ev.Snapshot = w.snapshot()
	w.opts.OnEvent(ev)
}

// snapshot copies the mutable state so receivers may retain it.
func (w *walker) snapshot() Snapshot {
	fallen := make([]int, len(w.fallen))
	copy(fallen, w.fallen)
	return Snapshot{
		Cursor:      w.cursor,
		WindowStart: w.windowStart,
		BestLength:  w.best.Length,
		BestStart:   w.best.Start,
		Fallen:      fallen,
		Segments:    len(w.strengths),
	}
}

func noRun() Result { return Result{Length: 0, Start: NoStart} }
