package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ayushran32/Error-404-Algovibe/logging"
	"github.com/ayushran32/Error-404-Algovibe/scan"
)

// run is the bookkeeping for one Start call.
type run struct {
	gen     uint64
	id      string
	cancel  context.CancelFunc
	done    chan struct{} // closed when the scan goroutine exits
	started time.Time
	log     *zap.SugaredLogger // tagged with gen and id
}

// Engine runs at most one scan at a time and forwards its events to an
// observer, dropping every event of a run that has been superseded.
//
// Lock order: deliverMu, then mu. deliverMu is held across the observer
// call, so Start and Stop wait for an in-progress delivery to finish and
// no emission of an older generation can be observed after they return.
type Engine struct {
	opts Options

	deliverMu sync.Mutex
	mu        sync.Mutex

	state     State
	gen       uint64
	cur       *run
	latest    Emission
	hasLatest bool
	result    scan.Result

	wg sync.WaitGroup
}

// New returns an idle Engine.
func New(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{opts: o, result: noRun()}
}

// Start cancels any in-flight run and begins scanning a copy of strengths
// against threshold k on a new goroutine.
func (e *Engine) Start(strengths []int, k int) Ticket {
	input := make([]int, len(strengths))
	copy(input, strengths)

	e.deliverMu.Lock()
	defer e.deliverMu.Unlock()
	e.mu.Lock()
	defer e.mu.Unlock()

	e.supersedeLocked("restart")
	e.gen++
	ctx, cancel := context.WithCancel(context.Background())
	r := &run{
		gen:     e.gen,
		id:      uuid.NewString(),
		cancel:  cancel,
		done:    make(chan struct{}),
		started: time.Now(),
	}
	r.log = logging.ForRun(e.opts.Logger, r.gen, r.id)
	e.cur = r
	e.state = Running
	e.latest, e.hasLatest = Emission{}, false
	e.result = noRun()

	r.log.Infow("scan started",
		"segments", len(input),
		"threshold", k,
	)
	e.opts.Metrics.ScanStarted(len(input))

	e.wg.Add(1)
	go e.execute(ctx, r, input, k)

	return Ticket{Generation: r.gen, RunID: r.id}
}

// Stop cancels the in-flight run, if any, and returns the engine to Idle.
func (e *Engine) Stop() {
	e.deliverMu.Lock()
	defer e.deliverMu.Unlock()
	e.mu.Lock()
	defer e.mu.Unlock()

	e.supersedeLocked("stop")
	e.gen++
	e.cur = nil
	e.state = Idle
	e.latest, e.hasLatest = Emission{}, false
	e.result = noRun()
}

// Close stops the engine and waits for every scan goroutine to exit.
// It must not be called concurrently with Start.
func (e *Engine) Close() {
	e.Stop()
	e.wg.Wait()
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Generation returns the current generation; it grows on every Start and Stop.
func (e *Engine) Generation() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gen
}

// Latest returns the most recent emission of the current run.
func (e *Engine) Latest() (Emission, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.latest, e.hasLatest
}

// Result returns the result of the current run once it is Complete.
func (e *Engine) Result() (scan.Result, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != Complete {
		return noRun(), false
	}
	return e.result, true
}

// Wait blocks until the current run completes.
//
// Errors:
//   - ErrIdle if no run is current.
//   - ErrSuperseded if the run is replaced or stopped while waiting.
//   - ctx.Err() if ctx is done first.
func (e *Engine) Wait(ctx context.Context) (scan.Result, error) {
	e.mu.Lock()
	var t Ticket
	if e.cur != nil {
		t = Ticket{Generation: e.cur.gen, RunID: e.cur.id}
	}
	e.mu.Unlock()
	return e.Await(ctx, t)
}

// Await blocks until the run identified by t completes. A ticket from an
// older generation yields ErrSuperseded; the zero Ticket yields ErrIdle.
func (e *Engine) Await(ctx context.Context, t Ticket) (scan.Result, error) {
	if t.Generation == 0 {
		return noRun(), ErrIdle
	}

	e.mu.Lock()
	r := e.cur
	if r == nil || r.gen != t.Generation {
		e.mu.Unlock()
		return noRun(), ErrSuperseded
	}
	if e.state == Complete {
		res := e.result
		e.mu.Unlock()
		return res, nil
	}
	e.mu.Unlock()

	select {
	case <-ctx.Done():
		return noRun(), ctx.Err()
	case <-r.done:
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cur == r && e.state == Complete {
		return e.result, nil
	}
	return noRun(), ErrSuperseded
}

// execute runs one scan to completion or cancellation.
func (e *Engine) execute(ctx context.Context, r *run, strengths []int, k int) {
	defer e.wg.Done()
	defer close(r.done)
	defer r.cancel()

	_, err := scan.Longest(strengths, k,
		scan.WithContext(ctx),
		scan.WithDelay(e.opts.Delay),
		scan.WithSleeper(e.opts.Sleep),
		scan.WithObserver(func(ev scan.Event) { e.deliver(r, ev) }),
	)
	if err != nil && !errors.Is(err, context.Canceled) {
		r.log.Errorw("scan failed", "error", err)
	}
}

// deliver forwards ev to the observer unless r is no longer current.
func (e *Engine) deliver(r *run, ev scan.Event) {
	e.deliverMu.Lock()
	defer e.deliverMu.Unlock()

	e.mu.Lock()
	if e.cur != r {
		e.mu.Unlock()
		return
	}
	em := Emission{Generation: r.gen, RunID: r.id, Event: ev}
	e.latest, e.hasLatest = em, true
	e.mu.Unlock()

	switch ev.Kind {
	case scan.CursorAt:
		e.opts.Metrics.Step()
	case scan.Fallen:
		e.opts.Metrics.SegmentFallen()
	case scan.Final:
		e.opts.Metrics.ScanCompleted(ev.Result.Length, time.Since(r.started))
		r.log.Infow("scan complete",
			"length", ev.Result.Length,
			"start", ev.Result.Start,
		)
	}

	e.opts.Observer(em)

	// waiters see Complete only after the observer handled Final
	if ev.Kind == scan.Final {
		e.mu.Lock()
		e.state = Complete
		e.result = ev.Result
		e.mu.Unlock()
	}
}

// supersedeLocked cancels the current run. Callers hold deliverMu and mu.
func (e *Engine) supersedeLocked(reason string) {
	r := e.cur
	if r == nil {
		return
	}
	r.cancel()
	if e.state != Running {
		return
	}
	e.opts.Metrics.ScanSuperseded()
	r.log.Infow("scan superseded", "reason", reason)
}

func noRun() scan.Result { return scan.Result{Length: 0, Start: scan.NoStart} }
