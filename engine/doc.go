// Package engine drives scan.Longest as a restartable background run.
//
// An Engine owns at most one run. Start copies the input, cancels the
// previous run, bumps the generation and launches a new scan goroutine;
// Stop cancels without starting anything. Every scan event reaches the
// observer as an Emission tagged with its generation and run ID.
//
// States
//
//	Idle --Start--> Running --Final--> Complete
//	  ^                |                  |
//	  +------Stop------+-------Stop-------+
//
// Start from any state enters Running with a fresh generation.
//
// Stale events
//
//	Delivery and Start/Stop share a lock. Once Start or Stop returns, no
//	emission of an older generation is delivered, even if its goroutine is
//	still unwinding. Observers run on the scan goroutine and must not call
//	Start, Stop or Close synchronously.
//
// Usage
//
//	eng := engine.New(
//		engine.WithDelay(200*time.Millisecond),
//		engine.WithObserver(func(em engine.Emission) { b.Apply(em) }),
//	)
//	defer eng.Close()
//	t := eng.Start(strengths, k)
//	res, err := eng.Await(ctx, t)
package engine
