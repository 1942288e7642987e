// Package scan finds the longest contiguous run of segment strengths that
// are all ≥ a threshold K, step by step, emitting an event for every step
// so that a presentation layer can animate the search.
//
// What
//
//   - Sliding-window scan over a []int in a single left-to-right pass.
//   - Returns a Result{Length, Start}; {0, NoStart} means no run qualifies.
//   - Emits, in strict index order:
//   - CursorAt(i)        for every index, then once more past the end
//   - Fallen(i)          when strengths[i] < K
//   - InterimBest(l, s)  when a breach closes a window longer than the best
//   - Final(l, s)        exactly once, always last
//   - Each Event carries an immutable Snapshot of the scan state.
//
// Why
//
//   - Inputs are small and human-observable; the value is in watching the
//     window grow, break and get recorded, not in raw speed.
//
// Tie-break
//
//	Best is only replaced on a strictly longer window, so among equal-length
//	runs the earliest-starting one wins and is never overwritten.
//
// Pacing
//
//	WithDelay(d) pauses d after every index and after the past-end cursor.
//	Delay 0 (the default) never suspends, which makes Trace a synchronous
//	drain of the whole event sequence. The algorithm does not depend on the
//	delay: the same (strengths, K) always yields the same events.
//
// Complexity (n = len(strengths))
//
//   - Time:   O(n) steps, O(n·f) for snapshot copies where f = fallen so far
//   - Memory: O(n)
//
// Usage
//
//	res, err := scan.Longest(strengths, k,
//	    scan.WithContext(ctx),
//	    scan.WithDelay(200*time.Millisecond),
//	    scan.WithObserver(func(ev scan.Event) { /* render */ }),
//	)
//
//	events, res := scan.Trace(strengths, k) // no delay, all events at once
//
//	for ev := range scan.Stream(ctx, strengths, k) { /* ... */ }
//
// Errors
//
//   - ErrOptionViolation  if an option is invalid (negative delay).
//   - ctx.Err()           if the scan is cancelled; no Final event is emitted.
//
// Preconditions
//
//	Strengths and K must be non-negative integers. This is the caller's
//	contract and is not checked at runtime.
package scan
