package scan

import (
	"context"
)

// Trace runs the scan synchronously with no delay and returns every
// event in emission order together with the result. The last element of
// the returned slice is always the Final event.
func Trace(strengths []int, k int) ([]Event, Result) {
	events := make([]Event, 0, 2*len(strengths)+2)
	res, _ := Longest(strengths, k, WithObserver(func(ev Event) {
		events = append(events, ev)
	}))
	return events, res
}

// Stream runs the scan in its own goroutine and delivers events on the
// returned channel, which is closed after the Final event or as soon as
// ctx is cancelled. Delivery is unbuffered: a slow reader slows the scan.
//
// opts may carry a delay or hooks; WithContext and WithObserver are
// overridden by Stream itself.
func Stream(ctx context.Context, strengths []int, k int, opts ...Option) <-chan Event {
	out := make(chan Event)
	go func() {
		defer close(out)
		all := append(append([]Option{}, opts...),
			WithContext(ctx),
			WithObserver(func(ev Event) {
				// a ready reader must not win against a cancelled ctx
				if ctx.Err() != nil {
					return
				}
				select {
				case out <- ev:
				case <-ctx.Done():
				}
			}),
		)
		_, _ = Longest(strengths, k, all...)
	}()
	return out
}
