package scan_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayushran32/Error-404-Algovibe/scan"
)

// wallMaria is the default wall from the original demo.
var wallMaria = []int{10, 20, 5, 30, 40, 50, 15, 60, 70, 80, 5, 90, 100, 95}

// TestLongest_Fixtures checks the documented scenarios and boundaries.
func TestLongest_Fixtures(t *testing.T) {
	cases := []struct {
		name      string
		strengths []int
		k         int
		want      scan.Result
	}{
		{"empty", nil, 5, scan.Result{Length: 0, Start: -1}},
		{"single qualifying", []int{7}, 7, scan.Result{Length: 1, Start: 0}},
		{"single fallen", []int{6}, 7, scan.Result{Length: 0, Start: -1}},
		{"short wall", []int{10, 20, 5, 30, 40}, 15, scan.Result{Length: 2, Start: 3}},
		{"wall maria", wallMaria, 25, scan.Result{Length: 3, Start: 3}},
		{"zero threshold", []int{5, 5, 5}, 0, scan.Result{Length: 3, Start: 0}},
		{"all failing", []int{1, 2, 3}, 10, scan.Result{Length: 0, Start: -1}},
		{"all qualifying", []int{9, 9, 9, 9}, 9, scan.Result{Length: 4, Start: 0}},
		{"trailing run wins", []int{1, 5, 1, 5, 5}, 5, scan.Result{Length: 2, Start: 3}},
		{"leading run wins tie", []int{5, 5, 1, 5, 5}, 5, scan.Result{Length: 2, Start: 0}},
		{"zero strengths", []int{0, 0}, 0, scan.Result{Length: 2, Start: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := scan.Longest(tc.strengths, tc.k)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestLongest_EventOrder verifies the exact event sequence for the short wall.
func TestLongest_EventOrder(t *testing.T) {
	events, res := scan.Trace([]int{10, 20, 5, 30, 40}, 15)
	require.Equal(t, scan.Result{Length: 2, Start: 3}, res)

	type step struct {
		kind    scan.Kind
		index   int
		pastEnd bool
		result  scan.Result
	}
	want := []step{
		{scan.CursorAt, 0, false, scan.Result{}},
		{scan.Fallen, 0, false, scan.Result{}},
		{scan.CursorAt, 1, false, scan.Result{}},
		{scan.CursorAt, 2, false, scan.Result{}},
		{scan.Fallen, 2, false, scan.Result{}},
		{scan.InterimBest, 2, false, scan.Result{Length: 1, Start: 1}},
		{scan.CursorAt, 3, false, scan.Result{}},
		{scan.CursorAt, 4, false, scan.Result{}},
		{scan.CursorAt, 5, true, scan.Result{}},
		{scan.Final, 5, false, scan.Result{Length: 2, Start: 3}},
	}
	require.Len(t, events, len(want))
	for i, w := range want {
		got := events[i]
		assert.Equal(t, w.kind, got.Kind, "event %d kind", i)
		assert.Equal(t, w.index, got.Index, "event %d index", i)
		assert.Equal(t, w.pastEnd, got.PastEnd, "event %d past end", i)
		assert.Equal(t, w.result, got.Result, "event %d result", i)
	}

	last := events[len(events)-1].Snapshot
	assert.Equal(t, []int{0, 2}, last.Fallen)
	assert.Equal(t, 5, last.Cursor)
	assert.Equal(t, scan.Result{Length: 2, Start: 3}, last.Best())
}

// TestLongest_WallMariaRegression pins the full default wall: fallen set,
// the single interim best and the final tie resolution.
func TestLongest_WallMariaRegression(t *testing.T) {
	events, res := scan.Trace(wallMaria, 25)
	assert.Equal(t, scan.Result{Length: 3, Start: 3}, res)

	var fallen []int
	var interim []scan.Event
	for _, ev := range events {
		switch ev.Kind {
		case scan.Fallen:
			fallen = append(fallen, ev.Index)
		case scan.InterimBest:
			interim = append(interim, ev)
		}
	}
	assert.Equal(t, []int{0, 1, 2, 6, 10}, fallen)
	require.Len(t, interim, 1, "later equal-length runs must not replace the best")
	assert.Equal(t, 6, interim[0].Index)
	assert.Equal(t, scan.Result{Length: 3, Start: 3}, interim[0].Result)
}

// TestLongest_Hooks ensures the per-kind hooks see the same steps as OnEvent.
func TestLongest_Hooks(t *testing.T) {
	var cursors, fallen []int
	var bests []scan.Result
	_, err := scan.Longest([]int{10, 20, 5, 30, 40}, 15,
		scan.WithOnCursor(func(i int) { cursors = append(cursors, i) }),
		scan.WithOnFallen(func(i int) { fallen = append(fallen, i) }),
		scan.WithOnInterimBest(func(r scan.Result) { bests = append(bests, r) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, cursors)
	assert.Equal(t, []int{0, 2}, fallen)
	assert.Equal(t, []scan.Result{{Length: 1, Start: 1}}, bests)
}

// TestLongest_NegativeDelay verifies option validation.
func TestLongest_NegativeDelay(t *testing.T) {
	res, err := scan.Longest([]int{1}, 0, scan.WithDelay(-time.Millisecond))
	assert.ErrorIs(t, err, scan.ErrOptionViolation)
	assert.Equal(t, scan.Result{Length: 0, Start: -1}, res)
}

// TestLongest_DelayPausesEveryStep counts pauses: one per index plus past end.
func TestLongest_DelayPausesEveryStep(t *testing.T) {
	var pauses []time.Duration
	sleeper := func(_ context.Context, d time.Duration) error {
		pauses = append(pauses, d)
		return nil
	}
	_, err := scan.Longest([]int{3, 1, 4}, 2,
		scan.WithDelay(200*time.Millisecond),
		scan.WithSleeper(sleeper),
	)
	require.NoError(t, err)
	assert.Len(t, pauses, 4)
	for _, d := range pauses {
		assert.Equal(t, 200*time.Millisecond, d)
	}
}

// TestLongest_ZeroDelayNeverSleeps ensures a zero delay skips the sleeper.
func TestLongest_ZeroDelayNeverSleeps(t *testing.T) {
	called := false
	_, err := scan.Longest([]int{3, 1, 4}, 2,
		scan.WithSleeper(func(context.Context, time.Duration) error {
			called = true
			return nil
		}),
	)
	require.NoError(t, err)
	assert.False(t, called)
}

// TestLongest_CancelMidScan cancels during the third pause and checks that
// nothing is emitted afterwards and no Final event appears.
func TestLongest_CancelMidScan(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pauses := 0
	sleeper := func(ctx context.Context, _ time.Duration) error {
		pauses++
		if pauses == 3 {
			cancel()
		}
		return ctx.Err()
	}
	var events []scan.Event
	res, err := scan.Longest(wallMaria, 25,
		scan.WithContext(ctx),
		scan.WithDelay(time.Millisecond),
		scan.WithSleeper(sleeper),
		scan.WithObserver(func(ev scan.Event) { events = append(events, ev) }),
	)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, scan.Result{Length: 0, Start: -1}, res)
	for _, ev := range events {
		assert.NotEqual(t, scan.Final, ev.Kind)
		assert.LessOrEqual(t, ev.Index, 2)
	}
}

// TestLongest_AlreadyCancelled emits nothing on a dead context.
func TestLongest_AlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	emitted := 0
	_, err := scan.Longest([]int{1, 2, 3}, 1,
		scan.WithContext(ctx),
		scan.WithObserver(func(scan.Event) { emitted++ }),
	)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, emitted)
}

// TestTrace_Idempotent runs the same input twice and compares everything.
func TestTrace_Idempotent(t *testing.T) {
	first, r1 := scan.Trace(wallMaria, 25)
	second, r2 := scan.Trace(wallMaria, 25)
	assert.Equal(t, r1, r2)
	assert.Equal(t, first, second)
}

// TestSnapshot_Immutable mutating a received snapshot must not leak into later ones.
func TestSnapshot_Immutable(t *testing.T) {
	events, _ := scan.Trace([]int{1, 1, 1}, 5)
	var firstFallen scan.Event
	for _, ev := range events {
		if ev.Kind == scan.Fallen {
			firstFallen = ev
			break
		}
	}
	require.Len(t, firstFallen.Snapshot.Fallen, 1)
	firstFallen.Snapshot.Fallen[0] = 99

	last := events[len(events)-1].Snapshot
	assert.Equal(t, []int{0, 1, 2}, last.Fallen)
}

// TestResult_Helpers covers Found/End/Contains/String.
func TestResult_Helpers(t *testing.T) {
	r := scan.Result{Length: 3, Start: 3}
	assert.True(t, r.Found())
	assert.Equal(t, 6, r.End())
	assert.True(t, r.Contains(3))
	assert.True(t, r.Contains(5))
	assert.False(t, r.Contains(6))
	assert.False(t, r.Contains(2))
	assert.Equal(t, "len=3 [3,6)", r.String())

	none := scan.Result{Length: 0, Start: scan.NoStart}
	assert.False(t, none.Found())
	assert.Equal(t, scan.NoStart, none.End())
	assert.False(t, none.Contains(0))
	assert.Equal(t, "none", none.String())
}

// TestKind_Text round-trips the text encoding used by trace files.
func TestKind_Text(t *testing.T) {
	for _, k := range []scan.Kind{scan.CursorAt, scan.Fallen, scan.InterimBest, scan.Final} {
		b, err := k.MarshalText()
		require.NoError(t, err)
		var back scan.Kind
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, k, back)
	}
	var k scan.Kind
	assert.Error(t, k.UnmarshalText([]byte("bogus")))
	assert.Equal(t, "kind(9)", scan.Kind(9).String())
}
