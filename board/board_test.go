package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayushran32/Error-404-Algovibe/board"
	"github.com/ayushran32/Error-404-Algovibe/engine"
	"github.com/ayushran32/Error-404-Algovibe/scan"
)

var wallMaria = []int{10, 20, 5, 30, 40, 50, 15, 60, 70, 80, 5, 90, 100, 95}

// emissions wraps a synchronous trace as emissions of generation gen.
func emissions(gen uint64, strengths []int, k int) []engine.Emission {
	events, _ := scan.Trace(strengths, k)
	out := make([]engine.Emission, len(events))
	for i, ev := range events {
		out[i] = engine.Emission{Generation: gen, RunID: "run", Event: ev}
	}
	return out
}

// TestBoard_Fresh verifies a reset board awaits a scan.
func TestBoard_Fresh(t *testing.T) {
	b := board.New(wallMaria, 25)
	assert.Equal(t, board.StatusAwaiting, b.Status())
	assert.Equal(t, board.Hidden, b.Cursor())
	assert.Equal(t, 14, b.Len())
	assert.Equal(t, 0, b.FallenCount())
	for _, seg := range b.Segments() {
		assert.False(t, seg.Fallen || seg.Scanning || seg.InBest)
	}
}

// TestBoard_FullRun folds the Wall Maria scan and checks the end state.
func TestBoard_FullRun(t *testing.T) {
	b := board.New(wallMaria, 25)
	ems := emissions(1, wallMaria, 25)

	require.True(t, b.Apply(ems[0]))
	assert.Equal(t, board.StatusScanning, b.Status())
	assert.True(t, b.Segment(0).Scanning)

	for _, em := range ems[1:] {
		require.True(t, b.Apply(em))
	}
	assert.Equal(t, board.StatusDefended, b.Status())
	assert.True(t, b.Final())
	assert.Equal(t, board.Hidden, b.Cursor())
	assert.Equal(t, scan.Result{Length: 3, Start: 3}, b.Best())
	assert.Equal(t, 5, b.FallenCount())

	for _, i := range []int{0, 1, 2, 6, 10} {
		assert.True(t, b.Segment(i).Fallen, "segment %d", i)
	}
	for i := 3; i < 6; i++ {
		assert.True(t, b.Segment(i).InBest, "segment %d", i)
	}
	assert.False(t, b.Segment(7).InBest)
}

// TestBoard_Breached verifies the no-run outcome.
func TestBoard_Breached(t *testing.T) {
	wall := []int{1, 2, 3}
	b := board.New(wall, 10)
	for _, em := range emissions(1, wall, 10) {
		b.Apply(em)
	}
	assert.Equal(t, board.StatusBreached, b.Status())
	assert.Equal(t, 3, b.FallenCount())
}

// TestBoard_StaleIgnored verifies older generations are rejected.
func TestBoard_StaleIgnored(t *testing.T) {
	b := board.New(wallMaria, 25)
	newer := emissions(2, wallMaria, 25)
	older := emissions(1, wallMaria, 25)

	require.True(t, b.Apply(newer[0]))
	for _, em := range older {
		assert.False(t, b.Apply(em))
	}
	assert.Equal(t, uint64(2), b.Generation())
	assert.Equal(t, board.StatusScanning, b.Status())
	assert.Equal(t, 0, b.Cursor())
}

// TestBoard_NewGenerationClears verifies a restart wipes fallen flags.
func TestBoard_NewGenerationClears(t *testing.T) {
	b := board.New(wallMaria, 25)
	for _, em := range emissions(1, wallMaria, 25) {
		b.Apply(em)
	}
	require.Equal(t, 5, b.FallenCount())

	b.Apply(emissions(2, wallMaria, 25)[0]) // cursor 0 only
	assert.Equal(t, 0, b.FallenCount())
	assert.False(t, b.Final())
	assert.False(t, b.Best().Found())
}

// TestBoard_ResetKeepsWatermark verifies Reset does not revive old runs.
func TestBoard_ResetKeepsWatermark(t *testing.T) {
	b := board.New(wallMaria, 25)
	b.Apply(emissions(3, wallMaria, 25)[0])
	b.Reset([]int{1, 2}, 1)
	assert.Equal(t, board.StatusAwaiting, b.Status())
	assert.False(t, b.Apply(emissions(2, []int{1, 2}, 1)[0]))
	assert.Equal(t, []int{1, 2}, b.Strengths())
	assert.Equal(t, 1, b.Threshold())
}

// TestThresholdCeiling checks the slider bound.
func TestThresholdCeiling(t *testing.T) {
	assert.Equal(t, 100, board.ThresholdCeiling(nil))
	assert.Equal(t, 100, board.ThresholdCeiling([]int{5, 99}))
	assert.Equal(t, 250, board.ThresholdCeiling([]int{5, 250, 7}))
}
