// Package board folds engine emissions into the display state of the wall.
package board

import (
	"sync"

	"github.com/ayushran32/Error-404-Algovibe/engine"
	"github.com/ayushran32/Error-404-Algovibe/scan"
)

// Status values reported by Board.Status.
const (
	StatusAwaiting = "awaiting"
	StatusScanning = "scanning"
	StatusDefended = "defended"
	StatusBreached = "breached"
)

// Hidden is the cursor value when no segment is being examined.
const Hidden = -1

// SegmentView is what a renderer needs to draw one segment.
type SegmentView struct {
	Index    int
	Strength int
	Fallen   bool
	Scanning bool
	InBest   bool
}

// Board is the presentation state of one wall. It is safe for concurrent
// use: the engine observer applies emissions while renderers read.
type Board struct {
	mu sync.RWMutex

	strengths  []int
	threshold  int
	generation uint64
	started    bool
	cursor     int
	fallen     []bool
	best       scan.Result
	final      bool
}

// New returns a board for strengths and threshold k.
func New(strengths []int, k int) *Board {
	b := &Board{}
	b.Reset(strengths, k)
	return b
}

// Reset rebuilds the wall: every segment standing, no cursor, no result.
// The generation watermark is kept so emissions of older runs stay stale.
func (b *Board) Reset(strengths []int, k int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.strengths = append(make([]int, 0, len(strengths)), strengths...)
	b.threshold = k
	b.clearLocked()
}

func (b *Board) clearLocked() {
	b.started = false
	b.cursor = Hidden
	b.fallen = make([]bool, len(b.strengths))
	b.best = scan.Result{Length: 0, Start: scan.NoStart}
	b.final = false
}

// Apply folds em into the board. It returns false, leaving the board
// untouched, for an emission older than the newest generation applied.
func (b *Board) Apply(em engine.Emission) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if em.Generation < b.generation {
		return false
	}
	if em.Generation > b.generation {
		b.generation = em.Generation
		b.clearLocked()
	}
	b.started = true

	snap := em.Snapshot
	b.cursor = snap.Cursor
	for _, i := range snap.Fallen {
		if i >= 0 && i < len(b.fallen) {
			b.fallen[i] = true
		}
	}
	switch em.Kind {
	case scan.InterimBest:
		b.best = em.Result
	case scan.Final:
		b.best = em.Result
		b.final = true
		b.cursor = Hidden
	}
	return true
}

// Len returns the number of segments.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.strengths)
}

// Threshold returns K.
func (b *Board) Threshold() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.threshold
}

// Strengths returns a copy of the wall.
func (b *Board) Strengths() []int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]int(nil), b.strengths...)
}

// Generation returns the newest generation applied.
func (b *Board) Generation() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.generation
}

// Cursor returns the examined index, len for past end, or Hidden.
func (b *Board) Cursor() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cursor
}

// Best returns the best window shown so far.
func (b *Board) Best() scan.Result {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.best
}

// Final reports whether the result has been applied.
func (b *Board) Final() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.final
}

// FallenCount returns how many segments have fallen.
func (b *Board) FallenCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := 0
	for _, f := range b.fallen {
		if f {
			n++
		}
	}
	return n
}

// Segment returns the view of segment i. It panics if i is out of range.
func (b *Board) Segment(i int) SegmentView {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.segmentLocked(i)
}

// Segments returns views of every segment in order.
func (b *Board) Segments() []SegmentView {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]SegmentView, len(b.strengths))
	for i := range out {
		out[i] = b.segmentLocked(i)
	}
	return out
}

func (b *Board) segmentLocked(i int) SegmentView {
	return SegmentView{
		Index:    i,
		Strength: b.strengths[i],
		Fallen:   b.fallen[i],
		Scanning: b.cursor == i,
		InBest:   b.best.Contains(i),
	}
}

// Status summarizes the board as awaiting, scanning, defended or breached.
func (b *Board) Status() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	switch {
	case !b.started:
		return StatusAwaiting
	case !b.final:
		return StatusScanning
	case b.best.Found():
		return StatusDefended
	default:
		return StatusBreached
	}
}

// ThresholdCeiling is the upper bound offered for K: the larger of 100
// and the strongest segment.
func ThresholdCeiling(strengths []int) int {
	ceiling := 100
	for _, s := range strengths {
		if s > ceiling {
			ceiling = s
		}
	}
	return ceiling
}
