// Package render draws scans for people: colored terminal frames, a
// summary table, the explanation view, an HTML chart and trace files.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/ayushran32/Error-404-Algovibe/board"
)

// Terminal draws one line per frame of a board.
type Terminal struct {
	w       io.Writer
	inPlace bool

	fallen   *color.Color
	best     *color.Color
	scanning *color.Color
	standing *color.Color
	status   map[string]*color.Color
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithInPlace redraws every frame over the previous one using a carriage
// return; the final frame ends the line.
func WithInPlace(on bool) TerminalOption {
	return func(t *Terminal) { t.inPlace = on }
}

// WithoutColor disables escape sequences regardless of color.NoColor.
func WithoutColor() TerminalOption {
	return func(t *Terminal) {
		for _, c := range t.palette() {
			c.DisableColor()
		}
	}
}

// NewTerminal returns a Terminal writing to w.
func NewTerminal(w io.Writer, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		w:        w,
		fallen:   color.New(color.FgHiBlack, color.CrossedOut),
		best:     color.New(color.FgYellow, color.Bold),
		scanning: color.New(color.FgHiWhite, color.Bold),
		standing: color.New(color.FgWhite),
		status: map[string]*color.Color{
			board.StatusAwaiting: color.New(color.FgCyan),
			board.StatusScanning: color.New(color.FgCyan),
			board.StatusDefended: color.New(color.FgGreen, color.Bold),
			board.StatusBreached: color.New(color.FgRed, color.Bold),
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Terminal) palette() []*color.Color {
	out := []*color.Color{t.fallen, t.best, t.scanning, t.standing}
	for _, c := range t.status {
		out = append(out, c)
	}
	return out
}

// Frame renders the current board state.
func (t *Terminal) Frame(b *board.Board) error {
	var sb strings.Builder
	if t.inPlace {
		sb.WriteString("\r\033[2K")
	}
	for i, seg := range b.Segments() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.segment(seg))
	}
	status := b.Status()
	sb.WriteString("  ")
	sb.WriteString(t.status[status].Sprint(strings.ToUpper(status)))
	if !t.inPlace || b.Final() {
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(t.w, sb.String())
	return err
}

// segment formats one segment. The scanning bracket is only drawn on a
// standing segment.
func (t *Terminal) segment(seg board.SegmentView) string {
	text := fmt.Sprintf("%d", seg.Strength)
	switch {
	case seg.Fallen:
		return t.fallen.Sprint(" " + text + " ")
	case seg.Scanning:
		c := t.scanning
		if seg.InBest {
			c = t.best
		}
		return c.Sprint("[" + text + "]")
	case seg.InBest:
		return t.best.Sprint(" " + text + " ")
	default:
		return t.standing.Sprint(" " + text + " ")
	}
}
