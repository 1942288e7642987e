package render_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayushran32/Error-404-Algovibe/board"
	"github.com/ayushran32/Error-404-Algovibe/engine"
	"github.com/ayushran32/Error-404-Algovibe/render"
	"github.com/ayushran32/Error-404-Algovibe/scan"
)

var wallMaria = []int{10, 20, 5, 30, 40, 50, 15, 60, 70, 80, 5, 90, 100, 95}

// finished returns a board that has applied a full synchronous scan.
func finished(t *testing.T, strengths []int, k int) *board.Board {
	t.Helper()
	b := board.New(strengths, k)
	events, _ := scan.Trace(strengths, k)
	for _, ev := range events {
		require.True(t, b.Apply(engine.Emission{Generation: 1, Event: ev}))
	}
	return b
}

// TestTerminal_Frames checks uncolored frame layout.
func TestTerminal_Frames(t *testing.T) {
	var buf bytes.Buffer
	term := render.NewTerminal(&buf, render.WithoutColor())

	wall := []int{10, 20, 5, 30, 40}
	b := board.New(wall, 15)
	require.NoError(t, term.Frame(b))

	events, _ := scan.Trace(wall, 15)
	b.Apply(engine.Emission{Generation: 1, Event: events[0]}) // cursor 0
	require.NoError(t, term.Frame(b))
	for _, ev := range events[1:] {
		b.Apply(engine.Emission{Generation: 1, Event: ev})
	}
	require.NoError(t, term.Frame(b))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, " 10   20   5   30   40   AWAITING", lines[0])
	assert.Equal(t, "[10]  20   5   30   40   SCANNING", lines[1])
	assert.Equal(t, " 10   20   5   30   40   DEFENDED", lines[2])
}

// TestTerminal_InPlace verifies carriage-return redraws.
func TestTerminal_InPlace(t *testing.T) {
	var buf bytes.Buffer
	term := render.NewTerminal(&buf, render.WithoutColor(), render.WithInPlace(true))

	b := board.New([]int{1}, 5)
	require.NoError(t, term.Frame(b))
	assert.True(t, strings.HasPrefix(buf.String(), "\r\033[2K"))
	assert.False(t, strings.HasSuffix(buf.String(), "\n"))

	b = finished(t, []int{1}, 5)
	buf.Reset()
	require.NoError(t, term.Frame(b))
	assert.True(t, strings.HasSuffix(buf.String(), "BREACHED\n"))
}

// TestSummary lists the outcome rows.
func TestSummary(t *testing.T) {
	out := render.Summary(finished(t, wallMaria, 25))
	for _, want := range []string{"Wall Defense Report", "Threat level (K)", "25", "14", "4th to 6th", "DEFENDED"} {
		assert.Contains(t, out, want)
	}
}

// TestSpan covers ordinal spans.
func TestSpan(t *testing.T) {
	assert.Equal(t, "none", render.Span(scan.NoStart, 0))
	assert.Equal(t, "1st", render.Span(0, 1))
	assert.Equal(t, "2nd to 3rd", render.Span(1, 2))
	assert.Equal(t, "12th to 14th", render.Span(11, 3))
}

// TestExplain mentions the complexity and the loop.
func TestExplain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Explain(&buf))
	assert.Contains(t, buf.String(), "O(n)")
	assert.Contains(t, buf.String(), "windowStart = i + 1")
}

// TestChart writes an HTML page containing the series.
func TestChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Chart(&buf, wallMaria, 25, scan.Result{Length: 3, Start: 3}))
	html := buf.String()
	assert.Contains(t, html, "<html")
	assert.Contains(t, html, "Wall strengths")
	assert.Contains(t, html, "#f59e0b")
}

// TestFormatFor maps extensions to formats.
func TestFormatFor(t *testing.T) {
	for path, want := range map[string]string{
		"trace.yaml": render.FormatYAML,
		"trace.YML":  render.FormatYAML,
		"out.json":   render.FormatJSON,
	} {
		got, err := render.FormatFor(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, path)
	}
	_, err := render.FormatFor("trace.txt")
	require.ErrorIs(t, err, render.ErrUnknownTraceFormat)
}

// TestTraceFile_WriteRead stores and reloads a trace in both formats.
func TestTraceFile_WriteRead(t *testing.T) {
	events, res := scan.Trace([]int{10, 20, 5, 30, 40}, 15)
	tf := render.TraceFile{
		RunID:  "run-1",
		Input:  render.TraceInput{Strengths: []int{10, 20, 5, 30, 40}, Threshold: 15},
		Events: events,
		Result: res,
	}
	dir := t.TempDir()
	for _, name := range []string{"trace.yaml", "trace.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, render.WriteTrace(path, tf))
		got, err := render.ReadTrace(path)
		require.NoError(t, err)
		assert.Equal(t, tf, got, name)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "trace.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "kind: interim_best")

	require.ErrorIs(t, render.WriteTrace(filepath.Join(dir, "trace.csv"), tf), render.ErrUnknownTraceFormat)
}
