package render

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ayushran32/Error-404-Algovibe/board"
)

// Summary renders the outcome of a finished board as a table.
func Summary(b *board.Board) string {
	best := b.Best()

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle("Wall Defense Report")
	tbl.AppendHeader(table.Row{"Metric", "Value"})
	tbl.AppendRow(table.Row{"Threat level (K)", strconv.Itoa(b.Threshold())})
	tbl.AppendRow(table.Row{"Segments", humanize.Comma(int64(b.Len()))})
	tbl.AppendRow(table.Row{"Fallen", humanize.Comma(int64(b.FallenCount()))})
	tbl.AppendRow(table.Row{"Longest defensible run", strconv.Itoa(best.Length)})
	tbl.AppendRow(table.Row{"Run span", Span(best.Start, best.Length)})
	tbl.AppendFooter(table.Row{"Status", strings.ToUpper(b.Status())})
	return tbl.Render()
}

// Span describes a run in ordinal segment positions, e.g. "4th to 6th".
func Span(start, length int) string {
	switch {
	case length <= 0 || start < 0:
		return "none"
	case length == 1:
		return humanize.Ordinal(start + 1)
	default:
		return humanize.Ordinal(start+1) + " to " + humanize.Ordinal(start+length)
	}
}
