package render

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ayushran32/Error-404-Algovibe/scan"
)

const (
	chartHeight  = "480px"
	colorFallen  = "#4b5563"
	colorBest    = "#f59e0b"
	colorDefault = "#94a3b8"
)

// Chart writes an HTML bar chart of the wall: fallen segments grey, the
// best run amber and K drawn as a horizontal mark line.
func Chart(w io.Writer, strengths []int, k int, res scan.Result) error {
	labels := make([]string, len(strengths))
	data := make([]opts.BarData, len(strengths))
	for i, s := range strengths {
		labels[i] = strconv.Itoa(i)
		fill := colorDefault
		switch {
		case s < k:
			fill = colorFallen
		case res.Contains(i):
			fill = colorBest
		}
		data[i] = opts.BarData{
			Name:      "segment " + labels[i],
			Value:     s,
			ItemStyle: &opts.ItemStyle{Color: fill},
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Wall strengths",
			Subtitle: "K = " + strconv.Itoa(k) + ", best " + res.String(),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "segment"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "strength"}),
	)
	bar.SetXAxis(labels).
		AddSeries("strength", data).
		SetSeriesOptions(
			charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
				Name:  "K",
				YAxis: k,
			}),
		)
	return bar.Render(w)
}
