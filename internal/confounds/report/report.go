// Package report renders QC outputs for selected confounds: an HTML page
// charting each confound series, and PNG plots of the series and of the
// PCA explained-variance spectrum.
package report

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/confounds/internal/fsutil"
	"github.com/banshee-data/confounds/internal/table"
)

// RenderHTML writes an HTML line chart of every column in the table, one
// series per confound, indexed by frame. Missing values render as gaps.
func RenderHTML(w io.Writer, t *table.Table, title string) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Theme:     "dark",
			Width:     "1400px",
			Height:    "700px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("confounds=%d frames=%d", t.NumCols(), t.Rows()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)

	frames := make([]string, t.Rows())
	for i := range frames {
		frames[i] = fmt.Sprintf("%d", i)
	}
	line.SetXAxis(frames)

	for _, name := range t.Columns() {
		col, _ := t.Column(name)
		data := make([]opts.LineData, len(col))
		for i, v := range col {
			if math.IsNaN(v) {
				// echarts convention for a missing point
				data[i] = opts.LineData{Value: "-"}
				continue
			}
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(name, data)
	}

	return line.Render(w)
}

// WriteHTML renders the QC chart to the named file.
func WriteHTML(fsys fsutil.FileSystem, path string, t *table.Table, title string) error {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, t, title); err != nil {
		return fmt.Errorf("render QC report: %w", err)
	}
	return fsys.WriteFile(path, buf.Bytes(), 0644)
}
