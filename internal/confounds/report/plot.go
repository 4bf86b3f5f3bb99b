package report

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/confounds/internal/fsutil"
	"github.com/banshee-data/confounds/internal/table"
)

// WriteSeriesPNG plots every confound column against frame index and writes
// the result as a PNG. NaN samples are skipped so reduction gaps show as
// breaks in the line.
func WriteSeriesPNG(fsys fsutil.FileSystem, path string, t *table.Table, title string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = "Value"

	names := t.Columns()
	colors := generateColors(len(names))

	for i, name := range names {
		col, _ := t.Column(name)
		pts := make(plotter.XYs, 0, len(col))
		for frame, v := range col {
			if math.IsNaN(v) {
				continue
			}
			pts = append(pts, plotter.XY{X: float64(frame), Y: v})
		}
		if len(pts) == 0 {
			continue
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = colors[i]
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(name, line)
	}

	return savePNG(fsys, path, p, 14*vg.Inch, 6*vg.Inch)
}

// WriteScreePNG plots the explained-variance ratio per principal component
// together with the running cumulative ratio.
func WriteScreePNG(fsys fsutil.FileSystem, path string, ratios []float64) error {
	if len(ratios) == 0 {
		return fmt.Errorf("scree plot: no variance ratios")
	}

	p := plot.New()
	p.Title.Text = "Motion PCA explained variance"
	p.X.Label.Text = "Component"
	p.Y.Label.Text = "Variance ratio"
	p.Y.Min, p.Y.Max = 0, 1.05

	perComp := make(plotter.XYs, len(ratios))
	cumulative := make(plotter.XYs, len(ratios))
	cum := 0.0
	for i, r := range ratios {
		cum += r
		perComp[i] = plotter.XY{X: float64(i + 1), Y: r}
		cumulative[i] = plotter.XY{X: float64(i + 1), Y: cum}
	}

	perLine, err := plotter.NewLine(perComp)
	if err != nil {
		return err
	}
	perLine.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	perLine.Width = vg.Points(1)

	cumLine, err := plotter.NewLine(cumulative)
	if err != nil {
		return err
	}
	cumLine.Color = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	cumLine.Width = vg.Points(1)
	cumLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(perLine, cumLine)
	p.Legend.Add("per component", perLine)
	p.Legend.Add("cumulative", cumLine)

	return savePNG(fsys, path, p, 8*vg.Inch, 6*vg.Inch)
}

// savePNG renders through the plot's WriterTo so the output goes through
// the injected filesystem rather than straight to disk.
func savePNG(fsys fsutil.FileSystem, path string, p *plot.Plot, w, h vg.Length) error {
	wt, err := p.WriterTo(w, h, "png")
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return err
	}
	return fsys.WriteFile(path, buf.Bytes(), 0644)
}

// generateColors creates a palette of distinct colors for confound lines.
func generateColors(n int) []color.Color {
	if n <= 0 {
		return nil
	}

	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hslToRGB(hue, 0.7, 0.5)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL to RGB (0-255 range)
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64

	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3.0)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3.0)
	}

	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
