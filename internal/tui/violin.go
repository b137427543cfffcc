package tui

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"

	"chartdeck/internal/canvas"
	"chartdeck/internal/chart"
	"chartdeck/internal/dataset"
	"chartdeck/internal/interact"
)

const densityPoints = 200

// violinDemo mirrors an Epanechnikov density estimate around a vertical
// axis, with the quartile band and median marked. +/- scales the
// bandwidth to show how smoothing changes the shape.
type violinDemo struct {
	baseDemo
	th      Theme
	samples []float64
	bwScale float64

	density []chart.DensityPoint
	sum     chart.Summary
	q1, q3  float64

	hovering   bool
	hoverValue float64
	hoverDens  float64
}

func newViolinDemo(th Theme) *violinDemo {
	d := &violinDemo{th: th, bwScale: 1}
	d.samples = sampleLatencies()
	d.recompute()
	return d
}

// sampleLatencies is a right-skewed batch of wait times in seconds.
func sampleLatencies() []float64 {
	return []float64{
		1.2, 1.4, 1.1, 1.6, 1.3, 1.5, 1.2, 1.7, 1.4, 1.3,
		1.8, 1.5, 1.6, 1.9, 1.4, 2.0, 1.7, 1.5, 2.2, 1.8,
		2.4, 2.1, 2.6, 2.3, 2.8, 2.5, 3.1, 2.9, 3.4, 3.0,
		3.8, 3.5, 4.2, 4.8, 5.5, 6.3, 1.3, 1.6, 2.0, 2.7,
		1.9, 2.2, 3.2, 4.0, 1.5, 1.8, 2.4, 3.6, 5.0, 1.4,
	}
}

func (d *violinDemo) Title() string { return "violin" }
func (d *violinDemo) Blurb() string {
	return "Kernel density estimate mirrored into a violin, quartile band\nand median marked. +/- scales the bandwidth, r resets."
}

func (d *violinDemo) bandwidth() float64 {
	return chart.SilvermanBandwidth(d.samples) * d.bwScale
}

func (d *violinDemo) recompute() {
	d.density = chart.Density(d.samples, d.bandwidth(), densityPoints)
	d.sum, _ = chart.Summarize(d.samples)
	sorted := append([]float64(nil), d.samples...)
	sort.Float64s(sorted)
	d.q1 = chart.Quantile(sorted, 0.25)
	d.q3 = chart.Quantile(sorted, 0.75)
	d.hovering = false
}

func (d *violinDemo) Unmount() { d.hovering = false }

func (d *violinDemo) Key(k string) {
	switch k {
	case "+", "=":
		if d.bwScale < 5 {
			d.bwScale *= 1.2
			d.recompute()
		}
	case "-", "_":
		if d.bwScale > 0.2 {
			d.bwScale /= 1.2
			d.recompute()
		}
	case "r":
		d.samples = sampleLatencies()
		d.bwScale = 1
		d.recompute()
	}
}

// valueAt maps a pixel row to the estimate's value axis; top row is the
// upper end of the density support.
func (d *violinDemo) valueAt(py, hPix int) (float64, bool) {
	if len(d.density) == 0 || hPix < 2 {
		return 0, false
	}
	lo := d.density[0].X
	hi := d.density[len(d.density)-1].X
	t := 1 - float64(py)/float64(hPix-1)
	return lo + t*(hi-lo), true
}

// densityAt interpolates the estimate at a value.
func (d *violinDemo) densityAt(v float64) float64 {
	n := len(d.density)
	if n == 0 {
		return 0
	}
	lo := d.density[0].X
	hi := d.density[n-1].X
	if v <= lo || v >= hi || hi == lo {
		return 0
	}
	t := (v - lo) / (hi - lo) * float64(n-1)
	i := int(t)
	if i >= n-1 {
		return d.density[n-1].Y
	}
	frac := t - float64(i)
	return d.density[i].Y + frac*(d.density[i+1].Y-d.density[i].Y)
}

func (d *violinDemo) Pointer(ev interact.Pointer) {
	switch ev.Kind {
	case interact.Motion:
		_, hPix := d.pixels()
		v, ok := d.valueAt(ev.PY, hPix)
		d.hovering = ok
		d.hoverValue = v
		d.hoverDens = d.densityAt(v)
	case interact.Leave:
		d.hovering = false
	}
}

func (d *violinDemo) Render(c *canvas.Canvas) {
	wPix, hPix := c.PixelSize()
	if len(d.density) == 0 {
		return
	}
	maxDens := 0.0
	for _, p := range d.density {
		if p.Y > maxDens {
			maxDens = p.Y
		}
	}
	if maxDens == 0 {
		return
	}
	cx := wPix / 2
	halfMax := float64(wPix)/2 - 6
	if halfMax < 2 {
		halfMax = 2
	}
	base := canvas.Shade(d.th.Color(0), 0.35)
	for py := 0; py < hPix; py++ {
		v, ok := d.valueAt(py, hPix)
		if !ok {
			continue
		}
		dens := d.densityAt(v)
		half := int(dens / maxDens * halfMax)
		if half < 1 {
			continue
		}
		col := base
		if v >= d.q1 && v <= d.q3 {
			col = d.th.Color(0)
		}
		c.Span(py, cx-half, cx+half, col)
	}
	if py, ok := d.rowOf(d.sum.Median, hPix); ok {
		c.Line(cx-int(halfMax), py, cx+int(halfMax), py, d.th.Accent)
	}
	c.Text(1, 0, fmt.Sprintf("%.1f", d.density[len(d.density)-1].X), d.th.Label)
	c.Text(1, d.h-1, fmt.Sprintf("%.1f", d.density[0].X), d.th.Label)
	if d.hovering {
		if py, ok := d.rowOf(d.hoverValue, hPix); ok {
			c.SetPixel(cx-int(halfMax)-2, py, d.th.Label)
			c.SetPixel(cx+int(halfMax)+2, py, d.th.Label)
		}
	}
}

// rowOf inverts valueAt.
func (d *violinDemo) rowOf(v float64, hPix int) (int, bool) {
	if len(d.density) == 0 || hPix < 2 {
		return 0, false
	}
	lo := d.density[0].X
	hi := d.density[len(d.density)-1].X
	if hi == lo {
		return 0, false
	}
	t := (v - lo) / (hi - lo)
	if t < 0 || t > 1 {
		return 0, false
	}
	return int((1 - t) * float64(hPix-1)), true
}

func (d *violinDemo) Footer() string {
	if d.hovering {
		return fmt.Sprintf("value=%.2f density=%.3f", d.hoverValue, d.hoverDens)
	}
	return fmt.Sprintf("n=%d med=%.2f iqr=[%.2f, %.2f] bw=%.2f", d.sum.N, d.sum.Median, d.q1, d.q3, d.bandwidth())
}

// LoadTable reads the "value" column, or the first column otherwise.
func (d *violinDemo) LoadTable(t dataset.Table) error {
	vals := t.Column("value")
	if vals == nil {
		vals = t.ColumnAt(0)
	}
	if len(vals) == 0 {
		return errors.New("no numeric values")
	}
	d.samples = vals
	d.bwScale = 1
	d.recompute()
	return nil
}

func (d *violinDemo) Inspect() ([]string, [][]string) {
	rows := [][]string{
		{"n", fmt.Sprintf("%d", d.sum.N)},
		{"min", fmt.Sprintf("%.3f", d.sum.Min)},
		{"q1", fmt.Sprintf("%.3f", d.q1)},
		{"median", fmt.Sprintf("%.3f", d.sum.Median)},
		{"q3", fmt.Sprintf("%.3f", d.q3)},
		{"max", fmt.Sprintf("%.3f", d.sum.Max)},
		{"mean", fmt.Sprintf("%.3f", d.sum.Mean)},
		{"stddev", fmt.Sprintf("%.3f", d.sum.Stddev)},
		{"bandwidth", fmt.Sprintf("%.3f", d.bandwidth())},
	}
	return []string{"stat", "value"}, rows
}
