package tui

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"chartdeck/internal/canvas"
	"chartdeck/internal/chart"
	"chartdeck/internal/dataset"
	"chartdeck/internal/interact"
)

const revealDuration = 450 * time.Millisecond

// stackedDemo draws cumulative category bands over a shared x axis. The
// bands grow out of the baseline over a few frames on mount, which
// doubles as a visible check that the frame clock is scoped to the
// active demo.
type stackedDemo struct {
	baseDemo
	th     Theme
	xs     []float64
	series []chart.Series
	bands  []chart.Band
	legend bool

	reveal   float64
	mountAt  time.Time
	hoverCol int
	hoverBnd int
}

func newStackedDemo(th Theme, legend bool) *stackedDemo {
	d := &stackedDemo{th: th, legend: legend, reveal: 1, hoverCol: interact.None, hoverBnd: interact.None}
	d.xs, d.series = sampleStacked()
	d.bands = chart.Stack(d.series)
	return d
}

func sampleStacked() ([]float64, []chart.Series) {
	xs := make([]float64, 12)
	for i := range xs {
		xs[i] = float64(i + 1)
	}
	return xs, []chart.Series{
		{Name: "rides", Values: []float64{8, 9, 11, 14, 18, 22, 25, 24, 19, 14, 10, 8}},
		{Name: "rentals", Values: []float64{3, 3, 4, 6, 9, 12, 14, 13, 10, 6, 4, 3}},
		{Name: "tours", Values: []float64{1, 1, 2, 4, 6, 8, 9, 9, 6, 3, 1, 1}},
		{Name: "repairs", Values: []float64{2, 2, 3, 3, 4, 4, 5, 5, 4, 3, 2, 2}},
	}
}

func (d *stackedDemo) Title() string { return "stacked" }
func (d *stackedDemo) Blurb() string {
	return "Stacked area chart of monthly volume by category. Bands rise\nfrom the baseline on mount; r replays, l toggles the legend."
}

func (d *stackedDemo) Mount(w, h int) {
	d.baseDemo.Mount(w, h)
	d.replay()
}

func (d *stackedDemo) replay() {
	d.reveal = 0
	d.mountAt = time.Now()
}

func (d *stackedDemo) Unmount() {
	d.hoverCol = interact.None
	d.hoverBnd = interact.None
	d.reveal = 1
}

func (d *stackedDemo) Animating() bool { return d.reveal < 1 }

func (d *stackedDemo) Frame(now time.Time) {
	t := float64(now.Sub(d.mountAt)) / float64(revealDuration)
	if t >= 1 {
		d.reveal = 1
		return
	}
	if t < 0 {
		t = 0
	}
	d.reveal = t * t * (3 - 2*t)
}

func (d *stackedDemo) Key(k string) {
	switch k {
	case "l":
		d.legend = !d.legend
	case "r":
		d.replay()
	}
}

func (d *stackedDemo) columns() int {
	if len(d.bands) == 0 {
		return 0
	}
	return len(d.bands[0].Upper)
}

// bandValue interpolates a band bound at fractional column t.
func bandValue(vals []float64, t float64) float64 {
	i := int(t)
	if i >= len(vals)-1 {
		return vals[len(vals)-1]
	}
	frac := t - float64(i)
	return vals[i] + frac*(vals[i+1]-vals[i])
}

func (d *stackedDemo) Pointer(ev interact.Pointer) {
	switch ev.Kind {
	case interact.Motion:
		wPix, hPix := d.pixels()
		n := d.columns()
		top := chart.StackTop(d.bands)
		if n < 2 || top == 0 || wPix < 2 {
			return
		}
		plotH := float64(hPix - canvas.PixelsPerCellY - 1)
		if plotH <= 0 {
			return
		}
		t := float64(ev.PX) / float64(wPix-1) * float64(n-1)
		col := int(t + 0.5)
		if col < 0 || col >= n {
			d.hoverCol = interact.None
			return
		}
		d.hoverCol = col
		d.hoverBnd = interact.None
		// invert the same baseline/plotH mapping Render uses
		v := float64(hPix-1-ev.PY) / plotH * top
		if d.reveal > 0 {
			v /= d.reveal
		}
		for i, b := range d.bands {
			if v >= b.Lower[col] && v < b.Upper[col] {
				d.hoverBnd = i
				break
			}
		}
	case interact.Leave:
		d.hoverCol = interact.None
		d.hoverBnd = interact.None
	}
}

func (d *stackedDemo) Render(c *canvas.Canvas) {
	wPix, hPix := c.PixelSize()
	n := d.columns()
	top := chart.StackTop(d.bands)
	if n < 2 || top == 0 {
		return
	}
	baseline := hPix - 1
	plotH := float64(hPix - canvas.PixelsPerCellY - 1)
	for px := 0; px < wPix; px++ {
		t := float64(px) / float64(wPix-1) * float64(n-1)
		for i, b := range d.bands {
			lo := bandValue(b.Lower, t) / top * plotH * d.reveal
			hi := bandValue(b.Upper, t) / top * plotH * d.reveal
			y0 := baseline - int(hi)
			y1 := baseline - int(lo)
			if y1 < y0 {
				y0, y1 = y1, y0
			}
			col := d.th.Color(i)
			if i == d.hoverBnd {
				col = d.th.Accent
			}
			if int(hi) > int(lo) {
				c.FillRect(px, y0, px, y1-1, col)
			}
		}
	}
	c.Line(0, baseline, wPix-1, baseline, d.th.Axis)
	c.Text(1, 0, fmt.Sprintf("max %.0f", top), d.th.Label)
	if d.hoverCol != interact.None && d.hoverCol < len(d.xs) {
		px := int(float64(d.hoverCol) / float64(n-1) * float64(wPix-1))
		c.Line(px, 0, px, baseline, d.th.Grid)
	}
	if d.legend {
		for i, b := range d.bands {
			c.TextRight(d.w-2, 1+i, "█ "+b.Name, d.th.Color(i))
		}
	}
}

func (d *stackedDemo) Footer() string {
	if d.hoverCol != interact.None && d.hoverBnd != interact.None && d.hoverCol < len(d.xs) {
		b := d.bands[d.hoverBnd]
		v := b.Upper[d.hoverCol] - b.Lower[d.hoverCol]
		return fmt.Sprintf("x=%.0f  %s=%.0f  stack %.0f..%.0f", d.xs[d.hoverCol], b.Name, v, b.Lower[d.hoverCol], b.Upper[d.hoverCol])
	}
	if d.hoverCol != interact.None && d.hoverCol < len(d.xs) {
		last := d.bands[len(d.bands)-1]
		return fmt.Sprintf("x=%.0f  total=%.0f", d.xs[d.hoverCol], last.Upper[d.hoverCol])
	}
	return ""
}

// LoadTable reads the first column as x and every further column as one
// category.
func (d *stackedDemo) LoadTable(t dataset.Table) error {
	if len(t.Cols) < 2 {
		return errors.New("need an x column and at least one category column")
	}
	xs := t.ColumnAt(0)
	series := make([]chart.Series, 0, len(t.Cols)-1)
	for i := 1; i < len(t.Cols); i++ {
		series = append(series, chart.Series{Name: t.Cols[i], Values: t.ColumnAt(i)})
	}
	bands := chart.Stack(series)
	if bands == nil {
		return errors.New("no stackable columns")
	}
	d.xs, d.series, d.bands = xs, series, bands
	d.replay()
	return nil
}

func (d *stackedDemo) Inspect() ([]string, [][]string) {
	cols := []string{"category", "total", "share"}
	var grand float64
	sums := make([]float64, len(d.series))
	for i, s := range d.series {
		for _, v := range s.Values {
			sums[i] += v
		}
		grand += sums[i]
	}
	rows := make([][]string, len(d.series))
	for i, s := range d.series {
		share := 0.0
		if grand > 0 {
			share = sums[i] / grand * 100
		}
		rows[i] = []string{s.Name, fmt.Sprintf("%.0f", sums[i]), fmt.Sprintf("%.1f%%", share)}
	}
	return cols, rows
}
