package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/pkg/errors"

	"chartdeck/internal/canvas"
	"chartdeck/internal/chart"
	"chartdeck/internal/dataset"
	"chartdeck/internal/interact"
)

// lineDemo plots shared-x series with wheel zoom, arrow-key pan and a
// nearest-vertex hover readout. Zoom glides toward its target over a
// few frames instead of snapping, which is what the frame clock is for.
type lineDemo struct {
	baseDemo
	th     Theme
	opts   Options
	xs     []float64
	series []chart.Series

	view       canvas.Viewport
	targetZoom float64
	legend     bool

	hovering       bool
	hoverX, hoverY float64
	nearSeries     int
	nearVertex     int
}

func newLineDemo(th Theme, opts Options) *lineDemo {
	d := &lineDemo{th: th, opts: opts, legend: opts.Legend, targetZoom: 1, nearSeries: interact.None}
	d.xs, d.series = sampleLines()
	return d
}

func sampleLines() ([]float64, []chart.Series) {
	n := 140
	xs := make([]float64, n)
	drift := make([]float64, n)
	cycle := make([]float64, n)
	ripple := make([]float64, n)
	for i := 0; i < n; i++ {
		x := float64(i)
		xs[i] = x
		drift[i] = 55 + 28*math.Sin(x/11)*math.Exp(-x/130)
		cycle[i] = 35 + 16*math.Cos(x/17) + x*0.12
		ripple[i] = 20 + 9*math.Sin(x/5+1.3)
	}
	return xs, []chart.Series{
		{Name: "drift", Values: drift},
		{Name: "cycle", Values: cycle},
		{Name: "ripple", Values: ripple},
	}
}

func (d *lineDemo) Title() string { return "lines" }
func (d *lineDemo) Blurb() string {
	return "Multi-series line chart. Wheel or +/- zooms with a short glide,\narrows pan, r resets, l toggles the legend."
}

func (d *lineDemo) domain() canvas.Rect {
	ext := canvas.EmptyRect()
	for i, x := range d.xs {
		for _, s := range d.series {
			if i < len(s.Values) {
				ext = ext.Expand(x, s.Values[i])
			}
		}
	}
	r := ext.Pad(0.05)
	if d.opts.XRange != nil {
		r.MinX, r.MaxX = d.opts.XRange[0], d.opts.XRange[1]
	}
	if d.opts.YRange != nil {
		r.MinY, r.MaxY = d.opts.YRange[0], d.opts.YRange[1]
	}
	return r
}

func (d *lineDemo) Mount(w, h int) {
	d.baseDemo.Mount(w, h)
	d.view = canvas.NewViewport(d.domain(), w, h)
	d.targetZoom = 1
}

func (d *lineDemo) Unmount() {
	d.hovering = false
	d.nearSeries = interact.None
}

func (d *lineDemo) Resize(w, h int) {
	d.baseDemo.Resize(w, h)
	d.view.W, d.view.H = w, h
}

func (d *lineDemo) Pointer(ev interact.Pointer) {
	switch ev.Kind {
	case interact.Motion:
		x, y, ok := d.view.Data(ev.PX, ev.PY)
		d.hovering = ok
		d.hoverX, d.hoverY = x, y
		d.findNearest(ev.PX, ev.PY)
	case interact.WheelUp:
		d.targetZoom = clampZoom(d.targetZoom * canvas.ZoomStep)
	case interact.WheelDown:
		d.targetZoom = clampZoom(d.targetZoom / canvas.ZoomStep)
	case interact.Leave:
		d.hovering = false
		d.nearSeries = interact.None
	}
}

// findNearest scans every vertex in pixel space and keeps the closest
// one within a small capture radius.
func (d *lineDemo) findNearest(px, py int) {
	const capture = 10 * 10
	best := capture + 1
	d.nearSeries = interact.None
	for si, s := range d.series {
		for i, x := range d.xs {
			if i >= len(s.Values) {
				break
			}
			vx, vy, ok := d.view.Pixel(x, s.Values[i])
			if !ok {
				continue
			}
			dx := vx - px
			dy := vy - py
			if dd := dx*dx + dy*dy; dd < best {
				best = dd
				d.nearSeries = si
				d.nearVertex = i
			}
		}
	}
}

func clampZoom(z float64) float64 {
	if z < canvas.MinZoom {
		return canvas.MinZoom
	}
	if z > canvas.MaxZoom {
		return canvas.MaxZoom
	}
	return z
}

func (d *lineDemo) Key(k string) {
	switch k {
	case "+", "=":
		d.targetZoom = clampZoom(d.targetZoom * canvas.ZoomStep)
	case "-", "_":
		d.targetZoom = clampZoom(d.targetZoom / canvas.ZoomStep)
	case "up":
		d.view = d.view.Panned(0, -1)
	case "down":
		d.view = d.view.Panned(0, 1)
	case "left":
		d.view = d.view.Panned(-2, 0)
	case "right":
		d.view = d.view.Panned(2, 0)
	case "r":
		d.view.Zoom, d.targetZoom = 1, 1
		d.view.PanX, d.view.PanY = 0, 0
	case "l":
		d.legend = !d.legend
	}
}

func (d *lineDemo) Frame(time.Time) {
	diff := d.targetZoom - d.view.Zoom
	if math.Abs(diff) < d.targetZoom*0.002 {
		d.view.Zoom = d.targetZoom
		return
	}
	d.view.Zoom += diff * 0.3
}

func (d *lineDemo) Animating() bool {
	return d.view.Zoom != d.targetZoom
}

func (d *lineDemo) Render(c *canvas.Canvas) {
	wPix, hPix := c.PixelSize()
	c.Line(0, 0, 0, hPix-1, d.th.Axis)
	c.Line(0, hPix-1, wPix-1, hPix-1, d.th.Axis)

	// corner labels reflect the visible window, not the full domain
	if x0, y0, ok := d.view.Data(0, hPix-1); ok {
		x1, y1, _ := d.view.Data(wPix-1, 0)
		c.Text(1, 0, fmt.Sprintf("%.1f", y1), d.th.Label)
		c.Text(1, d.h-1, fmt.Sprintf("%.1f", y0), d.th.Label)
		c.TextRight(d.w-2, d.h-1, fmt.Sprintf("%.0f..%.0f", x0, x1), d.th.Label)
	}

	for si, s := range d.series {
		col := d.th.Color(si)
		var ppx, ppy int
		started := false
		for i, x := range d.xs {
			if i >= len(s.Values) {
				break
			}
			px, py, ok := d.view.Pixel(x, s.Values[i])
			if !ok {
				continue
			}
			if started && onScreenish(ppx, ppy, px, py, wPix, hPix) {
				c.Line(ppx, ppy, px, py, col)
			}
			ppx, ppy = px, py
			started = true
		}
	}

	if d.nearSeries != interact.None && d.nearVertex < len(d.series[d.nearSeries].Values) {
		x := d.xs[d.nearVertex]
		y := d.series[d.nearSeries].Values[d.nearVertex]
		if px, py, ok := d.view.Pixel(x, y); ok {
			c.Circle(px, py, 2, d.th.Accent)
		}
	}

	if d.legend {
		for si, s := range d.series {
			c.TextRight(d.w-2, 1+si, "─ "+s.Name, d.th.Color(si))
		}
	}
}

// onScreenish rejects segments entirely outside a generous margin so a
// deep zoom does not walk Bresenham across thousands of off-canvas
// pixels.
func onScreenish(x0, y0, x1, y1, w, h int) bool {
	return max(x0, x1) >= -w && min(x0, x1) < 2*w && max(y0, y1) >= -h && min(y0, y1) < 2*h
}

func (d *lineDemo) Footer() string {
	if d.nearSeries != interact.None && d.nearVertex < len(d.series[d.nearSeries].Values) {
		s := d.series[d.nearSeries]
		return fmt.Sprintf("%s  x=%.0f y=%.1f  zoom %.2fx", s.Name, d.xs[d.nearVertex], s.Values[d.nearVertex], d.view.Zoom)
	}
	if d.hovering {
		return fmt.Sprintf("x=%.1f y=%.1f  zoom %.2fx", d.hoverX, d.hoverY, d.view.Zoom)
	}
	if d.view.Zoom != 1 {
		return fmt.Sprintf("zoom %.2fx", d.view.Zoom)
	}
	return ""
}

// LoadTable reads the first column as x and every further column as one
// series.
func (d *lineDemo) LoadTable(t dataset.Table) error {
	if len(t.Cols) < 2 {
		return errors.New("need an x column and at least one series column")
	}
	xs := t.ColumnAt(0)
	series := make([]chart.Series, 0, len(t.Cols)-1)
	for i := 1; i < len(t.Cols); i++ {
		series = append(series, chart.Series{Name: t.Cols[i], Values: t.ColumnAt(i)})
	}
	d.xs, d.series = xs, series
	d.view = canvas.NewViewport(d.domain(), d.w, d.h)
	d.targetZoom = 1
	d.nearSeries = interact.None
	return nil
}

func (d *lineDemo) Inspect() ([]string, [][]string) {
	cols := []string{"series", "points", "min", "max", "mean"}
	rows := make([][]string, 0, len(d.series))
	for _, s := range d.series {
		sum, ok := chart.Summarize(s.Values)
		if !ok {
			continue
		}
		rows = append(rows, []string{
			s.Name,
			fmt.Sprintf("%d", sum.N),
			fmt.Sprintf("%.2f", sum.Min),
			fmt.Sprintf("%.2f", sum.Max),
			fmt.Sprintf("%.2f", sum.Mean),
		})
	}
	return cols, rows
}
