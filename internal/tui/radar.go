package tui

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"chartdeck/internal/canvas"
	"chartdeck/internal/chart"
	"chartdeck/internal/dataset"
	"chartdeck/internal/interact"
)

// radarDemo draws one polygon per series over shared spokes, normalized
// to the largest value in play. Hover snaps to the nearest vertex.
type radarDemo struct {
	baseDemo
	th     Theme
	axes   []string
	series []chart.Series
	legend bool

	nearSeries int
	nearAxis   int
}

func newRadarDemo(th Theme, legend bool) *radarDemo {
	d := &radarDemo{th: th, legend: legend, nearSeries: interact.None}
	d.axes, d.series = sampleRadar()
	return d
}

func sampleRadar() ([]string, []chart.Series) {
	axes := []string{"speed", "memory", "startup", "uptime", "coverage", "battery"}
	return axes, []chart.Series{
		{Name: "build 41", Values: []float64{72, 55, 80, 94, 61, 48}},
		{Name: "build 42", Values: []float64{84, 62, 66, 92, 75, 58}},
	}
}

func (d *radarDemo) Title() string { return "radar" }
func (d *radarDemo) Blurb() string {
	return "Radar chart of two builds across six axes, normalized to the\nlargest value. Hover snaps to the nearest vertex; l toggles the legend."
}

func (d *radarDemo) Unmount() { d.nearSeries = interact.None }

func (d *radarDemo) maxValue() float64 {
	m := 0.0
	for _, s := range d.series {
		for _, v := range s.Values {
			if v > m {
				m = v
			}
		}
	}
	return m
}

// vertex returns the pixel position of series si's value on axis ai.
func (d *radarDemo) vertex(si, ai int, cx, cy int, radius float64) (int, int) {
	frac := 0.0
	if m := d.maxValue(); m > 0 {
		frac = d.series[si].Values[ai] / m
	}
	a := d.angle(ai)
	return cx + int(frac*radius*math.Cos(a)), cy + int(frac*radius*math.Sin(a))
}

func (d *radarDemo) angle(ai int) float64 {
	return -math.Pi/2 + 2*math.Pi*float64(ai)/float64(len(d.axes))
}

func (d *radarDemo) frame() (cx, cy int, radius float64) {
	wPix, hPix := d.pixels()
	r := float64(min(wPix, hPix))/2 - 8
	if r < 4 {
		r = 4
	}
	return wPix / 2, hPix / 2, r
}

func (d *radarDemo) Pointer(ev interact.Pointer) {
	switch ev.Kind {
	case interact.Motion:
		const capture = 9 * 9
		cx, cy, radius := d.frame()
		best := capture + 1
		d.nearSeries = interact.None
		for si, s := range d.series {
			for ai := range d.axes {
				if ai >= len(s.Values) {
					break
				}
				vx, vy := d.vertex(si, ai, cx, cy, radius)
				dx := vx - ev.PX
				dy := vy - ev.PY
				if dd := dx*dx + dy*dy; dd < best {
					best = dd
					d.nearSeries = si
					d.nearAxis = ai
				}
			}
		}
	case interact.Leave:
		d.nearSeries = interact.None
	}
}

func (d *radarDemo) Key(k string) {
	if k == "l" {
		d.legend = !d.legend
	}
}

func (d *radarDemo) Render(c *canvas.Canvas) {
	if len(d.axes) == 0 || d.maxValue() == 0 {
		return
	}
	cx, cy, radius := d.frame()
	n := len(d.axes)

	// guide rings and spokes
	for _, frac := range []float64{0.25, 0.5, 0.75, 1.0} {
		for ai := 0; ai < n; ai++ {
			a0 := d.angle(ai)
			a1 := d.angle((ai + 1) % n)
			x0 := cx + int(frac*radius*math.Cos(a0))
			y0 := cy + int(frac*radius*math.Sin(a0))
			x1 := cx + int(frac*radius*math.Cos(a1))
			y1 := cy + int(frac*radius*math.Sin(a1))
			c.Line(x0, y0, x1, y1, d.th.Grid)
		}
	}
	for ai := 0; ai < n; ai++ {
		a := d.angle(ai)
		c.Line(cx, cy, cx+int(radius*math.Cos(a)), cy+int(radius*math.Sin(a)), d.th.Axis)
	}

	// axis labels just past the spoke ends, nudged by quadrant
	for ai, name := range d.axes {
		a := d.angle(ai)
		lx := cx + int((radius+4)*math.Cos(a))
		ly := cy + int((radius+4)*math.Sin(a))
		col := lx / canvas.PixelsPerCellX
		row := ly / canvas.PixelsPerCellY
		if math.Cos(a) < -0.3 {
			col -= len(name) - 1
		} else if math.Cos(a) < 0.3 {
			col -= len(name) / 2
		}
		c.Text(col, row, name, d.th.Label)
	}

	// series polygons with vertex dots
	for si, s := range d.series {
		col := d.th.Color(si)
		m := len(s.Values)
		if m > n {
			m = n
		}
		for ai := 0; ai < m; ai++ {
			x0, y0 := d.vertex(si, ai, cx, cy, radius)
			x1, y1 := d.vertex(si, (ai+1)%m, cx, cy, radius)
			c.Line(x0, y0, x1, y1, col)
		}
		for ai := 0; ai < m; ai++ {
			x, y := d.vertex(si, ai, cx, cy, radius)
			c.Disc(x, y, 1, col)
		}
	}

	if d.nearSeries != interact.None {
		x, y := d.vertex(d.nearSeries, d.nearAxis, cx, cy, radius)
		c.Circle(x, y, 3, d.th.Accent)
	}

	if d.legend {
		for si, s := range d.series {
			c.TextRight(d.w-2, 1+si, "─ "+s.Name, d.th.Color(si))
		}
	}
}

func (d *radarDemo) Footer() string {
	if d.nearSeries != interact.None {
		s := d.series[d.nearSeries]
		return fmt.Sprintf("%s  %s=%.0f", s.Name, d.axes[d.nearAxis], s.Values[d.nearAxis])
	}
	return ""
}

// LoadTable treats every column as an axis and every row as a series.
func (d *radarDemo) LoadTable(t dataset.Table) error {
	if len(t.Cols) < 3 {
		return errors.New("need at least three axis columns")
	}
	if len(t.Rows) > 6 {
		return errors.New("too many rows for a readable radar (max 6)")
	}
	series := make([]chart.Series, len(t.Rows))
	for i, row := range t.Rows {
		series[i] = chart.Series{
			Name:   fmt.Sprintf("row %d", i+1),
			Values: append([]float64(nil), row...),
		}
	}
	d.axes = append([]string(nil), t.Cols...)
	d.series = series
	d.nearSeries = interact.None
	return nil
}

func (d *radarDemo) Inspect() ([]string, [][]string) {
	cols := append([]string{"series"}, d.axes...)
	rows := make([][]string, len(d.series))
	for i, s := range d.series {
		row := []string{s.Name}
		for _, v := range s.Values {
			row = append(row, fmt.Sprintf("%.0f", v))
		}
		rows[i] = row
	}
	return cols, rows
}
