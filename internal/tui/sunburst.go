package tui

import (
	"fmt"
	"math"

	"chartdeck/internal/canvas"
	"chartdeck/internal/chart"
	"chartdeck/internal/interact"
)

// sunburstDemo renders a hierarchy as concentric rings, one ring per
// depth, sweeping each node proportionally to its subtree sum. Arcs
// inherit the hue of their top-level ancestor and darken with depth.
type sunburstDemo struct {
	baseDemo
	th   Theme
	root *chart.Node
	arcs []chart.Arc
	cols []string

	hover    int
	selected int
	pressed  int
}

func newSunburstDemo(th Theme) *sunburstDemo {
	d := &sunburstDemo{th: th, hover: interact.None, selected: interact.None, pressed: interact.None}
	d.root = sampleTree()
	d.recompute()
	return d
}

func sampleTree() *chart.Node {
	return &chart.Node{Name: "repo", Children: []*chart.Node{
		{Name: "src", Children: []*chart.Node{
			{Name: "core", Value: 30},
			{Name: "ui", Value: 25},
			{Name: "net", Value: 15},
		}},
		{Name: "docs", Children: []*chart.Node{
			{Name: "guide", Value: 10},
			{Name: "api", Value: 8},
		}},
		{Name: "assets", Children: []*chart.Node{
			{Name: "icons", Value: 6},
			{Name: "fonts", Value: 6},
		}},
	}}
}

func (d *sunburstDemo) Title() string { return "sunburst" }
func (d *sunburstDemo) Blurb() string {
	return "Angular partition of a value-weighted tree. Each ring is one\ndepth; hover reads out a node, click pins it."
}

func (d *sunburstDemo) recompute() {
	d.arcs = chart.Partition(d.root)
	d.cols = make([]string, len(d.arcs))
	for i, a := range d.arcs {
		switch {
		case a.Depth == 0:
			d.cols[i] = d.th.Grid
		default:
			top := d.topAncestor(a)
			shade := 0.45 * float64(a.Depth-1) / float64(max(d.root.Height()-1, 1))
			d.cols[i] = canvas.Shade(d.th.Color(top), shade)
		}
	}
	d.hover = interact.None
	d.selected = interact.None
	d.pressed = interact.None
}

// topAncestor returns the ordinal of the depth-1 arc whose sweep
// contains the arc's midpoint.
func (d *sunburstDemo) topAncestor(a chart.Arc) int {
	mid := (a.Start + a.End) / 2
	ord := 0
	for _, t := range d.arcs {
		if t.Depth != 1 {
			continue
		}
		if mid >= t.Start && mid < t.End {
			return ord
		}
		ord++
	}
	return 0
}

func (d *sunburstDemo) Unmount() {
	d.hover = interact.None
	d.pressed = interact.None
}

// polar converts a pixel to (ring depth, clockwise angle from twelve
// o'clock), mirroring exactly how Render picks an arc for a pixel.
func (d *sunburstDemo) polar(px, py int) (depth int, angle float64, ok bool) {
	wPix, hPix := d.pixels()
	height := d.root.Height()
	radius := float64(min(wPix, hPix))/2 - 2
	if radius < 4 || height == 0 {
		return 0, 0, false
	}
	dx := float64(px - wPix/2)
	dy := float64(py - hPix/2)
	r := math.Hypot(dx, dy)
	if r > radius {
		return 0, 0, false
	}
	ring := radius / float64(height)
	depth = int(r / ring)
	if depth >= height {
		depth = height - 1
	}
	angle = math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return depth, angle, true
}

func (d *sunburstDemo) arcAt(px, py int) int {
	depth, angle, ok := d.polar(px, py)
	if !ok {
		return interact.None
	}
	for i, a := range d.arcs {
		if a.Depth != depth {
			continue
		}
		if a.Depth == 0 || (angle >= a.Start && angle < a.End) {
			return i
		}
	}
	return interact.None
}

func (d *sunburstDemo) Pointer(ev interact.Pointer) {
	switch ev.Kind {
	case interact.Motion:
		d.hover = d.arcAt(ev.PX, ev.PY)
	case interact.Press:
		d.pressed = d.arcAt(ev.PX, ev.PY)
	case interact.Release:
		if i := d.arcAt(ev.PX, ev.PY); i != interact.None && i == d.pressed {
			if d.selected == i {
				d.selected = interact.None
			} else {
				d.selected = i
			}
		}
		d.pressed = interact.None
	case interact.Leave:
		d.hover = interact.None
		d.pressed = interact.None
	}
}

func (d *sunburstDemo) Render(c *canvas.Canvas) {
	wPix, hPix := c.PixelSize()
	if d.root.Sum() == 0 {
		return
	}
	for py := 0; py < hPix; py++ {
		for px := 0; px < wPix; px++ {
			i := d.arcAt(px, py)
			if i == interact.None {
				continue
			}
			col := d.cols[i]
			if i == d.hover {
				col = d.th.Accent
			} else if i == d.selected {
				col = canvas.Shade(d.th.Accent, 0.3)
			}
			c.SetPixel(px, py, col)
		}
	}

	// name the wide top-level arcs at mid-sweep
	height := d.root.Height()
	radius := float64(min(wPix, hPix))/2 - 2
	ring := radius / float64(height)
	for _, a := range d.arcs {
		if a.Depth != 1 || a.End-a.Start < 0.6 {
			continue
		}
		mid := (a.Start + a.End) / 2
		r := ring * 1.5
		lx := wPix/2 + int(r*math.Sin(mid))
		ly := hPix/2 - int(r*math.Cos(mid))
		c.Text(lx/canvas.PixelsPerCellX-len(a.Name)/2, ly/canvas.PixelsPerCellY, a.Name, d.th.Label)
	}
}

func (d *sunburstDemo) Footer() string {
	i := d.hover
	if i == interact.None {
		i = d.selected
	}
	if i == interact.None {
		return ""
	}
	a := d.arcs[i]
	total := d.root.Sum()
	share := 0.0
	if total > 0 {
		share = a.Value / total * 100
	}
	return fmt.Sprintf("%s  value=%.0f  %.1f%%  depth %d", a.Name, a.Value, share, a.Depth)
}

// LoadTree replaces the hierarchy.
func (d *sunburstDemo) LoadTree(root *chart.Node) error {
	d.root = root
	d.recompute()
	return nil
}

func (d *sunburstDemo) Key(k string) {
	if k == "r" {
		d.root = sampleTree()
		d.recompute()
	}
}

func (d *sunburstDemo) Inspect() ([]string, [][]string) {
	rows := make([][]string, len(d.arcs))
	for i, a := range d.arcs {
		rows[i] = []string{
			a.Name,
			fmt.Sprintf("%d", a.Depth),
			fmt.Sprintf("%.0f", a.Value),
			fmt.Sprintf("%.1f°", (a.End-a.Start)*180/math.Pi),
		}
	}
	return []string{"node", "depth", "value", "sweep"}, rows
}
