package tui

import (
	"fmt"

	"github.com/pkg/errors"

	"chartdeck/internal/canvas"
	"chartdeck/internal/chart"
	"chartdeck/internal/dataset"
	"chartdeck/internal/interact"
	"chartdeck/internal/logx"
)

// bubbleDemo is the draggable circle field: hover highlights, click
// toggles selection, press-and-move drags a circle with the grab offset
// preserved. Shapes live in data coordinates; a uniform fit transform
// maps them onto the canvas so circles stay circular.
type bubbleDemo struct {
	baseDemo
	th      Theme
	bubbles []chart.Bubble
	state   interact.State

	// frozen fit transform; recomputed on mount, resize and load so it
	// cannot drift mid-drag
	scale      float64
	offX, offY float64
}

func newBubbleDemo(th Theme) *bubbleDemo {
	d := &bubbleDemo{th: th, state: interact.NewState(), scale: 1}
	d.bubbles = d.sample()
	return d
}

func (d *bubbleDemo) sample() []chart.Bubble {
	return []chart.Bubble{
		{Label: "alpha", X: 100, Y: 100, R: 30, Color: d.th.Color(0)},
		{Label: "beta", X: 200, Y: 150, R: 40, Color: d.th.Color(1)},
		{Label: "gamma", X: 300, Y: 100, R: 35, Color: d.th.Color(2)},
	}
}

func (d *bubbleDemo) Title() string { return "bubbles" }
func (d *bubbleDemo) Blurb() string {
	return "Draggable circles. Hover highlights, click toggles selection,\npress and move drags. Clicking empty canvas clears the selection."
}

func (d *bubbleDemo) Mount(w, h int) {
	d.baseDemo.Mount(w, h)
	d.fit()
}

func (d *bubbleDemo) Unmount() {
	d.state = interact.NewState()
}

func (d *bubbleDemo) Resize(w, h int) {
	d.baseDemo.Resize(w, h)
	d.fit()
}

// fit freezes a uniform data-to-pixel transform covering every circle
// plus its radius.
func (d *bubbleDemo) fit() {
	wPix, hPix := d.pixels()
	if len(d.bubbles) == 0 || wPix < 2 || hPix < 2 {
		d.scale = 1
		d.offX, d.offY = 0, 0
		return
	}
	ext := canvas.EmptyRect()
	for _, b := range d.bubbles {
		ext = ext.Expand(b.X-b.R, b.Y-b.R)
		ext = ext.Expand(b.X+b.R, b.Y+b.R)
	}
	spanX := ext.MaxX - ext.MinX
	spanY := ext.MaxY - ext.MinY
	if spanX <= 0 || spanY <= 0 {
		d.scale = 1
		d.offX, d.offY = 0, 0
		return
	}
	s := float64(wPix) / spanX
	if sy := float64(hPix) / spanY; sy < s {
		s = sy
	}
	s *= 0.92
	d.scale = s
	d.offX = (float64(wPix)-spanX*s)/2 - ext.MinX*s
	d.offY = (float64(hPix)-spanY*s)/2 - ext.MinY*s
}

func (d *bubbleDemo) toPixel(x, y float64) (int, int) {
	return int(x*d.scale + d.offX), int(y*d.scale + d.offY)
}

func (d *bubbleDemo) toData(px, py int) (float64, float64) {
	return (float64(px) - d.offX) / d.scale, (float64(py) - d.offY) / d.scale
}

func (d *bubbleDemo) Pointer(ev interact.Pointer) {
	ev.X, ev.Y = d.toData(ev.PX, ev.PY)
	before := d.state.Selected
	next, shift := d.state.Step(ev,
		func(x, y float64) int { return chart.HitTest(d.bubbles, x, y) },
		func(i int) (float64, float64) { return d.bubbles[i].X, d.bubbles[i].Y },
	)
	d.state = next
	if shift.Active() {
		d.bubbles[shift.Index].X = shift.X
		d.bubbles[shift.Index].Y = shift.Y
	}
	if d.state.Selected != before {
		if d.state.Selected == interact.None {
			logx.Log().Info("selection cleared")
		} else {
			b := d.bubbles[d.state.Selected]
			logx.Log().Info("circle selected", "label", b.Label, "x", b.X, "y", b.Y)
		}
	}
}

func (d *bubbleDemo) Key(k string) {
	if k == "r" {
		d.bubbles = d.sample()
		d.state = interact.NewState()
		d.fit()
	}
}

func (d *bubbleDemo) Render(c *canvas.Canvas) {
	for i, b := range d.bubbles {
		px, py := d.toPixel(b.X, b.Y)
		rp := int(b.R * d.scale)
		col := b.Color
		if i == d.state.Selected {
			col = d.th.Accent
		}
		c.Disc(px, py, rp, col)
		if i == d.state.Hover {
			c.Circle(px, py, rp+1, d.th.Accent)
		}
		if i == d.state.Selected || i == d.state.Hover {
			c.Text(px/canvas.PixelsPerCellX-len(b.Label)/2, py/canvas.PixelsPerCellY, b.Label, d.th.Label)
		}
	}
}

func (d *bubbleDemo) Footer() string {
	if d.state.Dragging() {
		b := d.bubbles[d.state.Drag]
		return fmt.Sprintf("drag %s → (%.0f, %.0f)", b.Label, b.X, b.Y)
	}
	if d.state.Hover != interact.None {
		b := d.bubbles[d.state.Hover]
		return fmt.Sprintf("%s (%.0f, %.0f) r%.0f", b.Label, b.X, b.Y, b.R)
	}
	if d.state.Selected != interact.None {
		return "selected " + d.bubbles[d.state.Selected].Label
	}
	return ""
}

// LoadTable replaces the circles with rows of x, y and r columns
// (named, or the first three otherwise).
func (d *bubbleDemo) LoadTable(t dataset.Table) error {
	xs := t.Column("x")
	ys := t.Column("y")
	rs := t.Column("r")
	if xs == nil || ys == nil || rs == nil {
		if len(t.Cols) < 3 {
			return errors.New("need x, y and r columns")
		}
		xs, ys, rs = t.ColumnAt(0), t.ColumnAt(1), t.ColumnAt(2)
	}
	bs := make([]chart.Bubble, len(xs))
	for i := range xs {
		if rs[i] <= 0 {
			return errors.Errorf("row %d: radius must be positive", i+1)
		}
		bs[i] = chart.Bubble{
			Label: fmt.Sprintf("p%d", i+1),
			X:     xs[i], Y: ys[i], R: rs[i],
			Color: d.th.Color(i),
		}
	}
	d.bubbles = bs
	d.state = interact.NewState()
	d.fit()
	return nil
}

func (d *bubbleDemo) Inspect() ([]string, [][]string) {
	rows := make([][]string, len(d.bubbles))
	for i, b := range d.bubbles {
		sel := ""
		if i == d.state.Selected {
			sel = "yes"
		}
		rows[i] = []string{
			b.Label,
			fmt.Sprintf("%.1f", b.X),
			fmt.Sprintf("%.1f", b.Y),
			fmt.Sprintf("%.1f", b.R),
			sel,
		}
	}
	return []string{"label", "x", "y", "r", "selected"}, rows
}
