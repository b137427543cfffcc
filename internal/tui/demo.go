package tui

import (
	"time"

	"github.com/pkg/errors"

	"chartdeck/internal/canvas"
	"chartdeck/internal/chart"
	"chartdeck/internal/dataset"
	"chartdeck/internal/interact"
)

// Demo is one self-contained chart. A demo owns its sample data, its
// geometry, and its interaction state; the gallery owns the terminal,
// the pointer plumbing and the frame clock. Mount and Unmount bracket a
// demo's time on screen, so any animation a demo runs is scoped between
// the two.
type Demo interface {
	Title() string
	Blurb() string

	// Mount readies the demo for a canvas of w x h cells. Unmount
	// drops transient interaction state. Resize follows the terminal.
	Mount(w, h int)
	Unmount()
	Resize(w, h int)

	// LoadTable and LoadTree replace the built-in sample data where
	// the demo supports the shape of the input.
	LoadTable(t dataset.Table) error
	LoadTree(root *chart.Node) error

	// Pointer feeds one pointer event in braille pixels relative to
	// the demo canvas. Key feeds keys the gallery does not reserve.
	Pointer(ev interact.Pointer)
	Key(k string)

	// Frame advances animation; Animating reports whether more
	// frames are wanted.
	Frame(now time.Time)
	Animating() bool

	Render(c *canvas.Canvas)

	// Footer is the demo's live readout for the status line's right
	// edge. Inspect returns the demo's geometry as a table.
	Footer() string
	Inspect() ([]string, [][]string)
}

// baseDemo carries the canvas size and no-op defaults so each demo only
// implements what it actually uses.
type baseDemo struct {
	w, h int
}

func (d *baseDemo) Mount(w, h int)  { d.w, d.h = w, h }
func (d *baseDemo) Unmount()        {}
func (d *baseDemo) Resize(w, h int) { d.w, d.h = w, h }

func (d *baseDemo) LoadTable(dataset.Table) error {
	return errors.New("this demo takes no table data")
}

func (d *baseDemo) LoadTree(*chart.Node) error {
	return errors.New("this demo takes no tree data")
}

func (d *baseDemo) Pointer(interact.Pointer) {}
func (d *baseDemo) Key(string)               {}
func (d *baseDemo) Frame(time.Time)          {}
func (d *baseDemo) Animating() bool          { return false }
func (d *baseDemo) Footer() string           { return "" }

func (d *baseDemo) Inspect() ([]string, [][]string) { return nil, nil }

// pixels returns the canvas size in braille pixels.
func (d *baseDemo) pixels() (int, int) {
	return d.w * canvas.PixelsPerCellX, d.h * canvas.PixelsPerCellY
}

// Options configures the gallery and its demos from the command line.
type Options struct {
	Theme  string
	Legend bool
	XRange *[2]float64
	YRange *[2]float64

	// MaxW and MaxH cap the chart area in cells; zero fits the
	// terminal.
	MaxW int
	MaxH int
}

// NewDemos builds the gallery's demo list in menu order.
func NewDemos(opts Options) []Demo {
	th := NamedTheme(opts.Theme)
	return []Demo{
		newBubbleDemo(th),
		newLineDemo(th, opts),
		newHistDemo(th),
		newViolinDemo(th),
		newRadarDemo(th, opts.Legend),
		newSunburstDemo(th),
		newStackedDemo(th, opts.Legend),
	}
}
