package tui

import (
	"strings"
	"testing"
	"time"

	"chartdeck/internal/canvas"
	"chartdeck/internal/dataset"
	"chartdeck/internal/interact"
)

// Every demo has to survive mounting, rendering, resizing and probing
// at awkward canvas sizes, including the layout floor of 10x4 cells.
func TestDemosRenderAtAnySize(t *testing.T) {
	sizes := [][2]int{{10, 4}, {12, 5}, {40, 12}, {120, 40}}
	for _, d := range NewDemos(Options{Theme: "neon", Legend: true}) {
		t.Run(d.Title(), func(t *testing.T) {
			for _, sz := range sizes {
				d.Mount(sz[0], sz[1])
				c := canvas.New(sz[0], sz[1])
				d.Render(c)
				if got := len(strings.Split(c.String(), "\n")); got != sz[1] {
					t.Fatalf("%dx%d: frame has %d lines", sz[0], sz[1], got)
				}
				d.Frame(time.Now().Add(time.Hour))
				d.Footer()
				d.Inspect()
				d.Resize(sz[0]+3, sz[1]+2)
				d.Render(canvas.New(sz[0]+3, sz[1]+2))
				d.Unmount()
			}
		})
	}
}

func TestDemoTitlesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range NewDemos(Options{}) {
		if seen[d.Title()] {
			t.Fatalf("duplicate demo title %q", d.Title())
		}
		seen[d.Title()] = true
	}
}

func TestHistogramBinKeys(t *testing.T) {
	d := newHistDemo(NamedTheme("dusk"))
	d.Mount(40, 12)
	if d.bins != 12 {
		t.Fatalf("bins = %d, want 12", d.bins)
	}
	d.Key("+")
	if d.bins != 13 {
		t.Fatalf("bins = %d after +, want 13", d.bins)
	}
	for i := 0; i < 100; i++ {
		d.Key("-")
	}
	if d.bins != 2 {
		t.Fatalf("bins floor = %d, want 2", d.bins)
	}
	for i := 0; i < 100; i++ {
		d.Key("+")
	}
	if d.bins != 60 {
		t.Fatalf("bins ceiling = %d, want 60", d.bins)
	}
	if len(d.hist.Counts) != 60 {
		t.Fatalf("histogram not rebinned, %d counts", len(d.hist.Counts))
	}
}

func TestHistogramHoverReadout(t *testing.T) {
	d := newHistDemo(NamedTheme("dusk"))
	d.Mount(40, 12)
	wPix, hPix := d.pixels()
	d.Pointer(interact.Pointer{Kind: interact.Motion, PX: wPix / 2, PY: hPix / 2})
	if d.hover == interact.None {
		t.Fatal("no column hovered at mid-canvas")
	}
	if f := d.Footer(); !strings.Contains(f, "count") {
		t.Fatalf("hover footer %q has no count", f)
	}
	d.Pointer(interact.Pointer{Kind: interact.Leave})
	if d.hover != interact.None {
		t.Fatal("leave did not clear the hover")
	}
}

func TestViolinBandwidthClamp(t *testing.T) {
	d := newViolinDemo(NamedTheme("dusk"))
	if d.bwScale != 1 {
		t.Fatalf("bwScale = %v, want 1", d.bwScale)
	}
	for i := 0; i < 40; i++ {
		d.Key("+")
	}
	if d.bwScale > 5*1.2 {
		t.Fatalf("bwScale = %v above the ceiling", d.bwScale)
	}
	for i := 0; i < 80; i++ {
		d.Key("-")
	}
	if d.bwScale < 0.2/1.2 {
		t.Fatalf("bwScale = %v below the floor", d.bwScale)
	}
	d.Key("r")
	if d.bwScale != 1 {
		t.Fatalf("bwScale = %v after reset, want 1", d.bwScale)
	}
}

func TestSunburstHoverAndPin(t *testing.T) {
	d := newSunburstDemo(NamedTheme("dusk"))
	d.Mount(40, 12)
	// twelve o'clock, second ring: the first depth-1 arc
	wPix, hPix := d.pixels()
	px, py := wPix/2, hPix/2-11
	d.Pointer(interact.Pointer{Kind: interact.Motion, PX: px, PY: py})
	if d.hover == interact.None {
		t.Fatal("no arc hovered")
	}
	if got := d.arcs[d.hover].Name; got != "src" {
		t.Fatalf("hovered %q, want src", got)
	}

	d.Pointer(interact.Pointer{Kind: interact.Press, PX: px, PY: py})
	d.Pointer(interact.Pointer{Kind: interact.Release, PX: px, PY: py})
	if d.selected != d.hover {
		t.Fatalf("selected = %d, want %d", d.selected, d.hover)
	}
	d.Pointer(interact.Pointer{Kind: interact.Press, PX: px, PY: py})
	d.Pointer(interact.Pointer{Kind: interact.Release, PX: px, PY: py})
	if d.selected != interact.None {
		t.Fatal("second click did not unpin the arc")
	}
}

func TestSunburstPressDragOffArcDoesNotPin(t *testing.T) {
	d := newSunburstDemo(NamedTheme("dusk"))
	d.Mount(40, 12)
	wPix, hPix := d.pixels()
	px, py := wPix/2, hPix/2-11
	d.Pointer(interact.Pointer{Kind: interact.Press, PX: px, PY: py})
	// release outside the circle entirely
	d.Pointer(interact.Pointer{Kind: interact.Release, PX: wPix - 1, PY: 0})
	if d.selected != interact.None {
		t.Fatalf("selected = %d after releasing off the arc", d.selected)
	}
}

func TestLinesLoadTable(t *testing.T) {
	d := newLineDemo(NamedTheme("dusk"), Options{Legend: true})
	d.Mount(40, 12)
	tbl := dataset.Table{
		Cols: []string{"t", "a", "b"},
		Rows: [][]float64{{0, 1, 2}, {1, 2, 3}, {2, 3, 1}},
	}
	if err := d.LoadTable(tbl); err != nil {
		t.Fatal(err)
	}
	if len(d.series) != 2 || d.series[0].Name != "a" || d.series[1].Name != "b" {
		t.Fatalf("series = %+v", d.series)
	}
	if d.view.Zoom != 1 || d.targetZoom != 1 {
		t.Fatal("load did not reset the viewport")
	}

	one := dataset.Table{Cols: []string{"t"}, Rows: [][]float64{{1}}}
	if err := d.LoadTable(one); err == nil {
		t.Fatal("single-column table should not load")
	}
}

func TestLinesZoomKeysClamp(t *testing.T) {
	d := newLineDemo(NamedTheme("dusk"), Options{})
	d.Mount(40, 12)
	for i := 0; i < 100; i++ {
		d.Key("+")
	}
	if d.targetZoom != canvas.MaxZoom {
		t.Fatalf("targetZoom = %v, want %v", d.targetZoom, canvas.MaxZoom)
	}
	for i := 0; i < 200; i++ {
		d.Key("-")
	}
	if d.targetZoom != canvas.MinZoom {
		t.Fatalf("targetZoom = %v, want %v", d.targetZoom, canvas.MinZoom)
	}
	d.Key("r")
	if d.targetZoom != 1 || d.view.Zoom != 1 {
		t.Fatal("reset did not restore zoom")
	}
}

func TestLinesGlideSettles(t *testing.T) {
	d := newLineDemo(NamedTheme("dusk"), Options{})
	d.Mount(40, 12)
	d.Key("+")
	if !d.Animating() {
		t.Fatal("zoom change should animate")
	}
	for i := 0; i < 200 && d.Animating(); i++ {
		d.Frame(time.Now())
	}
	if d.Animating() {
		t.Fatal("glide never settled")
	}
	if d.view.Zoom != d.targetZoom {
		t.Fatalf("zoom = %v, target %v", d.view.Zoom, d.targetZoom)
	}
}

func TestRadarLoadTableShapes(t *testing.T) {
	d := newRadarDemo(NamedTheme("dusk"), true)
	tbl := dataset.Table{
		Cols: []string{"a", "b", "c"},
		Rows: [][]float64{{1, 2, 3}, {3, 2, 1}},
	}
	if err := d.LoadTable(tbl); err != nil {
		t.Fatal(err)
	}
	if len(d.axes) != 3 || len(d.series) != 2 {
		t.Fatalf("axes = %d, series = %d", len(d.axes), len(d.series))
	}

	narrow := dataset.Table{Cols: []string{"a", "b"}, Rows: [][]float64{{1, 2}}}
	if err := d.LoadTable(narrow); err == nil {
		t.Fatal("two columns should not make a radar")
	}
	tall := dataset.Table{Cols: []string{"a", "b", "c"}, Rows: make([][]float64, 7)}
	if err := d.LoadTable(tall); err == nil {
		t.Fatal("seven series should be rejected")
	}
}

func TestBubbleLoadRejectsBadRadius(t *testing.T) {
	d := newBubbleDemo(NamedTheme("dusk"))
	d.Mount(40, 12)
	bad := dataset.Table{
		Cols: []string{"x", "y", "r"},
		Rows: [][]float64{{1, 1, 2}, {2, 2, 0}},
	}
	err := d.LoadTable(bad)
	if err == nil {
		t.Fatal("zero radius should not load")
	}
	if !strings.Contains(err.Error(), "radius") {
		t.Fatalf("error %q does not name the radius", err)
	}
	if len(d.bubbles) != 3 {
		t.Fatal("failed load must leave the sample in place")
	}
}

func TestStackedRevealReplay(t *testing.T) {
	d := newStackedDemo(NamedTheme("dusk"), true)
	d.Mount(40, 12)
	if d.reveal != 0 {
		t.Fatalf("reveal = %v on mount, want 0", d.reveal)
	}
	if !d.Animating() {
		t.Fatal("mount should start the reveal")
	}
	d.Frame(d.mountAt.Add(revealDuration / 2))
	if d.reveal <= 0 || d.reveal >= 1 {
		t.Fatalf("reveal = %v mid-animation", d.reveal)
	}
	d.Frame(d.mountAt.Add(2 * revealDuration))
	if d.reveal != 1 || d.Animating() {
		t.Fatalf("reveal = %v after the window, want 1", d.reveal)
	}
	d.Key("r")
	if d.reveal != 0 {
		t.Fatal("r did not replay the reveal")
	}
}

func TestStackedHoverReadsBands(t *testing.T) {
	d := newStackedDemo(NamedTheme("dusk"), true)
	d.Mount(40, 12)
	d.Frame(d.mountAt.Add(2 * revealDuration))
	wPix, hPix := d.pixels()
	d.Pointer(interact.Pointer{Kind: interact.Motion, PX: wPix / 2, PY: hPix - 2})
	if d.hoverCol == interact.None {
		t.Fatal("no column hovered")
	}
	if f := d.Footer(); f == "" {
		t.Fatal("hover footer empty")
	}
}
