package canvas

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testViewport() Viewport {
	return NewViewport(Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 50}, 40, 20)
}

func TestViewportCorners(t *testing.T) {
	v := testViewport()
	wPix := v.W * PixelsPerCellX
	hPix := v.H * PixelsPerCellY
	tests := []struct {
		name   string
		x, y   float64
		px, py int
	}{
		{"bottom left", 0, 0, 0, hPix - 1},
		{"top right", 100, 50, wPix - 1, 0},
		{"top left", 0, 50, 0, 0},
		{"bottom right", 100, 0, wPix - 1, hPix - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			px, py, ok := v.Pixel(tt.x, tt.y)
			if !ok {
				t.Fatal("Pixel reported unusable viewport")
			}
			if px != tt.px || py != tt.py {
				t.Errorf("Pixel(%v,%v) = (%d,%d), want (%d,%d)", tt.x, tt.y, px, py, tt.px, tt.py)
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := testViewport()
	v.Zoom = 2.5
	v.PanX, v.PanY = 3, -2
	tolX := (v.Domain.MaxX - v.Domain.MinX) / (float64(v.W*PixelsPerCellX-1) * v.Zoom)
	tolY := (v.Domain.MaxY - v.Domain.MinY) / (float64(v.H*PixelsPerCellY-1) * v.Zoom)
	for _, p := range [][2]float64{{0, 0}, {100, 50}, {12.5, 31.4}, {99.9, 0.1}, {50, 25}} {
		px, py, ok := v.Pixel(p[0], p[1])
		if !ok {
			t.Fatalf("Pixel(%v) not ok", p)
		}
		x, y, ok := v.Data(px, py)
		if !ok {
			t.Fatalf("Data(%d,%d) not ok", px, py)
		}
		if math.Abs(x-p[0]) > tolX+1e-9 || math.Abs(y-p[1]) > tolY+1e-9 {
			t.Errorf("round trip of %v drifted to (%v,%v), tolerance (%v,%v)", p, x, y, tolX, tolY)
		}
	}
}

func TestViewportCellMatchesPixel(t *testing.T) {
	v := testViewport()
	v.Zoom = 1.44
	v.PanX = -1
	for x := 0.0; x <= 100; x += 7.3 {
		for y := 0.0; y <= 50; y += 4.9 {
			px, py, _ := v.Pixel(x, y)
			cx, cy, _ := v.Cell(x, y)
			if cx != px/PixelsPerCellX || cy != py/PixelsPerCellY {
				t.Fatalf("Cell(%v,%v) = (%d,%d) disagrees with Pixel (%d,%d)", x, y, cx, cy, px, py)
			}
		}
	}
}

func TestViewportZoomFixesCenter(t *testing.T) {
	v := testViewport()
	cx, cy, _ := v.Pixel(50, 25)
	for _, z := range []float64{0.25, 1, 2, 8, 33} {
		v.Zoom = z
		px, py, _ := v.Pixel(50, 25)
		if px != cx || py != cy {
			t.Errorf("zoom %v moved the domain center from (%d,%d) to (%d,%d)", z, cx, cy, px, py)
		}
	}
}

func TestViewportUnusable(t *testing.T) {
	tests := []struct {
		name string
		v    Viewport
	}{
		{"degenerate domain", NewViewport(Rect{MinX: 5, MinY: 5, MaxX: 5, MaxY: 5}, 40, 20)},
		{"inverted domain", NewViewport(Rect{MinX: 10, MinY: 0, MaxX: 0, MaxY: 10}, 40, 20)},
		{"empty rect", NewViewport(EmptyRect(), 40, 20)},
		{"one-cell canvas", NewViewport(Rect{MaxX: 1, MaxY: 1}, 1, 1)},
		{"zero zoom", {Domain: Rect{MaxX: 1, MaxY: 1}, W: 10, H: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, ok := tt.v.Pixel(0.5, 0.5); ok {
				t.Error("Pixel accepted an unusable viewport")
			}
			if _, _, ok := tt.v.Data(3, 3); ok {
				t.Error("Data accepted an unusable viewport")
			}
		})
	}
}

func TestZoomedClamps(t *testing.T) {
	v := testViewport()
	if got := v.Zoomed(1e12).Zoom; got != MaxZoom {
		t.Errorf("Zoomed(1e12) = %v, want %v", got, MaxZoom)
	}
	if got := v.Zoomed(1e-12).Zoom; got != MinZoom {
		t.Errorf("Zoomed(1e-12) = %v, want %v", got, MinZoom)
	}
	if got := v.Zoomed(ZoomStep).Zoom; math.Abs(got-1.2) > 1e-12 {
		t.Errorf("Zoomed(step) = %v, want 1.2", got)
	}
}

func TestPannedShiftsPixels(t *testing.T) {
	v := testViewport()
	px, py, _ := v.Pixel(50, 25)
	p := v.Panned(2, -3)
	px2, py2, _ := p.Pixel(50, 25)
	if px2 != px+2*PixelsPerCellX || py2 != py-3*PixelsPerCellY {
		t.Errorf("pan (2,-3) moved (%d,%d) to (%d,%d)", px, py, px2, py2)
	}
}

func TestRectExpand(t *testing.T) {
	r := EmptyRect()
	if r.Valid() {
		t.Fatal("empty rect claims validity")
	}
	r = r.Expand(3, 7)
	if r.Valid() {
		t.Fatal("single point claims a spanning rect")
	}
	r = r.Expand(-1, 9).Expand(5, 2)
	want := Rect{MinX: -1, MinY: 2, MaxX: 5, MaxY: 9}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("Expand mismatch (-want +got):\n%s", diff)
	}
	if !r.Valid() {
		t.Error("spanning rect reported invalid")
	}
}

func TestRectPad(t *testing.T) {
	r := Rect{MinX: 0, MinY: 10, MaxX: 10, MaxY: 30}
	want := Rect{MinX: -1, MinY: 8, MaxX: 11, MaxY: 32}
	if diff := cmp.Diff(want, r.Pad(0.1)); diff != "" {
		t.Errorf("Pad mismatch (-want +got):\n%s", diff)
	}
}
