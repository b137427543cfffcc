package canvas

// Zoom bounds shared by every zoomable demo.
const (
	MinZoom  = 0.05
	MaxZoom  = 64.0
	ZoomStep = 1.2
)

// Rect is an axis-aligned extent in data coordinates.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyRect returns a rect that any Expand call will overwrite.
func EmptyRect() Rect {
	return Rect{MinX: 1, MinY: 1, MaxX: -1, MaxY: -1}
}

// Valid reports whether the rect spans a non-degenerate area.
func (r Rect) Valid() bool {
	return r.MaxX > r.MinX && r.MaxY > r.MinY
}

// Expand grows the rect to include the point. An invalid rect collapses to
// the point itself.
func (r Rect) Expand(x, y float64) Rect {
	if r.MaxX < r.MinX || r.MaxY < r.MinY {
		return Rect{MinX: x, MinY: y, MaxX: x, MaxY: y}
	}
	if x < r.MinX {
		r.MinX = x
	}
	if y < r.MinY {
		r.MinY = y
	}
	if x > r.MaxX {
		r.MaxX = x
	}
	if y > r.MaxY {
		r.MaxY = y
	}
	return r
}

// Pad grows the rect by a fraction of its span on every side.
func (r Rect) Pad(f float64) Rect {
	dx := (r.MaxX - r.MinX) * f
	dy := (r.MaxY - r.MinY) * f
	return Rect{MinX: r.MinX - dx, MinY: r.MinY - dy, MaxX: r.MaxX + dx, MaxY: r.MaxY + dy}
}

// Viewport maps data coordinates onto a canvas. The zoom magnifies about
// the domain center; the pan offset shifts the result by whole cells. The
// same viewport serves drawing (Pixel, Cell) and pointer lookup (Data), so
// the two can never disagree about scaling.
type Viewport struct {
	Domain Rect
	Zoom   float64
	PanX   int // cells
	PanY   int // cells
	W      int // canvas width in cells
	H      int // canvas height in cells
}

// NewViewport returns a 1x viewport over the domain.
func NewViewport(domain Rect, w, h int) Viewport {
	return Viewport{Domain: domain, Zoom: 1, W: w, H: h}
}

func (v Viewport) usable() bool {
	return v.Domain.Valid() && v.Zoom > 0 && v.W > 1 && v.H > 1
}

// Pixel maps a data point to braille pixel coordinates. Data y grows
// upward; pixel y grows downward.
func (v Viewport) Pixel(x, y float64) (int, int, bool) {
	if !v.usable() {
		return 0, 0, false
	}
	nx := (x - v.Domain.MinX) / (v.Domain.MaxX - v.Domain.MinX)
	ny := (y - v.Domain.MinY) / (v.Domain.MaxY - v.Domain.MinY)
	zx := 0.5 + (nx-0.5)*v.Zoom
	zy := 0.5 + (ny-0.5)*v.Zoom
	wPix := v.W * PixelsPerCellX
	hPix := v.H * PixelsPerCellY
	px := int(zx*float64(wPix-1)) + v.PanX*PixelsPerCellX
	py := int((1.0-zy)*float64(hPix-1)) + v.PanY*PixelsPerCellY
	return px, py, true
}

// Cell maps a data point to cell coordinates. Derived from Pixel so the
// two layers always land on the same cell.
func (v Viewport) Cell(x, y float64) (int, int, bool) {
	px, py, ok := v.Pixel(x, y)
	if !ok {
		return 0, 0, false
	}
	return px / PixelsPerCellX, py / PixelsPerCellY, true
}

// Data inverts Pixel: given braille pixel coordinates it returns the data
// point underneath.
func (v Viewport) Data(px, py int) (float64, float64, bool) {
	if !v.usable() {
		return 0, 0, false
	}
	wPix := v.W * PixelsPerCellX
	hPix := v.H * PixelsPerCellY
	zx := float64(px-v.PanX*PixelsPerCellX) / float64(wPix-1)
	zy := 1.0 - float64(py-v.PanY*PixelsPerCellY)/float64(hPix-1)
	nx := 0.5 + (zx-0.5)/v.Zoom
	ny := 0.5 + (zy-0.5)/v.Zoom
	x := v.Domain.MinX + nx*(v.Domain.MaxX-v.Domain.MinX)
	y := v.Domain.MinY + ny*(v.Domain.MaxY-v.Domain.MinY)
	return x, y, true
}

// CellData inverts Cell using the center pixel of the cell.
func (v Viewport) CellData(cx, cy int) (float64, float64, bool) {
	return v.Data(cx*PixelsPerCellX+PixelsPerCellX/2, cy*PixelsPerCellY+PixelsPerCellY/2)
}

// Zoomed returns the viewport scaled by factor, clamped to the shared
// zoom bounds.
func (v Viewport) Zoomed(factor float64) Viewport {
	z := v.Zoom * factor
	if z < MinZoom {
		z = MinZoom
	}
	if z > MaxZoom {
		z = MaxZoom
	}
	v.Zoom = z
	return v
}

// Panned returns the viewport shifted by whole cells.
func (v Viewport) Panned(dx, dy int) Viewport {
	v.PanX += dx
	v.PanY += dy
	return v
}
