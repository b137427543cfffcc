// Package canvas implements the drawing surface shared by all chart
// demos: a grid of terminal cells backed by a 2x4 braille microgrid, so
// every cell carries eight addressable "pixels". All demos draw and
// hit-test in the same pixel coordinate space (see Viewport), which keeps
// rendered geometry and pointer targets aligned.
package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Braille subcell density: the terminal analogue of a device pixel ratio.
const (
	PixelsPerCellX = 2
	PixelsPerCellY = 4
)

// skip marks a cell shadowed by a preceding wide glyph.
const skip rune = '\x00'

// Canvas is a cell grid with a braille pixel layer underneath and a glyph
// layer (labels, markers) on top. Glyphs win over pixels when both are
// present in a cell.
type Canvas struct {
	w, h int // cells

	mask  [][]uint8  // per-cell braille bits
	fg    [][]string // per-cell pixel color (hex, "" = default)
	glyph [][]rune
	gfg   [][]string
}

func New(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{w: w, h: h}
	c.mask = make([][]uint8, h)
	c.fg = make([][]string, h)
	c.glyph = make([][]rune, h)
	c.gfg = make([][]string, h)
	for y := 0; y < h; y++ {
		c.mask[y] = make([]uint8, w)
		c.fg[y] = make([]string, w)
		c.glyph[y] = make([]rune, w)
		c.gfg[y] = make([]string, w)
	}
	return c
}

// Size returns the canvas extent in cells.
func (c *Canvas) Size() (int, int) { return c.w, c.h }

// PixelSize returns the canvas extent in braille pixels.
func (c *Canvas) PixelSize() (int, int) {
	return c.w * PixelsPerCellX, c.h * PixelsPerCellY
}

// Clear resets every cell.
func (c *Canvas) Clear() {
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			c.mask[y][x] = 0
			c.fg[y][x] = ""
			c.glyph[y][x] = 0
			c.gfg[y][x] = ""
		}
	}
}

// SetPixel sets one braille pixel. Out-of-range coordinates are ignored.
func (c *Canvas) SetPixel(px, py int, color string) {
	if px < 0 || py < 0 {
		return
	}
	cx, rx := px/PixelsPerCellX, px%PixelsPerCellX
	cy, ry := py/PixelsPerCellY, py%PixelsPerCellY
	if cx >= c.w || cy >= c.h {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	c.mask[cy][cx] |= bit
	if color != "" {
		c.fg[cy][cx] = color
	}
}

// Line draws a pixel line between two points using Bresenham.
func (c *Canvas) Line(x0, y0, x1, y1 int, color string) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.SetPixel(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Span fills the horizontal pixel run [x0, x1] on row py.
func (c *Canvas) Span(py, x0, x1 int, color string) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := max(0, x0); x <= x1; x++ {
		c.SetPixel(x, py, color)
	}
}

// FillRect fills the pixel rectangle with corners (x0,y0) and (x1,y1).
func (c *Canvas) FillRect(x0, y0, x1, y1 int, color string) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := max(0, y0); y <= y1; y++ {
		c.Span(y, x0, x1, color)
	}
}

// Circle draws a pixel circle outline using the midpoint algorithm.
func (c *Canvas) Circle(cx, cy, r int, color string) {
	if r <= 0 {
		c.SetPixel(cx, cy, color)
		return
	}
	x, y := r, 0
	err := 1 - r
	for x >= y {
		c.SetPixel(cx+x, cy+y, color)
		c.SetPixel(cx+y, cy+x, color)
		c.SetPixel(cx-y, cy+x, color)
		c.SetPixel(cx-x, cy+y, color)
		c.SetPixel(cx-x, cy-y, color)
		c.SetPixel(cx-y, cy-x, color)
		c.SetPixel(cx+y, cy-x, color)
		c.SetPixel(cx+x, cy-y, color)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// Disc draws a filled pixel circle.
func (c *Canvas) Disc(cx, cy, r int, color string) {
	for dy := -r; dy <= r; dy++ {
		w := isqrt(r*r - dy*dy)
		c.Span(cy+dy, cx-w, cx+w, color)
	}
}

// Rune places a single glyph at a cell, covering any braille content there.
func (c *Canvas) Rune(cx, cy int, r rune, color string) {
	if cx < 0 || cy < 0 || cx >= c.w || cy >= c.h {
		return
	}
	c.glyph[cy][cx] = r
	c.gfg[cy][cx] = color
	// Wide glyphs shadow the following cell so columns stay aligned.
	if runewidth.RuneWidth(r) == 2 && cx+1 < c.w {
		c.glyph[cy][cx+1] = skip
	}
}

// Text writes a label starting at a cell, clipped to the canvas edge.
func (c *Canvas) Text(cx, cy int, s, color string) {
	if cy < 0 || cy >= c.h || cx >= c.w {
		return
	}
	x := cx
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if x+w > c.w {
			return
		}
		if x >= 0 {
			c.Rune(x, cy, r, color)
		}
		x += w
	}
}

// TextRight writes a label ending at cell cx (right-aligned).
func (c *Canvas) TextRight(cx, cy int, s, color string) {
	c.Text(cx-runewidth.StringWidth(s)+1, cy, s, color)
}

// String renders the canvas as plain runes with no styling.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			r, _ := c.at(x, y)
			if r == skip {
				continue
			}
			b.WriteRune(r)
		}
		if y < c.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Frame renders the canvas with per-cell colors applied, batching runs of
// equal color to keep the escape-sequence overhead down.
func (c *Canvas) Frame() string {
	lines := make([]string, c.h)
	var run strings.Builder
	for y := 0; y < c.h; y++ {
		var line strings.Builder
		run.Reset()
		runColor := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			s := run.String()
			if runColor != "" {
				s = lipgloss.NewStyle().Foreground(lipgloss.Color(runColor)).Render(s)
			}
			line.WriteString(s)
			run.Reset()
		}
		for x := 0; x < c.w; x++ {
			r, col := c.at(x, y)
			if r == skip {
				continue
			}
			if col != runColor {
				flush()
				runColor = col
			}
			run.WriteRune(r)
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

// at resolves the visible rune and color for one cell: glyph layer first,
// then braille, then blank.
func (c *Canvas) at(x, y int) (rune, string) {
	if g := c.glyph[y][x]; g != 0 {
		return g, c.gfg[y][x]
	}
	if m := c.mask[y][x]; m != 0 {
		return rune(0x2800 + int(m)), c.fg[y][x]
	}
	return ' ', ""
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// isqrt returns the integer square root, 0 for negative input.
func isqrt(v int) int {
	if v <= 0 {
		return 0
	}
	x := v
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + v/x) / 2
	}
	return x
}
