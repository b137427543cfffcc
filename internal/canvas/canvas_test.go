package canvas

import (
	"strings"
	"testing"
)

func TestSetPixelBits(t *testing.T) {
	tests := []struct {
		name   string
		px, py int
		want   rune
	}{
		{"top-left dot", 0, 0, 0x2801},
		{"left col row 1", 0, 1, 0x2802},
		{"left col row 2", 0, 2, 0x2804},
		{"left col row 3", 0, 3, 0x2840},
		{"right col row 0", 1, 0, 0x2808},
		{"right col row 1", 1, 1, 0x2810},
		{"right col row 2", 1, 2, 0x2820},
		{"right col row 3", 1, 3, 0x2880},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(1, 1)
			c.SetPixel(tt.px, tt.py, "")
			got := []rune(c.String())[0]
			if got != tt.want {
				t.Errorf("SetPixel(%d,%d) rendered %U, want %U", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestSetPixelOutOfRange(t *testing.T) {
	c := New(2, 2)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 8}, {100, 100}} {
		c.SetPixel(p[0], p[1], "")
	}
	if got := c.String(); strings.TrimSpace(got) != "" {
		t.Errorf("out-of-range pixels rendered content: %q", got)
	}
}

func TestStringShape(t *testing.T) {
	c := New(7, 3)
	s := c.String()
	lines := strings.Split(s, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, l := range lines {
		if len([]rune(l)) != 7 {
			t.Errorf("line %d has %d runes, want 7", i, len([]rune(l)))
		}
	}
}

func TestLineHorizontal(t *testing.T) {
	c := New(4, 1)
	c.Line(0, 0, 7, 0, "")
	for x := 0; x < 8; x += 2 {
		if c.mask[0][x/2]&0x01 == 0 || c.mask[0][x/2]&0x08 == 0 {
			t.Fatalf("horizontal line missing pixels in cell %d", x/2)
		}
	}
}

func TestLineEndpoints(t *testing.T) {
	c := New(4, 4)
	c.Line(1, 2, 6, 13, "")
	if c.mask[0][0] == 0 {
		t.Error("start cell untouched")
	}
	if c.mask[13/PixelsPerCellY][6/PixelsPerCellX] == 0 {
		t.Error("end cell untouched")
	}
}

func TestDiscCoversCenterAndRadius(t *testing.T) {
	c := New(16, 10)
	c.Disc(20, 20, 6, "")
	checks := []struct {
		name   string
		px, py int
		want   bool
	}{
		{"center", 20, 20, true},
		{"right edge", 26, 20, true},
		{"left edge", 14, 20, true},
		{"top edge", 20, 14, true},
		{"outside", 27, 20, false},
	}
	for _, tt := range checks {
		t.Run(tt.name, func(t *testing.T) {
			cx, rx := tt.px/PixelsPerCellX, tt.px%PixelsPerCellX
			cy, ry := tt.py/PixelsPerCellY, tt.py%PixelsPerCellY
			bits := [2][4]uint8{{0x01, 0x02, 0x04, 0x40}, {0x08, 0x10, 0x20, 0x80}}
			got := c.mask[cy][cx]&bits[rx][ry] != 0
			if got != tt.want {
				t.Errorf("pixel (%d,%d) set = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestTextClipped(t *testing.T) {
	c := New(5, 1)
	c.Text(0, 0, "hello world", "")
	if got := c.String(); got != "hello" {
		t.Errorf("Text clipped to %q, want %q", got, "hello")
	}
}

func TestTextRight(t *testing.T) {
	c := New(6, 1)
	c.TextRight(5, 0, "abc", "")
	if got := c.String(); got != "   abc" {
		t.Errorf("TextRight rendered %q, want %q", got, "   abc")
	}
}

func TestRuneOverridesPixels(t *testing.T) {
	c := New(1, 1)
	c.SetPixel(0, 0, "")
	c.Rune(0, 0, '@', "")
	if got := c.String(); got != "@" {
		t.Errorf("glyph layer did not win: %q", got)
	}
}

func TestClear(t *testing.T) {
	c := New(3, 2)
	c.Disc(3, 4, 2, "#ff0000")
	c.Text(0, 0, "x", "")
	c.Clear()
	if got := strings.TrimSpace(strings.ReplaceAll(c.String(), "\n", "")); got != "" {
		t.Errorf("canvas not empty after Clear: %q", got)
	}
}

func TestFrameMatchesStringShape(t *testing.T) {
	c := New(8, 2)
	c.Line(0, 0, 15, 7, "#00ff00")
	frame := c.Frame()
	if lines := strings.Split(frame, "\n"); len(lines) != 2 {
		t.Fatalf("Frame has %d lines, want 2", len(lines))
	}
	for _, r := range c.String() {
		if r >= 0x2800 && r <= 0x28ff && !strings.ContainsRune(frame, r) {
			t.Fatalf("Frame dropped braille rune %U", r)
		}
	}
}
