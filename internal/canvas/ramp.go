package canvas

import colorful "github.com/lucasb-eyer/go-colorful"

// Ramp interpolates n colors across the anchor hex colors, blending in Luv
// space so the perceived brightness changes evenly. Invalid anchors fall
// back to white.
func Ramp(anchors []string, n int) []string {
	if n <= 0 {
		return nil
	}
	cols := make([]colorful.Color, 0, len(anchors))
	for _, a := range anchors {
		c, err := colorful.Hex(a)
		if err != nil {
			c = colorful.Color{R: 1, G: 1, B: 1}
		}
		cols = append(cols, c)
	}
	switch len(cols) {
	case 0:
		cols = []colorful.Color{{R: 1, G: 1, B: 1}}
		fallthrough
	case 1:
		cols = append(cols, cols[0])
	}
	out := make([]string, n)
	if n == 1 {
		out[0] = cols[0].Hex()
		return out
	}
	segs := len(cols) - 1
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1) * float64(segs)
		s := int(t)
		if s >= segs {
			s = segs - 1
		}
		frac := t - float64(s)
		out[i] = cols[s].BlendLuv(cols[s+1], frac).Clamped().Hex()
	}
	return out
}

// Shade blends a hex color toward black by t in [0,1].
func Shade(hex string, t float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return c.BlendLuv(colorful.Color{}, clamp01(t)).Clamped().Hex()
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
