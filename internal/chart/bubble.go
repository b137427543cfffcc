// Package chart holds the geometry model shared by the demos: shape
// descriptors plus the derived statistical layouts (histogram bins,
// kernel density estimates, angular partitions, stacked bands). All
// functions are pure; interaction state lives in the interact package
// and rendering in the tui package.
package chart

// NoHit marks the absence of a shape index.
const NoHit = -1

// Bubble is a filled circle in data coordinates.
type Bubble struct {
	Label string
	X, Y  float64
	R     float64
	Color string
}

// HitTest returns the index of the first bubble strictly containing the
// point, or NoHit. Overlaps resolve to the earliest bubble in the list.
func HitTest(bubbles []Bubble, x, y float64) int {
	for i, b := range bubbles {
		dx := x - b.X
		dy := y - b.Y
		if dx*dx+dy*dy < b.R*b.R {
			return i
		}
	}
	return NoHit
}
