// Package interact implements the pointer state machine the demos
// share: hover, selection, and position-relative drag with a click dead
// zone. State is a plain value threaded through pure transitions, so a
// demo owns exactly one State and nothing is shared behind its back.
package interact

// None marks the absence of a shape index.
const None = -1

// DragDeadZone is the pointer travel, in braille pixels, below which a
// press/release pair still counts as a click.
const DragDeadZone = 3

// Kind classifies a pointer event.
type Kind int

const (
	Motion Kind = iota
	Press
	Release
	Leave
	WheelUp
	WheelDown
)

// Pointer is one pointer event in a demo's own coordinate space. X and Y
// carry the hit-test coordinates; PX and PY carry raw braille pixels,
// which the dead zone is measured in so zooming never changes how far a
// click may wobble.
type Pointer struct {
	Kind   Kind
	X, Y   float64
	PX, PY int
}

// Shift asks the caller to move a shape to a new center. Index is None
// when no move is requested.
type Shift struct {
	Index int
	X, Y  float64
}

// Active reports whether the shift names a shape.
func (s Shift) Active() bool { return s.Index != None }
