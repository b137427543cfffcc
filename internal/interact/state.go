package interact

// State is the interaction snapshot of one demo instance. Hover,
// Selected and Drag are shape indexes or None; at most one shape is
// hovered and one selected at any time.
type State struct {
	Hover    int
	Selected int
	Drag     int

	// grab offset between the dragged shape's center and the pointer,
	// fixed at press so drag is position-relative.
	GrabX, GrabY float64

	pressPX, pressPY int
	travelled        bool
	pressEmpty       bool
}

// NewState returns an idle state with nothing hovered or selected.
func NewState() State {
	return State{Hover: None, Selected: None, Drag: None}
}

// Dragging reports whether a drag is in progress.
func (s State) Dragging() bool { return s.Drag != None }

// Step advances the state by one pointer event. hit resolves a point to
// a shape index or None; center returns a shape's current center, used
// to record the grab offset at press. The returned Shift is the drag
// translation to apply, if any.
func (s State) Step(ev Pointer, hit func(x, y float64) int, center func(i int) (x, y float64)) (State, Shift) {
	shift := Shift{Index: None}
	switch ev.Kind {
	case Motion:
		if s.Drag != None {
			if !s.travelled {
				dx := ev.PX - s.pressPX
				dy := ev.PY - s.pressPY
				if dx*dx+dy*dy > DragDeadZone*DragDeadZone {
					s.travelled = true
				}
			}
			s.Hover = s.Drag
			shift = Shift{Index: s.Drag, X: ev.X + s.GrabX, Y: ev.Y + s.GrabY}
			return s, shift
		}
		s.Hover = hit(ev.X, ev.Y)

	case Press:
		i := hit(ev.X, ev.Y)
		if i == None {
			s.pressEmpty = true
			return s, shift
		}
		cx, cy := center(i)
		s.Drag = i
		s.Hover = i
		s.GrabX = cx - ev.X
		s.GrabY = cy - ev.Y
		s.pressPX, s.pressPY = ev.PX, ev.PY
		s.travelled = false
		s.pressEmpty = false

	case Release:
		if s.Drag != None {
			if !s.travelled {
				if s.Selected == s.Drag {
					s.Selected = None
				} else {
					s.Selected = s.Drag
				}
			}
			s.Drag = None
			return s, shift
		}
		if s.pressEmpty {
			s.pressEmpty = false
			if hit(ev.X, ev.Y) == None {
				s.Selected = None
			}
		}

	case Leave:
		s.Hover = None
		s.Drag = None
		s.travelled = false
		s.pressEmpty = false
	}
	return s, shift
}
