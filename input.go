package nodes

// Input is the per-frame pointer snapshot supplied by the host. All
// positions are in screen space. The engine derives press/release edges
// itself by comparing consecutive frames.
type Input struct {
	// Pointer is the pointer position. Ignored when PointerValid is false,
	// which means the pointer is outside the canvas (or there is none).
	Pointer      Point
	PointerValid bool

	// PrimaryDown reports whether the primary button is held this frame.
	PrimaryDown bool

	// PanDown reports whether the pan trigger (middle button, or whatever
	// the host maps) is held this frame.
	PanDown bool

	// DetachModifier reports whether the detach modifier is held. Pressing
	// a link with it held detaches the link at its nearer endpoint instead
	// of selecting it.
	DetachModifier bool
}

// pointerState tracks button edges across frames. pressed and released are
// single-frame edges; dragging spans the frames in between.
type pointerState struct {
	pos   Point
	delta Point

	inCanvas bool

	primaryPressed  bool
	primaryReleased bool
	primaryDragging bool

	panPressed  bool
	panDragging bool

	detachModifier bool
}

// update folds this frame's raw input into edge state. When the pointer is
// outside the canvas the last known position is kept so deltas stay sane.
func (ps *pointerState) update(in Input) {
	pos := ps.pos
	ps.inCanvas = in.PointerValid
	if in.PointerValid {
		pos = in.Pointer
	}
	ps.delta = pos.Sub(ps.pos)
	ps.pos = pos

	wasDown := ps.primaryPressed || ps.primaryDragging
	ps.primaryReleased = wasDown && !in.PrimaryDown
	ps.primaryDragging = wasDown && in.PrimaryDown
	ps.primaryPressed = in.PrimaryDown && !wasDown

	panWasDown := ps.panPressed || ps.panDragging
	ps.panDragging = panWasDown && in.PanDown
	ps.panPressed = in.PanDown && !panWasDown

	ps.detachModifier = in.DetachModifier
}
