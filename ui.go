package nodes

// Response is what a content callback reports back to the engine: the
// screen-space rect the content occupied, and whether the primary button is
// currently held down on it (which suppresses node dragging so widgets
// inside a node stay usable).
type Response struct {
	Rect Rect
	Held bool
}

// ContentFunc renders one header or attribute row. It is invoked exactly
// once, during NodeBuilder.Show, and must not be retained by the engine or
// capture the *UI beyond the call.
type ContentFunc func(ui *UI) Response

// UI is the layout handle passed to content callbacks. It exposes the paint
// sink, the row's top-left origin, and the pointer, which is all a host
// needs to draw a row and report its rect.
type UI struct {
	sink         PaintSink
	origin       Point
	pointer      Point
	pointerValid bool
	primaryDown  bool
}

// Painter returns the frame's paint sink. Shapes added here land between
// the node's background and anything drawn after the node.
func (u *UI) Painter() PaintSink {
	return u.sink
}

// Origin returns the top-left corner the row content should start at.
func (u *UI) Origin() Point {
	return u.origin
}

// Pointer returns the pointer position and whether it is inside the canvas.
func (u *UI) Pointer() (Point, bool) {
	return u.pointer, u.pointerValid
}

// PointerDown reports whether the primary button is held this frame.
func (u *UI) PointerDown() bool {
	return u.primaryDown
}

// Row is a convenience for fixed-size rows: it returns a Response covering
// size pixels from the origin, with Held set when the primary button is
// down over that rect.
func (u *UI) Row(size Point) Response {
	r := RectFromMinSize(u.origin, size)
	return Response{
		Rect: r,
		Held: u.primaryDown && u.pointerValid && r.Contains(u.pointer),
	}
}
