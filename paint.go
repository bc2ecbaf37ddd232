package nodes

import "image/color"

// ShapeKind selects which fields of a Shape are meaningful.
type ShapeKind int

const (
	// ShapeNone is a reserved, not-yet-filled slot. Renderers skip it.
	ShapeNone ShapeKind = iota
	ShapeRectFilled
	ShapeRectStroke
	ShapeCircleFilled
	ShapeCircleStroke
	ShapePolygon
	ShapeClosedPolyline
	ShapePolyline
)

// Shape is one drawing primitive. Shapes are interpreted in the order they
// appear in the display list, back to front.
type Shape struct {
	Kind ShapeKind

	// Rect primitives.
	Rect     Rect
	Rounding float64

	// Circle primitives.
	Center Point
	Radius float64

	// Polygon and polyline primitives.
	Points []Point

	Color     color.NRGBA
	Thickness float64
}

// RectFilled builds a filled rectangle with rounded corners.
func RectFilled(r Rect, rounding float64, c color.NRGBA) Shape {
	return Shape{Kind: ShapeRectFilled, Rect: r, Rounding: rounding, Color: c}
}

// RectStroke builds a stroked rectangle outline.
func RectStroke(r Rect, rounding, thickness float64, c color.NRGBA) Shape {
	return Shape{Kind: ShapeRectStroke, Rect: r, Rounding: rounding, Thickness: thickness, Color: c}
}

// CircleFilled builds a filled circle.
func CircleFilled(center Point, radius float64, c color.NRGBA) Shape {
	return Shape{Kind: ShapeCircleFilled, Center: center, Radius: radius, Color: c}
}

// CircleStroke builds a stroked circle outline.
func CircleStroke(center Point, radius, thickness float64, c color.NRGBA) Shape {
	return Shape{Kind: ShapeCircleStroke, Center: center, Radius: radius, Thickness: thickness, Color: c}
}

// Polygon builds a filled convex polygon.
func Polygon(points []Point, c color.NRGBA) Shape {
	return Shape{Kind: ShapePolygon, Points: points, Color: c}
}

// ClosedPolyline builds a stroked closed outline through points.
func ClosedPolyline(points []Point, thickness float64, c color.NRGBA) Shape {
	return Shape{Kind: ShapeClosedPolyline, Points: points, Thickness: thickness, Color: c}
}

// Polyline builds a stroked open polyline through points.
func Polyline(points []Point, thickness float64, c color.NRGBA) Shape {
	return Shape{Kind: ShapePolyline, Points: points, Thickness: thickness, Color: c}
}

// ShapeID names a reserved slot in a paint sink.
type ShapeID int

// PaintSink receives the engine's drawing primitives. Reserve allocates an
// ordered slot that can be filled in later with Set, so background shapes
// allocated before child layout keep their back-to-front position without a
// second pass. Add appends a shape at the current end of the order.
type PaintSink interface {
	Reserve() ShapeID
	Set(id ShapeID, s Shape)
	Add(s Shape)
}

// DisplayList is the provided PaintSink implementation: an append-only,
// ordered shape buffer the host hands to a renderer after EndFrame.
type DisplayList struct {
	shapes []Shape
}

// NewDisplayList creates an empty display list.
func NewDisplayList() *DisplayList {
	return &DisplayList{}
}

// Reserve allocates an empty slot and returns its id.
func (l *DisplayList) Reserve() ShapeID {
	l.shapes = append(l.shapes, Shape{})
	return ShapeID(len(l.shapes) - 1)
}

// Set fills a previously reserved slot. Out-of-range ids are ignored.
func (l *DisplayList) Set(id ShapeID, s Shape) {
	if id < 0 || int(id) >= len(l.shapes) {
		return
	}
	l.shapes[int(id)] = s
}

// Add appends a shape to the end of the list.
func (l *DisplayList) Add(s Shape) {
	l.shapes = append(l.shapes, s)
}

// Shapes returns the accumulated shapes in draw order. Unfilled reserved
// slots remain as ShapeNone entries.
func (l *DisplayList) Shapes() []Shape {
	return l.shapes
}

// Len returns the number of slots in the list, filled or not.
func (l *DisplayList) Len() int {
	return len(l.shapes)
}

// Reset empties the list while keeping its capacity. Call it at the start
// of each frame before BeginFrame.
func (l *DisplayList) Reset() {
	l.shapes = l.shapes[:0]
}
