package nodes

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Start returns the starting point of the curve.
func (c CubicBez) Start() Point {
	return c.P0
}

// End returns the ending point of the curve.
func (c CubicBez) End() Point {
	return c.P3
}

// LinkCurve is the renderable form of a link: a cubic Bezier whose tangents
// leave the output side horizontally, together with a polyline approximation
// used for hit-testing and drawing. The segment count scales with the
// distance between the endpoints.
type LinkCurve struct {
	Bezier   CubicBez
	Segments int
}

// newLinkCurve builds the curve between two pin positions. startKind is the
// kind of the pin the drag started from: when it is an input pin the
// endpoints are swapped so that the curve always exits the output side and
// enters the input side. segmentsPerLength controls the polyline density.
func newLinkCurve(start, end Point, startKind PinKind, segmentsPerLength float64) LinkCurve {
	if startKind == PinKindInput {
		start, end = end, start
	}

	length := end.Distance(start)
	offset := Point{X: 0.25 * length}

	segments := int(length * segmentsPerLength)
	if segments < 1 {
		segments = 1
	}

	return LinkCurve{
		Bezier: CubicBez{
			P0: start,
			P1: start.Add(offset),
			P2: end.Sub(offset),
			P3: end,
		},
		Segments: segments,
	}
}

// Flatten returns the polyline approximation of the curve: Segments+1
// points evaluated at evenly spaced parameters.
func (lc LinkCurve) Flatten() []Point {
	ts := make([]float64, lc.Segments+1)
	floats.Span(ts, 0, 1)

	pts := make([]Point, len(ts))
	for i, t := range ts {
		pts[i] = lc.Bezier.Eval(t)
	}
	return pts
}

// ClosestPoint returns the point on the polyline approximation closest to p.
func (lc LinkCurve) ClosestPoint(p Point) Point {
	pts := lc.Flatten()
	closest := pts[0]
	best := math.MaxFloat64

	for i := 0; i+1 < len(pts); i++ {
		q := closestPointOnSegment(pts[i], pts[i+1], p)
		if d := q.DistanceSquared(p); d < best {
			best = d
			closest = q
		}
	}
	return closest
}

// DistanceTo returns the minimum distance from p to the polyline
// approximation of the curve.
func (lc LinkCurve) DistanceTo(p Point) float64 {
	return lc.ClosestPoint(p).Distance(p)
}

// BoundingBox returns the axis-aligned bounding box of the polyline
// approximation.
func (lc LinkCurve) BoundingBox() Rect {
	pts := lc.Flatten()
	bbox := NewRect(pts[0], pts[0])
	for _, p := range pts[1:] {
		bbox = bbox.Union(NewRect(p, p))
	}
	return bbox
}

// OverlapsRect reports whether the curve passes through r. True when r
// contains either endpoint, or when r intersects the polyline's bounding
// box and at least one polyline segment crosses r.
func (lc LinkCurve) OverlapsRect(r Rect) bool {
	if r.Contains(lc.Bezier.P0) || r.Contains(lc.Bezier.P3) {
		return true
	}
	if !r.Intersects(lc.BoundingBox()) {
		return false
	}

	pts := lc.Flatten()
	for i := 0; i+1 < len(pts); i++ {
		if r.IntersectsSegment(pts[i], pts[i+1]) {
			return true
		}
	}
	return false
}

// closestPointOnSegment projects p onto the segment a-b, clamped to the
// segment's extent.
func closestPointOnSegment(a, b, p Point) Point {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq == 0 {
		return a
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(ab.Mul(t))
}
