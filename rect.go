package nodes

import "math"

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// RectFromMinSize creates a rectangle from its top-left corner and size.
func RectFromMinSize(min, size Point) Rect {
	return Rect{Min: min, Max: min.Add(size)}
}

// RectFromCenterSize creates a rectangle centered on c with the given size.
func RectFromCenterSize(c, size Point) Rect {
	half := size.Mul(0.5)
	return Rect{Min: c.Sub(half), Max: c.Add(half)}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Size returns the rectangle's size as a vector.
func (r Rect) Size() Point {
	return Point{X: r.Width(), Y: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) * 0.5, Y: (r.Min.Y + r.Max.Y) * 0.5}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Intersects reports whether r and other overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Min.X <= other.Max.X && other.Min.X <= r.Max.X &&
		r.Min.Y <= other.Max.Y && other.Min.Y <= r.Max.Y
}

// Expand grows the rectangle by v on each side.
// Negative values shrink it.
func (r Rect) Expand(v Point) Rect {
	return Rect{Min: r.Min.Sub(v), Max: r.Max.Add(v)}
}

// Normalized returns the rectangle with Min/Max swapped per axis where
// needed so that Min <= Max. Useful for drag rectangles built from two
// arbitrary corners.
func (r Rect) Normalized() Rect {
	return NewRect(r.Min, r.Max)
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// IntersectsSegment reports whether the line segment a-b passes through
// the rectangle, using Liang-Barsky parametric clipping.
func (r Rect) IntersectsSegment(a, b Point) bool {
	if r.Contains(a) || r.Contains(b) {
		return true
	}

	d := b.Sub(a)
	t0, t1 := 0.0, 1.0

	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
		return true
	}

	return clip(-d.X, a.X-r.Min.X) &&
		clip(d.X, r.Max.X-a.X) &&
		clip(-d.Y, a.Y-r.Min.Y) &&
		clip(d.Y, r.Max.Y-a.Y)
}
