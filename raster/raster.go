// Package raster renders a nodes display list into an image.
//
// It is a small CPU rasterizer built on golang.org/x/image/vector, intended
// for headless output, golden tests and tooling. Interactive hosts will
// usually translate the display list to their own renderer instead.
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/nodes"
)

// kappa approximates a quarter circle with one cubic Bezier segment.
const kappa = 0.5522847498307936

// circleSegments is the polyline density used for stroked circles.
const circleSegments = 48

// Renderer rasterizes display lists into RGBA images. A Renderer can be
// reused across frames; it is not safe for concurrent use.
type Renderer struct {
	width  int
	height int
	z      *vector.Rasterizer
}

// New creates a renderer with the given output size in pixels.
func New(width, height int) *Renderer {
	return &Renderer{
		width:  width,
		height: height,
		z:      vector.NewRasterizer(width, height),
	}
}

// Render rasterizes the list into a fresh image.
func (r *Renderer) Render(list *nodes.DisplayList) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	r.RenderInto(img, list.Shapes())
	return img
}

// RenderInto rasterizes shapes over dst in list order.
func (r *Renderer) RenderInto(dst *image.RGBA, shapes []nodes.Shape) {
	for _, s := range shapes {
		switch s.Kind {
		case nodes.ShapeRectFilled:
			r.fillRoundedRect(dst, s.Rect, s.Rounding, s.Color)
		case nodes.ShapeRectStroke:
			r.strokePolyline(dst, rectOutline(s.Rect, s.Rounding), s.Thickness, s.Color, true)
		case nodes.ShapeCircleFilled:
			r.fillCircle(dst, s.Center, s.Radius, s.Color)
		case nodes.ShapeCircleStroke:
			r.strokePolyline(dst, circleOutline(s.Center, s.Radius), s.Thickness, s.Color, true)
		case nodes.ShapePolygon:
			r.fillPolygon(dst, s.Points, s.Color)
		case nodes.ShapeClosedPolyline:
			r.strokePolyline(dst, s.Points, s.Thickness, s.Color, true)
		case nodes.ShapePolyline:
			r.strokePolyline(dst, s.Points, s.Thickness, s.Color, false)
		case nodes.ShapeNone:
			// Reserved slot that was never filled in.
		}
	}
}

func (r *Renderer) fill(dst *image.RGBA, c color.NRGBA) {
	r.z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
	r.z.Reset(r.width, r.height)
}

func (r *Renderer) fillRoundedRect(dst *image.RGBA, rect nodes.Rect, rounding float64, c color.NRGBA) {
	if rect.IsEmpty() {
		return
	}
	rounding = math.Min(rounding, math.Min(rect.Width(), rect.Height())/2)

	x0, y0 := float32(rect.Min.X), float32(rect.Min.Y)
	x1, y1 := float32(rect.Max.X), float32(rect.Max.Y)

	if rounding <= 0 {
		r.z.MoveTo(x0, y0)
		r.z.LineTo(x1, y0)
		r.z.LineTo(x1, y1)
		r.z.LineTo(x0, y1)
		r.z.ClosePath()
		r.fill(dst, c)
		return
	}

	rad := float32(rounding)
	k := float32(rounding * kappa)

	r.z.MoveTo(x0+rad, y0)
	r.z.LineTo(x1-rad, y0)
	r.z.CubeTo(x1-rad+k, y0, x1, y0+rad-k, x1, y0+rad)
	r.z.LineTo(x1, y1-rad)
	r.z.CubeTo(x1, y1-rad+k, x1-rad+k, y1, x1-rad, y1)
	r.z.LineTo(x0+rad, y1)
	r.z.CubeTo(x0+rad-k, y1, x0, y1-rad+k, x0, y1-rad)
	r.z.LineTo(x0, y0+rad)
	r.z.CubeTo(x0, y0+rad-k, x0+rad-k, y0, x0+rad, y0)
	r.z.ClosePath()
	r.fill(dst, c)
}

func (r *Renderer) fillCircle(dst *image.RGBA, center nodes.Point, radius float64, c color.NRGBA) {
	if radius <= 0 {
		return
	}
	cx, cy := float32(center.X), float32(center.Y)
	rad := float32(radius)
	k := float32(radius * kappa)

	r.z.MoveTo(cx+rad, cy)
	r.z.CubeTo(cx+rad, cy+k, cx+k, cy+rad, cx, cy+rad)
	r.z.CubeTo(cx-k, cy+rad, cx-rad, cy+k, cx-rad, cy)
	r.z.CubeTo(cx-rad, cy-k, cx-k, cy-rad, cx, cy-rad)
	r.z.CubeTo(cx+k, cy-rad, cx+rad, cy-k, cx+rad, cy)
	r.z.ClosePath()
	r.fill(dst, c)
}

func (r *Renderer) fillPolygon(dst *image.RGBA, pts []nodes.Point, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	r.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.z.LineTo(float32(p.X), float32(p.Y))
	}
	r.z.ClosePath()
	r.fill(dst, c)
}

// strokePolyline draws each segment as a filled quad of the given
// thickness. Joins are left square; the dense polylines the engine emits
// for curves make that invisible in practice.
func (r *Renderer) strokePolyline(dst *image.RGBA, pts []nodes.Point, thickness float64, c color.NRGBA, closed bool) {
	if len(pts) < 2 {
		return
	}
	if thickness <= 0 {
		thickness = 1
	}
	half := thickness / 2

	segment := func(a, b nodes.Point) {
		dir := b.Sub(a)
		length := dir.Length()
		if length == 0 {
			return
		}
		n := nodes.Pt(-dir.Y/length*half, dir.X/length*half)

		r.z.MoveTo(float32(a.X+n.X), float32(a.Y+n.Y))
		r.z.LineTo(float32(b.X+n.X), float32(b.Y+n.Y))
		r.z.LineTo(float32(b.X-n.X), float32(b.Y-n.Y))
		r.z.LineTo(float32(a.X-n.X), float32(a.Y-n.Y))
		r.z.ClosePath()
		r.fill(dst, c)
	}

	for i := 0; i+1 < len(pts); i++ {
		segment(pts[i], pts[i+1])
	}
	if closed {
		segment(pts[len(pts)-1], pts[0])
	}
}

// rectOutline returns the closed outline of rect, sampling each rounded
// corner as a quarter-circle arc when rounding is positive.
func rectOutline(rect nodes.Rect, rounding float64) []nodes.Point {
	rounding = math.Min(rounding, math.Min(rect.Width(), rect.Height())/2)
	if rounding <= 0 {
		return []nodes.Point{
			rect.Min,
			{X: rect.Max.X, Y: rect.Min.Y},
			rect.Max,
			{X: rect.Min.X, Y: rect.Max.Y},
		}
	}

	const cornerSegments = circleSegments / 4
	corners := []struct {
		center nodes.Point
		start  float64
	}{
		{nodes.Pt(rect.Max.X-rounding, rect.Min.Y+rounding), -math.Pi / 2},
		{nodes.Pt(rect.Max.X-rounding, rect.Max.Y-rounding), 0},
		{nodes.Pt(rect.Min.X+rounding, rect.Max.Y-rounding), math.Pi / 2},
		{nodes.Pt(rect.Min.X+rounding, rect.Min.Y+rounding), math.Pi},
	}
	pts := make([]nodes.Point, 0, 4*(cornerSegments+1))
	for _, corner := range corners {
		for i := 0; i <= cornerSegments; i++ {
			ang := corner.start + math.Pi/2*float64(i)/cornerSegments
			pts = append(pts, nodes.Pt(
				corner.center.X+rounding*math.Cos(ang),
				corner.center.Y+rounding*math.Sin(ang),
			))
		}
	}
	return pts
}

func circleOutline(center nodes.Point, radius float64) []nodes.Point {
	pts := make([]nodes.Point, circleSegments)
	for i := range pts {
		ang := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = nodes.Pt(center.X+radius*math.Cos(ang), center.Y+radius*math.Sin(ang))
	}
	return pts
}
