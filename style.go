package nodes

import (
	"image/color"
	"math"
)

// ColorRole names a logical color slot resolved through the style.
type ColorRole int

const (
	ColorNodeBackground ColorRole = iota
	ColorNodeBackgroundHovered
	ColorNodeBackgroundSelected
	ColorNodeHeader
	ColorNodeHeaderHovered
	ColorNodeHeaderSelected
	ColorLink
	ColorLinkHovered
	ColorLinkSelected
	ColorPin
	ColorPinHovered
	ColorBoxSelector
	ColorBoxSelectorOutline
	ColorGridBackground
	ColorGridLine
	ColorRoleCount
)

// StyleFlags toggle optional style behavior.
type StyleFlags int

const (
	// StyleGridLines draws the dotted background grid.
	StyleGridLines StyleFlags = 1 << 2
)

// Style maps logical color and size roles to concrete values. A zero Style
// is not usable; start from DefaultStyle (or a loaded theme) and adjust.
type Style struct {
	GridSpacing         float64
	NodeCornerRounding  float64
	NodePaddingH        float64
	NodePaddingV        float64
	NodeBorderThickness float64

	LinkThickness         float64
	LinkSegmentsPerLength float64
	LinkHoverDistance     float64

	PinCircleRadius       float64
	PinQuadSideLength     float64
	PinTriangleSideLength float64
	PinLineThickness      float64
	PinHoverRadius        float64
	PinHoverShapeRadius   float64
	PinOffset             float64

	Flags  StyleFlags
	Colors [ColorRoleCount]color.NRGBA
}

// DefaultStyle returns the dark style.
func DefaultStyle() Style {
	return Style{
		GridSpacing:           26,
		NodeCornerRounding:    4,
		NodePaddingH:          8,
		NodePaddingV:          8,
		NodeBorderThickness:   1,
		LinkThickness:         3,
		LinkSegmentsPerLength: 0.1,
		LinkHoverDistance:     10,
		PinCircleRadius:       4,
		PinQuadSideLength:     7,
		PinTriangleSideLength: 9.5,
		PinLineThickness:      1,
		PinHoverRadius:        25,
		PinHoverShapeRadius:   15,
		PinOffset:             0,
		Flags:                 StyleGridLines,
		Colors:                darkColors(),
	}
}

func darkColors() [ColorRoleCount]color.NRGBA {
	var c [ColorRoleCount]color.NRGBA
	c[ColorNodeBackground] = color.NRGBA{50, 50, 50, 255}
	c[ColorNodeBackgroundHovered] = color.NRGBA{75, 75, 75, 255}
	c[ColorNodeBackgroundSelected] = color.NRGBA{75, 75, 75, 255}
	c[ColorNodeHeader] = color.NRGBA{74, 74, 74, 255}
	c[ColorNodeHeaderHovered] = color.NRGBA{94, 94, 94, 255}
	c[ColorNodeHeaderSelected] = color.NRGBA{120, 120, 120, 255}
	c[ColorLink] = color.NRGBA{60, 133, 224, 255}
	c[ColorLinkHovered] = color.NRGBA{60, 150, 250, 255}
	c[ColorLinkSelected] = color.NRGBA{60, 150, 250, 255}
	c[ColorPin] = color.NRGBA{60, 133, 224, 255}
	c[ColorPinHovered] = color.NRGBA{53, 150, 250, 255}
	c[ColorBoxSelector] = color.NRGBA{61, 133, 224, 30}
	c[ColorBoxSelectorOutline] = color.NRGBA{61, 133, 224, 150}
	c[ColorGridBackground] = color.NRGBA{20, 20, 20, 255}
	c[ColorGridLine] = color.NRGBA{26, 26, 26, 255}
	return c
}

// pinPosition resolves a pin's screen position from the owning node's rect
// and the attribute row rect: inputs sit on the node's left edge, outputs
// and static rows on the right, vertically centered on the row.
func (s *Style) pinPosition(nodeRect, contentRect Rect, kind PinKind) Point {
	x := nodeRect.Max.X + s.PinOffset
	if kind == PinKindInput {
		x = nodeRect.Min.X - s.PinOffset
	}
	return Point{X: x, Y: 0.5 * (contentRect.Min.Y + contentRect.Max.Y)}
}

// hoveredPinRadius interpolates the fan-out radius from the pointer's
// distance to the pin: it grows as the pointer approaches and is clamped to
// the hover shape radius.
func (s *Style) hoveredPinRadius(pinPos, pointer Point) float64 {
	r := remap(
		s.PinHoverRadius-pinPos.Distance(pointer),
		0, s.PinHoverRadius-s.PinHoverShapeRadius-5,
		0, s.PinHoverShapeRadius,
	)
	return math.Min(r, s.PinHoverShapeRadius)
}

// linkEndPos fans the end anchor of one of linkCount links sharing a pin
// out onto a circle around the pin. linkIndex orders the siblings by
// descending start-to-end angle.
func (s *Style) linkEndPos(pinPos, pointer Point, linkCount, linkIndex int) Point {
	ang := math.Pi - float64(linkCount-1)*math.Pi/8 + float64(linkIndex)*math.Pi/4
	radius := s.hoveredPinRadius(pinPos, pointer)

	return Point{
		X: pinPos.X + math.Cos(ang)*radius,
		Y: pinPos.Y - math.Sin(ang)*radius,
	}
}

func (s *Style) formatNode(n *nodeData) {
	n.colors = nodeColors{
		background:         s.Colors[ColorNodeBackground],
		backgroundHovered:  s.Colors[ColorNodeBackgroundHovered],
		backgroundSelected: s.Colors[ColorNodeBackgroundSelected],
		header:             s.Colors[ColorNodeHeader],
		headerHovered:      s.Colors[ColorNodeHeaderHovered],
		headerSelected:     s.Colors[ColorNodeHeaderSelected],
	}
	n.layout = nodeLayout{
		cornerRounding:  s.NodeCornerRounding,
		padding:         Point{X: s.NodePaddingH, Y: s.NodePaddingV},
		borderThickness: s.NodeBorderThickness,
	}
}

func (s *Style) formatPin(p *pinData, args PinArgs) {
	p.shape = args.Shape
	p.flags = args.Flags
	p.colors.background = orColor(args.Background, s.Colors[ColorPin])
	p.colors.hovered = orColor(args.Hovered, s.Colors[ColorPinHovered])
}

func (s *Style) formatLink(l *linkData, args LinkArgs) {
	l.colors.base = orColor(args.Base, s.Colors[ColorLink])
	l.colors.hovered = orColor(args.Hovered, s.Colors[ColorLinkHovered])
	l.colors.selected = orColor(args.Selected, s.Colors[ColorLinkSelected])
}

// orColor returns override unless it is the zero (fully transparent black)
// value, in which case fallback wins. Declaration args use the zero value
// to mean "no override".
func orColor(override, fallback color.NRGBA) color.NRGBA {
	if override == (color.NRGBA{}) {
		return fallback
	}
	return override
}

// drawPin emits one pin shape at the given radius.
func (s *Style) drawPin(sink PaintSink, pos Point, shape PinShape, c color.NRGBA, radius float64) {
	switch shape {
	case PinShapeCircle:
		sink.Add(CircleStroke(pos, radius, s.PinLineThickness, c))
	case PinShapeCircleFilled:
		sink.Add(CircleFilled(pos, radius, c))
	case PinShapeQuad:
		// Quads draw at half PinQuadSideLength. Theme values are tuned to
		// that scale, so resizing here changes every quad pin on screen.
		r := RectFromCenterSize(pos, Point{X: s.PinQuadSideLength / 2, Y: s.PinQuadSideLength / 2})
		sink.Add(RectStroke(r, 0, s.PinLineThickness, c))
	case PinShapeQuadFilled:
		r := RectFromCenterSize(pos, Point{X: s.PinQuadSideLength / 2, Y: s.PinQuadSideLength / 2})
		sink.Add(RectFilled(r, 0, c))
	case PinShapeTriangle:
		sink.Add(ClosedPolyline(s.trianglePoints(pos), s.PinLineThickness, c))
	case PinShapeTriangleFilled:
		sink.Add(Polygon(s.trianglePoints(pos), c))
	}
}

func (s *Style) trianglePoints(pos Point) []Point {
	sqrt3 := math.Sqrt(3)
	left := -sqrt3 / 6 * s.PinTriangleSideLength
	right := sqrt3 / 3 * s.PinTriangleSideLength
	vertical := 0.5 * s.PinTriangleSideLength
	return []Point{
		pos.Add(Point{X: left, Y: vertical}),
		pos.Add(Point{X: right}),
		pos.Add(Point{X: left, Y: -vertical}),
	}
}

// drawHoveredPin renders the hovered-pin halo: a stroked circle at the
// interpolated radius, a shrunken center pin, and one fanned dot per
// attached link.
func (s *Style) drawHoveredPin(sink PaintSink, linkCount int, pinPos, pointer Point, shape PinShape, c color.NRGBA) {
	sink.Add(CircleStroke(pinPos, s.hoveredPinRadius(pinPos, pointer), s.PinLineThickness, c))

	s.drawPin(sink, pinPos, shape, c, s.PinCircleRadius/2)

	for i := 0; i < linkCount; i++ {
		fanned := s.linkEndPos(pinPos, pointer, linkCount, i)
		s.drawPin(sink, fanned, shape, c, s.PinCircleRadius)
	}
}
