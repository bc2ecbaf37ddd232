package nodes

import "image/color"

// PinKind distinguishes input and output connection points. Attributes
// declared with PinKindNone are plain layout rows and never become pins.
type PinKind int

const (
	PinKindNone PinKind = iota
	PinKindInput
	PinKindOutput
)

// PinShape controls how an attribute pin is drawn.
type PinShape int

const (
	PinShapeCircleFilled PinShape = iota
	PinShapeCircle
	PinShapeTriangle
	PinShapeTriangleFilled
	PinShapeQuad
	PinShapeQuadFilled
)

// PinFlags control how an attribute pin behaves during link interactions.
type PinFlags int

const (
	// PinDetachOnDrag makes pressing a link near this pin detach the link
	// instead of selecting it. Hosts using it must handle removed links via
	// DroppedLink / CreatedLink.
	PinDetachOnDrag PinFlags = 1 << iota

	// PinLinkCreationOnSnap commits a provisional link as soon as it snaps
	// to this pin, without waiting for button release. Moving the snap away
	// again detaches the just-committed link.
	PinLinkCreationOnSnap
)

// PinArgs carries per-declaration pin overrides. Zero-value colors fall back
// to the style's pin roles.
type PinArgs struct {
	Shape      PinShape
	Flags      PinFlags
	Background color.NRGBA
	Hovered    color.NRGBA
}

type pinColors struct {
	background color.NRGBA
	hovered    color.NRGBA
}

// pinData is the retained per-pin record. contentRect is the attribute row
// rect the host laid out this frame; pos is the resolved screen-space pin
// position derived from it and the owning node's rect.
type pinData struct {
	inUse       bool
	parentNode  ID
	contentRect Rect
	kind        PinKind
	shape       PinShape
	pos         Point
	flags       PinFlags
	colors      pinColors
}

func (p *pinData) isOutput() bool {
	return p.kind == PinKindOutput
}

func (p *pinData) linkCreationOnSnap() bool {
	return p.flags&PinLinkCreationOnSnap != 0
}
