package nodes

import "image/color"

// LinkArgs carries per-declaration link color overrides. Zero-value colors
// fall back to the style's link roles.
type LinkArgs struct {
	Base     color.NRGBA
	Hovered  color.NRGBA
	Selected color.NRGBA
}

type linkColors struct {
	base     color.NRGBA
	hovered  color.NRGBA
	selected color.NRGBA
}

// linkData is the retained per-link record. startPin must be an output pin
// and endPin an input pin once committed; the engine canonicalizes the
// orientation when it reports a created link.
type linkData struct {
	inUse    bool
	startPin ID
	endPin   ID
	colors   linkColors
	shape    ShapeID
}

// CreatedLink describes a committed link-creation gesture. Start is always
// the output pin and End the input pin regardless of drag direction.
// ViaSnap is true when the link was committed by proximity snapping rather
// than an explicit release over the end pin.
type CreatedLink struct {
	Start   ID
	End     ID
	ViaSnap bool
}
