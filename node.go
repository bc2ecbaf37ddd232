package nodes

import "image/color"

type nodeColors struct {
	background         color.NRGBA
	backgroundHovered  color.NRGBA
	backgroundSelected color.NRGBA
	header             color.NRGBA
	headerHovered      color.NRGBA
	headerSelected     color.NRGBA
}

type nodeLayout struct {
	cornerRounding  float64
	padding         Point
	borderThickness float64
}

// nodeData is the retained per-node record. origin lives in grid space;
// rect and headerRect are the screen-space results of this frame's layout.
type nodeData struct {
	inUse      bool
	origin     Point
	size       Point
	headerRect Rect
	rect       Rect
	colors     nodeColors
	layout     nodeLayout
	pinIDs     []ID
	draggable  bool

	backgroundShape ShapeID
	headerShapes    [2]ShapeID
}

func newNodeData() *nodeData {
	return &nodeData{
		inUse:     true,
		origin:    Point{X: 100, Y: 100},
		draggable: true,
	}
}

func (n *nodeData) addPin(id ID) {
	for _, existing := range n.pinIDs {
		if existing == id {
			return
		}
	}
	n.pinIDs = append(n.pinIDs, id)
}

// nodeAttribute is one declared row of a node: an input pin, an output pin,
// or a static row that never becomes a pin.
type nodeAttribute struct {
	id      ID
	kind    PinKind
	pinArgs PinArgs
	content ContentFunc
}

// NodeBuilder declares one node for the current frame. Obtain one from
// Editor.Node, chain the declaration calls, and finish with Show. The id
// must be the same across frames and distinct from every other live node.
type NodeBuilder struct {
	ed *Editor

	id         ID
	header     ContentFunc
	attributes []nodeAttribute
	origin     *Point
	draggable  *bool
}

// Header sets the node's title row. The callback runs exactly once, during
// Show, and is not retained past it.
func (b *NodeBuilder) Header(content ContentFunc) *NodeBuilder {
	b.header = content
	return b
}

// Input adds an input attribute that output attributes of other nodes can
// connect to. The pin id must be stable across frames and globally unique.
func (b *NodeBuilder) Input(pin ID, args PinArgs, content ContentFunc) *NodeBuilder {
	b.attributes = append(b.attributes, nodeAttribute{
		id:      pin,
		kind:    PinKindInput,
		pinArgs: args,
		content: content,
	})
	return b
}

// Output adds an output attribute that can be connected to input attributes
// of other nodes.
func (b *NodeBuilder) Output(pin ID, args PinArgs, content ContentFunc) *NodeBuilder {
	b.attributes = append(b.attributes, nodeAttribute{
		id:      pin,
		kind:    PinKindOutput,
		pinArgs: args,
		content: content,
	})
	return b
}

// Static adds a plain content row that cannot be connected to anything.
func (b *NodeBuilder) Static(id ID, content ContentFunc) *NodeBuilder {
	b.attributes = append(b.attributes, nodeAttribute{
		id:      id,
		kind:    PinKindNone,
		content: content,
	})
	return b
}

// Origin sets the node's grid-space position for the frame it is first
// seen. It has no effect on nodes that already exist.
func (b *NodeBuilder) Origin(p Point) *NodeBuilder {
	b.origin = &p
	return b
}

// Draggable controls whether node-drag interactions move this node.
// Nodes are draggable by default.
func (b *NodeBuilder) Draggable(draggable bool) *NodeBuilder {
	b.draggable = &draggable
	return b
}

// Show lays the node out, runs its content callbacks and registers it as
// live for the frame. Must be called between BeginFrame and EndFrame.
func (b *NodeBuilder) Show() {
	b.ed.showNode(b)
}
