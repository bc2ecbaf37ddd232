package nodes

import "sort"

// rowSpacing is the vertical gap inserted between attribute rows.
const rowSpacing = 4.0

// noShape marks an unassigned display-list slot.
const noShape ShapeID = -1

type stateChange int

const (
	stateLinkStarted stateChange = 1 << iota
	stateLinkDropped
	stateLinkCreated
)

type interactionKind int

const (
	interactionNone interactionKind = iota
	interactionNode
	interactionLink
	interactionLinkCreation
	interactionPanning
	interactionBoxSelection
)

type linkCreationKind int

const (
	linkCreationStandard linkCreationKind = iota
	linkCreationFromDetach
)

// linkCreationState tracks the in-progress drag while the state machine is
// in link-creation mode. endPin is the last recorded snap target.
type linkCreationState struct {
	startPin     ID
	endPin       ID
	detachedLink ID
	kind         linkCreationKind
}

// EditorOption configures an Editor during creation.
type EditorOption func(*Editor)

// WithStyle sets the editor's style. The default is DefaultStyle.
func WithStyle(s Style) EditorOption {
	return func(e *Editor) {
		e.style = s
	}
}

// Editor is the node-graph canvas engine. One Editor owns one canvas: the
// host declares nodes, pins and links between BeginFrame and EndFrame every
// frame, and reads interaction results through the query methods afterward.
// An Editor must not be shared across goroutines.
type Editor struct {
	style Style

	canvasRect Rect
	rawInput   Input
	pointer    pointerState
	sink       PaintSink

	nodes orderedStore[nodeData]
	pins  orderedStore[pinData]
	links orderedStore[linkData]

	// Derived per-frame structures.
	endPinLinks             map[ID][]ID
	depthOrder              []ID
	nodesOverlappingPointer []ID
	occludedPins            []ID

	hoveredNode     ID
	interactiveNode ID
	hoveredLink     ID
	hoveredPin      ID
	hoveredPinFlags PinFlags

	detachedLink ID
	droppedLink  ID
	snapLink     ID

	activeAttribute    ID
	activeAttributeSet bool

	stateChange stateChange

	panning Point

	selectedNodes []ID
	selectedLinks []ID

	provisionalStart  ID
	provisionalEnd    ID
	provisionalActive bool

	interaction  interactionKind
	linkCreation linkCreationState
	boxRect      Rect
}

// NewEditor creates an editor with the default style.
func NewEditor(opts ...EditorOption) *Editor {
	e := &Editor{
		style:       DefaultStyle(),
		nodes:       newOrderedStore[nodeData](),
		pins:        newOrderedStore[pinData](),
		links:       newOrderedStore[linkData](),
		endPinLinks: make(map[ID][]ID),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Style returns the editor's style for inspection or mutation. Mutations
// take effect from the next BeginFrame.
func (e *Editor) Style() *Style {
	return &e.style
}

// BeginFrame starts a frame: it resets per-frame state, records the input
// snapshot and paint sink, and draws the canvas background and grid. Every
// frame must pair BeginFrame with EndFrame.
func (e *Editor) BeginFrame(canvas Rect, in Input, sink PaintSink) {
	e.hoveredNode = NilID
	e.interactiveNode = NilID
	e.hoveredLink = NilID
	e.hoveredPinFlags = 0
	e.detachedLink = NilID
	e.droppedLink = NilID
	e.snapLink = NilID
	e.provisionalStart = NilID
	e.provisionalEnd = NilID
	e.provisionalActive = false
	e.stateChange = 0
	e.activeAttributeSet = false
	e.nodesOverlappingPointer = e.nodesOverlappingPointer[:0]
	clear(e.endPinLinks)

	e.canvasRect = canvas
	e.rawInput = in
	e.sink = sink

	e.nodes.each(func(_ ID, n *nodeData) { n.inUse = false })
	e.pins.each(func(_ ID, p *pinData) { p.inUse = false })
	e.links.each(func(_ ID, l *linkData) { l.inUse = false })

	sink.Add(RectFilled(canvas, 0, e.style.Colors[ColorGridBackground]))
	if e.style.Flags&StyleGridLines != 0 {
		e.drawGrid()
	}
}

// Node begins (or continues) the declaration of a node for this frame.
func (e *Editor) Node(id ID) *NodeBuilder {
	return &NodeBuilder{ed: e, id: id}
}

// Link declares a link between an output pin and an input pin for this
// frame. The id must be stable across frames.
func (e *Editor) Link(id, startPin, endPin ID, args LinkArgs) {
	e.endPinLinks[endPin] = append(e.endPinLinks[endPin], id)

	link, _ := e.links.getOrInsert(id, func() *linkData { return &linkData{shape: noShape} })
	link.inUse = true
	link.startPin = startPin
	link.endPin = endPin
	link.shape = e.sink.Reserve()
	e.style.formatLink(link, args)

	// A re-declared link that matches the drag in progress is the one the
	// provisional link is snapped into, in either orientation.
	endPinData := e.pins.get(endPin)
	snapForward := e.interaction == interactionLinkCreation &&
		endPinData != nil && endPinData.linkCreationOnSnap() &&
		e.linkCreation.startPin == startPin &&
		e.linkCreation.endPin == endPin
	snapReverse := e.linkCreation.startPin == endPin &&
		e.linkCreation.endPin == startPin

	if snapForward || snapReverse {
		e.snapLink = id
	}
}

// EndFrame finishes the frame: it resolves hover state, steps the
// interaction state machine, draws nodes and links into the paint sink, and
// purges every entity that was not re-declared since BeginFrame.
func (e *Editor) EndFrame() {
	e.pointer.update(e.rawInput)

	if e.pointer.inCanvas {
		e.resolveOccludedPins()
		e.resolveHoveredPin()
		if e.hoveredPin == NilID {
			e.resolveHoveredNode()
		}
	}

	e.interactionUpdate()

	if e.pointer.inCanvas && e.hoveredNode == NilID {
		e.resolveHoveredLink()
	}

	depth := append([]ID(nil), e.depthOrder...)
	for _, id := range depth {
		e.drawNode(id)
	}

	linkIDs := append([]ID(nil), e.links.ids()...)
	for _, id := range linkIDs {
		e.drawLink(id)
	}

	if e.pointer.primaryPressed || e.pointer.panPressed {
		e.beginCanvasInteraction()
	}

	e.purge()

	e.sink.Add(RectStroke(e.canvasRect, 0, 1, e.style.Colors[ColorGridLine]))
}

// showNode implements NodeBuilder.Show: upsert, layout, content callbacks.
func (e *Editor) showNode(b *NodeBuilder) {
	node, created := e.nodes.getOrInsert(b.id, newNodeData)
	if created {
		if b.origin != nil {
			node.origin = *b.origin
		}
		e.depthOrder = append(e.depthOrder, b.id)
		logger().Debug("node created",
			"id", uint64(b.id), "x", node.origin.X, "y", node.origin.Y)
	}
	node.inUse = true
	if b.draggable != nil {
		node.draggable = *b.draggable
	}

	e.style.formatNode(node)
	node.backgroundShape = e.sink.Reserve()
	node.headerShapes[0] = e.sink.Reserve()
	node.headerShapes[1] = e.sink.Reserve()

	padding := node.layout.padding
	nodePos := e.gridToScreen(node.origin)
	cursor := nodePos
	content := Rect{Min: nodePos, Max: nodePos}
	headerRect := Rect{}

	if b.header != nil {
		resp := e.runContent(b.header, cursor)
		headerRect = resp.Rect
		content = content.Union(headerRect)
		cursor.Y = headerRect.Max.Y + padding.Y
	}
	cursor.Y += rowSpacing

	for _, attr := range b.attributes {
		resp := e.runContent(attr.content, cursor)
		content = content.Union(resp.Rect)
		e.addAttribute(attr.id, b.id, attr.kind, attr.pinArgs, resp)
		cursor.Y = resp.Rect.Max.Y + rowSpacing
	}

	node.rect = content.Expand(padding)
	node.size = node.rect.Size()
	node.headerRect = headerRect.Expand(padding)
	node.headerRect.Max.X = node.rect.Max.X

	if e.rawInput.PointerValid && node.rect.Contains(e.rawInput.Pointer) {
		e.nodesOverlappingPointer = append(e.nodesOverlappingPointer, b.id)
	}
}

// runContent invokes one content callback with a UI anchored at origin.
// A nil callback or an all-zero response degrades to an empty row at the
// cursor so layout stays well formed.
func (e *Editor) runContent(fn ContentFunc, origin Point) Response {
	if fn == nil {
		return Response{Rect: RectFromMinSize(origin, Point{})}
	}
	resp := fn(&UI{
		sink:         e.sink,
		origin:       origin,
		pointer:      e.rawInput.Pointer,
		pointerValid: e.rawInput.PointerValid,
		primaryDown:  e.rawInput.PrimaryDown,
	})
	if resp.Rect == (Rect{}) {
		resp.Rect = RectFromMinSize(origin, Point{})
	}
	return resp
}

func (e *Editor) addAttribute(pinID, nodeID ID, kind PinKind, args PinArgs, resp Response) {
	if kind != PinKindNone {
		pin, _ := e.pins.getOrInsert(pinID, func() *pinData { return &pinData{} })
		pin.inUse = true
		pin.parentNode = nodeID
		pin.kind = kind
		pin.contentRect = resp.Rect
		e.style.formatPin(pin, args)
		e.nodes.get(nodeID).addPin(pinID)
	}

	if resp.Held {
		e.activeAttribute = pinID
		e.activeAttributeSet = true
		e.interactiveNode = nodeID
	}
}

// purge drops every entity that was not re-declared this frame and detaches
// purged nodes from the depth order. Kept nodes get their pin sets cleared;
// the next frame's declarations rebuild them.
func (e *Editor) purge() {
	e.nodes.retain(func(id ID, n *nodeData) bool {
		if n.inUse {
			n.pinIDs = n.pinIDs[:0]
			return true
		}
		for i, depthID := range e.depthOrder {
			if depthID == id {
				e.depthOrder = append(e.depthOrder[:i], e.depthOrder[i+1:]...)
				break
			}
		}
		logger().Debug("node purged", "id", uint64(id))
		return false
	})

	e.pins.retain(func(_ ID, p *pinData) bool { return p.inUse })
	e.links.retain(func(_ ID, l *linkData) bool { return l.inUse })
}

func (e *Editor) gridToScreen(v Point) Point {
	return v.Add(e.canvasRect.Min).Add(e.panning)
}

func (e *Editor) editorToScreen(v Point) Point {
	return v.Add(e.canvasRect.Min)
}

// pinScreenPosition resolves a pin's current screen position from its
// owning node. ok is false when the owner is missing.
func (e *Editor) pinScreenPosition(pin *pinData) (Point, bool) {
	parent := e.nodes.get(pin.parentNode)
	if parent == nil {
		return Point{}, false
	}
	return e.style.pinPosition(parent.rect, pin.contentRect, pin.kind), true
}

// linkCountForEndPin counts the links terminating at pin this frame,
// including the provisional link when it targets the same pin.
func (e *Editor) linkCountForEndPin(pin ID) int {
	count := len(e.endPinLinks[pin])
	if e.provisionalActive && e.provisionalEnd == pin && e.provisionalStart != pin {
		count++
	}
	return count
}

// linkIndexForEndPin returns the fan ordering index of linkID among all
// links sharing pin as their end pin: siblings sorted by descending
// start-to-end angle, declaration order breaking ties. The provisional link
// participates under the nil id. startPos is the queried link's start pin
// position.
func (e *Editor) linkIndexForEndPin(pin, linkID ID, startPos Point) (int, bool) {
	endPin := e.pins.get(pin)
	if endPin == nil {
		return 0, false
	}
	siblings, ok := e.endPinLinks[pin]
	if !ok {
		return 0, false
	}

	type linkAngle struct {
		id    ID
		angle float64
	}
	angles := make([]linkAngle, 0, len(siblings)+2)

	for _, id := range siblings {
		if id == linkID {
			continue
		}
		link := e.links.get(id)
		if link == nil {
			continue
		}
		start := e.pins.get(link.startPin)
		if start == nil {
			continue
		}
		angles = append(angles, linkAngle{id, endPin.pos.Sub(start.pos).Angle()})
	}
	angles = append(angles, linkAngle{linkID, endPin.pos.Sub(startPos).Angle()})

	if e.provisionalActive && e.provisionalEnd == pin && e.provisionalStart != pin {
		if start := e.pins.get(e.provisionalStart); start != nil {
			angles = append(angles, linkAngle{NilID, endPin.pos.Sub(start.pos).Angle()})
		}
	}

	sort.SliceStable(angles, func(i, j int) bool {
		return angles[i].angle > angles[j].angle
	})

	for i, a := range angles {
		if a.id == linkID {
			return i, true
		}
	}
	return 0, false
}

// findDuplicateLink returns the live link with the given ordered pin pair.
func (e *Editor) findDuplicateLink(startPin, endPin ID) ID {
	found := NilID
	e.links.each(func(id ID, l *linkData) {
		if found == NilID && l.inUse && l.startPin == startPin && l.endPin == endPin {
			found = id
		}
	})
	return found
}
