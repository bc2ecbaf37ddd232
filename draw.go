package nodes

import "math"

// drawGrid fills the canvas with the dotted background grid, offset by the
// current panning.
func (e *Editor) drawGrid() {
	size := e.canvasRect.Size()
	spacing := e.style.GridSpacing
	dot := e.style.Colors[ColorGridLine]

	for y := modEuclid(e.panning.Y, spacing); y < size.Y; y += spacing {
		for x := modEuclid(e.panning.X, spacing); x < size.X; x += spacing {
			e.sink.Add(CircleFilled(e.editorToScreen(Pt(x, y)), 2, dot))
		}
	}
}

// modEuclid returns a mod b with a result in [0, b).
func modEuclid(a, b float64) float64 {
	m := math.Mod(a, b)
	if m < 0 {
		m += b
	}
	return m
}

// drawNode fills the node's reserved background and header slots with the
// colors its hover/selection state resolves to, draws its pins, and starts
// a node drag if the node was just pressed.
func (e *Editor) drawNode(id ID) {
	node := e.nodes.get(id)
	if node == nil || !node.inUse {
		return
	}

	nodeHovered := e.hoveredNode == id && e.interaction != interactionBoxSelection

	background := node.colors.background
	header := node.colors.header
	if containsID(e.selectedNodes, id) {
		background = node.colors.backgroundSelected
		header = node.colors.headerSelected
	} else if nodeHovered {
		background = node.colors.backgroundHovered
		header = node.colors.headerHovered
	}

	if node.backgroundShape != noShape {
		e.sink.Set(node.backgroundShape,
			RectFilled(node.rect, node.layout.cornerRounding, background))
		node.backgroundShape = noShape
	}

	if node.headerRect.Height() > 0 {
		rounding := node.layout.cornerRounding

		// Rounded cap over the header's top edge, then the squared body
		// below it, so only the top corners appear rounded.
		if node.headerShapes[1] != noShape {
			capRect := RectFromMinSize(node.headerRect.Min,
				Pt(node.headerRect.Width(), rounding*2))
			e.sink.Set(node.headerShapes[1], RectFilled(capRect, rounding, header))
			node.headerShapes[1] = noShape
		}
		if node.headerShapes[0] != noShape {
			body := RectFromMinSize(node.headerRect.Min.Add(Pt(0, rounding)),
				node.headerRect.Size().Sub(Pt(0, rounding)))
			e.sink.Set(node.headerShapes[0], RectFilled(body, 0, header))
			node.headerShapes[0] = noShape
		}
	}

	pinIDs := append([]ID(nil), node.pinIDs...)
	for _, pinID := range pinIDs {
		e.drawPin(pinID)
	}

	if nodeHovered && e.pointer.primaryPressed && e.interactiveNode != id {
		e.beginNodeSelection(id)
	}
}

// drawPin resolves the pin's screen position for this frame, draws it
// (with the fan-out halo when hovered with multiple attached links), and
// starts a link creation if the pin was just pressed.
func (e *Editor) drawPin(id ID) {
	pin := e.pins.get(id)
	if pin == nil {
		return
	}
	pos, ok := e.pinScreenPosition(pin)
	if !ok {
		return
	}
	pin.pos = pos

	pinColor := pin.colors.background
	pinHovered := e.hoveredPin == id && e.interaction != interactionBoxSelection
	attachedLinks := e.linkCountForEndPin(id)

	if pinHovered {
		e.hoveredPinFlags = pin.flags
		pinColor = pin.colors.hovered

		if e.pointer.primaryPressed && (pin.isOutput() || e.hoveredLink != NilID) {
			e.beginLinkCreation(id)
		}
	}

	if pinHovered && attachedLinks > 1 {
		e.style.drawHoveredPin(e.sink, attachedLinks, pin.pos, e.pointer.pos, pin.shape, pinColor)
	} else {
		e.style.drawPin(e.sink, pin.pos, pin.shape, pinColor, e.style.PinCircleRadius)
	}
}

// drawLink fills the link's reserved slot with its fan-adjusted curve,
// dispatches a press on the hovered link, and hides links detached this
// frame. Links with a purged endpoint are skipped.
func (e *Editor) drawLink(id ID) {
	link := e.links.get(id)
	if link == nil || !link.inUse {
		return
	}
	startPin := e.pins.get(link.startPin)
	endPin := e.pins.get(link.endPin)
	if startPin == nil || endPin == nil {
		logger().Warn("link endpoints missing, skipping",
			"link", uint64(id), "start", uint64(link.startPin), "end", uint64(link.endPin))
		return
	}

	count := e.linkCountForEndPin(link.endPin)
	idx, _ := e.linkIndexForEndPin(link.endPin, id, startPin.pos)

	endPos := endPin.pos
	if e.hoveredPin == link.endPin && count > 1 {
		endPos = e.style.linkEndPos(endPin.pos, e.pointer.pos, count, idx)
	}

	curve := newLinkCurve(startPin.pos, endPos, startPin.kind, e.style.LinkSegmentsPerLength)

	shape := link.shape
	link.shape = noShape

	linkHovered := e.hoveredLink == id && e.interaction != interactionBoxSelection
	if linkHovered && e.pointer.primaryPressed {
		e.beginLinkInteraction(id)
	}

	if e.detachedLink == id {
		return
	}

	linkColor := link.colors.base
	if !e.provisionalActive {
		if containsID(e.selectedLinks, id) {
			linkColor = link.colors.selected
		} else if linkHovered {
			linkColor = link.colors.hovered
		}
	}

	if shape != noShape {
		e.sink.Set(shape, Polyline(curve.Flatten(), e.style.LinkThickness, linkColor))
	}
}
