package nodes

// interactionUpdate steps the active click interaction once per frame,
// after pin/node hover resolution and before drawing.
func (e *Editor) interactionUpdate() {
	switch e.interaction {
	case interactionBoxSelection:
		e.boxRect.Max = e.pointer.pos
		rect := e.boxSelectorUpdateSelection()

		e.sink.Add(RectFilled(rect, 0, e.style.Colors[ColorBoxSelector]))
		e.sink.Add(RectStroke(rect, 0, 1, e.style.Colors[ColorBoxSelectorOutline]))

		if e.pointer.primaryReleased {
			// Selected nodes move to the front of the depth order,
			// keeping their relative order to each other.
			var selected []ID
			kept := e.depthOrder[:0]
			for _, id := range e.depthOrder {
				if containsID(e.selectedNodes, id) {
					selected = append(selected, id)
				} else {
					kept = append(kept, id)
				}
			}
			e.depthOrder = append(kept, selected...)
			e.interaction = interactionNone
		}

	case interactionNode:
		e.translateSelectedNodes()
		if e.pointer.primaryReleased {
			e.interaction = interactionNone
		}

	case interactionLink:
		if e.pointer.primaryReleased {
			e.interaction = interactionNone
		}

	case interactionLinkCreation:
		e.linkCreationUpdate()

	case interactionPanning:
		if e.pointer.panDragging || e.pointer.panPressed {
			e.panning = e.panning.Add(e.pointer.delta)
		} else {
			e.interaction = interactionNone
		}

	case interactionNone:
	}
}

// linkCreationUpdate advances an in-progress link drag: it re-evaluates the
// snap target, handles snap-target changes (which detach a link committed
// on snap), draws the provisional curve, and commits or drops on release.
func (e *Editor) linkCreationUpdate() {
	duplicate := NilID
	if e.hoveredPin != NilID {
		duplicate = e.findDuplicateLink(e.linkCreation.startPin, e.hoveredPin)
	}

	shouldSnap := false
	if e.hoveredPin != NilID {
		if startPin := e.pins.get(e.linkCreation.startPin); startPin != nil {
			shouldSnap = e.shouldLinkSnapToPin(startPin, e.hoveredPin, duplicate)
		}
	}

	snappingPinChanged := e.linkCreation.endPin != NilID &&
		e.hoveredPin != e.linkCreation.endPin
	if snappingPinChanged && e.snapLink != NilID {
		e.beginLinkDetach(e.snapLink, e.linkCreation.endPin)
	}

	startPin := e.pins.get(e.linkCreation.startPin)
	if startPin == nil {
		// The start pin was purged mid-drag; abandon the gesture.
		e.interaction = interactionNone
		return
	}
	startPos, ok := e.pinScreenPosition(startPin)
	if !ok {
		e.interaction = interactionNone
		return
	}

	e.provisionalStart = e.linkCreation.startPin
	e.provisionalEnd = e.hoveredPin
	e.provisionalActive = true

	endPos := e.pointer.pos
	if shouldSnap {
		hovered := e.pins.get(e.hoveredPin)
		if pinPos, ok := e.pinScreenPosition(hovered); ok {
			count := e.linkCountForEndPin(e.hoveredPin)
			idx, _ := e.linkIndexForEndPin(e.hoveredPin, NilID, startPos)
			if count > 1 {
				endPos = e.style.linkEndPos(pinPos, e.pointer.pos, count, idx)
			} else {
				endPos = pinPos
			}
		}
	}

	curve := newLinkCurve(startPos, endPos, startPin.kind, e.style.LinkSegmentsPerLength)
	e.sink.Add(Polyline(curve.Flatten(), e.style.LinkThickness, e.style.Colors[ColorLink]))

	linkCreationOnSnap := false
	if hovered := e.pins.get(e.hoveredPin); hovered != nil {
		linkCreationOnSnap = hovered.linkCreationOnSnap()
	}

	if !shouldSnap {
		e.linkCreation.endPin = NilID
	}

	createLink := shouldSnap && (e.pointer.primaryReleased || linkCreationOnSnap)

	if createLink && duplicate == NilID {
		// A snap-commit pin only fires once per target; staying snapped to
		// the same pin must not re-create the link every frame.
		if !e.pointer.primaryReleased && e.linkCreation.endPin == e.hoveredPin {
			return
		}
		e.stateChange |= stateLinkCreated
		e.linkCreation.endPin = e.hoveredPin
	}

	if e.pointer.primaryReleased {
		e.interaction = interactionNone
		if !createLink {
			e.stateChange |= stateLinkDropped
			if e.linkCreation.kind == linkCreationFromDetach {
				e.droppedLink = e.linkCreation.detachedLink
			}
		}
	}
}

// shouldLinkSnapToPin decides snap eligibility for the hovered pin: the
// kinds must differ, the owning nodes must differ, and any duplicate
// committed link between the pair must be the one currently being
// re-snapped into.
func (e *Editor) shouldLinkSnapToPin(startPin *pinData, hoveredPinID, duplicate ID) bool {
	endPin := e.pins.get(hoveredPinID)
	if endPin == nil {
		return false
	}
	if startPin.parentNode == endPin.parentNode {
		return false
	}
	if startPin.kind == endPin.kind {
		return false
	}
	if duplicate != NilID && duplicate != e.snapLink {
		return false
	}
	return true
}

// boxSelectorUpdateSelection recomputes both selection sets from the
// current drag rectangle: nodes by rect intersection, links by curve
// overlap.
func (e *Editor) boxSelectorUpdateSelection() Rect {
	box := e.boxRect.Normalized()

	e.selectedNodes = e.selectedNodes[:0]
	e.nodes.each(func(id ID, n *nodeData) {
		if n.inUse && box.Intersects(n.rect) {
			e.selectedNodes = append(e.selectedNodes, id)
		}
	})

	e.selectedLinks = e.selectedLinks[:0]
	e.links.each(func(id ID, l *linkData) {
		if !l.inUse {
			return
		}
		startPin := e.pins.get(l.startPin)
		endPin := e.pins.get(l.endPin)
		if startPin == nil || endPin == nil {
			return
		}
		start, ok1 := e.pinScreenPosition(startPin)
		end, ok2 := e.pinScreenPosition(endPin)
		if !ok1 || !ok2 {
			return
		}
		if e.rectangleOverlapsLink(box, start, end, startPin.kind) {
			e.selectedLinks = append(e.selectedLinks, id)
		}
	})

	return box
}

func (e *Editor) rectangleOverlapsLink(rect Rect, start, end Point, startKind PinKind) bool {
	if !rect.Intersects(NewRect(start, end)) {
		return false
	}
	if rect.Contains(start) || rect.Contains(end) {
		return true
	}
	curve := newLinkCurve(start, end, startKind, e.style.LinkSegmentsPerLength)
	return curve.OverlapsRect(rect)
}

// translateSelectedNodes moves every draggable selected node by the frame's
// pointer delta while the drag is active.
func (e *Editor) translateSelectedNodes() {
	if !e.pointer.primaryDragging {
		return
	}
	for _, id := range e.selectedNodes {
		node := e.nodes.get(id)
		if node != nil && node.draggable {
			node.origin = node.origin.Add(e.pointer.delta)
		}
	}
}

// beginCanvasInteraction starts panning or box selection when the press
// landed on empty canvas.
func (e *Editor) beginCanvasInteraction() {
	anyHovered := e.hoveredNode != NilID || e.hoveredLink != NilID || e.hoveredPin != NilID
	if e.interaction != interactionNone || anyHovered || !e.pointer.inCanvas {
		return
	}

	if e.pointer.panPressed {
		e.interaction = interactionPanning
	} else {
		e.interaction = interactionBoxSelection
		e.boxRect = Rect{Min: e.pointer.pos, Max: e.pointer.pos}
	}
}

// beginNodeSelection starts a node drag. Pressing a node outside the
// current multi-selection collapses the selection to that node and raises
// it to the front of the depth order.
func (e *Editor) beginNodeSelection(id ID) {
	if e.interaction != interactionNone {
		return
	}
	e.interaction = interactionNode

	if !containsID(e.selectedNodes, id) {
		e.selectedNodes = e.selectedNodes[:0]
		e.selectedLinks = e.selectedLinks[:0]
		e.selectedNodes = append(e.selectedNodes, id)

		for i, depthID := range e.depthOrder {
			if depthID == id {
				e.depthOrder = append(e.depthOrder[:i], e.depthOrder[i+1:]...)
				break
			}
		}
		e.depthOrder = append(e.depthOrder, id)
	}
}

// beginLinkInteraction dispatches a press on a hovered link: a nested
// detach when a link creation is already running from a detach-on-drag
// pin, a detach at the nearer endpoint when the detach modifier is held,
// or plain link selection.
func (e *Editor) beginLinkInteraction(id ID) {
	link := e.links.get(id)
	if link == nil {
		return
	}

	switch {
	case e.interaction == interactionLinkCreation:
		if e.hoveredPinFlags&PinDetachOnDrag != 0 {
			e.beginLinkDetach(id, e.hoveredPin)
			e.linkCreation.detachedLink = id
			e.linkCreation.kind = linkCreationFromDetach
		}

	case e.pointer.detachModifier:
		startPin := e.pins.get(link.startPin)
		endPin := e.pins.get(link.endPin)
		if startPin == nil || endPin == nil {
			e.beginLinkSelection(id)
			return
		}
		nearest := link.endPin
		if startPin.pos.Distance(e.pointer.pos) < endPin.pos.Distance(e.pointer.pos) {
			nearest = link.startPin
		}
		e.interaction = interactionLinkCreation
		e.beginLinkDetach(id, nearest)

	default:
		e.beginLinkSelection(id)
	}
}

// beginLinkDetach hides link id and restarts creation from the endpoint
// opposite detachPin.
func (e *Editor) beginLinkDetach(id, detachPin ID) {
	e.linkCreation.endPin = NilID

	link := e.links.get(id)
	if link == nil {
		return
	}
	if detachPin == link.startPin {
		e.linkCreation.startPin = link.endPin
	} else {
		e.linkCreation.startPin = link.startPin
	}
	e.detachedLink = id
}

// beginLinkCreation starts a standard creation drag from a pressed pin.
func (e *Editor) beginLinkCreation(pin ID) {
	e.interaction = interactionLinkCreation
	e.linkCreation.startPin = pin
	e.linkCreation.endPin = NilID
	e.linkCreation.kind = linkCreationStandard
	e.stateChange |= stateLinkStarted
}

// beginLinkSelection collapses the selection to the pressed link.
func (e *Editor) beginLinkSelection(id ID) {
	e.interaction = interactionLink
	e.selectedNodes = e.selectedNodes[:0]
	e.selectedLinks = e.selectedLinks[:0]
	e.selectedLinks = append(e.selectedLinks, id)
}

func containsID(ids []ID, id ID) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
