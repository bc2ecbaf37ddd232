package nodes

// Query methods report the interaction results of the last completed frame.
// All of them are meant to be polled between EndFrame and the next
// BeginFrame.

// HoveredNode returns the node under the pointer, if any.
func (e *Editor) HoveredNode() (ID, bool) {
	return e.hoveredNode, e.hoveredNode != NilID
}

// HoveredLink returns the link under the pointer, if any.
func (e *Editor) HoveredLink() (ID, bool) {
	return e.hoveredLink, e.hoveredLink != NilID
}

// HoveredPin returns the pin under the pointer, if any.
func (e *Editor) HoveredPin() (ID, bool) {
	return e.hoveredPin, e.hoveredPin != NilID
}

// SelectedNodes returns the current node selection. The slice is shared
// with the editor; callers must not mutate it.
func (e *Editor) SelectedNodes() []ID {
	return e.selectedNodes
}

// SelectedLinks returns the current link selection. The slice is shared
// with the editor; callers must not mutate it.
func (e *Editor) SelectedLinks() []ID {
	return e.selectedLinks
}

// ClearNodeSelection empties the node selection.
func (e *Editor) ClearNodeSelection() {
	e.selectedNodes = e.selectedNodes[:0]
}

// ClearLinkSelection empties the link selection.
func (e *Editor) ClearLinkSelection() {
	e.selectedLinks = e.selectedLinks[:0]
}

// ActiveAttribute returns the attribute the pointer is pressing, as
// reported by a content callback's Response.Held this frame.
func (e *Editor) ActiveAttribute() (ID, bool) {
	if !e.activeAttributeSet {
		return NilID, false
	}
	return e.activeAttribute, true
}

// StartedLinkPin returns the pin a link-creation drag started from this
// frame, if one started.
func (e *Editor) StartedLinkPin() (ID, bool) {
	if e.stateChange&stateLinkStarted == 0 {
		return NilID, false
	}
	return e.linkCreation.startPin, true
}

// CreatedLink reports a link committed this frame. The pin pair is
// canonicalized so Start is the output pin. ViaSnap is true when the link
// was committed by proximity snapping while the drag is still in progress.
func (e *Editor) CreatedLink() (CreatedLink, bool) {
	if e.stateChange&stateLinkCreated == 0 {
		return CreatedLink{}, false
	}

	start := e.linkCreation.startPin
	end := e.linkCreation.endPin

	if pin := e.pins.get(start); pin != nil && pin.kind != PinKindOutput {
		start, end = end, start
	}

	return CreatedLink{
		Start:   start,
		End:     end,
		ViaSnap: e.interaction == interactionLinkCreation,
	}, true
}

// DroppedLink reports a creation drag released without a valid snap this
// frame. The returned id is the originally detached link when the drag
// began as a detach, and NilID for a drag that started fresh from a pin.
func (e *Editor) DroppedLink() (ID, bool) {
	return e.droppedLink, e.stateChange&stateLinkDropped != 0
}

// DetachedLink returns the link detached this frame, if any. Detached
// links stop drawing immediately; the host decides whether to re-declare
// them next frame.
func (e *Editor) DetachedLink() (ID, bool) {
	return e.detachedLink, e.detachedLink != NilID
}

// Panning returns the accumulated pan offset.
func (e *Editor) Panning() Point {
	return e.panning
}

// SetPanning resets the pan offset.
func (e *Editor) SetPanning(p Point) {
	e.panning = p
}

// NodePos returns a node's grid-space origin.
func (e *Editor) NodePos(id ID) (Point, bool) {
	node := e.nodes.get(id)
	if node == nil {
		return Point{}, false
	}
	return node.origin, true
}

// NodeSize returns a node's laid-out size.
func (e *Editor) NodeSize(id ID) (Point, bool) {
	node := e.nodes.get(id)
	if node == nil {
		return Point{}, false
	}
	return node.rect.Size(), true
}

// NodeScreenRect returns a node's screen-space rect as of the last layout.
func (e *Editor) NodeScreenRect(id ID) (Rect, bool) {
	node := e.nodes.get(id)
	if node == nil {
		return Rect{}, false
	}
	return node.rect, true
}
