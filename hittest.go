package nodes

import "math"

// resolveOccludedPins marks every pin whose resolved position lies inside
// the body of a node higher in the depth order. Occluded pins are excluded
// from hover so pins of buried nodes cannot be grabbed through the node on
// top of them.
func (e *Editor) resolveOccludedPins() {
	e.occludedPins = e.occludedPins[:0]

	if len(e.depthOrder) < 2 {
		return
	}

	for depthIdx := 0; depthIdx < len(e.depthOrder)-1; depthIdx++ {
		below := e.nodes.get(e.depthOrder[depthIdx])
		if below == nil {
			continue
		}
		for _, aboveID := range e.depthOrder[depthIdx+1:] {
			above := e.nodes.get(aboveID)
			if above == nil {
				continue
			}
			for _, pinID := range below.pinIDs {
				pin := e.pins.get(pinID)
				if pin == nil {
					continue
				}
				if above.rect.Contains(pin.pos) {
					e.occludedPins = append(e.occludedPins, pinID)
				}
			}
		}
	}
}

// resolveHoveredPin picks the non-occluded pin closest to the pointer
// within the hover radius. Pin positions are the ones resolved by the
// previous frame's layout pass. The first pin found wins distance ties.
func (e *Editor) resolveHoveredPin() {
	e.hoveredPin = NilID
	smallest := math.MaxFloat64
	hoverRadiusSq := e.style.PinHoverRadius * e.style.PinHoverRadius

	e.pins.each(func(id ID, pin *pinData) {
		if e.pinOccluded(id) {
			return
		}
		distSq := pin.pos.DistanceSquared(e.pointer.pos)
		if distSq < hoverRadiusSq && distSq < smallest {
			smallest = distSq
			e.hoveredPin = id
		}
	})
}

func (e *Editor) pinOccluded(id ID) bool {
	for _, occluded := range e.occludedPins {
		if occluded == id {
			return true
		}
	}
	return false
}

// resolveHoveredNode picks the hovered node from the nodes whose rect
// contains the pointer: the single candidate when there is one, otherwise
// the candidate highest in the depth order.
func (e *Editor) resolveHoveredNode() {
	switch len(e.nodesOverlappingPointer) {
	case 0:
		e.hoveredNode = NilID
	case 1:
		e.hoveredNode = e.nodesOverlappingPointer[0]
	default:
		largestDepth := -1
		for _, id := range e.nodesOverlappingPointer {
			for depthIdx, depthID := range e.depthOrder {
				if depthID == id && depthIdx > largestDepth {
					largestDepth = depthIdx
					e.hoveredNode = id
				}
			}
		}
	}
}

// resolveHoveredLink picks the live link whose fan-adjusted curve passes
// closest to the pointer, within the link hover distance. Links with a
// purged endpoint are skipped.
func (e *Editor) resolveHoveredLink() {
	e.hoveredLink = NilID
	smallest := math.MaxFloat64

	for _, linkID := range e.links.ids() {
		link := e.links.get(linkID)
		startPin := e.pins.get(link.startPin)
		endPin := e.pins.get(link.endPin)
		if startPin == nil || endPin == nil {
			continue
		}

		count := e.linkCountForEndPin(link.endPin)
		idx, _ := e.linkIndexForEndPin(link.endPin, linkID, startPin.pos)

		endPos := endPin.pos
		if e.hoveredPin == link.endPin && count > 1 {
			endPos = e.style.linkEndPos(endPin.pos, e.pointer.pos, count, idx)
		}

		curve := newLinkCurve(startPin.pos, endPos, startPin.kind, e.style.LinkSegmentsPerLength)
		distance := curve.DistanceTo(e.pointer.pos)

		if distance < e.style.LinkHoverDistance && distance < smallest {
			smallest = distance
			e.hoveredLink = linkID
		}
	}
}
