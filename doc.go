// Package nodes provides an immediate-mode node-graph canvas engine for Go.
//
// # Overview
//
// nodes is a pure Go node editor core in the GoGPU ecosystem. The host
// declares its graph every frame — nodes with input/output pins, and the
// links between them — and the engine performs hit-testing, drives the
// pointer interaction state machine (selection, dragging, box-select, link
// creation and detach, panning) and produces an ordered list of drawing
// primitives. Anything not re-declared in a frame is purged at the end of
// that frame, so the visible graph is always exactly what the host last
// declared.
//
// # Quick Start
//
//	import "github.com/gogpu/nodes"
//
//	ed := nodes.NewEditor()
//	list := nodes.NewDisplayList()
//
//	// Every frame:
//	list.Reset()
//	ed.BeginFrame(canvas, input, list)
//	ed.Node(1).
//		Header(titleFn).
//		Output(10, nodes.PinArgs{}, rowFn).
//		Show()
//	ed.Node(2).
//		Header(titleFn).
//		Input(20, nodes.PinArgs{}, rowFn).
//		Show()
//	ed.Link(100, 10, 20, nodes.LinkArgs{})
//	ed.EndFrame()
//
//	if created, ok := ed.CreatedLink(); ok {
//		// commit the connection in the host model
//	}
//
// The engine owns no windowing, text shaping or GPU state: the host supplies
// pointer input, renders row/header content through callbacks, and consumes
// the resulting display list with any renderer it likes. The raster
// subpackage ships a small CPU rasterizer for headless output and tests.
//
// # Architecture
//
// The library is organized into:
//   - Entities: id-keyed node/pin/link stores with per-frame liveness
//   - Geometry: cubic link curves, polyline distance, fan-out placement
//   - Interaction: hit-testing and the click-interaction state machine
//   - Style: role-indexed colors and metrics, TOML theme presets
//   - Paint: ordered display list with reserved back-to-front slots
package nodes
