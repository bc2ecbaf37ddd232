package nodes

import "testing"

// Shared fixture ids. The two-node graph used throughout the interaction
// tests is a source node with one output pin and a sink node with one or two
// input pins, laid out so the pin positions are easy to reason about:
//
//	source: origin (50,50), rect (42,42)-(158,106), output pin at (158,90)
//	sink:   origin (300,50), rect (292,42)-(408,106), input pin at (292,90)
const (
	nodeSource ID = 1
	nodeSink   ID = 2
	nodeThird  ID = 3
	pinOut     ID = 10
	pinOut2    ID = 11
	pinIn      ID = 20
	pinIn2     ID = 21
	attrStatic ID = 30
	linkMain   ID = 100
	linkSecond ID = 101
	headerW       = 100.0
	headerH       = 20.0
	rowW          = 100.0
	rowH          = 16.0
)

var (
	posPinOut = Pt(158, 90)
	posPinIn  = Pt(292, 90)
	posPinIn2 = Pt(292, 110)
	posEmpty  = Pt(500, 300)
)

func testCanvas() Rect {
	return NewRect(Pt(0, 0), Pt(800, 600))
}

func row(size Point) ContentFunc {
	return func(ui *UI) Response { return ui.Row(size) }
}

// runFrame executes one full frame against a fresh display list and returns
// it for inspection.
func runFrame(e *Editor, in Input, declare func(*Editor)) *DisplayList {
	list := NewDisplayList()
	e.BeginFrame(testCanvas(), in, list)
	if declare != nil {
		declare(e)
	}
	e.EndFrame()
	return list
}

func pointerAt(p Point) Input {
	return Input{Pointer: p, PointerValid: true}
}

func pressAt(p Point) Input {
	in := pointerAt(p)
	in.PrimaryDown = true
	return in
}

func declareSourceNode(e *Editor) {
	e.Node(nodeSource).Origin(Pt(50, 50)).
		Header(row(Pt(headerW, headerH))).
		Output(pinOut, PinArgs{}, row(Pt(rowW, rowH))).
		Show()
}

func declareSinkNode(e *Editor, args PinArgs) {
	e.Node(nodeSink).Origin(Pt(300, 50)).
		Header(row(Pt(headerW, headerH))).
		Input(pinIn, args, row(Pt(rowW, rowH))).
		Show()
}

// declareDualSinkNode is the sink with a second input row, whose pin sits at
// (292,110).
func declareDualSinkNode(e *Editor, args PinArgs) {
	e.Node(nodeSink).Origin(Pt(300, 50)).
		Header(row(Pt(headerW, headerH))).
		Input(pinIn, args, row(Pt(rowW, rowH))).
		Input(pinIn2, args, row(Pt(rowW, rowH))).
		Show()
}

func expectIDs(t *testing.T, what string, got, want []ID) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s = %v, want %v", what, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s = %v, want %v", what, got, want)
		}
	}
}

func TestEditor_NodeLayout(t *testing.T) {
	e := NewEditor()
	runFrame(e, Input{}, declareSourceNode)

	rect, ok := e.NodeScreenRect(nodeSource)
	if !ok {
		t.Fatal("node missing after frame")
	}
	want := NewRect(Pt(42, 42), Pt(158, 106))
	if !rect.Min.Approx(want.Min) || !rect.Max.Approx(want.Max) {
		t.Errorf("node rect = %v, want %v", rect, want)
	}

	size, _ := e.NodeSize(nodeSource)
	if !size.Approx(Pt(116, 64)) {
		t.Errorf("node size = %v, want (116, 64)", size)
	}

	pos, _ := e.NodePos(nodeSource)
	if !pos.Approx(Pt(50, 50)) {
		t.Errorf("node pos = %v, want (50, 50)", pos)
	}
}

func TestEditor_CanvasOffsetShiftsLayout(t *testing.T) {
	e := NewEditor()
	list := NewDisplayList()
	e.BeginFrame(NewRect(Pt(100, 100), Pt(900, 700)), Input{}, list)
	declareSourceNode(e)
	e.EndFrame()

	rect, _ := e.NodeScreenRect(nodeSource)
	want := NewRect(Pt(142, 142), Pt(258, 206))
	if !rect.Min.Approx(want.Min) || !rect.Max.Approx(want.Max) {
		t.Errorf("node rect = %v, want %v", rect, want)
	}
}

func TestEditor_DefaultOrigin(t *testing.T) {
	e := NewEditor()
	runFrame(e, Input{}, func(e *Editor) {
		e.Node(nodeSource).Header(row(Pt(headerW, headerH))).Show()
	})

	pos, ok := e.NodePos(nodeSource)
	if !ok || !pos.Approx(Pt(100, 100)) {
		t.Errorf("default origin = %v, %v; want (100, 100), true", pos, ok)
	}
}

func TestEditor_OriginOnlyAppliesOnCreation(t *testing.T) {
	e := NewEditor()
	runFrame(e, Input{}, declareSourceNode)
	runFrame(e, Input{}, func(e *Editor) {
		e.Node(nodeSource).Origin(Pt(700, 700)).
			Header(row(Pt(headerW, headerH))).
			Output(pinOut, PinArgs{}, row(Pt(rowW, rowH))).
			Show()
	})

	pos, _ := e.NodePos(nodeSource)
	if !pos.Approx(Pt(50, 50)) {
		t.Errorf("origin after re-declaration = %v, want (50, 50)", pos)
	}
}

func TestEditor_PurgesUndeclaredEntities(t *testing.T) {
	e := NewEditor()
	declareAll := func(e *Editor) {
		declareSourceNode(e)
		declareSinkNode(e, PinArgs{})
		e.Link(linkMain, pinOut, pinIn, LinkArgs{})
	}
	runFrame(e, Input{}, declareAll)

	if _, ok := e.NodePos(nodeSink); !ok {
		t.Fatal("sink missing after declaration frame")
	}

	// Drop the sink and the link from the declarations.
	runFrame(e, Input{}, declareSourceNode)

	if _, ok := e.NodePos(nodeSink); ok {
		t.Error("sink survived a frame it was not declared in")
	}
	if e.pins.has(pinIn) {
		t.Error("sink pin survived the purge")
	}
	if e.links.has(linkMain) {
		t.Error("link survived the purge")
	}
	expectIDs(t, "depth order", e.depthOrder, []ID{nodeSource})

	// The surviving node keeps working on the following frame.
	runFrame(e, Input{}, declareSourceNode)
	if _, ok := e.NodePos(nodeSource); !ok {
		t.Error("source node lost after purge of its neighbor")
	}
}

func TestEditor_ActiveAttribute(t *testing.T) {
	e := NewEditor()
	declare := func(e *Editor) {
		e.Node(nodeSource).Origin(Pt(50, 50)).
			Header(row(Pt(headerW, headerH))).
			Static(attrStatic, row(Pt(rowW, rowH))).
			Show()
	}
	runFrame(e, Input{}, declare)

	// Press inside the static row: the attribute reports held and the node
	// must not start dragging underneath it.
	runFrame(e, pressAt(Pt(100, 90)), declare)

	id, ok := e.ActiveAttribute()
	if !ok || id != attrStatic {
		t.Fatalf("ActiveAttribute = %v, %v; want %v, true", id, ok, attrStatic)
	}

	runFrame(e, pressAt(Pt(130, 120)), declare)
	pos, _ := e.NodePos(nodeSource)
	if !pos.Approx(Pt(50, 50)) {
		t.Errorf("node moved while an attribute was held: pos = %v", pos)
	}

	runFrame(e, pointerAt(Pt(130, 120)), declare)
	if _, ok := e.ActiveAttribute(); ok {
		t.Error("ActiveAttribute still set after release")
	}
}

func TestEditor_LinkFanOrdering(t *testing.T) {
	e := NewEditor()
	declare := func(e *Editor) {
		e.Node(nodeSource).Origin(Pt(50, 50)).
			Header(row(Pt(headerW, headerH))).
			Output(pinOut, PinArgs{}, row(Pt(rowW, rowH))).
			Output(pinOut2, PinArgs{}, row(Pt(rowW, rowH))).
			Show()
		declareSinkNode(e, PinArgs{})
		e.Link(linkMain, pinOut, pinIn, LinkArgs{})
		e.Link(linkSecond, pinOut2, pinIn, LinkArgs{})
	}
	// Two frames so pin positions are resolved before ordering is queried.
	runFrame(e, Input{}, declare)
	runFrame(e, Input{}, declare)

	if got := e.linkCountForEndPin(pinIn); got != 2 {
		t.Fatalf("link count for shared pin = %d, want 2", got)
	}

	// The upper output connects at a larger start-to-end angle, so its link
	// fans out first.
	upper := e.pins.get(pinOut)
	lower := e.pins.get(pinOut2)
	if idx, ok := e.linkIndexForEndPin(pinIn, linkMain, upper.pos); !ok || idx != 0 {
		t.Errorf("upper link fan index = %d, %v; want 0, true", idx, ok)
	}
	if idx, ok := e.linkIndexForEndPin(pinIn, linkSecond, lower.pos); !ok || idx != 1 {
		t.Errorf("lower link fan index = %d, %v; want 1, true", idx, ok)
	}
}

func TestEditor_LinkFanIncludesProvisional(t *testing.T) {
	const (
		nodeDrag  = ID(4)
		pinOut3   = ID(12)
		pinDrag   = ID(13)
		linkThird = ID(102)
	)
	// The drag node sits above the sink, so its pin lands at (428,20) and
	// an in-flight link from it comes into the shared input from above.
	posPinDrag := Pt(428, 20)

	e := NewEditor()
	declare := func(e *Editor) {
		e.Node(nodeSource).Origin(Pt(50, 50)).
			Header(row(Pt(headerW, headerH))).
			Output(pinOut, PinArgs{}, row(Pt(rowW, rowH))).
			Output(pinOut2, PinArgs{}, row(Pt(rowW, rowH))).
			Output(pinOut3, PinArgs{}, row(Pt(rowW, rowH))).
			Show()
		declareSinkNode(e, PinArgs{})
		e.Node(nodeDrag).Origin(Pt(320, -20)).
			Header(row(Pt(headerW, headerH))).
			Output(pinDrag, PinArgs{}, row(Pt(rowW, rowH))).
			Show()
		e.Link(linkMain, pinOut, pinIn, LinkArgs{})
		e.Link(linkSecond, pinOut2, pinIn, LinkArgs{})
		e.Link(linkThird, pinOut3, pinIn, LinkArgs{})
	}
	runFrame(e, pointerAt(posEmpty), declare)

	runFrame(e, pressAt(posPinDrag), declare)
	if pin, ok := e.StartedLinkPin(); !ok || pin != pinDrag {
		t.Fatalf("StartedLinkPin = %v, %v; want %v, true", pin, ok, pinDrag)
	}

	// Hold the in-flight link snapped over the shared input: it joins the
	// fan alongside the three committed links.
	runFrame(e, pressAt(posPinIn), declare)
	if _, ok := e.CreatedLink(); ok {
		t.Fatal("link created while still held")
	}
	if got := e.linkCountForEndPin(pinIn); got != 4 {
		t.Fatalf("link count for shared pin = %d, want 4", got)
	}

	// The in-flight link approaches from above with the largest
	// start-to-end angle, taking the first fan slot and pushing each
	// committed link down one.
	if idx, ok := e.linkIndexForEndPin(pinIn, NilID, e.pins.get(pinDrag).pos); !ok || idx != 0 {
		t.Errorf("in-flight link fan index = %d, %v; want 0, true", idx, ok)
	}
	committed := []struct {
		link  ID
		start ID
		want  int
	}{
		{linkMain, pinOut, 1},
		{linkSecond, pinOut2, 2},
		{linkThird, pinOut3, 3},
	}
	for _, c := range committed {
		idx, ok := e.linkIndexForEndPin(pinIn, c.link, e.pins.get(c.start).pos)
		if !ok || idx != c.want {
			t.Errorf("link %v fan index = %d, %v; want %d, true", c.link, idx, ok, c.want)
		}
	}

	// Release commits the fourth link.
	runFrame(e, pointerAt(posPinIn), declare)
	created, ok := e.CreatedLink()
	if !ok {
		t.Fatal("no link created on release over input pin")
	}
	want := CreatedLink{Start: pinDrag, End: pinIn, ViaSnap: false}
	if created != want {
		t.Errorf("CreatedLink = %+v, want %+v", created, want)
	}
}

func TestEditor_FrameChrome(t *testing.T) {
	e := NewEditor()
	list := runFrame(e, Input{}, nil)

	shapes := list.Shapes()
	if len(shapes) < 2 {
		t.Fatal("frame produced no chrome shapes")
	}

	bg := shapes[0]
	if bg.Kind != ShapeRectFilled || bg.Rect != testCanvas() {
		t.Errorf("first shape = %+v, want canvas background fill", bg)
	}
	if bg.Color != e.Style().Colors[ColorGridBackground] {
		t.Errorf("background color = %v, want %v", bg.Color, e.Style().Colors[ColorGridBackground])
	}

	outline := shapes[len(shapes)-1]
	if outline.Kind != ShapeRectStroke || outline.Rect != testCanvas() {
		t.Errorf("last shape = %+v, want canvas outline", outline)
	}

	dots := 0
	for _, s := range shapes {
		if s.Kind == ShapeCircleFilled {
			dots++
		}
	}
	if dots == 0 {
		t.Error("no grid dots drawn with grid enabled")
	}

	// Disabling the grid flag removes the dots.
	st := DefaultStyle()
	st.Flags = 0
	plain := NewEditor(WithStyle(st))
	list = runFrame(plain, Input{}, nil)
	for _, s := range list.Shapes() {
		if s.Kind == ShapeCircleFilled {
			t.Fatal("grid dots drawn with grid disabled")
		}
	}
}
