package nodes

import (
	"math"
	"testing"
)

func TestCubicBez_Eval(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(10, 0), P2: Pt(20, 10), P3: Pt(30, 10)}

	if got := c.Eval(0); !got.Approx(c.P0) {
		t.Errorf("Eval(0) = %v, want %v", got, c.P0)
	}
	if got := c.Eval(1); !got.Approx(c.P3) {
		t.Errorf("Eval(1) = %v, want %v", got, c.P3)
	}
	// Midpoint of a cubic: (P0 + 3P1 + 3P2 + P3) / 8.
	want := Pt(15, 5)
	if got := c.Eval(0.5); !got.Approx(want) {
		t.Errorf("Eval(0.5) = %v, want %v", got, want)
	}
}

func TestNewLinkCurve_Orientation(t *testing.T) {
	out := Pt(0, 0)
	in := Pt(100, 0)

	// Dragging from the output pin keeps the endpoints as given.
	lc := newLinkCurve(out, in, PinKindOutput, 0.1)
	if lc.Bezier.Start() != out || lc.Bezier.End() != in {
		t.Errorf("output-start curve runs %v -> %v, want %v -> %v",
			lc.Bezier.Start(), lc.Bezier.End(), out, in)
	}

	// Dragging from the input pin swaps them so the curve still exits the
	// output side.
	lc = newLinkCurve(in, out, PinKindInput, 0.1)
	if lc.Bezier.Start() != out || lc.Bezier.End() != in {
		t.Errorf("input-start curve runs %v -> %v, want %v -> %v",
			lc.Bezier.Start(), lc.Bezier.End(), out, in)
	}

	// Control points sit a quarter of the length along x from each end.
	if want := Pt(25, 0); !lc.Bezier.P1.Approx(want) {
		t.Errorf("P1 = %v, want %v", lc.Bezier.P1, want)
	}
	if want := Pt(75, 0); !lc.Bezier.P2.Approx(want) {
		t.Errorf("P2 = %v, want %v", lc.Bezier.P2, want)
	}
}

func TestNewLinkCurve_Segments(t *testing.T) {
	tests := []struct {
		name       string
		start, end Point
		perLength  float64
		expect     int
	}{
		{"scales with length", Pt(0, 0), Pt(100, 0), 0.1, 10},
		{"never below one", Pt(0, 0), Pt(3, 0), 0.1, 1},
		{"zero length", Pt(5, 5), Pt(5, 5), 0.1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := newLinkCurve(tt.start, tt.end, PinKindOutput, tt.perLength)
			if lc.Segments != tt.expect {
				t.Errorf("Segments = %d, want %d", lc.Segments, tt.expect)
			}
			if got := len(lc.Flatten()); got != tt.expect+1 {
				t.Errorf("Flatten length = %d, want %d", got, tt.expect+1)
			}
		})
	}
}

func TestLinkCurve_DistanceTo(t *testing.T) {
	// A horizontal curve between two pins at the same height flattens to a
	// straight line, so distances are easy to verify.
	lc := newLinkCurve(Pt(0, 0), Pt(100, 0), PinKindOutput, 0.1)

	tests := []struct {
		name   string
		p      Point
		expect float64
	}{
		{"on the curve", Pt(50, 0), 0},
		{"above midpoint", Pt(50, 10), 10},
		{"past the end", Pt(110, 0), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lc.DistanceTo(tt.p); math.Abs(got-tt.expect) > 1e-9 {
				t.Errorf("DistanceTo(%v) = %v, want %v", tt.p, got, tt.expect)
			}
		})
	}
}

func TestLinkCurve_OverlapsRect(t *testing.T) {
	lc := newLinkCurve(Pt(0, 0), Pt(100, 0), PinKindOutput, 0.1)

	tests := []struct {
		name   string
		r      Rect
		expect bool
	}{
		{"contains endpoint", NewRect(Pt(-5, -5), Pt(5, 5)), true},
		{"crosses middle", NewRect(Pt(40, -5), Pt(60, 5)), true},
		{"above the curve", NewRect(Pt(40, 5), Pt(60, 20)), false},
		{"disjoint", NewRect(Pt(200, 200), Pt(300, 300)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lc.OverlapsRect(tt.r); got != tt.expect {
				t.Errorf("OverlapsRect(%v) = %v, want %v", tt.r, got, tt.expect)
			}
		})
	}
}
