package raster

import (
	"image/color"
	"testing"

	"github.com/gogpu/nodes"
)

var (
	red  = color.NRGBA{255, 0, 0, 255}
	blue = color.NRGBA{0, 0, 255, 255}
)

func pixel(t *testing.T, r *Renderer, list *nodes.DisplayList, x, y int) color.RGBA {
	t.Helper()
	img := r.Render(list)
	return img.RGBAAt(x, y)
}

func TestRender_FilledRect(t *testing.T) {
	r := New(100, 100)
	list := nodes.NewDisplayList()
	list.Add(nodes.RectFilled(nodes.NewRect(nodes.Pt(10, 10), nodes.Pt(50, 50)), 0, red))

	img := r.Render(list)

	tests := []struct {
		name   string
		x, y   int
		inside bool
	}{
		{"center", 30, 30, true},
		{"near min corner", 12, 12, true},
		{"outside left", 5, 30, false},
		{"outside below", 30, 60, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := img.RGBAAt(tt.x, tt.y)
			if tt.inside && got.R == 0 {
				t.Errorf("pixel (%d,%d) = %v, want filled", tt.x, tt.y, got)
			}
			if !tt.inside && got.R != 0 {
				t.Errorf("pixel (%d,%d) = %v, want empty", tt.x, tt.y, got)
			}
		})
	}
}

func TestRender_RoundedRectClipsCorner(t *testing.T) {
	r := New(100, 100)
	list := nodes.NewDisplayList()
	list.Add(nodes.RectFilled(nodes.NewRect(nodes.Pt(10, 10), nodes.Pt(50, 50)), 10, red))

	img := r.Render(list)

	// The corner pixel lies outside the rounding arc; the center does not.
	if got := img.RGBAAt(11, 11); got.R != 0 {
		t.Errorf("rounded corner pixel = %v, want empty", got)
	}
	if got := img.RGBAAt(30, 30); got.R == 0 {
		t.Errorf("center pixel = %v, want filled", got)
	}
}

func TestRender_RoundedRectStroke(t *testing.T) {
	r := New(100, 100)
	rect := nodes.NewRect(nodes.Pt(10, 10), nodes.Pt(40, 40))

	list := nodes.NewDisplayList()
	list.Add(nodes.RectStroke(rect, 10, 3, red))
	img := r.Render(list)

	// The stroke follows the arc, so the square corner stays empty while
	// the edge midpoints and the 45 degree arc point are painted.
	if got := img.RGBAAt(10, 10); got.R != 0 {
		t.Errorf("square corner pixel = %v, want empty", got)
	}
	if got := img.RGBAAt(25, 10); got.R == 0 {
		t.Errorf("top edge pixel = %v, want stroked", got)
	}
	if got := img.RGBAAt(13, 13); got.R == 0 {
		t.Errorf("corner arc pixel = %v, want stroked", got)
	}
	if got := img.RGBAAt(25, 25); got.R != 0 {
		t.Errorf("interior pixel = %v, want empty", got)
	}

	// Without rounding the outline still turns the square corner.
	list = nodes.NewDisplayList()
	list.Add(nodes.RectStroke(rect, 0, 3, red))
	if got := pixel(t, r, list, 10, 10); got.R == 0 {
		t.Errorf("unrounded corner pixel = %v, want stroked", got)
	}
}

func TestRender_FilledCircle(t *testing.T) {
	r := New(100, 100)
	list := nodes.NewDisplayList()
	list.Add(nodes.CircleFilled(nodes.Pt(50, 50), 20, blue))

	img := r.Render(list)

	if got := img.RGBAAt(50, 50); got.B == 0 {
		t.Errorf("circle center = %v, want filled", got)
	}
	if got := img.RGBAAt(50, 35); got.B == 0 {
		t.Errorf("inside radius = %v, want filled", got)
	}
	// (36,36) is ~19.8 from the center; (20,20) is well outside.
	if got := img.RGBAAt(20, 20); got.B != 0 {
		t.Errorf("outside circle = %v, want empty", got)
	}
}

func TestRender_Polyline(t *testing.T) {
	r := New(100, 100)
	list := nodes.NewDisplayList()
	list.Add(nodes.Polyline([]nodes.Point{nodes.Pt(10, 50), nodes.Pt(90, 50)}, 4, red))

	img := r.Render(list)

	if got := img.RGBAAt(50, 50); got.R == 0 {
		t.Errorf("on the line = %v, want stroked", got)
	}
	if got := img.RGBAAt(50, 40); got.R != 0 {
		t.Errorf("off the line = %v, want empty", got)
	}
}

func TestRender_SkipsUnfilledSlots(t *testing.T) {
	r := New(50, 50)
	list := nodes.NewDisplayList()
	list.Reserve()
	list.Add(nodes.CircleFilled(nodes.Pt(25, 25), 10, red))

	if got := pixel(t, r, list, 25, 25); got.R == 0 {
		t.Errorf("center = %v, want filled despite empty reserved slot", got)
	}
}

func TestRender_DrawOrder(t *testing.T) {
	r := New(50, 50)
	list := nodes.NewDisplayList()
	list.Add(nodes.RectFilled(nodes.NewRect(nodes.Pt(0, 0), nodes.Pt(50, 50)), 0, red))
	list.Add(nodes.RectFilled(nodes.NewRect(nodes.Pt(10, 10), nodes.Pt(40, 40)), 0, blue))

	img := r.Render(list)

	if got := img.RGBAAt(25, 25); got.B == 0 || got.R != 0 {
		t.Errorf("overlap pixel = %v, want the later shape on top", got)
	}
	if got := img.RGBAAt(5, 5); got.R == 0 {
		t.Errorf("background pixel = %v, want the earlier shape", got)
	}
}

func TestRenderer_Reuse(t *testing.T) {
	r := New(50, 50)

	list := nodes.NewDisplayList()
	list.Add(nodes.RectFilled(nodes.NewRect(nodes.Pt(0, 0), nodes.Pt(50, 50)), 0, red))
	first := r.Render(list)

	list.Reset()
	list.Add(nodes.CircleFilled(nodes.Pt(25, 25), 5, blue))
	second := r.Render(list)

	if got := first.RGBAAt(25, 25); got.R == 0 {
		t.Errorf("first frame = %v, want filled rect", got)
	}
	// The second frame starts from a fresh image and an empty rasterizer.
	if got := second.RGBAAt(2, 2); got.R != 0 || got.B != 0 {
		t.Errorf("second frame corner = %v, want empty", got)
	}
	if got := second.RGBAAt(25, 25); got.B == 0 {
		t.Errorf("second frame center = %v, want circle", got)
	}
}
