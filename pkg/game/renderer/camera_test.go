package renderer

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFit(t *testing.T) {
	node, s := Fit(1000, 800, 500, 200, 0)
	if !near(s, 2) {
		t.Fatalf("scale = %v, want 2", s)
	}
	tests := []struct {
		lx, ly, sx, sy float64
	}{
		{0, 0, 0, 600},
		{500, 200, 1000, 200},
		{250, 100, 500, 400},
	}
	for _, tt := range tests {
		x, y := node.Apply(tt.lx, tt.ly)
		if !near(x, tt.sx) || !near(y, tt.sy) {
			t.Errorf("Apply(%v, %v) = (%v, %v), want (%v, %v)", tt.lx, tt.ly, x, y, tt.sx, tt.sy)
		}
	}

	_, s = Fit(100, 100, 0, 0, 10)
	if s != 1 {
		t.Errorf("empty grid scale = %v, want 1", s)
	}
}

func TestFollow(t *testing.T) {
	// grid larger than the screen on both axes
	node := Follow(400, 300, 2000, 1000, 1000, 500, 1)
	x, y := node.Apply(1000, 500)
	if !near(x, 200) || !near(y, 150) {
		t.Errorf("followed point at (%v, %v), want the screen centre", x, y)
	}

	// near the lower-left corner the camera stops at the grid edge
	node = Follow(400, 300, 2000, 1000, 10, 10, 1)
	x, y = node.Apply(0, 0)
	if !near(x, 0) || !near(y, 300) {
		t.Errorf("grid corner at (%v, %v), want (0, 300)", x, y)
	}

	// a small grid is centred whatever is followed
	node = Follow(400, 300, 200, 100, 190, 90, 0)
	x, y = node.Apply(0, 0)
	if !near(x, 100) || !near(y, 200) {
		t.Errorf("small grid corner at (%v, %v), want (100, 200)", x, y)
	}

	// zoom scales the grid around the followed point
	node = Follow(400, 300, 2000, 1000, 1000, 500, 2)
	x, y = node.Apply(1000, 500)
	if !near(x, 200) || !near(y, 150) {
		t.Errorf("zoomed point at (%v, %v), want the screen centre", x, y)
	}
	x2, _ := node.Apply(1010, 500)
	if !near(x2-x, 20) {
		t.Errorf("10 px at zoom 2 spans %v px", x2-x)
	}
}
