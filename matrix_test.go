package slint

import (
	"math"
	"testing"
)

const matrixEps = 1e-5

func near(a, b float32) bool {
	d := float64(a - b)
	return math.Abs(d) < matrixEps
}

func TestIdentityTransformPoint(t *testing.T) {
	m := Identity()
	x, y := m.TransformPoint(3, -7)
	if !near(x, 3) || !near(y, -7) {
		t.Errorf("Identity().TransformPoint(3, -7) = (%v, %v)", x, y)
	}
}

func TestOrtho2DCorners(t *testing.T) {
	// An 800x600 surface: top-left maps to clip (-1, 1), bottom-right
	// to (1, -1), the center to the origin.
	m := Ortho2D(800, 600)
	tests := []struct {
		name         string
		px, py       float32
		wantX, wantY float32
	}{
		{"top-left", 0, 0, -1, 1},
		{"top-right", 800, 0, 1, 1},
		{"bottom-left", 0, 600, -1, -1},
		{"bottom-right", 800, 600, 1, -1},
		{"center", 400, 300, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := m.TransformPoint(tt.px, tt.py)
			if !near(x, tt.wantX) || !near(y, tt.wantY) {
				t.Errorf("TransformPoint(%v, %v) = (%v, %v), want (%v, %v)",
					tt.px, tt.py, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(10, -20)
	x, y := m.TransformPoint(1, 2)
	if !near(x, 11) || !near(y, -18) {
		t.Errorf("Translate(10, -20).TransformPoint(1, 2) = (%v, %v), want (11, -18)", x, y)
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3)
	x, y := m.TransformPoint(4, 5)
	if !near(x, 8) || !near(y, 15) {
		t.Errorf("Scale(2, 3).TransformPoint(4, 5) = (%v, %v), want (8, 15)", x, y)
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	// A positive quarter turn in the Y-down system takes +X to +Y.
	m := Rotate(math.Pi / 2)
	x, y := m.TransformPoint(1, 0)
	if !near(x, 0) || !near(y, 1) {
		t.Errorf("Rotate(pi/2).TransformPoint(1, 0) = (%v, %v), want (0, 1)", x, y)
	}
}

func TestMulOrder(t *testing.T) {
	// Mul applies the right operand first: translate-then-scale differs
	// from scale-then-translate.
	scaleThenTranslate := Translate(10, 0).Mul(Scale(2, 2))
	x, y := scaleThenTranslate.TransformPoint(1, 1)
	if !near(x, 12) || !near(y, 2) {
		t.Errorf("Translate*Scale at (1,1) = (%v, %v), want (12, 2)", x, y)
	}

	translateThenScale := Scale(2, 2).Mul(Translate(10, 0))
	x, y = translateThenScale.TransformPoint(1, 1)
	if !near(x, 22) || !near(y, 2) {
		t.Errorf("Scale*Translate at (1,1) = (%v, %v), want (22, 2)", x, y)
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(3, 4).Mul(Rotate(0.7)).Mul(Scale(2, 0.5))
	got := m.Mul(Identity())
	for i := range got {
		if !near(got[i], m[i]) {
			t.Fatalf("m.Mul(Identity())[%d] = %v, want %v", i, got[i], m[i])
		}
	}
	got = Identity().Mul(m)
	for i := range got {
		if !near(got[i], m[i]) {
			t.Fatalf("Identity().Mul(m)[%d] = %v, want %v", i, got[i], m[i])
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	if r.MinX() != 10 || r.MinY() != 20 || r.MaxX() != 40 || r.MaxY() != 60 {
		t.Errorf("Rect edges = (%v, %v, %v, %v)", r.MinX(), r.MinY(), r.MaxX(), r.MaxY())
	}
	if r.IsEmpty() {
		t.Error("Rect{10,20,30,40}.IsEmpty() = true")
	}
	if !(Rect{Width: 0, Height: 5}).IsEmpty() {
		t.Error("zero-width rect should be empty")
	}
}
