package gl

import (
	"errors"
	"math"
	"testing"

	"github.com/Lintangzupan/slint"
)

// meshArea sums the unsigned areas of the mesh's triangles.
func meshArea(m mesh) float64 {
	var area float64
	for i := 0; i+2 < len(m.indices); i += 3 {
		a, b, c := m.indices[i], m.indices[i+1], m.indices[i+2]
		ax, ay := float64(m.vertices[2*a]), float64(m.vertices[2*a+1])
		bx, by := float64(m.vertices[2*b]), float64(m.vertices[2*b+1])
		cx, cy := float64(m.vertices[2*c]), float64(m.vertices[2*c+1])
		area += math.Abs((bx-ax)*(cy-ay)-(by-ay)*(cx-ax)) / 2
	}
	return area
}

func TestTessellateRectangle(t *testing.T) {
	p := slint.NewPath().Rectangle(10, 20, 30, 40)
	m, err := tessellate(p)
	if err != nil {
		t.Fatalf("tessellate: %v", err)
	}
	if len(m.vertices) != 8 {
		t.Errorf("vertices = %d floats, want 8 (4 corners)", len(m.vertices))
	}
	if len(m.indices) != 6 {
		t.Errorf("indices = %d, want 6 (2 triangles)", len(m.indices))
	}
	if got := meshArea(m); math.Abs(got-1200) > 0.01 {
		t.Errorf("mesh area = %v, want 1200", got)
	}
}

func TestTessellateTriangle(t *testing.T) {
	p := slint.NewPath().MoveTo(0, 0).LineTo(10, 0).LineTo(0, 10).Close()
	m, err := tessellate(p)
	if err != nil {
		t.Fatalf("tessellate: %v", err)
	}
	if len(m.indices) != 3 {
		t.Errorf("indices = %d, want 3", len(m.indices))
	}
	if got := meshArea(m); math.Abs(got-50) > 0.01 {
		t.Errorf("mesh area = %v, want 50", got)
	}
}

func TestTessellateWindingIndependent(t *testing.T) {
	// The same square wound both ways must produce the same filled
	// area.
	ccw := slint.NewPath().MoveTo(0, 0).LineTo(0, 10).LineTo(10, 10).LineTo(10, 0).Close()
	cw := slint.NewPath().MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).LineTo(0, 10).Close()

	for name, p := range map[string]*slint.Path{"ccw": ccw, "cw": cw} {
		t.Run(name, func(t *testing.T) {
			m, err := tessellate(p)
			if err != nil {
				t.Fatalf("tessellate: %v", err)
			}
			if got := meshArea(m); math.Abs(got-100) > 0.01 {
				t.Errorf("mesh area = %v, want 100", got)
			}
		})
	}
}

func TestTessellateConcave(t *testing.T) {
	// An L shape: a 20x20 square missing its 10x10 top-right quarter.
	p := slint.NewPath().
		MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).
		LineTo(20, 10).LineTo(20, 20).LineTo(0, 20).Close()
	m, err := tessellate(p)
	if err != nil {
		t.Fatalf("tessellate: %v", err)
	}
	if got := meshArea(m); math.Abs(got-300) > 0.01 {
		t.Errorf("mesh area = %v, want 300", got)
	}
	// 6 corners triangulate into 4 triangles.
	if len(m.indices) != 12 {
		t.Errorf("indices = %d, want 12", len(m.indices))
	}
}

func TestTessellateCircleFlattening(t *testing.T) {
	const r = 100
	p := slint.NewPath().Circle(0, 0, r)
	m, err := tessellate(p)
	if err != nil {
		t.Fatalf("tessellate: %v", err)
	}

	// Curves must actually be subdivided, not collapsed to the four
	// arc endpoints.
	if len(m.vertices)/2 < 16 {
		t.Errorf("circle flattened to %d vertices, want more subdivision", len(m.vertices)/2)
	}

	// Every flattened vertex sits on the (cubic approximation of the)
	// circle, and the polygon area approaches pi*r^2 from below within
	// the flattening tolerance.
	for i := 0; i < len(m.vertices); i += 2 {
		d := math.Hypot(float64(m.vertices[i]), float64(m.vertices[i+1]))
		if d < r-1 || d > r+1 {
			t.Fatalf("vertex %d at distance %v from center, want ~%d", i/2, d, r)
		}
	}
	area := meshArea(m)
	want := math.Pi * r * r
	if area > want*1.001 || area < want*0.98 {
		t.Errorf("circle area = %v, want ~%v", area, want)
	}
}

func TestTessellateQuadCurve(t *testing.T) {
	// A filled parabola segment: chord plus one quadratic.
	p := slint.NewPath().MoveTo(0, 0).QuadTo(50, 100, 100, 0).Close()
	m, err := tessellate(p)
	if err != nil {
		t.Fatalf("tessellate: %v", err)
	}
	// Exact area under the quadratic is 2/3 * base * height.
	want := 2.0 / 3.0 * 100 * 50
	if got := meshArea(m); math.Abs(got-want) > want*0.02 {
		t.Errorf("mesh area = %v, want ~%v", got, want)
	}
}

func TestTessellateMultipleSubpaths(t *testing.T) {
	p := slint.NewPath().
		Rectangle(0, 0, 10, 10).
		Rectangle(100, 100, 20, 20)
	m, err := tessellate(p)
	if err != nil {
		t.Fatalf("tessellate: %v", err)
	}
	if got := meshArea(m); math.Abs(got-500) > 0.01 {
		t.Errorf("mesh area = %v, want 500", got)
	}
}

func TestTessellateSegmentsAfterClose(t *testing.T) {
	// Close rewinds the cursor to the subpath start; segments following
	// without a MoveTo draw a new contour from there.
	p := slint.NewPath().
		MoveTo(100, 100).LineTo(200, 100).LineTo(200, 200).Close().
		LineTo(150, 200).LineTo(50, 200).Close()
	m, err := tessellate(p)
	if err != nil {
		t.Fatalf("tessellate: %v", err)
	}
	// Two triangles of 5000 each.
	if got := meshArea(m); math.Abs(got-10000) > 0.01 {
		t.Errorf("mesh area = %v, want 10000", got)
	}

	// Same for a curve: the quadratic starts at the rewound cursor
	// (100,0), not wherever the closed contour ended.
	p = slint.NewPath().
		MoveTo(100, 0).LineTo(110, 0).LineTo(100, 10).Close().
		QuadTo(150, 100, 200, 0)
	m, err = tessellate(p)
	if err != nil {
		t.Fatalf("tessellate: %v", err)
	}
	want := 50 + 2.0/3.0*100*50
	if got := meshArea(m); math.Abs(got-want) > want*0.02 {
		t.Errorf("mesh area = %v, want ~%v", got, want)
	}
}

func TestTessellateDegenerate(t *testing.T) {
	tests := []struct {
		name string
		path *slint.Path
	}{
		{"empty", slint.NewPath()},
		{"single point", slint.NewPath().MoveTo(5, 5)},
		{"single line", slint.NewPath().MoveTo(0, 0).LineTo(10, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tessellate(tt.path); !errors.Is(err, ErrTessellate) {
				t.Errorf("tessellate = %v, want ErrTessellate", err)
			}
		})
	}
}

func TestTessellateIndicesInRange(t *testing.T) {
	p := slint.NewPath().Circle(50, 50, 40).Rectangle(0, 0, 5, 5)
	m, err := tessellate(p)
	if err != nil {
		t.Fatalf("tessellate: %v", err)
	}
	limit := uint16(len(m.vertices) / 2)
	for _, idx := range m.indices {
		if idx >= limit {
			t.Fatalf("index %d out of range (%d vertices)", idx, limit)
		}
	}
}
