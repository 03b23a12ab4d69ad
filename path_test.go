package slint

import (
	"testing"
)

func TestPathVerbString(t *testing.T) {
	tests := []struct {
		verb PathVerb
		want string
	}{
		{VerbMoveTo, "MoveTo"},
		{VerbLineTo, "LineTo"},
		{VerbQuadTo, "QuadTo"},
		{VerbCubicTo, "CubicTo"},
		{VerbClose, "Close"},
		{PathVerb(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.verb.String(); got != tt.want {
			t.Errorf("PathVerb(%d).String() = %q, want %q", tt.verb, got, tt.want)
		}
	}
}

func TestPathVerbPointCount(t *testing.T) {
	tests := []struct {
		verb PathVerb
		want int
	}{
		{VerbMoveTo, 2},
		{VerbLineTo, 2},
		{VerbQuadTo, 4},
		{VerbCubicTo, 6},
		{VerbClose, 0},
	}
	for _, tt := range tests {
		if got := tt.verb.PointCount(); got != tt.want {
			t.Errorf("%v.PointCount() = %d, want %d", tt.verb, got, tt.want)
		}
	}
}

func TestPathBuilding(t *testing.T) {
	p := NewPath().MoveTo(0, 0).LineTo(10, 0).QuadTo(15, 5, 10, 10).Close()

	wantVerbs := []PathVerb{VerbMoveTo, VerbLineTo, VerbQuadTo, VerbClose}
	gotVerbs := p.Verbs()
	if len(gotVerbs) != len(wantVerbs) {
		t.Fatalf("got %d verbs, want %d", len(gotVerbs), len(wantVerbs))
	}
	for i, v := range wantVerbs {
		if gotVerbs[i] != v {
			t.Errorf("verb[%d] = %v, want %v", i, gotVerbs[i], v)
		}
	}

	wantPoints := []float32{0, 0, 10, 0, 15, 5, 10, 10}
	gotPoints := p.Points()
	if len(gotPoints) != len(wantPoints) {
		t.Fatalf("got %d points, want %d", len(gotPoints), len(wantPoints))
	}
	for i, v := range wantPoints {
		if gotPoints[i] != v {
			t.Errorf("point[%d] = %v, want %v", i, gotPoints[i], v)
		}
	}
}

func TestPathPointsMatchVerbs(t *testing.T) {
	// Every path builder keeps the verb/point streams in sync: the sum
	// of PointCount over verbs equals the length of the point data.
	paths := map[string]*Path{
		"rectangle": NewPath().Rectangle(1, 2, 3, 4),
		"circle":    NewPath().Circle(50, 50, 25),
		"arc":       NewPath().Arc(0, 0, 10, 20, 0, 3.14),
		"mixed": NewPath().MoveTo(0, 0).CubicTo(1, 1, 2, 2, 3, 3).
			LineTo(4, 4).Close().MoveTo(5, 5).QuadTo(6, 6, 7, 7),
	}
	for name, p := range paths {
		t.Run(name, func(t *testing.T) {
			var want int
			for _, v := range p.Verbs() {
				want += v.PointCount()
			}
			if got := len(p.Points()); got != want {
				t.Errorf("len(Points()) = %d, want %d from verbs", got, want)
			}
		})
	}
}

func TestPathReset(t *testing.T) {
	p := NewPath().Rectangle(0, 0, 10, 10)
	if p.IsEmpty() {
		t.Fatal("path with a rectangle should not be empty")
	}
	p.Reset()
	if !p.IsEmpty() {
		t.Error("path should be empty after Reset")
	}
	if len(p.Verbs()) != 0 || len(p.Points()) != 0 {
		t.Errorf("Reset left %d verbs, %d points", len(p.Verbs()), len(p.Points()))
	}
}

func TestPathCloseReturnsToStart(t *testing.T) {
	p := NewPath().MoveTo(5, 5).LineTo(10, 5).Close().LineTo(7, 7)
	// After Close the cursor is back at the subpath start, so the final
	// line starts from (5, 5); the point stream records only endpoints.
	points := p.Points()
	last := points[len(points)-2:]
	if last[0] != 7 || last[1] != 7 {
		t.Errorf("last point = %v, want [7 7]", last)
	}
}

func TestPathCircleIsClosed(t *testing.T) {
	p := NewPath().Circle(0, 0, 1)
	verbs := p.Verbs()
	if verbs[len(verbs)-1] != VerbClose {
		t.Errorf("circle should end with Close, got %v", verbs[len(verbs)-1])
	}
	// Four cubic arcs.
	cubics := 0
	for _, v := range verbs {
		if v == VerbCubicTo {
			cubics++
		}
	}
	if cubics != 4 {
		t.Errorf("circle uses %d cubics, want 4", cubics)
	}
}
