package slint

import "github.com/chewxy/math32"

// PathVerb represents a path construction command.
type PathVerb uint8

// Path verb constants.
const (
	// VerbMoveTo moves the current point without drawing.
	VerbMoveTo PathVerb = iota
	// VerbLineTo draws a line to the specified point.
	VerbLineTo
	// VerbQuadTo draws a quadratic Bezier curve.
	VerbQuadTo
	// VerbCubicTo draws a cubic Bezier curve.
	VerbCubicTo
	// VerbClose closes the current subpath.
	VerbClose
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// String returns a human-readable name for the verb.
func (v PathVerb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbQuadTo:
		return "QuadTo"
	case VerbCubicTo:
		return "CubicTo"
	case VerbClose:
		return "Close"
	default:
		return unknownStr
	}
}

// PointCount returns the number of coordinates this verb consumes.
func (v PathVerb) PointCount() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 2 // x, y
	case VerbQuadTo:
		return 4 // cx, cy, x, y
	case VerbCubicTo:
		return 6 // c1x, c1y, c2x, c2y, x, y
	default:
		return 0
	}
}

// Path represents already-parsed vector path geometry submitted to a
// rendering backend. It stores path commands (verbs) and coordinate data
// separately for efficient flattening and tessellation.
//
// Paths are assumed pre-validated by the caller; a backend may fail to
// tessellate degenerate geometry.
type Path struct {
	verbs  []PathVerb
	points []float32
	start  [2]float32 // Start of current subpath for Close
	cursor [2]float32 // Current position
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]PathVerb, 0, 16),
		points: make([]float32, 0, 64),
	}
}

// Reset clears the path for reuse without deallocating memory.
func (p *Path) Reset() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
	p.start = [2]float32{}
	p.cursor = [2]float32{}
}

// MoveTo begins a new subpath at the specified point.
func (p *Path) MoveTo(x, y float32) *Path {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, x, y)
	p.start = [2]float32{x, y}
	p.cursor = p.start
	return p
}

// LineTo draws a line from the current point to (x, y).
func (p *Path) LineTo(x, y float32) *Path {
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, x, y)
	p.cursor = [2]float32{x, y}
	return p
}

// QuadTo draws a quadratic Bezier curve from the current point to (x, y)
// using (cx, cy) as control point.
func (p *Path) QuadTo(cx, cy, x, y float32) *Path {
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, cx, cy, x, y)
	p.cursor = [2]float32{x, y}
	return p
}

// CubicTo draws a cubic Bezier curve from the current point to (x, y)
// using (c1x, c1y) and (c2x, c2y) as control points.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float32) *Path {
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, c1x, c1y, c2x, c2y, x, y)
	p.cursor = [2]float32{x, y}
	return p
}

// Close closes the current subpath by drawing a line back to its start.
func (p *Path) Close() *Path {
	p.verbs = append(p.verbs, VerbClose)
	p.cursor = p.start
	return p
}

// Rectangle adds a rectangle subpath.
func (p *Path) Rectangle(x, y, w, h float32) *Path {
	return p.MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		Close()
}

// Circle adds a circle subpath approximated by four cubic arcs.
func (p *Path) Circle(cx, cy, r float32) *Path {
	// Kappa for a 90 degree cubic arc.
	const k = 0.5522848
	kr := k * r
	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+kr, cx+kr, cy+r, cx, cy+r)
	p.CubicTo(cx-kr, cy+r, cx-r, cy+kr, cx-r, cy)
	p.CubicTo(cx-r, cy-kr, cx-kr, cy-r, cx, cy-r)
	p.CubicTo(cx+kr, cy-r, cx+r, cy-kr, cx+r, cy)
	return p.Close()
}

// Arc adds an elliptical arc subpath approximated by line segments.
func (p *Path) Arc(cx, cy, rx, ry, startAngle, endAngle float32) *Path {
	const segmentsPerRadian = 8
	sweep := endAngle - startAngle
	steps := int(math32.Abs(sweep)*segmentsPerRadian) + 1
	for i := 0; i <= steps; i++ {
		a := startAngle + sweep*float32(i)/float32(steps)
		sin, cos := math32.Sincos(a)
		x, y := cx+rx*cos, cy+ry*sin
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	return p
}

// Verbs returns the path's command sequence. The returned slice is owned
// by the path and must not be modified.
func (p *Path) Verbs() []PathVerb { return p.verbs }

// Points returns the path's packed coordinate data. The returned slice is
// owned by the path and must not be modified.
func (p *Path) Points() []float32 { return p.points }

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool { return len(p.verbs) == 0 }
