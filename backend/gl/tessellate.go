package gl

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"

	"github.com/Lintangzupan/slint"
)

// flattenTolerance is the maximum deviation, in logical pixels, of a
// flattened curve from the true curve.
const flattenTolerance = 0.25

// flattenEpsilon is a small value for floating point comparisons in
// flattening and triangulation.
const flattenEpsilon = 1e-6

// maxMeshVertices is the largest vertex count addressable by the
// uint16 index buffers the backend draws with.
const maxMeshVertices = math.MaxUint16 + 1

// mesh is triangulated path geometry ready for upload: interleaved
// x,y vertex pairs and triangle indices into them.
type mesh struct {
	vertices []float32
	indices  []uint16
}

// tessellate converts a path into a triangle mesh. Curves are
// flattened to polylines within flattenTolerance, each subpath is
// closed implicitly, and the resulting polygons are triangulated by
// ear clipping.
func tessellate(path *slint.Path) (mesh, error) {
	contours := flattenPath(path)

	var m mesh
	for _, contour := range contours {
		if err := triangulate(&m, contour); err != nil {
			return mesh{}, err
		}
	}
	if len(m.indices) == 0 {
		return mesh{}, fmt.Errorf("%w: path produced no triangles", ErrTessellate)
	}
	return m, nil
}

// flattenPath flattens a path into closed polyline contours, one per
// subpath, as interleaved x,y pairs.
func flattenPath(path *slint.Path) [][]float32 {
	var contours [][]float32
	if path == nil || path.IsEmpty() {
		return contours
	}

	var contour []float32
	var curX, curY float32
	var startX, startY float32

	closeContour := func() {
		// Drop a duplicated closing point so the contour stays a
		// simple cycle.
		if len(contour) >= 4 &&
			nearlyEqual(contour[0], contour[len(contour)-2]) &&
			nearlyEqual(contour[1], contour[len(contour)-1]) {
			contour = contour[:len(contour)-2]
		}
		if len(contour) >= 6 {
			contours = append(contours, contour)
		}
		contour = nil
	}

	pointIdx := 0
	points := path.Points()
	verbs := path.Verbs()

	for _, verb := range verbs {
		switch verb {
		case slint.VerbMoveTo:
			closeContour()
			curX, curY = points[pointIdx], points[pointIdx+1]
			startX, startY = curX, curY
			contour = append(contour, curX, curY)
			pointIdx += 2

		case slint.VerbLineTo:
			curX, curY = points[pointIdx], points[pointIdx+1]
			contour = append(contour, curX, curY)
			pointIdx += 2

		case slint.VerbQuadTo:
			cx, cy := points[pointIdx], points[pointIdx+1]
			x, y := points[pointIdx+2], points[pointIdx+3]
			contour = flattenQuadratic(contour, curX, curY, cx, cy, x, y, flattenTolerance)
			curX, curY = x, y
			pointIdx += 4

		case slint.VerbCubicTo:
			c1x, c1y := points[pointIdx], points[pointIdx+1]
			c2x, c2y := points[pointIdx+2], points[pointIdx+3]
			x, y := points[pointIdx+4], points[pointIdx+5]
			contour = flattenCubic(contour, curX, curY, c1x, c1y, c2x, c2y, x, y, flattenTolerance)
			curX, curY = x, y
			pointIdx += 6

		case slint.VerbClose:
			closeContour()
			// Close leaves the cursor on the subpath start, matching
			// Path.Close. Seed the next contour from it; closeContour
			// drops the point again if nothing follows.
			curX, curY = startX, startY
			contour = append(contour, curX, curY)
		}
	}
	closeContour()

	return contours
}

// flattenQuadratic appends line segments approximating a quadratic
// Bezier curve to the contour. The flatness test measures the
// deviation of the curve midpoint from the chord midpoint, which for a
// quadratic is where deviation is largest.
func flattenQuadratic(contour []float32, x0, y0, cx, cy, x1, y1, tol float32) []float32 {
	midX := 0.25*x0 + 0.5*cx + 0.25*x1
	midY := 0.25*y0 + 0.5*cy + 0.25*y1
	chordMidX := 0.5 * (x0 + x1)
	chordMidY := 0.5 * (y0 + y1)

	dx := midX - chordMidX
	dy := midY - chordMidY
	if dx*dx+dy*dy <= tol*tol {
		return append(contour, x1, y1)
	}

	// De Casteljau at t=0.5
	ax := 0.5 * (x0 + cx)
	ay := 0.5 * (y0 + cy)
	bx := 0.5 * (cx + x1)
	by := 0.5 * (cy + y1)
	mx := 0.5 * (ax + bx)
	my := 0.5 * (ay + by)

	contour = flattenQuadratic(contour, x0, y0, ax, ay, mx, my, tol)
	return flattenQuadratic(contour, mx, my, bx, by, x1, y1, tol)
}

// flattenCubic appends line segments approximating a cubic Bezier
// curve to the contour. The flatness test bounds the deviation by the
// larger control point distance from the chord, with the usual factor
// of 16 for the cubic approximation.
func flattenCubic(contour []float32, x0, y0, c1x, c1y, c2x, c2y, x1, y1, tol float32) []float32 {
	ux := 3*c1x - 2*x0 - x1
	uy := 3*c1y - 2*y0 - y1
	vx := 3*c2x - x0 - 2*x1
	vy := 3*c2y - y0 - 2*y1

	distSq := math32.Max(ux*ux+uy*uy, vx*vx+vy*vy)
	if distSq <= 16*tol*tol {
		return append(contour, x1, y1)
	}

	// De Casteljau at t=0.5
	ax := 0.5 * (x0 + c1x)
	ay := 0.5 * (y0 + c1y)
	bx := 0.5 * (c1x + c2x)
	by := 0.5 * (c1y + c2y)
	cx := 0.5 * (c2x + x1)
	cy := 0.5 * (c2y + y1)

	dx := 0.5 * (ax + bx)
	dy := 0.5 * (ay + by)
	ex := 0.5 * (bx + cx)
	ey := 0.5 * (by + cy)

	mx := 0.5 * (dx + ex)
	my := 0.5 * (dy + ey)

	contour = flattenCubic(contour, x0, y0, ax, ay, dx, dy, mx, my, tol)
	return flattenCubic(contour, mx, my, ex, ey, cx, cy, x1, y1, tol)
}

// triangulate ear-clips one closed contour into m, offsetting indices
// past any vertices already present. The contour is normalized to
// counterclockwise order first (Y-down coordinates), so the ear test
// only has to handle one orientation.
func triangulate(m *mesh, contour []float32) error {
	n := len(contour) / 2
	if n < 3 {
		return fmt.Errorf("%w: contour has %d points", ErrTessellate, n)
	}
	if len(m.vertices)/2+n > maxMeshVertices {
		return fmt.Errorf("%w: %d vertices", ErrMeshTooLarge, len(m.vertices)/2+n)
	}

	base := uint16(len(m.vertices) / 2)
	m.vertices = append(m.vertices, contour...)

	// Remaining vertex indices into the contour, clipped one ear at a
	// time.
	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}
	if signedArea(contour) > 0 {
		// Clockwise in Y-down coordinates; reverse the walk order.
		for i, j := 0, len(remaining)-1; i < j; i, j = i+1, j-1 {
			remaining[i], remaining[j] = remaining[j], remaining[i]
		}
	}

	at := func(i int) (float32, float32) {
		return contour[2*remaining[i]], contour[2*remaining[i]+1]
	}

	for len(remaining) > 3 {
		clipped := false
		for i := 0; i < len(remaining); i++ {
			prev := (i + len(remaining) - 1) % len(remaining)
			next := (i + 1) % len(remaining)
			ax, ay := at(prev)
			bx, by := at(i)
			cx, cy := at(next)

			if !isEar(contour, remaining, prev, i, next, ax, ay, bx, by, cx, cy) {
				continue
			}

			m.indices = append(m.indices,
				base+uint16(remaining[prev]),
				base+uint16(remaining[i]),
				base+uint16(remaining[next]))
			remaining = append(remaining[:i], remaining[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// No ear found: self-intersecting or fully degenerate
			// contour.
			return fmt.Errorf("%w: contour is not a simple polygon", ErrTessellate)
		}
	}

	m.indices = append(m.indices,
		base+uint16(remaining[0]),
		base+uint16(remaining[1]),
		base+uint16(remaining[2]))
	return nil
}

// isEar reports whether vertex i forms a convex corner containing no
// other remaining vertex.
func isEar(contour []float32, remaining []int, prev, i, next int, ax, ay, bx, by, cx, cy float32) bool {
	// Convexity: in counterclockwise Y-down order the cross product of
	// the corner edges must be negative.
	if cross(ax, ay, bx, by, cx, cy) >= -flattenEpsilon {
		return false
	}
	for j := range remaining {
		if j == prev || j == i || j == next {
			continue
		}
		px, py := contour[2*remaining[j]], contour[2*remaining[j]+1]
		if pointInTriangle(px, py, ax, ay, bx, by, cx, cy) {
			return false
		}
	}
	return true
}

// signedArea returns twice the signed area of the polygon via the
// shoelace formula. Positive means clockwise in Y-down coordinates.
func signedArea(contour []float32) float32 {
	var area float32
	n := len(contour) / 2
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += contour[2*i]*contour[2*j+1] - contour[2*j]*contour[2*i+1]
	}
	return area
}

// cross returns the z component of (b-a) x (c-b).
func cross(ax, ay, bx, by, cx, cy float32) float32 {
	return (bx-ax)*(cy-by) - (by-ay)*(cx-bx)
}

// pointInTriangle reports whether (px,py) lies strictly inside the
// triangle abc.
func pointInTriangle(px, py, ax, ay, bx, by, cx, cy float32) bool {
	d1 := cross(ax, ay, bx, by, px, py)
	d2 := cross(bx, by, cx, cy, px, py)
	d3 := cross(cx, cy, ax, ay, px, py)

	hasNeg := d1 < -flattenEpsilon || d2 < -flattenEpsilon || d3 < -flattenEpsilon
	hasPos := d1 > flattenEpsilon || d2 > flattenEpsilon || d3 > flattenEpsilon
	return !(hasNeg && hasPos)
}

// nearlyEqual reports whether two coordinates coincide within the
// flattening epsilon.
func nearlyEqual(a, b float32) bool {
	return math32.Abs(a-b) < flattenEpsilon
}
