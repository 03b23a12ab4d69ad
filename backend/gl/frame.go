package gl

import (
	"github.com/Lintangzupan/slint"
)

// Frame is a single render pass. It holds the GPU context from
// NewFrame until PresentFrame and draws primitives in exactly the
// order they are submitted.
type Frame struct {
	r *Renderer

	// projection maps logical pixel coordinates (origin top-left,
	// Y down) to clip space for this frame's surface size.
	projection slint.Mat4
}

// DrawPrimitive draws the primitive with the given transform, composed
// with the frame's pixel-to-clip projection. Primitives from a
// different backend are logged and skipped.
func (f *Frame) DrawPrimitive(p slint.Primitive, transform slint.Mat4) {
	gp, ok := p.(glPrimitive)
	if !ok {
		slint.Logger().Warn("gl: primitive was not created by this backend, skipping",
			"primitive", p)
		return
	}
	matrix := f.projection.Mul(transform)
	gp.draw(f.r, [16]float32(matrix))
}
