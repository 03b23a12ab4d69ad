package gl

import "errors"

// Backend errors.
var (
	// ErrContextHeld is returned when a builder or frame is requested
	// while another phase already holds the GPU context.
	ErrContextHeld = errors.New("gl: GPU context already held by another phase")

	// ErrContextNotHeld is returned when finishing a builder or
	// presenting a frame that no longer holds the GPU context.
	ErrContextNotHeld = errors.New("gl: GPU context not held by this phase")

	// ErrWrongRenderer is returned when a builder or frame is handed
	// back to a renderer that did not create it.
	ErrWrongRenderer = errors.New("gl: builder or frame belongs to a different renderer")

	// ErrTessellate is returned when path geometry cannot be
	// triangulated. Paths are assumed pre-validated by the caller, so
	// this is not retried.
	ErrTessellate = errors.New("gl: cannot tessellate path geometry")

	// ErrMeshTooLarge is returned when a tessellated mesh exceeds the
	// 16-bit index range of the index buffers.
	ErrMeshTooLarge = errors.New("gl: tessellated mesh exceeds 16-bit index range")

	// ErrNilImage is returned when BuildImage is called without pixels.
	ErrNilImage = errors.New("gl: image is nil")
)
