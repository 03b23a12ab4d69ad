package gl

import (
	"fmt"

	"github.com/Lintangzupan/slint"
)

// contextPhase tracks who holds the GPU context. The context behaves
// like a token: exactly one of the renderer, a builder or a frame may
// hold it at a time, and GL calls are only legal while it is held.
type contextPhase uint8

const (
	// phaseIdle means the context is not current; the renderer is
	// between building and drawing.
	phaseIdle contextPhase = iota
	// phaseBuilding means a PrimitivesBuilder holds the context.
	phaseBuilding
	// phaseDrawing means a Frame holds the context.
	phaseDrawing
)

// String returns a human-readable name for the phase.
func (p contextPhase) String() string {
	switch p {
	case phaseIdle:
		return "Idle"
	case phaseBuilding:
		return "Building"
	case phaseDrawing:
		return "Drawing"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(p))
	}
}

// glContext pairs a window surface with the phase bookkeeping. All
// acquire/release transitions run on the thread that owns the surface.
type glContext struct {
	surface slint.Surface
	phase   contextPhase
}

// acquire makes the surface's GPU context current and records the new
// phase. It fails with ErrContextHeld when a builder or frame already
// holds the context.
func (c *glContext) acquire(to contextPhase) error {
	if c.phase != phaseIdle {
		return fmt.Errorf("%w: context is in phase %s", ErrContextHeld, c.phase)
	}
	if err := c.surface.MakeCurrent(); err != nil {
		return fmt.Errorf("gl: make current: %w", err)
	}
	c.phase = to
	return nil
}

// release detaches the GPU context from the current thread and returns
// to the idle phase. from guards against stale builders or frames
// releasing a context they no longer hold.
func (c *glContext) release(from contextPhase) error {
	if c.phase != from {
		return fmt.Errorf("%w: context is in phase %s, not %s", ErrContextNotHeld, c.phase, from)
	}
	if err := c.surface.DetachCurrent(); err != nil {
		return fmt.Errorf("gl: detach current: %w", err)
	}
	c.phase = phaseIdle
	return nil
}

// held reports whether the context is current in the given phase.
func (c *glContext) held(in contextPhase) bool {
	return c.phase == in
}
