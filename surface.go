package slint

// Surface is a native window surface with an associated GPU context.
// It is provided by the windowing/event-loop integration (for example the
// glfwsurface package) and consumed by rendering backends.
//
// The underlying GPU context is an exclusive, non-shareable resource:
// GPU calls are only valid between MakeCurrent and DetachCurrent, and all
// calls must happen on the thread that owns the surface's event loop.
// Backends are responsible for pairing every MakeCurrent with exactly one
// DetachCurrent; Surface implementations do not track nesting.
type Surface interface {
	// MakeCurrent binds the surface's GPU context to the calling thread.
	MakeCurrent() error

	// DetachCurrent releases the GPU context from the calling thread.
	DetachCurrent() error

	// SwapBuffers presents the back buffer to the window.
	// The context must be current.
	SwapBuffers() error

	// Size returns the surface size in physical pixels.
	Size() (width, height int)
}
