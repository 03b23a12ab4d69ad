package slint

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"sync"
)

// ErrNoBackends is returned by NewBackend when no backend has been
// registered at all.
var ErrNoBackends = errors.New("slint: no rendering backends registered")

// Primitive is an opaque, immutable, GPU-resident drawable produced by a
// PrimitivesBuilder. It can be drawn by any number of frames of the
// backend that created it. Once the owner no longer needs it, Release
// must be called with the backend's context current (any builder or
// frame phase) to free the GPU buffers it owns.
type Primitive interface {
	// Release frees the GPU resources owned by the primitive.
	// Releasing twice is a logged no-op.
	Release()
}

// PrimitivesBuilder converts declarative draw requests into GPU-resident
// primitives. It holds the backend's GPU context for its whole lifetime
// and must be finished with Backend.FinishPrimitives exactly once.
type PrimitivesBuilder interface {
	// BuildFillPath tessellates the path and uploads the resulting mesh.
	// It fails if the geometry cannot be triangulated.
	BuildFillPath(path *Path, style FillStyle) (Primitive, error)

	// BuildImage allocates atlas space for the image and uploads a
	// textured quad covering destRect.
	BuildImage(destRect Rect, img *image.RGBA) (Primitive, error)

	// BuildGlyphRun shapes the text, rasterizes and caches any missing
	// glyphs, and uploads the combined glyph quads. An empty string
	// yields a valid primitive with zero vertices.
	BuildGlyphRun(text string, color Color) (Primitive, error)
}

// Frame is a single render pass bound to the backend's surface. It holds
// the GPU context from creation until Backend.PresentFrame.
// Draw order is preserved exactly as submitted (painter's algorithm).
type Frame interface {
	// DrawPrimitive draws the primitive with the given transform,
	// composed with the frame's projection matrix.
	DrawPrimitive(p Primitive, transform Mat4)
}

// Backend is a GPU rendering backend bound to a window surface.
//
// The backend owns the surface's GPU context and lends it to exactly one
// of its phases at a time: a PrimitivesBuilder, a Frame, or nobody
// (idle). All methods must be called from the thread owning the
// surface's event loop; the backend performs no internal locking.
type Backend interface {
	// Name returns the backend name (e.g. "gl").
	Name() string

	// NewPrimitivesBuilder makes the context current and returns a
	// builder that holds it. Fails if another phase holds the context.
	NewPrimitivesBuilder() (PrimitivesBuilder, error)

	// FinishPrimitives releases the context held by the builder back to
	// the backend. Must be called exactly once per builder.
	FinishPrimitives(b PrimitivesBuilder) error

	// NewFrame makes the context current, sets up the viewport and
	// blending for the given surface size, clears the color buffer and
	// returns the frame. Fails if another phase holds the context.
	NewFrame(width, height int, clear Color) (Frame, error)

	// PresentFrame swaps the surface buffers and releases the context
	// held by the frame.
	PresentFrame(f Frame) error

	// Release frees all GPU resources owned by the backend: shader
	// programs, atlas textures and the vertex array object. The backend
	// must be idle. No backend method may be called afterwards.
	Release()
}

// BackendFactory creates a backend bound to the given surface.
// Factories are registered by backend packages in their init functions.
type BackendFactory func(surface Surface) (Backend, error)

var (
	backendMu       sync.RWMutex
	backends        = map[string]BackendFactory{}
	defaultBackend  string
	backendPriority = map[string]int{}
)

// RegisterBackend registers a backend factory under the given name.
// The backend with the highest priority becomes the default used by
// NewBackend when the requested name is unknown. Registering the same
// name twice replaces the previous factory.
//
// Typical usage via blank import in backend packages:
//
//	func init() {
//	    slint.RegisterBackend("gl", 100, newGLBackend)
//	}
func RegisterBackend(name string, priority int, factory BackendFactory) {
	if factory == nil {
		panic("slint: RegisterBackend called with nil factory")
	}
	backendMu.Lock()
	defer backendMu.Unlock()
	backends[name] = factory
	backendPriority[name] = priority
	if defaultBackend == "" || priority >= backendPriority[defaultBackend] {
		defaultBackend = name
	}
}

// RegisteredBackends returns the names of all registered backends,
// sorted alphabetically.
func RegisteredBackends() []string {
	backendMu.RLock()
	defer backendMu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewBackend creates the named rendering backend bound to the surface.
//
// An unknown name is recoverable: NewBackend logs a warning and falls
// back to the default backend, so an application never fails outright
// because of a misconfigured renderer name. It fails only when no
// backend is registered at all or the chosen factory itself fails.
func NewBackend(name string, surface Surface) (Backend, error) {
	backendMu.RLock()
	factory, ok := backends[name]
	fallback := defaultBackend
	backendMu.RUnlock()

	if !ok {
		if fallback == "" {
			return nil, ErrNoBackends
		}
		Logger().Warn("slint: unknown rendering backend, using default",
			"requested", name, "default", fallback)
		backendMu.RLock()
		factory = backends[fallback]
		backendMu.RUnlock()
		name = fallback
	}

	backend, err := factory(surface)
	if err != nil {
		return nil, fmt.Errorf("slint: creating %q backend: %w", name, err)
	}
	Logger().Info("slint: rendering backend created", "name", name)
	return backend, nil
}
