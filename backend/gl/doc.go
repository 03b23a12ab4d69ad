// Package gl implements the OpenGL rendering backend.
//
// The backend converts declarative drawing requests — filled paths,
// images, text runs — into immutable GPU-resident primitives, and
// composites submitted primitives into frames presented on a native
// window surface.
//
// # Context ownership
//
// OpenGL contexts are stateful and not reentrant across threads: GL
// calls are only valid while the context is current on the calling
// thread. The Renderer models this as an exclusive ownership token that
// is in exactly one of three states at any instant:
//
//   - idle: the Renderer holds the token, the context is not current.
//   - building: a Builder holds the token for the duration of primitive
//     construction (tessellation, atlas uploads, buffer creation).
//   - drawing: a Frame holds the token from creation to present.
//
// Transitions happen only through NewPrimitivesBuilder/FinishPrimitives
// and NewFrame/PresentFrame. Acquiring a held token is an error — the
// contract replaces locking, since all calls happen on the UI thread.
//
// # Resource model
//
// The Renderer owns the three shader programs, the texture atlas and
// the glyph cache for the lifetime of the window. Primitives own their
// vertex and index buffers and hold shared read-only references to
// atlas pages; releasing a primitive frees its buffers but never atlas
// space, which is reclaimed only when the Renderer is released.
//
// Blank import the package to register it as the "gl" backend:
//
//	import _ "github.com/Lintangzupan/slint/backend/gl"
package gl
