// Package slint provides the shared graphics model and backend registry
// for a declarative UI toolkit's GPU rendering layer.
//
// # Overview
//
// The scene graph of the toolkit does not talk to the GPU directly.
// It describes what to draw (filled paths, images, text runs) and hands
// those descriptions to a rendering backend, which turns them into
// GPU-resident primitives and composites them into frames bound to a
// native window surface.
//
// This package defines the contract between the two sides:
//
//   - Backend, PrimitivesBuilder, Frame and Primitive describe the
//     rendering side (implemented by backend/gl).
//   - Surface describes the windowing side: a native surface whose GPU
//     context can be made current, released, and swapped.
//   - Color, FillStyle, Rect, Mat4, Path are the value types drawing
//     requests are expressed in.
//
// # Choosing a backend
//
// Backends register themselves by name in an init function. Callers
// select one with NewBackend:
//
//	import _ "github.com/Lintangzupan/slint/backend/gl"
//
//	backend, err := slint.NewBackend("gl", surface)
//
// An unknown backend name is not fatal: NewBackend logs a warning and
// falls back to the default backend, so an application never fails to
// start because of a misspelled renderer name in its configuration.
//
// # Rendering loop
//
// A render pass is two phases, each holding the GPU context exclusively:
//
//	builder, _ := backend.NewPrimitivesBuilder()
//	prim, _ := builder.BuildFillPath(path, style)
//	backend.FinishPrimitives(builder)
//
//	frame, _ := backend.NewFrame(w, h, clearColor)
//	frame.DrawPrimitive(prim, transform)
//	backend.PresentFrame(frame)
//
// All backend calls must be made from the single thread that owns the
// surface's GPU context and event loop.
package slint
