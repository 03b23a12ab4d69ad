// Package glapi abstracts the slice of OpenGL the rendering backend
// touches behind a small typed interface.
//
// Two implementations exist: OpenGL, backed by the go-gl bindings and
// used in production, and Recorder, an in-memory implementation that
// retains buffer contents, texture pixels and an ordered draw log for
// package tests. The interface is deliberately GL-shaped — stateful
// bind-then-operate calls — because the backend's correctness depends on
// managing exactly that statefulness.
package glapi

import "fmt"

// BufferID identifies a GPU buffer object.
type BufferID uint32

// TextureID identifies a GPU texture object.
type TextureID uint32

// ProgramID identifies a linked GPU program object.
type ProgramID uint32

// VertexArrayID identifies a vertex array object.
type VertexArrayID uint32

// UniformLocation is the location of a uniform within a program.
// A negative value means the uniform was not found.
type UniformLocation int32

// AttribLocation is the location of a vertex attribute within a program.
// A negative value means the attribute was not found.
type AttribLocation int32

// BufferTarget selects the binding point of a buffer.
type BufferTarget uint8

const (
	// ArrayBuffer is the vertex attribute data binding point.
	ArrayBuffer BufferTarget = iota
	// ElementArrayBuffer is the index data binding point.
	ElementArrayBuffer
)

// String returns a human-readable name for the target.
func (t BufferTarget) String() string {
	switch t {
	case ArrayBuffer:
		return "ArrayBuffer"
	case ElementArrayBuffer:
		return "ElementArrayBuffer"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// DrawMode selects the primitive topology of a draw call.
type DrawMode uint8

const (
	// Triangles draws independent triangles from consecutive vertex triples.
	Triangles DrawMode = iota
	// TriangleStrip draws a connected triangle strip.
	TriangleStrip
)

// String returns a human-readable name for the mode.
func (m DrawMode) String() string {
	switch m {
	case Triangles:
		return "Triangles"
	case TriangleStrip:
		return "TriangleStrip"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(m))
	}
}

// BlendFactor is a blend equation coefficient.
type BlendFactor uint8

const (
	// One is the constant factor 1.
	One BlendFactor = iota
	// OneMinusSrcAlpha is (1 - source alpha).
	OneMinusSrcAlpha
	// SrcAlpha is the source alpha.
	SrcAlpha
)

// API is the OpenGL surface the rendering backend depends on.
//
// All calls require the owning GPU context to be current on the calling
// thread. Textures are RGBA8; vertex data is float32; index data is
// uint16. None of the methods are safe for concurrent use — the backend
// excludes concurrency by construction.
type API interface {
	// Viewport sets the rendering viewport in pixels.
	Viewport(x, y, width, height int32)

	// EnableBlend enables alpha blending.
	EnableBlend()

	// BlendFunc sets the source and destination blend factors.
	BlendFunc(src, dst BlendFactor)

	// ClearColor sets the color the color buffer is cleared to.
	ClearColor(r, g, b, a float32)

	// Clear clears the color buffer.
	Clear()

	// CreateVertexArray creates and binds a vertex array object.
	CreateVertexArray() (VertexArrayID, error)

	// BindVertexArray binds a vertex array object.
	BindVertexArray(id VertexArrayID)

	// DeleteVertexArray deletes a vertex array object.
	DeleteVertexArray(id VertexArrayID)

	// CreateBuffer creates a buffer object.
	CreateBuffer() BufferID

	// BindBuffer binds a buffer to a target.
	BindBuffer(target BufferTarget, id BufferID)

	// BufferData uploads float32 data to the buffer bound at target.
	BufferData(target BufferTarget, data []float32)

	// IndexBufferData uploads uint16 index data to the buffer bound at
	// ElementArrayBuffer.
	IndexBufferData(data []uint16)

	// DeleteBuffer deletes a buffer object.
	DeleteBuffer(id BufferID)

	// CreateTexture creates a texture object.
	CreateTexture() TextureID

	// BindTexture binds a 2D texture to the active unit.
	BindTexture(id TextureID)

	// ActiveTexture selects the active texture unit (0-based).
	ActiveTexture(unit int)

	// TexImage2D allocates RGBA8 storage for the bound texture and
	// uploads pixels (nil leaves the contents undefined). It also sets
	// linear filtering and clamp-to-edge wrapping.
	TexImage2D(width, height int, pixels []byte)

	// TexSubImage2D uploads RGBA8 pixels into a sub-rectangle of the
	// bound texture.
	TexSubImage2D(x, y, width, height int, pixels []byte)

	// DeleteTexture deletes a texture object.
	DeleteTexture(id TextureID)

	// CompileProgram compiles the vertex and fragment sources and links
	// them into a program. The error carries the driver's info log.
	CompileProgram(vertexSrc, fragmentSrc string) (ProgramID, error)

	// UseProgram makes the program current.
	UseProgram(id ProgramID)

	// DeleteProgram deletes a program object.
	DeleteProgram(id ProgramID)

	// UniformLocation looks up a uniform location by name.
	UniformLocation(p ProgramID, name string) UniformLocation

	// AttribLocation looks up a vertex attribute location by name.
	AttribLocation(p ProgramID, name string) AttribLocation

	// UniformMatrix4 uploads a column-major 4x4 matrix uniform.
	UniformMatrix4(loc UniformLocation, m [16]float32)

	// Uniform4f uploads a vec4 uniform.
	Uniform4f(loc UniformLocation, x, y, z, w float32)

	// Uniform1i uploads an int uniform (texture sampler binding).
	Uniform1i(loc UniformLocation, v int32)

	// EnableVertexAttrib enables a vertex attribute array.
	EnableVertexAttrib(a AttribLocation)

	// DisableVertexAttrib disables a vertex attribute array.
	DisableVertexAttrib(a AttribLocation)

	// VertexAttribPointer points the attribute at the buffer currently
	// bound to ArrayBuffer: components float32 values per vertex,
	// tightly packed from offset 0.
	VertexAttribPointer(a AttribLocation, components int)

	// DrawArrays draws count vertices starting at first.
	DrawArrays(mode DrawMode, first, count int)

	// DrawElements draws count indices from the buffer bound at
	// ElementArrayBuffer.
	DrawElements(mode DrawMode, count int)
}
