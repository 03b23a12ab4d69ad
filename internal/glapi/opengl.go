package glapi

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// ErrVertexArray is returned when the driver cannot create a vertex
// array object.
var ErrVertexArray = errors.New("glapi: cannot create vertex array")

// OpenGL implements API over the go-gl OpenGL 3.3 core bindings.
//
// NewOpenGL must be called with the target context current; it loads the
// driver's function pointers. The zero value is not usable.
type OpenGL struct{}

// NewOpenGL initializes the OpenGL function pointers for the context
// current on the calling thread.
func NewOpenGL() (*OpenGL, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glapi: initializing OpenGL: %w", err)
	}
	return &OpenGL{}, nil
}

// Viewport implements API.
func (*OpenGL) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

// EnableBlend implements API.
func (*OpenGL) EnableBlend() {
	gl.Enable(gl.BLEND)
}

// BlendFunc implements API.
func (*OpenGL) BlendFunc(src, dst BlendFactor) {
	gl.BlendFunc(blendFactor(src), blendFactor(dst))
}

func blendFactor(f BlendFactor) uint32 {
	switch f {
	case One:
		return gl.ONE
	case OneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case SrcAlpha:
		return gl.SRC_ALPHA
	default:
		return gl.ONE
	}
}

// ClearColor implements API.
func (*OpenGL) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

// Clear implements API.
func (*OpenGL) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// CreateVertexArray implements API.
func (*OpenGL) CreateVertexArray() (VertexArrayID, error) {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	if vao == 0 {
		return 0, ErrVertexArray
	}
	gl.BindVertexArray(vao)
	return VertexArrayID(vao), nil
}

// BindVertexArray implements API.
func (*OpenGL) BindVertexArray(id VertexArrayID) {
	gl.BindVertexArray(uint32(id))
}

// DeleteVertexArray implements API.
func (*OpenGL) DeleteVertexArray(id VertexArrayID) {
	vao := uint32(id)
	gl.DeleteVertexArrays(1, &vao)
}

// CreateBuffer implements API.
func (*OpenGL) CreateBuffer() BufferID {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return BufferID(buf)
}

// BindBuffer implements API.
func (*OpenGL) BindBuffer(target BufferTarget, id BufferID) {
	gl.BindBuffer(bufferTarget(target), uint32(id))
}

func bufferTarget(t BufferTarget) uint32 {
	if t == ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

// BufferData implements API.
func (*OpenGL) BufferData(target BufferTarget, data []float32) {
	gl.BufferData(bufferTarget(target), 4*len(data), gl.Ptr(data), gl.STATIC_DRAW)
}

// IndexBufferData implements API.
func (*OpenGL) IndexBufferData(data []uint16) {
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 2*len(data), gl.Ptr(data), gl.STATIC_DRAW)
}

// DeleteBuffer implements API.
func (*OpenGL) DeleteBuffer(id BufferID) {
	buf := uint32(id)
	gl.DeleteBuffers(1, &buf)
}

// CreateTexture implements API.
func (*OpenGL) CreateTexture() TextureID {
	var tex uint32
	gl.GenTextures(1, &tex)
	return TextureID(tex)
}

// BindTexture implements API.
func (*OpenGL) BindTexture(id TextureID) {
	gl.BindTexture(gl.TEXTURE_2D, uint32(id))
}

// ActiveTexture implements API.
func (*OpenGL) ActiveTexture(unit int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
}

// TexImage2D implements API.
func (*OpenGL) TexImage2D(width, height int, pixels []byte) {
	var ptr unsafe.Pointer
	if pixels != nil {
		ptr = gl.Ptr(pixels)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, ptr)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
}

// TexSubImage2D implements API.
func (*OpenGL) TexSubImage2D(x, y, width, height int, pixels []byte) {
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, int32(x), int32(y), int32(width), int32(height),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

// DeleteTexture implements API.
func (*OpenGL) DeleteTexture(id TextureID) {
	tex := uint32(id)
	gl.DeleteTextures(1, &tex)
}

// CompileProgram implements API.
func (*OpenGL) CompileProgram(vertexSrc, fragmentSrc string) (ProgramID, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return 0, fmt.Errorf("glapi: vertex shader: %w", err)
	}
	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("glapi: fragment shader: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("glapi: link error: %s", strings.TrimRight(infoLog, "\x00"))
	}
	return ProgramID(program), nil
}

func compileShader(shaderType uint32, source string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile error: %s", strings.TrimRight(infoLog, "\x00"))
	}
	return shader, nil
}

// UseProgram implements API.
func (*OpenGL) UseProgram(id ProgramID) {
	gl.UseProgram(uint32(id))
}

// DeleteProgram implements API.
func (*OpenGL) DeleteProgram(id ProgramID) {
	gl.DeleteProgram(uint32(id))
}

// UniformLocation implements API.
func (*OpenGL) UniformLocation(p ProgramID, name string) UniformLocation {
	return UniformLocation(gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00")))
}

// AttribLocation implements API.
func (*OpenGL) AttribLocation(p ProgramID, name string) AttribLocation {
	return AttribLocation(gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00")))
}

// UniformMatrix4 implements API.
func (*OpenGL) UniformMatrix4(loc UniformLocation, m [16]float32) {
	gl.UniformMatrix4fv(int32(loc), 1, false, &m[0])
}

// Uniform4f implements API.
func (*OpenGL) Uniform4f(loc UniformLocation, x, y, z, w float32) {
	gl.Uniform4f(int32(loc), x, y, z, w)
}

// Uniform1i implements API.
func (*OpenGL) Uniform1i(loc UniformLocation, v int32) {
	gl.Uniform1i(int32(loc), v)
}

// EnableVertexAttrib implements API.
func (*OpenGL) EnableVertexAttrib(a AttribLocation) {
	gl.EnableVertexAttribArray(uint32(a))
}

// DisableVertexAttrib implements API.
func (*OpenGL) DisableVertexAttrib(a AttribLocation) {
	gl.DisableVertexAttribArray(uint32(a))
}

// VertexAttribPointer implements API.
func (*OpenGL) VertexAttribPointer(a AttribLocation, components int) {
	gl.VertexAttribPointerWithOffset(uint32(a), int32(components), gl.FLOAT, false, 0, 0)
}

// DrawArrays implements API.
func (*OpenGL) DrawArrays(mode DrawMode, first, count int) {
	gl.DrawArrays(drawMode(mode), int32(first), int32(count))
}

// DrawElements implements API.
func (*OpenGL) DrawElements(mode DrawMode, count int) {
	gl.DrawElementsWithOffset(drawMode(mode), int32(count), gl.UNSIGNED_SHORT, 0)
}

func drawMode(m DrawMode) uint32 {
	if m == TriangleStrip {
		return gl.TRIANGLE_STRIP
	}
	return gl.TRIANGLES
}
