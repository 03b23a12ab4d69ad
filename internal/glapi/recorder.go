package glapi

import "fmt"

// RecordedBuffer is the retained state of a buffer object.
type RecordedBuffer struct {
	// Float32 holds the last BufferData upload.
	Float32 []float32
	// Uint16 holds the last IndexBufferData upload.
	Uint16 []uint16
	// Deleted is set by DeleteBuffer.
	Deleted bool
}

// RecordedTexture is the retained state of a texture object.
type RecordedTexture struct {
	Width, Height int
	// Pix holds the RGBA8 contents, composited from TexImage2D and
	// TexSubImage2D uploads, stride Width*4.
	Pix []byte
	// SubUploads counts TexSubImage2D calls on this texture.
	SubUploads int
	// Deleted is set by DeleteTexture.
	Deleted bool
}

// RecordedProgram is the retained state of a program object.
type RecordedProgram struct {
	VertexSrc   string
	FragmentSrc string
	Uniforms    map[string]UniformLocation
	Attribs     map[string]AttribLocation
	Deleted     bool

	nextUniform UniformLocation
	nextAttrib  AttribLocation
}

// AttribBinding records which buffer a vertex attribute reads from.
type AttribBinding struct {
	Buffer     BufferID
	Components int
}

// DrawCall is one recorded DrawArrays or DrawElements dispatch, with the
// GL state snapshotted at dispatch time.
type DrawCall struct {
	Mode    DrawMode
	First   int
	Count   int
	Indexed bool

	Program       ProgramID
	Texture       TextureID
	ElementBuffer BufferID
	// Attribs maps enabled attribute locations to their buffer binding.
	Attribs map[AttribLocation]AttribBinding
	// Uniforms holds the current program's uniform values: [4]float32
	// for vec4, [16]float32 for mat4, int32 for samplers.
	Uniforms map[UniformLocation]any
}

// Recorder is an in-memory API implementation for tests. It retains
// uploaded buffer and texture contents and keeps an ordered log of draw
// calls with the state that was bound when each was issued.
//
// Recorder is not safe for concurrent use, matching the single-threaded
// contract of API.
type Recorder struct {
	Buffers  map[BufferID]*RecordedBuffer
	Textures map[TextureID]*RecordedTexture
	Programs map[ProgramID]*RecordedProgram
	Draws    []DrawCall

	// FailCompile makes CompileProgram return an error, for exercising
	// startup failure paths.
	FailCompile bool
	// FailVertexArray makes CreateVertexArray return an error.
	FailVertexArray bool

	// ViewportRect is the last Viewport call (x, y, w, h).
	ViewportRect [4]int32
	// ClearColorValue is the last ClearColor call.
	ClearColorValue [4]float32
	// Clears counts Clear calls.
	Clears int
	// BlendEnabled is set by EnableBlend.
	BlendEnabled bool
	// BlendSrc and BlendDst are the last BlendFunc factors.
	BlendSrc, BlendDst BlendFactor

	nextBuffer      BufferID
	nextTexture     TextureID
	nextProgram     ProgramID
	nextVertexArray VertexArrayID

	boundArray   BufferID
	boundElement BufferID
	boundTexture TextureID
	activeUnit   int
	curProgram   ProgramID
	vertexArray  VertexArrayID

	attribs map[AttribLocation]AttribBinding
	// uniform values per program
	uniforms map[ProgramID]map[UniformLocation]any
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		Buffers:  make(map[BufferID]*RecordedBuffer),
		Textures: make(map[TextureID]*RecordedTexture),
		Programs: make(map[ProgramID]*RecordedProgram),
		attribs:  make(map[AttribLocation]AttribBinding),
		uniforms: make(map[ProgramID]map[UniformLocation]any),
	}
}

// Viewport implements API.
func (r *Recorder) Viewport(x, y, width, height int32) {
	r.ViewportRect = [4]int32{x, y, width, height}
}

// EnableBlend implements API.
func (r *Recorder) EnableBlend() { r.BlendEnabled = true }

// BlendFunc implements API.
func (r *Recorder) BlendFunc(src, dst BlendFactor) {
	r.BlendSrc, r.BlendDst = src, dst
}

// ClearColor implements API.
func (r *Recorder) ClearColor(red, g, b, a float32) {
	r.ClearColorValue = [4]float32{red, g, b, a}
}

// Clear implements API.
func (r *Recorder) Clear() { r.Clears++ }

// CreateVertexArray implements API.
func (r *Recorder) CreateVertexArray() (VertexArrayID, error) {
	if r.FailVertexArray {
		return 0, ErrVertexArray
	}
	r.nextVertexArray++
	r.vertexArray = r.nextVertexArray
	return r.nextVertexArray, nil
}

// BindVertexArray implements API.
func (r *Recorder) BindVertexArray(id VertexArrayID) { r.vertexArray = id }

// DeleteVertexArray implements API.
func (r *Recorder) DeleteVertexArray(id VertexArrayID) {
	if r.vertexArray == id {
		r.vertexArray = 0
	}
}

// CreateBuffer implements API.
func (r *Recorder) CreateBuffer() BufferID {
	r.nextBuffer++
	r.Buffers[r.nextBuffer] = &RecordedBuffer{}
	return r.nextBuffer
}

// BindBuffer implements API.
func (r *Recorder) BindBuffer(target BufferTarget, id BufferID) {
	if target == ElementArrayBuffer {
		r.boundElement = id
	} else {
		r.boundArray = id
	}
}

// BufferData implements API.
func (r *Recorder) BufferData(target BufferTarget, data []float32) {
	id := r.boundArray
	if target == ElementArrayBuffer {
		id = r.boundElement
	}
	if buf, ok := r.Buffers[id]; ok {
		buf.Float32 = append([]float32(nil), data...)
	}
}

// IndexBufferData implements API.
func (r *Recorder) IndexBufferData(data []uint16) {
	if buf, ok := r.Buffers[r.boundElement]; ok {
		buf.Uint16 = append([]uint16(nil), data...)
	}
}

// DeleteBuffer implements API.
func (r *Recorder) DeleteBuffer(id BufferID) {
	if buf, ok := r.Buffers[id]; ok {
		buf.Deleted = true
	}
}

// CreateTexture implements API.
func (r *Recorder) CreateTexture() TextureID {
	r.nextTexture++
	r.Textures[r.nextTexture] = &RecordedTexture{}
	return r.nextTexture
}

// BindTexture implements API.
func (r *Recorder) BindTexture(id TextureID) { r.boundTexture = id }

// ActiveTexture implements API.
func (r *Recorder) ActiveTexture(unit int) { r.activeUnit = unit }

// TexImage2D implements API.
func (r *Recorder) TexImage2D(width, height int, pixels []byte) {
	tex, ok := r.Textures[r.boundTexture]
	if !ok {
		return
	}
	tex.Width, tex.Height = width, height
	tex.Pix = make([]byte, width*height*4)
	copy(tex.Pix, pixels)
}

// TexSubImage2D implements API.
func (r *Recorder) TexSubImage2D(x, y, width, height int, pixels []byte) {
	tex, ok := r.Textures[r.boundTexture]
	if !ok || tex.Pix == nil {
		return
	}
	tex.SubUploads++
	for row := 0; row < height; row++ {
		dst := ((y+row)*tex.Width + x) * 4
		src := row * width * 4
		copy(tex.Pix[dst:dst+width*4], pixels[src:src+width*4])
	}
}

// DeleteTexture implements API.
func (r *Recorder) DeleteTexture(id TextureID) {
	if tex, ok := r.Textures[id]; ok {
		tex.Deleted = true
	}
}

// CompileProgram implements API.
func (r *Recorder) CompileProgram(vertexSrc, fragmentSrc string) (ProgramID, error) {
	if r.FailCompile {
		return 0, fmt.Errorf("glapi: link error: forced failure")
	}
	r.nextProgram++
	r.Programs[r.nextProgram] = &RecordedProgram{
		VertexSrc:   vertexSrc,
		FragmentSrc: fragmentSrc,
		Uniforms:    make(map[string]UniformLocation),
		Attribs:     make(map[string]AttribLocation),
	}
	r.uniforms[r.nextProgram] = make(map[UniformLocation]any)
	return r.nextProgram, nil
}

// UseProgram implements API.
func (r *Recorder) UseProgram(id ProgramID) { r.curProgram = id }

// DeleteProgram implements API.
func (r *Recorder) DeleteProgram(id ProgramID) {
	if p, ok := r.Programs[id]; ok {
		p.Deleted = true
	}
}

// UniformLocation implements API.
func (r *Recorder) UniformLocation(p ProgramID, name string) UniformLocation {
	prog, ok := r.Programs[p]
	if !ok {
		return -1
	}
	if loc, ok := prog.Uniforms[name]; ok {
		return loc
	}
	loc := prog.nextUniform
	prog.nextUniform++
	prog.Uniforms[name] = loc
	return loc
}

// AttribLocation implements API.
func (r *Recorder) AttribLocation(p ProgramID, name string) AttribLocation {
	prog, ok := r.Programs[p]
	if !ok {
		return -1
	}
	if loc, ok := prog.Attribs[name]; ok {
		return loc
	}
	loc := prog.nextAttrib
	prog.nextAttrib++
	prog.Attribs[name] = loc
	return loc
}

// UniformMatrix4 implements API.
func (r *Recorder) UniformMatrix4(loc UniformLocation, m [16]float32) {
	r.setUniform(loc, m)
}

// Uniform4f implements API.
func (r *Recorder) Uniform4f(loc UniformLocation, x, y, z, w float32) {
	r.setUniform(loc, [4]float32{x, y, z, w})
}

// Uniform1i implements API.
func (r *Recorder) Uniform1i(loc UniformLocation, v int32) {
	r.setUniform(loc, v)
}

func (r *Recorder) setUniform(loc UniformLocation, v any) {
	if vals, ok := r.uniforms[r.curProgram]; ok {
		vals[loc] = v
	}
}

// EnableVertexAttrib implements API.
func (r *Recorder) EnableVertexAttrib(a AttribLocation) {
	if _, ok := r.attribs[a]; !ok {
		r.attribs[a] = AttribBinding{}
	}
}

// DisableVertexAttrib implements API.
func (r *Recorder) DisableVertexAttrib(a AttribLocation) {
	delete(r.attribs, a)
}

// VertexAttribPointer implements API.
func (r *Recorder) VertexAttribPointer(a AttribLocation, components int) {
	r.attribs[a] = AttribBinding{Buffer: r.boundArray, Components: components}
}

// DrawArrays implements API.
func (r *Recorder) DrawArrays(mode DrawMode, first, count int) {
	r.record(DrawCall{Mode: mode, First: first, Count: count})
}

// DrawElements implements API.
func (r *Recorder) DrawElements(mode DrawMode, count int) {
	r.record(DrawCall{Mode: mode, Count: count, Indexed: true, ElementBuffer: r.boundElement})
}

func (r *Recorder) record(call DrawCall) {
	call.Program = r.curProgram
	call.Texture = r.boundTexture
	call.Attribs = make(map[AttribLocation]AttribBinding, len(r.attribs))
	for loc, b := range r.attribs {
		call.Attribs[loc] = b
	}
	call.Uniforms = make(map[UniformLocation]any)
	for loc, v := range r.uniforms[r.curProgram] {
		call.Uniforms[loc] = v
	}
	r.Draws = append(r.Draws, call)
}

// UniformValue resolves a uniform by name on the draw call's program and
// returns its recorded value, or nil if never set.
func (r *Recorder) UniformValue(call DrawCall, name string) any {
	prog, ok := r.Programs[call.Program]
	if !ok {
		return nil
	}
	loc, ok := prog.Uniforms[name]
	if !ok {
		return nil
	}
	return call.Uniforms[loc]
}

// AttribData resolves an attribute by name on the draw call's program
// and returns the float32 contents of the buffer it points at.
func (r *Recorder) AttribData(call DrawCall, name string) []float32 {
	prog, ok := r.Programs[call.Program]
	if !ok {
		return nil
	}
	loc, ok := prog.Attribs[name]
	if !ok {
		return nil
	}
	binding, ok := call.Attribs[loc]
	if !ok {
		return nil
	}
	buf, ok := r.Buffers[binding.Buffer]
	if !ok {
		return nil
	}
	return buf.Float32
}

var _ API = (*Recorder)(nil)
var _ API = (*OpenGL)(nil)
