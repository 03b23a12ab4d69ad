package glapi

import (
	"bytes"
	"testing"
)

func TestRecorderBufferData(t *testing.T) {
	r := NewRecorder()

	id := r.CreateBuffer()
	r.BindBuffer(ArrayBuffer, id)
	r.BufferData(ArrayBuffer, []float32{1, 2, 3})

	buf := r.Buffers[id]
	if buf == nil {
		t.Fatal("buffer not recorded")
	}
	if len(buf.Float32) != 3 || buf.Float32[2] != 3 {
		t.Errorf("Float32 = %v, want [1 2 3]", buf.Float32)
	}

	r.DeleteBuffer(id)
	if !buf.Deleted {
		t.Error("DeleteBuffer did not mark the buffer deleted")
	}
}

func TestRecorderIndexBufferData(t *testing.T) {
	r := NewRecorder()

	id := r.CreateBuffer()
	r.BindBuffer(ElementArrayBuffer, id)
	r.IndexBufferData([]uint16{0, 1, 2, 0, 2, 3})

	if got := r.Buffers[id].Uint16; len(got) != 6 || got[5] != 3 {
		t.Errorf("Uint16 = %v", got)
	}
}

func TestRecorderTextureCompositing(t *testing.T) {
	r := NewRecorder()

	id := r.CreateTexture()
	r.BindTexture(id)
	r.TexImage2D(4, 4, nil)

	// Upload a 2x2 block of 0xFF at (1, 1).
	block := bytes.Repeat([]byte{0xFF}, 2*2*4)
	r.TexSubImage2D(1, 1, 2, 2, block)

	tex := r.Textures[id]
	if tex.SubUploads != 1 {
		t.Errorf("SubUploads = %d, want 1", tex.SubUploads)
	}
	// Inside the block.
	if tex.Pix[(1*4+1)*4] != 0xFF || tex.Pix[(2*4+2)*4] != 0xFF {
		t.Error("sub-upload pixels missing")
	}
	// Outside the block.
	if tex.Pix[0] != 0 || tex.Pix[(3*4+3)*4] != 0 {
		t.Error("sub-upload wrote outside its rectangle")
	}
}

func TestRecorderCompileProgramLocations(t *testing.T) {
	r := NewRecorder()

	p, err := r.CompileProgram("vertex", "fragment")
	if err != nil {
		t.Fatalf("CompileProgram: %v", err)
	}

	loc := r.UniformLocation(p, "matrix")
	if loc < 0 {
		t.Fatalf("UniformLocation = %d", loc)
	}
	// Lookups are stable.
	if again := r.UniformLocation(p, "matrix"); again != loc {
		t.Errorf("second lookup = %d, want %d", again, loc)
	}
	if other := r.UniformLocation(p, "color"); other == loc {
		t.Error("distinct uniforms share a location")
	}

	if r.UniformLocation(ProgramID(999), "matrix") != -1 {
		t.Error("unknown program should yield location -1")
	}
}

func TestRecorderFailCompile(t *testing.T) {
	r := NewRecorder()
	r.FailCompile = true
	if _, err := r.CompileProgram("v", "f"); err == nil {
		t.Error("CompileProgram should fail when FailCompile is set")
	}
}

func TestRecorderDrawCallSnapshot(t *testing.T) {
	r := NewRecorder()

	p, _ := r.CompileProgram("v", "f")
	r.UseProgram(p)

	buf := r.CreateBuffer()
	r.BindBuffer(ArrayBuffer, buf)
	r.BufferData(ArrayBuffer, []float32{0, 0, 1, 0, 1, 1})

	pos := r.AttribLocation(p, "pos")
	r.EnableVertexAttrib(pos)
	r.VertexAttribPointer(pos, 2)

	color := r.UniformLocation(p, "color")
	r.Uniform4f(color, 1, 0, 0, 1)

	tex := r.CreateTexture()
	r.BindTexture(tex)

	r.DrawArrays(Triangles, 0, 3)

	if len(r.Draws) != 1 {
		t.Fatalf("recorded %d draws, want 1", len(r.Draws))
	}
	call := r.Draws[0]
	if call.Mode != Triangles || call.Count != 3 || call.Indexed {
		t.Errorf("call = %+v", call)
	}
	if call.Program != p || call.Texture != tex {
		t.Errorf("call bound program %d texture %d", call.Program, call.Texture)
	}

	if got := r.UniformValue(call, "color"); got != ([4]float32{1, 0, 0, 1}) {
		t.Errorf("UniformValue(color) = %v", got)
	}
	data := r.AttribData(call, "pos")
	if len(data) != 6 || data[4] != 1 {
		t.Errorf("AttribData(pos) = %v", data)
	}

	// Uniform changes after the draw must not alter the snapshot.
	r.Uniform4f(color, 0, 1, 0, 1)
	if got := r.UniformValue(call, "color"); got != ([4]float32{1, 0, 0, 1}) {
		t.Errorf("snapshot mutated: UniformValue(color) = %v", got)
	}
}

func TestRecorderDrawElements(t *testing.T) {
	r := NewRecorder()

	p, _ := r.CompileProgram("v", "f")
	r.UseProgram(p)

	idx := r.CreateBuffer()
	r.BindBuffer(ElementArrayBuffer, idx)
	r.IndexBufferData([]uint16{0, 1, 2})

	r.DrawElements(Triangles, 3)

	call := r.Draws[0]
	if !call.Indexed || call.ElementBuffer != idx || call.Count != 3 {
		t.Errorf("call = %+v", call)
	}
}

func TestRecorderStateCalls(t *testing.T) {
	r := NewRecorder()

	r.Viewport(0, 0, 800, 600)
	if r.ViewportRect != ([4]int32{0, 0, 800, 600}) {
		t.Errorf("ViewportRect = %v", r.ViewportRect)
	}

	r.EnableBlend()
	r.BlendFunc(One, OneMinusSrcAlpha)
	if !r.BlendEnabled || r.BlendSrc != One || r.BlendDst != OneMinusSrcAlpha {
		t.Error("blend state not recorded")
	}

	r.ClearColor(0.1, 0.2, 0.3, 1)
	r.Clear()
	if r.ClearColorValue != ([4]float32{0.1, 0.2, 0.3, 1}) || r.Clears != 1 {
		t.Error("clear state not recorded")
	}
}

func TestRecorderVertexArray(t *testing.T) {
	r := NewRecorder()
	id, err := r.CreateVertexArray()
	if err != nil {
		t.Fatalf("CreateVertexArray: %v", err)
	}
	if id == 0 {
		t.Error("vertex array id should be non-zero")
	}

	r.FailVertexArray = true
	if _, err := r.CreateVertexArray(); err == nil {
		t.Error("CreateVertexArray should fail when FailVertexArray is set")
	}
}
