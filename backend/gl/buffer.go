package gl

import (
	"github.com/Lintangzupan/slint"
	"github.com/Lintangzupan/slint/internal/glapi"
)

// arrayBuffer is an owned GPU buffer holding float32 vertex data.
// GPU buffers have no finalizer; release must be called exactly once,
// with the context current.
type arrayBuffer struct {
	api glapi.API
	id  glapi.BufferID
	// count is the number of float32 values uploaded.
	count    int
	released bool
}

// newArrayBuffer creates a buffer and uploads data to it.
func newArrayBuffer(api glapi.API, data []float32) *arrayBuffer {
	b := &arrayBuffer{api: api, id: api.CreateBuffer(), count: len(data)}
	api.BindBuffer(glapi.ArrayBuffer, b.id)
	api.BufferData(glapi.ArrayBuffer, data)
	return b
}

// bindAttrib points the vertex attribute at this buffer's data:
// components float32 values per vertex, tightly packed.
func (b *arrayBuffer) bindAttrib(attrib glapi.AttribLocation, components int) {
	b.api.BindBuffer(glapi.ArrayBuffer, b.id)
	b.api.EnableVertexAttrib(attrib)
	b.api.VertexAttribPointer(attrib, components)
}

// release deletes the GPU buffer. Releasing twice is a logged no-op.
func (b *arrayBuffer) release() {
	if b.released {
		slint.Logger().Warn("gl: array buffer released twice", "buffer", b.id)
		return
	}
	b.api.DeleteBuffer(b.id)
	b.released = true
}

// indexBuffer is an owned GPU buffer holding uint16 index data.
type indexBuffer struct {
	api glapi.API
	id  glapi.BufferID
	// count is the number of indices uploaded.
	count    int
	released bool
}

// newIndexBuffer creates an index buffer and uploads data to it.
func newIndexBuffer(api glapi.API, data []uint16) *indexBuffer {
	b := &indexBuffer{api: api, id: api.CreateBuffer(), count: len(data)}
	api.BindBuffer(glapi.ElementArrayBuffer, b.id)
	api.IndexBufferData(data)
	return b
}

// bind binds the buffer for indexed drawing.
func (b *indexBuffer) bind() {
	b.api.BindBuffer(glapi.ElementArrayBuffer, b.id)
}

// release deletes the GPU buffer. Releasing twice is a logged no-op.
func (b *indexBuffer) release() {
	if b.released {
		slint.Logger().Warn("gl: index buffer released twice", "buffer", b.id)
		return
	}
	b.api.DeleteBuffer(b.id)
	b.released = true
}
