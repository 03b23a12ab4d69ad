package gl

import (
	"github.com/Lintangzupan/slint"
	"github.com/Lintangzupan/slint/internal/glapi"
)

// glPrimitive is the backend-private face of a rendering primitive:
// it can draw itself with a combined projection*transform matrix and
// release its GPU buffers.
type glPrimitive interface {
	slint.Primitive

	// draw issues the GL calls for this primitive. The renderer's
	// context must be current.
	draw(r *Renderer, matrix [16]float32)
}

// fillPathPrimitive is a tessellated path mesh with a solid fill.
type fillPathPrimitive struct {
	vertices   *arrayBuffer
	indices    *indexBuffer
	indexCount int
	style      slint.FillStyle
}

func (p *fillPathPrimitive) draw(r *Renderer, matrix [16]float32) {
	if p.indexCount == 0 {
		return
	}
	r.pathShader.bind(matrix, p.style.Color.Components(), p.vertices, p.indices)
	r.api.DrawElements(glapi.Triangles, p.indexCount)
}

// Release frees the primitive's GPU buffers. Safe to call more than
// once; later calls log and do nothing.
func (p *fillPathPrimitive) Release() {
	p.vertices.release()
	p.indices.release()
}

// texturePrimitive is a textured quad referencing one atlas page.
type texturePrimitive struct {
	vertices    *arrayBuffer
	texVertices *arrayBuffer
	texture     glapi.TextureID
}

func (p *texturePrimitive) draw(r *Renderer, matrix [16]float32) {
	r.imageShader.bind(matrix, p.texture, p.vertices, p.texVertices)
	r.api.DrawArrays(glapi.Triangles, 0, p.vertices.count/2)
}

// Release frees the primitive's GPU buffers. The referenced atlas
// texture stays owned by the atlas.
func (p *texturePrimitive) Release() {
	p.vertices.release()
	p.texVertices.release()
}

// glyphSubRun is the slice of a glyph run whose glyphs landed on one
// atlas page. A run spanning several pages yields one sub-run per
// page so each draw call binds a single texture.
type glyphSubRun struct {
	vertices    *arrayBuffer
	texVertices *arrayBuffer
	texture     glapi.TextureID
}

// glyphRunPrimitive is a shaped glyph run, split per atlas page,
// tinted with a single color at draw time.
type glyphRunPrimitive struct {
	subRuns []glyphSubRun
	color   slint.Color
}

func (p *glyphRunPrimitive) draw(r *Renderer, matrix [16]float32) {
	color := p.color.Components()
	for _, sub := range p.subRuns {
		r.glyphShader.bind(matrix, color, sub.texture, sub.vertices, sub.texVertices)
		r.api.DrawArrays(glapi.Triangles, 0, sub.vertices.count/2)
	}
}

// Release frees the GPU buffers of every sub-run. Atlas textures and
// cached glyph bitmaps are unaffected.
func (p *glyphRunPrimitive) Release() {
	for _, sub := range p.subRuns {
		sub.vertices.release()
		sub.texVertices.release()
	}
}
