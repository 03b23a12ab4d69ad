package gl

import (
	"fmt"
	"image"

	"github.com/Lintangzupan/slint"
	"github.com/Lintangzupan/slint/internal/glapi"
)

// Builder turns declarative draw requests into GPU-resident primitives.
// It holds the renderer's GPU context from creation until the renderer's
// FinishPrimitives, so every Build call may issue GL commands directly.
type Builder struct {
	r *Renderer
}

// BuildFillPath tessellates the path into a triangle mesh and uploads
// it. The returned primitive draws the mesh with the style's solid
// color.
func (b *Builder) BuildFillPath(path *slint.Path, style slint.FillStyle) (slint.Primitive, error) {
	m, err := tessellate(path)
	if err != nil {
		return nil, err
	}
	return &fillPathPrimitive{
		vertices:   newArrayBuffer(b.r.api, m.vertices),
		indices:    newIndexBuffer(b.r.api, m.indices),
		indexCount: len(m.indices),
		style:      style,
	}, nil
}

// BuildImage uploads the image into the texture atlas and creates a
// quad covering destRect that samples the allocated region.
func (b *Builder) BuildImage(destRect slint.Rect, img *image.RGBA) (slint.Primitive, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	alloc, err := b.r.atlas.Allocate(w, h, tightPixels(img))
	if err != nil {
		return nil, fmt.Errorf("gl: image upload: %w", err)
	}

	uv := alloc.UV
	return &texturePrimitive{
		vertices:    newArrayBuffer(b.r.api, quadVertices(destRect.MinX(), destRect.MinY(), destRect.MaxX(), destRect.MaxY())),
		texVertices: newArrayBuffer(b.r.api, uv[:]),
		texture:     alloc.Texture,
	}, nil
}

// BuildGlyphRun shapes the text with the renderer's font, ensures every
// glyph is rasterized and atlas-resident, and uploads one quad per
// visible glyph. Quads are positioned pen-relative with the baseline at
// y=0, so the caller places the run with the draw transform. Glyphs are
// grouped into sub-runs by atlas page so each sub-run draws with one
// texture binding.
func (b *Builder) BuildGlyphRun(s string, color slint.Color) (slint.Primitive, error) {
	glyphs := b.r.shaper.Shape(s, b.r.face)

	// Accumulate quads per atlas page, preserving glyph order within
	// each page.
	type pageGeometry struct {
		texture     glapi.TextureID
		vertices    []float32
		texVertices []float32
	}
	var pages []*pageGeometry
	pageFor := func(tex glapi.TextureID) *pageGeometry {
		for _, p := range pages {
			if p.texture == tex {
				return p
			}
		}
		p := &pageGeometry{texture: tex}
		pages = append(pages, p)
		return p
	}

	var penX float32
	for _, g := range glyphs {
		entry, err := b.r.glyphs.GetOrInsert(b.r.face.Font, g.GID, b.r.face.Size)
		if err != nil {
			return nil, fmt.Errorf("gl: caching glyph %d: %w", g.GID, err)
		}
		if entry.HasBitmap {
			x0 := penX + float32(entry.BearingX)
			y0 := float32(entry.BearingY)
			x1 := x0 + float32(entry.Width)
			y1 := y0 + float32(entry.Height)

			p := pageFor(entry.Alloc.Texture)
			p.vertices = append(p.vertices, quadVertices(x0, y0, x1, y1)...)
			p.texVertices = append(p.texVertices, entry.Alloc.UV[:]...)
		}
		penX += float32(g.XAdvance)
	}

	prim := &glyphRunPrimitive{color: color}
	for _, p := range pages {
		prim.subRuns = append(prim.subRuns, glyphSubRun{
			vertices:    newArrayBuffer(b.r.api, p.vertices),
			texVertices: newArrayBuffer(b.r.api, p.texVertices),
			texture:     p.texture,
		})
	}
	return prim, nil
}

// quadVertices returns the two triangles covering the rectangle, in the
// order top-left, top-right, bottom-right, top-left, bottom-right,
// bottom-left. Atlas UV buffers use the same order.
func quadVertices(x0, y0, x1, y1 float32) []float32 {
	return []float32{
		x0, y0,
		x1, y0,
		x1, y1,
		x0, y0,
		x1, y1,
		x0, y1,
	}
}

// tightPixels returns the image's pixels with stride Width*4, copying
// only when the source has row padding or a non-zero origin.
func tightPixels(img *image.RGBA) []byte {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if img.Stride == w*4 && bounds.Min == (image.Point{}) {
		return img.Pix
	}
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		off := img.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(pix[y*w*4:(y+1)*w*4], img.Pix[off:off+w*4])
	}
	return pix
}
