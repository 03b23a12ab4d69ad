package text

import (
	"fmt"
	"image"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// GlyphBitmap is a rasterized glyph ready for atlas upload.
type GlyphBitmap struct {
	// Pix is premultiplied RGBA8 coverage (white at glyph coverage),
	// stride Width*4. Nil for glyphs with an empty outline, such as
	// spaces.
	Pix []byte

	// Width and Height are the bitmap dimensions in pixels.
	Width, Height int

	// BearingX and BearingY place the bitmap's top-left corner relative
	// to the pen position on the baseline, in the Y-down run coordinate
	// space. BearingY is negative for glyphs that rise above the
	// baseline.
	BearingX, BearingY int

	// Advance is the glyph's nominal horizontal advance in pixels.
	Advance float64
}

// IsEmpty returns true if the glyph produced no coverage (whitespace or
// empty outline).
func (b *GlyphBitmap) IsEmpty() bool { return b.Pix == nil }

// RasterizeGlyph renders the glyph's outline at the given pixel size to
// a coverage bitmap. The bitmap is tightly cropped to the outline's
// bounding box.
func RasterizeGlyph(f *Font, gid GlyphID, ppem float64) (*GlyphBitmap, error) {
	fixedPPEM := fixed.Int26_6(ppem * 64)

	var buf sfnt.Buffer
	segments, err := f.outlines.LoadGlyph(&buf, sfnt.GlyphIndex(gid), fixedPPEM, nil)
	if err != nil {
		return nil, fmt.Errorf("text: loading glyph %d: %w", gid, err)
	}

	advance, err := f.outlines.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), fixedPPEM, 0)
	if err != nil {
		return nil, fmt.Errorf("text: glyph %d advance: %w", gid, err)
	}

	bitmap := &GlyphBitmap{Advance: fixedToFloat(advance)}
	if len(segments) == 0 {
		return bitmap, nil
	}

	minX, minY, maxX, maxY := segmentBounds(segments)
	width := int(maxX) - int(minX)
	height := int(maxY) - int(minY)
	if width <= 0 || height <= 0 {
		return bitmap, nil
	}

	// Rasterize with the outline translated so its bounding box starts
	// at the origin.
	ras := vector.NewRasterizer(width, height)
	dx := -float32(minX)
	dy := -float32(minY)
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			ras.MoveTo(fixedCoord(seg.Args[0].X)+dx, fixedCoord(seg.Args[0].Y)+dy)
		case sfnt.SegmentOpLineTo:
			ras.LineTo(fixedCoord(seg.Args[0].X)+dx, fixedCoord(seg.Args[0].Y)+dy)
		case sfnt.SegmentOpQuadTo:
			ras.QuadTo(
				fixedCoord(seg.Args[0].X)+dx, fixedCoord(seg.Args[0].Y)+dy,
				fixedCoord(seg.Args[1].X)+dx, fixedCoord(seg.Args[1].Y)+dy)
		case sfnt.SegmentOpCubeTo:
			ras.CubeTo(
				fixedCoord(seg.Args[0].X)+dx, fixedCoord(seg.Args[0].Y)+dy,
				fixedCoord(seg.Args[1].X)+dx, fixedCoord(seg.Args[1].Y)+dy,
				fixedCoord(seg.Args[2].X)+dx, fixedCoord(seg.Args[2].Y)+dy)
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	bitmap.Width = width
	bitmap.Height = height
	bitmap.BearingX = int(minX)
	bitmap.BearingY = int(minY)
	bitmap.Pix = alphaToRGBA(mask)
	return bitmap, nil
}

// segmentBounds computes the glyph's bounding box in whole pixels,
// floored at the minimum and ceiled at the maximum.
func segmentBounds(segments sfnt.Segments) (minX, minY, maxX, maxY int32) {
	first := true
	update := func(p fixed.Point26_6) {
		x0, y0 := int32(p.X>>6), int32(p.Y>>6)
		x1, y1 := int32((p.X+63)>>6), int32((p.Y+63)>>6)
		if first {
			minX, minY, maxX, maxY = x0, y0, x1, y1
			first = false
			return
		}
		if x0 < minX {
			minX = x0
		}
		if y0 < minY {
			minY = y0
		}
		if x1 > maxX {
			maxX = x1
		}
		if y1 > maxY {
			maxY = y1
		}
	}
	for _, seg := range segments {
		for i := 0; i < segmentPoints(seg.Op); i++ {
			update(seg.Args[i])
		}
	}
	return minX, minY, maxX, maxY
}

// segmentPoints returns the number of points an outline operation uses.
func segmentPoints(op sfnt.SegmentOp) int {
	switch op {
	case sfnt.SegmentOpQuadTo:
		return 2
	case sfnt.SegmentOpCubeTo:
		return 3
	default:
		return 1
	}
}

// fixedCoord converts a 26.6 coordinate to float32 pixels.
func fixedCoord(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// alphaToRGBA expands an alpha mask into premultiplied white RGBA8,
// the atlas page format.
func alphaToRGBA(mask *image.Alpha) []byte {
	bounds := mask.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := mask.AlphaAt(bounds.Min.X+x, bounds.Min.Y+y).A
			i := (y*w + x) * 4
			pix[i+0] = a
			pix[i+1] = a
			pix[i+2] = a
			pix[i+3] = a
		}
	}
	return pix
}
