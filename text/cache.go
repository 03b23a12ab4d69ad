package text

import (
	"github.com/Lintangzupan/slint/internal/atlas"
	"golang.org/x/image/math/fixed"
)

// CacheKey uniquely identifies a cached, atlas-resident glyph.
type CacheKey struct {
	// FontID is the process-unique identifier of the font.
	FontID uint64

	// GID is the glyph index within the font.
	GID GlyphID

	// PPEM is the pixel size in 26.6 fixed point, so fractional sizes
	// get distinct entries.
	PPEM fixed.Int26_6
}

// CacheEntry is an immutable cached glyph: its atlas allocation plus the
// metadata layout needs. Entries never change once inserted.
type CacheEntry struct {
	// Alloc is the glyph's atlas region. Only valid if HasBitmap.
	Alloc atlas.Allocation

	// HasBitmap is false for glyphs with no coverage (spaces); such
	// glyphs occupy no atlas space and emit no geometry.
	HasBitmap bool

	// Width and Height are the bitmap dimensions in pixels.
	Width, Height int

	// BearingX and BearingY place the bitmap's top-left corner relative
	// to the pen position on the baseline.
	BearingX, BearingY int

	// Advance is the glyph's nominal horizontal advance in pixels.
	Advance float64
}

// CacheStats holds glyph cache counters.
type CacheStats struct {
	Hits       uint64
	Misses     uint64
	Insertions uint64
}

// GlyphCache maps (font, glyph, size) to atlas-resident glyph images,
// rasterizing and uploading each glyph at most once.
//
// GlyphCache is not safe for concurrent use: the rendering backend
// mutates it only during the builder phase, and the exclusive
// make-current token already serializes that phase. The GPU context
// must be current for calls that can upload (GetOrInsert on a miss).
type GlyphCache struct {
	atlas   *atlas.Atlas
	entries map[CacheKey]CacheEntry
	stats   CacheStats
}

// NewGlyphCache creates a cache that uploads glyph bitmaps to a.
func NewGlyphCache(a *atlas.Atlas) *GlyphCache {
	return &GlyphCache{
		atlas:   a,
		entries: make(map[CacheKey]CacheEntry, 256),
	}
}

// GetOrInsert returns the cached entry for the glyph, rasterizing and
// atlas-uploading it first if this is the first request for this
// (font, glyph, size) combination.
func (c *GlyphCache) GetOrInsert(f *Font, gid GlyphID, ppem float64) (CacheEntry, error) {
	key := CacheKey{FontID: f.ID(), GID: gid, PPEM: floatToFixed(ppem)}
	if entry, ok := c.entries[key]; ok {
		c.stats.Hits++
		return entry, nil
	}
	c.stats.Misses++

	bitmap, err := RasterizeGlyph(f, gid, ppem)
	if err != nil {
		return CacheEntry{}, err
	}

	entry := CacheEntry{
		Width:    bitmap.Width,
		Height:   bitmap.Height,
		BearingX: bitmap.BearingX,
		BearingY: bitmap.BearingY,
		Advance:  bitmap.Advance,
	}
	if !bitmap.IsEmpty() {
		alloc, err := c.atlas.Allocate(bitmap.Width, bitmap.Height, bitmap.Pix)
		if err != nil {
			return CacheEntry{}, err
		}
		entry.Alloc = alloc
		entry.HasBitmap = true
	}

	c.entries[key] = entry
	c.stats.Insertions++
	return entry, nil
}

// Len returns the number of cached glyphs.
func (c *GlyphCache) Len() int { return len(c.entries) }

// Stats returns the cache counters.
func (c *GlyphCache) Stats() CacheStats { return c.stats }
