package text

import (
	"bytes"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
)

// ErrEmptyFontData is returned when font data is empty.
var ErrEmptyFontData = errors.New("text: empty font data")

// GlyphID is the index of a glyph within a font.
type GlyphID uint32

// nextFontID provides process-unique font identifiers for cache keys.
var nextFontID atomic.Uint64

// Font is a parsed TTF or OTF font.
//
// The same data is parsed twice on purpose: go-text/typesetting drives
// HarfBuzz shaping, while x/image's sfnt loads glyph outlines for
// rasterization. Both representations are read-only after parsing.
type Font struct {
	id uint64

	// shaping is the go-text font used by the shaper.
	shaping *font.Font

	// outlines is the sfnt font glyph bitmaps are rasterized from.
	outlines *sfnt.Font
}

// Parse parses TTF or OTF font data.
func Parse(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	goTextFace, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parsing font for shaping: %w", err)
	}

	sfntFont, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parsing font outlines: %w", err)
	}

	return &Font{
		id:       nextFontID.Add(1),
		shaping:  goTextFace.Font,
		outlines: sfntFont,
	}, nil
}

// ID returns the process-unique identifier of this font, used in glyph
// cache keys.
func (f *Font) ID() uint64 { return f.id }

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int { return f.outlines.NumGlyphs() }

// Face pairs a font with a pixel size. Face is a small value type;
// create them freely.
type Face struct {
	// Font is the parsed font.
	Font *Font

	// Size is the font size in pixels per em.
	Size float64
}

// NewFace creates a face for the font at the given pixel size.
func NewFace(f *Font, size float64) Face {
	return Face{Font: f, Size: size}
}
