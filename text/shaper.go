package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// ShapedGlyph is one glyph produced by shaping, in logical order.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the source rune index in the original text.
	Cluster int

	// XAdvance is the horizontal advance to the next glyph in pixels.
	XAdvance float64
}

// Shaper maps strings to glyph sequences using go-text/typesetting's
// HarfBuzz implementation, with ligatures, kerning and complex-script
// support.
//
// Shaper is safe for sequential reuse; the underlying HarfbuzzShaper
// instances carry mutable state and are pooled per call.
type Shaper struct {
	// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has an
	// internal buffer and is not safe for concurrent use, but reusing
	// across sequential calls avoids reallocation.
	shaperPool sync.Pool
}

// NewShaper creates a shaper.
func NewShaper() *Shaper {
	return &Shaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Shape converts text into a glyph sequence for the face. The run
// direction is resolved with DominantDirection; right-to-left text is
// shaped in visual order. An empty string yields an empty slice.
func (s *Shaper) Shape(text string, face Face) []ShapedGlyph {
	if text == "" || face.Font == nil {
		return nil
	}

	runes := []rune(text)
	dir := di.DirectionLTR
	if DominantDirection(text) == DirectionRTL {
		dir = di.DirectionRTL
	}

	// font.Face is not safe for concurrent use; font.NewFace is cheap,
	// wrapping the read-only *Font with fresh glyph caches.
	goTextFace := font.NewFace(face.Font.shaping)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      goTextFace,
		Size:      floatToFixed(face.Size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hbShaper := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	s.shaperPool.Put(hbShaper)

	if len(output.Glyphs) == 0 {
		return nil
	}

	result := make([]ShapedGlyph, len(output.Glyphs))
	for i, g := range output.Glyphs {
		result[i] = ShapedGlyph{
			GID:      GlyphID(g.GlyphID),
			Cluster:  g.ClusterIndex,
			XAdvance: fixedToFloat(g.XAdvance),
		}
	}
	return result
}

// detectScript inspects the runes and returns the script of the first
// non-space character. For mixed-script text, callers should split runs
// by script before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 pixel size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
