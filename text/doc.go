// Package text turns UTF-8 strings into positioned, atlas-resident
// glyph images for the rendering backend.
//
// The pipeline has three stages:
//
//   - Shaping: a string is mapped to a sequence of font-dependent glyph
//     identifiers with advances, via go-text/typesetting's HarfBuzz
//     implementation. The run direction is detected with the Unicode
//     bidi algorithm.
//   - Rasterizing: each glyph outline is loaded from the font and
//     rendered once to an alpha bitmap.
//   - Caching: rasterized glyphs are uploaded into the shared texture
//     atlas exactly once per (font, glyph, size) combination; cache
//     entries are immutable.
//
// Layout is a plain left-to-right advance accumulation performed by the
// rendering backend's primitive builder on top of the shaped glyphs.
package text
