// Package atlas packs small RGBA images into shared GPU textures so that
// many primitives can be drawn from a handful of texture bindings.
//
// An Atlas owns its backing textures (pages) exclusively and hands out
// Allocation records that primitives hold shared read-only references
// to. Pages are never resized or relocated while allocations referencing
// them are alive, and allocated regions never overlap.
package atlas

import (
	"errors"
	"fmt"

	"github.com/Lintangzupan/slint/internal/glapi"
)

// Atlas errors.
var (
	// ErrAtlasCapacity is returned when allocating would exceed the
	// configured maximum number of atlas pages.
	ErrAtlasCapacity = errors.New("atlas: page limit reached")

	// ErrInvalidSize is returned for non-positive image dimensions.
	ErrInvalidSize = errors.New("atlas: image dimensions must be at least 1x1")

	// ErrAtlasReleased is returned when allocating from a released atlas.
	ErrAtlasReleased = errors.New("atlas: atlas has been released")
)

// Default atlas settings.
const (
	// DefaultPageSize is the default page dimension (2048x2048).
	DefaultPageSize = 2048

	// DefaultPadding is the padding between allocated regions, which
	// keeps linear filtering from bleeding neighboring pixels.
	DefaultPadding = 1

	// DefaultMaxPages bounds total atlas growth.
	DefaultMaxPages = 32
)

// Region is a rectangular texel region within an atlas page.
type Region struct {
	X, Y          int
	Width, Height int
}

// IsValid returns true if the region has positive dimensions.
func (r Region) IsValid() bool { return r.Width > 0 && r.Height > 0 }

// Intersects returns true if the two regions overlap.
func (r Region) Intersects(o Region) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// String returns a string representation of the region.
func (r Region) String() string {
	return fmt.Sprintf("Region(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Allocation is a reserved, uploaded sub-rectangle of an atlas page.
// Allocations are immutable and shared-read by rendering primitives;
// the atlas outlives any primitive referencing one.
type Allocation struct {
	// Texture is the GL texture of the page holding the region.
	Texture glapi.TextureID

	// Region is the reserved sub-rectangle in texels.
	Region Region

	// UV holds the region's normalized texture coordinates as six
	// (u, v) pairs forming two triangles in the quad vertex order
	// top-left, top-right, bottom-right, top-left, bottom-right,
	// bottom-left — matching the vertex buffers builders emit.
	UV [12]float32
}

// Config holds atlas configuration.
type Config struct {
	// PageSize is the width and height of each atlas page in texels.
	// Defaults to DefaultPageSize.
	PageSize int

	// Padding is the spacing between regions. Defaults to DefaultPadding.
	Padding int

	// MaxPages bounds the number of backing textures. Allocations that
	// would exceed it fail with ErrAtlasCapacity.
	// Defaults to DefaultMaxPages.
	MaxPages int
}

// DefaultConfig returns the default atlas configuration.
func DefaultConfig() Config {
	return Config{
		PageSize: DefaultPageSize,
		Padding:  DefaultPadding,
		MaxPages: DefaultMaxPages,
	}
}

// page is one backing texture plus its region allocator.
type page struct {
	texture   glapi.TextureID
	width     int
	height    int
	allocator *RectAllocator
}

// Atlas allocates sub-regions of shared GL textures for images and
// glyphs, uploading pixel data as regions are reserved.
//
// Atlas is not safe for concurrent use: mutation happens only during the
// rendering backend's builder phase, which holds the GPU context
// exclusively (and must be current for every call).
type Atlas struct {
	api      glapi.API
	config   Config
	pages    []*page
	released bool
}

// New creates an empty atlas that creates its pages through api.
func New(api glapi.API, config Config) *Atlas {
	if config.PageSize <= 0 {
		config.PageSize = DefaultPageSize
	}
	if config.Padding < 0 {
		config.Padding = DefaultPadding
	}
	if config.MaxPages <= 0 {
		config.MaxPages = DefaultMaxPages
	}
	return &Atlas{api: api, config: config}
}

// Allocate reserves a width x height region in a page with free space,
// uploads the RGBA8 pixels (stride width*4) into it, and returns the
// allocation. Images larger than the page size get a dedicated page
// sized to fit. Fails with ErrAtlasCapacity once MaxPages is exhausted.
func (a *Atlas) Allocate(width, height int, pixels []byte) (Allocation, error) {
	if a.released {
		return Allocation{}, ErrAtlasReleased
	}
	if width <= 0 || height <= 0 {
		return Allocation{}, ErrInvalidSize
	}

	for _, p := range a.pages {
		region := p.allocator.Allocate(width, height)
		if region.IsValid() {
			return a.upload(p, region, pixels), nil
		}
	}

	p, err := a.newPage(width, height)
	if err != nil {
		return Allocation{}, err
	}
	region := p.allocator.Allocate(width, height)
	if !region.IsValid() {
		// A fresh page sized to fit always has room; reaching this
		// means the allocator and page sizing disagree.
		return Allocation{}, fmt.Errorf("atlas: %dx%d does not fit a fresh %dx%d page",
			width, height, p.width, p.height)
	}
	return a.upload(p, region, pixels), nil
}

// newPage creates a backing texture large enough for a width x height
// allocation, growing beyond the configured page size only for
// oversized images.
func (a *Atlas) newPage(width, height int) (*page, error) {
	if len(a.pages) >= a.config.MaxPages {
		return nil, fmt.Errorf("%w: %d pages of %dx%d",
			ErrAtlasCapacity, len(a.pages), a.config.PageSize, a.config.PageSize)
	}

	pageW := a.config.PageSize
	pageH := a.config.PageSize
	if width+a.config.Padding > pageW {
		pageW = width + a.config.Padding
	}
	if height+a.config.Padding > pageH {
		pageH = height + a.config.Padding
	}

	texture := a.api.CreateTexture()
	a.api.BindTexture(texture)
	a.api.TexImage2D(pageW, pageH, nil)

	p := &page{
		texture:   texture,
		width:     pageW,
		height:    pageH,
		allocator: NewRectAllocator(pageW, pageH, a.config.Padding),
	}
	a.pages = append(a.pages, p)
	return p, nil
}

// upload copies the pixels into the page region and builds the
// allocation record with normalized UV coordinates.
func (a *Atlas) upload(p *page, region Region, pixels []byte) Allocation {
	a.api.BindTexture(p.texture)
	a.api.TexSubImage2D(region.X, region.Y, region.Width, region.Height, pixels)

	u0 := float32(region.X) / float32(p.width)
	v0 := float32(region.Y) / float32(p.height)
	u1 := float32(region.X+region.Width) / float32(p.width)
	v1 := float32(region.Y+region.Height) / float32(p.height)

	return Allocation{
		Texture: p.texture,
		Region:  region,
		UV: [12]float32{
			u0, v0, // top-left
			u1, v0, // top-right
			u1, v1, // bottom-right
			u0, v0, // top-left
			u1, v1, // bottom-right
			u0, v1, // bottom-left
		},
	}
}

// PageCount returns the number of backing textures.
func (a *Atlas) PageCount() int { return len(a.pages) }

// Release deletes all page textures. The context must be current.
// Allocations handed out earlier become invalid.
func (a *Atlas) Release() {
	if a.released {
		return
	}
	for _, p := range a.pages {
		a.api.DeleteTexture(p.texture)
	}
	a.pages = nil
	a.released = true
}
