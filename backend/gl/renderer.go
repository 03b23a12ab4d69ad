package gl

import (
	"fmt"

	"github.com/Lintangzupan/slint"
	"github.com/Lintangzupan/slint/internal/atlas"
	"github.com/Lintangzupan/slint/internal/glapi"
	"github.com/Lintangzupan/slint/text"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontSize is the pixel size text is shaped at when the
// configuration does not set one.
const DefaultFontSize = 16

// Config holds renderer configuration.
type Config struct {
	// AtlasPageSize is the dimension of atlas pages in texels.
	// Zero means the atlas default.
	AtlasPageSize int

	// AtlasMaxPages bounds atlas growth. Zero means the atlas default.
	AtlasMaxPages int

	// FontData is the TTF or OTF font text is shaped and rasterized
	// with. Nil selects the bundled Go Regular font.
	FontData []byte

	// FontSize is the text pixel size. Zero means DefaultFontSize.
	FontSize float64
}

// DefaultConfig returns the default renderer configuration.
func DefaultConfig() Config {
	return Config{
		AtlasPageSize: atlas.DefaultPageSize,
		AtlasMaxPages: atlas.DefaultMaxPages,
		FontSize:      DefaultFontSize,
	}
}

// Renderer is the OpenGL implementation of slint.Backend. It owns the
// surface's GPU context, the shader programs, the texture atlas and
// the glyph cache.
type Renderer struct {
	api glapi.API
	ctx glContext

	vao         glapi.VertexArrayID
	pathShader  *pathShader
	imageShader *imageShader
	glyphShader *glyphShader

	atlas  *atlas.Atlas
	shaper *text.Shaper
	glyphs *text.GlyphCache
	face   text.Face
}

func init() {
	slint.RegisterBackend("gl", 100, func(surface slint.Surface) (slint.Backend, error) {
		return New(surface, DefaultConfig())
	})
}

// New creates a renderer bound to the surface. It makes the context
// current, initializes the GL bindings, compiles the shader programs
// and builds the atlas and text pipeline, then detaches the context
// again so the renderer starts idle.
func New(surface slint.Surface, cfg Config) (*Renderer, error) {
	if err := surface.MakeCurrent(); err != nil {
		return nil, fmt.Errorf("gl: make current: %w", err)
	}
	api, err := glapi.NewOpenGL()
	if err != nil {
		_ = surface.DetachCurrent()
		return nil, fmt.Errorf("gl: initializing bindings: %w", err)
	}
	r, err := newRenderer(api, surface, cfg)
	if err != nil {
		_ = surface.DetachCurrent()
		return nil, err
	}
	if err := surface.DetachCurrent(); err != nil {
		return nil, fmt.Errorf("gl: detach current: %w", err)
	}
	return r, nil
}

// newRenderer builds the renderer over an already-current context.
// Tests call it directly with a recording API.
func newRenderer(api glapi.API, surface slint.Surface, cfg Config) (*Renderer, error) {
	if cfg.FontSize <= 0 {
		cfg.FontSize = DefaultFontSize
	}
	fontData := cfg.FontData
	if fontData == nil {
		fontData = goregular.TTF
	}

	vao, err := api.CreateVertexArray()
	if err != nil {
		return nil, fmt.Errorf("gl: creating vertex array: %w", err)
	}

	r := &Renderer{
		api: api,
		ctx: glContext{surface: surface},
		vao: vao,
	}

	if r.pathShader, err = newPathShader(api); err != nil {
		r.releaseGPU()
		return nil, err
	}
	if r.imageShader, err = newImageShader(api); err != nil {
		r.releaseGPU()
		return nil, err
	}
	if r.glyphShader, err = newGlyphShader(api); err != nil {
		r.releaseGPU()
		return nil, err
	}

	atlasCfg := atlas.DefaultConfig()
	if cfg.AtlasPageSize > 0 {
		atlasCfg.PageSize = cfg.AtlasPageSize
	}
	if cfg.AtlasMaxPages > 0 {
		atlasCfg.MaxPages = cfg.AtlasMaxPages
	}
	r.atlas = atlas.New(api, atlasCfg)

	fnt, err := text.Parse(fontData)
	if err != nil {
		r.releaseGPU()
		return nil, fmt.Errorf("gl: parsing font: %w", err)
	}
	r.face = text.NewFace(fnt, cfg.FontSize)
	r.shaper = text.NewShaper()
	r.glyphs = text.NewGlyphCache(r.atlas)

	slint.Logger().Info("gl: renderer created",
		"atlasPageSize", atlasCfg.PageSize, "fontSize", cfg.FontSize)
	return r, nil
}

// Name returns "gl".
func (r *Renderer) Name() string { return "gl" }

// NewPrimitivesBuilder makes the context current and returns a builder
// holding it. It fails with ErrContextHeld while a builder or frame is
// live.
func (r *Renderer) NewPrimitivesBuilder() (slint.PrimitivesBuilder, error) {
	if err := r.ctx.acquire(phaseBuilding); err != nil {
		return nil, err
	}
	r.api.BindVertexArray(r.vao)
	return &Builder{r: r}, nil
}

// FinishPrimitives releases the context held by the builder. The
// builder must not be used afterwards; primitives it produced stay
// valid.
func (r *Renderer) FinishPrimitives(b slint.PrimitivesBuilder) error {
	gb, ok := b.(*Builder)
	if !ok || gb.r != r {
		return ErrWrongRenderer
	}
	return r.ctx.release(phaseBuilding)
}

// NewFrame makes the context current, configures the viewport and
// premultiplied-alpha blending for the surface size, clears to the
// given color and returns the frame.
func (r *Renderer) NewFrame(width, height int, clear slint.Color) (slint.Frame, error) {
	if err := r.ctx.acquire(phaseDrawing); err != nil {
		return nil, err
	}
	r.api.BindVertexArray(r.vao)
	r.api.Viewport(0, 0, int32(width), int32(height))
	r.api.EnableBlend()
	r.api.BlendFunc(glapi.One, glapi.OneMinusSrcAlpha)
	r.api.ClearColor(clear.R, clear.G, clear.B, clear.A)
	r.api.Clear()
	return &Frame{
		r:          r,
		projection: slint.Ortho2D(float32(width), float32(height)),
	}, nil
}

// PresentFrame swaps the surface buffers and releases the context held
// by the frame.
func (r *Renderer) PresentFrame(f slint.Frame) error {
	gf, ok := f.(*Frame)
	if !ok || gf.r != r {
		return ErrWrongRenderer
	}
	// Swapping requires a current context; refuse stale frames before
	// touching the surface.
	if !r.ctx.held(phaseDrawing) {
		return fmt.Errorf("%w: context is in phase %s, not %s",
			ErrContextNotHeld, r.ctx.phase, phaseDrawing)
	}
	if err := r.ctx.surface.SwapBuffers(); err != nil {
		return fmt.Errorf("gl: swap buffers: %w", err)
	}
	return r.ctx.release(phaseDrawing)
}

// Release frees every GPU resource the renderer owns. The renderer
// must be idle; the context is acquired for the duration of the
// teardown and detached again.
func (r *Renderer) Release() {
	if err := r.ctx.surface.MakeCurrent(); err != nil {
		slint.Logger().Error("gl: release: make current", "err", err)
		return
	}
	r.releaseGPU()
	if err := r.ctx.surface.DetachCurrent(); err != nil {
		slint.Logger().Error("gl: release: detach current", "err", err)
	}
}

// releaseGPU frees shader programs, atlas pages and the vertex array.
// The context must be current.
func (r *Renderer) releaseGPU() {
	if r.pathShader != nil {
		r.pathShader.release()
		r.pathShader = nil
	}
	if r.imageShader != nil {
		r.imageShader.release()
		r.imageShader = nil
	}
	if r.glyphShader != nil {
		r.glyphShader.release()
		r.glyphShader = nil
	}
	if r.atlas != nil {
		r.atlas.Release()
		r.atlas = nil
	}
	r.api.DeleteVertexArray(r.vao)
}
