// Package render implements the supersampled raster backend for dashboard
// frames.
//
// The [Renderer] owns canvas allocation, font resolution, the vector icon
// catalog, and final export. Drawing happens through a [Context], which wraps
// one canvas in a widget-local coordinate frame and exposes the primitive
// operations (anchored text, shapes, gauges, charts, icons).
//
// All canvases are rendered at an integer supersample factor of the 240×240
// logical resolution and downscaled once at export for smoother edges. A
// canvas is exclusively owned by one render cycle and discarded after
// encoding; the Renderer itself is reusable across cycles.
package render

import (
	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"

	"github.com/panelkit/panelkit/pkg/theme"
)

// DefaultSize is the logical panel edge length in pixels.
const DefaultSize = 240

// DefaultScale is the supersample factor.
const DefaultScale = 2

// EncodeParams tunes the byte-budgeted JPEG export loop. The step and floor
// are deliberate knobs rather than derived values; see ToJPEG.
type EncodeParams struct {
	Quality  int // starting JPEG quality
	Step     int // quality reduction per retry
	Floor    int // minimum quality before giving up
	MaxBytes int // byte budget; 0 disables the budget loop
}

// DefaultEncodeParams returns the reference export tuning: start at quality
// 95, step down by 10 to a floor of 20, against a 400 KiB budget.
func DefaultEncodeParams() EncodeParams {
	return EncodeParams{
		Quality:  95,
		Step:     10,
		Floor:    20,
		MaxBytes: 400 * 1024,
	}
}

// Renderer owns the raster pipeline for one output target.
type Renderer struct {
	scale      int
	size       int
	background theme.RGB
	palette    theme.Theme
	fonts      *FontLibrary
	icons      *IconCatalog
	enc        EncodeParams
	logger     *log.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithScale sets the supersample factor (minimum 1).
func WithScale(scale int) Option {
	return func(r *Renderer) {
		if scale >= 1 {
			r.scale = scale
		}
	}
}

// WithSize sets the logical edge length in pixels.
func WithSize(size int) Option {
	return func(r *Renderer) {
		if size > 0 {
			r.size = size
		}
	}
}

// WithTheme sets the active palette. The canvas background follows the
// theme unless overridden with WithBackground.
func WithTheme(t theme.Theme) Option {
	return func(r *Renderer) {
		r.palette = t
		r.background = t.Background
	}
}

// WithBackground overrides the canvas background color.
func WithBackground(c theme.RGB) Option {
	return func(r *Renderer) { r.background = c }
}

// WithFontLibrary sets a custom font library.
func WithFontLibrary(l *FontLibrary) Option {
	return func(r *Renderer) {
		if l != nil {
			r.fonts = l
		}
	}
}

// WithIconCatalog sets a custom icon catalog.
func WithIconCatalog(c *IconCatalog) Option {
	return func(r *Renderer) {
		if c != nil {
			r.icons = c
		}
	}
}

// WithEncodeParams sets the JPEG export tuning.
func WithEncodeParams(p EncodeParams) Option {
	return func(r *Renderer) { r.enc = p }
}

// WithLogger sets the logger used for render diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a Renderer with the default theme, fonts, icons, and encoder
// tuning. Options are applied in order.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		scale:   DefaultScale,
		size:    DefaultSize,
		palette: theme.Default(),
		enc:     DefaultEncodeParams(),
		logger:  log.Default(),
	}
	r.background = r.palette.Background
	for _, opt := range opts {
		opt(r)
	}
	if r.fonts == nil {
		r.fonts = NewFontLibrary(nil, nil, r.logger)
	}
	if r.icons == nil {
		r.icons = NewIconCatalog()
	}
	return r
}

// Scale returns the supersample factor.
func (r *Renderer) Scale() int { return r.scale }

// Size returns the logical edge length.
func (r *Renderer) Size() int { return r.size }

// Theme returns the active palette.
func (r *Renderer) Theme() theme.Theme { return r.palette }

// Fonts returns the font library.
func (r *Renderer) Fonts() *FontLibrary { return r.fonts }

// Icons returns the icon catalog.
func (r *Renderer) Icons() *IconCatalog { return r.icons }

// NewCanvas allocates the full supersampled main canvas filled with the
// background color.
func (r *Renderer) NewCanvas() *gg.Context {
	dc := gg.NewContext(r.size*r.scale, r.size*r.scale)
	dc.ClearWithColor(gg.FromColor(r.background))
	return dc
}

// NewSlotCanvas allocates a temporary sub-canvas for one slot, sized to the
// slot's logical dimensions times the supersample factor.
func (r *Renderer) NewSlotCanvas(w, h int) *gg.Context {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dc := gg.NewContext(w*r.scale, h*r.scale)
	dc.ClearWithColor(gg.FromColor(r.background))
	return dc
}

// Compose pastes a slot sub-canvas onto the destination canvas at the given
// logical offset. The sub-canvas was allocated at exactly the slot size, so
// composition clips any coordinate excess to the slot rectangle.
func (r *Renderer) Compose(dst, src *gg.Context, x, y int) {
	buf := gg.ImageBufFromImage(src.Image())
	dst.DrawImage(buf, float64(x*r.scale), float64(y*r.scale))
}
