// Package layout carves the frame into non-overlapping slots and runs the
// per-slot render loop.
//
// Slot geometry is closed arithmetic over the frame size, padding, and gap:
// the same inputs always yield the same rectangles. Widgets render into
// exact-size off-screen canvases and are pasted at their slot offsets, so a
// widget cannot paint outside its slot.
package layout

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/panelkit/panelkit/pkg/widget"
)

// Rect is a slot rectangle in logical pixels.
type Rect struct {
	X, Y, W, H int
}

// Slot is one cell of the layout. Widget is nil until assigned; empty slots
// show the frame background.
type Slot struct {
	Index  int
	Rect   Rect
	Widget widget.Widget
}

// Layout is a resolved slot arrangement for one frame size.
type Layout struct {
	kind   Kind
	size   int
	slots  []Slot
	logger *log.Logger
}

// Option configures layout geometry.
type Option func(*config)

type config struct {
	padding int
	gap     int
	ratio   float64 // hero or split fraction
	count   int     // columns/rows count
	footers int
	logger  *log.Logger
}

// WithPadding sets the outer frame margin in logical px.
func WithPadding(px int) Option { return func(c *config) { c.padding = px } }

// WithGap sets the spacing between adjacent slots in logical px.
func WithGap(px int) Option { return func(c *config) { c.gap = px } }

// WithRatio sets the major-area fraction for HeroFooter, SplitH, SplitV,
// and the sidebar kinds. Values outside (0,1) are ignored.
func WithRatio(r float64) Option {
	return func(c *config) {
		if r > 0 && r < 1 {
			c.ratio = r
		}
	}
}

// WithCount sets the slot count for the Columns and Rows kinds.
func WithCount(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.count = n
		}
	}
}

// WithFooterSlots sets the footer cell count for HeroFooter.
func WithFooterSlots(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.footers = n
		}
	}
}

// WithLogger routes layout diagnostics to the given logger.
func WithLogger(l *log.Logger) Option { return func(c *config) { c.logger = l } }

// New resolves the slot geometry for a kind at the given frame size.
func New(kind Kind, size int, opts ...Option) *Layout {
	cfg := config{
		padding: 8,
		gap:     8,
		ratio:   defaultRatio(kind),
		count:   3,
		footers: 3,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	l := &Layout{kind: kind, size: size, logger: cfg.logger}
	for i, r := range buildRects(kind, size, cfg) {
		l.slots = append(l.slots, Slot{Index: i, Rect: r})
	}
	return l
}

func defaultRatio(kind Kind) float64 {
	switch kind {
	case HeroFooter:
		return 0.65
	case SidebarLeft, SidebarRight:
		return 0.35
	default:
		return 0.5
	}
}

// Kind returns the layout's arrangement.
func (l *Layout) Kind() Kind { return l.kind }

// Size returns the frame edge length in logical px.
func (l *Layout) Size() int { return l.size }

// Slots returns the resolved slots in index order.
func (l *Layout) Slots() []Slot { return l.slots }

// SlotCount returns the number of slots in the arrangement.
func (l *Layout) SlotCount() int { return len(l.slots) }

// buildRects computes the slot rectangles for a kind. All arithmetic rounds
// down; the final cell on each axis absorbs the remainder so the grid stays
// flush with the padded frame edge.
func buildRects(kind Kind, size int, cfg config) []Rect {
	switch kind {
	case Grid2x2:
		return grid(size, cfg, 2, 2)
	case Grid2x3:
		return grid(size, cfg, 2, 3)
	case Grid3x2:
		return grid(size, cfg, 3, 2)
	case Grid3x3:
		return grid(size, cfg, 3, 3)
	case HeroFooter:
		return heroFooter(size, cfg)
	case SplitH:
		return split(size, cfg, true)
	case SplitV:
		return split(size, cfg, false)
	case Columns:
		return grid(size, cfg, cfg.count, 1)
	case Rows:
		return grid(size, cfg, 1, cfg.count)
	case SidebarLeft:
		return sidebar(size, cfg, true)
	case SidebarRight:
		return sidebar(size, cfg, false)
	case Fullscreen:
		inner := size - 2*cfg.padding
		return []Rect{{X: cfg.padding, Y: cfg.padding, W: inner, H: inner}}
	default:
		return nil
	}
}

// grid lays cols×rows cells row-major inside the padded frame.
func grid(size int, cfg config, cols, rows int) []Rect {
	innerW := size - 2*cfg.padding - (cols-1)*cfg.gap
	innerH := size - 2*cfg.padding - (rows-1)*cfg.gap
	cellW := innerW / cols
	cellH := innerH / rows

	rects := make([]Rect, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			w, h := cellW, cellH
			if c == cols-1 {
				w = innerW - (cols-1)*cellW
			}
			if r == rows-1 {
				h = innerH - (rows-1)*cellH
			}
			rects = append(rects, Rect{
				X: cfg.padding + c*(cellW+cfg.gap),
				Y: cfg.padding + r*(cellH+cfg.gap),
				W: w,
				H: h,
			})
		}
	}
	return rects
}

// heroFooter places one full-width hero over a row of footer cells.
func heroFooter(size int, cfg config) []Rect {
	innerW := size - 2*cfg.padding
	innerH := size - 2*cfg.padding - cfg.gap
	heroH := int(math.Round(float64(innerH) * cfg.ratio))
	footerH := innerH - heroH
	footerY := cfg.padding + heroH + cfg.gap

	rects := []Rect{{X: cfg.padding, Y: cfg.padding, W: innerW, H: heroH}}

	n := cfg.footers
	footerW := (innerW - (n-1)*cfg.gap) / n
	for i := 0; i < n; i++ {
		w := footerW
		if i == n-1 {
			w = innerW - (n-1)*(footerW+cfg.gap)
		}
		rects = append(rects, Rect{
			X: cfg.padding + i*(footerW+cfg.gap),
			Y: footerY,
			W: w,
			H: footerH,
		})
	}
	return rects
}

// split divides the frame into two slots: left/right for horizontal, or
// top/bottom for vertical. The ratio sets the first slot's share.
func split(size int, cfg config, horizontal bool) []Rect {
	inner := size - 2*cfg.padding
	main := size - 2*cfg.padding - cfg.gap
	first := int(math.Round(float64(main) * cfg.ratio))
	second := main - first
	secondOff := cfg.padding + first + cfg.gap

	if horizontal {
		return []Rect{
			{X: cfg.padding, Y: cfg.padding, W: first, H: inner},
			{X: secondOff, Y: cfg.padding, W: second, H: inner},
		}
	}
	return []Rect{
		{X: cfg.padding, Y: cfg.padding, W: inner, H: first},
		{X: cfg.padding, Y: secondOff, W: inner, H: second},
	}
}

// sidebar places a full-height side column next to two stacked main slots.
func sidebar(size int, cfg config, left bool) []Rect {
	inner := size - 2*cfg.padding
	innerW := inner - cfg.gap
	sideW := int(math.Round(float64(innerW) * cfg.ratio))
	mainW := innerW - sideW

	sideX := cfg.padding
	mainX := cfg.padding + sideW + cfg.gap
	if !left {
		sideX = cfg.padding + mainW + cfg.gap
		mainX = cfg.padding
	}

	mainH := (inner - cfg.gap) / 2
	lowerY := cfg.padding + mainH + cfg.gap
	lowerH := inner - cfg.gap - mainH

	return []Rect{
		{X: sideX, Y: cfg.padding, W: sideW, H: inner},
		{X: mainX, Y: cfg.padding, W: mainW, H: mainH},
		{X: mainX, Y: lowerY, W: mainW, H: lowerH},
	}
}
