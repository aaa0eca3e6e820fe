package render

import (
	"context"
	"image"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"

	"github.com/panelkit/panelkit/pkg/errors"
	"github.com/panelkit/panelkit/pkg/observability"
	"github.com/panelkit/panelkit/pkg/theme"
)

// SizeCategory buckets a slot's local height into responsive breakpoints.
// Widgets vary content density by category instead of hard-coding pixel
// thresholds, so one widget definition degrades cleanly from a hero slot to
// a 3×3 grid cell.
type SizeCategory int

// Size categories, ordered smallest to largest.
const (
	SizeMicro SizeCategory = iota
	SizeTiny
	SizeSmall
	SizeMedium
	SizeLarge
)

// String returns the category name.
func (c SizeCategory) String() string {
	switch c {
	case SizeMicro:
		return "micro"
	case SizeTiny:
		return "tiny"
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	}
	return "unknown"
}

// SizeCategoryFor derives the category from a local height in logical px.
func SizeCategoryFor(height float64) SizeCategory {
	switch {
	case height < 56:
		return SizeMicro
	case height < 88:
		return SizeTiny
	case height < 120:
		return SizeSmall
	case height < 180:
		return SizeMedium
	default:
		return SizeLarge
	}
}

// Context is a widget-local coordinate frame over one canvas.
//
// Every draw call takes logical pixels with origin (0,0) at the slot's
// top-left corner; the context scales to supersampled canvas coordinates
// internally. Draws outside the local bounds are tolerated and logged, never
// clipped or rejected, so layout bugs stay visible instead of being silently
// masked. Physical containment is guaranteed separately by the slot system's
// off-screen composition.
type Context struct {
	dc     *gg.Context
	r      *Renderer
	scale  float64
	w, h   float64 // local bounds in logical px
	slot   int
	logger *log.Logger
}

// Context creates a widget-local frame over a canvas. w and h are the local
// logical bounds (typically the slot dimensions); slot identifies the frame
// in overflow diagnostics.
func (r *Renderer) Context(dc *gg.Context, slot int, w, h float64) *Context {
	return &Context{
		dc:     dc,
		r:      r,
		scale:  float64(r.scale),
		w:      w,
		h:      h,
		slot:   slot,
		logger: r.logger,
	}
}

// Width returns the local width in logical px.
func (c *Context) Width() float64 { return c.w }

// Height returns the local height in logical px.
func (c *Context) Height() float64 { return c.h }

// Theme returns the active palette.
func (c *Context) Theme() theme.Theme { return c.r.palette }

// Resolve maps a theme-aware color value to concrete channels.
func (c *Context) Resolve(col theme.Color) theme.RGB {
	return col.Resolve(c.r.palette)
}

// SizeCategory returns the breakpoint bucket for the local height.
func (c *Context) SizeCategory() SizeCategory {
	return SizeCategoryFor(c.h)
}

// IsCompact reports whether the slot is too small for multi-line content.
func (c *Context) IsCompact() bool {
	return c.SizeCategory() <= SizeTiny
}

// ShowSecondary reports whether secondary content (units, captions) fits.
func (c *Context) ShowSecondary() bool {
	return c.SizeCategory() >= SizeSmall
}

// ShowTertiary reports whether tertiary content (history, attributes) fits.
func (c *Context) ShowTertiary() bool {
	return c.SizeCategory() >= SizeMedium
}

// FontSize resolves a class against the local height.
func (c *Context) FontSize(class FontClass) float64 {
	return ScaledFontSize(class, c.h)
}

// MeasureText returns the logical pixel dimensions of s in the given class
// at the local container height.
func (c *Context) MeasureText(s string, class FontClass, bold bool) (w, h float64) {
	return c.r.fonts.Measure(s, c.FontSize(class), bold)
}

// DrawText draws s anchored at (x, y). ax and ay select one of the nine
// anchor points in [0,1]: (0,0) places the text's top-left at (x, y),
// (0.5, 0.5) its center, (1, 1) its bottom-right. Truncation is the
// caller's responsibility.
func (c *Context) DrawText(s string, x, y float64, class FontClass, bold bool, col theme.Color, ax, ay float64) {
	if s == "" {
		return
	}
	size := c.FontSize(class)
	tw, th := c.r.fonts.Measure(s, size, bold)
	c.checkBounds("text", x-tw*ax, y-th*ay, tw, th)

	c.dc.SetFont(c.r.fonts.Face(size*c.scale, bold))
	c.dc.SetColor(c.Resolve(col))
	c.dc.DrawStringAnchored(s, x*c.scale, y*c.scale, ax, ay)
}

// FillRect fills an axis-aligned rectangle.
func (c *Context) FillRect(x, y, w, h float64, col theme.Color) {
	c.checkBounds("rect", x, y, w, h)
	c.dc.SetColor(c.Resolve(col))
	c.dc.DrawRectangle(x*c.scale, y*c.scale, w*c.scale, h*c.scale)
	c.dc.Fill()
}

// StrokeRect outlines an axis-aligned rectangle.
func (c *Context) StrokeRect(x, y, w, h, lineWidth float64, col theme.Color) {
	c.checkBounds("rect", x, y, w, h)
	c.dc.SetColor(c.Resolve(col))
	c.dc.SetLineWidth(lineWidth * c.scale)
	c.dc.DrawRectangle(x*c.scale, y*c.scale, w*c.scale, h*c.scale)
	c.dc.Stroke()
}

// FillRoundedRect fills a rectangle with rounded corners.
func (c *Context) FillRoundedRect(x, y, w, h, radius float64, col theme.Color) {
	c.checkBounds("rounded-rect", x, y, w, h)
	c.dc.SetColor(c.Resolve(col))
	c.dc.DrawRoundedRectangle(x*c.scale, y*c.scale, w*c.scale, h*c.scale, radius*c.scale)
	c.dc.Fill()
}

// StrokeRoundedRect outlines a rectangle with rounded corners.
func (c *Context) StrokeRoundedRect(x, y, w, h, radius, lineWidth float64, col theme.Color) {
	c.checkBounds("rounded-rect", x, y, w, h)
	c.dc.SetColor(c.Resolve(col))
	c.dc.SetLineWidth(lineWidth * c.scale)
	c.dc.DrawRoundedRectangle(x*c.scale, y*c.scale, w*c.scale, h*c.scale, radius*c.scale)
	c.dc.Stroke()
}

// FillEllipse fills an ellipse centered at (cx, cy).
func (c *Context) FillEllipse(cx, cy, rx, ry float64, col theme.Color) {
	c.checkBounds("ellipse", cx-rx, cy-ry, 2*rx, 2*ry)
	c.dc.SetColor(c.Resolve(col))
	c.dc.DrawEllipse(cx*c.scale, cy*c.scale, rx*c.scale, ry*c.scale)
	c.dc.Fill()
}

// StrokeEllipse outlines an ellipse centered at (cx, cy).
func (c *Context) StrokeEllipse(cx, cy, rx, ry, lineWidth float64, col theme.Color) {
	c.checkBounds("ellipse", cx-rx, cy-ry, 2*rx, 2*ry)
	c.dc.SetColor(c.Resolve(col))
	c.dc.SetLineWidth(lineWidth * c.scale)
	c.dc.DrawEllipse(cx*c.scale, cy*c.scale, rx*c.scale, ry*c.scale)
	c.dc.Stroke()
}

// DrawLine draws a straight line segment.
func (c *Context) DrawLine(x1, y1, x2, y2, lineWidth float64, col theme.Color) {
	c.checkBounds("line", min(x1, x2), min(y1, y2), abs(x2-x1), abs(y2-y1))
	c.dc.SetColor(c.Resolve(col))
	c.dc.SetLineWidth(lineWidth * c.scale)
	c.dc.DrawLine(x1*c.scale, y1*c.scale, x2*c.scale, y2*c.scale)
	c.dc.Stroke()
}

// DrawIcon draws a named vector icon centered at (cx, cy) within a size×size
// box. Unknown names draw the catalog's fallback glyph and report false.
func (c *Context) DrawIcon(name string, cx, cy, size float64, col theme.Color) bool {
	c.checkBounds("icon:"+name, cx-size/2, cy-size/2, size, size)
	c.dc.SetColor(c.Resolve(col))
	ok := c.r.icons.Draw(c.dc, name, cx*c.scale, cy*c.scale, size*c.scale)
	if !ok {
		c.Soft(errors.New(errors.ErrCodeAssetFallback, "unknown icon %q, drew fallback", name))
		observability.Diagnostic().OnAssetFallback(context.Background(), "icon:"+name, "icon:"+IconFallback)
	}
	return ok
}

// DrawImage draws a bitmap scaled to fit (x, y, w, h) preserving aspect
// ratio, centered in the box.
func (c *Context) DrawImage(img image.Image, x, y, w, h float64) {
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	c.checkBounds("image", x, y, w, h)

	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw <= 0 || ih <= 0 {
		return
	}
	ratio := min(w/iw, h/ih)
	dw, dh := iw*ratio, ih*ratio
	dx := x + (w-dw)/2
	dy := y + (h-dh)/2

	c.dc.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
		X:         dx * c.scale,
		Y:         dy * c.scale,
		DstWidth:  dw * c.scale,
		DstHeight: dh * c.scale,
		Opacity:   1.0,
	})
}

// Soft records a degraded render condition against the slot. Conditions
// carrying a soft error code log at debug; anything else logs at warn. The
// frame continues either way.
func (c *Context) Soft(err error) {
	if errors.Soft(err) {
		c.logger.Debug("render degraded", "slot", c.slot, "err", err)
		return
	}
	c.logger.Warn("render degraded", "slot", c.slot, "err", err)
}

// checkBounds reports draws that escape the local frame. A small tolerance
// ignores antialiasing spill.
func (c *Context) checkBounds(op string, x, y, w, h float64) {
	const eps = 0.5
	if x >= -eps && y >= -eps && x+w <= c.w+eps && y+h <= c.h+eps {
		return
	}
	c.Soft(errors.New(errors.ErrCodeOverflow,
		"%s draw at (%g, %g) size %gx%g escapes the %gx%g slot", op, x, y, w, h, c.w, c.h))
	observability.Diagnostic().OnOverflow(context.Background(), c.slot, op, x, y, w, h)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
