package component

import (
	"math"

	"github.com/panelkit/panelkit/pkg/render"
	"github.com/panelkit/panelkit/pkg/theme"
)

// Text draws a single line of text anchored within its box.
type Text struct {
	Content string
	Class   render.FontClass
	Bold    bool
	Color   theme.Color
	Align   HAlign
}

// Measure returns the rendered extent of the string at the scaled size for
// the current slot. Text never wraps; overflow is reported at draw time.
func (t *Text) Measure(ctx *render.Context, maxW, maxH float64) (float64, float64) {
	return ctx.MeasureText(t.Content, t.Class, t.Bold)
}

// Render anchors the string per the alignment: the anchor sits on the left
// edge, center, or right edge of the box, always vertically centered.
func (t *Text) Render(ctx *render.Context, x, y, w, h float64) {
	ax := 0.0
	px := x
	switch t.Align {
	case HAlignCenter:
		ax, px = 0.5, x+w/2
	case HAlignRight:
		ax, px = 1.0, x+w
	}
	ctx.DrawText(t.Content, px, y+h/2, t.Class, t.Bold, t.Color, ax, 0.5)
}

// Icon draws a named vector icon, centered and square.
type Icon struct {
	Name  string
	Color theme.Color

	// MaxSize caps the icon's edge length; zero means unbounded.
	MaxSize float64
}

// Measure returns a square bounded by the available box and MaxSize.
func (ic *Icon) Measure(ctx *render.Context, maxW, maxH float64) (float64, float64) {
	s := math.Min(maxW, maxH)
	if ic.MaxSize > 0 {
		s = math.Min(s, ic.MaxSize)
	}
	return s, s
}

func (ic *Icon) Render(ctx *render.Context, x, y, w, h float64) {
	s := math.Min(w, h)
	if ic.MaxSize > 0 {
		s = math.Min(s, ic.MaxSize)
	}
	ctx.DrawIcon(ic.Name, x+w/2, y+h/2, s, ic.Color)
}

// Bar draws a horizontal progress bar spanning the box width.
type Bar struct {
	Percent float64
	Fill    theme.Color
	Track   theme.Color

	// FixedHeight overrides the default bar thickness when positive.
	FixedHeight float64
}

func (b *Bar) barHeight(availH float64) float64 {
	if b.FixedHeight > 0 {
		return b.FixedHeight
	}
	return math.Max(6, 0.15*availH)
}

// Measure claims the full available width at the bar thickness.
func (b *Bar) Measure(ctx *render.Context, maxW, maxH float64) (float64, float64) {
	return maxW, b.barHeight(maxH)
}

func (b *Bar) Render(ctx *render.Context, x, y, w, h float64) {
	bh := b.barHeight(h)
	if bh > h {
		bh = h
	}
	ctx.DrawBar(x, y+(h-bh)/2, w, bh, b.Percent, b.Fill, b.Track)
}

// Ring draws a circular gauge starting at twelve o'clock.
type Ring struct {
	Percent float64
	Fill    theme.Color
	Track   theme.Color

	// Thickness is the stroke width; zero derives it from the diameter.
	Thickness float64
}

// Measure returns the largest square fitting the available box.
func (r *Ring) Measure(ctx *render.Context, maxW, maxH float64) (float64, float64) {
	s := math.Min(maxW, maxH)
	return s, s
}

func (r *Ring) Render(ctx *render.Context, x, y, w, h float64) {
	s := math.Min(w, h)
	th := r.Thickness
	if th <= 0 {
		th = math.Max(3, 0.12*s)
	}
	ctx.DrawRingGauge(x+w/2, y+h/2, s/2, th, r.Percent, r.Fill, r.Track)
}

// Arc draws a partial-circle gauge with an opening at the bottom, leaving
// room for a centered value label.
type Arc struct {
	Percent   float64
	Fill      theme.Color
	Track     theme.Color
	Thickness float64
}

// Measure returns the largest square fitting the available box.
func (a *Arc) Measure(ctx *render.Context, maxW, maxH float64) (float64, float64) {
	s := math.Min(maxW, maxH)
	return s, s
}

func (a *Arc) Render(ctx *render.Context, x, y, w, h float64) {
	s := math.Min(w, h)
	th := a.Thickness
	if th <= 0 {
		th = math.Max(3, 0.12*s)
	}
	ctx.DrawArcGauge(x+w/2, y+h/2, s/2, th, a.Percent, a.Fill, a.Track)
}

// Spacer reserves blank space. Containers distribute slack around it the
// same as any other child.
type Spacer struct {
	// Min is the minimum edge length to reserve on both axes.
	Min float64
}

func (s *Spacer) Measure(ctx *render.Context, maxW, maxH float64) (float64, float64) {
	return s.Min, s.Min
}

func (s *Spacer) Render(ctx *render.Context, x, y, w, h float64) {}

// Empty renders nothing and takes no space. It is the zero branch of
// conditional trees.
type Empty struct{}

func (Empty) Measure(ctx *render.Context, maxW, maxH float64) (float64, float64) { return 0, 0 }

func (Empty) Render(ctx *render.Context, x, y, w, h float64) {}
