package render

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/panelkit/panelkit/pkg/theme"
)

// ClampPercent bounds a percentage to [0, 100]. Every gauge primitive applies
// it so out-of-range upstream values render as empty or full, never as
// geometry glitches.
func ClampPercent(p float64) float64 {
	if p < 0 || math.IsNaN(p) {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// DrawBar draws a horizontal progress bar with rounded ends. The fill spans
// percent of the track width, clamped to [0, 100]; 0% shows only the track.
func (c *Context) DrawBar(x, y, w, h, percent float64, fill, track theme.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	c.checkBounds("bar", x, y, w, h)
	pct := ClampPercent(percent)
	radius := h / 2

	c.dc.SetColor(c.Resolve(track))
	c.dc.DrawRoundedRectangle(x*c.scale, y*c.scale, w*c.scale, h*c.scale, radius*c.scale)
	c.dc.Fill()

	fw := w * pct / 100
	if fw <= 0 {
		return
	}
	// Below one diameter the rounded ends would self-intersect; shrink the
	// corner radius instead of widening the fill past its percentage.
	fr := radius
	if fw < h {
		fr = fw / 2
	}
	c.dc.SetColor(c.Resolve(fill))
	c.dc.DrawRoundedRectangle(x*c.scale, y*c.scale, fw*c.scale, h*c.scale, fr*c.scale)
	c.dc.Fill()
}

// DrawRingGauge draws a full-circle gauge. The fill sweeps clockwise from
// 12 o'clock through percent of 360°, clamped to [0, 100]; 0% draws only the
// background ring, 100% covers it completely.
func (c *Context) DrawRingGauge(cx, cy, radius, thickness, percent float64, fill, track theme.Color) {
	if radius <= 0 {
		return
	}
	c.checkBounds("ring", cx-radius, cy-radius, 2*radius, 2*radius)
	pct := ClampPercent(percent)

	sx, sy := cx*c.scale, cy*c.scale
	r := (radius - thickness/2) * c.scale
	c.dc.SetLineWidth(thickness * c.scale)
	c.dc.SetLineCap(gg.LineCapRound)

	c.dc.SetColor(c.Resolve(track))
	c.dc.DrawCircle(sx, sy, r)
	c.dc.Stroke()

	if pct <= 0 {
		return
	}
	start := -math.Pi / 2 // 12 o'clock; angles increase clockwise in screen space
	end := start + 2*math.Pi*pct/100
	c.dc.SetColor(c.Resolve(fill))
	if pct >= 100 {
		c.dc.DrawCircle(sx, sy, r)
	} else {
		c.dc.DrawArc(sx, sy, r, start, end)
	}
	c.dc.Stroke()
}

// DrawArcGauge draws a speedometer-style gauge: a 270° sweep starting at
// 135° (lower left), through 12 o'clock, ending at 45° (lower right).
// Percent is clamped to [0, 100]; 0% draws only the background arc.
func (c *Context) DrawArcGauge(cx, cy, radius, thickness, percent float64, fill, track theme.Color) {
	if radius <= 0 {
		return
	}
	c.checkBounds("arc", cx-radius, cy-radius, 2*radius, 2*radius)
	pct := ClampPercent(percent)

	sx, sy := cx*c.scale, cy*c.scale
	r := (radius - thickness/2) * c.scale
	start := 3 * math.Pi / 4       // 135°
	full := 3 * math.Pi / 2        // 270° sweep
	c.dc.SetLineWidth(thickness * c.scale)
	c.dc.SetLineCap(gg.LineCapRound)

	c.dc.SetColor(c.Resolve(track))
	c.dc.DrawArc(sx, sy, r, start, start+full)
	c.dc.Stroke()

	if pct <= 0 {
		return
	}
	c.dc.SetColor(c.Resolve(fill))
	c.dc.DrawArc(sx, sy, r, start, start+full*pct/100)
	c.dc.Stroke()
}
