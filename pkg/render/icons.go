package render

import (
	"math"
	"sort"

	"github.com/gogpu/gg"
)

// IconFallback is drawn for unknown icon names.
const IconFallback = "circle"

// IconFunc draws one icon centered at (x, y) inside a size×size box, in the
// canvas's current color. Implementations use only geometric primitives; no
// bitmap atlas exists.
type IconFunc func(dc *gg.Context, x, y, size float64)

// IconCatalog maps icon names to their drawing functions. The catalog is
// built once and passed down through the Renderer; there is no process-wide
// lazy registry.
type IconCatalog struct {
	icons map[string]IconFunc
}

// NewIconCatalog builds the standard catalog.
func NewIconCatalog() *IconCatalog {
	c := &IconCatalog{icons: make(map[string]IconFunc)}
	registerStandardIcons(c)
	return c
}

// Register adds or replaces an icon.
func (c *IconCatalog) Register(name string, fn IconFunc) {
	if fn != nil {
		c.icons[name] = fn
	}
}

// Has reports whether the catalog knows name.
func (c *IconCatalog) Has(name string) bool {
	_, ok := c.icons[name]
	return ok
}

// Names returns all icon names in sorted order.
func (c *IconCatalog) Names() []string {
	names := make([]string, 0, len(c.icons))
	for n := range c.icons {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Draw renders the named icon centered at (x, y). Unknown names draw the
// fallback glyph and return false.
func (c *IconCatalog) Draw(dc *gg.Context, name string, x, y, size float64) bool {
	fn, ok := c.icons[name]
	if !ok {
		fn = c.icons[IconFallback]
		if fn == nil {
			return false
		}
	}
	fn(dc, x, y, size)
	return ok
}

// stroke finishes the current path with a width proportional to icon size.
func iconStroke(dc *gg.Context, size float64) {
	dc.SetLineWidth(size * 0.08)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.Stroke()
}

func registerStandardIcons(c *IconCatalog) {
	// ---- weather -----------------------------------------------------------

	c.Register("sunny", func(dc *gg.Context, x, y, s float64) {
		dc.DrawCircle(x, y, s*0.22)
		dc.Fill()
		for i := 0; i < 8; i++ {
			a := float64(i) * math.Pi / 4
			dc.DrawLine(x+math.Cos(a)*s*0.32, y+math.Sin(a)*s*0.32,
				x+math.Cos(a)*s*0.46, y+math.Sin(a)*s*0.46)
			iconStroke(dc, s)
		}
	})

	c.Register("clear-night", func(dc *gg.Context, x, y, s float64) {
		// Crescent: full disc minus an offset disc is approximated with two
		// arcs joined at the cusps.
		r := s * 0.36
		dc.MoveTo(x+r*math.Cos(-math.Pi/3), y+r*math.Sin(-math.Pi/3))
		dc.DrawArc(x, y, r, -math.Pi/3, math.Pi*2/3+math.Pi/2)
		dc.DrawArc(x+r*0.45, y-r*0.45, r*0.75, math.Pi*5/6, -math.Pi/2)
		dc.ClosePath()
		dc.Fill()
	})

	c.Register("cloudy", drawCloud)

	c.Register("partly-cloudy", func(dc *gg.Context, x, y, s float64) {
		dc.DrawCircle(x-s*0.18, y-s*0.18, s*0.16)
		dc.Fill()
		for i := 0; i < 5; i++ {
			a := float64(i)*math.Pi/4 + math.Pi
			dc.DrawLine(x-s*0.18+math.Cos(a)*s*0.24, y-s*0.18+math.Sin(a)*s*0.24,
				x-s*0.18+math.Cos(a)*s*0.34, y-s*0.18+math.Sin(a)*s*0.34)
			iconStroke(dc, s)
		}
		drawCloud(dc, x+s*0.08, y+s*0.12, s*0.75)
	})

	c.Register("rain", func(dc *gg.Context, x, y, s float64) {
		drawCloud(dc, x, y-s*0.12, s*0.85)
		for i := 0; i < 3; i++ {
			dx := x + (float64(i)-1)*s*0.2
			dc.DrawLine(dx, y+s*0.18, dx-s*0.06, y+s*0.38)
			iconStroke(dc, s)
		}
	})

	c.Register("pouring", func(dc *gg.Context, x, y, s float64) {
		drawCloud(dc, x, y-s*0.14, s*0.85)
		for i := 0; i < 4; i++ {
			dx := x + (float64(i)-1.5)*s*0.17
			dc.DrawLine(dx, y+s*0.14, dx-s*0.08, y+s*0.42)
			iconStroke(dc, s)
		}
	})

	c.Register("snow", func(dc *gg.Context, x, y, s float64) {
		drawCloud(dc, x, y-s*0.14, s*0.85)
		for i := 0; i < 3; i++ {
			dc.DrawCircle(x+(float64(i)-1)*s*0.2, y+s*0.3, s*0.05)
			dc.Fill()
		}
	})

	c.Register("storm", func(dc *gg.Context, x, y, s float64) {
		drawCloud(dc, x, y-s*0.16, s*0.85)
		dc.MoveTo(x+s*0.08, y+s*0.05)
		dc.LineTo(x-s*0.1, y+s*0.22)
		dc.LineTo(x+s*0.02, y+s*0.22)
		dc.LineTo(x-s*0.08, y+s*0.44)
		dc.LineTo(x+s*0.14, y+s*0.18)
		dc.LineTo(x+s*0.02, y+s*0.18)
		dc.ClosePath()
		dc.Fill()
	})

	c.Register("fog", func(dc *gg.Context, x, y, s float64) {
		for i := 0; i < 4; i++ {
			dy := y + (float64(i)-1.5)*s*0.18
			dc.DrawLine(x-s*0.38, dy, x+s*0.38, dy)
			iconStroke(dc, s)
		}
	})

	c.Register("wind", func(dc *gg.Context, x, y, s float64) {
		dc.MoveTo(x-s*0.4, y-s*0.1)
		dc.LineTo(x+s*0.2, y-s*0.1)
		dc.DrawArc(x+s*0.2, y-s*0.22, s*0.12, math.Pi/2, -math.Pi)
		iconStroke(dc, s)
		dc.MoveTo(x-s*0.4, y+s*0.12)
		dc.LineTo(x+s*0.3, y+s*0.12)
		dc.DrawArc(x+s*0.3, y+s*0.24, s*0.12, -math.Pi/2, math.Pi)
		iconStroke(dc, s)
	})

	// ---- climate -----------------------------------------------------------

	c.Register("thermometer", func(dc *gg.Context, x, y, s float64) {
		dc.DrawCircle(x, y+s*0.26, s*0.14)
		dc.Fill()
		dc.DrawRoundedRectangle(x-s*0.06, y-s*0.42, s*0.12, s*0.62, s*0.06)
		iconStroke(dc, s)
		dc.DrawLine(x, y+s*0.2, x, y-s*0.2)
		dc.SetLineWidth(s * 0.1)
		dc.Stroke()
	})

	c.Register("humidity", drawDrop)
	c.Register("water-drop", drawDrop)

	c.Register("fire", func(dc *gg.Context, x, y, s float64) {
		dc.MoveTo(x, y-s*0.42)
		dc.CubicTo(x+s*0.36, y-s*0.08, x+s*0.3, y+s*0.24, x, y+s*0.42)
		dc.CubicTo(x-s*0.3, y+s*0.24, x-s*0.36, y-s*0.08, x, y-s*0.42)
		dc.ClosePath()
		dc.Fill()
	})

	c.Register("leaf", func(dc *gg.Context, x, y, s float64) {
		dc.MoveTo(x-s*0.3, y+s*0.3)
		dc.CubicTo(x-s*0.4, y-s*0.3, x+s*0.2, y-s*0.45, x+s*0.38, y-s*0.38)
		dc.CubicTo(x+s*0.42, y+s*0.1, x-s*0.0, y+s*0.42, x-s*0.3, y+s*0.3)
		dc.ClosePath()
		dc.Fill()
	})

	// ---- home / devices ----------------------------------------------------

	c.Register("home", func(dc *gg.Context, x, y, s float64) {
		dc.MoveTo(x-s*0.42, y)
		dc.LineTo(x, y-s*0.4)
		dc.LineTo(x+s*0.42, y)
		iconStroke(dc, s)
		dc.DrawRectangle(x-s*0.28, y-s*0.05, s*0.56, s*0.42)
		iconStroke(dc, s)
	})

	c.Register("lightbulb", func(dc *gg.Context, x, y, s float64) {
		dc.DrawCircle(x, y-s*0.08, s*0.26)
		iconStroke(dc, s)
		dc.DrawLine(x-s*0.12, y+s*0.26, x+s*0.12, y+s*0.26)
		iconStroke(dc, s)
		dc.DrawLine(x-s*0.08, y+s*0.38, x+s*0.08, y+s*0.38)
		iconStroke(dc, s)
	})

	c.Register("power", func(dc *gg.Context, x, y, s float64) {
		dc.DrawArc(x, y+s*0.04, s*0.32, -math.Pi*0.32-math.Pi/2, math.Pi*1.32+math.Pi/2)
		iconStroke(dc, s)
		dc.DrawLine(x, y-s*0.42, x, y-s*0.02)
		iconStroke(dc, s)
	})

	c.Register("plug", func(dc *gg.Context, x, y, s float64) {
		dc.DrawRoundedRectangle(x-s*0.2, y-s*0.14, s*0.4, s*0.34, s*0.08)
		iconStroke(dc, s)
		dc.DrawLine(x-s*0.1, y-s*0.14, x-s*0.1, y-s*0.4)
		iconStroke(dc, s)
		dc.DrawLine(x+s*0.1, y-s*0.14, x+s*0.1, y-s*0.4)
		iconStroke(dc, s)
		dc.DrawLine(x, y+s*0.2, x, y+s*0.42)
		iconStroke(dc, s)
	})

	c.Register("battery-full", batteryIcon(1.0))
	c.Register("battery-half", batteryIcon(0.5))
	c.Register("battery-low", batteryIcon(0.15))

	c.Register("wifi", func(dc *gg.Context, x, y, s float64) {
		for i := 1; i <= 3; i++ {
			r := s * 0.14 * float64(i)
			dc.DrawArc(x, y+s*0.24, r, -math.Pi*0.75, -math.Pi*0.25)
			iconStroke(dc, s)
		}
		dc.DrawCircle(x, y+s*0.26, s*0.05)
		dc.Fill()
	})

	c.Register("motion", func(dc *gg.Context, x, y, s float64) {
		dc.DrawCircle(x-s*0.2, y-s*0.3, s*0.1)
		dc.Fill()
		dc.DrawLine(x-s*0.2, y-s*0.16, x-s*0.14, y+s*0.12)
		iconStroke(dc, s)
		dc.DrawLine(x-s*0.14, y+s*0.12, x-s*0.28, y+s*0.4)
		iconStroke(dc, s)
		dc.DrawLine(x-s*0.14, y+s*0.12, x+s*0.02, y+s*0.36)
		iconStroke(dc, s)
		for i := 1; i <= 2; i++ {
			dc.DrawArc(x+s*0.1, y-s*0.1, s*0.16*float64(i), -math.Pi*0.4, math.Pi*0.1)
			iconStroke(dc, s)
		}
	})

	c.Register("door", func(dc *gg.Context, x, y, s float64) {
		dc.DrawRectangle(x-s*0.26, y-s*0.42, s*0.52, s*0.84)
		iconStroke(dc, s)
		dc.DrawCircle(x+s*0.14, y, s*0.05)
		dc.Fill()
	})

	c.Register("window", func(dc *gg.Context, x, y, s float64) {
		dc.DrawRectangle(x-s*0.36, y-s*0.36, s*0.72, s*0.72)
		iconStroke(dc, s)
		dc.DrawLine(x, y-s*0.36, x, y+s*0.36)
		iconStroke(dc, s)
		dc.DrawLine(x-s*0.36, y, x+s*0.36, y)
		iconStroke(dc, s)
	})

	c.Register("lock", func(dc *gg.Context, x, y, s float64) {
		dc.DrawRoundedRectangle(x-s*0.26, y-s*0.05, s*0.52, s*0.42, s*0.06)
		dc.Fill()
		dc.DrawArc(x, y-s*0.05, s*0.17, math.Pi, 2*math.Pi)
		iconStroke(dc, s)
	})

	c.Register("unlock", func(dc *gg.Context, x, y, s float64) {
		dc.DrawRoundedRectangle(x-s*0.26, y-s*0.05, s*0.52, s*0.42, s*0.06)
		dc.Fill()
		dc.DrawArc(x-s*0.06, y-s*0.05, s*0.17, math.Pi, math.Pi*1.7)
		iconStroke(dc, s)
	})

	c.Register("person", func(dc *gg.Context, x, y, s float64) {
		dc.DrawCircle(x, y-s*0.22, s*0.15)
		dc.Fill()
		dc.DrawArc(x, y+s*0.42, s*0.32, math.Pi, 2*math.Pi)
		dc.ClosePath()
		dc.Fill()
	})

	c.Register("car", func(dc *gg.Context, x, y, s float64) {
		dc.DrawRoundedRectangle(x-s*0.42, y-s*0.08, s*0.84, s*0.26, s*0.08)
		dc.Fill()
		dc.DrawRoundedRectangle(x-s*0.24, y-s*0.24, s*0.48, s*0.2, s*0.08)
		dc.Fill()
		dc.DrawCircle(x-s*0.22, y+s*0.22, s*0.09)
		dc.Fill()
		dc.DrawCircle(x+s*0.22, y+s*0.22, s*0.09)
		dc.Fill()
	})

	c.Register("fan", func(dc *gg.Context, x, y, s float64) {
		dc.DrawCircle(x, y, s*0.08)
		dc.Fill()
		for i := 0; i < 3; i++ {
			a := float64(i) * 2 * math.Pi / 3
			dc.DrawEllipticalArc(x+math.Cos(a)*s*0.22, y+math.Sin(a)*s*0.22, s*0.18, s*0.12, 0, 2*math.Pi)
			dc.Fill()
		}
	})

	c.Register("tv", func(dc *gg.Context, x, y, s float64) {
		dc.DrawRoundedRectangle(x-s*0.4, y-s*0.3, s*0.8, s*0.52, s*0.05)
		iconStroke(dc, s)
		dc.DrawLine(x-s*0.16, y+s*0.36, x+s*0.16, y+s*0.36)
		iconStroke(dc, s)
	})

	c.Register("speaker", func(dc *gg.Context, x, y, s float64) {
		dc.DrawRoundedRectangle(x-s*0.22, y-s*0.4, s*0.44, s*0.8, s*0.07)
		iconStroke(dc, s)
		dc.DrawCircle(x, y+s*0.12, s*0.14)
		iconStroke(dc, s)
		dc.DrawCircle(x, y-s*0.2, s*0.06)
		dc.Fill()
	})

	c.Register("music", func(dc *gg.Context, x, y, s float64) {
		dc.DrawEllipse(x-s*0.18, y+s*0.26, s*0.11, s*0.08)
		dc.Fill()
		dc.DrawEllipse(x+s*0.24, y+s*0.18, s*0.11, s*0.08)
		dc.Fill()
		dc.DrawLine(x-s*0.08, y+s*0.26, x-s*0.08, y-s*0.3)
		iconStroke(dc, s)
		dc.DrawLine(x+s*0.34, y+s*0.18, x+s*0.34, y-s*0.38)
		iconStroke(dc, s)
		dc.DrawLine(x-s*0.08, y-s*0.3, x+s*0.34, y-s*0.38)
		iconStroke(dc, s)
	})

	c.Register("camera", func(dc *gg.Context, x, y, s float64) {
		dc.DrawRoundedRectangle(x-s*0.4, y-s*0.24, s*0.8, s*0.5, s*0.06)
		iconStroke(dc, s)
		dc.DrawCircle(x, y, s*0.14)
		iconStroke(dc, s)
		dc.DrawRectangle(x-s*0.12, y-s*0.32, s*0.24, s*0.08)
		dc.Fill()
	})

	// ---- indicators --------------------------------------------------------

	c.Register("alert", func(dc *gg.Context, x, y, s float64) {
		dc.MoveTo(x, y-s*0.4)
		dc.LineTo(x+s*0.42, y+s*0.34)
		dc.LineTo(x-s*0.42, y+s*0.34)
		dc.ClosePath()
		iconStroke(dc, s)
		dc.DrawLine(x, y-s*0.16, x, y+s*0.12)
		iconStroke(dc, s)
		dc.DrawCircle(x, y+s*0.24, s*0.035)
		dc.Fill()
	})

	c.Register("check", func(dc *gg.Context, x, y, s float64) {
		dc.MoveTo(x-s*0.32, y+s*0.02)
		dc.LineTo(x-s*0.08, y+s*0.26)
		dc.LineTo(x+s*0.36, y-s*0.26)
		iconStroke(dc, s)
	})

	c.Register("close", func(dc *gg.Context, x, y, s float64) {
		dc.DrawLine(x-s*0.28, y-s*0.28, x+s*0.28, y+s*0.28)
		iconStroke(dc, s)
		dc.DrawLine(x+s*0.28, y-s*0.28, x-s*0.28, y+s*0.28)
		iconStroke(dc, s)
	})

	c.Register("arrow-up", arrowIcon(-1))
	c.Register("arrow-down", arrowIcon(1))

	c.Register("trend-up", func(dc *gg.Context, x, y, s float64) {
		dc.MoveTo(x-s*0.4, y+s*0.28)
		dc.LineTo(x-s*0.08, y-s*0.04)
		dc.LineTo(x+s*0.08, y+s*0.12)
		dc.LineTo(x+s*0.4, y-s*0.24)
		iconStroke(dc, s)
		dc.MoveTo(x+s*0.18, y-s*0.26)
		dc.LineTo(x+s*0.42, y-s*0.26)
		dc.LineTo(x+s*0.42, y-s*0.02)
		iconStroke(dc, s)
	})

	c.Register("trend-down", func(dc *gg.Context, x, y, s float64) {
		dc.MoveTo(x-s*0.4, y-s*0.28)
		dc.LineTo(x-s*0.08, y+s*0.04)
		dc.LineTo(x+s*0.08, y-s*0.12)
		dc.LineTo(x+s*0.4, y+s*0.24)
		iconStroke(dc, s)
		dc.MoveTo(x+s*0.18, y+s*0.26)
		dc.LineTo(x+s*0.42, y+s*0.26)
		dc.LineTo(x+s*0.42, y+s*0.02)
		iconStroke(dc, s)
	})

	c.Register("clock", func(dc *gg.Context, x, y, s float64) {
		dc.DrawCircle(x, y, s*0.4)
		iconStroke(dc, s)
		dc.DrawLine(x, y, x, y-s*0.24)
		iconStroke(dc, s)
		dc.DrawLine(x, y, x+s*0.17, y+s*0.08)
		iconStroke(dc, s)
	})

	c.Register("calendar", func(dc *gg.Context, x, y, s float64) {
		dc.DrawRoundedRectangle(x-s*0.36, y-s*0.3, s*0.72, s*0.66, s*0.05)
		iconStroke(dc, s)
		dc.DrawLine(x-s*0.36, y-s*0.1, x+s*0.36, y-s*0.1)
		iconStroke(dc, s)
		dc.DrawLine(x-s*0.18, y-s*0.42, x-s*0.18, y-s*0.22)
		iconStroke(dc, s)
		dc.DrawLine(x+s*0.18, y-s*0.42, x+s*0.18, y-s*0.22)
		iconStroke(dc, s)
	})

	c.Register("gauge", func(dc *gg.Context, x, y, s float64) {
		dc.DrawArc(x, y+s*0.1, s*0.38, math.Pi*0.85, math.Pi*2.15)
		iconStroke(dc, s)
		dc.DrawLine(x, y+s*0.1, x+s*0.2, y-s*0.16)
		iconStroke(dc, s)
		dc.DrawCircle(x, y+s*0.1, s*0.05)
		dc.Fill()
	})

	c.Register("gear", func(dc *gg.Context, x, y, s float64) {
		for i := 0; i < 8; i++ {
			a := float64(i) * math.Pi / 4
			dc.DrawLine(x+math.Cos(a)*s*0.26, y+math.Sin(a)*s*0.26,
				x+math.Cos(a)*s*0.4, y+math.Sin(a)*s*0.4)
			dc.SetLineWidth(s * 0.14)
			dc.Stroke()
		}
		dc.DrawCircle(x, y, s*0.26)
		dc.Fill()
	})

	c.Register("circle", func(dc *gg.Context, x, y, s float64) {
		dc.DrawCircle(x, y, s*0.35)
		iconStroke(dc, s)
	})
}

// drawCloud is shared by the weather icons.
func drawCloud(dc *gg.Context, x, y, s float64) {
	dc.DrawCircle(x-s*0.18, y+s*0.08, s*0.18)
	dc.Fill()
	dc.DrawCircle(x+s*0.05, y-s*0.05, s*0.22)
	dc.Fill()
	dc.DrawCircle(x+s*0.24, y+s*0.1, s*0.16)
	dc.Fill()
	dc.DrawRectangle(x-s*0.18, y+s*0.06, s*0.42, s*0.2)
	dc.Fill()
}

func drawDrop(dc *gg.Context, x, y, s float64) {
	dc.MoveTo(x, y-s*0.42)
	dc.CubicTo(x+s*0.34, y+s*0.02, x+s*0.26, y+s*0.38, x, y+s*0.38)
	dc.CubicTo(x-s*0.26, y+s*0.38, x-s*0.34, y+s*0.02, x, y-s*0.42)
	dc.ClosePath()
	dc.Fill()
}

func batteryIcon(level float64) IconFunc {
	return func(dc *gg.Context, x, y, s float64) {
		dc.DrawRoundedRectangle(x-s*0.32, y-s*0.18, s*0.6, s*0.36, s*0.05)
		iconStroke(dc, s)
		dc.DrawRectangle(x+s*0.3, y-s*0.08, s*0.07, s*0.16)
		dc.Fill()
		fill := (s*0.52 - s*0.08) * level
		if fill > 0 {
			dc.DrawRectangle(x-s*0.28, y-s*0.13, fill, s*0.26)
			dc.Fill()
		}
	}
}

func arrowIcon(dir float64) IconFunc {
	return func(dc *gg.Context, x, y, s float64) {
		dc.DrawLine(x, y-dir*s*0.36, x, y+dir*s*0.36)
		iconStroke(dc, s)
		dc.MoveTo(x-s*0.2, y+dir*s*0.1)
		dc.LineTo(x, y+dir*s*0.38)
		dc.LineTo(x+s*0.2, y+dir*s*0.1)
		iconStroke(dc, s)
	}
}
