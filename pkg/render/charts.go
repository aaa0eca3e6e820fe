package render

import (
	"math"

	"github.com/panelkit/panelkit/pkg/theme"
)

// SparklineOptions configures DrawSparkline.
type SparklineOptions struct {
	// Smooth interpolates the series with a Catmull–Rom spline. The curve
	// passes through every raw point; the first and last raw points keep
	// their exact vertical position.
	Smooth bool
	// Fill shades the area under the curve at reduced brightness.
	Fill bool
	// LineWidth in logical px; defaults to 1.5.
	LineWidth float64
}

// DrawSparkline draws a line chart of a numeric series in the (x, y, w, h)
// box. The series normalizes against its own min/max; a flat series renders
// as a horizontal midline. Series shorter than 2 points draw nothing.
func (c *Context) DrawSparkline(data []float64, x, y, w, h float64, col theme.Color, opts SparklineOptions) {
	if len(data) < 2 || w <= 0 || h <= 0 {
		return
	}
	c.checkBounds("sparkline", x, y, w, h)

	lineWidth := opts.LineWidth
	if lineWidth <= 0 {
		lineWidth = 1.5
	}

	pts := sparklinePoints(data, x, y, w, h, opts.Smooth)

	rgb := c.Resolve(col)

	if opts.Fill {
		c.dc.SetColor(theme.Dim(rgb, 0.35))
		c.dc.MoveTo(pts[0][0]*c.scale, (y+h)*c.scale)
		for _, p := range pts {
			c.dc.LineTo(p[0]*c.scale, p[1]*c.scale)
		}
		c.dc.LineTo(pts[len(pts)-1][0]*c.scale, (y+h)*c.scale)
		c.dc.ClosePath()
		c.dc.Fill()
	}

	c.dc.SetColor(rgb)
	c.dc.SetLineWidth(lineWidth * c.scale)
	c.dc.MoveTo(pts[0][0]*c.scale, pts[0][1]*c.scale)
	for _, p := range pts[1:] {
		c.dc.LineTo(p[0]*c.scale, p[1]*c.scale)
	}
	c.dc.Stroke()
}

// sparklinePoints maps a series into box coordinates, optionally resampling
// through a Catmull–Rom spline. Exported indirectly through SparklineSamples
// for testability of the interpolation contract.
func sparklinePoints(data []float64, x, y, w, h float64, smooth bool) [][2]float64 {
	ys := normalizeSeries(data)

	n := len(ys)
	raw := make([][2]float64, n)
	for i, v := range ys {
		raw[i][0] = x + w*float64(i)/float64(n-1)
		raw[i][1] = y + h*(1-v)
	}

	// Two points interpolate linearly; a spline needs at least three.
	if !smooth || n < 3 {
		return raw
	}

	samples := int(math.Max(50, w/2))
	return catmullRom(raw, samples)
}

// SparklineSamples returns the polyline a sparkline would draw for data in
// the given box. It exists so the interpolation invariants (endpoint
// pinning, sample count) are testable without rasterizing.
func SparklineSamples(data []float64, x, y, w, h float64, smooth bool) [][2]float64 {
	if len(data) < 2 {
		return nil
	}
	return sparklinePoints(data, x, y, w, h, smooth)
}

// normalizeSeries scales values to [0, 1] against the series' own min/max.
// A flat series maps to 0.5 everywhere: a horizontal midline.
func normalizeSeries(data []float64) []float64 {
	lo, hi := data[0], data[0]
	for _, v := range data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	out := make([]float64, len(data))
	if hi == lo {
		for i := range out {
			out[i] = 0.5
		}
		return out
	}
	for i, v := range data {
		out[i] = (v - lo) / (hi - lo)
	}
	return out
}

// catmullRom resamples a polyline through a centripetal-free (uniform)
// Catmull–Rom spline with the given total sample count. The first and last
// control points are preserved exactly.
func catmullRom(pts [][2]float64, samples int) [][2]float64 {
	n := len(pts)
	if samples < n {
		samples = n
	}

	out := make([][2]float64, 0, samples)
	out = append(out, pts[0])

	// Interior samples distribute evenly across the n-1 segments.
	for i := 1; i < samples-1; i++ {
		t := float64(i) / float64(samples-1) * float64(n-1)
		seg := int(t)
		if seg > n-2 {
			seg = n - 2
		}
		lt := t - float64(seg)

		p0 := pts[clampIndex(seg-1, n)]
		p1 := pts[seg]
		p2 := pts[seg+1]
		p3 := pts[clampIndex(seg+2, n)]

		out = append(out, [2]float64{
			catmullRomValue(p0[0], p1[0], p2[0], p3[0], lt),
			catmullRomValue(p0[1], p1[1], p2[1], p3[1], lt),
		})
	}

	out = append(out, pts[n-1])
	return out
}

func catmullRomValue(p0, p1, p2, p3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * (2*p1 +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

// DrawSegmentedBar draws a horizontal bar split into proportional colored
// segments (e.g. energy source mix). Values are relative weights; non-positive
// weights are skipped. Nothing is drawn if no weight is positive.
func (c *Context) DrawSegmentedBar(x, y, w, h float64, values []float64, colors []theme.Color) {
	if w <= 0 || h <= 0 || len(values) == 0 {
		return
	}
	c.checkBounds("segmented-bar", x, y, w, h)

	var total float64
	for _, v := range values {
		if v > 0 {
			total += v
		}
	}
	if total <= 0 {
		return
	}

	cursor := x
	for i, v := range values {
		if v <= 0 {
			continue
		}
		sw := w * v / total
		col := theme.ForRole(theme.AccentRole(i))
		if i < len(colors) {
			col = colors[i]
		}
		c.dc.SetColor(c.Resolve(col))
		c.dc.DrawRectangle(cursor*c.scale, y*c.scale, sw*c.scale, h*c.scale)
		c.dc.Fill()
		cursor += sw
	}
}

// DrawMiniBars draws a per-sample bar chart of a series (e.g. hourly
// consumption). Bars normalize against the series max; non-positive samples
// leave a gap. Nothing is drawn for an empty series or max <= 0.
func (c *Context) DrawMiniBars(data []float64, x, y, w, h float64, col theme.Color) {
	if len(data) == 0 || w <= 0 || h <= 0 {
		return
	}
	c.checkBounds("mini-bars", x, y, w, h)

	var hi float64
	for _, v := range data {
		if v > hi {
			hi = v
		}
	}
	if hi <= 0 {
		return
	}

	n := float64(len(data))
	gap := math.Min(2, w/n/4)
	bw := (w - gap*(n-1)) / n
	if bw < 1 {
		bw, gap = w/n, 0
	}

	c.dc.SetColor(c.Resolve(col))
	for i, v := range data {
		if v <= 0 {
			continue
		}
		bh := h * v / hi
		bx := x + float64(i)*(bw+gap)
		c.dc.DrawRectangle(bx*c.scale, (y+h-bh)*c.scale, bw*c.scale, bh*c.scale)
		c.dc.Fill()
	}
}

// DrawTimeline draws a binary state timeline: one colored span per sample,
// on-color for values >= 0.5 and off-color otherwise. Collaborators map
// binary entity states (on/off, open/closed) to 0/1 upstream.
func (c *Context) DrawTimeline(data []float64, x, y, w, h float64, on, off theme.Color) {
	if len(data) == 0 || w <= 0 || h <= 0 {
		return
	}
	c.checkBounds("timeline", x, y, w, h)

	sw := w / float64(len(data))
	for i, v := range data {
		col := off
		if v >= 0.5 {
			col = on
		}
		c.dc.SetColor(c.Resolve(col))
		// Spans butt against each other; overdraw half a px to avoid seams.
		c.dc.DrawRectangle((x+float64(i)*sw)*c.scale, y*c.scale, (sw+0.5)*c.scale, h*c.scale)
		c.dc.Fill()
	}
}
