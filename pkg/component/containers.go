package component

import (
	"math"

	"github.com/panelkit/panelkit/pkg/render"
)

// Row arranges children left to right.
type Row struct {
	Children []Component
	Gap      float64
	Padding  float64
	Align    Align
	Justify  Justify
}

func (r *Row) Measure(ctx *render.Context, maxW, maxH float64) (float64, float64) {
	main, cross := measureAxis(ctx, r.Children, r.Gap, r.Padding, maxW, maxH, true)
	return main, cross
}

func (r *Row) Render(ctx *render.Context, x, y, w, h float64) {
	renderAxis(ctx, r.Children, r.Gap, r.Padding, r.Align, r.Justify, x, y, w, h, true)
}

// Column arranges children top to bottom.
type Column struct {
	Children []Component
	Gap      float64
	Padding  float64
	Align    Align
	Justify  Justify
}

func (c *Column) Measure(ctx *render.Context, maxW, maxH float64) (float64, float64) {
	main, cross := measureAxis(ctx, c.Children, c.Gap, c.Padding, maxW, maxH, false)
	return cross, main
}

func (c *Column) Render(ctx *render.Context, x, y, w, h float64) {
	renderAxis(ctx, c.Children, c.Gap, c.Padding, c.Align, c.Justify, x, y, w, h, false)
}

// measureAxis computes the natural (main, cross) extents of a linear
// container: children laid end to end along the main axis with gaps between,
// padding on all four sides.
func measureAxis(ctx *render.Context, children []Component, gap, pad, maxW, maxH float64, horizontal bool) (main, cross float64) {
	innerW := math.Max(0, maxW-2*pad)
	innerH := math.Max(0, maxH-2*pad)
	for i, ch := range children {
		cw, chh := ch.Measure(ctx, innerW, innerH)
		cm, cc := cw, chh
		if !horizontal {
			cm, cc = chh, cw
		}
		main += cm
		if i > 0 {
			main += gap
		}
		cross = math.Max(cross, cc)
	}
	return main + 2*pad, cross + 2*pad
}

// renderAxis runs the second pass: re-measure each child within the inner
// bounds, distribute main-axis slack per the justification mode, then place
// each child on the cross axis per the alignment mode.
func renderAxis(ctx *render.Context, children []Component, gap, pad float64, align Align, justify Justify, x, y, w, h float64, horizontal bool) {
	n := len(children)
	if n == 0 {
		return
	}
	innerX, innerY := x+pad, y+pad
	innerW := math.Max(0, w-2*pad)
	innerH := math.Max(0, h-2*pad)

	innerMain, innerCross := innerW, innerH
	if !horizontal {
		innerMain, innerCross = innerH, innerW
	}

	mains := make([]float64, n)
	crosses := make([]float64, n)
	var used float64
	for i, ch := range children {
		cw, chh := ch.Measure(ctx, innerW, innerH)
		if horizontal {
			mains[i], crosses[i] = cw, chh
		} else {
			mains[i], crosses[i] = chh, cw
		}
		used += mains[i]
	}
	used += gap * float64(n-1)

	slack := innerMain - used
	cursor := 0.0
	step := gap
	switch justify {
	case JustifyCenter:
		cursor = slack / 2
	case JustifyEnd:
		cursor = slack
	case JustifySpaceBetween:
		if n > 1 && slack > 0 {
			step = gap + slack/float64(n-1)
		}
	case JustifySpaceAround:
		if slack > 0 {
			around := slack / float64(n)
			cursor = around / 2
			step = gap + around
		}
	}

	for i, ch := range children {
		crossSize := crosses[i]
		crossOff := 0.0
		switch align {
		case AlignCenter:
			crossOff = (innerCross - crossSize) / 2
		case AlignEnd:
			crossOff = innerCross - crossSize
		case AlignStretch:
			crossSize = innerCross
		}

		var cx, cy, cw, chh float64
		if horizontal {
			cx, cy = innerX+cursor, innerY+crossOff
			cw, chh = mains[i], crossSize
		} else {
			cx, cy = innerX+crossOff, innerY+cursor
			cw, chh = crossSize, mains[i]
		}
		ch.Render(ctx, cx, cy, cw, chh)
		cursor += mains[i] + step
	}
}

// Stack overlays children back to front: the first child is the backdrop,
// the last draws on top. Every child receives the full box.
type Stack struct {
	Children []Component
}

func (s *Stack) Measure(ctx *render.Context, maxW, maxH float64) (float64, float64) {
	var w, h float64
	for _, ch := range s.Children {
		cw, chh := ch.Measure(ctx, maxW, maxH)
		w = math.Max(w, cw)
		h = math.Max(h, chh)
	}
	return w, h
}

func (s *Stack) Render(ctx *render.Context, x, y, w, h float64) {
	for _, ch := range s.Children {
		ch.Render(ctx, x, y, w, h)
	}
}

// Adaptive lays its children out as a Row when their natural widths fit the
// available width, and as a Column otherwise. The fit test includes gaps and
// padding; an exact fit still resolves to a Row.
type Adaptive struct {
	Children []Component
	Gap      float64
	Padding  float64
	Align    Align
	Justify  Justify
}

func (a *Adaptive) fitsRow(ctx *render.Context, maxW, maxH float64) bool {
	main, _ := measureAxis(ctx, a.Children, a.Gap, a.Padding, maxW, maxH, true)
	return main <= maxW
}

func (a *Adaptive) resolve(ctx *render.Context, maxW, maxH float64) Component {
	if a.fitsRow(ctx, maxW, maxH) {
		return &Row{Children: a.Children, Gap: a.Gap, Padding: a.Padding, Align: a.Align, Justify: a.Justify}
	}
	return &Column{Children: a.Children, Gap: a.Gap, Padding: a.Padding, Align: a.Align, Justify: a.Justify}
}

func (a *Adaptive) Measure(ctx *render.Context, maxW, maxH float64) (float64, float64) {
	return a.resolve(ctx, maxW, maxH).Measure(ctx, maxW, maxH)
}

func (a *Adaptive) Render(ctx *render.Context, x, y, w, h float64) {
	// The fit test reruns against the resolved box so the orientation
	// chosen during measurement holds at render time.
	a.resolve(ctx, w, h).Render(ctx, x, y, w, h)
}

// Padding wraps a child with configurable insets. Build it with NewPadding
// and the Pad options; a per-side option always wins over a symmetric one
// regardless of order.
type Padding struct {
	Child  Component
	insets insets
}

type insets struct {
	all     float64
	hv      [2]float64 // horizontal, vertical
	hvSet   [2]bool
	side    [4]float64 // left, top, right, bottom
	sideSet [4]bool
}

func (in insets) resolve() (l, t, r, b float64) {
	l, t, r, b = in.all, in.all, in.all, in.all
	if in.hvSet[0] {
		l, r = in.hv[0], in.hv[0]
	}
	if in.hvSet[1] {
		t, b = in.hv[1], in.hv[1]
	}
	if in.sideSet[0] {
		l = in.side[0]
	}
	if in.sideSet[1] {
		t = in.side[1]
	}
	if in.sideSet[2] {
		r = in.side[2]
	}
	if in.sideSet[3] {
		b = in.side[3]
	}
	return l, t, r, b
}

// PadOption configures one inset of a Padding component.
type PadOption func(*insets)

// PadAll sets all four insets.
func PadAll(v float64) PadOption { return func(in *insets) { in.all = v } }

// PadX sets the left and right insets.
func PadX(v float64) PadOption {
	return func(in *insets) { in.hv[0], in.hvSet[0] = v, true }
}

// PadY sets the top and bottom insets.
func PadY(v float64) PadOption {
	return func(in *insets) { in.hv[1], in.hvSet[1] = v, true }
}

// PadLeft sets the left inset.
func PadLeft(v float64) PadOption {
	return func(in *insets) { in.side[0], in.sideSet[0] = v, true }
}

// PadTop sets the top inset.
func PadTop(v float64) PadOption {
	return func(in *insets) { in.side[1], in.sideSet[1] = v, true }
}

// PadRight sets the right inset.
func PadRight(v float64) PadOption {
	return func(in *insets) { in.side[2], in.sideSet[2] = v, true }
}

// PadBottom sets the bottom inset.
func PadBottom(v float64) PadOption {
	return func(in *insets) { in.side[3], in.sideSet[3] = v, true }
}

// NewPadding wraps child with the given insets.
func NewPadding(child Component, opts ...PadOption) *Padding {
	p := &Padding{Child: child}
	for _, opt := range opts {
		opt(&p.insets)
	}
	return p
}

func (p *Padding) Measure(ctx *render.Context, maxW, maxH float64) (float64, float64) {
	l, t, r, b := p.insets.resolve()
	cw, ch := p.Child.Measure(ctx, math.Max(0, maxW-l-r), math.Max(0, maxH-t-b))
	return cw + l + r, ch + t + b
}

func (p *Padding) Render(ctx *render.Context, x, y, w, h float64) {
	l, t, r, b := p.insets.resolve()
	p.Child.Render(ctx, x+l, y+t, math.Max(0, w-l-r), math.Max(0, h-t-b))
}
