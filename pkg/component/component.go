// Package component implements the declarative render tree for dashboard
// widgets.
//
// A widget builds a tree of components from a state snapshot; the slot system
// then runs the two-pass protocol: Measure computes natural sizes within the
// available bounds, Render draws into a resolved box. Trees are immutable for
// the duration of one render and discarded afterwards.
//
// Leaves draw content (Text, Icon, Bar, Ring, Arc); containers arrange
// children (Row, Column, Stack, Adaptive, Padding). The Adaptive container is
// the responsive mechanism: one widget definition degrades from a hero slot
// to a small grid cell without per-widget branching.
package component

import (
	"github.com/panelkit/panelkit/pkg/render"
)

// Component is one node of the render tree.
type Component interface {
	// Measure returns the node's natural size within the available bounds.
	// It must be pure: no drawing, no state mutation.
	Measure(ctx *render.Context, maxW, maxH float64) (w, h float64)

	// Render draws the node into the resolved box.
	Render(ctx *render.Context, x, y, w, h float64)
}

// LayoutBox is a resolved rectangle with derived accessors.
type LayoutBox struct {
	X, Y, W, H float64
}

// CenterX returns the horizontal center.
func (b LayoutBox) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center.
func (b LayoutBox) CenterY() float64 { return b.Y + b.H/2 }

// Right returns the right edge.
func (b LayoutBox) Right() float64 { return b.X + b.W }

// Bottom returns the bottom edge.
func (b LayoutBox) Bottom() float64 { return b.Y + b.H }

// Align positions children on a container's cross axis.
type Align int

// Cross-axis alignment modes.
const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

// Justify distributes children along a container's main axis.
type Justify int

// Main-axis justification modes.
const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
	JustifySpaceAround
)

// HAlign positions text horizontally within its box.
type HAlign int

// Horizontal text alignments.
const (
	HAlignLeft HAlign = iota
	HAlignCenter
	HAlignRight
)
