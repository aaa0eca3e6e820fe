package widget

import (
	"github.com/panelkit/panelkit/pkg/component"
	"github.com/panelkit/panelkit/pkg/render"
	"github.com/panelkit/panelkit/pkg/state"
	"github.com/panelkit/panelkit/pkg/theme"
)

// GaugeStyle selects the gauge geometry.
type GaugeStyle int

// Gauge geometries.
const (
	GaugeRing GaugeStyle = iota
	GaugeArc
)

// Gauge maps an entity's numeric value onto a ring or arc with the value
// overlaid in the center.
type Gauge struct {
	EntityID  string
	Label     string
	Style     GaugeStyle
	Min, Max  float64
	Color     theme.Color
	Precision int
}

func (w *Gauge) Name() string { return "gauge" }

func (w *Gauge) Build(ctx *render.Context, snap *state.Snapshot) (Output, error) {
	fill := colorOr(w.Color, theme.ForRole(theme.AccentRole(1)))
	track := theme.FromRGB(theme.Dim(ctx.Resolve(fill), 0.25))

	percent := 0.0
	var label component.Component
	e, ok := snap.Entity(w.EntityID)
	if v, fok := e.Float(); ok && fok {
		percent = w.toPercent(v)
		label = &component.Text{
			Content: formatValue(e, w.Precision),
			Class:   centerClass(ctx),
			Bold:    true,
			Align:   component.HAlignCenter,
			Color:   theme.ForRole(theme.RolePrimary),
		}
	} else {
		label = missingText(ctx, w.EntityID, centerClass(ctx))
	}

	var gauge component.Component
	if w.Style == GaugeArc {
		gauge = &component.Arc{Percent: percent, Fill: fill, Track: track}
	} else {
		gauge = &component.Ring{Percent: percent, Fill: fill, Track: track}
	}

	children := []component.Component{
		&component.Stack{Children: []component.Component{gauge, centered(label)}},
	}
	if w.Label != "" && ctx.ShowSecondary() {
		children = append(children, &component.Text{
			Content: w.Label,
			Class:   render.FontCaption,
			Align:   component.HAlignCenter,
			Color:   theme.ForRole(theme.RoleSecondary),
		})
	}

	return Tree(&component.Column{
		Children: children,
		Gap:      gapFor(ctx),
		Padding:  padFor(ctx),
		Align:    component.AlignCenter,
		Justify:  component.JustifyCenter,
	}), nil
}

// toPercent maps v onto the configured range; a degenerate range falls back
// to treating the raw value as a percentage.
func (w *Gauge) toPercent(v float64) float64 {
	lo, hi := w.Min, w.Max
	if hi <= lo {
		lo, hi = 0, 100
	}
	return render.ClampPercent((v - lo) / (hi - lo) * 100)
}

func centerClass(ctx *render.Context) render.FontClass {
	if ctx.IsCompact() {
		return render.FontSmall
	}
	return render.FontBody
}

// centered wraps a leaf so it fills the stack layer and self-centers.
func centered(c component.Component) component.Component {
	return &component.Row{
		Children: []component.Component{c},
		Align:    component.AlignCenter,
		Justify:  component.JustifyCenter,
	}
}
