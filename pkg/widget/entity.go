package widget

import (
	"github.com/panelkit/panelkit/pkg/component"
	"github.com/panelkit/panelkit/pkg/render"
	"github.com/panelkit/panelkit/pkg/state"
	"github.com/panelkit/panelkit/pkg/theme"
)

// Entity shows a single entity: icon, current value with unit, and the
// entity name. Secondary rows drop away as the slot shrinks.
type Entity struct {
	EntityID  string
	Label     string
	Icon      string
	Color     theme.Color
	Precision int
}

func (w *Entity) Name() string { return "entity" }

func (w *Entity) Build(ctx *render.Context, snap *state.Snapshot) (Output, error) {
	col := colorOr(w.Color, theme.ForRole(theme.AccentRole(0)))

	var value component.Component
	e, ok := snap.Entity(w.EntityID)
	if !ok || !e.Available {
		value = missingText(ctx, w.EntityID, valueClass(ctx))
	} else {
		value = &component.Text{
			Content: formatValue(e, w.Precision),
			Class:   valueClass(ctx),
			Bold:    true,
			Align:   component.HAlignCenter,
			Color:   theme.ForRole(theme.RolePrimary),
		}
	}

	children := []component.Component{}
	if w.Icon != "" && !ctx.IsCompact() {
		children = append(children, &component.Icon{Name: w.Icon, Color: col, MaxSize: iconSize(ctx)})
	}
	children = append(children, value)
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

func valueClass(ctx *render.Context) render.FontClass {
	switch ctx.SizeCategory() {
	case render.SizeMicro, render.SizeTiny:
		return render.FontBody
	case render.SizeSmall:
		return render.FontTitle
	default:
		return render.FontDisplay
	}
}

func iconSize(ctx *render.Context) float64 {
	if ctx.ShowTertiary() {
		return 36
	}
	return 22
}

func gapFor(ctx *render.Context) float64 {
	if ctx.IsCompact() {
		return 2
	}
	return 4
}

func padFor(ctx *render.Context) float64 {
	if ctx.IsCompact() {
		return 2
	}
	return 6
}
