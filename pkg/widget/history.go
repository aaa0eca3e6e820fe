package widget

import (
	"github.com/panelkit/panelkit/pkg/render"
	"github.com/panelkit/panelkit/pkg/state"
	"github.com/panelkit/panelkit/pkg/theme"
)

// History draws a smoothed sparkline of an entity's recent samples with the
// current value overlaid. It paints the slot directly: the sparkline wants
// the full slot rectangle, not a measured box.
type History struct {
	EntityID  string
	Label     string
	Color     theme.Color
	Precision int
	Smooth    bool
	NoFill    bool
}

func (w *History) Name() string { return "history" }

func (w *History) Build(ctx *render.Context, snap *state.Snapshot) (Output, error) {
	col := colorOr(w.Color, theme.ForRole(theme.AccentRole(2)))
	pad := padFor(ctx)
	width := ctx.Width() - 2*pad
	height := ctx.Height() - 2*pad

	// Reserve a header band for value and label unless the slot is too
	// small to show one.
	header := 0.0
	if ctx.ShowSecondary() {
		header = ctx.FontSize(render.FontTitle) + 4
	}

	data := snap.History(w.EntityID)
	ctx.DrawSparkline(data, pad, pad+header, width, height-header, col, render.SparklineOptions{
		Smooth: w.Smooth,
		Fill:   !w.NoFill,
	})

	if len(data) == 0 {
		ctx.DrawText(Placeholder, ctx.Width()/2, ctx.Height()/2, render.FontTitle, true,
			theme.ForRole(theme.RoleSecondary), 0.5, 0.5)
		return Drawn(), nil
	}

	if header > 0 {
		value := Placeholder
		if e, ok := snap.Entity(w.EntityID); ok {
			value = formatValue(e, w.Precision)
		}
		ctx.DrawText(value, pad, pad, render.FontTitle, true,
			theme.ForRole(theme.RolePrimary), 0, 0)
		if w.Label != "" {
			ctx.DrawText(w.Label, ctx.Width()-pad, pad+2, render.FontCaption, false,
				theme.ForRole(theme.RoleSecondary), 1, 0)
		}
	}

	return Drawn(), nil
}
