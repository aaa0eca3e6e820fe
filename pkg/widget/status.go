package widget

import (
	"github.com/panelkit/panelkit/pkg/render"
	"github.com/panelkit/panelkit/pkg/state"
	"github.com/panelkit/panelkit/pkg/theme"
)

// StatusRow names one binary-history row of a StatusGrid.
type StatusRow struct {
	EntityID string
	Label    string
}

// StatusGrid stacks binary timeline bars, one per entity, each with its
// label. Histories carry 0/1 samples; a missing history renders as an
// all-off bar.
type StatusGrid struct {
	Rows []StatusRow
	On   theme.Color
	Off  theme.Color
}

func (w *StatusGrid) Name() string { return "status_grid" }

func (w *StatusGrid) Build(ctx *render.Context, snap *state.Snapshot) (Output, error) {
	if len(w.Rows) == 0 {
		return Tree(centered(missingText(ctx, "status_grid", render.FontTitle))), nil
	}

	on := colorOr(w.On, theme.ForRole(theme.AccentRole(4)))
	off := colorOr(w.Off, theme.FromRGB(theme.Dim(ctx.Resolve(on), 0.2)))

	pad := padFor(ctx)
	gap := gapFor(ctx)
	rowH := (ctx.Height() - 2*pad - gap*float64(len(w.Rows)-1)) / float64(len(w.Rows))
	showLabels := !ctx.IsCompact()
	labelW := 0.0
	if showLabels {
		labelW = ctx.Width() * 0.3
	}

	y := pad
	for _, row := range w.Rows {
		if showLabels {
			ctx.DrawText(row.Label, pad, y+rowH/2, render.FontCaption, false,
				theme.ForRole(theme.RoleSecondary), 0, 0.5)
		}
		barX := pad + labelW
		barW := ctx.Width() - barX - pad
		barH := rowH * 0.6
		data := []float64(snap.History(row.EntityID))
		if len(data) == 0 {
			data = []float64{0}
		}
		ctx.DrawTimeline(data, barX, y+(rowH-barH)/2, barW, barH, on, off)
		y += rowH + gap
	}

	return Drawn(), nil
}
