package widget

import (
	"strconv"

	"github.com/panelkit/panelkit/pkg/component"
	"github.com/panelkit/panelkit/pkg/render"
	"github.com/panelkit/panelkit/pkg/state"
	"github.com/panelkit/panelkit/pkg/theme"
)

// Forecast lays out upcoming entries as columns of label, condition icon,
// and value. Compact slots drop the labels; the column count shrinks with
// the slot width.
type Forecast struct {
	Key       string
	Unit      string
	Color     theme.Color
	Precision int

	// MaxEntries caps the number of columns; zero means as many as fit.
	MaxEntries int
}

func (w *Forecast) Name() string { return "forecast" }

func (w *Forecast) Build(ctx *render.Context, snap *state.Snapshot) (Output, error) {
	entries := snap.Forecast(w.Key)
	if len(entries) == 0 {
		return Tree(centered(missingText(ctx, w.Key, render.FontTitle))), nil
	}

	col := colorOr(w.Color, theme.ForRole(theme.AccentRole(3)))
	limit := w.entryLimit(ctx)
	if len(entries) > limit {
		entries = entries[:limit]
	}

	cols := make([]component.Component, 0, len(entries))
	for _, en := range entries {
		children := []component.Component{}
		if !ctx.IsCompact() {
			children = append(children, &component.Text{
				Content: en.Label,
				Class:   render.FontCaption,
				Align:   component.HAlignCenter,
				Color:   theme.ForRole(theme.RoleSecondary),
			})
		}
		children = append(children,
			&component.Icon{Name: en.Condition, Color: col, MaxSize: 24},
			&component.Text{
				Content: strconv.FormatFloat(en.Value, 'f', w.Precision, 64) + w.Unit,
				Class:   render.FontSmall,
				Bold:    true,
				Align:   component.HAlignCenter,
				Color:   theme.ForRole(theme.RolePrimary),
			},
		)
		cols = append(cols, &component.Column{
			Children: children,
			Gap:      2,
			Align:    component.AlignCenter,
			Justify:  component.JustifyCenter,
		})
	}

	return Tree(&component.Row{
		Children: cols,
		Gap:      gapFor(ctx),
		Padding:  padFor(ctx),
		Align:    component.AlignCenter,
		Justify:  component.JustifySpaceAround,
	}), nil
}

func (w *Forecast) entryLimit(ctx *render.Context) int {
	limit := int(ctx.Width() / 40)
	if limit < 1 {
		limit = 1
	}
	if w.MaxEntries > 0 && w.MaxEntries < limit {
		limit = w.MaxEntries
	}
	return limit
}
