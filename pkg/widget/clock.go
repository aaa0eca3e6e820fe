package widget

import (
	"time"

	"github.com/panelkit/panelkit/pkg/component"
	"github.com/panelkit/panelkit/pkg/render"
	"github.com/panelkit/panelkit/pkg/state"
	"github.com/panelkit/panelkit/pkg/theme"
)

// Clock shows the snapshot time, with the date on a secondary row when the
// slot allows it.
type Clock struct {
	// TimeFormat and DateFormat are time.Format layouts; empty values use
	// 24-hour time and an abbreviated weekday date.
	TimeFormat string
	DateFormat string
	Color      theme.Color
}

func (w *Clock) Name() string { return "clock" }

func (w *Clock) Build(ctx *render.Context, snap *state.Snapshot) (Output, error) {
	now := snap.Now
	if now.IsZero() {
		now = time.Now()
	}

	tf := w.TimeFormat
	if tf == "" {
		tf = "15:04"
	}
	df := w.DateFormat
	if df == "" {
		df = "Mon, Jan 2"
	}

	children := []component.Component{
		&component.Text{
			Content: now.Format(tf),
			Class:   valueClass(ctx),
			Bold:    true,
			Align:   component.HAlignCenter,
			Color:   colorOr(w.Color, theme.ForRole(theme.RolePrimary)),
		},
	}
	if ctx.ShowSecondary() {
		children = append(children, &component.Text{
			Content: now.Format(df),
			Class:   render.FontSmall,
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
