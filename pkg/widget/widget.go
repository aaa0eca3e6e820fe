// Package widget defines the dashboard widget contract and the built-in
// widget set.
//
// A widget inspects the state snapshot and produces an Output: either a
// component tree the slot system lays out, or a signal that the widget drew
// directly onto the slot's RenderContext. Missing or unavailable data always
// degrades to a placeholder; a widget never fails the frame over absent
// state.
package widget

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/panelkit/panelkit/pkg/component"
	"github.com/panelkit/panelkit/pkg/errors"
	"github.com/panelkit/panelkit/pkg/observability"
	"github.com/panelkit/panelkit/pkg/render"
	"github.com/panelkit/panelkit/pkg/state"
	"github.com/panelkit/panelkit/pkg/theme"
)

// Placeholder is rendered in place of a value that is missing, unavailable,
// or non-numeric where a number is required.
const Placeholder = "--"

// Widget produces one slot's content for one frame.
type Widget interface {
	// Name identifies the widget kind in logs and hooks.
	Name() string

	// Build inspects the snapshot and returns the slot output. Errors are
	// reserved for programming mistakes; degraded data is not an error.
	Build(ctx *render.Context, snap *state.Snapshot) (Output, error)
}

// Output is the result of building a widget: either a component tree for
// the slot system to measure and render, or a marker that the widget
// already drew onto the context.
type Output struct {
	tree  component.Component
	drawn bool
}

// Tree wraps a component tree for the slot system to lay out.
func Tree(c component.Component) Output {
	return Output{tree: c}
}

// Drawn marks the slot as already painted via direct context calls.
func Drawn() Output {
	return Output{drawn: true}
}

// Component returns the wrapped tree, or false for a Drawn output.
func (o Output) Component() (component.Component, bool) {
	return o.tree, o.tree != nil
}

// IsDrawn reports whether the widget painted the slot directly.
func (o Output) IsDrawn() bool { return o.drawn }

// missingText builds the placeholder leaf and reports the gap.
func missingText(ctx *render.Context, entityID string, class render.FontClass) *component.Text {
	ctx.Soft(errors.New(errors.ErrCodeMissingData, "no renderable value for %s", entityID))
	observability.Diagnostic().OnMissingData(context.Background(), entityID)
	return &component.Text{
		Content: Placeholder,
		Class:   class,
		Bold:    true,
		Align:   component.HAlignCenter,
		Color:   theme.ForRole(theme.RoleSecondary),
	}
}

// colorOr returns c, or fallback when c is unset.
func colorOr(c, fallback theme.Color) theme.Color {
	if c == (theme.Color{}) {
		return fallback
	}
	return c
}

// formatValue renders an entity value for display: numeric values honor the
// precision and carry the unit, string states pass through as-is.
func formatValue(e state.Entity, precision int) string {
	if v, ok := e.Float(); ok {
		s := strconv.FormatFloat(v, 'f', precision, 64)
		if e.Unit != "" {
			return s + e.Unit
		}
		return s
	}
	if !e.Available || e.Value == nil {
		return Placeholder
	}
	s := fmt.Sprintf("%v", e.Value)
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}
