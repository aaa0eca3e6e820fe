package layout

import (
	"context"
	"image"
	"time"

	"github.com/panelkit/panelkit/pkg/errors"
	"github.com/panelkit/panelkit/pkg/observability"
	"github.com/panelkit/panelkit/pkg/render"
	"github.com/panelkit/panelkit/pkg/state"
	"github.com/panelkit/panelkit/pkg/widget"
)

// SetWidget assigns a widget to a slot, replacing any previous assignment.
// An out-of-range index is skipped: the mismatch is logged at debug and
// reported via the diagnostic hook, and the frame renders without it.
func (l *Layout) SetWidget(i int, w widget.Widget) {
	if i < 0 || i >= len(l.slots) {
		l.logger.Debug("widget assigned to missing slot", "err", errors.New(errors.ErrCodeConfigMismatch,
			"slot %d does not exist in %s with %d slots", i, l.kind.String(), len(l.slots)))
		observability.Diagnostic().OnSlotMismatch(context.Background(), i, len(l.slots))
		return
	}
	l.slots[i].Widget = w
}

// Render paints every occupied slot onto a fresh supersampled canvas and
// returns the composed frame. Each widget draws into an exact-size slot
// canvas; the paste at the slot offset enforces containment. A widget error
// leaves its slot on the background and never fails the frame.
func (l *Layout) Render(ctx context.Context, r *render.Renderer, frameID string, snap *state.Snapshot) image.Image {
	hooks := observability.Frame()
	dc := r.NewCanvas()

	for _, slot := range l.slots {
		if slot.Widget == nil {
			continue
		}
		start := time.Now()
		hooks.OnSlotStart(ctx, frameID, slot.Index, slot.Widget.Name())

		sub := r.NewSlotCanvas(slot.Rect.W, slot.Rect.H)
		rctx := r.Context(sub, slot.Index, float64(slot.Rect.W), float64(slot.Rect.H))

		out, err := slot.Widget.Build(rctx, snap)
		if err != nil {
			// Soft-coded errors are expected degradation, not failures.
			lvl := l.logger.Warn
			if errors.Soft(err) {
				lvl = l.logger.Debug
			}
			lvl("widget build failed, slot left empty",
				"slot", slot.Index, "widget", slot.Widget.Name(), "err", err)
			hooks.OnSlotComplete(ctx, frameID, slot.Index, time.Since(start))
			continue
		}
		if c, ok := out.Component(); ok {
			w := float64(slot.Rect.W)
			h := float64(slot.Rect.H)
			c.Measure(rctx, w, h)
			c.Render(rctx, 0, 0, w, h)
		}

		r.Compose(dc, sub, slot.Rect.X, slot.Rect.Y)
		hooks.OnSlotComplete(ctx, frameID, slot.Index, time.Since(start))
	}

	return dc.Image()
}
