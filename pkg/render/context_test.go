package render

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/panelkit/panelkit/pkg/errors"
	"github.com/panelkit/panelkit/pkg/theme"
)

func TestSizeCategoryFor(t *testing.T) {
	tests := []struct {
		name   string
		height float64
		want   SizeCategory
	}{
		{name: "tiny grid cell", height: 50, want: SizeMicro},
		{name: "3x3 cell", height: 69, want: SizeTiny},
		{name: "2x3 cell", height: 108, want: SizeSmall},
		{name: "hero footer", height: 140, want: SizeMedium},
		{name: "fullscreen", height: 240, want: SizeLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SizeCategoryFor(tt.height); got != tt.want {
				t.Errorf("SizeCategoryFor(%g) = %v, want %v", tt.height, got, tt.want)
			}
		})
	}
}

func TestContextDensityHelpers(t *testing.T) {
	r := New()

	micro := r.Context(r.NewSlotCanvas(50, 50), 0, 50, 50)
	if !micro.IsCompact() || micro.ShowSecondary() || micro.ShowTertiary() {
		t.Error("50px slot: want compact, no secondary, no tertiary")
	}

	small := r.Context(r.NewSlotCanvas(108, 108), 0, 108, 108)
	if small.IsCompact() || !small.ShowSecondary() || small.ShowTertiary() {
		t.Error("108px slot: want secondary but not tertiary")
	}

	large := r.Context(r.NewSlotCanvas(240, 240), 0, 240, 240)
	if !large.ShowTertiary() {
		t.Error("240px slot: want tertiary content")
	}
}

func TestContextResolve(t *testing.T) {
	r := New()
	ctx := r.Context(r.NewSlotCanvas(100, 100), 0, 100, 100)

	if got := ctx.Resolve(theme.Literal(9, 8, 7)); got != (theme.RGB{R: 9, G: 8, B: 7}) {
		t.Errorf("Resolve(literal) = %v", got)
	}
	if got := ctx.Resolve(theme.ForRole(theme.RoleSecondary)); got != r.Theme().TextSecondary {
		t.Errorf("Resolve(secondary) = %v, want %v", got, r.Theme().TextSecondary)
	}
}

func TestRingGaugeTwelveOClockEdge(t *testing.T) {
	fill := theme.RGB{R: 250, G: 60, B: 60}
	track := theme.RGB{R: 40, G: 40, B: 60}

	sample := func(percent float64) theme.RGB {
		r := New(WithScale(2))
		dc := r.NewSlotCanvas(100, 100)
		ctx := r.Context(dc, 0, 100, 100)
		ctx.DrawRingGauge(50, 50, 30, 6, percent, theme.FromRGB(fill), theme.FromRGB(track))

		// Stroke centerline at 12 o'clock: (50, 50-(30-3)) logical = (100, 46) scaled.
		img := dc.Image()
		cr, cg, cb, _ := img.At(100, 46).RGBA()
		return theme.RGB{R: uint8(cr >> 8), G: uint8(cg >> 8), B: uint8(cb >> 8)}
	}

	empty := sample(0)
	full := sample(100)

	if empty == full {
		t.Fatal("0% and 100% ring gauges should differ at the 12 o'clock edge")
	}
	if dist(empty, track) > dist(empty, fill) {
		t.Errorf("0%% edge pixel %v should be closer to track %v than fill %v", empty, track, fill)
	}
	if dist(full, fill) > dist(full, track) {
		t.Errorf("100%% edge pixel %v should be closer to fill %v than track %v", full, fill, track)
	}
}

func dist(a, b theme.RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func TestContextSoftLogLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	r := New(WithLogger(logger))
	ctx := r.Context(r.NewSlotCanvas(50, 50), 3, 50, 50)

	ctx.Soft(errors.New(errors.ErrCodeMissingData, "no renderable value for sensor.x"))
	out := buf.String()
	if !strings.Contains(out, "DEBU") || !strings.Contains(out, string(errors.ErrCodeMissingData)) {
		t.Errorf("soft-coded condition logged as %q, want debug with code", out)
	}
	if strings.Contains(out, "WARN") {
		t.Error("soft-coded condition logged at warn")
	}

	buf.Reset()
	ctx.Soft(errors.New(errors.ErrCodeInternal, "boom"))
	if out := buf.String(); !strings.Contains(out, "WARN") {
		t.Errorf("hard condition logged as %q, want warn", out)
	}
}

func TestCheckBoundsReportsOverflow(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	r := New(WithLogger(logger))
	ctx := r.Context(r.NewSlotCanvas(50, 50), 0, 50, 50)

	ctx.FillRect(10, 10, 20, 20, theme.ForRole(theme.RolePrimary))
	if out := buf.String(); strings.Contains(out, string(errors.ErrCodeOverflow)) {
		t.Errorf("in-bounds draw reported overflow: %q", out)
	}

	ctx.FillRect(40, 40, 30, 30, theme.ForRole(theme.RolePrimary))
	if out := buf.String(); !strings.Contains(out, string(errors.ErrCodeOverflow)) {
		t.Errorf("out-of-bounds draw not reported: %q", out)
	}
}
