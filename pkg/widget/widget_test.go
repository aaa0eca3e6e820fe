package widget

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/panelkit/panelkit/pkg/observability"
	"github.com/panelkit/panelkit/pkg/render"
	"github.com/panelkit/panelkit/pkg/state"
	"github.com/panelkit/panelkit/pkg/theme"
)

func newTestContext(t *testing.T, w, h int) *render.Context {
	t.Helper()
	r := render.New()
	dc := r.NewSlotCanvas(w, h)
	return r.Context(dc, 0, float64(w), float64(h))
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name      string
		entity    state.Entity
		precision int
		want      string
	}{
		{
			"NumericWithUnit",
			state.Entity{Value: 21.5, Unit: "°C", Available: true},
			1,
			"21.5°C",
		},
		{
			"NumericNoUnit",
			state.Entity{Value: 42.0, Available: true},
			0,
			"42",
		},
		{
			"PrecisionRounds",
			state.Entity{Value: 3.14159, Available: true},
			2,
			"3.14",
		},
		{
			"StringState",
			state.Entity{Value: "Home", Available: true},
			0,
			"Home",
		},
		{
			"Unavailable",
			state.Entity{Value: 21.5, Available: false},
			1,
			Placeholder,
		},
		{
			"BlankString",
			state.Entity{Value: "  ", Available: true},
			0,
			Placeholder,
		},
		{
			"NumericString",
			state.Entity{Value: "19.27", Unit: "kW", Available: true},
			1,
			"19.3kW",
		},
		{
			"NilValue",
			state.Entity{Available: true},
			0,
			Placeholder,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatValue(tt.entity, tt.precision); got != tt.want {
				t.Errorf("formatValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOutputKinds(t *testing.T) {
	drawn := Drawn()
	if !drawn.IsDrawn() {
		t.Error("Drawn().IsDrawn() = false, want true")
	}
	if _, ok := drawn.Component(); ok {
		t.Error("Drawn().Component() ok = true, want false")
	}

	tree := Tree(missingText(newTestContext(t, 100, 100), "x", render.FontBody))
	if tree.IsDrawn() {
		t.Error("Tree().IsDrawn() = true, want false")
	}
	if _, ok := tree.Component(); !ok {
		t.Error("Tree().Component() ok = false, want true")
	}
}

type recordingDiag struct {
	observability.NoopDiagnosticHooks
	missing []string
}

func (r *recordingDiag) OnMissingData(_ context.Context, entityID string) {
	r.missing = append(r.missing, entityID)
}

func TestEntityMissingDataHook(t *testing.T) {
	rec := &recordingDiag{}
	observability.SetDiagnosticHooks(rec)
	t.Cleanup(observability.Reset)

	ctx := newTestContext(t, 100, 100)
	snap := &state.Snapshot{}
	w := &Entity{EntityID: "sensor.absent"}

	out, err := w.Build(ctx, snap)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if _, ok := out.Component(); !ok {
		t.Fatal("Build() output is not a tree")
	}
	if len(rec.missing) != 1 || rec.missing[0] != "sensor.absent" {
		t.Errorf("OnMissingData calls = %v, want [sensor.absent]", rec.missing)
	}
}

func TestEntityAvailableBuildsTree(t *testing.T) {
	ctx := newTestContext(t, 108, 108)
	snap := &state.Snapshot{
		Entities: map[string]state.Entity{
			"sensor.temp": {ID: "sensor.temp", Value: 21.5, Unit: "°C", Available: true},
		},
	}
	w := &Entity{EntityID: "sensor.temp", Label: "Living Room", Icon: "thermometer"}

	out, err := w.Build(ctx, snap)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	c, ok := out.Component()
	if !ok {
		t.Fatal("Build() output is not a tree")
	}
	if mw, mh := c.Measure(ctx, 108, 108); mw <= 0 || mh <= 0 {
		t.Errorf("tree Measure() = (%v, %v), want positive", mw, mh)
	}
}

func TestGaugeToPercent(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		value    float64
		want     float64
	}{
		{"MidRange", 0, 200, 100, 50},
		{"OffsetRange", 100, 200, 150, 50},
		{"BelowMinClamps", 0, 100, -20, 0},
		{"AboveMaxClamps", 0, 100, 140, 100},
		{"DegenerateRangeRawPercent", 50, 50, 75, 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &Gauge{Min: tt.min, Max: tt.max}
			if got := w.toPercent(tt.value); got != tt.want {
				t.Errorf("toPercent(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestGaugeMissingValue(t *testing.T) {
	rec := &recordingDiag{}
	observability.SetDiagnosticHooks(rec)
	t.Cleanup(observability.Reset)

	ctx := newTestContext(t, 100, 100)
	out, err := (&Gauge{EntityID: "sensor.cpu"}).Build(ctx, &state.Snapshot{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if _, ok := out.Component(); !ok {
		t.Fatal("Build() output is not a tree")
	}
	if len(rec.missing) != 1 {
		t.Errorf("OnMissingData calls = %d, want 1", len(rec.missing))
	}
}

func TestHistoryDrawsDirectly(t *testing.T) {
	ctx := newTestContext(t, 200, 100)
	snap := &state.Snapshot{
		Histories: map[string]state.History{
			"sensor.power": {1, 3, 2, 5, 4},
		},
	}
	out, err := (&History{EntityID: "sensor.power", Smooth: true}).Build(ctx, snap)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !out.IsDrawn() {
		t.Error("Build() output not Drawn")
	}
}

func TestForecastEntryLimit(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		maxEntries int
		want       int
	}{
		{"WideSlot", 240, 0, 6},
		{"NarrowSlot", 108, 0, 2},
		{"TinySlot", 30, 0, 1},
		{"CappedByMaxEntries", 240, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(t, tt.width, 100)
			w := &Forecast{MaxEntries: tt.maxEntries}
			if got := w.entryLimit(ctx); got != tt.want {
				t.Errorf("entryLimit() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestForecastBuild(t *testing.T) {
	ctx := newTestContext(t, 240, 80)
	snap := &state.Snapshot{
		Forecasts: map[string][]state.ForecastEntry{
			"weather.home": {
				{Label: "Mon", Condition: "sunny", Value: 24},
				{Label: "Tue", Condition: "rain", Value: 18},
			},
		},
	}
	out, err := (&Forecast{Key: "weather.home", Unit: "°"}).Build(ctx, snap)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if _, ok := out.Component(); !ok {
		t.Error("Build() output is not a tree")
	}
}

func TestImageWidget(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatal(err)
	}

	t.Run("DecodablePayloadDraws", func(t *testing.T) {
		ctx := newTestContext(t, 100, 100)
		snap := &state.Snapshot{Images: map[string][]byte{"camera.front": buf.Bytes()}}
		out, err := (&Image{Key: "camera.front"}).Build(ctx, snap)
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if !out.IsDrawn() {
			t.Error("Build() output not Drawn")
		}
	})

	t.Run("RepeatPayloadUsesCachedDecode", func(t *testing.T) {
		ctx := newTestContext(t, 100, 100)
		snap := &state.Snapshot{Images: map[string][]byte{"camera.front": buf.Bytes()}}
		w := &Image{Key: "camera.front"}
		if _, err := w.Build(ctx, snap); err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		first, ok := w.cache.Get("camera.front")
		if !ok {
			t.Fatal("cache empty after first build")
		}
		if _, err := w.Build(ctx, snap); err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		second, _ := w.cache.Get("camera.front")
		if first.img != second.img {
			t.Error("second build decoded again, want cached image")
		}
	})

	t.Run("GarbagePayloadFallsBack", func(t *testing.T) {
		ctx := newTestContext(t, 100, 100)
		snap := &state.Snapshot{Images: map[string][]byte{"camera.front": []byte("not an image")}}
		out, err := (&Image{Key: "camera.front"}).Build(ctx, snap)
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if out.IsDrawn() {
			t.Error("Build() output Drawn, want placeholder tree")
		}
	})
}

func TestClockUsesSnapshotTime(t *testing.T) {
	ctx := newTestContext(t, 120, 120)
	snap := &state.Snapshot{Now: time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)}
	out, err := (&Clock{}).Build(ctx, snap)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if _, ok := out.Component(); !ok {
		t.Error("Build() output is not a tree")
	}
}

func TestStatusGridDrawsDirectly(t *testing.T) {
	ctx := newTestContext(t, 200, 100)
	snap := &state.Snapshot{
		Histories: map[string]state.History{
			"binary_sensor.door": {0, 0, 1, 1, 0},
		},
	}
	w := &StatusGrid{Rows: []StatusRow{
		{EntityID: "binary_sensor.door", Label: "Door"},
		{EntityID: "binary_sensor.motion", Label: "Motion"},
	}}
	out, err := w.Build(ctx, snap)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !out.IsDrawn() {
		t.Error("Build() output not Drawn")
	}
}

func TestColorOr(t *testing.T) {
	fallback := theme.ForRole(theme.RolePrimary)
	if got := colorOr(theme.Color{}, fallback); got != fallback {
		t.Errorf("colorOr(zero) = %v, want fallback", got)
	}
	set := theme.Literal(10, 20, 30)
	if got := colorOr(set, fallback); got != set {
		t.Errorf("colorOr(set) = %v, want the set color", got)
	}
}
