package layout

import (
	"context"
	"errors"
	"testing"

	pkgerrors "github.com/panelkit/panelkit/pkg/errors"
	"github.com/panelkit/panelkit/pkg/observability"
	"github.com/panelkit/panelkit/pkg/render"
	"github.com/panelkit/panelkit/pkg/state"
	"github.com/panelkit/panelkit/pkg/theme"
	"github.com/panelkit/panelkit/pkg/widget"
)

func TestGrid2x2Geometry(t *testing.T) {
	l := New(Grid2x2, 240)
	slots := l.Slots()
	if len(slots) != 4 {
		t.Fatalf("SlotCount = %d, want 4", len(slots))
	}
	want := []Rect{
		{X: 8, Y: 8, W: 108, H: 108},
		{X: 124, Y: 8, W: 108, H: 108},
		{X: 8, Y: 124, W: 108, H: 108},
		{X: 124, Y: 124, W: 108, H: 108},
	}
	for i, s := range slots {
		if s.Rect != want[i] {
			t.Errorf("slot %d rect = %+v, want %+v", i, s.Rect, want[i])
		}
		if s.Index != i {
			t.Errorf("slot %d index = %d", i, s.Index)
		}
	}
}

func TestHeroFooterGeometry(t *testing.T) {
	l := New(HeroFooter, 240)
	slots := l.Slots()
	if len(slots) != 4 {
		t.Fatalf("SlotCount = %d, want 4 (hero + 3 footers)", len(slots))
	}

	hero := slots[0].Rect
	if hero.W != 224 {
		t.Errorf("hero width = %d, want 224", hero.W)
	}
	// innerH = 240 - 16 - 8 = 216; hero share 0.65 rounds to 140.
	if hero.H != 140 {
		t.Errorf("hero height = %d, want 140", hero.H)
	}
	for i, s := range slots[1:] {
		if s.Rect.H != 76 {
			t.Errorf("footer %d height = %d, want 76", i, s.Rect.H)
		}
		if s.Rect.Y != 156 {
			t.Errorf("footer %d Y = %d, want 156", i, s.Rect.Y)
		}
	}
}

func TestSlotCounts(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{Grid2x2, 4},
		{Grid2x3, 6},
		{Grid3x2, 6},
		{Grid3x3, 9},
		{HeroFooter, 4},
		{SplitH, 2},
		{SplitV, 2},
		{Columns, 3},
		{Rows, 3},
		{SidebarLeft, 3},
		{SidebarRight, 3},
		{Fullscreen, 1},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := New(tt.kind, 240).SlotCount(); got != tt.want {
				t.Errorf("SlotCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func overlaps(a, b Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func TestSlotsNeverOverlapAndStayInFrame(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			slots := New(kind, 240).Slots()
			for i, a := range slots {
				r := a.Rect
				if r.W <= 0 || r.H <= 0 {
					t.Errorf("slot %d has empty rect %+v", i, r)
				}
				if r.X < 8 || r.Y < 8 || r.X+r.W > 232 || r.Y+r.H > 232 {
					t.Errorf("slot %d rect %+v escapes padded frame", i, r)
				}
				for j, b := range slots[i+1:] {
					if overlaps(r, b.Rect) {
						t.Errorf("slots %d and %d overlap: %+v, %+v", i, i+1+j, r, b.Rect)
					}
				}
			}
		})
	}
}

func TestWithOptions(t *testing.T) {
	l := New(Columns, 240, WithCount(4), WithPadding(4), WithGap(4))
	if l.SlotCount() != 4 {
		t.Fatalf("SlotCount() = %d, want 4", l.SlotCount())
	}
	// innerW = 240 - 8 - 3*4 = 220; cell = 55.
	if got := l.Slots()[0].Rect.W; got != 55 {
		t.Errorf("column width = %d, want 55", got)
	}
	if got := l.Slots()[0].Rect.H; got != 232 {
		t.Errorf("column height = %d, want 232", got)
	}
}

func TestSplitRatio(t *testing.T) {
	l := New(SplitV, 240, WithRatio(0.7))
	slots := l.Slots()
	// main = 240 - 16 - 8 = 216; first = round(216*0.7) = 151.
	if got := slots[0].Rect.H; got != 151 {
		t.Errorf("first split height = %d, want 151", got)
	}
	if got := slots[1].Rect.H; got != 65 {
		t.Errorf("second split height = %d, want 65", got)
	}
	if slots[0].Rect.W != 224 || slots[1].Rect.W != 224 {
		t.Error("vertical split slots must span the padded width")
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range Kinds() {
		got, err := ParseKind(kind.String())
		if err != nil {
			t.Fatalf("ParseKind(%q) error = %v", kind.String(), err)
		}
		if got != kind {
			t.Errorf("ParseKind(%q) = %v, want %v", kind.String(), got, kind)
		}
	}

	_, err := ParseKind("hexagons")
	if err == nil {
		t.Fatal("ParseKind(unknown) error = nil, want error")
	}
	if code := pkgerrors.GetCode(err); code != pkgerrors.ErrCodeInvalidLayout {
		t.Errorf("error code = %v, want %v", code, pkgerrors.ErrCodeInvalidLayout)
	}
}

type fillWidget struct {
	err error
}

func (w *fillWidget) Name() string { return "fill" }

func (w *fillWidget) Build(ctx *render.Context, snap *state.Snapshot) (widget.Output, error) {
	if w.err != nil {
		return widget.Output{}, w.err
	}
	ctx.FillRect(0, 0, ctx.Width(), ctx.Height(), theme.ForRole(theme.RolePrimary))
	return widget.Drawn(), nil
}

type mismatchDiag struct {
	observability.NoopDiagnosticHooks
	calls [][2]int
}

func (d *mismatchDiag) OnSlotMismatch(_ context.Context, slotIndex, slotCount int) {
	d.calls = append(d.calls, [2]int{slotIndex, slotCount})
}

func TestSetWidget(t *testing.T) {
	rec := &mismatchDiag{}
	observability.SetDiagnosticHooks(rec)
	t.Cleanup(observability.Reset)

	l := New(Grid2x2, 240)
	a := &fillWidget{}
	b := &fillWidget{}

	l.SetWidget(1, a)
	if l.Slots()[1].Widget != a {
		t.Error("SetWidget(1) did not assign")
	}
	l.SetWidget(1, b)
	if l.Slots()[1].Widget != b {
		t.Error("SetWidget(1) did not replace existing widget")
	}

	l.SetWidget(9, a)
	l.SetWidget(-1, a)
	if len(rec.calls) != 2 {
		t.Fatalf("OnSlotMismatch calls = %d, want 2", len(rec.calls))
	}
	if rec.calls[0] != [2]int{9, 4} {
		t.Errorf("mismatch call = %v, want [9 4]", rec.calls[0])
	}
}

func TestRenderComposesOccupiedSlots(t *testing.T) {
	r := render.New()
	l := New(Grid2x2, 240)
	l.SetWidget(0, &fillWidget{})

	img := l.Render(context.Background(), r, "frame-1", &state.Snapshot{})

	scale := r.Scale()
	wantEdge := 240 * scale
	if b := img.Bounds(); b.Dx() != wantEdge || b.Dy() != wantEdge {
		t.Fatalf("frame bounds = %v, want %dx%d", b, wantEdge, wantEdge)
	}

	bg := img.At(0, 0)
	br, bgG, bb, _ := bg.RGBA()
	same := func(x, y int) bool {
		pr, pg, pb, _ := img.At(x*scale, y*scale).RGBA()
		return pr == br && pg == bgG && pb == bb
	}

	if same(62, 62) {
		t.Error("occupied slot center matches background, want painted")
	}
	if !same(178, 62) {
		t.Error("empty slot center differs from background")
	}
	if !same(178, 178) {
		t.Error("empty slot center differs from background")
	}
}

func TestRenderWidgetErrorLeavesSlotEmpty(t *testing.T) {
	r := render.New()
	l := New(Grid2x2, 240)
	l.SetWidget(0, &fillWidget{err: errors.New("boom")})

	img := l.Render(context.Background(), r, "frame-1", &state.Snapshot{})

	bg := img.At(0, 0)
	br, bgG, bb, _ := bg.RGBA()
	pr, pg, pb, _ := img.At(62*r.Scale(), 62*r.Scale()).RGBA()
	if pr != br || pg != bgG || pb != bb {
		t.Error("failed widget's slot differs from background, want empty")
	}
}
