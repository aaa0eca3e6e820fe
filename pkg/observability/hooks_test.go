package observability

import (
	"context"
	"testing"
	"time"
)

type recordingFrameHooks struct {
	NoopFrameHooks
	frames  int
	encodes int
}

func (h *recordingFrameHooks) OnFrameStart(context.Context, string, string, int) { h.frames++ }
func (h *recordingFrameHooks) OnEncodeAttempt(context.Context, string, int, int) { h.encodes++ }

type recordingDiagnosticHooks struct {
	NoopDiagnosticHooks
	overflows int
}

func (h *recordingDiagnosticHooks) OnOverflow(_ context.Context, _ int, _ string, _, _, _, _ float64) {
	h.overflows++
}

func TestSetFrameHooks(t *testing.T) {
	defer Reset()

	rec := &recordingFrameHooks{}
	SetFrameHooks(rec)

	Frame().OnFrameStart(context.Background(), "f1", "grid_2x2", 4)
	Frame().OnEncodeAttempt(context.Background(), "f1", 95, 12000)
	Frame().OnFrameComplete(context.Background(), "f1", time.Millisecond, nil)

	if rec.frames != 1 {
		t.Errorf("frames = %d, want 1", rec.frames)
	}
	if rec.encodes != 1 {
		t.Errorf("encodes = %d, want 1", rec.encodes)
	}
}

func TestSetDiagnosticHooks(t *testing.T) {
	defer Reset()

	rec := &recordingDiagnosticHooks{}
	SetDiagnosticHooks(rec)

	Diagnostic().OnOverflow(context.Background(), 2, "text", 10, 10, 500, 20)
	if rec.overflows != 1 {
		t.Errorf("overflows = %d, want 1", rec.overflows)
	}
}

func TestNilRegistrationKeepsCurrent(t *testing.T) {
	defer Reset()

	rec := &recordingFrameHooks{}
	SetFrameHooks(rec)
	SetFrameHooks(nil)

	Frame().OnFrameStart(context.Background(), "f1", "fullscreen", 1)
	if rec.frames != 1 {
		t.Error("nil registration should not replace existing hooks")
	}
}

func TestResetRestoresNoops(t *testing.T) {
	rec := &recordingFrameHooks{}
	SetFrameHooks(rec)
	Reset()

	Frame().OnFrameStart(context.Background(), "f1", "fullscreen", 1)
	if rec.frames != 0 {
		t.Error("Reset should restore no-op hooks")
	}
}
