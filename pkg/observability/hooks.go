// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about frame rendering, image encoding, and render-path
// diagnostics.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetFrameHooks(&myFrameHooks{})
//	    observability.SetDiagnosticHooks(&myDiagnosticHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Frame().OnFrameStart(ctx, frameID, layoutKind, slotCount)
//	// ... render ...
//	observability.Frame().OnFrameComplete(ctx, frameID, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Frame Hooks
// =============================================================================

// FrameHooks receives events from the per-cycle render pipeline.
type FrameHooks interface {
	// Frame events
	OnFrameStart(ctx context.Context, frameID, layoutKind string, slotCount int)
	OnFrameComplete(ctx context.Context, frameID string, duration time.Duration, err error)

	// Slot events
	OnSlotStart(ctx context.Context, frameID string, slotIndex int, widget string)
	OnSlotComplete(ctx context.Context, frameID string, slotIndex int, duration time.Duration)

	// Encode events
	OnEncodeAttempt(ctx context.Context, frameID string, quality, sizeBytes int)
	OnEncodeComplete(ctx context.Context, frameID string, quality, sizeBytes int, overBudget bool)
}

// =============================================================================
// Diagnostic Hooks
// =============================================================================

// DiagnosticHooks receives soft render-path diagnostics. None of these events
// indicate a failed frame; the renderer degrades and continues.
type DiagnosticHooks interface {
	// OnOverflow records a draw call that exceeded its slot bounds.
	OnOverflow(ctx context.Context, slotIndex int, op string, x, y, w, h float64)

	// OnMissingData records a placeholder rendered for a non-numeric value.
	OnMissingData(ctx context.Context, entityID string)

	// OnAssetFallback records a font/icon resource falling through to a
	// later provider in its fallback chain.
	OnAssetFallback(ctx context.Context, asset, fallback string)

	// OnSlotMismatch records a widget assigned to a non-existent slot index.
	OnSlotMismatch(ctx context.Context, slotIndex, slotCount int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopFrameHooks is a no-op implementation of FrameHooks.
type NoopFrameHooks struct{}

func (NoopFrameHooks) OnFrameStart(context.Context, string, string, int)                 {}
func (NoopFrameHooks) OnFrameComplete(context.Context, string, time.Duration, error)     {}
func (NoopFrameHooks) OnSlotStart(context.Context, string, int, string)                  {}
func (NoopFrameHooks) OnSlotComplete(context.Context, string, int, time.Duration)        {}
func (NoopFrameHooks) OnEncodeAttempt(context.Context, string, int, int)                 {}
func (NoopFrameHooks) OnEncodeComplete(context.Context, string, int, int, bool)          {}

// NoopDiagnosticHooks is a no-op implementation of DiagnosticHooks.
type NoopDiagnosticHooks struct{}

func (NoopDiagnosticHooks) OnOverflow(context.Context, int, string, float64, float64, float64, float64) {
}
func (NoopDiagnosticHooks) OnMissingData(context.Context, string)      {}
func (NoopDiagnosticHooks) OnAssetFallback(context.Context, string, string) {}
func (NoopDiagnosticHooks) OnSlotMismatch(context.Context, int, int)   {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	frameHooks      FrameHooks      = NoopFrameHooks{}
	diagnosticHooks DiagnosticHooks = NoopDiagnosticHooks{}
	hooksMu         sync.RWMutex
)

// SetFrameHooks registers custom frame hooks.
// This should be called once at application startup before any render cycles.
func SetFrameHooks(h FrameHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		frameHooks = h
	}
}

// SetDiagnosticHooks registers custom diagnostic hooks.
// This should be called once at application startup before any render cycles.
func SetDiagnosticHooks(h DiagnosticHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		diagnosticHooks = h
	}
}

// Frame returns the registered frame hooks.
func Frame() FrameHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return frameHooks
}

// Diagnostic returns the registered diagnostic hooks.
func Diagnostic() DiagnosticHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return diagnosticHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	frameHooks = NoopFrameHooks{}
	diagnosticHooks = NoopDiagnosticHooks{}
}
