// Package pkg provides the core libraries for panelkit dashboard rendering.
//
// # Overview
//
// Panelkit renders fixed-resolution dashboard frames for small embedded
// displays. Each refresh cycle turns a state snapshot and a declarative
// widget configuration into a byte-budgeted JPEG plus a lossless PNG
// preview. The pkg directory is organized into four main areas:
//
//  1. Rendering ([render], [theme]) - supersampled canvas, fonts, icons,
//     charts, export
//  2. Composition ([component], [layout], [widget]) - declarative trees,
//     slot geometry, widget kinds
//  3. Assembly ([dashboard], [state], [preview]) - TOML config, snapshot
//     model, preview HTTP server
//  4. Ambient ([errors], [observability], [buildinfo]) - soft-failure codes,
//     render hooks, version info
//
// # Architecture
//
// The typical data flow through panelkit each refresh cycle:
//
//	TOML config + state Snapshot
//	         ↓
//	    [dashboard] package (assemble layout + widgets)
//	         ↓
//	    [layout] package (slot geometry + per-slot render loop)
//	         ↓
//	    [widget] / [component] packages (build + measure + render trees)
//	         ↓
//	    [render] package (supersampled raster, downscale, export)
//	         ↓
//	    JPEG (byte-budgeted) + PNG (preview) output
//
// # Quick Start
//
// Render one frame from a config:
//
//	cfg, _ := dashboard.Load("dashboard.toml")
//	d, _ := dashboard.New(cfg)
//	res, _ := d.Frame(ctx, snapshot)
//	os.WriteFile("frame.jpg", res.JPEG, 0o644)
//
// # Error Handling
//
// Everything on the per-frame render path degrades softly: missing data
// becomes a placeholder, out-of-bounds draws are logged but never clipped,
// asset lookups fall through deterministic chains, and an over-budget encode
// returns a best-effort frame. Only configuration loading, outside the hot
// path, hard-fails; see [errors].
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/render/...    # Specific package
//
// [render]: https://pkg.go.dev/github.com/panelkit/panelkit/pkg/render
// [theme]: https://pkg.go.dev/github.com/panelkit/panelkit/pkg/theme
// [component]: https://pkg.go.dev/github.com/panelkit/panelkit/pkg/component
// [layout]: https://pkg.go.dev/github.com/panelkit/panelkit/pkg/layout
// [widget]: https://pkg.go.dev/github.com/panelkit/panelkit/pkg/widget
// [dashboard]: https://pkg.go.dev/github.com/panelkit/panelkit/pkg/dashboard
// [state]: https://pkg.go.dev/github.com/panelkit/panelkit/pkg/state
// [preview]: https://pkg.go.dev/github.com/panelkit/panelkit/pkg/preview
// [errors]: https://pkg.go.dev/github.com/panelkit/panelkit/pkg/errors
// [observability]: https://pkg.go.dev/github.com/panelkit/panelkit/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/panelkit/panelkit/pkg/buildinfo
package pkg
