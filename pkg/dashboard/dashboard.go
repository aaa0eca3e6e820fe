package dashboard

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/panelkit/panelkit/pkg/layout"
	"github.com/panelkit/panelkit/pkg/observability"
	"github.com/panelkit/panelkit/pkg/render"
	"github.com/panelkit/panelkit/pkg/state"
)

// Dashboard is a fully assembled rendering target: resolved layout, widget
// assignments, renderer, and export tuning. One Dashboard serves one output
// panel; the caller serializes Frame calls per target.
type Dashboard struct {
	cfg      Config
	renderer *render.Renderer
	layout   *layout.Layout
	logger   *log.Logger
}

// Option configures dashboard assembly.
type Option func(*Dashboard)

// WithLogger routes assembly and frame diagnostics to the given logger.
func WithLogger(l *log.Logger) Option {
	return func(d *Dashboard) { d.logger = l }
}

// WithRenderer replaces the renderer built from the config, for callers
// that share font or icon catalogs across dashboards.
func WithRenderer(r *render.Renderer) Option {
	return func(d *Dashboard) { d.renderer = r }
}

// New assembles a dashboard from a validated config.
func New(cfg Config, opts ...Option) (*Dashboard, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := &Dashboard{cfg: cfg, logger: log.Default()}
	for _, opt := range opts {
		opt(d)
	}

	if d.renderer == nil {
		d.renderer = render.New(
			render.WithSize(cfg.Size),
			render.WithTheme(buildTheme(cfg.Theme)),
			render.WithEncodeParams(render.EncodeParams(cfg.Encode)),
			render.WithLogger(d.logger),
		)
	}

	kind, err := layout.ParseKind(cfg.Layout.Kind)
	if err != nil {
		return nil, err
	}
	lopts := append(cfg.Layout.options(), layout.WithLogger(d.logger))
	d.layout = layout.New(kind, cfg.Size, lopts...)

	for _, s := range cfg.Slots {
		w, err := buildWidget(s)
		if err != nil {
			return nil, err
		}
		d.layout.SetWidget(s.Index, w)
	}

	return d, nil
}

// Layout exposes the resolved slot arrangement.
func (d *Dashboard) Layout() *layout.Layout { return d.layout }

// Renderer exposes the underlying renderer.
func (d *Dashboard) Renderer() *render.Renderer { return d.renderer }

// FrameResult is one rendered refresh cycle.
type FrameResult struct {
	FrameID string
	JPEG    []byte
	PNG     []byte
	Elapsed time.Duration
}

// Frame renders one refresh cycle from a snapshot: compose slots, downscale,
// export the budgeted JPEG and the lossless preview PNG.
func (d *Dashboard) Frame(ctx context.Context, snap *state.Snapshot) (*FrameResult, error) {
	start := time.Now()
	frameID := uuid.NewString()
	hooks := observability.Frame()
	hooks.OnFrameStart(ctx, frameID, d.layout.Kind().String(), d.layout.SlotCount())

	img := d.layout.Render(ctx, d.renderer, frameID, snap)
	out := d.renderer.Downscale(img)

	jpegData, err := d.renderer.FrameJPEG(ctx, frameID, out, d.cfg.Encode.Quality, d.cfg.Encode.MaxBytes)
	if err != nil {
		hooks.OnFrameComplete(ctx, frameID, time.Since(start), err)
		return nil, err
	}
	pngData, err := d.renderer.ToPNG(out)
	if err != nil {
		hooks.OnFrameComplete(ctx, frameID, time.Since(start), err)
		return nil, err
	}

	elapsed := time.Since(start)
	hooks.OnFrameComplete(ctx, frameID, elapsed, nil)
	d.logger.Debug("frame rendered",
		"frame", frameID, "layout", d.layout.Kind().String(),
		"jpeg_bytes", len(jpegData), "png_bytes", len(pngData), "elapsed", elapsed)

	return &FrameResult{
		FrameID: frameID,
		JPEG:    jpegData,
		PNG:     pngData,
		Elapsed: elapsed,
	}, nil
}
