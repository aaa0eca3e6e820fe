package cli

import (
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/panelkit/panelkit/pkg/dashboard"
	"github.com/panelkit/panelkit/pkg/preview"
)

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	addr     string
	interval time.Duration
	snapshot string
}

// newPreviewCmd creates the preview command: re-render the dashboard on an
// interval and serve the latest frame over HTTP.
func newPreviewCmd() *cobra.Command {
	var opts previewOpts

	cmd := &cobra.Command{
		Use:   "preview [config.toml]",
		Short: "Serve a live dashboard preview over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := dashboard.Load(args[0])
			if err != nil {
				return err
			}
			d, err := dashboard.New(cfg, dashboard.WithLogger(logger))
			if err != nil {
				return err
			}

			srv := preview.NewServer(preview.WithLogger(logger))
			ctx := cmd.Context()

			renderOnce := func() {
				snap, err := resolveSnapshot(opts.snapshot, logger)
				if err != nil {
					logger.Warn("snapshot load failed, keeping previous frame", "err", err)
					return
				}
				res, err := d.Frame(ctx, snap)
				if err != nil {
					logger.Warn("frame render failed, keeping previous frame", "err", err)
					return
				}
				srv.Publish(res)
				logger.Debug("frame published", "frame", res.FrameID, "elapsed", res.Elapsed)
			}
			renderOnce()

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return srv.ListenAndServe(gctx, opts.addr)
			})
			g.Go(func() error {
				ticker := time.NewTicker(opts.interval)
				defer ticker.Stop()
				for {
					select {
					case <-gctx.Done():
						return gctx.Err()
					case <-ticker.C:
						renderOnce()
					}
				}
			})
			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "127.0.0.1:8490", "listen address")
	cmd.Flags().DurationVar(&opts.interval, "interval", 5*time.Second, "refresh interval")
	cmd.Flags().StringVar(&opts.snapshot, "snapshot", "", "JSON snapshot file re-read each cycle (demo data when omitted)")
	return cmd
}
