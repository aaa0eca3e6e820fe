package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/panelkit/panelkit/pkg/dashboard"
	"github.com/panelkit/panelkit/pkg/state"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output base path; extension is replaced per format
	snapshot string // optional JSON snapshot file; empty uses demo data
}

// newRenderCmd creates the render command: one frame from a dashboard config
// to <out>.jpg and <out>.png.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [config.toml]",
		Short: "Render one dashboard frame to JPEG and PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			cfg, err := dashboard.Load(args[0])
			if err != nil {
				return err
			}
			d, err := dashboard.New(cfg, dashboard.WithLogger(logger))
			if err != nil {
				return err
			}

			snap, err := resolveSnapshot(opts.snapshot, logger)
			if err != nil {
				return err
			}

			res, err := d.Frame(cmd.Context(), snap)
			if err != nil {
				return err
			}

			base := strings.TrimSuffix(opts.output, filepath.Ext(opts.output))
			jpgPath := base + ".jpg"
			pngPath := base + ".png"
			if err := os.WriteFile(jpgPath, res.JPEG, 0o644); err != nil {
				return err
			}
			if err := os.WriteFile(pngPath, res.PNG, 0o644); err != nil {
				return err
			}

			logger.Debug("frame written",
				"frame", res.FrameID, "jpeg_bytes", len(res.JPEG), "png_bytes", len(res.PNG))
			prog.done(fmt.Sprintf("Rendered %s and %s", jpgPath, pngPath))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "frame", "output base path")
	cmd.Flags().StringVar(&opts.snapshot, "snapshot", "", "JSON snapshot file (demo data when omitted)")
	return cmd
}

func resolveSnapshot(path string, logger *log.Logger) (*state.Snapshot, error) {
	if path == "" {
		logger.Debug("no snapshot file given, using demo data")
		return demoSnapshot(), nil
	}
	return loadSnapshot(path)
}
