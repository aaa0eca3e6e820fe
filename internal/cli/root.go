package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/panelkit/panelkit/pkg/buildinfo"
)

// Execute runs the panelkit CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands (render,
// preview, icons), configures logging based on the --verbose flag, and
// executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "panelkit",
		Short:        "Panelkit renders dashboard frames for small embedded displays",
		Long:         `Panelkit renders fixed-resolution dashboard frames from a declarative TOML configuration, producing byte-budgeted JPEG output for embedded panels plus a lossless PNG preview.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newIconsCmd())

	return root.ExecuteContext(ctx)
}
