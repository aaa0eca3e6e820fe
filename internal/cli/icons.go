package cli

import (
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/panelkit/panelkit/pkg/render"
	"github.com/panelkit/panelkit/pkg/theme"
)

const (
	sheetColumns  = 8
	sheetCellSize = 56 // logical px per icon cell, caption included
)

// newIconsCmd creates the icons command, a debug tool that renders the whole
// icon catalog as a labeled contact sheet.
func newIconsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "icons",
		Short: "Render the icon catalog as a contact sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			r := render.New(render.WithLogger(logger))
			names := r.Icons().Names()
			rows := (len(names) + sheetColumns - 1) / sheetColumns
			sheetW := sheetColumns * sheetCellSize
			sheetH := rows * sheetCellSize

			dc := r.NewSlotCanvas(sheetW, sheetH)
			ctx := r.Context(dc, 0, float64(sheetW), float64(sheetH))

			for i, name := range names {
				cx := float64(i%sheetColumns)*sheetCellSize + sheetCellSize/2
				cy := float64(i/sheetColumns) * sheetCellSize
				ctx.DrawIcon(name, cx, cy+sheetCellSize*0.42, sheetCellSize*0.55, theme.ForRole(theme.RolePrimary))
				ctx.DrawText(name, cx, cy+sheetCellSize-4, render.FontCaption, false,
					theme.ForRole(theme.RoleSecondary), 0.5, 1)
			}

			sheet := imaging.Resize(dc.Image(), sheetW, sheetH, imaging.Lanczos)
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := imaging.Encode(f, sheet, imaging.PNG); err != nil {
				return err
			}

			prog.done(fmt.Sprintf("Rendered %d icons to %s", len(names), output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "icons.png", "output PNG path")
	return cmd
}
