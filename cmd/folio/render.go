package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/theme"
	"github.com/alexisbeaulieu97/folio/internal/tui"
)

func newRenderCmd(flags *rootFlags) *cobra.Command {
	var (
		width    int
		modeFlag string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the full page once without starting the interactive view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, flags, "render page")
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var mode theme.Mode
			if modeFlag != "" {
				mode, err = theme.Parse(modeFlag)
				if err != nil {
					return newCommandError("render page", fmt.Sprintf("parsing --mode %q", modeFlag), err, "Use dark or light.")
				}
			} else {
				mode = app.resolver(out).Resolve().Mode
			}

			if width <= 0 {
				width = terminalWidth(out)
			}

			fmt.Fprintln(out, tui.Render(app.content, mode, width))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "Page width in columns (default: terminal width or 80)")
	cmd.Flags().StringVar(&modeFlag, "mode", "", "Render in dark or light without consulting stored preferences")
	return cmd
}
