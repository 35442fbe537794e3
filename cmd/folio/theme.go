package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/theme"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the theme the page would open with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, flags, "resolve theme")
			if err != nil {
				return err
			}

			res := app.resolver(cmd.OutOrStdout()).Resolve()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", res.Mode.Icon(), res.Mode.Label())
			switch res.Source {
			case theme.SourceStored:
				fmt.Fprintf(out, "source: stored in %s\n", app.store.Path())
			case theme.SourceAmbient:
				fmt.Fprintf(out, "source: environment (%s)\n", res.Detector)
			default:
				fmt.Fprintln(out, "source: default")
			}
			return nil
		},
	}

	cmd.AddCommand(newThemeSetCmd(flags))
	cmd.AddCommand(newThemeToggleCmd(flags))
	cmd.AddCommand(newThemeResetCmd(flags))

	return cmd
}

func newThemeSetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "set <dark|light>",
		Short:     "Remember a theme for future sessions",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(theme.Dark), string(theme.Light)},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := theme.Parse(args[0])
			if err != nil {
				return newCommandError("set theme", fmt.Sprintf("parsing %q", args[0]), err, "Use dark or light.")
			}

			app, err := loadApp(cmd, flags, "set theme")
			if err != nil {
				return err
			}

			initial := app.resolver(cmd.OutOrStdout()).ResolveInitial()
			if err := theme.NewController(initial, app.persister()).Set(mode); err != nil {
				return newCommandError("set theme", fmt.Sprintf("switching to %s", mode), err, "Use dark or light.")
			}
			if err := app.confirmStored(mode); err != nil {
				return newCommandError("set theme", fmt.Sprintf("writing %s", app.store.Path()), err, "Check that the preferences directory is writable.")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", mode)
			return nil
		},
	}
}

func newThemeToggleCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Flip the remembered theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, flags, "toggle theme")
			if err != nil {
				return err
			}

			initial := app.resolver(cmd.OutOrStdout()).ResolveInitial()
			next := theme.NewController(initial, app.persister()).Toggle()

			if err := app.confirmStored(next); err != nil {
				return newCommandError("toggle theme", fmt.Sprintf("writing %s", app.store.Path()), err, "Check that the preferences directory is writable.")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Theme switched from %s to %s\n", initial, next)
			return nil
		},
	}
}

// confirmStored reports an error unless the store holds mode. The persister only logs
// write failures, so commands check the result themselves.
func (a *appContext) confirmStored(mode theme.Mode) error {
	stored, ok, err := a.store.Get(theme.StorageKey)
	if err != nil {
		return err
	}
	if !ok || stored != mode.String() {
		return fmt.Errorf("stored value is %q, want %q", stored, mode)
	}
	return nil
}

func newThemeResetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the remembered theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, flags, "reset theme")
			if err != nil {
				return err
			}

			if err := app.store.Delete(theme.StorageKey); err != nil {
				return newCommandError("reset theme", fmt.Sprintf("writing %s", app.store.Path()), err, "Check that the preferences directory is writable.")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Theme preference cleared")
			return nil
		},
	}
}
