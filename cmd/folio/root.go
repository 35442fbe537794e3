package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath      string
	contentPath     string
	preferencesPath string
	noMotion        bool
	verbose         bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "folio",
		Short:         "Folio is a personal portfolio page for the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the folio config file (default ~/.folio/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.contentPath, "content", "", "YAML file overriding the page content")
	cmd.PersistentFlags().StringVar(&flags.preferencesPath, "preferences", "", "Path to the preferences file (default ~/.folio/preferences.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().BoolVar(&flags.noMotion, "no-motion", false, "Show every section at once instead of revealing them in turn")

	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newProjectsCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
