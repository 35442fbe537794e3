package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/content"
)

type projectsPayload struct {
	Version  string            `json:"version"`
	Count    int               `json:"count"`
	Projects []content.Project `json:"projects"`
}

func newProjectsCmd(flags *rootFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List the projects shown on the page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, flags, "list projects")
			if err != nil {
				return err
			}

			projects := app.content.Projects
			if jsonOutput {
				payload := projectsPayload{Version: "1", Count: len(projects), Projects: projects}
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(payload)
			}

			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects to show.")
				return nil
			}

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tTITLE\tTAGS\tLIVE\tSOURCE")
			for _, p := range projects {
				fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Title, strings.Join(p.Tags, ", "), linkCell(p.Live), linkCell(p.Source))
			}
			return writer.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output projects as JSON")
	return cmd
}

func linkCell(target string) string {
	if !content.HasLink(target) {
		return "-"
	}
	return target
}
