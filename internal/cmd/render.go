package cmd

import (
	"github.com/spf13/cobra"
)

func (a *app) renderCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Expand a schedule and write the dated plan",
		Long: `Read a schedule, expand every recipe into dated phases and write the
result. The PLA format is the default; --format json writes the full plan
graph including template ids and resource needs.

Examples:
  # Render from stdin to stdout
  chronogrog render < schedule.json

  # Render a file to a file
  chronogrog render -i schedule.yaml -o schedule.pla

  # Machine readable plan
  chronogrog render -i schedule.yaml --format json
`,
		Args: cobra.NoArgs,
		RunE: a.instrument("render", func(cmd *cobra.Command, args []string) error {
			return a.render(cmd.Context(), format)
		}),
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatPLA, "output format: pla, json")
	return cmd
}
