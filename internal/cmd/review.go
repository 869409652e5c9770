package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/chronogrog/internal/plan"
	"github.com/felixgeelhaar/chronogrog/internal/tui"
)

func (a *app) reviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Browse the expanded schedule interactively",
		Long: `Expand the schedule, run the allocation pass and open a terminal browser
over recipes and their phases. Each phase shows the equipment it was given
or could not get.

The schedule must come from --input since stdin carries key presses.`,
		Args: cobra.NoArgs,
		RunE: a.instrument("review", func(cmd *cobra.Command, args []string) error {
			if a.opts.input == "" || a.opts.input == "-" {
				return reviewInputError()
			}

			_, p, tracker, err := a.build(cmd.Context())
			if err != nil {
				return err
			}
			report := plan.AllocatePhases(p, tracker,
				plan.AllocateWithLogger(a.logger),
				plan.AllocateWithMetrics(a.metrics),
			)

			return tui.RunScheduleReview(p, &report,
				tea.WithContext(cmd.Context()),
				tea.WithInput(a.stdin),
				tea.WithOutput(a.stdout),
			)
		}),
	}
}
