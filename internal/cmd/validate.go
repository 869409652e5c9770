package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/chronogrog/internal/schedule"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a schedule without writing a plan",
		Long: `Load the schedule, check it field by field, expand it and check the
resulting dependency graph. Prints the counts and the schedule's content
fingerprint on success.`,
		Args: cobra.NoArgs,
		RunE: a.instrument("validate", func(cmd *cobra.Command, args []string) error {
			s, p, _, err := a.build(cmd.Context())
			if err != nil {
				return err
			}
			if err := p.Validate(); err != nil {
				return err
			}

			fingerprint, err := schedule.Fingerprint(s)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ schedule %q is valid\n", s.Name)
			fmt.Fprintf(out, "  templates:   %d\n", len(s.PhaseTemplates))
			fmt.Fprintf(out, "  resources:   %d\n", len(s.Resources))
			fmt.Fprintf(out, "  recipes:     %d\n", len(p.Recipes))
			fmt.Fprintf(out, "  phases:      %d\n", p.PhaseCount())
			fmt.Fprintf(out, "  fingerprint: %s\n", fingerprint)
			return nil
		}),
	}
}
