package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/chronogrog/internal/errors"
	"github.com/felixgeelhaar/chronogrog/internal/pla"
	"github.com/felixgeelhaar/chronogrog/internal/plan"
	"github.com/felixgeelhaar/chronogrog/internal/ux"
)

func (a *app) allocateCmd() *cobra.Command {
	var (
		strict bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "Book equipment for every phase and report conflicts",
		Long: `Expand the schedule, then walk the phases in order and book one resource of
each type a phase needs, choosing the free resource with the lowest id.
Requests that cannot be met are reported with the earliest date a resource
of that type frees up.

With --strict (or allocate.strict in the config) any conflict makes the
command fail with exit code 4.`,
		Args: cobra.NoArgs,
		RunE: a.instrument("allocate", func(cmd *cobra.Command, args []string) error {
			strict = strict || a.config.Allocate.Strict

			formatter, err := ux.NewFormatter(format)
			if err != nil {
				return err
			}

			_, p, tracker, err := a.build(cmd.Context())
			if err != nil {
				return err
			}

			report := plan.AllocatePhases(p, tracker,
				plan.AllocateWithLogger(a.logger),
				plan.AllocateWithMetrics(a.metrics),
			)

			var buf bytes.Buffer
			if err := formatter.Format(&buf, allocationView{built: p, Report: report}); err != nil {
				return err
			}
			if err := a.writeOutput(buf.Bytes()); err != nil {
				return err
			}

			if !report.OK() {
				a.logger.WarnContext(cmd.Context(), "resource requests could not be met",
					"conflicts", len(report.Conflicts),
					"assigned", len(report.Assignments),
				)
			}
			if strict && !report.OK() {
				return errors.NewAllocationUnavailableError(len(report.Conflicts))
			}
			return nil
		}),
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any resource request cannot be met")
	cmd.Flags().StringVarP(&format, "format", "f", ux.FormatText, "output format: text, json, yaml")
	return cmd
}

// allocationView is an allocation report together with the plan it was
// made for, so text output can name the phases
type allocationView struct {
	built *plan.Plan
	plan.Report
}

func (v allocationView) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Report)
}

func (v allocationView) MarshalYAML() (interface{}, error) {
	return v.Report, nil
}

func (v allocationView) WriteText(w io.Writer) error {
	return writeReport(w, v.built, v.Report)
}

// writeReport prints one line per booking and per conflict, then totals
func writeReport(w io.Writer, p *plan.Plan, report plan.Report) error {
	for _, as := range report.Assignments {
		fmt.Fprintf(w, "phase %d (%s): %s -> %s #%d from %s to %s\n",
			as.PhaseID,
			phaseName(p, as.PhaseID),
			as.ResourceType,
			as.Resource.Name,
			as.Resource.ID,
			pla.FormatStart(as.Period.Start),
			pla.FormatStart(as.Period.End),
		)
	}

	for _, c := range report.Conflicts {
		next := "no resource of this type"
		if c.NextAvailable != nil {
			next = "next free " + pla.FormatStart(*c.NextAvailable)
		}
		fmt.Fprintf(w, "phase %d (%s): %s unavailable from %s to %s, %s\n",
			c.PhaseID,
			phaseName(p, c.PhaseID),
			c.ResourceType,
			pla.FormatStart(c.Period.Start),
			pla.FormatStart(c.Period.End),
			next,
		)
	}

	_, err := fmt.Fprintf(w, "%d assigned, %d conflicts\n", len(report.Assignments), len(report.Conflicts))
	return err
}

func phaseName(p *plan.Plan, id int) string {
	r, ph, ok := p.Phase(id)
	if !ok {
		return "?"
	}
	return r.Name + "/" + ph.Description
}
