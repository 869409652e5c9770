// Package cmd implements the chronogrog command line.
package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/chronogrog/internal/errors"
	"github.com/felixgeelhaar/chronogrog/internal/log"
	"github.com/felixgeelhaar/chronogrog/internal/metrics"
	"github.com/felixgeelhaar/chronogrog/internal/pla"
	"github.com/felixgeelhaar/chronogrog/internal/plan"
	"github.com/felixgeelhaar/chronogrog/internal/resource"
	"github.com/felixgeelhaar/chronogrog/internal/schedule"
	"github.com/felixgeelhaar/chronogrog/internal/telemetry"
)

// options holds the persistent flags shared by every command
type options struct {
	input       string
	output      string
	logLevel    string
	logFormat   string
	metricsFile string
	configPath  string
}

// app is one CLI invocation: its streams, flags and observability state
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	opts       options
	config     *GlobalConfig
	configPath string

	runID             string
	logger            *log.Logger
	registry          *prometheus.Registry
	metrics           *metrics.Metrics
	shutdownTelemetry func(context.Context) error
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	registry, m := metrics.NewRegistry()
	return &app{
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
		config:   defaultGlobalConfig(),
		logger:   log.Nop(),
		registry: registry,
		metrics:  m,
	}
}

// Execute runs the CLI with the process arguments and standard streams
func Execute(ctx context.Context) error {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	a.metrics = metrics.InitDefault()
	a.registry = metrics.DefaultRegistry
	return a.run(ctx, os.Args[1:])
}

func (a *app) run(ctx context.Context, args []string) error {
	root := a.rootCmd()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if ferr := a.finish(); ferr != nil && err == nil {
		err = ferr
	}
	return err
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "chronogrog",
		Short: "Turn brewing schedules into dated task graphs",
		Long: `chronogrog reads a production schedule (phase templates, equipment and
recipes) and expands every recipe into dated, dependency-linked phases.

Without a subcommand the schedule is read from --input (default stdin) and
the plan is written to --output (default stdout) in the PLA text format.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupObservability(cmd.Context())
		},
		RunE: a.instrument("render", func(cmd *cobra.Command, args []string) error {
			return a.render(cmd.Context(), formatPLA)
		}),
	}

	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.opts.input, "input", "i", "", "schedule file to read (default stdin)")
	pf.StringVarP(&a.opts.output, "output", "o", "", "file to write (default stdout)")
	pf.StringVar(&a.opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.opts.logFormat, "log-format", "", "log format: text, json")
	pf.StringVar(&a.opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")
	pf.StringVar(&a.opts.configPath, "config", "", "config file (default ~/.chronogrog/config.yaml)")

	root.AddCommand(
		a.renderCmd(),
		a.allocateCmd(),
		a.validateCmd(),
		a.reviewCmd(),
		a.initCmd(),
		a.configCmd(),
		a.versionCmd(),
	)

	return root
}

// instrument wraps a command body with a span, a duration metric and
// error logging
func (a *app) instrument(name string, run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, span := telemetry.StartCommandSpan(cmd.Context(), name)
		defer span.End()
		cmd.SetContext(ctx)

		start := time.Now()
		err := run(cmd, args)
		elapsed := time.Since(start)

		a.metrics.RecordCommand(name, err == nil, elapsed)
		telemetry.RecordDuration(span, "command", elapsed)
		if err != nil {
			telemetry.RecordError(span, err)
			if code, ok := errors.CodeOf(err); ok {
				a.metrics.RecordError(string(code))
			}
			a.logger.WithContext(ctx).With("command", name).LogErrorContext(ctx, err)
			return err
		}

		telemetry.RecordSuccess(span)
		a.logger.DebugContext(ctx, "command finished", "command", name, "duration", elapsed)
		return nil
	}
}

// loadSchedule reads the schedule named by --input, or stdin
func (a *app) loadSchedule() (*schedule.Schedule, error) {
	var (
		s   *schedule.Schedule
		err error
	)
	source := a.opts.input
	if source == "" || source == "-" {
		source = "<stdin>"
		s, err = schedule.Load(a.stdin)
	} else {
		s, err = schedule.LoadFile(source)
	}

	a.metrics.RecordScheduleLoad(err == nil)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("schedule loaded",
		"source", source,
		"name", s.Name,
		"recipes", len(s.Recipes),
		"resources", len(s.Resources),
	)
	return s, nil
}

// build loads and checks the schedule, then expands it into a plan
func (a *app) build(ctx context.Context) (*schedule.Schedule, *plan.Plan, *resource.Tracker, error) {
	s, err := a.loadSchedule()
	if err != nil {
		return nil, nil, nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, nil, nil, err
	}

	p, tracker, err := plan.Generate(ctx, s,
		plan.WithLogger(a.logger),
		plan.WithMetrics(a.metrics),
	)
	if err != nil {
		return nil, nil, nil, err
	}
	return s, p, tracker, nil
}

// writeOutput sends data to --output, or stdout. Files are only created
// once the whole output is known.
func (a *app) writeOutput(data []byte) error {
	if a.opts.output == "" || a.opts.output == "-" {
		_, err := a.stdout.Write(data)
		return err
	}

	if err := os.WriteFile(a.opts.output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed,
			fmt.Sprintf("failed to write output: %s", a.opts.output), err)
	}
	a.logger.Debug("output written", "path", a.opts.output, "bytes", len(data))
	return nil
}

const (
	formatPLA  = "pla"
	formatJSON = "json"
)

func (a *app) render(ctx context.Context, format string) error {
	if format != formatPLA && format != formatJSON {
		return flagValueError("--format", format, "pla, json")
	}

	_, p, _, err := a.build(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if format == formatJSON {
		err = plan.WriteJSON(&buf, p)
	} else {
		err = pla.Render(&buf, p)
	}
	if err != nil {
		return err
	}
	return a.writeOutput(buf.Bytes())
}
