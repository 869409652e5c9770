package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/chronogrog/internal/domain"
	"github.com/felixgeelhaar/chronogrog/internal/resource"
	"github.com/felixgeelhaar/chronogrog/internal/schedule"
	"github.com/felixgeelhaar/chronogrog/internal/tui"
)

const defaultInitPath = "schedule.yaml"

type initOptions struct {
	name      string
	start     string
	recipe    string
	color     string
	equipment []string
	force     bool
	yes       bool
}

func (a *app) initCmd() *cobra.Command {
	var opts initOptions

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a starter schedule",
		Long: `Write a starter schedule with the standard brewing phase templates, one
piece of equipment per selected type and a single recipe.

In a terminal the values are asked for interactively; flags provide the
defaults. With --yes, or outside a terminal, the flags are used as is.

Examples:
  # Ask for everything
  chronogrog init

  # Non-interactive
  chronogrog init --yes --name Garage --start 2021-03-01 -o garage.yaml

  # Pick the equipment
  chronogrog init --yes --equipment mashtun,kettle,fermentor,fermentor
`,
		Args: cobra.NoArgs,
		RunE: a.instrument("init", func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd.Context(), opts)
		}),
	}

	def := schedule.DefaultStarterOptions()
	cmd.Flags().StringVar(&opts.name, "name", def.Name, "schedule name")
	cmd.Flags().StringVar(&opts.start, "start", def.Start, "timeline start (YYYY-MM-DD or YYYY-MM-DD HH:MM:SS)")
	cmd.Flags().StringVar(&opts.recipe, "recipe", def.RecipeName, "name of the first recipe")
	cmd.Flags().StringVar(&opts.color, "color", def.Color, "recipe color as #rrggbb")
	cmd.Flags().StringSliceVar(&opts.equipment, "equipment", typeLabels(def.Equipment), "equipment types, one resource each")
	cmd.Flags().BoolVar(&opts.force, "force", false, "overwrite an existing file")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "do not prompt; use the flag values")

	return cmd
}

func (a *app) runInit(ctx context.Context, opts initOptions) error {
	path := a.opts.output
	if path == "" || path == "-" {
		path = defaultInitPath
	}

	interactive := !opts.yes && tui.ShouldPrompt()

	if _, err := os.Stat(path); err == nil && !opts.force {
		if !interactive {
			return fileExistsError(path)
		}
		overwrite, err := tui.PromptForConfirmation(fmt.Sprintf("%s exists. Overwrite it?", path), false)
		if err != nil {
			return err
		}
		if !overwrite {
			return fileExistsError(path)
		}
	}

	if interactive {
		if err := askInitOptions(&opts); err != nil {
			return err
		}
	}

	starter, err := starterOptions(opts)
	if err != nil {
		return err
	}

	s := schedule.Starter(starter)
	if err := s.Validate(); err != nil {
		return err
	}
	if err := schedule.SaveFile(s, path); err != nil {
		return err
	}

	a.logger.InfoContext(ctx, "starter schedule written", "path", path, "resources", len(s.Resources))
	fmt.Fprintf(a.stdout, "✓ Wrote %s\n", path)
	fmt.Fprintf(a.stdout, "  Render it with: chronogrog -i %s\n", path)
	return nil
}

// askInitOptions prompts for every value, offering the flag values as
// defaults
func askInitOptions(opts *initOptions) error {
	prompts := []struct {
		target *string
		prompt tui.Prompt
	}{
		{&opts.name, tui.Prompt{Message: "Schedule name", Default: opts.name, Required: true}},
		{&opts.start, tui.Prompt{Message: "Timeline start", Default: opts.start, Placeholder: "YYYY-MM-DD",
			Required: true, Validate: validateDate}},
		{&opts.recipe, tui.Prompt{Message: "First recipe", Default: opts.recipe, Required: true}},
		{&opts.color, tui.Prompt{Message: "Recipe color", Default: opts.color, Placeholder: "#rrggbb",
			Required: true, Validate: validateColor}},
	}

	for _, p := range prompts {
		value, err := tui.PromptForString(p.prompt)
		if err != nil {
			return err
		}
		*p.target = value
	}

	equipment, err := tui.PromptForMultiSelect("Equipment", typeLabels(resource.KnownTypes()), opts.equipment)
	if err != nil {
		return err
	}
	opts.equipment = equipment
	return nil
}

// starterOptions checks the collected values and converts them
func starterOptions(opts initOptions) (schedule.StarterOptions, error) {
	if err := validateDate(opts.start); err != nil {
		return schedule.StarterOptions{}, flagValueError("--start", opts.start, "YYYY-MM-DD or YYYY-MM-DD HH:MM:SS")
	}
	if err := validateColor(opts.color); err != nil {
		return schedule.StarterOptions{}, flagValueError("--color", opts.color, "#rrggbb")
	}

	equipment := make([]resource.Type, 0, len(opts.equipment))
	for _, label := range opts.equipment {
		if label == "" {
			continue
		}
		equipment = append(equipment, resource.ParseType(label))
	}

	return schedule.StarterOptions{
		Name:       opts.name,
		Start:      opts.start,
		RecipeName: opts.recipe,
		Color:      opts.color,
		Equipment:  equipment,
	}, nil
}

func validateDate(s string) error {
	_, err := schedule.ParseDate(s)
	return err
}

func validateColor(s string) error {
	_, err := domain.NewColorHex(s)
	return err
}

func typeLabels(types []resource.Type) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.String()
	}
	return out
}
