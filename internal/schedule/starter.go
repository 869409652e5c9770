package schedule

import (
	"fmt"

	"github.com/felixgeelhaar/chronogrog/internal/resource"
)

// StarterOptions are the answers used to scaffold a new schedule
type StarterOptions struct {
	Name       string
	Start      string
	RecipeName string
	Color      string
	Equipment  []resource.Type
}

// DefaultStarterOptions returns the values offered when nothing is given
func DefaultStarterOptions() StarterOptions {
	return StarterOptions{
		Name:       "Brewery",
		Start:      "2020-01-01",
		RecipeName: "House Pale Ale",
		Color:      "#e0b040",
		Equipment:  []resource.Type{resource.MashTun, resource.Kettle, resource.Fermentor, resource.Keg},
	}
}

var starterTemplates = []PhaseTemplate{
	{ID: "planning", Description: "Planning", Order: 1, DefaultDuration: "1h"},
	{ID: "brewing", Description: "Brew Day", Order: 2, DefaultDuration: "6h",
		ResourcesNeeded: []resource.Type{resource.MashTun, resource.Kettle}},
	{ID: "primary", Description: "Primary Fermentation", Order: 3, DefaultDuration: "2w",
		ResourcesNeeded: []resource.Type{resource.Fermentor}},
	{ID: "conditioning", Description: "Conditioning", Order: 4, DefaultDuration: "4w",
		ResourcesNeeded: []resource.Type{resource.Keg}},
}

// Starter builds a small schedule with the standard brewing templates, one
// resource per equipment type and a single recipe using every template.
// Empty fields take their DefaultStarterOptions value; a nil Equipment list
// does too, an empty non-nil one yields no resources.
func Starter(opts StarterOptions) *Schedule {
	def := DefaultStarterOptions()
	if opts.Name == "" {
		opts.Name = def.Name
	}
	if opts.Start == "" {
		opts.Start = def.Start
	}
	if opts.RecipeName == "" {
		opts.RecipeName = def.RecipeName
	}
	if opts.Color == "" {
		opts.Color = def.Color
	}
	if opts.Equipment == nil {
		opts.Equipment = def.Equipment
	}

	s := &Schedule{
		Name:     opts.Name,
		ID:       1,
		Timeline: Timeline{Configuration: "calendar", Start: opts.Start},
	}

	for _, tmpl := range starterTemplates {
		tmpl.ResourcesNeeded = append([]resource.Type(nil), tmpl.ResourcesNeeded...)
		s.PhaseTemplates = append(s.PhaseTemplates, tmpl)
	}

	for i, typ := range opts.Equipment {
		s.Resources = append(s.Resources,
			resource.New(i+1, fmt.Sprintf("%s %d", typ, i+1), typ, ""))
	}

	recipe := RecipeSpec{Name: opts.RecipeName, Color: opts.Color}
	for _, tmpl := range starterTemplates {
		recipe.Phases = append(recipe.Phases, PhaseInstanceSpec{Template: tmpl.ID})
	}
	s.Recipes = []RecipeSpec{recipe}

	return s
}
