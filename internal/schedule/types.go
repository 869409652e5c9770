// Package schedule holds the typed production schedule as it is read from
// the input document: phase templates, recipe specs and equipment.
package schedule

import (
	"time"

	"github.com/felixgeelhaar/chronogrog/internal/duration"
	"github.com/felixgeelhaar/chronogrog/internal/resource"
)

// Schedule is the complete input document
type Schedule struct {
	Name           string              `yaml:"name" json:"name"`
	ID             int                 `yaml:"id" json:"id"`
	Timeline       Timeline            `yaml:"timeline" json:"timeline"`
	PhaseTemplates []PhaseTemplate     `yaml:"phaseTemplates" json:"phaseTemplates"`
	Resources      []resource.Resource `yaml:"resources" json:"resources"`
	Recipes        []RecipeSpec        `yaml:"recipes" json:"recipes"`
}

// Timeline anchors recipes that do not declare their own start
type Timeline struct {
	Configuration string `yaml:"configuration" json:"configuration"`
	Start         string `yaml:"start" json:"start"`
}

// StartDate parses the timeline start
func (t Timeline) StartDate() (time.Time, error) {
	return ParseDate(t.Start)
}

// PhaseTemplate is a reusable description of one production step
type PhaseTemplate struct {
	ID              string          `yaml:"id" json:"id"`
	Description     string          `yaml:"description" json:"description"`
	Order           int             `yaml:"order" json:"order"`
	Color           string          `yaml:"color,omitempty" json:"color,omitempty"`
	DefaultDuration string          `yaml:"defaultDuration" json:"defaultDuration"`
	ResourcesNeeded []resource.Type `yaml:"resourcesNeeded,omitempty" json:"resourcesNeeded,omitempty"`
}

// Duration parses DefaultDuration. See duration.Parse for the meaning of
// the results.
func (p PhaseTemplate) Duration() (time.Duration, bool, error) {
	return duration.Parse(p.DefaultDuration)
}

// PhaseInstanceSpec references a template from a recipe, optionally
// overriding its description and duration
type PhaseInstanceSpec struct {
	Template    string `yaml:"template" json:"template"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Duration    string `yaml:"duration,omitempty" json:"duration,omitempty"`
}

// DurationOverride parses the Duration override. An absent override reports
// no result.
func (p PhaseInstanceSpec) DurationOverride() (time.Duration, bool, error) {
	return duration.Parse(p.Duration)
}

// RecipeSpec describes one production run
type RecipeSpec struct {
	Name   string              `yaml:"name" json:"name"`
	Color  string              `yaml:"color" json:"color"`
	Start  *string             `yaml:"start,omitempty" json:"start,omitempty"`
	Phases []PhaseInstanceSpec `yaml:"phases" json:"phases"`
}

// StartDate returns the explicit start if one is declared, otherwise
// fallback. A declared start that does not parse is an error.
func (r RecipeSpec) StartDate(fallback time.Time) (time.Time, error) {
	if r.Start == nil {
		return fallback, nil
	}
	return ParseDate(*r.Start)
}

// Template returns the phase template with the given id
func (s *Schedule) Template(id string) (PhaseTemplate, bool) {
	for _, t := range s.PhaseTemplates {
		if t.ID == id {
			return t, true
		}
	}
	return PhaseTemplate{}, false
}

// ResourceByID returns the declared resource with the given id
func (s *Schedule) ResourceByID(id int) (resource.Resource, bool) {
	for _, r := range s.Resources {
		if r.ID == id {
			return r, true
		}
	}
	return resource.Resource{}, false
}

// RecipeByName returns the first recipe spec with the given name
func (s *Schedule) RecipeByName(name string) (RecipeSpec, bool) {
	for _, r := range s.Recipes {
		if r.Name == name {
			return r, true
		}
	}
	return RecipeSpec{}, false
}
