// Package plan turns a schedule into dated, dependency-linked phases and
// drives resource allocation over them.
package plan

import (
	"sort"
	"time"

	"github.com/felixgeelhaar/chronogrog/internal/interval"
	"github.com/felixgeelhaar/chronogrog/internal/resource"
)

// Plan is the built task graph: recipes in declaration order
type Plan struct {
	Recipes []Recipe `json:"recipes"`
}

// Recipe is one production run with its phases in construction order
type Recipe struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Color     string          `json:"color"`
	StartDate time.Time       `json:"start_date"`
	Phases    []PhaseInstance `json:"phases"`
}

// PhaseInstance is a dated step of a recipe
type PhaseInstance struct {
	ID              int             `json:"id"`
	Description     string          `json:"description"`
	ColorHex        string          `json:"color"`
	Duration        time.Duration   `json:"duration"`
	StartDate       time.Time       `json:"start_date"`
	Dependencies    []int           `json:"dependencies,omitempty"`
	Template        string          `json:"template"`
	ResourcesNeeded []resource.Type `json:"resources_needed,omitempty"`
}

// Interval returns the closed period the phase occupies
func (p PhaseInstance) Interval() interval.Interval {
	return interval.New(p.StartDate, p.Duration)
}

// AddDependency records that p depends on id. Dependencies stay sorted
// ascending with no duplicates.
func (p *PhaseInstance) AddDependency(id int) {
	i := sort.SearchInts(p.Dependencies, id)
	if i < len(p.Dependencies) && p.Dependencies[i] == id {
		return
	}
	p.Dependencies = append(p.Dependencies, 0)
	copy(p.Dependencies[i+1:], p.Dependencies[i:])
	p.Dependencies[i] = id
}

// EndDate returns the instant the recipe's last phase ends, or its start if
// it has no phases
func (r Recipe) EndDate() time.Time {
	end := r.StartDate
	for _, p := range r.Phases {
		if e := p.StartDate.Add(p.Duration); e.After(end) {
			end = e
		}
	}
	return end
}

// PhaseCount returns the number of phases across all recipes
func (p *Plan) PhaseCount() int {
	n := 0
	for _, r := range p.Recipes {
		n += len(r.Phases)
	}
	return n
}

// Phase returns the phase with the given id and the recipe holding it
func (p *Plan) Phase(id int) (*Recipe, *PhaseInstance, bool) {
	for i := range p.Recipes {
		r := &p.Recipes[i]
		for j := range r.Phases {
			if r.Phases[j].ID == id {
				return r, &r.Phases[j], true
			}
		}
	}
	return nil, nil, false
}
