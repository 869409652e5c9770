package plan

import (
	"time"

	"github.com/felixgeelhaar/chronogrog/internal/duration"
	"github.com/felixgeelhaar/chronogrog/internal/errors"
	"github.com/felixgeelhaar/chronogrog/internal/resource"
	"github.com/felixgeelhaar/chronogrog/internal/schedule"
)

// defaultPhaseDuration applies when neither the phase nor its template
// yields a duration
const defaultPhaseDuration = duration.Day

// Expand builds the dated phases of one recipe. The recipe takes the next
// id from ids, then each phase takes one in declaration order. Phases run
// back to back from the recipe start, and every phase but the last depends
// on the one after it.
func Expand(s *schedule.Schedule, spec schedule.RecipeSpec, ids *IDCounter) (Recipe, error) {
	recipe := Recipe{
		ID:    ids.Next(),
		Name:  spec.Name,
		Color: spec.Color,
	}

	timelineStart, err := timelineStart(s, spec)
	if err != nil {
		return Recipe{}, err
	}
	start, err := spec.StartDate(timelineStart)
	if err != nil {
		return Recipe{}, err
	}
	recipe.StartDate = start

	phases, err := expandPhases(s, spec, start, ids)
	if err != nil {
		return Recipe{}, err
	}
	linkDependencies(phases)
	recipe.Phases = phases

	return recipe, nil
}

// timelineStart is only needed, and only parsed, for recipes without an
// explicit start
func timelineStart(s *schedule.Schedule, spec schedule.RecipeSpec) (time.Time, error) {
	if spec.Start != nil {
		return time.Time{}, nil
	}
	return s.Timeline.StartDate()
}

func expandPhases(s *schedule.Schedule, spec schedule.RecipeSpec, start time.Time, ids *IDCounter) ([]PhaseInstance, error) {
	phases := make([]PhaseInstance, 0, len(spec.Phases))
	cursor := start

	for _, ps := range spec.Phases {
		id := ids.Next()

		tmpl, ok := s.Template(ps.Template)
		if !ok {
			return nil, errors.NewTemplateNotFoundError(spec.Name, ps.Template)
		}

		d, err := resolveDuration(ps, tmpl)
		if err != nil {
			return nil, err
		}

		description := ps.Description
		if description == "" {
			description = tmpl.Description
		}

		color := spec.Color
		if color == "" {
			color = tmpl.Color
		}

		phases = append(phases, PhaseInstance{
			ID:              id,
			Description:     description,
			ColorHex:        color,
			Duration:        d,
			StartDate:       cursor,
			Template:        tmpl.ID,
			ResourcesNeeded: append([]resource.Type(nil), tmpl.ResourcesNeeded...),
		})
		cursor = cursor.Add(d)
	}

	return phases, nil
}

// resolveDuration prefers the phase override, then the template default,
// then one day. A soft failure falls through to the next source.
func resolveDuration(ps schedule.PhaseInstanceSpec, tmpl schedule.PhaseTemplate) (time.Duration, error) {
	if d, ok, err := ps.DurationOverride(); err != nil {
		return 0, errors.NewDurationError(ps.Duration, err)
	} else if ok {
		return d, nil
	}

	if d, ok, err := tmpl.Duration(); err != nil {
		return 0, errors.NewDurationError(tmpl.DefaultDuration, err)
	} else if ok {
		return d, nil
	}

	return defaultPhaseDuration, nil
}

// linkDependencies walks the phases backwards so each one depends on its
// immediate successor
func linkDependencies(phases []PhaseInstance) {
	next := 0
	for i := len(phases) - 1; i >= 0; i-- {
		if next != 0 {
			phases[i].AddDependency(next)
		}
		next = phases[i].ID
	}
}
