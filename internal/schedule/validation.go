package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/felixgeelhaar/chronogrog/internal/domain"
	"github.com/felixgeelhaar/chronogrog/internal/errors"
)

// Validate checks the document for structural problems before it is built.
// The first problem found is returned.
func (s *Schedule) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.NewSchemaMissingFieldError("name")
	}

	if err := s.Timeline.Validate(); err != nil {
		return err
	}

	templates := make(map[string]struct{}, len(s.PhaseTemplates))
	for i, t := range s.PhaseTemplates {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("phase template at index %d is invalid: %w", i, err)
		}
		if _, dup := templates[t.ID]; dup {
			return errors.NewSchemaDuplicateIDError("phase template", t.ID)
		}
		templates[t.ID] = struct{}{}
	}

	resources := make(map[int]struct{}, len(s.Resources))
	for i, r := range s.Resources {
		if strings.TrimSpace(r.Name) == "" {
			return fmt.Errorf("resource at index %d is invalid: %w", i, errors.NewSchemaMissingFieldError("resources.name"))
		}
		if r.Type.String() == "" {
			return fmt.Errorf("resource at index %d is invalid: %w", i, errors.NewSchemaMissingFieldError("resources.type"))
		}
		if _, dup := resources[r.ID]; dup {
			return errors.NewSchemaDuplicateIDError("resource", strconv.Itoa(r.ID))
		}
		resources[r.ID] = struct{}{}
	}

	for i, r := range s.Recipes {
		if err := r.validate(templates); err != nil {
			return fmt.Errorf("recipe at index %d is invalid: %w", i, err)
		}
	}

	return nil
}

// Validate checks that the timeline has a parseable start
func (t Timeline) Validate() error {
	if strings.TrimSpace(t.Start) == "" {
		return errors.NewSchemaMissingFieldError("timeline.start")
	}
	if _, err := ParseDate(t.Start); err != nil {
		return errors.NewSchemaInvalidValueError("timeline.start", err)
	}
	return nil
}

// Validate checks a single phase template
func (p PhaseTemplate) Validate() error {
	if _, err := domain.NewTemplateID(p.ID); err != nil {
		return errors.NewSchemaInvalidValueError("phaseTemplates.id", err)
	}

	if strings.TrimSpace(p.Description) == "" {
		return errors.NewSchemaMissingFieldError("phaseTemplates.description")
	}

	if p.Color != "" {
		if _, err := domain.NewColorHex(p.Color); err != nil {
			return errors.NewSchemaInvalidValueError("phaseTemplates.color", err)
		}
	}

	if _, _, err := p.Duration(); err != nil {
		return errors.NewSchemaInvalidValueError("phaseTemplates.defaultDuration",
			errors.NewDurationError(p.DefaultDuration, err))
	}

	return nil
}

func (r RecipeSpec) validate(templates map[string]struct{}) error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.NewSchemaMissingFieldError("recipes.name")
	}

	if _, err := domain.NewColorHex(r.Color); err != nil {
		return errors.NewSchemaInvalidValueError("recipes.color", err)
	}

	if r.Start != nil {
		if _, err := ParseDate(*r.Start); err != nil {
			return errors.NewSchemaInvalidValueError("recipes.start", err)
		}
	}

	for i, p := range r.Phases {
		if strings.TrimSpace(p.Template) == "" {
			return fmt.Errorf("phase at index %d: %w", i, errors.NewSchemaMissingFieldError("recipes.phases.template"))
		}
		if _, ok := templates[p.Template]; !ok {
			return errors.NewTemplateNotFoundError(r.Name, p.Template)
		}
		if _, _, err := p.DurationOverride(); err != nil {
			return fmt.Errorf("phase at index %d: %w", i,
				errors.NewSchemaInvalidValueError("recipes.phases.duration", errors.NewDurationError(p.Duration, err)))
		}
	}

	return nil
}
