package schedule

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/chronogrog/internal/errors"
	"github.com/felixgeelhaar/chronogrog/internal/resource"
)

func validSchedule() *Schedule {
	start := "2020-01-04 10:00:00"
	return &Schedule{
		Name:     "Brewery",
		Timeline: Timeline{Configuration: "calendar", Start: "2020-01-01"},
		PhaseTemplates: []PhaseTemplate{
			{ID: "brewing", Description: "Brewing", DefaultDuration: "6h", ResourcesNeeded: []resource.Type{resource.Kettle}},
		},
		Resources: []resource.Resource{
			resource.New(1, "Kettle", resource.Kettle, "15g"),
		},
		Recipes: []RecipeSpec{
			{Name: "Stout", Color: "#000000", Start: &start, Phases: []PhaseInstanceSpec{{Template: "brewing"}}},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Schedule)
		code   errors.ErrorCode
		msg    string
	}{
		{
			name:   "valid",
			mutate: func(*Schedule) {},
		},
		{
			name:   "soft duration failure is accepted",
			mutate: func(s *Schedule) { s.Recipes[0].Phases[0].Duration = "3x" },
		},
		{
			name:   "missing name",
			mutate: func(s *Schedule) { s.Name = " " },
			code:   errors.ErrCodeSchemaMissingField,
			msg:    "name",
		},
		{
			name:   "missing timeline start",
			mutate: func(s *Schedule) { s.Timeline.Start = "" },
			code:   errors.ErrCodeSchemaMissingField,
			msg:    "timeline.start",
		},
		{
			name:   "malformed timeline start",
			mutate: func(s *Schedule) { s.Timeline.Start = "01/01/2020" },
			code:   errors.ErrCodeDateParse,
			msg:    "01/01/2020",
		},
		{
			name:   "empty template id",
			mutate: func(s *Schedule) { s.PhaseTemplates[0].ID = "" },
			code:   errors.ErrCodeSchemaInvalidValue,
			msg:    "phaseTemplates.id",
		},
		{
			name: "duplicate template id",
			mutate: func(s *Schedule) {
				s.PhaseTemplates = append(s.PhaseTemplates, s.PhaseTemplates[0])
			},
			code: errors.ErrCodeSchemaDuplicateID,
			msg:  "brewing",
		},
		{
			name:   "empty template description",
			mutate: func(s *Schedule) { s.PhaseTemplates[0].Description = "" },
			code:   errors.ErrCodeSchemaMissingField,
			msg:    "phaseTemplates.description",
		},
		{
			name:   "bad template color",
			mutate: func(s *Schedule) { s.PhaseTemplates[0].Color = "red" },
			code:   errors.ErrCodeSchemaInvalidValue,
			msg:    "phaseTemplates.color",
		},
		{
			name:   "bad template duration digits",
			mutate: func(s *Schedule) { s.PhaseTemplates[0].DefaultDuration = "abd" },
			code:   errors.ErrCodeDurationDigits,
			msg:    "abd",
		},
		{
			name: "duplicate resource id",
			mutate: func(s *Schedule) {
				s.Resources = append(s.Resources, resource.New(1, "Other Kettle", resource.Kettle, ""))
			},
			code: errors.ErrCodeSchemaDuplicateID,
			msg:  "resource id: 1",
		},
		{
			name:   "empty resource name",
			mutate: func(s *Schedule) { s.Resources[0].Name = "" },
			code:   errors.ErrCodeSchemaMissingField,
			msg:    "resources.name",
		},
		{
			name:   "empty resource type",
			mutate: func(s *Schedule) { s.Resources[0].Type = resource.Other("") },
			code:   errors.ErrCodeSchemaMissingField,
			msg:    "resources.type",
		},
		{
			name:   "empty recipe name",
			mutate: func(s *Schedule) { s.Recipes[0].Name = "" },
			code:   errors.ErrCodeSchemaMissingField,
			msg:    "recipes.name",
		},
		{
			name:   "bad recipe color",
			mutate: func(s *Schedule) { s.Recipes[0].Color = "#12345" },
			code:   errors.ErrCodeSchemaInvalidValue,
			msg:    "recipes.color",
		},
		{
			name: "bad recipe start",
			mutate: func(s *Schedule) {
				bad := "soon"
				s.Recipes[0].Start = &bad
			},
			code: errors.ErrCodeDateParse,
			msg:  "soon",
		},
		{
			name:   "phase without template",
			mutate: func(s *Schedule) { s.Recipes[0].Phases[0].Template = "" },
			code:   errors.ErrCodeSchemaMissingField,
			msg:    "recipes.phases.template",
		},
		{
			name:   "phase with unknown template",
			mutate: func(s *Schedule) { s.Recipes[0].Phases[0].Template = "bottling" },
			code:   errors.ErrCodeTemplateNotFound,
			msg:    "bottling",
		},
		{
			name:   "phase with bad duration digits",
			mutate: func(s *Schedule) { s.Recipes[0].Phases[0].Duration = "1.5d" },
			code:   errors.ErrCodeDurationDigits,
			msg:    "1.5d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSchedule()
			tt.mutate(s)

			err := s.Validate()
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.code), "expected %s in %v", tt.code, err)
			assert.True(t, strings.Contains(err.Error(), tt.msg), "expected %q in %v", tt.msg, err)
		})
	}
}
