package plan

import (
	"time"

	"github.com/felixgeelhaar/chronogrog/internal/resource"
	"github.com/felixgeelhaar/chronogrog/internal/schedule"
)

func strPtr(s string) *string { return &s }

func date(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

// brewery is a small schedule with two recipes: one with an explicit start
// and overrides, one relying on the timeline start and fallbacks.
func brewery() *schedule.Schedule {
	return &schedule.Schedule{
		Name:     "Brewery",
		ID:       1,
		Timeline: schedule.Timeline{Configuration: "calendar", Start: "2020-01-01"},
		PhaseTemplates: []schedule.PhaseTemplate{
			{ID: "planning", Description: "Planning", Order: 1, DefaultDuration: "1h"},
			{ID: "brewing", Description: "Brewing", Order: 2, DefaultDuration: "6h",
				ResourcesNeeded: []resource.Type{resource.MashTun, resource.Kettle}},
			{ID: "primary", Description: "Primary Fermentation", Order: 3, DefaultDuration: "10d",
				ResourcesNeeded: []resource.Type{resource.Fermentor}},
		},
		Resources: []resource.Resource{
			resource.New(1, "Fermentor One", resource.Fermentor, "6.5g"),
			resource.New(2, "Fermentor Two", resource.Fermentor, ""),
			resource.New(3, "Kettle", resource.Kettle, "15g"),
			resource.New(4, "Mash Tun", resource.MashTun, ""),
			resource.New(5, "Corny Keg", resource.Keg, ""),
			resource.New(6, "Bottle Crate", resource.Other("bottlecrate"), ""),
		},
		Recipes: []schedule.RecipeSpec{
			{
				Name:  "Damned Squirrel Mk. II",
				Color: "#7a5624",
				Start: strPtr("2020-01-04 10:00:00"),
				Phases: []schedule.PhaseInstanceSpec{
					{Template: "planning"},
					{Template: "brewing", Description: "Brew Day"},
					{Template: "primary", Duration: "2w"},
				},
			},
			{
				Name:  "Kveik Pale Ale",
				Color: "#e0b040",
				Phases: []schedule.PhaseInstanceSpec{
					{Template: "planning", Duration: "30"},
					{Template: "brewing", Duration: "3x"},
					{Template: "primary"},
				},
			},
		},
	}
}
