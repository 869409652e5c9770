package plan

import (
	"time"

	"github.com/felixgeelhaar/chronogrog/internal/interval"
	"github.com/felixgeelhaar/chronogrog/internal/log"
	"github.com/felixgeelhaar/chronogrog/internal/metrics"
	"github.com/felixgeelhaar/chronogrog/internal/resource"
)

// Assignment is a resource booked for a phase
type Assignment struct {
	RecipeID     int               `json:"recipe_id" yaml:"recipe_id"`
	PhaseID      int               `json:"phase_id" yaml:"phase_id"`
	ResourceType resource.Type     `json:"resource_type" yaml:"resource_type"`
	Resource     resource.Resource `json:"resource" yaml:"resource"`
	Period       interval.Interval `json:"period" yaml:"period"`
}

// Conflict is a resource request that could not be satisfied
type Conflict struct {
	RecipeID     int               `json:"recipe_id" yaml:"recipe_id"`
	PhaseID      int               `json:"phase_id" yaml:"phase_id"`
	ResourceType resource.Type     `json:"resource_type" yaml:"resource_type"`
	Period       interval.Interval `json:"period" yaml:"period"`
	// NextAvailable is the earliest start at which some resource of the
	// type could take the phase. Nil when no resource of the type exists.
	NextAvailable *time.Time `json:"next_available,omitempty" yaml:"next_available,omitempty"`
}

// Report is the outcome of an allocation pass
type Report struct {
	Assignments []Assignment `json:"assignments" yaml:"assignments"`
	Conflicts   []Conflict   `json:"conflicts" yaml:"conflicts"`
}

// OK reports whether every request was satisfied
func (r Report) OK() bool {
	return len(r.Conflicts) == 0
}

// AllocateOption configures AllocatePhases
type AllocateOption func(*allocator)

type allocator struct {
	logger  *log.Logger
	metrics *metrics.Metrics
}

// AllocateWithLogger logs each decision at debug level
func AllocateWithLogger(l *log.Logger) AllocateOption {
	return func(a *allocator) {
		if l != nil {
			a.logger = l
		}
	}
}

// AllocateWithMetrics counts allocation attempts on m
func AllocateWithMetrics(m *metrics.Metrics) AllocateOption {
	return func(a *allocator) {
		a.metrics = m
	}
}

// AllocatePhases requests every resource type each phase needs, visiting
// recipes, phases and types in order. A request that cannot be met is
// recorded as a conflict and never retried.
func AllocatePhases(p *Plan, tracker *resource.Tracker, opts ...AllocateOption) Report {
	a := &allocator{logger: log.DefaultLogger()}
	for _, opt := range opts {
		opt(a)
	}

	var report Report
	for _, r := range p.Recipes {
		for _, ph := range r.Phases {
			period := ph.Interval()
			for _, typ := range ph.ResourcesNeeded {
				res, ok := tracker.Allocate(typ, period)
				if a.metrics != nil {
					a.metrics.RecordAllocation(typ.String(), ok)
				}

				if ok {
					report.Assignments = append(report.Assignments, Assignment{
						RecipeID:     r.ID,
						PhaseID:      ph.ID,
						ResourceType: typ,
						Resource:     res,
						Period:       period,
					})
					a.logger.Debug("resource allocated",
						"phase_id", ph.ID, "resource_type", typ.String(), "resource_id", res.ID)
					continue
				}

				conflict := Conflict{
					RecipeID:     r.ID,
					PhaseID:      ph.ID,
					ResourceType: typ,
					Period:       period,
				}
				if next, found := tracker.NextAvailableDateForType(typ, period); found {
					conflict.NextAvailable = &next
				}
				report.Conflicts = append(report.Conflicts, conflict)
				a.logger.Debug("resource unavailable",
					"phase_id", ph.ID, "resource_type", typ.String(), "start", period.Start)
			}
		}
	}

	return report
}
