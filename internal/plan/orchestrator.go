package plan

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/felixgeelhaar/chronogrog/internal/log"
	"github.com/felixgeelhaar/chronogrog/internal/metrics"
	"github.com/felixgeelhaar/chronogrog/internal/resource"
	"github.com/felixgeelhaar/chronogrog/internal/schedule"
	"github.com/felixgeelhaar/chronogrog/internal/telemetry"
)

// Orchestrator builds plans from schedules. It owns the id counter and the
// resource tracker, so two builds on the same Orchestrator without Reset
// produce disjoint ids. An Orchestrator is not safe for concurrent use.
type Orchestrator struct {
	ids     *IDCounter
	tracker *resource.Tracker
	logger  *log.Logger
	metrics *metrics.Metrics
}

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithLogger sets the logger used for build diagnostics
func WithLogger(l *log.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records build counters on m
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Orchestrator) {
		o.metrics = m
	}
}

// NewOrchestrator creates an Orchestrator whose first id is 1
func NewOrchestrator(opts ...Option) *Orchestrator {
	o := &Orchestrator{
		ids:     NewIDCounter(),
		tracker: resource.NewTracker(),
		logger:  log.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Build expands every recipe of s in declaration order, then tracks every
// declared resource. No phase is allocated; see AllocatePhases.
func (o *Orchestrator) Build(ctx context.Context, s *schedule.Schedule) (*Plan, error) {
	ctx, span := telemetry.StartBuildSpan(ctx, s.Name, len(s.Recipes))
	defer span.End()

	started := time.Now()
	p := &Plan{Recipes: make([]Recipe, 0, len(s.Recipes))}

	for _, spec := range s.Recipes {
		if err := ctx.Err(); err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}

		recipe, err := o.expand(ctx, s, spec)
		if err != nil {
			telemetry.RecordError(span, err)
			o.logger.WithContext(ctx).WithError(err).Debug("recipe expansion failed", "recipe", spec.Name)
			return nil, fmt.Errorf("build recipe %q: %w", spec.Name, err)
		}
		p.Recipes = append(p.Recipes, recipe)
	}

	for _, r := range s.Resources {
		o.tracker.Track(r)
	}

	elapsed := time.Since(started)
	if o.metrics != nil {
		o.metrics.RecordBuild(elapsed)
	}
	telemetry.RecordDuration(span, "build", elapsed)
	telemetry.RecordSuccess(span,
		attribute.Int("phases", p.PhaseCount()),
		attribute.Int("resources", o.tracker.Len()),
	)
	o.logger.WithContext(ctx).Debug("schedule built",
		"schedule", s.Name,
		"recipes", len(p.Recipes),
		"phases", p.PhaseCount(),
		"resources", o.tracker.Len(),
	)

	return p, nil
}

func (o *Orchestrator) expand(ctx context.Context, s *schedule.Schedule, spec schedule.RecipeSpec) (Recipe, error) {
	_, span := telemetry.StartRecipeSpan(ctx, spec.Name)
	defer span.End()

	recipe, err := Expand(s, spec, o.ids)
	if err != nil {
		telemetry.RecordError(span, err)
		return Recipe{}, err
	}

	if o.metrics != nil {
		o.metrics.RecordRecipe(len(recipe.Phases))
	}
	telemetry.RecordSuccess(span, attribute.Int("recipe_id", recipe.ID), attribute.Int("phases", len(recipe.Phases)))
	o.logger.Debug("recipe expanded",
		"recipe", recipe.Name,
		"recipe_id", recipe.ID,
		"start", recipe.StartDate,
		"phases", len(recipe.Phases),
	)

	return recipe, nil
}

// Reset restarts ids at 1 and forgets every tracked resource
func (o *Orchestrator) Reset() {
	o.ids.Reset()
	o.tracker = resource.NewTracker()
}

// Tracker returns the resource tracker populated by Build
func (o *Orchestrator) Tracker() *resource.Tracker {
	return o.tracker
}

// Generate builds s with a fresh Orchestrator
func Generate(ctx context.Context, s *schedule.Schedule, opts ...Option) (*Plan, *resource.Tracker, error) {
	o := NewOrchestrator(opts...)
	p, err := o.Build(ctx, s)
	if err != nil {
		return nil, nil, err
	}
	return p, o.Tracker(), nil
}
