package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for chronogrog
type Metrics struct {
	// Command execution metrics
	CommandExecutions *prometheus.CounterVec
	CommandDuration   *prometheus.HistogramVec

	// Schedule build metrics
	ScheduleLoads *prometheus.CounterVec
	RecipesBuilt  prometheus.Counter
	PhasesBuilt   prometheus.Counter
	BuildDuration prometheus.Histogram

	// Resource allocation metrics
	Allocations *prometheus.CounterVec

	// Error metrics (by error code from structured errors)
	Errors *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all metrics registered
func NewMetrics(registry prometheus.Registerer) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		CommandExecutions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chronogrog_command_executions_total",
				Help: "Total number of command executions",
			},
			[]string{"command", "success"},
		),
		CommandDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chronogrog_command_duration_seconds",
				Help:    "Command execution duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"command"},
		),

		ScheduleLoads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chronogrog_schedule_loads_total",
				Help: "Total number of schedule documents loaded",
			},
			[]string{"success"},
		),
		RecipesBuilt: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "chronogrog_recipes_built_total",
				Help: "Total number of recipes expanded into dated phases",
			},
		),
		PhasesBuilt: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "chronogrog_phases_built_total",
				Help: "Total number of phase instances created",
			},
		),
		BuildDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "chronogrog_build_duration_seconds",
				Help:    "Time taken to build a plan from a schedule",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
		),

		Allocations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chronogrog_allocations_total",
				Help: "Total number of resource allocation attempts",
			},
			[]string{"resource_type", "result"},
		),

		Errors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chronogrog_errors_total",
				Help: "Total number of errors by error code",
			},
			[]string{"error_code"},
		),
	}
}

// RecordCommand records a command execution and its duration
func (m *Metrics) RecordCommand(command string, success bool, duration time.Duration) {
	m.CommandExecutions.WithLabelValues(command, strconv.FormatBool(success)).Inc()
	m.CommandDuration.WithLabelValues(command).Observe(duration.Seconds())
}

// RecordScheduleLoad records the outcome of reading a schedule document
func (m *Metrics) RecordScheduleLoad(success bool) {
	m.ScheduleLoads.WithLabelValues(strconv.FormatBool(success)).Inc()
}

// RecordRecipe records one expanded recipe with the given number of phases
func (m *Metrics) RecordRecipe(phases int) {
	m.RecipesBuilt.Inc()
	m.PhasesBuilt.Add(float64(phases))
}

// RecordBuild records the duration of a full plan build
func (m *Metrics) RecordBuild(duration time.Duration) {
	m.BuildDuration.Observe(duration.Seconds())
}

// RecordAllocation records an allocation attempt for resourceType
func (m *Metrics) RecordAllocation(resourceType string, allocated bool) {
	result := "allocated"
	if !allocated {
		result = "unavailable"
	}
	m.Allocations.WithLabelValues(resourceType, result).Inc()
}

// RecordError counts an error by its code
func (m *Metrics) RecordError(code string) {
	m.Errors.WithLabelValues(code).Inc()
}
