package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// StartCommandSpan creates a span for a CLI command execution.
//
// Usage:
//
//	ctx, span := telemetry.StartCommandSpan(ctx, "render")
//	defer span.End()
func StartCommandSpan(ctx context.Context, cmdName string) (context.Context, trace.Span) {
	tracer := GetTracerProvider().Tracer("commands")
	ctx, span := tracer.Start(ctx, "command."+cmdName)

	span.SetAttributes(
		attribute.String("command", cmdName),
		attribute.String("component", "cli"),
	)

	return ctx, span
}

// StartBuildSpan creates a span covering the expansion of a whole schedule.
func StartBuildSpan(ctx context.Context, scheduleName string, recipes int) (context.Context, trace.Span) {
	tracer := GetTracerProvider().Tracer("plan")
	ctx, span := tracer.Start(ctx, "plan.build")

	span.SetAttributes(
		attribute.String("schedule", scheduleName),
		attribute.Int("recipes", recipes),
		attribute.String("component", "plan"),
	)

	return ctx, span
}

// StartRecipeSpan creates a child span for the expansion of one recipe.
func StartRecipeSpan(ctx context.Context, recipeName string) (context.Context, trace.Span) {
	tracer := GetTracerProvider().Tracer("plan")
	ctx, span := tracer.Start(ctx, "plan.recipe")

	span.SetAttributes(
		attribute.String("recipe", recipeName),
	)

	return ctx, span
}

// RecordSuccess marks a span as successful with optional result attributes.
func RecordSuccess(span trace.Span, attrs ...attribute.KeyValue) {
	span.SetAttributes(attrs...)
	span.SetStatus(codes.Ok, "")
}

// RecordError records an error in a span and sets error status.
// This should be called when an operation fails.
//
// Usage:
//
//	if err != nil {
//	    telemetry.RecordError(span, err)
//	    return err
//	}
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.SetAttributes(
		attribute.Bool("error", true),
	)
}

// RecordDuration records the duration of an operation as a span attribute.
func RecordDuration(span trace.Span, name string, duration time.Duration) {
	span.SetAttributes(
		attribute.Int64(name+"_ms", duration.Milliseconds()),
	)
}
