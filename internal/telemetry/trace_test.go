package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTestTracer creates a test tracer with in-memory exporter
func setupTestTracer(t *testing.T) (*sdktrace.TracerProvider, *tracetest.InMemoryExporter) {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	res, err := newResource(context.Background(), DefaultConfig())
	if err != nil {
		t.Fatalf("newResource failed: %v", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	SetTracerProvider(tp)
	t.Cleanup(func() {
		SetTracerProvider(nil)
		_ = tp.Shutdown(context.Background())
	})

	return tp, exporter
}

func attrValue(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, attr := range attrs {
		if string(attr.Key) == key {
			return attr.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestStartCommandSpan(t *testing.T) {
	_, exporter := setupTestTracer(t)

	ctx := context.Background()
	spanCtx, span := StartCommandSpan(ctx, "render")
	if spanCtx == ctx {
		t.Error("expected new context with span, got same context")
	}
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name != "command.render" {
		t.Errorf("span name = %q, want %q", spans[0].Name, "command.render")
	}

	if v, ok := attrValue(spans[0].Attributes, "command"); !ok || v.AsString() != "render" {
		t.Error("missing 'command' attribute")
	}
	if v, ok := attrValue(spans[0].Attributes, "component"); !ok || v.AsString() != "cli" {
		t.Error("missing 'component' attribute")
	}
}

func TestBuildAndRecipeSpans(t *testing.T) {
	_, exporter := setupTestTracer(t)

	ctx, build := StartBuildSpan(context.Background(), "Brewery", 2)
	_, recipe := StartRecipeSpan(ctx, "Stout")
	recipe.End()
	build.End()

	spans := exporter.GetSpans()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}

	child, parent := spans[0], spans[1]
	if child.Name != "plan.recipe" || parent.Name != "plan.build" {
		t.Fatalf("unexpected span names %q, %q", child.Name, parent.Name)
	}
	if child.Parent.SpanID() != parent.SpanContext.SpanID() {
		t.Error("recipe span should be a child of the build span")
	}
	if v, ok := attrValue(parent.Attributes, "recipes"); !ok || v.AsInt64() != 2 {
		t.Error("missing 'recipes' attribute")
	}
	if v, ok := attrValue(child.Attributes, "recipe"); !ok || v.AsString() != "Stout" {
		t.Error("missing 'recipe' attribute")
	}
}

func TestRecordSuccess(t *testing.T) {
	_, exporter := setupTestTracer(t)

	_, span := StartCommandSpan(context.Background(), "validate")
	RecordSuccess(span, attribute.Int("phases", 6))
	span.End()

	got := exporter.GetSpans()[0]
	if got.Status.Code != codes.Ok {
		t.Errorf("status = %v, want Ok", got.Status.Code)
	}
	if v, ok := attrValue(got.Attributes, "phases"); !ok || v.AsInt64() != 6 {
		t.Error("missing result attribute")
	}
}

func TestRecordError(t *testing.T) {
	_, exporter := setupTestTracer(t)

	_, span := StartCommandSpan(context.Background(), "render")
	RecordError(span, errors.New("unknown phase template"))
	span.End()

	got := exporter.GetSpans()[0]
	if got.Status.Code != codes.Error {
		t.Errorf("status = %v, want Error", got.Status.Code)
	}
	if got.Status.Description != "unknown phase template" {
		t.Errorf("status description = %q", got.Status.Description)
	}
	if len(got.Events) != 1 {
		t.Errorf("expected 1 error event, got %d", len(got.Events))
	}
}

func TestRecordErrorNil(t *testing.T) {
	_, exporter := setupTestTracer(t)

	_, span := StartCommandSpan(context.Background(), "render")
	RecordError(span, nil)
	span.End()

	if got := exporter.GetSpans()[0]; got.Status.Code != codes.Unset {
		t.Errorf("status = %v, want Unset", got.Status.Code)
	}
}

func TestRecordDuration(t *testing.T) {
	_, exporter := setupTestTracer(t)

	_, span := StartCommandSpan(context.Background(), "allocate")
	RecordDuration(span, "build", 1500*time.Millisecond)
	span.End()

	v, ok := attrValue(exporter.GetSpans()[0].Attributes, "build_ms")
	if !ok || v.AsInt64() != 1500 {
		t.Errorf("build_ms = %v, want 1500", v.AsInt64())
	}
}
