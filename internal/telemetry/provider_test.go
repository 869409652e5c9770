package telemetry

import (
	"context"
	"strings"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestInitProviderDisabled(t *testing.T) {
	ctx := context.Background()
	shutdown, err := InitProvider(ctx, DefaultConfig())
	if err != nil {
		t.Fatalf("InitProvider failed: %v", err)
	}
	if _, ok := GetTracerProvider().(noop.TracerProvider); !ok {
		t.Errorf("expected noop provider, got %T", GetTracerProvider())
	}
	if err := shutdown(ctx); err != nil {
		t.Fatalf("shutdown returned error: %v", err)
	}
}

func TestInitProviderEnabled(t *testing.T) {
	config := DefaultConfig()
	config.Enabled = true
	config.SampleRate = 0.5

	ctx := context.Background()
	shutdown, err := InitProvider(ctx, config)
	if err != nil {
		t.Fatalf("InitProvider failed: %v", err)
	}
	t.Cleanup(func() { SetTracerProvider(nil) })

	if _, ok := GetTracerProvider().(*sdktrace.TracerProvider); !ok {
		t.Fatalf("expected sdk provider, got %T", GetTracerProvider())
	}

	_, span := StartCommandSpan(ctx, "render")
	span.End()

	if err := shutdown(ctx); err != nil {
		t.Fatalf("shutdown returned error: %v", err)
	}
	if _, ok := GetTracerProvider().(noop.TracerProvider); !ok {
		t.Errorf("expected noop provider after shutdown, got %T", GetTracerProvider())
	}
}

func TestSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, "AlwaysOnSampler"},
		{2.0, "AlwaysOnSampler"},
		{0.25, "TraceIDRatioBased{0.25}"},
		{0, "TraceIDRatioBased{0}"},
	}

	for _, tt := range tests {
		if got := sampler(tt.rate).Description(); !strings.HasPrefix(got, tt.want) {
			t.Errorf("sampler(%v) = %q, want %q", tt.rate, got, tt.want)
		}
	}
}

func TestSetTracerProviderNil(t *testing.T) {
	SetTracerProvider(nil)

	if GetTracerProvider() == nil {
		t.Fatal("expected a noop provider")
	}
}
