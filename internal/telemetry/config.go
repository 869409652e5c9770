package telemetry

// Config holds configuration for the tracer
type Config struct {
	// ServiceName is the name of the service
	ServiceName string

	// ServiceVersion is the version of the service
	ServiceVersion string

	// Enabled determines whether tracing is enabled
	// When false, a noop tracer is used
	Enabled bool

	// Endpoint is the OTLP/HTTP collector endpoint (optional)
	// If empty, spans are recorded but not exported
	Endpoint string

	// SampleRate is the fraction of traces to sample (0.0 to 1.0)
	SampleRate float64
}

// DefaultConfig returns the configuration used when nothing is configured.
// Tracing is disabled by default for a CLI tool.
func DefaultConfig() Config {
	return Config{
		ServiceName:    "chronogrog",
		ServiceVersion: "dev",
		Enabled:        false,
		Endpoint:       "",
		SampleRate:     1.0,
	}
}
