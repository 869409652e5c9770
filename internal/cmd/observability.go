package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/chronogrog/internal/log"
	"github.com/felixgeelhaar/chronogrog/internal/metrics"
	"github.com/felixgeelhaar/chronogrog/internal/telemetry"
	"github.com/felixgeelhaar/chronogrog/internal/version"
)

// setupObservability loads the configuration and installs the run's
// logger and tracer provider. Metrics are already bound to the app.
func (a *app) setupObservability(ctx context.Context) error {
	path, err := resolveConfigPath(a.opts.configPath)
	if err != nil {
		return err
	}
	a.configPath = path

	cfg, err := loadConfig(path)
	if err != nil {
		fmt.Fprintf(a.stderr, "⚠️  Unable to load config: %v\n", err)
		cfg = defaultGlobalConfig()
	}
	a.config = cfg

	if err := a.setupLogging(cfg); err != nil {
		return err
	}
	a.setupTelemetry(ctx, cfg)
	return nil
}

func (a *app) setupLogging(cfg *GlobalConfig) error {
	levelName := firstNonEmpty(a.opts.logLevel, os.Getenv("CHRONOGROG_LOG_LEVEL"), cfg.Logging.Level)
	level, ok := parseLogLevel(levelName)
	if !ok {
		return flagValueError("log-level", levelName, "debug, info, warn, error")
	}

	formatName := firstNonEmpty(a.opts.logFormat, os.Getenv("CHRONOGROG_LOG_FORMAT"), cfg.Logging.Format)
	format, ok := parseLogFormat(formatName)
	if !ok {
		return flagValueError("log-format", formatName, "text, json")
	}

	a.runID = uuid.NewString()
	a.logger = log.New(log.Config{
		Level:       level,
		Format:      format,
		Output:      a.stderr,
		ServiceName: "chronogrog",
	}).With("run_id", a.runID)

	log.SetDefaultLogger(a.logger)
	return nil
}

// parseLogLevel accepts an empty name as the default level
func parseLogLevel(name string) (log.Level, bool) {
	if name == "" {
		return log.LevelWarn, true
	}
	return log.ParseLevel(name)
}

// parseLogFormat accepts an empty name as the default format
func parseLogFormat(name string) (log.Format, bool) {
	if name == "" {
		return log.FormatText, true
	}
	return log.ParseFormat(name)
}

func (a *app) setupTelemetry(ctx context.Context, cfg *GlobalConfig) {
	if !telemetryRequested(cfg) {
		return
	}

	telemCfg := telemetry.Config{
		ServiceName:    "chronogrog",
		ServiceVersion: version.GetInfo().Version,
		Enabled:        true,
		Endpoint:       telemetryEndpoint(cfg),
		SampleRate:     telemetrySampleRate(cfg),
	}

	shutdown, err := telemetry.InitProvider(ctx, telemCfg)
	if err != nil {
		a.logger.WarnContext(ctx, "failed to initialize telemetry", "error", err)
		return
	}
	a.shutdownTelemetry = shutdown

	a.logger.Debug("telemetry enabled",
		"endpoint", telemCfg.Endpoint,
		"sample_rate", telemCfg.SampleRate,
	)
}

// finish flushes what the run produced: the metrics file and any pending
// spans. It runs whether or not the command succeeded.
func (a *app) finish() error {
	var err error

	if a.opts.metricsFile != "" && a.registry != nil {
		err = metrics.WriteFile(a.registry, a.opts.metricsFile)
	}

	if a.shutdownTelemetry != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if serr := a.shutdownTelemetry(shutdownCtx); serr != nil && a.logger != nil {
			a.logger.Warn("failed to flush telemetry", "error", serr)
		}
		a.shutdownTelemetry = nil
	}

	return err
}

func telemetryRequested(cfg *GlobalConfig) bool {
	if val := strings.ToLower(os.Getenv("CHRONOGROG_TELEMETRY")); val != "" {
		return val == "on" || val == "true" || val == "1" || val == "enabled"
	}
	return cfg != nil && cfg.Telemetry.Enabled
}

func telemetryEndpoint(cfg *GlobalConfig) string {
	if env := os.Getenv("CHRONOGROG_TELEMETRY_ENDPOINT"); env != "" {
		return env
	}
	if cfg != nil {
		return cfg.Telemetry.Endpoint
	}
	return ""
}

func telemetrySampleRate(cfg *GlobalConfig) float64 {
	if env := os.Getenv("CHRONOGROG_TELEMETRY_SAMPLE_RATE"); env != "" {
		if v, err := strconv.ParseFloat(env, 64); err == nil {
			return clampSampleRate(v)
		}
	}
	if cfg != nil && cfg.Telemetry.SampleRate > 0 {
		return clampSampleRate(cfg.Telemetry.SampleRate)
	}
	return 1.0
}

func clampSampleRate(value float64) float64 {
	switch {
	case value <= 0:
		return 0.0
	case value >= 1:
		return 1.0
	default:
		return value
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
