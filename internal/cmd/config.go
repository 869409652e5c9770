package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/chronogrog/internal/ux"
)

const configEnvVar = "CHRONOGROG_CONFIG"

// GlobalConfig represents the global chronogrog configuration
type GlobalConfig struct {
	Logging   LoggingConfig   `json:"logging,omitempty" yaml:"logging,omitempty"`
	Allocate  AllocateConfig  `json:"allocate,omitempty" yaml:"allocate,omitempty"`
	Telemetry TelemetryConfig `json:"telemetry,omitempty" yaml:"telemetry,omitempty"`
}

type LoggingConfig struct {
	Level  string `json:"level,omitempty" yaml:"level,omitempty"`   // "debug", "info", "warn", "error"
	Format string `json:"format,omitempty" yaml:"format,omitempty"` // "text", "json"
}

type AllocateConfig struct {
	Strict bool `json:"strict,omitempty" yaml:"strict,omitempty"`
}

type TelemetryConfig struct {
	Enabled    bool    `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Endpoint   string  `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	SampleRate float64 `json:"sample_rate,omitempty" yaml:"sample_rate,omitempty"`
}

// defaultGlobalConfig returns the configuration used when no file exists
func defaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
		Telemetry: TelemetryConfig{
			SampleRate: 1.0,
		},
	}
}

// resolveConfigPath picks the config file: the --config flag, then
// $CHRONOGROG_CONFIG, then ~/.chronogrog/config.yaml
func resolveConfigPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(configEnvVar); env != "" {
		return env, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".chronogrog", "config.yaml"), nil
}

// loadConfig reads the configuration at path. A missing file yields the
// defaults; keys absent from the file keep their default values.
func loadConfig(path string) (*GlobalConfig, error) {
	config := defaultGlobalConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return config, nil
}

// saveConfig saves the configuration to path, creating its directory
func saveConfig(config *GlobalConfig, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (a *app) configCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "View or change chronogrog configuration",
		Long: `Manage the chronogrog configuration stored at ~/.chronogrog/config.yaml
(override with --config or $CHRONOGROG_CONFIG).

Configuration includes:
  • Logging level and format
  • Whether allocate fails on conflicts by default
  • OpenTelemetry tracing

Examples:
  # View current configuration
  chronogrog config view

  # Get a specific value
  chronogrog config get logging.level

  # Set a specific value
  chronogrog config set allocate.strict true

  # Show configuration file path
  chronogrog config path
`,
	}

	var viewFormat string
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Display current configuration",
		Long:  `Display the effective configuration: file values over defaults.`,
		Args:  cobra.NoArgs,
		RunE: a.instrument("config.view", func(cmd *cobra.Command, args []string) error {
			return a.runConfigView(cmd, viewFormat)
		}),
	}
	viewCmd.Flags().StringVarP(&viewFormat, "format", "f", ux.FormatYAML, "output format: yaml, json")

	configCmd.AddCommand(
		viewCmd,
		&cobra.Command{
			Use:   "get <key>",
			Short: "Get a specific configuration value",
			Long:  `Retrieve the value of a configuration key using dot notation (e.g., logging.level).`,
			Args:  cobra.ExactArgs(1),
			RunE:  a.instrument("config.get", a.runConfigGet),
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Set a specific configuration value",
			Long:  `Set the value of a configuration key using dot notation (e.g., telemetry.enabled true).`,
			Args:  cobra.ExactArgs(2),
			RunE:  a.instrument("config.set", a.runConfigSet),
		},
		&cobra.Command{
			Use:   "path",
			Short: "Show configuration file path",
			Args:  cobra.NoArgs,
			RunE:  a.instrument("config.path", a.runConfigPath),
		},
	)

	return configCmd
}

func (a *app) runConfigView(cmd *cobra.Command, format string) error {
	if format == ux.FormatText {
		format = ux.FormatYAML
	}
	formatter, err := ux.NewFormatter(format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == ux.FormatYAML {
		fmt.Fprintf(out, "# %s\n", a.configPath)
	}
	return formatter.Format(out, a.config)
}

func (a *app) runConfigGet(cmd *cobra.Command, args []string) error {
	value, err := getNestedValue(a.config, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

func (a *app) runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	if err := setNestedValue(a.config, key, value); err != nil {
		return err
	}
	if err := saveConfig(a.config, a.configPath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Set %s = %s\n", key, value)
	return nil
}

func (a *app) runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), a.configPath)
	return nil
}

// getNestedValue retrieves a value from the config using dot notation
func getNestedValue(config *GlobalConfig, key string) (string, error) {
	switch key {
	case "logging.level":
		return config.Logging.Level, nil
	case "logging.format":
		return config.Logging.Format, nil
	case "allocate.strict":
		return strconv.FormatBool(config.Allocate.Strict), nil
	case "telemetry.enabled":
		return strconv.FormatBool(config.Telemetry.Enabled), nil
	case "telemetry.endpoint":
		return config.Telemetry.Endpoint, nil
	case "telemetry.sample_rate":
		return strconv.FormatFloat(config.Telemetry.SampleRate, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// setNestedValue sets a value in the config using dot notation
func setNestedValue(config *GlobalConfig, key, value string) error {
	switch key {
	case "logging.level":
		if _, ok := parseLogLevel(value); !ok {
			return flagValueError(key, value, "debug, info, warn, error")
		}
		config.Logging.Level = strings.ToLower(value)
	case "logging.format":
		if _, ok := parseLogFormat(value); !ok {
			return flagValueError(key, value, "text, json")
		}
		config.Logging.Format = strings.ToLower(value)
	case "allocate.strict":
		config.Allocate.Strict = parseBool(value)
	case "telemetry.enabled":
		config.Telemetry.Enabled = parseBool(value)
	case "telemetry.endpoint":
		config.Telemetry.Endpoint = value
	case "telemetry.sample_rate":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return flagValueError(key, value, "a number between 0 and 1")
		}
		config.Telemetry.SampleRate = clampSampleRate(v)
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	return nil
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "1", "on":
		return true
	default:
		return false
	}
}
