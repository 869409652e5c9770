// Package ux writes command results in the format the user asked for.
package ux

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Supported output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formatter writes a command result to w
type Formatter interface {
	Format(w io.Writer, data any) error
}

// TextWriter is implemented by results that have a human-readable form
type TextWriter interface {
	WriteText(w io.Writer) error
}

// NewFormatter creates a formatter based on the format string. An empty
// format means text.
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case FormatJSON:
		return JSONFormatter{}, nil
	case FormatYAML:
		return YAMLFormatter{}, nil
	case FormatText, "":
		return TextFormatter{}, nil
	default:
		return nil, fmt.Errorf("invalid argument %q for --format: valid values are text, json, yaml", format)
	}
}

// JSONFormatter writes indented JSON
type JSONFormatter struct {
	// Compact disables indentation
	Compact bool
}

func (f JSONFormatter) Format(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	if !f.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// YAMLFormatter writes YAML with two-space indentation
type YAMLFormatter struct{}

func (YAMLFormatter) Format(w io.Writer, data any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return encoder.Close()
}

// TextFormatter writes the human-readable form of data. data must be a
// TextWriter, a fmt.Stringer or a string.
type TextFormatter struct{}

func (TextFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case TextWriter:
		return v.WriteText(w)
	case fmt.Stringer:
		_, err := fmt.Fprintln(w, v.String())
		return err
	case string:
		_, err := fmt.Fprintln(w, v)
		return err
	default:
		return fmt.Errorf("text output is not available for %T", data)
	}
}

var (
	_ Formatter = JSONFormatter{}
	_ Formatter = YAMLFormatter{}
	_ Formatter = TextFormatter{}
)
