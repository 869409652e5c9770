package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
)

// Prompt represents a single-line input prompt
type Prompt struct {
	Message     string
	Default     string
	Placeholder string
	Required    bool
	// Validate, when set, is run by the form on every submit attempt
	Validate func(string) error
}

// PromptForString displays an interactive prompt and returns the user's input
func PromptForString(p Prompt) (string, error) {
	value := p.Default

	input := huh.NewInput().
		Title(p.Message).
		Placeholder(p.Placeholder).
		Value(&value)
	if v := inputValidator(p); v != nil {
		input = input.Validate(v)
	}

	if err := huh.NewForm(huh.NewGroup(input)).Run(); err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	return value, nil
}

// inputValidator combines the required check with the prompt's own validator
func inputValidator(p Prompt) func(string) error {
	if !p.Required && p.Validate == nil {
		return nil
	}
	return func(s string) error {
		if p.Required && s == "" {
			return fmt.Errorf("value is required")
		}
		if p.Validate != nil && s != "" {
			return p.Validate(s)
		}
		return nil
	}
}

// PromptForConfirmation displays a yes/no confirmation prompt
func PromptForConfirmation(message string, defaultValue bool) (bool, error) {
	confirmed := defaultValue

	confirm := huh.NewConfirm().
		Title(message).
		Value(&confirmed)

	if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}

	return confirmed, nil
}

// PromptForMultiSelect displays a multi-selection prompt with the given
// options pre-selected
func PromptForMultiSelect(message string, options []string, selected []string) ([]string, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("no options provided")
	}

	value := append([]string(nil), selected...)
	multiSelect := huh.NewMultiSelect[string]().
		Title(message).
		Options(huh.NewOptions(options...)...).
		Value(&value)

	if err := huh.NewForm(huh.NewGroup(multiSelect)).Run(); err != nil {
		return nil, fmt.Errorf("prompt failed: %w", err)
	}

	return value, nil
}

// IsInteractive returns true if stdin is a terminal (not piped)
func IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

var ciEnvVars = []string{
	"CI",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"JENKINS_URL",
	"BUILDKITE",
}

// ShouldPrompt returns true if prompts should be shown. Prompts are
// disabled in CI environments or when stdin is not a terminal.
func ShouldPrompt() bool {
	for _, envVar := range ciEnvVars {
		if os.Getenv(envVar) != "" {
			return false
		}
	}
	return IsInteractive()
}
