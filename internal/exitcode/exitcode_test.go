package exitcode

import (
	"context"
	"errors"
	"fmt"
	"testing"

	cgerrors "github.com/felixgeelhaar/chronogrog/internal/errors"
)

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"Success", Success, 0},
		{"GeneralError", GeneralError, 1},
		{"UsageError", UsageError, 2},
		{"InvalidInput", InvalidInput, 3},
		{"AllocationConflict", AllocationConflict, 4},
		{"Interrupted", Interrupted, 130},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.expected {
				t.Errorf("Exit code %s = %d, want %d", tt.name, tt.code, tt.expected)
			}
		})
	}
}

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil error returns success",
			err:      nil,
			expected: Success,
		},
		{
			name:     "unknown template",
			err:      fmt.Errorf("build recipe %q: %w", "Stout", cgerrors.NewTemplateNotFoundError("Stout", "mash")),
			expected: InvalidInput,
		},
		{
			name:     "date parse",
			err:      cgerrors.NewDateParseError("yesterday", nil),
			expected: InvalidInput,
		},
		{
			name:     "duration digits",
			err:      cgerrors.NewDurationError("abd", nil),
			expected: InvalidInput,
		},
		{
			name:     "schema",
			err:      cgerrors.NewSchemaMissingFieldError("name"),
			expected: InvalidInput,
		},
		{
			name:     "unmarshal",
			err:      cgerrors.NewFileUnmarshalError("in.json", "JSON", errors.New("eof")),
			expected: InvalidInput,
		},
		{
			name:     "missing input file",
			err:      cgerrors.NewFileNotFoundError("in.json"),
			expected: InvalidInput,
		},
		{
			name:     "allocation conflict",
			err:      cgerrors.NewAllocationUnavailableError(2),
			expected: AllocationConflict,
		},
		{
			name:     "write failure",
			err:      cgerrors.Wrap(cgerrors.ErrCodeFileWriteFailed, "write output", errors.New("disk full")),
			expected: GeneralError,
		},
		{
			name:     "cancelled",
			err:      fmt.Errorf("build: %w", context.Canceled),
			expected: Interrupted,
		},
		{
			name:     "unknown flag",
			err:      errors.New("unknown flag: --inptu"),
			expected: UsageError,
		},
		{
			name:     "unknown command",
			err:      errors.New(`unknown command "rendr" for "chronogrog"`),
			expected: UsageError,
		},
		{
			name:     "positional arguments",
			err:      errors.New("accepts 0 arg(s), received 1"),
			expected: UsageError,
		},
		{
			name:     "generic error",
			err:      errors.New("something went wrong"),
			expected: GeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineExitCode(tt.err); got != tt.expected {
				t.Errorf("DetermineExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestGetExitCodeDescription(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{Success, "Success"},
		{GeneralError, "General error"},
		{UsageError, "Usage error (invalid flags or arguments)"},
		{InvalidInput, "Invalid schedule input"},
		{AllocationConflict, "Resource allocation conflict"},
		{Interrupted, "Interrupted"},
		{99, "Unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := GetExitCodeDescription(tt.code); got != tt.expected {
				t.Errorf("GetExitCodeDescription(%d) = %q, want %q", tt.code, got, tt.expected)
			}
		})
	}
}
