// Package exitcode maps errors to process exit codes.
package exitcode

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/felixgeelhaar/chronogrog/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// InvalidInput indicates a schedule document that could not be read,
	// decoded or built
	InvalidInput = 3

	// AllocationConflict indicates resource requests that could not be met
	AllocationConflict = 4

	// Interrupted indicates the run was cancelled by a signal
	Interrupted = 130
)

var codeExits = map[errors.ErrorCode]int{
	errors.ErrCodeSchemaMissingField:    InvalidInput,
	errors.ErrCodeSchemaInvalidValue:    InvalidInput,
	errors.ErrCodeSchemaDuplicateID:     InvalidInput,
	errors.ErrCodeDateParse:             InvalidInput,
	errors.ErrCodeDurationDigits:        InvalidInput,
	errors.ErrCodeTemplateNotFound:      InvalidInput,
	errors.ErrCodeFileNotFound:          InvalidInput,
	errors.ErrCodeFileUnmarshal:         InvalidInput,
	errors.ErrCodeAllocationUnavailable: AllocationConflict,
}

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	if stderrors.Is(err, context.Canceled) {
		return Interrupted
	}

	if code, ok := errors.CodeOf(err); ok {
		if exit, known := codeExits[code]; known {
			return exit
		}
		return GeneralError
	}

	// cobra reports flag and argument problems as plain errors
	errMsg := strings.ToLower(err.Error())
	for _, usage := range []string{"unknown flag", "unknown shorthand flag", "unknown command", "required flag", "flag needs an argument", "invalid argument", "accepts "} {
		if strings.Contains(errMsg, usage) {
			return UsageError
		}
	}

	return GeneralError
}

// GetExitCodeDescription returns a human-readable description of an exit code
func GetExitCodeDescription(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case InvalidInput:
		return "Invalid schedule input"
	case AllocationConflict:
		return "Resource allocation conflict"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}
