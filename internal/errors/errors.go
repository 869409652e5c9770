package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Schema errors (SCHEMA-001 to SCHEMA-099)
	ErrCodeSchemaMissingField ErrorCode = "SCHEMA-001"
	ErrCodeSchemaInvalidValue ErrorCode = "SCHEMA-002"
	ErrCodeSchemaDuplicateID  ErrorCode = "SCHEMA-003"

	// Date errors (DATE-001 to DATE-099)
	ErrCodeDateParse ErrorCode = "DATE-001"

	// Duration errors (DURATION-001 to DURATION-099)
	ErrCodeDurationDigits ErrorCode = "DURATION-001"

	// Template errors (TEMPLATE-001 to TEMPLATE-099)
	ErrCodeTemplateNotFound ErrorCode = "TEMPLATE-001"

	// Allocation errors (ALLOC-001 to ALLOC-099)
	ErrCodeAllocationUnavailable ErrorCode = "ALLOC-001"

	// Plan graph errors (PLAN-001 to PLAN-099)
	ErrCodePlanInvalid   ErrorCode = "PLAN-001"
	ErrCodePlanCyclicDep ErrorCode = "PLAN-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
	ErrCodeDirectoryFailed ErrorCode = "IO-004"
	ErrCodeFileUnmarshal   ErrorCode = "IO-005"
)

// ChronogrogError is an error carrying a code and optional recovery suggestions
type ChronogrogError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *ChronogrogError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *ChronogrogError) Unwrap() error {
	return e.Cause
}

// New creates a new ChronogrogError
func New(code ErrorCode, message string) *ChronogrogError {
	return &ChronogrogError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new ChronogrogError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *ChronogrogError {
	return &ChronogrogError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *ChronogrogError) WithSuggestion(suggestion string) *ChronogrogError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *ChronogrogError) WithSuggestions(suggestions ...string) *ChronogrogError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// CodeOf returns the code of the outermost ChronogrogError in err's chain
func CodeOf(err error) (ErrorCode, bool) {
	var ce *ChronogrogError
	if stderrors.As(err, &ce) {
		return ce.Code, true
	}
	return "", false
}

// HasCode reports whether any ChronogrogError in err's chain carries code
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		var ce *ChronogrogError
		if !stderrors.As(err, &ce) {
			return false
		}
		if ce.Code == code {
			return true
		}
		err = ce.Cause
	}
	return false
}

// NewSchemaMissingFieldError reports a required input field that is absent or empty
func NewSchemaMissingFieldError(field string) *ChronogrogError {
	return New(ErrCodeSchemaMissingField, fmt.Sprintf("missing required field: %s", field)).
		WithSuggestion("Run 'chronogrog init' to scaffold a valid schedule").
		WithSuggestion("Check the schedule document against the documented keys")
}

// NewSchemaInvalidValueError reports a field whose value is malformed
func NewSchemaInvalidValueError(field string, cause error) *ChronogrogError {
	return Wrap(ErrCodeSchemaInvalidValue, fmt.Sprintf("invalid value for field: %s", field), cause)
}

// NewSchemaDuplicateIDError reports a key that appears more than once
func NewSchemaDuplicateIDError(kind string, id string) *ChronogrogError {
	return New(ErrCodeSchemaDuplicateID, fmt.Sprintf("duplicate %s id: %s", kind, id)).
		WithSuggestion(fmt.Sprintf("Give every %s a unique id", kind))
}

// NewDateParseError reports a start date that matches neither accepted layout
func NewDateParseError(value string, cause error) *ChronogrogError {
	return Wrap(ErrCodeDateParse, fmt.Sprintf("unable to parse date: %q", value), cause).
		WithSuggestion("Use YYYY-MM-DD or YYYY-MM-DD HH:MM:SS")
}

// NewDurationError reports a duration whose digit run is not an integer
func NewDurationError(value string, cause error) *ChronogrogError {
	return Wrap(ErrCodeDurationDigits, fmt.Sprintf("malformed duration: %q", value), cause).
		WithSuggestion("Use an integer followed by one of m, w, d, h (for example 10d)")
}

// NewTemplateNotFoundError reports a phase that references an unknown template
func NewTemplateNotFoundError(recipe string, template string) *ChronogrogError {
	return New(ErrCodeTemplateNotFound,
		fmt.Sprintf("recipe %q references unknown phase template: %s", recipe, template)).
		WithSuggestion("Declare the template under phaseTemplates").
		WithSuggestion("Check the template id for typos")
}

// NewAllocationUnavailableError reports phases that could not get equipment
func NewAllocationUnavailableError(conflicts int) *ChronogrogError {
	return New(ErrCodeAllocationUnavailable,
		fmt.Sprintf("%d resource request(s) could not be satisfied", conflicts)).
		WithSuggestion("Add equipment of the missing type to resources").
		WithSuggestion("Move the recipe start so phases do not overlap")
}

// NewFileNotFoundError creates a file not found error
func NewFileNotFoundError(path string) *ChronogrogError {
	return New(ErrCodeFileNotFound, fmt.Sprintf("file not found: %s", path)).
		WithSuggestion("Check if the file path is correct").
		WithSuggestion("Verify the file exists and you have read permissions")
}

// NewFileUnmarshalError creates an unmarshal error
func NewFileUnmarshalError(path string, format string, cause error) *ChronogrogError {
	return Wrap(ErrCodeFileUnmarshal, fmt.Sprintf("failed to parse %s file: %s", format, path), cause).
		WithSuggestion("Check the file syntax and format").
		WithSuggestion(fmt.Sprintf("Ensure the file is valid %s", format))
}
