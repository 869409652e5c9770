package cmd

import (
	"fmt"

	"github.com/felixgeelhaar/chronogrog/internal/errors"
)

// flagValueError reports a flag or configuration value outside its allowed
// set. The wording is recognised as a usage error by exitcode.
func flagValueError(name, value, valid string) error {
	return fmt.Errorf("invalid argument %q for %s: valid values are %s", value, name, valid)
}

// reviewInputError is returned when review would have to read both the
// schedule and the keyboard from stdin
func reviewInputError() error {
	return fmt.Errorf(`required flag "input" not set: review reads key presses from stdin`)
}

// fileExistsError is returned when init would overwrite a file without
// --force
func fileExistsError(path string) error {
	return errors.New(errors.ErrCodeFileWriteFailed, fmt.Sprintf("refusing to overwrite %s", path)).
		WithSuggestion("Pass --force to replace it").
		WithSuggestion("Choose another path with -o")
}
