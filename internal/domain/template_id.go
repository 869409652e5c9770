package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// TemplateID identifies a phase template within a schedule.
type TemplateID string

// maxTemplateIDLength is the maximum allowed length for a template ID
const maxTemplateIDLength = 100

// NewTemplateID creates a new TemplateID value object with validation
func NewTemplateID(value string) (TemplateID, error) {
	id := TemplateID(value)
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

// Validate checks if the template ID is usable as a lookup key
func (t TemplateID) Validate() error {
	s := string(t)

	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("template ID cannot be empty")
	}

	if len(s) > maxTemplateIDLength {
		return fmt.Errorf("template ID %q exceeds maximum length of %d characters", s, maxTemplateIDLength)
	}

	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return fmt.Errorf("template ID %q cannot contain whitespace", s)
	}

	return nil
}

// String returns the string representation
func (t TemplateID) String() string {
	return string(t)
}
