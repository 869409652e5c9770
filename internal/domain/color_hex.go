package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ColorHex is an RGB colour written as '#' followed by six hex digits.
// This is a value object that enforces the format.
type ColorHex string

var colorHexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// NewColorHex creates a new ColorHex value object with validation
func NewColorHex(value string) (ColorHex, error) {
	c := ColorHex(value)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate checks if the colour is a well-formed hex triplet
func (c ColorHex) Validate() error {
	if c == "" {
		return fmt.Errorf("color cannot be empty")
	}
	if !colorHexPattern.MatchString(string(c)) {
		return fmt.Errorf("color %q must be '#' followed by six hex digits", string(c))
	}
	return nil
}

// RGB returns the red, green and blue components. The colour must be valid.
func (c ColorHex) RGB() (r, g, b uint8) {
	v, _ := strconv.ParseUint(strings.TrimPrefix(string(c), "#"), 16, 32)
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// String returns the string representation
func (c ColorHex) String() string {
	return string(c)
}
