// Package duration parses the compact duration strings used in schedule
// documents ("6m", "4w", "10d", "1h", "30").
package duration

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
	"unicode/utf8"
)

// Day and Month are the calendar-free spans the grammar is built on.
// A month is always 30 days.
const (
	Day   = 24 * time.Hour
	Week  = 7 * Day
	Month = 30 * Day
)

// ErrInvalidDigits is returned when the digit run of a duration string is not
// an integer. Unlike an unknown unit, this is not recoverable by falling back
// to a default.
var ErrInvalidDigits = errors.New("duration digits are not an integer")

// Parse converts text into a time.Duration.
//
// The string is a run of digits optionally followed by exactly one unit
// letter: m (30-day month), w (week), d (day) or h (hour). Without a unit
// letter the value is in days.
//
// The boolean is false when there is no result: the string is empty or the
// unit letter is not recognized. A non-nil error wrapping ErrInvalidDigits is
// returned when the digit run itself does not parse.
func Parse(text string) (time.Duration, bool, error) {
	if text == "" {
		return 0, false, nil
	}

	digits := text
	unit := 'd'
	if last, size := utf8.DecodeLastRuneInString(text); !isDigit(last) {
		unit = last
		digits = text[:len(text)-size]
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q: %v", ErrInvalidDigits, text, err)
	}

	var scale time.Duration
	switch unit {
	case 'm':
		scale = Month
	case 'w':
		scale = Week
	case 'd':
		scale = Day
	case 'h':
		scale = time.Hour
	default:
		return 0, false, nil
	}

	limit := int64(math.MaxInt64 / scale)
	if n > limit || n < -limit {
		return 0, false, fmt.Errorf("%w: %q: out of range", ErrInvalidDigits, text)
	}
	return time.Duration(n) * scale, true, nil
}

// Hours returns the whole number of hours in d, truncated toward zero.
func Hours(d time.Duration) int64 {
	return int64(d / time.Hour)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
