package schedule

import (
	"time"

	"github.com/felixgeelhaar/chronogrog/internal/errors"
)

// Accepted date layouts. A bare date means midnight.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// ParseDate parses text as YYYY-MM-DD or YYYY-MM-DD HH:MM:SS in UTC.
// time.Parse accepts fractional seconds after a seconds field even when the
// layout has none, so the length must match the layout exactly.
func ParseDate(text string) (time.Time, error) {
	if len(text) == len(DateTimeLayout) {
		if t, err := time.Parse(DateTimeLayout, text); err == nil {
			return t, nil
		}
	}
	t, err := time.Parse(DateLayout, text)
	if err != nil {
		return time.Time{}, errors.NewDateParseError(text, err)
	}
	return t, nil
}
