// Package interval provides a closed time range value type.
package interval

import (
	"fmt"
	"time"
)

// Interval is the closed range [Start, End]. Both endpoints belong to the
// range, so two intervals that touch at a single instant intersect.
type Interval struct {
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
}

// New returns the interval [start, start+d].
func New(start time.Time, d time.Duration) Interval {
	return Interval{Start: start, End: start.Add(d)}
}

// Duration returns End - Start.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Intersects reports whether i and other share at least one instant.
func (i Interval) Intersects(other Interval) bool {
	return !i.Start.After(other.End) && !other.Start.After(i.End)
}

// Shift returns an interval of the same length starting at start.
func (i Interval) Shift(start time.Time) Interval {
	return New(start, i.Duration())
}

// String formats the interval as "[start, end]" using RFC 3339.
func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s]", i.Start.Format(time.RFC3339), i.End.Format(time.RFC3339))
}
