// Package dateformat renders and parses the dates used by the exercise log.
//
// Rendering uses a fixed layout ("Mon Jan 02 2006") that does not depend on
// the process locale, so output is reproducible across environments.
package dateformat

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the textual form every API response uses for entry dates.
const Layout = "Mon Jan 02 2006"

// inputLayouts are the only accepted forms for date input. An
// already-rendered Layout string is deliberately not among them.
var inputLayouts = []string{"2006-01-02", time.RFC3339}

// ErrInvalidDate indicates a date string that matches none of the
// accepted input layouts.
var ErrInvalidDate = errors.New("invalid date")

// Format renders t in the fixed layout, normalized to UTC.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// Parse converts a date string ("2006-01-02" or RFC 3339) into a time.Time.
// Anything else, including output of Format, fails with ErrInvalidDate.
func Parse(s string) (time.Time, error) {
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
