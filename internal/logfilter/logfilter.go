// Package logfilter selects the slice of an exercise log to return for a
// query: an optional [from, to) date window followed by an optional result
// cap. The reported count always reflects the windowed sequence before the
// cap is applied.
package logfilter

import (
	"time"

	"alcyxob/exercise-tracker/internal/domain"
)

// Options are the optional query parameters of a log lookup.
type Options struct {
	// From keeps entries dated at or after From when set.
	From *time.Time
	// To keeps entries dated strictly before To when set.
	To *time.Time
	// Limit caps the number of returned entries when positive.
	// Zero or negative means no cap.
	Limit int
}

// Result is the outcome of applying Options to a log.
type Result struct {
	// Count is the size of the range-filtered log, independent of Limit.
	Count int
	// Entries is the range-filtered log, truncated to Limit when set.
	Entries []domain.Entry
}

// Apply filters log by the [From, To) window, records the pre-limit count,
// and truncates to Limit entries in existing order. The input slice is not
// modified.
func Apply(log []domain.Entry, opts Options) Result {
	filtered := make([]domain.Entry, 0, len(log))
	for _, e := range log {
		if opts.From != nil && e.Date.Before(*opts.From) {
			continue
		}
		if opts.To != nil && !e.Date.Before(*opts.To) {
			continue
		}
		filtered = append(filtered, e)
	}

	result := Result{Count: len(filtered), Entries: filtered}
	if opts.Limit > 0 && opts.Limit < len(filtered) {
		result.Entries = filtered[:opts.Limit]
	}
	return result
}
