// Package filter drops already-imported rows from a parsed statement.
// Both filters preserve source order and never reorder.
package filter

import (
	"errors"
	"time"

	"github.com/txconvert-dev/txconvert/internal/model"
)

// ErrMarkerNotFound indicates no statement row matched the marker while
// strict matching was requested.
var ErrMarkerNotFound = errors.New("last-imported marker not found in source")

// FromDate returns the rows strictly after the cutoff instant. A zero cutoff
// keeps everything.
func FromDate(txns []model.Transaction, cutoff time.Time) []model.Transaction {
	if cutoff.IsZero() {
		return txns
	}
	var out []model.Transaction
	for _, t := range txns {
		if !t.Date.After(cutoff) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// AfterMarker returns the sub-sequence strictly after the row matching the
// marker, and whether a match was found. When the same transaction appears
// more than once, the cut happens after the last occurrence: the later row is
// the one most recently imported. When nothing matches, the input is returned
// unchanged; the caller decides whether that is a warning or an error.
func AfterMarker(txns []model.Transaction, m model.Marker) ([]model.Transaction, bool) {
	match := -1
	for i, t := range txns {
		if m.Matches(t) {
			match = i
		}
	}
	if match < 0 {
		return txns, false
	}
	return txns[match+1:], true
}
