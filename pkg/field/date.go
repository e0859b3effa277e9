// pkg/field/date.go
package field

import (
	"strings"
	"time"
)

// dateLayouts is tried in order and the first successful parse wins. The
// order is a contract, not an implementation detail: a value like
// "05-06-2025" is read month-first because the month-first layout is listed
// before the day-first one, even though both would parse it.
var dateLayouts = []string{
	"2006-1-2",
	"1/2/2006",
	"2/1/2006",
	"2006/1/2",
	"1-2-2006",
	"2-1-2006",
}

const (
	minYear = 1900
	maxYear = 2030
)

// Date validates raw text as a calendar date against the ordered layout list.
// A parse only counts when the year falls in [1900, 2030]; month and day
// validity (including month length) is enforced by the layout parse itself.
func Date(raw string) (time.Time, Cause) {
	if isNullToken(raw) {
		return time.Time{}, CauseAbsent
	}

	s := strings.TrimSpace(raw)
	outOfRange := false
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if t.Year() < minYear || t.Year() > maxYear {
			outOfRange = true
			continue
		}
		return t, CauseNone
	}

	if outOfRange {
		return time.Time{}, CauseOutOfRange
	}
	return time.Time{}, CauseMalformed
}
