// backend/src/utils/date_utils.go
package utils

import (
	"strings"
	"time"
)

const DefaultDateFormat = "02-01-2006"

// dayFirstLayouts are tried first: most exports this tool sees use the
// day-month-year convention.
var dayFirstLayouts = []string{
	"02-01-2006",
	"02/01/2006",
	"2-1-2006",
	"2/1/2006",
	"02-01-06",
	"02/01/06",
	"02-Jan-2006",
	"02 Jan 2006",
}

// fallbackLayouts cover ISO and month-first formats for files that do not
// follow the day-first convention.
var fallbackLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"01/02/2006",
	"01-02-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
}

// ParseFlexibleDate parses a date string permissively, preferring day-first
// layouts before falling back to ISO and month-first ones. The boolean is
// false when no layout matches; callers decide whether to drop the row.
func ParseFlexibleDate(dateStr string) (time.Time, bool) {
	s := strings.TrimSpace(dateStr)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthEnd returns the last day of t's calendar month.
func MonthEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC)
}
