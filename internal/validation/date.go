package validation

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a value cannot be read as a calendar date
var ErrInvalidDate = errors.New("invalid date")

// zonedLayouts carry their own offset
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z0700",
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	time.RFC1123Z,
	time.RFC1123,
}

// localLayouts are read in the caller's location
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"Mon Jan 02 2006 15:04:05",
	"Mon Jan 02 2006",
}

// ParseDate reads a date or date-time string. Values without a zone are
// interpreted in loc (time.Local when nil).
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidDate
	}
	if loc == nil {
		loc = time.Local
	}

	// Drop the "(Indochina Time)" suffix Date.toString() appends
	if i := strings.Index(value, " ("); i > 0 && strings.HasSuffix(value, ")") {
		value = value[:i]
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrInvalidDate
}
