package domain

import (
	"strings"
	"time"
)

// Layouts accepted for date query parameters and webhook timestamps. Values
// without a zone are read as UTC, so a bare date means UTC midnight.
var (
	zonedLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04Z07:00",
	}
	localLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04",
		"2006-01-02",
	}
)

// DateRange is a closed interval; a nil bound is open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether t lies within the range, both bounds inclusive.
func (r DateRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}

// ParseInstant parses an ISO-8601 timestamp and returns it in UTC.
func ParseInstant(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, Invalid("%q is not a valid ISO-8601 date", value)
}

// ParseDateRange builds a DateRange from optional query values. Empty strings leave the bound open.
func ParseDateRange(start, end string) (DateRange, error) {
	var r DateRange
	if strings.TrimSpace(start) != "" {
		t, err := ParseInstant(start)
		if err != nil {
			return DateRange{}, Invalid("startDate: %q is not a valid ISO-8601 date", start)
		}
		r.Start = &t
	}
	if strings.TrimSpace(end) != "" {
		t, err := ParseInstant(end)
		if err != nil {
			return DateRange{}, Invalid("endDate: %q is not a valid ISO-8601 date", end)
		}
		r.End = &t
	}
	if r.Start != nil && r.End != nil && r.Start.After(*r.End) {
		return DateRange{}, Invalid("startDate must not be after endDate")
	}
	return r, nil
}
