package utils

import (
	"os"
	"time"
)

// ResolveLocation loads an IANA timezone by name, falling back to the
// ANALYTICS_TZ environment variable and finally UTC. All calendar math
// (cohort windows, package expiry) goes through a single location so the
// server never mixes time bases.
func ResolveLocation(name string) *time.Location {
	if name == "" {
		name = os.Getenv("ANALYTICS_TZ")
	}
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// StartOfDay truncates t to midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// MonthWindow returns the inclusive [first instant, last instant] of the
// calendar month `offset` months before the month containing now, in loc.
// offset 0 is the current month.
func MonthWindow(now time.Time, offset int, loc *time.Location) (time.Time, time.Time) {
	now = now.In(loc)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, -offset, 0)
	last := first.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return first, last
}
