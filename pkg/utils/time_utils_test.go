package utils

import (
	"testing"
	"time"
)

func TestMonthWindow(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		offset    int
		wantFirst time.Time
		wantLast  time.Time
	}{
		{
			name:      "current month",
			offset:    0,
			wantFirst: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			wantLast:  time.Date(2026, time.March, 31, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:      "previous month spans a 28-day February",
			offset:    1,
			wantFirst: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantLast:  time.Date(2026, time.February, 28, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:      "crosses a year boundary",
			offset:    3,
			wantFirst: time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
			wantLast:  time.Date(2025, time.December, 31, 23, 59, 59, 999999999, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := MonthWindow(now, tt.offset, time.UTC)
			if !first.Equal(tt.wantFirst) {
				t.Errorf("first = %v, want %v", first, tt.wantFirst)
			}
			if !last.Equal(tt.wantLast) {
				t.Errorf("last = %v, want %v", last, tt.wantLast)
			}
		})
	}
}

func TestMonthWindowsAreContiguous(t *testing.T) {
	now := time.Date(2026, time.January, 31, 12, 0, 0, 0, time.UTC)
	for offset := 0; offset < 5; offset++ {
		olderFirst, olderLast := MonthWindow(now, offset+1, time.UTC)
		newerFirst, _ := MonthWindow(now, offset, time.UTC)
		if !olderLast.Add(time.Nanosecond).Equal(newerFirst) {
			t.Errorf("offset %d: window [%v, %v] does not abut %v", offset+1, olderFirst, olderLast, newerFirst)
		}
	}
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	in := time.Date(2026, time.August, 30, 23, 59, 59, 0, time.UTC)
	got := StartOfDay(in, loc)
	// 23:59:59Z on Aug 30 is already Aug 31 in ICT.
	want := time.Date(2026, time.August, 31, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}

func TestResolveLocationFallsBackToUTC(t *testing.T) {
	if loc := ResolveLocation("Not/AZone"); loc != time.UTC {
		t.Errorf("expected UTC fallback, got %v", loc)
	}
}
