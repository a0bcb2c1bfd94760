package stats

import (
	"testing"
	"time"

	"github.com/meltforce/repwise/internal/models"
)

// TestWeekStartMondayAnchor verifies that every day of a week maps to the
// same Monday 00:00 UTC boundary.
func TestWeekStartMondayAnchor(t *testing.T) {
	monday := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   time.Time
	}{
		{"monday midnight", monday},
		{"monday evening", monday.Add(22 * time.Hour)},
		{"wednesday", time.Date(2025, 6, 18, 14, 30, 0, 0, time.UTC)},
		{"sunday night", time.Date(2025, 6, 22, 23, 59, 59, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekStart(tt.in); !got.Equal(monday) {
				t.Errorf("WeekStart(%v) = %v, want %v", tt.in, got, monday)
			}
		})
	}
}

// TestWeekStartPreviousWeek verifies that a Sunday belongs to the week of the
// preceding Monday, not the following one.
func TestWeekStartPreviousWeek(t *testing.T) {
	sunday := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	want := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	if got := WeekStart(sunday); !got.Equal(want) {
		t.Errorf("WeekStart(sunday) = %v, want %v", got, want)
	}
}

// TestWeekStartsDense verifies the expanded window is gap-free, ascending,
// and extends exactly paddingWeeks before the display range.
func TestWeekStartsDense(t *testing.T) {
	now := time.Date(2025, 6, 18, 10, 0, 0, 0, time.UTC) // Wednesday

	weeks, displayFrom := WeekStarts(models.RangeMonth, now, time.Time{}, DefaultPaddingWeeks)
	if len(weeks) == 0 {
		t.Fatal("expected non-empty week list")
	}

	wantFrom := WeekStart(now.AddDate(0, -1, 0))
	if !displayFrom.Equal(wantFrom) {
		t.Errorf("displayFrom = %v, want %v", displayFrom, wantFrom)
	}
	wantFirst := wantFrom.AddDate(0, 0, -7*DefaultPaddingWeeks)
	if !weeks[0].Equal(wantFirst) {
		t.Errorf("first week = %v, want %v", weeks[0], wantFirst)
	}
	if last := weeks[len(weeks)-1]; !last.Equal(WeekStart(now)) {
		t.Errorf("last week = %v, want %v", last, WeekStart(now))
	}
	for i := 1; i < len(weeks); i++ {
		if got := weeks[i].Sub(weeks[i-1]); got != 7*24*time.Hour {
			t.Fatalf("gap between weeks[%d] and weeks[%d] = %v, want 168h", i-1, i, got)
		}
	}
}

// TestWeekStartsAllTimeBounds verifies the all-time range starts at the
// earliest session and collapses to the current week when no data exists.
func TestWeekStartsAllTimeBounds(t *testing.T) {
	now := time.Date(2025, 6, 18, 10, 0, 0, 0, time.UTC)
	earliest := time.Date(2025, 2, 4, 18, 0, 0, 0, time.UTC)

	_, displayFrom := WeekStarts(models.RangeAllTime, now, earliest, DefaultPaddingWeeks)
	if want := WeekStart(earliest); !displayFrom.Equal(want) {
		t.Errorf("displayFrom = %v, want %v", displayFrom, want)
	}

	_, displayFrom = WeekStarts(models.RangeAllTime, now, time.Time{}, DefaultPaddingWeeks)
	if want := WeekStart(now); !displayFrom.Equal(want) {
		t.Errorf("displayFrom with no data = %v, want %v", displayFrom, want)
	}
}
