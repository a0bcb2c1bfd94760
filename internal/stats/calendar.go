// Package stats turns a historical training log into the weekly analytics
// dashboard: one single-pass aggregation over all sets, rolling baselines,
// deload detection, junk-volume classification, and the per-mode assemblers.
// The whole package is a pure synchronous computation over an immutable
// snapshot: no I/O and no shared state between invocations.
package stats

import (
	"time"

	"github.com/meltforce/repwise/internal/models"
)

// DefaultPaddingWeeks is the extra lookback prepended to every display range
// so baselines and rolling medians have history to work with. Padded weeks
// never appear in output series.
const DefaultPaddingWeeks = 8

// WeekStart returns the Monday 00:00 UTC boundary of the week containing t.
// The engine uses one fixed Monday-first calendar throughout; mixing
// calendars mid-computation would misalign every weekly map.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	// Weekday is Sunday=0; shift so Monday=0.
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekStarts expands a display range into the ordered, gap-free list of
// week-start dates the computation needs, extended backward by padding weeks.
// The second return value is the first week that belongs to the display range
// proper; weeks before it exist only as baseline lookback.
//
// earliest bounds the all-time range to the data's extent; a zero earliest
// (no qualifying sessions) collapses all-time to the current week.
func WeekStarts(rng models.DisplayRange, now, earliest time.Time, padding int) ([]time.Time, time.Time) {
	var displayFrom time.Time
	switch rng {
	case models.RangeWeek:
		displayFrom = WeekStart(now.AddDate(0, 0, -7))
	case models.RangeMonth:
		displayFrom = WeekStart(now.AddDate(0, -1, 0))
	case models.RangeAllTime:
		if earliest.IsZero() {
			displayFrom = WeekStart(now)
		} else {
			displayFrom = WeekStart(earliest)
		}
	default:
		displayFrom = WeekStart(now.AddDate(0, -1, 0))
	}

	last := WeekStart(now)
	first := displayFrom.AddDate(0, 0, -7*padding)

	var weeks []time.Time
	for w := first; !w.After(last); w = w.AddDate(0, 0, 7) {
		weeks = append(weeks, w)
	}
	return weeks, displayFrom
}
