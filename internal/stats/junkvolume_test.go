package stats

import (
	"testing"
	"time"

	"github.com/meltforce/repwise/internal/models"
)

// junkHistory builds 8 weeks of 50kg×10 curl sets followed by one 30kg×10
// set in the current week. A steady bench press in every week keeps total
// tonnage level so no week reads as a deload.
func junkHistory() []models.Session {
	var sessions []models.Session
	for ago := 8; ago >= 1; ago-- {
		end := weekOf(ago).Add(18 * time.Hour)
		sessions = append(sessions, session(end,
			exercise("Biceps Curl", set(50, 10, end.Add(-30*time.Minute))),
			exercise("Bench Press", set(100, 10, end.Add(-20*time.Minute))),
		))
	}
	end := weekOf(0).Add(18 * time.Hour)
	sessions = append(sessions, session(end,
		exercise("Biceps Curl", set(30, 10, end.Add(-30*time.Minute))),
		exercise("Bench Press", set(100, 10, end.Add(-20*time.Minute))),
	))
	return sessions
}

// TestJunkVolumeFlagsLightSet replays the canonical scenario: 8 weeks of
// 10-rep sets at 50kg, then a 30kg set in the same rep bucket. The light set
// must be flagged (30 < 0.7×50) and appear in the breakdown with count 1.
func TestJunkVolumeFlagsLightSet(t *testing.T) {
	p := Aggregate(junkHistory(), testClassifier, models.RangeMonth, testNow)
	deload := DetectDeloadWeeks(p.Weeks, p.TonnageByWeek)
	if deload[weekOf(0)] {
		t.Fatal("test setup: current week must not be a deload week")
	}

	res := p.ClassifyJunkVolume(deload)
	if res.TotalFlagged != 1 {
		t.Fatalf("flagged = %d, want 1", res.TotalFlagged)
	}
	if got := res.ByExercise["biceps curl"]; got != 1 {
		t.Errorf("breakdown[biceps curl] = %d, want 1 (have %v)", got, res.ByExercise)
	}
}

// TestJunkVolumeExcludesDeloadWeeks verifies sets in a detected deload week
// are never flagged even when they are far below the rolling median.
func TestJunkVolumeExcludesDeloadWeeks(t *testing.T) {
	p := Aggregate(junkHistory(), testClassifier, models.RangeMonth, testNow)
	deload := map[time.Time]bool{weekOf(0): true}

	res := p.ClassifyJunkVolume(deload)
	if res.TotalFlagged != 0 {
		t.Errorf("flagged = %d, want 0 in a deload week", res.TotalFlagged)
	}
}

// TestJunkVolumeExcludesPaddingWeeks verifies sets outside the non-padded
// display range are never flagged. The light set sits 6 weeks back, inside
// the padded window but before the one-week display range begins.
func TestJunkVolumeExcludesPaddingWeeks(t *testing.T) {
	var sessions []models.Session
	for ago := 14; ago >= 7; ago-- {
		end := weekOf(ago).Add(18 * time.Hour)
		sessions = append(sessions, session(end,
			exercise("Biceps Curl", set(50, 10, end.Add(-30*time.Minute))),
		))
	}
	end := weekOf(6).Add(18 * time.Hour)
	sessions = append(sessions, session(end,
		exercise("Biceps Curl", set(30, 10, end.Add(-30*time.Minute))),
	))

	p := Aggregate(sessions, testClassifier, models.RangeWeek, testNow)
	res := p.ClassifyJunkVolume(map[time.Time]bool{})
	if res.TotalFlagged != 0 {
		t.Errorf("flagged = %d, want 0 outside the display range", res.TotalFlagged)
	}
}

// TestJunkVolumeNeedsHistory verifies a set is never flagged when its bucket
// has no rolling median: the set is judged only against preceding weeks,
// never against itself.
func TestJunkVolumeNeedsHistory(t *testing.T) {
	end := weekOf(0).Add(18 * time.Hour)
	p := Aggregate([]models.Session{
		session(end,
			exercise("Biceps Curl",
				set(50, 10, end.Add(-40*time.Minute)),
				set(10, 10, end.Add(-30*time.Minute)), // light, but no prior weeks
			),
		),
	}, testClassifier, models.RangeMonth, testNow)

	res := p.ClassifyJunkVolume(map[time.Time]bool{})
	if res.TotalFlagged != 0 {
		t.Errorf("flagged = %d, want 0 without prior-week history", res.TotalFlagged)
	}
}

// TestJunkVolumeDifferentBucketNotCompared verifies medians are kept per rep
// bucket: a light 5-rep set is not judged against 10-rep history.
func TestJunkVolumeDifferentBucketNotCompared(t *testing.T) {
	var sessions []models.Session
	for ago := 4; ago >= 1; ago-- {
		end := weekOf(ago).Add(18 * time.Hour)
		sessions = append(sessions, session(end,
			exercise("Biceps Curl", set(50, 10, end.Add(-30*time.Minute))),
		))
	}
	end := weekOf(0).Add(18 * time.Hour)
	sessions = append(sessions, session(end,
		exercise("Biceps Curl", set(30, 5, end.Add(-30*time.Minute))),
	))

	p := Aggregate(sessions, testClassifier, models.RangeMonth, testNow)
	res := p.ClassifyJunkVolume(map[time.Time]bool{})
	if res.TotalFlagged != 0 {
		t.Errorf("flagged = %d, want 0 across rep buckets", res.TotalFlagged)
	}
}

// TestRollingMedianWindow verifies the median draws from at most 8 preceding
// weeks.
func TestRollingMedianWindow(t *testing.T) {
	// Weeks 12..9 at 200kg are beyond the 8-week lookback from week 0;
	// weeks 8..1 at 50kg are inside it.
	var sessions []models.Session
	for ago := 12; ago >= 9; ago-- {
		end := weekOf(ago).Add(18 * time.Hour)
		sessions = append(sessions, session(end,
			exercise("Biceps Curl", set(200, 10, end.Add(-30*time.Minute))),
		))
	}
	for ago := 8; ago >= 1; ago-- {
		end := weekOf(ago).Add(18 * time.Hour)
		sessions = append(sessions, session(end,
			exercise("Biceps Curl", set(50, 10, end.Add(-30*time.Minute))),
		))
	}

	p := Aggregate(sessions, testClassifier, models.RangeAllTime, testNow)
	key := exerciseBucketKey{exercise: "biceps curl", bucket: Bucket6to10}
	if got := p.rollingMedian(key, weekOf(0)); got != 50 {
		t.Errorf("rolling median = %v, want 50 (200kg weeks are outside the window)", got)
	}
}

// TestMedian verifies odd, even, and empty inputs.
func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"odd", []float64{3, 1, 2}, 2},
		{"even", []float64{4, 1, 3, 2}, 2.5},
		{"single", []float64{7}, 7},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := median(tt.values); got != tt.want {
				t.Errorf("median(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}
