package stats

import (
	"testing"
	"time"

	"github.com/meltforce/repwise/internal/models"
)

// trainingBlock builds four weeks of mixed push/pull/lower sessions, enough
// history for every mode assembler to produce cards and sections.
func trainingBlock() []models.Session {
	var sessions []models.Session
	for ago := 3; ago >= 0; ago-- {
		end := weekOf(ago).Add(18 * time.Hour)
		lower := end.Add(24 * time.Hour)
		sessions = append(sessions,
			session(end,
				exercise("Bench Press",
					set(100, 8, end.Add(-50*time.Minute)),
					set(100, 8, end.Add(-45*time.Minute)),
				),
				exercise("Barbell Row",
					set(80, 8, end.Add(-30*time.Minute)),
					set(80, 8, end.Add(-25*time.Minute)),
				),
			),
			session(lower,
				exercise("Squat",
					set(140, 6, lower.Add(-40*time.Minute)),
				),
				exercise("Deadlift",
					set(180, 5, lower.Add(-20*time.Minute)),
				),
			),
		)
	}
	return sessions
}

func testRequest(mode models.Mode) Request {
	return Request{
		Mode:   mode,
		Range:  models.RangeMonth,
		Filter: models.FilterAll,
		Unit:   models.UnitKg,
		Now:    testNow,
	}
}

// TestBuildDashboardModes verifies each mode assembles a complete envelope:
// cards, a five-entry minimum strip, all ten muscle groups, sections that
// also appear in the detail lookup, and mode-appropriate lead metrics.
func TestBuildDashboardModes(t *testing.T) {
	sessions := trainingBlock()
	tests := []struct {
		mode      models.Mode
		leadCard  string
		wantInDet string
	}{
		{models.ModeStrength, MetricHeavyLoad, MetricTopSet},
		{models.ModeHypertrophy, MetricHardSets, MetricJunkVolume},
		{models.ModeAthletic, MetricDensity, MetricQuadHinge},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			res := BuildDashboard(sessions, testClassifier, testRequest(tt.mode))
			if res.Mode != tt.mode {
				t.Errorf("mode = %q, want %q", res.Mode, tt.mode)
			}
			if len(res.Cards) == 0 {
				t.Fatal("no summary cards")
			}
			if res.Cards[0].MetricID != tt.leadCard {
				t.Errorf("lead card = %q, want %q", res.Cards[0].MetricID, tt.leadCard)
			}
			if len(res.MinimumStrip) != 5 {
				t.Errorf("minimum strip has %d entries, want 5", len(res.MinimumStrip))
			}
			if len(res.Muscles) != 10 {
				t.Errorf("muscle overview has %d groups, want 10", len(res.Muscles))
			}
			if _, ok := res.Details[tt.wantInDet]; !ok {
				t.Errorf("details missing %q", tt.wantInDet)
			}
			for _, s := range res.Sections {
				if _, ok := res.Details[s.MetricID]; !ok {
					t.Errorf("section %q not registered in details", s.MetricID)
				}
			}
		})
	}
}

// TestBuildDashboardEmptySnapshot verifies the envelope is still complete
// with no sessions at all: dense zero series, all muscle groups present.
func TestBuildDashboardEmptySnapshot(t *testing.T) {
	res := BuildDashboard(nil, testClassifier, testRequest(models.ModeStrength))
	if len(res.MinimumStrip) != 5 {
		t.Errorf("minimum strip has %d entries, want 5", len(res.MinimumStrip))
	}
	if len(res.Muscles) != 10 {
		t.Errorf("muscle overview has %d groups, want 10", len(res.Muscles))
	}
	for _, m := range res.Muscles {
		if m.CoveredLatest {
			t.Errorf("muscle %q covered with no sessions", m.Muscle)
		}
	}
}

// TestFilterPinned verifies the pinned filter keeps only pinned exercises
// while leaving session end times in place.
func TestFilterPinned(t *testing.T) {
	end := weekOf(0).Add(18 * time.Hour)
	sessions := []models.Session{
		session(end,
			exercise("Bench Press", set(100, 8, end.Add(-30*time.Minute))),
			exercise("Squat", set(140, 6, end.Add(-10*time.Minute))),
		),
	}
	got := filterPinned(sessions, []string{"Bench  Press"})
	if len(got) != 1 {
		t.Fatalf("got %d sessions, want 1", len(got))
	}
	if len(got[0].Exercises) != 1 || got[0].Exercises[0].Name != "Bench Press" {
		t.Errorf("kept exercises = %v, want only Bench Press", got[0].Exercises)
	}
	if got[0].EndedAt == nil {
		t.Error("end time dropped by filter")
	}
}

// TestBalanceRatio verifies the zero-denominator conventions alongside the
// normal division.
func TestBalanceRatio(t *testing.T) {
	tests := []struct {
		name     string
		num, den float64
		want     float64
	}{
		{"both zero is neutral", 0, 0, 1.0},
		{"zero denominator is the sentinel", 12, 0, 1.5},
		{"normal division", 12, 10, 1.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := balanceRatio(tt.num, tt.den); got != tt.want {
				t.Errorf("balanceRatio(%v, %v) = %v, want %v", tt.num, tt.den, got, tt.want)
			}
		})
	}
}

// TestCoverageEitherSignal verifies a muscle counts as covered when the
// hard-set floor is met or when it was trained on two distinct days,
// whichever comes first.
func TestCoverageEitherSignal(t *testing.T) {
	end := weekOf(0).Add(10 * time.Hour)

	// Three chest hard sets on a single day: below the floor of 10, one day.
	oneDay := []models.Session{
		session(end,
			exercise("Bench Press",
				set(100, 8, end.Add(-30*time.Minute)),
				set(100, 8, end.Add(-25*time.Minute)),
				set(100, 8, end.Add(-20*time.Minute)),
			),
		),
	}
	res := BuildDashboard(oneDay, testClassifier, testRequest(models.ModeStrength))
	if chestCovered(t, res) {
		t.Error("three sets on one day should not cover chest")
	}

	// The same three sets split across two days: covered by the day rule.
	end2 := end.Add(24 * time.Hour)
	twoDays := []models.Session{
		session(end,
			exercise("Bench Press",
				set(100, 8, end.Add(-30*time.Minute)),
				set(100, 8, end.Add(-25*time.Minute)),
			),
		),
		session(end2,
			exercise("Bench Press", set(100, 8, end2.Add(-30*time.Minute))),
		),
	}
	res = BuildDashboard(twoDays, testClassifier, testRequest(models.ModeStrength))
	if !chestCovered(t, res) {
		t.Error("two distinct training days should cover chest")
	}
}

func chestCovered(t *testing.T, res *StatsDashboardResult) bool {
	t.Helper()
	for _, m := range res.Muscles {
		if m.Muscle == "chest" {
			return m.CoveredLatest
		}
	}
	t.Fatal("chest missing from muscle overview")
	return false
}

// TestStagnant verifies the stagnation detector needs a full window, fires on
// flat-or-falling runs, and never fires on all-zero series.
func TestStagnant(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   bool
	}{
		{"rising", []float64{100, 100, 105, 110, 115}, false},
		{"flat run", []float64{100, 100, 100, 100, 100}, true},
		{"falling run", []float64{100, 95, 90, 85, 80}, true},
		{"late improvement", []float64{100, 95, 90, 85, 95}, false},
		{"too short", []float64{100, 100, 100}, false},
		{"all zero", []float64{0, 0, 0, 0, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := make([]WeeklyMetricValue, len(tt.values))
			for i, v := range tt.values {
				series[i] = WeeklyMetricValue{WeekStart: weekOf(len(tt.values) - 1 - i), Value: v}
			}
			if got := stagnant(series); got != tt.want {
				t.Errorf("stagnant(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

// TestStatusSentence covers the baseline status phrasing branches.
func TestStatusSentence(t *testing.T) {
	neg, pos := -25.0, 12.0
	tests := []struct {
		name string
		base BaselineResult
		want string
	}{
		{"no baseline", BaselineResult{}, "No baseline yet — keep logging"},
		{"below floor", BaselineResult{Floor: 100, DeltaPct: &neg}, "25% below your usual floor"},
		{"streak", BaselineResult{Floor: 100, StreakWeeks: 4}, "4 weeks at or above baseline"},
		{"above floor", BaselineResult{Floor: 100, DeltaPct: &pos}, "12% above your usual floor"},
		{"holding", BaselineResult{Floor: 100}, "Holding at baseline"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusSentence(tt.base); got != tt.want {
				t.Errorf("status = %q, want %q", got, tt.want)
			}
		})
	}
}
