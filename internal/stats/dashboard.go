package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/meltforce/repwise/internal/models"
	"github.com/meltforce/repwise/internal/taxonomy"
)

// Mode default floors, applied while a series is too short to derive its own
// baseline.
const (
	defaultOverloadFloor = 3
	defaultHardSetFloor  = 8
)

// Balance-ratio bounds and sentinels. A ratio with a zero denominator cannot
// be computed; the sentinel signals extreme imbalance without a division
// error, and 0/0 is neutral.
const (
	balanceLowerBound    = 0.7
	balanceUpperBound    = 1.3
	balanceSentinelRatio = 1.5
	balanceNeutralRatio  = 1.0
)

// Metric identifiers used in cards, sections, and the detail lookup.
const (
	MetricTonnage        = "tonnage"
	MetricHardSets       = "hard_sets"
	MetricOverloadEvents = "overload_events"
	MetricHeavyLoad      = "heavy_load"
	MetricTopSet         = "top_set"
	MetricRestInterval   = "rest_interval"
	MetricDensity        = "density"
	MetricPushPull       = "push_pull"
	MetricQuadHinge      = "quad_hinge"
	MetricRepSpread      = "rep_distribution"
	MetricCoverage       = "coverage"
	MetricVariety        = "variety"
	MetricJunkVolume     = "junk_volume"
)

// muscleTargets is the fixed weekly hard-set floor per muscle group.
var muscleTargets = map[taxonomy.MuscleGroup]float64{
	taxonomy.Chest:      10,
	taxonomy.Back:       10,
	taxonomy.Quads:      10,
	taxonomy.Shoulders:  8,
	taxonomy.Hamstrings: 8,
	taxonomy.Glutes:     8,
	taxonomy.Biceps:     6,
	taxonomy.Triceps:    6,
	taxonomy.Calves:     6,
	taxonomy.Abs:        6,
}

// muscleOrder fixes the display order of the per-muscle overview.
var muscleOrder = []taxonomy.MuscleGroup{
	taxonomy.Chest, taxonomy.Back, taxonomy.Shoulders,
	taxonomy.Biceps, taxonomy.Triceps,
	taxonomy.Quads, taxonomy.Hamstrings, taxonomy.Glutes,
	taxonomy.Calves, taxonomy.Abs,
}

// SummaryCard is one top-line metric with its formatted value and a
// baseline-derived status sentence.
type SummaryCard struct {
	MetricID     string `json:"metric_id"`
	Title        string `json:"title"`
	PrimaryValue string `json:"primary_value"`
	Trend        Trend  `json:"trend"`
	Status       string `json:"status"`
}

// StripMetric is one entry of the compact minimum strip.
type StripMetric struct {
	MetricID string `json:"metric_id"`
	Title    string `json:"title"`
	Value    string `json:"value"`
}

// BreakdownRow is one row of a detail table (top exercises, rep buckets).
type BreakdownRow struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// MetricDetail combines a series, its baseline, and a breakdown table.
type MetricDetail struct {
	MetricID  string              `json:"metric_id"`
	Title     string              `json:"title"`
	Series    []WeeklyMetricValue `json:"series"`
	Baseline  BaselineResult      `json:"baseline"`
	Breakdown []BreakdownRow      `json:"breakdown,omitempty"`
}

// Alert is a mode-specific heuristic finding.
type Alert struct {
	ID       string `json:"id"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// MuscleOverview is one muscle group's weekly hard-set series, target floor,
// and top contributing exercises.
type MuscleOverview struct {
	Muscle        taxonomy.MuscleGroup `json:"muscle"`
	Series        []WeeklyMetricValue  `json:"series"`
	TargetFloor   float64              `json:"target_floor"`
	CoveredLatest bool                 `json:"covered_latest"`
	TopExercises  []BreakdownRow       `json:"top_exercises,omitempty"`
}

// StatsDashboardResult is the full output envelope handed to the presentation
// layer.
type StatsDashboardResult struct {
	Mode         models.Mode             `json:"mode"`
	Range        models.DisplayRange     `json:"range"`
	Filter       models.ExerciseFilter   `json:"filter"`
	Cards        []SummaryCard           `json:"cards"`
	MinimumStrip []StripMetric           `json:"minimum_strip"`
	Sections     []MetricDetail          `json:"sections"`
	Alerts       []Alert                 `json:"alerts"`
	Muscles      []MuscleOverview        `json:"muscles"`
	Details      map[string]MetricDetail `json:"details"`
}

// Request carries everything a dashboard build needs besides the snapshot.
type Request struct {
	Mode   models.Mode
	Range  models.DisplayRange
	Filter models.ExerciseFilter
	Unit   models.WeightUnit
	Pinned []string
	Now    time.Time
}

// BuildDashboard runs the whole pipeline: snapshot filter, aggregation,
// deload detection, junk-volume classification, and the mode assembler.
// Pure and synchronous; safe to call concurrently over the same snapshot.
func BuildDashboard(sessions []models.Session, cls Classifier, req Request) *StatsDashboardResult {
	if req.Filter == models.FilterPinned {
		sessions = filterPinned(sessions, req.Pinned)
	}
	p := Aggregate(sessions, cls, req.Range, req.Now)
	deload := DetectDeloadWeeks(p.Weeks, p.TonnageByWeek)
	junk := p.ClassifyJunkVolume(deload)

	b := &builder{
		p:      p,
		deload: deload,
		junk:   junk,
		req:    req,
		res: &StatsDashboardResult{
			Mode:    req.Mode,
			Range:   req.Range,
			Filter:  req.Filter,
			Details: make(map[string]MetricDetail),
		},
	}

	switch req.Mode {
	case models.ModeHypertrophy:
		b.buildHypertrophy()
	case models.ModeAthletic:
		b.buildAthletic()
	default:
		b.buildStrength()
	}

	b.res.MinimumStrip = b.minimumStrip()
	b.res.Muscles = b.muscleOverviews()
	return b.res
}

// filterPinned keeps only exercises whose normalized name is pinned.
// Sessions left without exercises stay in the snapshot; they still carry end
// times but contribute no sets.
func filterPinned(sessions []models.Session, pinned []string) []models.Session {
	want := make(map[string]struct{}, len(pinned))
	for _, name := range pinned {
		want[taxonomy.Normalize(name)] = struct{}{}
	}
	out := make([]models.Session, len(sessions))
	for i := range sessions {
		s := sessions[i]
		var kept []models.Exercise
		for _, ex := range s.Exercises {
			if _, ok := want[taxonomy.Normalize(ex.Name)]; ok {
				kept = append(kept, ex)
			}
		}
		s.Exercises = kept
		out[i] = s
	}
	return out
}

// builder accumulates one mode's dashboard.
type builder struct {
	p      *ProcessedData
	deload map[time.Time]bool
	junk   JunkVolumeResult
	req    Request
	res    *StatsDashboardResult
}

// card appends a summary card for a weekly map: baseline over the padded
// window, trend over the display series, status from the baseline.
func (b *builder) card(metricID, title, primary string, byWeek map[time.Time]float64, defaultFloor float64) BaselineResult {
	base := Baseline(b.p.PaddedSeries(byWeek), defaultFloor)
	display := b.p.Series(byWeek)
	current, previous := latestPair(display)
	b.res.Cards = append(b.res.Cards, SummaryCard{
		MetricID:     metricID,
		Title:        title,
		PrimaryValue: primary,
		Trend:        TrendOf(current, previous),
		Status:       statusSentence(base),
	})
	return base
}

// section appends a detail section and registers it in the detail lookup.
func (b *builder) section(metricID, title string, byWeek map[time.Time]float64, base BaselineResult, breakdown []BreakdownRow) {
	d := MetricDetail{
		MetricID:  metricID,
		Title:     title,
		Series:    b.p.Series(byWeek),
		Baseline:  base,
		Breakdown: breakdown,
	}
	b.res.Sections = append(b.res.Sections, d)
	b.res.Details[metricID] = d
}

func (b *builder) alert(id, severity, message string) {
	b.res.Alerts = append(b.res.Alerts, Alert{ID: id, Severity: severity, Message: message})
}

// statusSentence renders a baseline into the card's one-line status.
func statusSentence(base BaselineResult) string {
	if base.Floor <= 0 {
		return "No baseline yet — keep logging"
	}
	if base.DeltaPct != nil && *base.DeltaPct < 0 {
		return fmt.Sprintf("%.0f%% below your usual floor", -*base.DeltaPct)
	}
	if base.StreakWeeks > 1 {
		return fmt.Sprintf("%d weeks at or above baseline", base.StreakWeeks)
	}
	if base.DeltaPct != nil && *base.DeltaPct > 0 {
		return fmt.Sprintf("%.0f%% above your usual floor", *base.DeltaPct)
	}
	return "Holding at baseline"
}

// balanceRatio divides two set counts with the documented zero conventions:
// 0/0 is neutral, n/0 is the fixed imbalance sentinel.
func balanceRatio(numerator, denominator float64) float64 {
	if denominator == 0 {
		if numerator == 0 {
			return balanceNeutralRatio
		}
		return balanceSentinelRatio
	}
	return numerator / denominator
}

// covered reports whether a muscle group counts as covered for a week:
// hard-set floor met, or trained on at least two distinct days. Either
// signal is sufficient.
func (b *builder) covered(week time.Time, mg taxonomy.MuscleGroup) bool {
	if b.p.MuscleHardSets[week][mg] >= muscleTargets[mg] {
		return true
	}
	return len(b.p.TouchDays[week][mg]) >= 2
}

// coverageCount counts covered muscle groups for a week.
func (b *builder) coverageCount(week time.Time) int {
	var n int
	for _, mg := range muscleOrder {
		if b.covered(week, mg) {
			n++
		}
	}
	return n
}

// latestWeek returns the most recent display week (always present: the
// display window ends at the current week).
func (b *builder) latestWeek() time.Time {
	weeks := b.p.DisplayWeeks()
	if len(weeks) == 0 {
		return WeekStart(b.req.Now)
	}
	return weeks[len(weeks)-1]
}

// minimumStrip builds the compact metrics shared across modes.
func (b *builder) minimumStrip() []StripMetric {
	p := b.p
	latest := b.latestWeek()
	pushPull := balanceRatio(p.SumOver(p.PushSets), p.SumOver(p.PullSets))
	pace := b.averagePace()
	return []StripMetric{
		{MetricID: MetricTonnage, Title: "Total work", Value: formatTonnage(p.SumOver(p.TonnageByWeek), b.req.Unit)},
		{MetricID: MetricOverloadEvents, Title: "New records", Value: fmt.Sprintf("%.0f", p.SumOver(p.OverloadEvents))},
		{MetricID: MetricCoverage, Title: "Muscles covered", Value: fmt.Sprintf("%d/%d", b.coverageCount(latest), len(muscleOrder))},
		{MetricID: MetricPushPull, Title: "Push:pull", Value: formatRatio(pushPull)},
		{MetricID: MetricDensity, Title: "Training pace", Value: formatPace(pace, b.req.Unit)},
	}
}

// averagePace averages the weekly work-density means over display weeks that
// have sessions. Zero when no week does.
func (b *builder) averagePace() float64 {
	weekly := AverageSamplesMap(b.p.DensitySamples)
	var sum float64
	var n int
	for _, w := range b.p.DisplayWeeks() {
		if v := weekly[w]; v > 0 {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// muscleOverviews builds the per-muscle cards: weekly hard-set series against
// the fixed target floor, plus each muscle's top contributing exercises.
func (b *builder) muscleOverviews() []MuscleOverview {
	p := b.p
	latest := b.latestWeek()
	out := make([]MuscleOverview, 0, len(muscleOrder))
	for _, mg := range muscleOrder {
		out = append(out, MuscleOverview{
			Muscle:        mg,
			Series:        p.Series(p.MuscleSeriesMap(mg)),
			TargetFloor:   muscleTargets[mg],
			CoveredLatest: b.covered(latest, mg),
			TopExercises:  b.topRows(p.MuscleExerciseSets[mg], 3, setsDisplay),
		})
	}
	return out
}

// setsDisplay renders a set count for breakdown rows.
func setsDisplay(v float64) string { return fmt.Sprintf("%.0f sets", v) }

// topRows sorts a per-exercise total map descending and keeps the top n.
func (b *builder) topRows(totals map[string]float64, n int, display func(float64) string) []BreakdownRow {
	type kv struct {
		id string
		v  float64
	}
	pairs := make([]kv, 0, len(totals))
	for id, v := range totals {
		pairs = append(pairs, kv{id, v})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].v != pairs[j].v {
			return pairs[i].v > pairs[j].v
		}
		return pairs[i].id < pairs[j].id
	})
	if len(pairs) > n {
		pairs = pairs[:n]
	}
	rows := make([]BreakdownRow, 0, len(pairs))
	for _, kv := range pairs {
		name := b.p.ExerciseNames[kv.id]
		if name == "" {
			name = kv.id
		}
		rows = append(rows, BreakdownRow{Label: name, Value: kv.v, Display: display(kv.v)})
	}
	return rows
}

// repSpreadRows renders the display-range rep histogram as a breakdown table.
func (b *builder) repSpreadRows() []BreakdownRow {
	totals := make(map[RepBucket]float64)
	for _, w := range b.p.DisplayWeeks() {
		for bucket, v := range b.p.RepHistogram[w] {
			totals[bucket] += v
		}
	}
	rows := make([]BreakdownRow, 0, len(RepBuckets))
	for _, bucket := range RepBuckets {
		rows = append(rows, BreakdownRow{
			Label:   string(bucket) + " reps",
			Value:   totals[bucket],
			Display: fmt.Sprintf("%.0f sets", totals[bucket]),
		})
	}
	return rows
}

// balanceAlert emits an imbalance alert when the ratio leaves the accepted
// band.
func (b *builder) balanceAlert(id, label string, ratio float64) {
	if ratio < balanceLowerBound || ratio > balanceUpperBound {
		b.alert(id, "warning", fmt.Sprintf("%s ratio %s is outside the %.1f–%.1f balance range", label, formatRatio(ratio), balanceLowerBound, balanceUpperBound))
	}
}

// stagnant reports whether the latest stagnationWindow points of a series
// never exceed the point before them. Needs enough history; shorter series
// suppress the alert rather than guessing.
const stagnationWindow = 4

func stagnant(series []WeeklyMetricValue) bool {
	if len(series) < stagnationWindow+1 {
		return false
	}
	start := len(series) - stagnationWindow
	anyActivity := false
	for i := start; i < len(series); i++ {
		if series[i].Value > series[i-1].Value {
			return false
		}
		if series[i].Value > 0 || series[i-1].Value > 0 {
			anyActivity = true
		}
	}
	return anyActivity
}
