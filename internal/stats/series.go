package stats

import (
	"time"

	"github.com/meltforce/repwise/internal/taxonomy"
)

// WeeklyMetricValue is one point of a dense weekly series.
type WeeklyMetricValue struct {
	WeekStart time.Time `json:"week_start"`
	Value     float64   `json:"value"`
}

// DisplayWeeks returns the weeks belonging to the requested display range.
func (p *ProcessedData) DisplayWeeks() []time.Time {
	for i, w := range p.Weeks {
		if !w.Before(p.DisplayFrom) {
			return p.Weeks[i:]
		}
	}
	return nil
}

// seriesOver materializes a weekly map into a dense, zero-filled series over
// the given weeks.
func seriesOver(weeks []time.Time, byWeek map[time.Time]float64) []WeeklyMetricValue {
	out := make([]WeeklyMetricValue, 0, len(weeks))
	for _, w := range weeks {
		out = append(out, WeeklyMetricValue{WeekStart: w, Value: byWeek[w]})
	}
	return out
}

// Series returns the display-range series for a simple weekly map.
func (p *ProcessedData) Series(byWeek map[time.Time]float64) []WeeklyMetricValue {
	return seriesOver(p.DisplayWeeks(), byWeek)
}

// PaddedSeries returns the series over the full padded window, for baseline
// lookback.
func (p *ProcessedData) PaddedSeries(byWeek map[time.Time]float64) []WeeklyMetricValue {
	return seriesOver(p.Weeks, byWeek)
}

// MuscleSeriesMap flattens the per-muscle hard-set counts of one muscle into
// a plain weekly map.
func (p *ProcessedData) MuscleSeriesMap(mg taxonomy.MuscleGroup) map[time.Time]float64 {
	out := make(map[time.Time]float64, len(p.MuscleHardSets))
	for w, counts := range p.MuscleHardSets {
		if v := counts[mg]; v > 0 {
			out[w] = v
		}
	}
	return out
}

// ExerciseMaxSeriesMap reduces a per-exercise weekly maxima map to the
// per-week maximum across all exercises.
func ExerciseMaxSeriesMap(m map[time.Time]map[string]float64) map[time.Time]float64 {
	out := make(map[time.Time]float64, len(m))
	for w, perExercise := range m {
		var mx float64
		for _, v := range perExercise {
			if v > mx {
				mx = v
			}
		}
		out[w] = mx
	}
	return out
}

// AverageSamplesMap reduces per-week sample slices to per-week means.
func AverageSamplesMap(m map[time.Time][]float64) map[time.Time]float64 {
	out := make(map[time.Time]float64, len(m))
	for w, samples := range m {
		if len(samples) == 0 {
			continue
		}
		var sum float64
		for _, v := range samples {
			sum += v
		}
		out[w] = sum / float64(len(samples))
	}
	return out
}

// SumOver totals a weekly map across the display range.
func (p *ProcessedData) SumOver(byWeek map[time.Time]float64) float64 {
	var sum float64
	for _, w := range p.DisplayWeeks() {
		sum += byWeek[w]
	}
	return sum
}
