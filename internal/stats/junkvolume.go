package stats

import (
	"sort"
	"time"
)

// Junk-volume constants: a hard set is "too light" when its load falls below
// this fraction of the lifter's own rolling-median load for the same exercise
// and rep bucket, drawn from up to the trailing 8 weeks.
const (
	junkMedianLookbackWeeks = 8
	junkLoadFraction        = 0.70
)

// JunkVolumeResult is the classifier's output: how many qualifying sets were
// flagged and which exercises they belong to.
type JunkVolumeResult struct {
	TotalFlagged int            `json:"total_flagged"`
	ByExercise   map[string]int `json:"by_exercise"`
}

// ClassifyJunkVolume flags hard sets whose load is well below the rolling
// median of the same exercise and rep bucket over the preceding 8 weeks. The
// current week is excluded from its own median so a set is never judged
// against itself. Sets in deload weeks and sets outside the display range are
// never flagged.
func (p *ProcessedData) ClassifyJunkVolume(deloadWeeks map[time.Time]bool) JunkVolumeResult {
	res := JunkVolumeResult{ByExercise: make(map[string]int)}

	// Median cache: the same (exercise, bucket, week) triple repeats for
	// every candidate set in that week.
	type medianKey struct {
		key  exerciseBucketKey
		week time.Time
	}
	medians := make(map[medianKey]float64)

	for _, c := range p.junkCandidates {
		if deloadWeeks[c.week] || !p.inDisplay(c.week) {
			continue
		}
		key := exerciseBucketKey{exercise: c.exercise, bucket: c.bucket}
		mk := medianKey{key: key, week: c.week}
		med, ok := medians[mk]
		if !ok {
			med = p.rollingMedian(key, c.week)
			medians[mk] = med
		}
		if med > 0 && c.load < med*junkLoadFraction {
			res.TotalFlagged++
			res.ByExercise[c.exercise]++
		}
	}
	return res
}

// rollingMedian computes the median load for an exercise/bucket over up to 8
// weeks strictly preceding the given week. Zero when no history exists.
func (p *ProcessedData) rollingMedian(key exerciseBucketKey, week time.Time) float64 {
	byWeek := p.loadsByBucket[key]
	if byWeek == nil {
		return 0
	}
	idx, ok := p.weekIndex[week]
	if !ok {
		return 0
	}
	from := idx - junkMedianLookbackWeeks
	if from < 0 {
		from = 0
	}
	var loads []float64
	for i := from; i < idx; i++ {
		loads = append(loads, byWeek[p.Weeks[i]]...)
	}
	return median(loads)
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
