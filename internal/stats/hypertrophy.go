package stats

import (
	"fmt"
	"sort"
	"time"
)

// buildHypertrophy assembles the growth-volume dashboard: hard sets, tonnage,
// exercise variety, rep-range spread, and the junk-volume insight.
func (b *builder) buildHypertrophy() {
	p := b.p

	hardSetsBase := b.card(MetricHardSets, "Growth sets", fmt.Sprintf("%.0f this range", p.SumOver(p.HardSetsByWeek)), p.HardSetsByWeek, defaultHardSetFloor)
	tonnageBase := b.card(MetricTonnage, "Total work", formatTonnage(p.SumOver(p.TonnageByWeek), b.req.Unit), p.TonnageByWeek, 0)

	variety := b.varietySeriesMap()
	varietyBase := b.card(MetricVariety, "Exercise variety",
		fmt.Sprintf("%.0f movements", varietyLatest(variety, p.DisplayWeeks())), variety, 0)

	b.section(MetricHardSets, "Weekly hard sets", p.HardSetsByWeek, hardSetsBase,
		b.topRows(p.HardSetsByExercise, 5, setsDisplay))
	b.section(MetricTonnage, "Weekly tonnage", p.TonnageByWeek, tonnageBase,
		b.repSpreadRows())
	b.section(MetricVariety, "Exercise variety", variety, varietyBase, nil)

	// Junk-volume insight: flagged sets with their per-exercise breakdown.
	junkRows := b.junkRows()
	b.res.Details[MetricJunkVolume] = MetricDetail{
		MetricID:  MetricJunkVolume,
		Title:     "Junk volume",
		Baseline:  BaselineResult{Origin: OriginDefault},
		Breakdown: junkRows,
	}
	if b.junk.TotalFlagged > 0 {
		b.alert("junk_volume", "info",
			fmt.Sprintf("%d sets were well below your usual loads for their rep range — they may be too light to drive growth", b.junk.TotalFlagged))
	}

	// Below minimum growth volume: the latest week's hard sets under the
	// hypertrophy floor.
	latest := p.HardSetsByWeek[b.latestWeek()]
	if latest < defaultHardSetFloor {
		b.alert("low_growth_volume", "warning",
			fmt.Sprintf("Only %.0f hard sets this week — below the %d-set growth minimum", latest, defaultHardSetFloor))
	}

	b.balanceAlert("push_pull_imbalance", "Push:pull",
		balanceRatio(p.SumOver(p.PushSets), p.SumOver(p.PullSets)))
}

// varietySeriesMap counts distinct exercises per week across all muscle
// groups.
func (b *builder) varietySeriesMap() map[time.Time]float64 {
	out := make(map[time.Time]float64, len(b.p.Variety))
	for w, perMuscle := range b.p.Variety {
		distinct := make(map[string]struct{})
		for _, ids := range perMuscle {
			for id := range ids {
				distinct[id] = struct{}{}
			}
		}
		if len(distinct) > 0 {
			out[w] = float64(len(distinct))
		}
	}
	return out
}

func varietyLatest(variety map[time.Time]float64, weeks []time.Time) float64 {
	if len(weeks) == 0 {
		return 0
	}
	return variety[weeks[len(weeks)-1]]
}

// junkRows orders the junk-volume breakdown by flagged-set count.
func (b *builder) junkRows() []BreakdownRow {
	type kv struct {
		id string
		n  int
	}
	pairs := make([]kv, 0, len(b.junk.ByExercise))
	for id, n := range b.junk.ByExercise {
		pairs = append(pairs, kv{id, n})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].n != pairs[j].n {
			return pairs[i].n > pairs[j].n
		}
		return pairs[i].id < pairs[j].id
	})
	rows := make([]BreakdownRow, 0, len(pairs))
	for _, kv := range pairs {
		name := b.p.ExerciseNames[kv.id]
		if name == "" {
			name = kv.id
		}
		rows = append(rows, BreakdownRow{
			Label:   name,
			Value:   float64(kv.n),
			Display: fmt.Sprintf("%d flagged", kv.n),
		})
	}
	return rows
}
