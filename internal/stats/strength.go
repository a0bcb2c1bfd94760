package stats

import (
	"fmt"
	"time"
)

// buildStrength assembles the strength dashboard: heavy-load and overload
// progress, tonnage, and stagnation/imbalance alerts.
func (b *builder) buildStrength() {
	p := b.p

	heavyLoad := ExerciseMaxSeriesMap(p.HeavyLoadMax)
	topSet := ExerciseMaxSeriesMap(p.TopSet)

	// Heaviest lift across the display range.
	var heaviest float64
	for _, w := range p.DisplayWeeks() {
		if v := heavyLoad[w]; v > heaviest {
			heaviest = v
		}
	}

	heavyBase := b.card(MetricHeavyLoad, "Heaviest lift", formatWeight(heaviest, b.req.Unit), heavyLoad, 0)
	overloadBase := b.card(MetricOverloadEvents, "New records", fmt.Sprintf("%.0f this range", p.SumOver(p.OverloadEvents)), p.OverloadEvents, defaultOverloadFloor)
	tonnageBase := b.card(MetricTonnage, "Total work", formatTonnage(p.SumOver(p.TonnageByWeek), b.req.Unit), p.TonnageByWeek, 0)

	weight := func(v float64) string { return formatWeight(v, b.req.Unit) }
	records := func(v float64) string { return fmt.Sprintf("%.0f records", v) }
	volume := func(v float64) string { return formatTonnage(v, b.req.Unit) }

	b.section(MetricHeavyLoad, "Heavy-load max", heavyLoad, heavyBase,
		b.topRows(maxPerExercise(p.HeavyLoadMax, p.DisplayWeeks()), 5, weight))
	b.section(MetricOverloadEvents, "Overload events", p.OverloadEvents, overloadBase,
		b.topRows(p.OverloadByExercise, 5, records))
	b.section(MetricTonnage, "Weekly tonnage", p.TonnageByWeek, tonnageBase,
		b.topRows(p.TonnageByExercise, 5, volume))

	topSetBase := Baseline(p.PaddedSeries(topSet), 0)
	b.res.Details[MetricTopSet] = MetricDetail{
		MetricID: MetricTopSet,
		Title:    "Top set score",
		Series:   p.Series(topSet),
		Baseline: topSetBase,
	}

	// Stagnation: the heavy-load series has not made a week-over-week gain
	// in the latest window.
	if stagnant(p.Series(heavyLoad)) {
		b.alert("strength_stagnant", "warning",
			fmt.Sprintf("Heaviest loads have not moved up in %d weeks — consider changing rep ranges or adding volume", stagnationWindow))
	}

	b.balanceAlert("push_pull_imbalance", "Push:pull",
		balanceRatio(p.SumOver(p.PushSets), p.SumOver(p.PullSets)))

	if b.deload[b.latestWeek()] {
		b.alert("deload_week", "info", "This week looks like a deload — reduced tonnage versus your trailing average")
	}
}

// maxPerExercise reduces per-week per-exercise maxima to each exercise's best
// across the given weeks.
func maxPerExercise(m map[time.Time]map[string]float64, weeks []time.Time) map[string]float64 {
	out := make(map[string]float64)
	for _, w := range weeks {
		for id, v := range m[w] {
			if v > out[id] {
				out[id] = v
			}
		}
	}
	return out
}
