package stats

import (
	"fmt"
	"time"
)

// buildAthletic assembles the conditioning dashboard: training pace, rest
// discipline, and structural balance between movement patterns.
func (b *builder) buildAthletic() {
	p := b.p

	density := AverageSamplesMap(p.DensitySamples)
	rest := AverageSamplesMap(p.RestSamples)

	paceBase := b.card(MetricDensity, "Training pace", formatPace(b.averagePace(), b.req.Unit), density, 0)

	avgRest := b.averageOverDisplay(rest)
	restBase := b.card(MetricRestInterval, "Rest between sets", formatRest(avgRest), rest, 0)

	quadHinge := balanceRatio(p.SumOver(p.QuadSets), p.SumOver(p.HingeSets))
	b.res.Cards = append(b.res.Cards, SummaryCard{
		MetricID:     MetricQuadHinge,
		Title:        "Quad:hinge balance",
		PrimaryValue: formatRatio(quadHinge),
		Trend:        TrendFlat,
		Status:       balanceStatus(quadHinge),
	})

	b.section(MetricDensity, "Work density", density, paceBase, b.repSpreadRows())
	b.section(MetricRestInterval, "Rest intervals", rest, restBase, nil)

	quadHingeByWeek := b.ratioSeriesMap(p.QuadSets, p.HingeSets)
	b.res.Details[MetricQuadHinge] = MetricDetail{
		MetricID: MetricQuadHinge,
		Title:    "Quad:hinge balance",
		Series:   p.Series(quadHingeByWeek),
		Baseline: BaselineResult{Origin: OriginDefault},
	}

	b.balanceAlert("quad_hinge_imbalance", "Quad:hinge", quadHinge)
	b.balanceAlert("push_pull_imbalance", "Push:pull",
		balanceRatio(p.SumOver(p.PushSets), p.SumOver(p.PullSets)))

	// Pace below the established floor means sessions have gone noticeably
	// slower than usual.
	if paceBase.Floor > 0 {
		if latest := density[b.latestWeek()]; latest > 0 && latest < paceBase.Floor {
			b.alert("pace_drop", "info",
				fmt.Sprintf("Training pace %s is below your usual floor of %s",
					formatPace(latest, b.req.Unit), formatPace(paceBase.Floor, b.req.Unit)))
		}
	}
}

// averageOverDisplay averages a weekly map over display weeks with activity.
func (b *builder) averageOverDisplay(byWeek map[time.Time]float64) float64 {
	var sum float64
	var n int
	for _, w := range b.p.DisplayWeeks() {
		if v := byWeek[w]; v > 0 {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// ratioSeriesMap computes a per-week balance ratio between two tallies.
func (b *builder) ratioSeriesMap(num, den map[time.Time]float64) map[time.Time]float64 {
	out := make(map[time.Time]float64, len(b.p.Weeks))
	for _, w := range b.p.Weeks {
		if num[w] == 0 && den[w] == 0 {
			continue
		}
		out[w] = balanceRatio(num[w], den[w])
	}
	return out
}

func balanceStatus(ratio float64) string {
	switch {
	case ratio < balanceLowerBound:
		return "Hinge-dominant — add quad work"
	case ratio > balanceUpperBound:
		return "Quad-dominant — add hinge work"
	default:
		return "Movement patterns in balance"
	}
}
