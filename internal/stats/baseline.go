package stats

// Baseline derivation constants. The floor is considered derivable once this
// many weeks of the series carry activity; until then a caller default (when
// positive) stands in.
const (
	baselineMinActiveWeeks = 3
	baselineBandFraction   = 0.10
)

// BaselineOrigin records where a floor came from.
type BaselineOrigin string

const (
	OriginDerived BaselineOrigin = "derived"
	OriginUser    BaselineOrigin = "user"
	OriginDefault BaselineOrigin = "default"
)

// Band is a visual tolerance range around a floor. Not a hard threshold.
type Band struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// BaselineResult is the sustained-minimum analysis of one weekly series.
// A Floor of zero means "no baseline yet": DeltaPct is nil and the streak is
// zero.
type BaselineResult struct {
	Floor       float64        `json:"floor"`
	Band        *Band          `json:"band,omitempty"`
	Origin      BaselineOrigin `json:"origin"`
	StreakWeeks int            `json:"streak_weeks"`
	DeltaPct    *float64       `json:"delta_pct,omitempty"`
}

// Baseline computes the sustained-minimum floor of a weekly series, the
// streak of most-recent weeks holding at or above it, and the latest value's
// percent delta versus it. The series should include the padded lookback
// window; zero weeks are treated as inactivity, not as a sustained minimum
// of zero. defaultFloor (when positive) applies while history is too short
// to derive a floor.
func Baseline(series []WeeklyMetricValue, defaultFloor float64) BaselineResult {
	var active []float64
	for _, v := range series {
		if v.Value > 0 {
			active = append(active, v.Value)
		}
	}

	res := BaselineResult{Origin: OriginDefault}
	if len(active) >= baselineMinActiveWeeks {
		floor := active[0]
		for _, v := range active[1:] {
			if v < floor {
				floor = v
			}
		}
		res.Floor = floor
		res.Origin = OriginDerived
	} else if defaultFloor > 0 {
		res.Floor = defaultFloor
	}

	if res.Floor <= 0 {
		return res
	}

	res.Band = &Band{
		Lower: res.Floor * (1 - baselineBandFraction),
		Upper: res.Floor * (1 + baselineBandFraction),
	}

	// Streak: consecutive most-recent weeks meeting the floor. A single
	// sub-floor week resets it; no partial credit.
	for i := len(series) - 1; i >= 0; i-- {
		if series[i].Value < res.Floor {
			break
		}
		res.StreakWeeks++
	}

	if len(series) > 0 {
		delta := (series[len(series)-1].Value - res.Floor) / res.Floor * 100
		res.DeltaPct = &delta
	}
	return res
}

// Trend classifies week-over-week movement.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// TrendOf compares the latest value with the previous one. Ties are flat.
func TrendOf(current, previous float64) Trend {
	switch {
	case current > previous:
		return TrendUp
	case current < previous:
		return TrendDown
	default:
		return TrendFlat
	}
}

// latestPair returns the last and second-to-last values of a series, with
// zeros when the series is short.
func latestPair(series []WeeklyMetricValue) (current, previous float64) {
	if n := len(series); n > 0 {
		current = series[n-1].Value
		if n > 1 {
			previous = series[n-2].Value
		}
	}
	return current, previous
}
