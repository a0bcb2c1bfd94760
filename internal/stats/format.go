package stats

import (
	"fmt"

	"github.com/meltforce/repwise/internal/models"
)

// lbPerKg converts stored kilograms to display pounds.
const lbPerKg = 2.2046226218

func toUnit(kg float64, unit models.WeightUnit) (float64, string) {
	if unit == models.UnitLb {
		return kg * lbPerKg, "lb"
	}
	return kg, "kg"
}

// formatWeight renders a single load, keeping one decimal only when needed.
func formatWeight(kg float64, unit models.WeightUnit) string {
	v, suffix := toUnit(kg, unit)
	if v == float64(int64(v)) {
		return fmt.Sprintf("%.0f %s", v, suffix)
	}
	return fmt.Sprintf("%.1f %s", v, suffix)
}

// formatTonnage renders accumulated volume, compacting to thousands.
func formatTonnage(kg float64, unit models.WeightUnit) string {
	v, suffix := toUnit(kg, unit)
	if v >= 10000 {
		return fmt.Sprintf("%.1fk %s", v/1000, suffix)
	}
	return fmt.Sprintf("%.0f %s", v, suffix)
}

func formatRatio(r float64) string {
	return fmt.Sprintf("%.2f", r)
}

// formatPace renders work density per minute of training.
func formatPace(kgPerMin float64, unit models.WeightUnit) string {
	v, suffix := toUnit(kgPerMin, unit)
	return fmt.Sprintf("%.0f %s/min", v, suffix)
}

// formatRest renders a rest interval in m:ss.
func formatRest(seconds float64) string {
	s := int(seconds + 0.5)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
