package models

import "fmt"

// Mode selects which training philosophy the dashboard is built for.
type Mode string

const (
	ModeStrength    Mode = "strength"
	ModeHypertrophy Mode = "hypertrophy"
	ModeAthletic    Mode = "athletic"
)

// DisplayRange selects how much history the dashboard shows.
type DisplayRange string

const (
	RangeWeek    DisplayRange = "week"
	RangeMonth   DisplayRange = "month"
	RangeAllTime DisplayRange = "all"
)

// ExerciseFilter narrows the dashboard to pinned exercises or keeps everything.
type ExerciseFilter string

const (
	FilterAll    ExerciseFilter = "all"
	FilterPinned ExerciseFilter = "pinned"
)

// WeightUnit is the user's preferred display unit. Storage and all internal
// computation are in kilograms.
type WeightUnit string

const (
	UnitKg WeightUnit = "kg"
	UnitLb WeightUnit = "lb"
)

// ParseMode validates a mode string, defaulting empty to strength.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "":
		return ModeStrength, nil
	case ModeStrength, ModeHypertrophy, ModeAthletic:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// ParseDisplayRange validates a range string, defaulting empty to month.
func ParseDisplayRange(s string) (DisplayRange, error) {
	switch DisplayRange(s) {
	case "":
		return RangeMonth, nil
	case RangeWeek, RangeMonth, RangeAllTime:
		return DisplayRange(s), nil
	}
	return "", fmt.Errorf("unknown range %q", s)
}

// ParseExerciseFilter validates a filter string, defaulting empty to all.
func ParseExerciseFilter(s string) (ExerciseFilter, error) {
	switch ExerciseFilter(s) {
	case "":
		return FilterAll, nil
	case FilterAll, FilterPinned:
		return ExerciseFilter(s), nil
	}
	return "", fmt.Errorf("unknown filter %q", s)
}

// ParseWeightUnit validates a unit string, defaulting empty to kg.
func ParseWeightUnit(s string) (WeightUnit, error) {
	switch WeightUnit(s) {
	case "":
		return UnitKg, nil
	case UnitKg, UnitLb:
		return WeightUnit(s), nil
	}
	return "", fmt.Errorf("unknown unit %q", s)
}
