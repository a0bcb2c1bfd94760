package stats

import (
	"time"

	"github.com/meltforce/repwise/internal/models"
	"github.com/meltforce/repwise/internal/taxonomy"
)

// testNow is a fixed Wednesday; its week starts Monday 2025-06-16.
var testNow = time.Date(2025, 6, 18, 10, 0, 0, 0, time.UTC)

// weekOf returns the week-start `ago` weeks before the current one.
func weekOf(ago int) time.Time {
	return WeekStart(testNow).AddDate(0, 0, -7*ago)
}

func ptr(v float64) *float64 { return &v }

// set builds a working set at the given time.
func set(weightKg float64, reps int, at time.Time) models.Set {
	return models.Set{Tag: models.SetTagWorking, WeightKg: ptr(weightKg), Reps: reps, CompletedAt: at}
}

// session builds an eligible session ending at end, with TotalSets counted
// from its exercises.
func session(end time.Time, exercises ...models.Exercise) models.Session {
	total := 0
	for _, ex := range exercises {
		total += len(ex.Sets)
	}
	start := end.Add(-1 * time.Hour)
	endCopy := end
	return models.Session{
		ID:        end.Format(time.RFC3339),
		StartedAt: start,
		EndedAt:   &endCopy,
		TotalSets: total,
		Exercises: exercises,
	}
}

// exercise groups sets under a name.
func exercise(name string, sets ...models.Set) models.Exercise {
	return models.Exercise{Name: name, Position: 1, Sets: sets}
}

// testClassifier is the real taxonomy service; the engine treats it as a
// black box either way.
var testClassifier = taxonomy.NewService()
