package stats

import (
	"testing"
	"time"

	"github.com/meltforce/repwise/internal/models"
	"github.com/meltforce/repwise/internal/taxonomy"
)

// TestAggregateSessionEligibility verifies that hidden, unfinished, and
// empty sessions contribute nothing.
func TestAggregateSessionEligibility(t *testing.T) {
	end := testNow.Add(-2 * time.Hour)
	good := session(end, exercise("Bench Press", set(100, 5, end.Add(-30*time.Minute))))

	hidden := session(end, exercise("Bench Press", set(100, 5, end.Add(-30*time.Minute))))
	hidden.Hidden = true

	unfinished := session(end, exercise("Bench Press", set(100, 5, end.Add(-30*time.Minute))))
	unfinished.EndedAt = nil

	empty := session(end)

	p := Aggregate([]models.Session{good, hidden, unfinished, empty}, testClassifier, models.RangeMonth, testNow)

	if got := p.SumOver(p.TonnageByWeek); got != 500 {
		t.Errorf("tonnage = %v, want 500 (only the eligible session)", got)
	}
}

// TestAggregateWorkingAndHardSets verifies the set qualification rules:
// warm-ups and zero-rep sets contribute nothing, working sets add tonnage,
// and only reps in [5,30] count as hard sets.
func TestAggregateWorkingAndHardSets(t *testing.T) {
	end := testNow.Add(-2 * time.Hour)
	at := end.Add(-30 * time.Minute)

	warmup := models.Set{Tag: models.SetTagWarmup, WeightKg: ptr(60), Reps: 10, CompletedAt: at}
	zeroReps := models.Set{Tag: models.SetTagWorking, WeightKg: ptr(100), Reps: 0, CompletedAt: at}
	triple := set(140, 3, at)     // working but not hard
	tooMany := set(20, 35, at)    // working but not hard
	hard := set(100, 8, at)       // working and hard
	drop := models.Set{Tag: models.SetTagDrop, WeightKg: ptr(60), Reps: 12, CompletedAt: at} // drop sets count

	p := Aggregate([]models.Session{
		session(end, exercise("Bench Press", warmup, zeroReps, triple, tooMany, hard, drop)),
	}, testClassifier, models.RangeMonth, testNow)

	wantTonnage := 140*3 + 20*35 + 100*8 + 60*12.0
	if got := p.SumOver(p.TonnageByWeek); got != wantTonnage {
		t.Errorf("tonnage = %v, want %v", got, wantTonnage)
	}
	if got := p.SumOver(p.HardSetsByWeek); got != 2 {
		t.Errorf("hard sets = %v, want 2 (the 8-rep and 12-rep sets)", got)
	}
}

// TestAggregateNegativeClamping verifies malformed reps/loads are clamped to
// zero rather than rejected.
func TestAggregateNegativeClamping(t *testing.T) {
	end := testNow.Add(-2 * time.Hour)
	at := end.Add(-30 * time.Minute)

	negLoad := set(-50, 8, at)
	negReps := set(100, -5, at)

	p := Aggregate([]models.Session{
		session(end, exercise("Bench Press", negLoad, negReps)),
	}, testClassifier, models.RangeMonth, testNow)

	if got := p.SumOver(p.TonnageByWeek); got != 0 {
		t.Errorf("tonnage = %v, want 0 after clamping", got)
	}
	// The negative-load set still has valid reps, so it counts as a hard set.
	if got := p.SumOver(p.HardSetsByWeek); got != 1 {
		t.Errorf("hard sets = %v, want 1", got)
	}
}

// TestAggregateBodyweightSets verifies a load-less set contributes zero
// tonnage but still counts toward hard-set and rep-bucket metrics.
func TestAggregateBodyweightSets(t *testing.T) {
	end := testNow.Add(-2 * time.Hour)
	at := end.Add(-30 * time.Minute)
	bw := models.Set{Tag: models.SetTagWorking, Reps: 12, CompletedAt: at}

	p := Aggregate([]models.Session{
		session(end, exercise("Pull-Up", bw)),
	}, testClassifier, models.RangeMonth, testNow)

	if got := p.SumOver(p.TonnageByWeek); got != 0 {
		t.Errorf("tonnage = %v, want 0 for bodyweight", got)
	}
	if got := p.SumOver(p.HardSetsByWeek); got != 1 {
		t.Errorf("hard sets = %v, want 1", got)
	}
	week := WeekStart(at)
	if got := p.RepHistogram[week][Bucket11to15]; got != 1 {
		t.Errorf("rep bucket 11-15 = %v, want 1", got)
	}
}

// TestAggregateOverloadEvent replays the canonical progression scenario:
// 100kg×5 in week one, 102kg×5 in week two. Week two must register exactly
// one overload event (510 > 500×1.01) and the heavy-load series must read
// [100, 102].
func TestAggregateOverloadEvent(t *testing.T) {
	week1End := weekOf(1).Add(18 * time.Hour)
	week2End := weekOf(0).Add(18 * time.Hour)

	p := Aggregate([]models.Session{
		session(week1End, exercise("Bench Press", set(100, 5, week1End.Add(-30*time.Minute)))),
		session(week2End, exercise("Bench Press", set(102, 5, week2End.Add(-30*time.Minute)))),
	}, testClassifier, models.RangeMonth, testNow)

	if got := p.OverloadEvents[weekOf(1)]; got != 0 {
		t.Errorf("week 1 overload events = %v, want 0 (first score only seeds the best)", got)
	}
	if got := p.OverloadEvents[weekOf(0)]; got != 1 {
		t.Errorf("week 2 overload events = %v, want exactly 1", got)
	}

	heavy := ExerciseMaxSeriesMap(p.HeavyLoadMax)
	if got := heavy[weekOf(1)]; got != 100 {
		t.Errorf("heavy-load week 1 = %v, want 100", got)
	}
	if got := heavy[weekOf(0)]; got != 102 {
		t.Errorf("heavy-load week 2 = %v, want 102", got)
	}
}

// TestAggregateOverloadWithinThreshold verifies a gain of 1% or less does not
// count as an overload event.
func TestAggregateOverloadWithinThreshold(t *testing.T) {
	week1End := weekOf(1).Add(18 * time.Hour)
	week2End := weekOf(0).Add(18 * time.Hour)

	p := Aggregate([]models.Session{
		session(week1End, exercise("Bench Press", set(100, 5, week1End.Add(-30*time.Minute)))),
		session(week2End, exercise("Bench Press", set(101, 5, week2End.Add(-30*time.Minute)))),
	}, testClassifier, models.RangeMonth, testNow)

	if got := p.SumOver(p.OverloadEvents); got != 0 {
		t.Errorf("overload events = %v, want 0 (505 is not > 500×1.01)", got)
	}
}

// TestAggregateRestSampling verifies the rest-interval window: gaps between
// low-rep sets of the same exercise are sampled only inside (15s, 1200s).
func TestAggregateRestSampling(t *testing.T) {
	end := testNow.Add(-2 * time.Hour)
	base := end.Add(-50 * time.Minute)

	p := Aggregate([]models.Session{
		session(end, exercise("Deadlift",
			set(180, 3, base),
			set(180, 3, base.Add(10*time.Second)),  // too fast: discarded
			set(180, 3, base.Add(190*time.Second)), // 180s gap: sampled
			set(180, 3, base.Add(40*time.Minute)),  // > 1200s: discarded
		)),
	}, testClassifier, models.RangeMonth, testNow)

	week := WeekStart(base)
	samples := p.RestSamples[week]
	if len(samples) != 1 {
		t.Fatalf("rest samples = %v, want exactly one", samples)
	}
	if samples[0] != 180 {
		t.Errorf("rest sample = %v, want 180", samples[0])
	}
}

// TestAggregateRestSamplingIgnoresHighRep verifies sets above 6 reps never
// participate in rest sampling.
func TestAggregateRestSamplingIgnoresHighRep(t *testing.T) {
	end := testNow.Add(-2 * time.Hour)
	base := end.Add(-50 * time.Minute)

	p := Aggregate([]models.Session{
		session(end, exercise("Squat",
			set(100, 10, base),
			set(100, 10, base.Add(120*time.Second)),
		)),
	}, testClassifier, models.RangeMonth, testNow)

	if samples := p.RestSamples[WeekStart(base)]; len(samples) != 0 {
		t.Errorf("rest samples = %v, want none for 10-rep sets", samples)
	}
}

// TestAggregateMovementTallies verifies push/pull and quad/hinge counts
// increment once per qualifying set per category membership.
func TestAggregateMovementTallies(t *testing.T) {
	end := testNow.Add(-2 * time.Hour)
	at := end.Add(-30 * time.Minute)

	p := Aggregate([]models.Session{
		session(end,
			exercise("Bench Press", set(100, 5, at)), // push
			exercise("Deadlift", set(180, 5, at)),    // hinge + pull
			exercise("Squat", set(140, 5, at)),       // quad
		),
	}, testClassifier, models.RangeMonth, testNow)

	week := WeekStart(at)
	if got := p.PushSets[week]; got != 1 {
		t.Errorf("push sets = %v, want 1", got)
	}
	if got := p.PullSets[week]; got != 1 {
		t.Errorf("pull sets = %v, want 1 (deadlift)", got)
	}
	if got := p.QuadSets[week]; got != 1 {
		t.Errorf("quad sets = %v, want 1", got)
	}
	if got := p.HingeSets[week]; got != 1 {
		t.Errorf("hinge sets = %v, want 1", got)
	}
}

// TestAggregateMuscleCounts verifies hard sets are credited to the primary
// and all secondary muscles of a classified exercise.
func TestAggregateMuscleCounts(t *testing.T) {
	end := testNow.Add(-2 * time.Hour)
	at := end.Add(-30 * time.Minute)

	p := Aggregate([]models.Session{
		session(end, exercise("Bench Press", set(100, 8, at))),
	}, testClassifier, models.RangeMonth, testNow)

	week := WeekStart(at)
	for _, mg := range []taxonomy.MuscleGroup{taxonomy.Chest, taxonomy.Triceps, taxonomy.Shoulders} {
		if got := p.MuscleHardSets[week][mg]; got != 1 {
			t.Errorf("hard sets for %s = %v, want 1", mg, got)
		}
	}
	if got := p.MuscleHardSets[week][taxonomy.Quads]; got != 0 {
		t.Errorf("hard sets for quads = %v, want 0", got)
	}
}

// TestSessionMinutes verifies the duration fallback chain: recorded duration,
// then set-span, then the 45-minute default.
func TestSessionMinutes(t *testing.T) {
	end := testNow.Add(-2 * time.Hour)
	first := end.Add(-60 * time.Minute)
	last := end.Add(-10 * time.Minute)

	recorded := 30 * time.Minute
	s := session(end)
	s.Duration = &recorded
	if got := sessionMinutes(&s, first, last); got != 30 {
		t.Errorf("recorded duration: got %v minutes, want 30", got)
	}

	s.Duration = nil
	if got := sessionMinutes(&s, first, last); got != 50 {
		t.Errorf("set span: got %v minutes, want 50", got)
	}

	if got := sessionMinutes(&s, time.Time{}, time.Time{}); got != defaultSessionMinutes {
		t.Errorf("fallback: got %v minutes, want %v", got, defaultSessionMinutes)
	}
}

// TestAggregateDensitySample verifies work density is tonnage over session
// minutes, recorded once per session in the week the session ends.
func TestAggregateDensitySample(t *testing.T) {
	end := testNow.Add(-2 * time.Hour)
	at := end.Add(-30 * time.Minute)
	dur := 20 * time.Minute

	s := session(end, exercise("Squat", set(100, 10, at))) // 1000 kg
	s.Duration = &dur

	p := Aggregate([]models.Session{s}, testClassifier, models.RangeMonth, testNow)

	samples := p.DensitySamples[WeekStart(end)]
	if len(samples) != 1 {
		t.Fatalf("density samples = %v, want one", samples)
	}
	if samples[0] != 50 {
		t.Errorf("density = %v kg/min, want 50", samples[0])
	}
}
