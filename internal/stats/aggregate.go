package stats

import (
	"sort"
	"time"

	"github.com/meltforce/repwise/internal/models"
	"github.com/meltforce/repwise/internal/taxonomy"
)

// Thresholds and bounds for set qualification. Fixed constants, not tuning
// knobs.
const (
	hardSetMinReps = 5
	hardSetMaxReps = 30

	// overloadImprovement is the fraction a set's tonnage score must exceed
	// the running best by to count as a new overload event.
	overloadImprovement = 0.01

	// heavyLoadMinReps qualifies a load for the heavy-load max (single-rep
	// outliers excluded).
	heavyLoadMinReps = 5

	// Rest sampling: only low-rep sets, and only gaps that look like actual
	// rest rather than an exercise switch or a long break.
	restSampleMaxReps = 6
	restMinSeconds    = 15
	restMaxSeconds    = 1200

	// defaultSessionMinutes is assumed when a session has neither a recorded
	// duration nor usable set timestamps.
	defaultSessionMinutes = 45
)

// RepBucket partitions rep counts into fixed ranges. Buckets key both the
// weekly rep histogram and the per-exercise overload/junk-volume tracking.
type RepBucket string

const (
	Bucket1to5   RepBucket = "1-5"
	Bucket6to10  RepBucket = "6-10"
	Bucket11to15 RepBucket = "11-15"
	Bucket16to20 RepBucket = "16-20"
	Bucket21Plus RepBucket = "21+"
)

// RepBuckets lists all buckets in ascending order.
var RepBuckets = []RepBucket{Bucket1to5, Bucket6to10, Bucket11to15, Bucket16to20, Bucket21Plus}

func bucketFor(reps int) RepBucket {
	switch {
	case reps <= 5:
		return Bucket1to5
	case reps <= 10:
		return Bucket6to10
	case reps <= 15:
		return Bucket11to15
	case reps <= 20:
		return Bucket16to20
	default:
		return Bucket21Plus
	}
}

// Classifier is the exercise-name classification collaborator. The engine
// consumes only its categorical output.
type Classifier interface {
	Classify(name string) (taxonomy.Classification, bool)
}

// exerciseBucketKey identifies one exercise's sets within one rep bucket.
type exerciseBucketKey struct {
	exercise string
	bucket   RepBucket
}

// junkCandidate is a hard set retained for the junk-volume pass.
type junkCandidate struct {
	exercise string
	bucket   RepBucket
	week     time.Time
	load     float64
}

// ProcessedData is the single accumulator filled by the aggregation pass and
// consumed immutably by every downstream stage. All weekly maps are keyed by
// Monday week-start (UTC).
type ProcessedData struct {
	Weeks       []time.Time // padded window, ascending, gap-free
	DisplayFrom time.Time   // first week belonging to the display range

	TonnageByWeek  map[time.Time]float64
	HardSetsByWeek map[time.Time]float64
	MuscleHardSets map[time.Time]map[taxonomy.MuscleGroup]float64
	OverloadEvents map[time.Time]float64
	HeavyLoadMax   map[time.Time]map[string]float64 // max load at >=5 reps, per exercise
	TopSet         map[time.Time]map[string]float64 // max load*reps, per exercise
	RestSamples    map[time.Time][]float64          // seconds between low-rep sets
	PushSets       map[time.Time]float64
	PullSets       map[time.Time]float64
	QuadSets       map[time.Time]float64
	HingeSets      map[time.Time]float64
	RepHistogram   map[time.Time]map[RepBucket]float64
	TouchDays      map[time.Time]map[taxonomy.MuscleGroup]map[string]struct{} // distinct calendar days per muscle
	Variety        map[time.Time]map[taxonomy.MuscleGroup]map[string]struct{} // distinct exercises per muscle
	DensitySamples map[time.Time][]float64 // kg/min, one sample per session

	// Display-range rollups for breakdown tables.
	ExerciseNames      map[string]string // normalized id -> display name
	HardSetsByExercise map[string]float64
	TonnageByExercise  map[string]float64
	OverloadByExercise map[string]float64
	MuscleExerciseSets map[taxonomy.MuscleGroup]map[string]float64

	junkCandidates []junkCandidate
	loadsByBucket  map[exerciseBucketKey]map[time.Time][]float64
	weekIndex      map[time.Time]int
}

func newProcessedData(weeks []time.Time, displayFrom time.Time) *ProcessedData {
	p := &ProcessedData{
		Weeks:       weeks,
		DisplayFrom: displayFrom,

		TonnageByWeek:  make(map[time.Time]float64),
		HardSetsByWeek: make(map[time.Time]float64),
		MuscleHardSets: make(map[time.Time]map[taxonomy.MuscleGroup]float64),
		OverloadEvents: make(map[time.Time]float64),
		HeavyLoadMax:   make(map[time.Time]map[string]float64),
		TopSet:         make(map[time.Time]map[string]float64),
		RestSamples:    make(map[time.Time][]float64),
		PushSets:       make(map[time.Time]float64),
		PullSets:       make(map[time.Time]float64),
		QuadSets:       make(map[time.Time]float64),
		HingeSets:      make(map[time.Time]float64),
		RepHistogram:   make(map[time.Time]map[RepBucket]float64),
		TouchDays:      make(map[time.Time]map[taxonomy.MuscleGroup]map[string]struct{}),
		Variety:        make(map[time.Time]map[taxonomy.MuscleGroup]map[string]struct{}),
		DensitySamples: make(map[time.Time][]float64),

		ExerciseNames:      make(map[string]string),
		HardSetsByExercise: make(map[string]float64),
		TonnageByExercise:  make(map[string]float64),
		OverloadByExercise: make(map[string]float64),
		MuscleExerciseSets: make(map[taxonomy.MuscleGroup]map[string]float64),

		loadsByBucket: make(map[exerciseBucketKey]map[time.Time][]float64),
		weekIndex:     make(map[time.Time]int, len(weeks)),
	}
	for i, w := range weeks {
		p.weekIndex[w] = i
	}
	return p
}

// inWindow reports whether the week belongs to the padded computation window.
func (p *ProcessedData) inWindow(week time.Time) bool {
	_, ok := p.weekIndex[week]
	return ok
}

// inDisplay reports whether the week belongs to the requested display range.
func (p *ProcessedData) inDisplay(week time.Time) bool {
	return p.inWindow(week) && !week.Before(p.DisplayFrom)
}

// EarliestSessionEnd returns the end time of the earliest eligible session,
// or the zero time if none qualifies. Used to bound the all-time range.
func EarliestSessionEnd(sessions []models.Session) time.Time {
	var earliest time.Time
	for i := range sessions {
		s := &sessions[i]
		if !s.Eligible() {
			continue
		}
		if earliest.IsZero() || s.EndedAt.Before(earliest) {
			earliest = *s.EndedAt
		}
	}
	return earliest
}

// Aggregate runs the single forward pass over every set in every eligible
// session, filling all weekly maps at once. Sessions are filtered to those
// ending inside the padded window and sorted by end time so the overload
// running-best sees history in order.
func Aggregate(sessions []models.Session, cls Classifier, rng models.DisplayRange, now time.Time) *ProcessedData {
	earliest := EarliestSessionEnd(sessions)
	weeks, displayFrom := WeekStarts(rng, now, earliest, DefaultPaddingWeeks)
	p := newProcessedData(weeks, displayFrom)
	if len(weeks) == 0 {
		return p
	}
	windowStart := weeks[0]

	eligible := make([]*models.Session, 0, len(sessions))
	for i := range sessions {
		s := &sessions[i]
		if !s.Eligible() {
			continue
		}
		if s.EndedAt.Before(windowStart) || s.EndedAt.After(now) {
			continue
		}
		eligible = append(eligible, s)
	}
	sort.Slice(eligible, func(i, j int) bool {
		return eligible[i].EndedAt.Before(*eligible[j].EndedAt)
	})

	// Running best tonnage score per (exercise, rep bucket), carried across
	// sessions for overload-event detection.
	best := make(map[exerciseBucketKey]float64)

	for _, s := range eligible {
		p.aggregateSession(s, cls, best)
	}
	return p
}

// aggregateSession feeds one session's sets through every metric at once,
// then records the session's work-density sample.
func (p *ProcessedData) aggregateSession(s *models.Session, cls Classifier, best map[exerciseBucketKey]float64) {
	sessionWeek := WeekStart(*s.EndedAt)

	var sessionTonnage float64
	var firstSet, lastSet time.Time

	// Last low-rep set time per exercise, for rest-interval sampling. Scoped
	// to the session: rest never spans sessions.
	lastLowRep := make(map[string]time.Time)

	for ei := range s.Exercises {
		ex := &s.Exercises[ei]
		id := taxonomy.Normalize(ex.Name)
		if id == "" {
			continue
		}
		if _, ok := p.ExerciseNames[id]; !ok {
			p.ExerciseNames[id] = ex.Name
		}
		class, classified := cls.Classify(ex.Name)

		for si := range ex.Sets {
			set := &ex.Sets[si]
			reps := set.Reps
			if reps < 0 {
				reps = 0
			}
			load := set.Load()

			if !set.CompletedAt.IsZero() {
				if firstSet.IsZero() || set.CompletedAt.Before(firstSet) {
					firstSet = set.CompletedAt
				}
				if set.CompletedAt.After(lastSet) {
					lastSet = set.CompletedAt
				}
			}

			if set.Tag == models.SetTagWarmup || reps <= 0 {
				continue
			}

			week := sessionWeek
			if !set.CompletedAt.IsZero() {
				if w := WeekStart(set.CompletedAt); p.inWindow(w) {
					week = w
				}
			}
			bucket := bucketFor(reps)
			tonnage := load * float64(reps)
			inDisplay := p.inDisplay(week)

			sessionTonnage += tonnage
			p.TonnageByWeek[week] += tonnage
			p.histogram(week)[bucket]++
			if inDisplay {
				p.TonnageByExercise[id] += tonnage
			}

			// Movement-category tallies: one increment per category
			// membership, per qualifying set.
			if classified {
				for _, mv := range class.Movements {
					switch mv {
					case taxonomy.MovementPush:
						p.PushSets[week]++
					case taxonomy.MovementPull:
						p.PullSets[week]++
					case taxonomy.MovementQuad:
						p.QuadSets[week]++
					case taxonomy.MovementHinge:
						p.HingeSets[week]++
					}
				}
			}

			// Heavy-load max and top-set score, tracked independently.
			if reps >= heavyLoadMinReps && load > 0 {
				if m := p.exerciseMax(p.HeavyLoadMax, week); load > m[id] {
					m[id] = load
				}
			}
			if m := p.exerciseMax(p.TopSet, week); tonnage > m[id] {
				m[id] = tonnage
			}

			// Rest sampling between consecutive low-rep sets of the same
			// exercise within the session.
			if reps <= restSampleMaxReps && !set.CompletedAt.IsZero() {
				if prev, ok := lastLowRep[id]; ok {
					gap := set.CompletedAt.Sub(prev).Seconds()
					if gap > restMinSeconds && gap < restMaxSeconds {
						p.RestSamples[week] = append(p.RestSamples[week], gap)
					}
				}
				lastLowRep[id] = set.CompletedAt
			}

			hard := reps >= hardSetMinReps && reps <= hardSetMaxReps
			if !hard {
				continue
			}

			p.HardSetsByWeek[week]++
			if inDisplay {
				p.HardSetsByExercise[id]++
			}

			if classified {
				day := set.CompletedAt.UTC().Format("2006-01-02")
				for _, mg := range class.Muscles() {
					p.muscleCounts(week)[mg]++
					if !set.CompletedAt.IsZero() {
						p.touchSet(p.TouchDays, week, mg)[day] = struct{}{}
					}
					p.touchSet(p.Variety, week, mg)[id] = struct{}{}
					if inDisplay {
						if p.MuscleExerciseSets[mg] == nil {
							p.MuscleExerciseSets[mg] = make(map[string]float64)
						}
						p.MuscleExerciseSets[mg][id]++
					}
				}
			}

			// Overload event: new best tonnage score for this exercise and
			// bucket, by more than the improvement threshold. The first ever
			// score just seeds the running best.
			key := exerciseBucketKey{exercise: id, bucket: bucket}
			if prior := best[key]; prior > 0 && tonnage > prior*(1+overloadImprovement) {
				p.OverloadEvents[week]++
				if inDisplay {
					p.OverloadByExercise[id]++
				}
			}
			if tonnage > best[key] {
				best[key] = tonnage
			}

			// Junk-volume bookkeeping: weighted hard sets only; bodyweight
			// sets have no load to judge against a median.
			if load > 0 {
				if p.loadsByBucket[key] == nil {
					p.loadsByBucket[key] = make(map[time.Time][]float64)
				}
				p.loadsByBucket[key][week] = append(p.loadsByBucket[key][week], load)
				p.junkCandidates = append(p.junkCandidates, junkCandidate{
					exercise: id, bucket: bucket, week: week, load: load,
				})
			}
		}
	}

	minutes := sessionMinutes(s, firstSet, lastSet)
	p.DensitySamples[sessionWeek] = append(p.DensitySamples[sessionWeek], sessionTonnage/minutes)
}

// sessionMinutes resolves a session's duration: recorded duration first, the
// first-to-last set span second, a 45-minute default last.
func sessionMinutes(s *models.Session, firstSet, lastSet time.Time) float64 {
	if s.Duration != nil && s.Duration.Minutes() > 0 {
		return s.Duration.Minutes()
	}
	if !firstSet.IsZero() && lastSet.After(firstSet) {
		return lastSet.Sub(firstSet).Minutes()
	}
	return defaultSessionMinutes
}

func (p *ProcessedData) histogram(week time.Time) map[RepBucket]float64 {
	if p.RepHistogram[week] == nil {
		p.RepHistogram[week] = make(map[RepBucket]float64)
	}
	return p.RepHistogram[week]
}

func (p *ProcessedData) muscleCounts(week time.Time) map[taxonomy.MuscleGroup]float64 {
	if p.MuscleHardSets[week] == nil {
		p.MuscleHardSets[week] = make(map[taxonomy.MuscleGroup]float64)
	}
	return p.MuscleHardSets[week]
}

func (p *ProcessedData) exerciseMax(m map[time.Time]map[string]float64, week time.Time) map[string]float64 {
	if m[week] == nil {
		m[week] = make(map[string]float64)
	}
	return m[week]
}

func (p *ProcessedData) touchSet(m map[time.Time]map[taxonomy.MuscleGroup]map[string]struct{}, week time.Time, mg taxonomy.MuscleGroup) map[string]struct{} {
	if m[week] == nil {
		m[week] = make(map[taxonomy.MuscleGroup]map[string]struct{})
	}
	if m[week][mg] == nil {
		m[week][mg] = make(map[string]struct{})
	}
	return m[week][mg]
}
