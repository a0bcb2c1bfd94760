// Package taxonomy classifies free-form exercise names into muscle groups and
// movement categories. The stats engine consumes only the categorical output;
// matching heuristics live entirely here.
package taxonomy

import "strings"

// MuscleGroup is a coarse trained-muscle category.
type MuscleGroup string

const (
	Chest      MuscleGroup = "chest"
	Back       MuscleGroup = "back"
	Shoulders  MuscleGroup = "shoulders"
	Biceps     MuscleGroup = "biceps"
	Triceps    MuscleGroup = "triceps"
	Quads      MuscleGroup = "quads"
	Hamstrings MuscleGroup = "hamstrings"
	Glutes     MuscleGroup = "glutes"
	Calves     MuscleGroup = "calves"
	Abs        MuscleGroup = "abs"
)

// Movement is a structural movement category. An exercise may belong to
// several (a thruster is both push and quad-dominant).
type Movement string

const (
	MovementPush  Movement = "push"
	MovementPull  Movement = "pull"
	MovementQuad  Movement = "quad"
	MovementHinge Movement = "hinge"
)

// Classification is the categorical result for one exercise name.
type Classification struct {
	Canonical string
	Primary   MuscleGroup
	Secondary []MuscleGroup
	Movements []Movement
}

// Muscles returns the primary followed by all secondary groups.
func (c Classification) Muscles() []MuscleGroup {
	out := make([]MuscleGroup, 0, 1+len(c.Secondary))
	out = append(out, c.Primary)
	out = append(out, c.Secondary...)
	return out
}

// abbreviations expanded during normalization before lookup.
var abbreviations = map[string]string{
	"db":  "dumbbell",
	"bb":  "barbell",
	"kb":  "kettlebell",
	"ohp": "overhead press",
	"rdl": "romanian deadlift",
	"sgdl": "snatch grip deadlift",
	"lat": "lateral",
}

// Normalize lowercases, trims, collapses internal whitespace, and expands
// common abbreviations. The result is the identifier the engine keys
// per-exercise series on.
func Normalize(name string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	for i, f := range fields {
		if exp, ok := abbreviations[f]; ok {
			fields[i] = exp
		}
	}
	return strings.Join(fields, " ")
}

// Service resolves exercise names against the built-in exercise table.
// The zero value is not usable; construct with NewService.
type Service struct {
	byAlias map[string]*entry
}

type entry struct {
	canonical string
	primary   MuscleGroup
	secondary []MuscleGroup
	movements []Movement
	aliases   []string
	keywords  []string
}

// NewService builds the alias lookup index.
func NewService() *Service {
	s := &Service{byAlias: make(map[string]*entry, len(exerciseTable)*3)}
	for i := range exerciseTable {
		e := &exerciseTable[i]
		s.byAlias[Normalize(e.canonical)] = e
		for _, a := range e.aliases {
			s.byAlias[Normalize(a)] = e
		}
	}
	return s
}

// Classify resolves a raw exercise name. Exact alias matches win; otherwise
// the table entry with the most keywords all occurring in the normalized name
// is used, so "lying leg curl" resolves to the leg curl, not the biceps curl.
// Returns ok=false for names the table does not recognize; such exercises
// still contribute to tonnage and rep metrics, just not to per-muscle or
// movement-category ones.
func (s *Service) Classify(name string) (Classification, bool) {
	norm := Normalize(name)
	if norm == "" {
		return Classification{}, false
	}
	if e, ok := s.byAlias[norm]; ok {
		return e.classification(), true
	}
	var best *entry
	for i := range exerciseTable {
		e := &exerciseTable[i]
		if len(e.keywords) == 0 {
			continue
		}
		all := true
		for _, kw := range e.keywords {
			if !strings.Contains(norm, kw) {
				all = false
				break
			}
		}
		if all && (best == nil || len(e.keywords) > len(best.keywords)) {
			best = e
		}
	}
	if best == nil {
		return Classification{}, false
	}
	return best.classification(), true
}

func (e *entry) classification() Classification {
	return Classification{
		Canonical: e.canonical,
		Primary:   e.primary,
		Secondary: e.secondary,
		Movements: e.movements,
	}
}
