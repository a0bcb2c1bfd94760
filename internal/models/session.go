package models

import "time"

// SetTag classifies how a set was performed.
type SetTag string

const (
	SetTagWarmup  SetTag = "warmup"
	SetTagWorking SetTag = "working"
	SetTagDrop    SetTag = "drop"
)

// Set is a single logged set. A nil WeightKg means bodyweight.
type Set struct {
	Tag         SetTag     `json:"tag"`
	WeightKg    *float64   `json:"weight_kg,omitempty"`
	Reps        int        `json:"reps"`
	CompletedAt time.Time  `json:"completed_at"`
}

// Exercise groups the sets performed under one movement within a session.
type Exercise struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
	Sets     []Set  `json:"sets"`
}

// Session is one training session with its exercises in performed order.
// EndedAt is nil while the session is still in progress.
type Session struct {
	ID        string         `json:"id"`
	StartedAt time.Time      `json:"started_at"`
	EndedAt   *time.Time     `json:"ended_at,omitempty"`
	Hidden    bool           `json:"hidden"`
	TotalSets int            `json:"total_sets"`
	Duration  *time.Duration `json:"duration,omitempty"`
	Exercises []Exercise     `json:"exercises"`
}

// Eligible reports whether a session qualifies for analytics aggregation:
// finished, visible, and with at least one set recorded.
func (s *Session) Eligible() bool {
	return !s.Hidden && s.EndedAt != nil && s.TotalSets > 0
}

// IsWorking reports whether the set contributes to tonnage and set-count
// metrics: anything except a warm-up, with a positive rep count.
func (st *Set) IsWorking() bool {
	return st.Tag != SetTagWarmup && st.Reps > 0
}

// Load returns the set's weight in kilograms, clamped to non-negative.
// Bodyweight sets load as zero.
func (st *Set) Load() float64 {
	if st.WeightKg == nil || *st.WeightKg < 0 {
		return 0
	}
	return *st.WeightKg
}
