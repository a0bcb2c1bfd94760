package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/meltforce/repwise/internal/models"
)

// LoadSnapshot materializes the user's full training log: every session with
// its exercises and sets, ordered by session end time ascending. The result
// is the read-only input snapshot the analytics engine consumes.
func (db *DB) LoadSnapshot(ctx context.Context, userID int) ([]models.Session, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, started_at, ended_at, hidden, total_sets, duration_sec
		 FROM sessions
		 WHERE user_id = $1
		 ORDER BY ended_at ASC NULLS LAST, started_at ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.Session
	index := make(map[string]int)
	for rows.Next() {
		var s models.Session
		var durationSec *int64
		if err := rows.Scan(&s.ID, &s.StartedAt, &s.EndedAt, &s.Hidden, &s.TotalSets, &durationSec); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		if durationSec != nil {
			d := time.Duration(*durationSec) * time.Second
			s.Duration = &d
		}
		index[s.ID] = len(sessions)
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, nil
	}

	exRows, err := db.Pool.Query(ctx,
		`SELECT e.id, e.session_id, e.name, e.position
		 FROM session_exercises e
		 JOIN sessions s ON s.id = e.session_id
		 WHERE s.user_id = $1
		 ORDER BY e.session_id, e.position`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer exRows.Close()

	// exercise row id -> (session index, exercise index)
	type exRef struct{ si, ei int }
	exIndex := make(map[int64]exRef)
	for exRows.Next() {
		var id int64
		var sessionID string
		var ex models.Exercise
		if err := exRows.Scan(&id, &sessionID, &ex.Name, &ex.Position); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		si, ok := index[sessionID]
		if !ok {
			continue
		}
		exIndex[id] = exRef{si: si, ei: len(sessions[si].Exercises)}
		sessions[si].Exercises = append(sessions[si].Exercises, ex)
	}
	if err := exRows.Err(); err != nil {
		return nil, err
	}

	setRows, err := db.Pool.Query(ctx,
		`SELECT st.exercise_id, st.tag, st.weight_kg, st.reps, st.completed_at
		 FROM session_sets st
		 JOIN session_exercises e ON e.id = st.exercise_id
		 JOIN sessions s ON s.id = e.session_id
		 WHERE s.user_id = $1
		 ORDER BY st.exercise_id, st.completed_at, st.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying sets: %w", err)
	}
	defer setRows.Close()

	for setRows.Next() {
		var exerciseID int64
		var set models.Set
		if err := setRows.Scan(&exerciseID, &set.Tag, &set.WeightKg, &set.Reps, &set.CompletedAt); err != nil {
			return nil, fmt.Errorf("scanning set: %w", err)
		}
		ref, ok := exIndex[exerciseID]
		if !ok {
			continue
		}
		ex := &sessions[ref.si].Exercises[ref.ei]
		ex.Sets = append(ex.Sets, set)
	}
	return sessions, setRows.Err()
}

// InsertSessions stores an exported training log. Sessions that already exist
// (same id) are skipped whole; new sessions are written with their exercises
// and sets in one transaction.
func (db *DB) InsertSessions(ctx context.Context, userID int, sessions []models.Session) (*models.IngestResult, error) {
	result := &models.IngestResult{}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for i := range sessions {
		s := &sessions[i]
		id := s.ID
		if id == "" {
			id = uuid.NewString()
		}

		var durationSec *int64
		if s.Duration != nil {
			sec := int64(s.Duration.Seconds())
			durationSec = &sec
		}

		tag, err := tx.Exec(ctx,
			`INSERT INTO sessions (id, user_id, started_at, ended_at, hidden, total_sets, duration_sec)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (id) DO NOTHING`,
			id, userID, s.StartedAt, s.EndedAt, s.Hidden, s.TotalSets, durationSec)
		if err != nil {
			return nil, fmt.Errorf("inserting session %s: %w", id, err)
		}
		if tag.RowsAffected() == 0 {
			result.SessionsSkipped++
			continue
		}
		result.SessionsInserted++

		for _, ex := range s.Exercises {
			var exerciseID int64
			err := tx.QueryRow(ctx,
				`INSERT INTO session_exercises (session_id, name, position)
				 VALUES ($1, $2, $3) RETURNING id`,
				id, ex.Name, ex.Position).Scan(&exerciseID)
			if err != nil {
				return nil, fmt.Errorf("inserting exercise %q: %w", ex.Name, err)
			}
			if err := insertSets(ctx, tx, exerciseID, ex.Sets); err != nil {
				return nil, err
			}
			result.SetsInserted += len(ex.Sets)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing: %w", err)
	}
	return result, nil
}

func insertSets(ctx context.Context, tx pgx.Tx, exerciseID int64, sets []models.Set) error {
	for _, set := range sets {
		_, err := tx.Exec(ctx,
			`INSERT INTO session_sets (exercise_id, tag, weight_kg, reps, completed_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			exerciseID, set.Tag, set.WeightKg, set.Reps, set.CompletedAt)
		if err != nil {
			return fmt.Errorf("inserting set: %w", err)
		}
	}
	return nil
}

// SessionSummary is a compact listing row for the sessions endpoint.
type SessionSummary struct {
	ID        string     `json:"id"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	TotalSets int        `json:"total_sets"`
	Exercises int        `json:"exercises"`
}

// ListSessions returns session summaries in a date range, newest first.
func (db *DB) ListSessions(ctx context.Context, userID int, start, end time.Time) ([]SessionSummary, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT s.id, s.started_at, s.ended_at, s.total_sets,
		        (SELECT COUNT(*) FROM session_exercises e WHERE e.session_id = s.id)
		 FROM sessions s
		 WHERE s.user_id = $1 AND s.started_at >= $2 AND s.started_at < $3 AND NOT s.hidden
		 ORDER BY s.started_at DESC`, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying session list: %w", err)
	}
	defer rows.Close()

	var result []SessionSummary
	for rows.Next() {
		var s SessionSummary
		if err := rows.Scan(&s.ID, &s.StartedAt, &s.EndedAt, &s.TotalSets, &s.Exercises); err != nil {
			return nil, fmt.Errorf("scanning session summary: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}
