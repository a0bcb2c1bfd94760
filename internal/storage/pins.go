package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/meltforce/repwise/internal/models"
)

// GetPinnedExercises returns the user's pinned exercise names, sorted.
func (db *DB) GetPinnedExercises(ctx context.Context, userID int) ([]string, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT name FROM pinned_exercises WHERE user_id = $1 ORDER BY name`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying pins: %w", err)
	}
	defer rows.Close()

	var pins []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning pin: %w", err)
		}
		pins = append(pins, name)
	}
	return pins, rows.Err()
}

// PinExercise adds an exercise to the user's pinned list. Idempotent.
func (db *DB) PinExercise(ctx context.Context, userID int, name string) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO pinned_exercises (user_id, name) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`, userID, name)
	if err != nil {
		return fmt.Errorf("pinning exercise: %w", err)
	}
	return nil
}

// UnpinExercise removes an exercise from the user's pinned list.
func (db *DB) UnpinExercise(ctx context.Context, userID int, name string) error {
	_, err := db.Pool.Exec(ctx,
		`DELETE FROM pinned_exercises WHERE user_id = $1 AND name = $2`, userID, name)
	if err != nil {
		return fmt.Errorf("unpinning exercise: %w", err)
	}
	return nil
}

// GetPreferredUnit returns the user's display unit, defaulting to kg when no
// preference has been saved.
func (db *DB) GetPreferredUnit(ctx context.Context, userID int) (models.WeightUnit, error) {
	var unit string
	err := db.Pool.QueryRow(ctx,
		`SELECT unit FROM user_prefs WHERE user_id = $1`, userID).Scan(&unit)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.UnitKg, nil
	}
	if err != nil {
		return models.UnitKg, fmt.Errorf("querying unit preference: %w", err)
	}
	parsed, err := models.ParseWeightUnit(unit)
	if err != nil {
		return models.UnitKg, nil
	}
	return parsed, nil
}

// SetPreferredUnit stores the user's display unit.
func (db *DB) SetPreferredUnit(ctx context.Context, userID int, unit models.WeightUnit) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO user_prefs (user_id, unit) VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET unit = EXCLUDED.unit`, userID, string(unit))
	if err != nil {
		return fmt.Errorf("saving unit preference: %w", err)
	}
	return nil
}
