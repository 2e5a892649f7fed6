package repository

import (
	"context"
	"fmt"

	"github.com/exertrack/exertrack/internal/model"
)

// AppendExercise appends one entry to the owning user's log.
// The insert is conditional on the user row existing, so a concurrent
// append never produces an orphaned entry. Returns ErrUserNotFound when
// no matching user exists.
func (r *Repository) AppendExercise(ctx context.Context, exercise *model.Exercise) error {
	query := `
		INSERT INTO exercises (id, user_id, description, duration, exercise_date, created_at)
		SELECT $1, u.id, $2, $3, $4, $5
		FROM users u
		WHERE u.id = $6
	`

	result, err := r.pool.Exec(ctx, query,
		exercise.ID,
		exercise.Description,
		exercise.Duration,
		exercise.Date,
		exercise.CreatedAt,
		exercise.UserID,
	)

	if err != nil {
		return fmt.Errorf("failed to append exercise: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// ListExercises retrieves a user's full log in insertion order.
func (r *Repository) ListExercises(ctx context.Context, userID string) ([]model.Exercise, error) {
	query := `
		SELECT id, user_id, description, duration, exercise_date, created_at
		FROM exercises
		WHERE user_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	defer rows.Close()

	var entries []model.Exercise
	for rows.Next() {
		var e model.Exercise
		err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Description,
			&e.Duration,
			&e.Date,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exercises: %w", err)
	}

	return entries, nil
}
