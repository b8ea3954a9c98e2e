package workout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsalmi/liftline/internal/contexthelpers"
	"github.com/jsalmi/liftline/internal/sqlite"
)

// sqliteWorkoutRepository persists workout logs. All operations are scoped
// to the authenticated user from the context.
type sqliteWorkoutRepository struct {
	baseRepository
}

func newSQLiteWorkoutRepository(db *sqlite.Database, logger *slog.Logger) *sqliteWorkoutRepository {
	return &sqliteWorkoutRepository{
		baseRepository: newBaseRepository(db, logger),
	}
}

// Log inserts a workout with its exercises and sets and returns the new
// workout's ID.
func (r *sqliteWorkoutRepository) Log(ctx context.Context, w Workout) (_ int64, err error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		rollbackErr := tx.Rollback()
		if rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			r.logger.LogAttrs(ctx, slog.LevelError, "rollback transaction", slog.Any("error", rollbackErr))
		}
	}(tx)

	result, err := tx.ExecContext(ctx, `
		INSERT INTO workouts (user_id, completed_date, name)
		VALUES (?, ?, ?)`,
		userID, formatDate(w.Date), w.Name)
	if err != nil {
		return 0, fmt.Errorf("insert workout: %w", err)
	}
	workoutID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("workout insert id: %w", err)
	}

	for exercisePos, ex := range w.Exercises {
		result, err = tx.ExecContext(ctx, `
			INSERT INTO workout_exercises (workout_id, exercise_id, exercise_name, position)
			VALUES (?, ?, ?, ?)`,
			workoutID, ex.ExerciseID, ex.ExerciseName, exercisePos)
		if err != nil {
			return 0, fmt.Errorf("insert workout exercise: %w", err)
		}
		var workoutExerciseID int64
		if workoutExerciseID, err = result.LastInsertId(); err != nil {
			return 0, fmt.Errorf("workout exercise insert id: %w", err)
		}

		for setPos, set := range ex.Sets {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO workout_sets (workout_exercise_id, position, weight_kg, reps, rir, completed)
				VALUES (?, ?, ?, ?, ?, ?)`,
				workoutExerciseID, setPos, set.WeightKg, set.Reps, set.RIR, set.Completed)
			if err != nil {
				return 0, fmt.Errorf("insert workout set: %w", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return workoutID, nil
}

// List retrieves the user's workouts newest first, up to limit.
func (r *sqliteWorkoutRepository) List(ctx context.Context, limit int) (_ []Workout, err error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, completed_date, name
		FROM workouts
		WHERE user_id = ?
		ORDER BY completed_date DESC, id DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var workouts []Workout
	for rows.Next() {
		var (
			w       Workout
			dateStr string
		)
		if err = rows.Scan(&w.ID, &dateStr, &w.Name); err != nil {
			return nil, fmt.Errorf("scan workout row: %w", err)
		}
		if w.Date, err = time.Parse(dateFormat, dateStr); err != nil {
			return nil, fmt.Errorf("parse workout date: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workout rows: %w", err)
	}

	for i := range workouts {
		if workouts[i].Exercises, err = r.loadExercises(ctx, workouts[i].ID); err != nil {
			return nil, fmt.Errorf("load exercises for workout %d: %w", workouts[i].ID, err)
		}
	}
	return workouts, nil
}

// Get retrieves one workout owned by the user.
func (r *sqliteWorkoutRepository) Get(ctx context.Context, id int64) (Workout, error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	var (
		w       Workout
		dateStr string
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, completed_date, name
		FROM workouts
		WHERE id = ? AND user_id = ?`, id, userID).Scan(&w.ID, &dateStr, &w.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return Workout{}, ErrNotFound
	}
	if err != nil {
		return Workout{}, fmt.Errorf("query workout: %w", err)
	}
	if w.Date, err = time.Parse(dateFormat, dateStr); err != nil {
		return Workout{}, fmt.Errorf("parse workout date: %w", err)
	}
	if w.Exercises, err = r.loadExercises(ctx, w.ID); err != nil {
		return Workout{}, fmt.Errorf("load exercises for workout %d: %w", w.ID, err)
	}
	return w, nil
}

// Delete removes a workout owned by the user.
func (r *sqliteWorkoutRepository) Delete(ctx context.Context, id int64) error {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	result, err := r.db.ReadWrite.ExecContext(ctx, `
		DELETE FROM workouts
		WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sqliteWorkoutRepository) loadExercises(ctx context.Context, workoutID int64) (_ []LoggedExercise, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT we.id, we.exercise_id, we.exercise_name,
		       ws.weight_kg, ws.reps, ws.rir, ws.completed
		FROM workout_exercises we
		LEFT JOIN workout_sets ws ON ws.workout_exercise_id = we.id
		WHERE we.workout_id = ?
		ORDER BY we.position, ws.position`, workoutID)
	if err != nil {
		return nil, fmt.Errorf("query workout exercises: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var (
		exercises []LoggedExercise
		currentID int64 = -1
	)
	for rows.Next() {
		var (
			rowID        int64
			exerciseID   string
			exerciseName string
			weightKg     sql.NullFloat64
			reps         sql.NullInt32
			rir          sql.NullInt32
			completed    sql.NullBool
		)
		if err = rows.Scan(&rowID, &exerciseID, &exerciseName, &weightKg, &reps, &rir, &completed); err != nil {
			return nil, fmt.Errorf("scan workout set row: %w", err)
		}

		if rowID != currentID {
			exercises = append(exercises, LoggedExercise{
				ExerciseID:   exerciseID,
				ExerciseName: exerciseName,
			})
			currentID = rowID
		}

		// A workout exercise without sets produces one NULL set row.
		if !weightKg.Valid && !reps.Valid {
			continue
		}
		set := WorkoutSet{
			WeightKg:  weightKg.Float64,
			Reps:      int(reps.Int32),
			Completed: completed.Bool,
		}
		if rir.Valid {
			v := int(rir.Int32)
			set.RIR = &v
		}
		last := &exercises[len(exercises)-1]
		last.Sets = append(last.Sets, set)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workout set rows: %w", err)
	}
	return exercises, nil
}
