package program

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsalmi/liftline/internal/catalog"
	"github.com/jsalmi/liftline/internal/contexthelpers"
	"github.com/jsalmi/liftline/internal/errors"
	"github.com/jsalmi/liftline/internal/sqlite"
)

// ErrNotFound is returned when a requested program does not exist or belongs
// to another user.
var ErrNotFound = errors.NewSentinel("not found")

const createdAtFormat = "2006-01-02T15:04:05.999Z"

// sqliteProgramRepository persists saved programs. All operations are scoped
// to the authenticated user from the context.
type sqliteProgramRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newSQLiteProgramRepository(db *sqlite.Database, logger *slog.Logger) *sqliteProgramRepository {
	return &sqliteProgramRepository{db: db, logger: logger}
}

// Create inserts a program with its days and prescriptions and returns the
// new program's ID.
func (r *sqliteProgramRepository) Create(ctx context.Context, prog Program) (_ int64, err error) {
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
		INSERT INTO programs (user_id, name, goal, split, days_per_week, active)
		VALUES (?, ?, ?, ?, ?, ?)`,
		userID, prog.Name, prog.Goal, prog.Split, prog.DaysPerWeek, prog.Active)
	if err != nil {
		return 0, fmt.Errorf("insert program: %w", err)
	}
	programID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("program insert id: %w", err)
	}

	for dayPos, day := range prog.Days {
		result, err = tx.ExecContext(ctx, `
			INSERT INTO program_days (program_id, position, name)
			VALUES (?, ?, ?)`,
			programID, dayPos, day.Name)
		if err != nil {
			return 0, fmt.Errorf("insert program day: %w", err)
		}
		var dayID int64
		if dayID, err = result.LastInsertId(); err != nil {
			return 0, fmt.Errorf("program day insert id: %w", err)
		}

		for exPos, ex := range day.Exercises {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO program_exercises
					(program_day_id, position, exercise_id, exercise_name, category,
					 sets, reps_min, reps_max, rest_seconds, is_timed, duration_seconds, section)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				dayID, exPos, ex.ExerciseID, ex.ExerciseName, ex.Category,
				ex.Sets, ex.RepsMin, ex.RepsMax, ex.RestSeconds, ex.IsTimed, ex.DurationSeconds, ex.Section)
			if err != nil {
				return 0, fmt.Errorf("insert program exercise: %w", err)
			}
		}
	}

	if prog.Active {
		if err = deactivateOthers(ctx, tx, userID, programID); err != nil {
			return 0, err
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return programID, nil
}

// List retrieves the user's programs newest first, days included.
func (r *sqliteProgramRepository) List(ctx context.Context) (_ []Program, err error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, name, goal, split, days_per_week, active, created_at
		FROM programs
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query programs: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var programs []Program
	for rows.Next() {
		var (
			prog      Program
			createdAt string
		)
		if err = rows.Scan(&prog.ID, &prog.Name, &prog.Goal, &prog.Split,
			&prog.DaysPerWeek, &prog.Active, &createdAt); err != nil {
			return nil, fmt.Errorf("scan program row: %w", err)
		}
		if prog.CreatedAt, err = time.Parse(createdAtFormat, createdAt); err != nil {
			return nil, fmt.Errorf("parse program created_at: %w", err)
		}
		programs = append(programs, prog)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate program rows: %w", err)
	}

	for i := range programs {
		if programs[i].Days, err = r.loadDays(ctx, programs[i].ID); err != nil {
			return nil, fmt.Errorf("load days for program %d: %w", programs[i].ID, err)
		}
	}
	return programs, nil
}

// Get retrieves one program owned by the user.
func (r *sqliteProgramRepository) Get(ctx context.Context, id int64) (Program, error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	var (
		prog      Program
		createdAt string
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, name, goal, split, days_per_week, active, created_at
		FROM programs
		WHERE id = ? AND user_id = ?`, id, userID).Scan(
		&prog.ID, &prog.Name, &prog.Goal, &prog.Split,
		&prog.DaysPerWeek, &prog.Active, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Program{}, ErrNotFound
	}
	if err != nil {
		return Program{}, fmt.Errorf("query program: %w", err)
	}
	if prog.CreatedAt, err = time.Parse(createdAtFormat, createdAt); err != nil {
		return Program{}, fmt.Errorf("parse program created_at: %w", err)
	}
	if prog.Days, err = r.loadDays(ctx, prog.ID); err != nil {
		return Program{}, fmt.Errorf("load days for program %d: %w", prog.ID, err)
	}
	return prog, nil
}

// Delete removes a program owned by the user.
func (r *sqliteProgramRepository) Delete(ctx context.Context, id int64) error {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	result, err := r.db.ReadWrite.ExecContext(ctx, `
		DELETE FROM programs
		WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete program: %w", err)
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

// SetActive marks one program active and deactivates the user's others.
func (r *sqliteProgramRepository) SetActive(ctx context.Context, id int64) (err error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		rollbackErr := tx.Rollback()
		if rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			r.logger.LogAttrs(ctx, slog.LevelError, "rollback transaction", slog.Any("error", rollbackErr))
		}
	}(tx)

	result, err := tx.ExecContext(ctx, `
		UPDATE programs SET active = 1
		WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("activate program: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	if err = deactivateOthers(ctx, tx, userID, id); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func deactivateOthers(ctx context.Context, tx *sql.Tx, userID int, keepID int64) error {
	if _, err := tx.ExecContext(ctx, `
		UPDATE programs SET active = 0
		WHERE user_id = ? AND id != ?`, userID, keepID); err != nil {
		return fmt.Errorf("deactivate other programs: %w", err)
	}
	return nil
}

func (r *sqliteProgramRepository) loadDays(ctx context.Context, programID int64) (_ []Day, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT pd.id, pd.name,
		       pe.exercise_id, pe.exercise_name, pe.category,
		       pe.sets, pe.reps_min, pe.reps_max, pe.rest_seconds,
		       pe.is_timed, pe.duration_seconds, pe.section
		FROM program_days pd
		LEFT JOIN program_exercises pe ON pe.program_day_id = pd.id
		WHERE pd.program_id = ?
		ORDER BY pd.position, pe.position`, programID)
	if err != nil {
		return nil, fmt.Errorf("query program days: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var (
		days      []Day
		currentID int64 = -1
	)
	for rows.Next() {
		var (
			dayID    int64
			dayName  string
			id       sql.NullString
			name     sql.NullString
			category sql.NullString
			sets     sql.NullInt32
			repsMin  sql.NullInt32
			repsMax  sql.NullInt32
			rest     sql.NullInt32
			isTimed  sql.NullBool
			duration sql.NullInt32
			section  sql.NullString
		)
		if err = rows.Scan(&dayID, &dayName, &id, &name, &category,
			&sets, &repsMin, &repsMax, &rest, &isTimed, &duration, &section); err != nil {
			return nil, fmt.Errorf("scan program exercise row: %w", err)
		}

		if dayID != currentID {
			days = append(days, Day{Name: dayName})
			currentID = dayID
		}

		// A day without exercises produces one NULL exercise row.
		if !id.Valid {
			continue
		}
		prescription := Prescription{
			ExerciseID:   id.String,
			ExerciseName: name.String,
			Category:     catalog.Category(category.String),
			Sets:         int(sets.Int32),
			RepsMin:      int(repsMin.Int32),
			RepsMax:      int(repsMax.Int32),
			RestSeconds:  int(rest.Int32),
			IsTimed:      isTimed.Bool,
			Section:      Section(section.String),
		}
		if duration.Valid {
			d := int(duration.Int32)
			prescription.DurationSeconds = &d
		}
		Normalize(&prescription)
		last := &days[len(days)-1]
		last.Exercises = append(last.Exercises, prescription)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate program exercise rows: %w", err)
	}
	return days, nil
}
