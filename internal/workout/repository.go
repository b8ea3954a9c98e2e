package workout

import (
	"log/slog"
	"time"

	"github.com/jsalmi/liftline/internal/errors"
	"github.com/jsalmi/liftline/internal/sqlite"
)

const dateFormat = time.DateOnly

// ErrNotFound is returned when a requested row does not exist or belongs to
// another user.
var ErrNotFound = errors.NewSentinel("not found")

// baseRepository carries the shared database handles.
type baseRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newBaseRepository(db *sqlite.Database, logger *slog.Logger) baseRepository {
	return baseRepository{db: db, logger: logger}
}

func formatDate(date time.Time) string {
	return date.Format(dateFormat)
}

// repository bundles the per-concern repositories of this package.
type repository struct {
	workouts *sqliteWorkoutRepository
}

func newRepository(db *sqlite.Database, logger *slog.Logger) *repository {
	return &repository{
		workouts: newSQLiteWorkoutRepository(db, logger),
	}
}
