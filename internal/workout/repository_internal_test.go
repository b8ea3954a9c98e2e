package workout

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jsalmi/liftline/internal/contexthelpers"
	"github.com/jsalmi/liftline/internal/ptr"
	"github.com/jsalmi/liftline/internal/sqlite"
	"github.com/jsalmi/liftline/internal/testhelpers"
)

// newTestRepository opens an in-memory database and returns a repository
// together with a context authenticated as the fixture user.
func newTestRepository(t *testing.T) (*sqliteWorkoutRepository, context.Context) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	t.Cleanup(func() {
		cancel()
		_ = db.Close()
	})

	ctx = context.WithValue(ctx, contexthelpers.AuthenticatedUserIDContextKey, 1)
	return newSQLiteWorkoutRepository(db, logger), ctx
}

func TestWorkoutRepository_roundTrip(t *testing.T) {
	t.Parallel()

	repo, ctx := newTestRepository(t)

	logged := Workout{
		Date: day(0),
		Name: "Push Day",
		Exercises: []LoggedExercise{
			{ExerciseID: "bench-press", ExerciseName: "Bench Press", Sets: []WorkoutSet{
				{WeightKg: 80, Reps: 10, RIR: ptr.Ref(2), Completed: true},
				{WeightKg: 80, Reps: 8, Completed: true},
				{WeightKg: 80, Reps: 5, RIR: ptr.Ref(0), Completed: false},
			}},
			// Planned but never started, no sets at all.
			{ExerciseID: "overhead-press", ExerciseName: "Overhead Press"},
		},
	}

	id, err := repo.Log(ctx, logged)
	if err != nil {
		t.Fatalf("Log: %v", err)
	}
	if id == 0 {
		t.Fatal("Log returned zero ID")
	}

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	want := logged
	want.ID = id
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("workout mismatch (-want +got):\n%s", diff)
	}
}

func TestWorkoutRepository_listNewestFirst(t *testing.T) {
	t.Parallel()

	repo, ctx := newTestRepository(t)

	exercise := []LoggedExercise{
		{ExerciseID: "deadlift", ExerciseName: "Deadlift", Sets: []WorkoutSet{
			{WeightKg: 140, Reps: 5, Completed: true},
		}},
	}
	// Insert out of date order.
	for _, n := range []int{1, 3, 2} {
		if _, err := repo.Log(ctx, Workout{Date: day(n), Name: "Pull Day", Exercises: exercise}); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}

	workouts, err := repo.List(ctx, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	var dates []int
	for _, w := range workouts {
		dates = append(dates, w.Date.Day())
	}
	if diff := cmp.Diff([]int{4, 3, 2}, dates); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}

	limited, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("List limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited list length = %d, want 2", len(limited))
	}
}

func TestWorkoutRepository_delete(t *testing.T) {
	t.Parallel()

	repo, ctx := newTestRepository(t)

	id, err := repo.Log(ctx, Workout{Date: day(0), Exercises: []LoggedExercise{
		{ExerciseID: "barbell-squat", ExerciseName: "Barbell Squat", Sets: []WorkoutSet{
			{WeightKg: 100, Reps: 5, Completed: true},
		}},
	}})
	if err != nil {
		t.Fatalf("Log: %v", err)
	}

	if err = repo.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err = repo.Get(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete: %v, want ErrNotFound", err)
	}
	if err = repo.Delete(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete: %v, want ErrNotFound", err)
	}
}

func TestWorkoutRepository_scopedToUser(t *testing.T) {
	t.Parallel()

	repo, ctx := newTestRepository(t)

	if _, err := repo.db.ReadWrite.ExecContext(ctx,
		`INSERT INTO users (id, username) VALUES (2, 'other')`); err != nil {
		t.Fatalf("insert second user: %v", err)
	}

	id, err := repo.Log(ctx, Workout{Date: day(0), Exercises: []LoggedExercise{
		{ExerciseID: "pull-ups", ExerciseName: "Pull-ups", Sets: []WorkoutSet{
			{Reps: 8, Completed: true},
		}},
	}})
	if err != nil {
		t.Fatalf("Log: %v", err)
	}

	otherCtx := context.WithValue(ctx, contexthelpers.AuthenticatedUserIDContextKey, 2)

	if _, err = repo.Get(otherCtx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get as other user: %v, want ErrNotFound", err)
	}
	if err = repo.Delete(otherCtx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete as other user: %v, want ErrNotFound", err)
	}
	workouts, err := repo.List(otherCtx, 10)
	if err != nil {
		t.Fatalf("List as other user: %v", err)
	}
	if len(workouts) != 0 {
		t.Errorf("other user sees %d workouts, want 0", len(workouts))
	}

	// The owner still sees it.
	if _, err = repo.Get(ctx, id); err != nil {
		t.Errorf("Get as owner: %v", err)
	}
}
