package workout

import (
	"context"
	"testing"

	"github.com/jsalmi/liftline/internal/catalog"
	"github.com/jsalmi/liftline/internal/contexthelpers"
	"github.com/jsalmi/liftline/internal/ptr"
	"github.com/jsalmi/liftline/internal/sqlite"
	"github.com/jsalmi/liftline/internal/testhelpers"
)

func newTestService(t *testing.T) (*Service, context.Context) {
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

	// No API key, the catalog serves its built-in pool.
	catalogService := catalog.NewService(logger, catalog.NewClient(logger, nil, ""))

	ctx = context.WithValue(ctx, contexthelpers.AuthenticatedUserIDContextKey, 1)
	return NewService(db, logger, catalogService), ctx
}

func TestService_rejectsEmptyWorkout(t *testing.T) {
	t.Parallel()

	service, ctx := newTestService(t)

	if _, err := service.LogWorkout(ctx, Workout{Date: day(0), Name: "Rest Day"}); err == nil {
		t.Error("expected an error for a workout without exercises")
	}
}

func TestService_suggestionFromLoggedWorkouts(t *testing.T) {
	t.Parallel()

	service, ctx := newTestService(t)

	workout := Workout{
		Date: day(0),
		Name: "Push Day",
		Exercises: []LoggedExercise{
			{ExerciseID: "bench-press", ExerciseName: "Bench Press", Sets: []WorkoutSet{
				{WeightKg: 80, Reps: 10, RIR: ptr.Ref(2), Completed: true},
				{WeightKg: 80, Reps: 10, RIR: ptr.Ref(2), Completed: true},
			}},
		},
	}
	if _, err := service.LogWorkout(ctx, workout); err != nil {
		t.Fatalf("LogWorkout: %v", err)
	}

	suggestion, err := service.Suggestion(ctx, "bench-press", 10)
	if err != nil {
		t.Fatalf("Suggestion: %v", err)
	}
	if suggestion.WeightKg != 82 {
		t.Errorf("suggested weight = %v, want 82", suggestion.WeightKg)
	}
	if suggestion.Trend != TrendUp {
		t.Errorf("trend = %q, want %q", suggestion.Trend, TrendUp)
	}

	// An exercise never trained gets the first-time suggestion.
	fresh, err := service.Suggestion(ctx, "deadlift", 5)
	if err != nil {
		t.Fatalf("Suggestion fresh: %v", err)
	}
	if fresh.WeightKg != 0 || fresh.Reps != 5 {
		t.Errorf("fresh suggestion = %v kg x %d, want 0 kg x 5", fresh.WeightKg, fresh.Reps)
	}
}

func TestService_reviewWorkout(t *testing.T) {
	t.Parallel()

	service, ctx := newTestService(t)

	id, err := service.LogWorkout(ctx, Workout{
		Date: day(0),
		Name: "Legs",
		Exercises: []LoggedExercise{
			{ExerciseID: "barbell-squat", ExerciseName: "Barbell Squat", Sets: []WorkoutSet{
				{WeightKg: 100, Reps: 10, RIR: ptr.Ref(1), Completed: true},
			}},
		},
	})
	if err != nil {
		t.Fatalf("LogWorkout: %v", err)
	}

	updates, err := service.ReviewWorkout(ctx, id, []ProgramTarget{
		{ExerciseID: "barbell-squat", Sets: 3, RepsMin: 8, RepsMax: 12},
	})
	if err != nil {
		t.Fatalf("ReviewWorkout: %v", err)
	}
	update, ok := updates["barbell-squat"]
	if !ok {
		t.Fatal("expected an update for barbell-squat")
	}
	if update.Recommendation != "Good work! 10 reps is within target range." {
		t.Errorf("recommendation = %q", update.Recommendation)
	}
}

func TestService_adaptationUsesCatalog(t *testing.T) {
	t.Parallel()

	service, ctx := newTestService(t)

	for n := range 3 {
		workout := Workout{
			Date: day(n),
			Name: "Push Day",
			Exercises: []LoggedExercise{
				{ExerciseID: "push-ups", ExerciseName: "Push-ups", Sets: []WorkoutSet{
					{Reps: 16, RIR: ptr.Ref(3), Completed: true},
				}},
			},
		}
		if _, err := service.LogWorkout(ctx, workout); err != nil {
			t.Fatalf("LogWorkout: %v", err)
		}
	}

	recommendation, err := service.Adaptation(ctx, "push-ups", 3, RepsRange{Min: 8, Max: 12})
	if err != nil {
		t.Fatalf("Adaptation: %v", err)
	}
	if recommendation.Type != AdaptProgressVariation {
		t.Fatalf("type = %q, want %q", recommendation.Type, AdaptProgressVariation)
	}
	if recommendation.ProgressionVariation == nil ||
		recommendation.ProgressionVariation.ID != "diamond-push-ups" {
		t.Errorf("variation = %+v, want diamond-push-ups", recommendation.ProgressionVariation)
	}

	if _, err = service.Adaptation(ctx, "no-such-exercise", 3, RepsRange{Min: 8, Max: 12}); err == nil {
		t.Error("expected an error for an unknown exercise")
	}
}
