package main

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/jsalmi/liftline/internal/e2etest"
	"github.com/jsalmi/liftline/internal/testhelpers"
	"github.com/jsalmi/liftline/internal/workout"
)

func Test_application_workoutLifecycle(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	client := server.Client()
	if err = client.Login(ctx, "ada"); err != nil {
		t.Fatalf("Failed to login: %v", err)
	}

	// An empty workout is rejected.
	status, err := client.Status(ctx, http.MethodPost, "/api/workouts", map[string]any{"name": "empty"})
	if err != nil {
		t.Fatalf("Failed to post empty workout: %v", err)
	}
	if status != http.StatusBadRequest {
		t.Errorf("empty workout status = %d, want 400", status)
	}

	logged := map[string]any{
		"date": "2026-02-01T00:00:00Z",
		"name": "Push Day",
		"exercises": []map[string]any{{
			"exercise_id":   "bench-press",
			"exercise_name": "Bench Press",
			"sets": []map[string]any{
				{"weight_kg": 80, "reps": 10, "rir": 3, "completed": true},
				{"weight_kg": 80, "reps": 10, "rir": 3, "completed": true},
			},
		}},
	}
	var created map[string]int64
	if err = client.PostJSON(ctx, "/api/workouts", logged, &created); err != nil {
		t.Fatalf("Failed to log workout: %v", err)
	}
	workoutID := created["workout_id"]
	if workoutID == 0 {
		t.Fatal("expected a workout id")
	}

	var workouts []workout.Workout
	if err = client.GetJSON(ctx, "/api/workouts", &workouts); err != nil {
		t.Fatalf("Failed to list workouts: %v", err)
	}
	if len(workouts) != 1 || workouts[0].Name != "Push Day" {
		t.Fatalf("workouts = %+v, want one named Push Day", workouts)
	}

	// Progression suggestion builds on the logged session.
	var suggestion workout.ProgressionSuggestion
	if err = client.GetJSON(ctx, "/api/exercises/bench-press/suggestion?target_reps=10", &suggestion); err != nil {
		t.Fatalf("Failed to get suggestion: %v", err)
	}
	if suggestion.WeightKg != 82 {
		t.Errorf("suggested weight = %v, want 82", suggestion.WeightKg)
	}

	var history workout.ExerciseHistory
	if err = client.GetJSON(ctx, "/api/exercises/bench-press/history", &history); err != nil {
		t.Fatalf("Failed to get history: %v", err)
	}
	if len(history.Sessions) != 1 || history.Sessions[0].TotalVolume != 1600 {
		t.Errorf("history = %+v, want one session with volume 1600", history)
	}

	// Unknown exercise history is a 404.
	status, err = client.Status(ctx, http.MethodGet, "/api/exercises/never-logged/history", nil)
	if err != nil {
		t.Fatalf("Failed to get missing history: %v", err)
	}
	if status != http.StatusNotFound {
		t.Errorf("missing history status = %d, want 404", status)
	}

	var deload workout.DeloadRecommendation
	if err = client.GetJSON(ctx, "/api/deload", &deload); err != nil {
		t.Fatalf("Failed to get deload: %v", err)
	}
	if deload.Needed {
		t.Error("one workout should not need a deload")
	}

	if err = client.Delete(ctx, fmt.Sprintf("/api/workouts/%d", workoutID)); err != nil {
		t.Fatalf("Failed to delete workout: %v", err)
	}
	status, err = client.Status(ctx, http.MethodDelete, fmt.Sprintf("/api/workouts/%d", workoutID), nil)
	if err != nil {
		t.Fatalf("Failed to delete workout twice: %v", err)
	}
	if status != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", status)
	}
}
