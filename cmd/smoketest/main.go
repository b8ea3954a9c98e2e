// Command smoketest runs a quick end-to-end pass against a deployed
// instance: login, log a workout, read back progression advice, logout.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jsalmi/liftline/internal/e2etest"
	"github.com/jsalmi/liftline/internal/logging"
	"github.com/jsalmi/liftline/internal/testhelpers"
	"github.com/jsalmi/liftline/internal/workout"
)

const smokeTimeout = 10 * time.Second

func testAuth(ctx context.Context, client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(ctx, smokeTimeout)
	defer cancel()

	username := fmt.Sprintf("smoketest-%d", time.Now().UnixNano())
	if err := client.Login(ctx, username); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return nil
}

func testWorkoutRoundTrip(ctx context.Context, client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(ctx, smokeTimeout)
	defer cancel()

	logged := workout.Workout{
		Name: "Smoke Test Session",
		Exercises: []workout.LoggedExercise{{
			ExerciseID: "push-ups",
			Sets:       []workout.WorkoutSet{{Reps: 10, Completed: true}},
		}},
	}
	var created struct {
		WorkoutID int64 `json:"workout_id"`
	}
	if err := client.PostJSON(ctx, "/api/workouts", logged, &created); err != nil {
		return fmt.Errorf("log workout: %w", err)
	}

	var suggestion workout.ProgressionSuggestion
	if err := client.GetJSON(ctx, "/api/exercises/push-ups/suggestion?target_reps=10", &suggestion); err != nil {
		return fmt.Errorf("read suggestion: %w", err)
	}
	if suggestion.Recommendation == "" {
		return fmt.Errorf("suggestion for push-ups has no recommendation")
	}

	// Clean up so repeated smoke runs do not pollute progression history.
	if err := client.Delete(ctx, fmt.Sprintf("/api/workouts/%d", created.WorkoutID)); err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	if err := client.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	client, err := e2etest.NewClient(url)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}
	if err = testAuth(ctx, client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing auth", slog.Any("error", err))
		os.Exit(1)
	}
	if err = testWorkoutRoundTrip(ctx, client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing workout round trip", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}
