// Command stresstest drives concurrent users against a running instance to
// shake out contention in the session store and the SQLite write path. Each
// simulated user logs in, logs a block of workouts, and polls progression
// endpoints, mimicking a busy evening at the gym.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jsalmi/liftline/internal/e2etest"
	"github.com/jsalmi/liftline/internal/logging"
	"github.com/jsalmi/liftline/internal/testhelpers"
	"github.com/jsalmi/liftline/internal/workout"
	"golang.org/x/sync/errgroup"
)

const (
	userCount              = 50
	workoutsPerUser        = 10
	maxConcurrentUsers     = 10
	scenarioTimeout        = 2 * time.Minute
	successRateThreshold   = 95.0
	percentageMultiplier   = 100
	baseWeight             = 40.0
	weightVariation        = 20
	baseReps               = 8
	repsVariation          = 4
	expectedArgsCount      = 2
	workoutSetsPerExercise = 3
)

var stressExercises = []string{"push-ups", "bodyweight-squat", "plank", "lunges"}

type counters struct {
	operations atomic.Int64
	failures   atomic.Int64
}

func (c *counters) record(err error) error {
	c.operations.Add(1)
	if err != nil {
		c.failures.Add(1)
	}
	return err
}

func (c *counters) successRate() float64 {
	ops := c.operations.Load()
	if ops == 0 {
		return 0
	}
	return float64(ops-c.failures.Load()) / float64(ops) * percentageMultiplier
}

func randomSets(rng *rand.Rand) []workout.WorkoutSet {
	sets := make([]workout.WorkoutSet, workoutSetsPerExercise)
	for i := range sets {
		rir := rng.IntN(4)
		sets[i] = workout.WorkoutSet{
			WeightKg:  baseWeight + float64(rng.IntN(weightVariation)),
			Reps:      baseReps + rng.IntN(repsVariation),
			RIR:       &rir,
			Completed: true,
		}
	}
	return sets
}

// runUser executes the full scenario for one simulated user. Individual
// operation failures are counted but do not abort the scenario.
func runUser(ctx context.Context, url string, userIndex int, c *counters, logger *slog.Logger) error {
	client, err := e2etest.NewClient(url)
	if err != nil {
		return fmt.Errorf("create client for user %d: %w", userIndex, err)
	}

	username := fmt.Sprintf("stress-%d-%d", time.Now().UnixNano(), userIndex)
	if err = c.record(client.Login(ctx, username)); err != nil {
		return fmt.Errorf("login user %d: %w", userIndex, err)
	}

	rng := rand.New(rand.NewPCG(uint64(userIndex), uint64(time.Now().UnixNano()))) //nolint:gosec // load generation, not crypto.

	for i := range workoutsPerUser {
		exercise := stressExercises[rng.IntN(len(stressExercises))]
		logged := workout.Workout{
			Name: fmt.Sprintf("Stress Session %d", i+1),
			Exercises: []workout.LoggedExercise{{
				ExerciseID: exercise,
				Sets:       randomSets(rng),
			}},
		}

		var created struct {
			WorkoutID int64 `json:"workout_id"`
		}
		if err = c.record(client.PostJSON(ctx, "/api/workouts", logged, &created)); err != nil {
			logger.LogAttrs(ctx, slog.LevelWarn, "log workout failed",
				slog.Int("user", userIndex), slog.Any("error", err))
			continue
		}

		var suggestion workout.ProgressionSuggestion
		suggestionPath := fmt.Sprintf("/api/exercises/%s/suggestion?target_reps=%d", exercise, baseReps)
		if err = c.record(client.GetJSON(ctx, suggestionPath, &suggestion)); err != nil {
			logger.LogAttrs(ctx, slog.LevelWarn, "read suggestion failed",
				slog.Int("user", userIndex), slog.Any("error", err))
		}
	}

	var deload workout.DeloadRecommendation
	if err = c.record(client.GetJSON(ctx, "/api/deload", &deload)); err != nil {
		logger.LogAttrs(ctx, slog.LevelWarn, "deload check failed",
			slog.Int("user", userIndex), slog.Any("error", err))
	}

	return c.record(client.Logout(ctx))
}

func runScenario(ctx context.Context, url string, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, scenarioTimeout)
	defer cancel()

	var c counters
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentUsers)

	for userIndex := range userCount {
		g.Go(func() error {
			return runUser(ctx, url, userIndex, &c, logger)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("stress scenario: %w", err)
	}

	rate := c.successRate()
	logger.LogAttrs(ctx, slog.LevelInfo, "stress scenario finished",
		slog.Int64("operations", c.operations.Load()),
		slog.Int64("failures", c.failures.Load()),
		slog.String("success_rate", fmt.Sprintf("%.1f%%", rate)))

	if rate < successRateThreshold {
		return fmt.Errorf("success rate %.1f%% below threshold %.1f%%", rate, successRateThreshold)
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != expectedArgsCount {
		logger.LogAttrs(ctx, slog.LevelError, "usage: stresstest <hostname>")
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

	if err = runScenario(ctx, url, logger); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "stress test failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Stress test successful 💪", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}
