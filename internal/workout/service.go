package workout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsalmi/liftline/internal/catalog"
	"github.com/jsalmi/liftline/internal/sqlite"
)

// deloadScanLimit caps how many workouts the deload analysis considers.
const deloadScanLimit = 20

// Service handles the business logic for workout logging and progression
// analysis.
type Service struct {
	repo    *repository
	catalog *catalog.Service
	logger  *slog.Logger
}

// NewService creates a new workout service.
func NewService(db *sqlite.Database, logger *slog.Logger, catalogService *catalog.Service) *Service {
	return &Service{
		repo:    newRepository(db, logger),
		catalog: catalogService,
		logger:  logger,
	}
}

// LogWorkout persists a finished workout and returns its ID.
func (s *Service) LogWorkout(ctx context.Context, w Workout) (int64, error) {
	if len(w.Exercises) == 0 {
		return 0, fmt.Errorf("workout has no exercises")
	}
	id, err := s.repo.workouts.Log(ctx, w)
	if err != nil {
		return 0, fmt.Errorf("log workout: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "workout logged",
		slog.Int64("workout_id", id),
		slog.Int("exercises", len(w.Exercises)))
	return id, nil
}

// Workouts lists the user's workouts newest first.
func (s *Service) Workouts(ctx context.Context, limit int) ([]Workout, error) {
	if limit <= 0 || limit > historyScanLimit {
		limit = historyScanLimit
	}
	workouts, err := s.repo.workouts.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, nil
}

// DeleteWorkout removes a workout owned by the user.
func (s *Service) DeleteWorkout(ctx context.Context, id int64) error {
	if err := s.repo.workouts.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete workout %d: %w", id, err)
	}
	return nil
}

// History aggregates the user's training history for one exercise. A nil
// history means the exercise was never performed.
func (s *Service) History(ctx context.Context, exerciseID string, sessionLimit int) (*ExerciseHistory, error) {
	workouts, err := s.repo.workouts.List(ctx, historyScanLimit)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return BuildHistory(workouts, exerciseID, sessionLimit), nil
}

// MultiHistory aggregates histories for several exercises in one scan.
func (s *Service) MultiHistory(ctx context.Context, exerciseIDs []string) (map[string]*ExerciseHistory, error) {
	workouts, err := s.repo.workouts.List(ctx, historyScanLimit)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return BuildMultiHistory(workouts, exerciseIDs), nil
}

// Suggestion produces the next-session progression suggestion for an
// exercise.
func (s *Service) Suggestion(ctx context.Context, exerciseID string, targetReps int) (ProgressionSuggestion, error) {
	history, err := s.History(ctx, exerciseID, defaultSessionLimit)
	if err != nil {
		return ProgressionSuggestion{}, fmt.Errorf("build history for %s: %w", exerciseID, err)
	}
	return Suggest(history, targetReps), nil
}

// Deload analyzes recent training for accumulated fatigue.
func (s *Service) Deload(ctx context.Context) (DeloadRecommendation, error) {
	workouts, err := s.repo.workouts.List(ctx, deloadScanLimit)
	if err != nil {
		return DeloadRecommendation{}, fmt.Errorf("list workouts: %w", err)
	}
	return CheckDeload(workouts), nil
}

// Adaptation analyzes one exercise's recent history against its current
// prescription.
func (s *Service) Adaptation(
	ctx context.Context,
	exerciseID string,
	currentSets int,
	repsRange RepsRange,
) (AdaptationRecommendation, error) {
	exercise, err := s.catalog.Get(ctx, exerciseID)
	if err != nil {
		return AdaptationRecommendation{}, fmt.Errorf("resolve exercise %s: %w", exerciseID, err)
	}
	history, err := s.History(ctx, exerciseID, defaultSessionLimit)
	if err != nil {
		return AdaptationRecommendation{}, fmt.Errorf("build history for %s: %w", exerciseID, err)
	}
	return AnalyzeAdaptation(exercise, history, currentSets, repsRange), nil
}

// ReviewWorkout compares a logged workout against program targets and
// returns per-exercise feedback.
func (s *Service) ReviewWorkout(ctx context.Context, workoutID int64, targets []ProgramTarget) (map[string]TargetUpdate, error) {
	w, err := s.repo.workouts.Get(ctx, workoutID)
	if err != nil {
		return nil, fmt.Errorf("get workout %d: %w", workoutID, err)
	}
	return ProgramUpdates(w.Exercises, targets), nil
}
