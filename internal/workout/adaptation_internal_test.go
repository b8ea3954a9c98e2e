package workout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jsalmi/liftline/internal/catalog"
	"github.com/jsalmi/liftline/internal/ptr"
)

func barbellExercise() catalog.Exercise {
	return catalog.Exercise{
		ID:           "bench-press",
		Name:         "Bench Press",
		Category:     catalog.CategoryCompound,
		MuscleGroups: []string{"Chest", "Triceps"},
		Equipment:    []string{"Barbell"},
		Difficulty:   catalog.DifficultyIntermediate,
	}
}

// loadedSessions builds count identical sessions of three sets each.
func loadedSessions(count int, weight float64, reps, rir int) []ExerciseSession {
	sessions := make([]ExerciseSession, count)
	for i := range count {
		sets := make([]WorkoutSet, 3)
		for j := range sets {
			sets[j] = WorkoutSet{WeightKg: weight, Reps: reps, RIR: ptr.Ref(rir), Completed: true}
		}
		sessions[i] = ExerciseSession{
			Date:        day(-i),
			WorkoutID:   int64(count - i),
			Sets:        sets,
			BestSet:     BestSet{WeightKg: weight, Reps: reps},
			TotalVolume: weight * float64(reps) * 3,
		}
	}
	return sessions
}

func TestAnalyzeAdaptation_notEnoughData(t *testing.T) {
	t.Parallel()

	history := &ExerciseHistory{
		ExerciseID:   "bench-press",
		ExerciseName: "Bench Press",
		Sessions:     loadedSessions(2, 80, 10, 2),
	}

	got := AnalyzeAdaptation(barbellExercise(), history, 3, RepsRange{Min: 8, Max: 12})

	want := AdaptationRecommendation{
		ExerciseID:   "bench-press",
		ExerciseName: "Bench Press",
		Type:         AdaptMaintain,
		Reason:       "Not enough training data yet. Keep logging sessions.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("recommendation mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeAdaptation_performanceDecline(t *testing.T) {
	t.Parallel()

	sessions := loadedSessions(5, 80, 8, 1)
	sessions = append(sessions, loadedSessions(3, 80, 10, 1)...)
	history := &ExerciseHistory{
		ExerciseID:   "bench-press",
		ExerciseName: "Bench Press",
		Sessions:     sessions,
	}

	got := AnalyzeAdaptation(barbellExercise(), history, 3, RepsRange{Min: 8, Max: 12})

	if got.Type != AdaptDeload {
		t.Fatalf("type = %q, want %q", got.Type, AdaptDeload)
	}
	if got.SuggestedSets == nil || *got.SuggestedSets != 2 {
		t.Errorf("suggested sets = %v, want 2", got.SuggestedSets)
	}
	if got.SuggestedRestSeconds == nil || *got.SuggestedRestSeconds != 120 {
		t.Errorf("suggested rest = %v, want 120", got.SuggestedRestSeconds)
	}
	want := "Volume down 20% versus earlier sessions. Back off to recover."
	if got.Reason != want {
		t.Errorf("reason = %q, want %q", got.Reason, want)
	}
}

func TestAnalyzeAdaptation_stagnantWithSpareEffort(t *testing.T) {
	t.Parallel()

	history := &ExerciseHistory{
		ExerciseID:   "bench-press",
		ExerciseName: "Bench Press",
		Sessions:     loadedSessions(8, 80, 10, 3),
	}

	got := AnalyzeAdaptation(barbellExercise(), history, 3, RepsRange{Min: 8, Max: 12})

	if got.Type != AdaptIncreaseIntensity {
		t.Fatalf("type = %q, want %q", got.Type, AdaptIncreaseIntensity)
	}
	if got.SuggestedRestSeconds == nil || *got.SuggestedRestSeconds != 105 {
		t.Errorf("suggested rest = %v, want 105", got.SuggestedRestSeconds)
	}
	want := "Volume flat with 3 RIR to spare. Shorten rest to raise intensity."
	if got.Reason != want {
		t.Errorf("reason = %q, want %q", got.Reason, want)
	}
}

func TestAnalyzeAdaptation_stagnantAtMaxEffortSwaps(t *testing.T) {
	t.Parallel()

	history := &ExerciseHistory{
		ExerciseID:   "bench-press",
		ExerciseName: "Bench Press",
		Sessions:     loadedSessions(8, 80, 10, 0),
	}

	got := AnalyzeAdaptation(barbellExercise(), history, 3, RepsRange{Min: 8, Max: 12})

	if got.Type != AdaptSwapExercise {
		t.Fatalf("type = %q, want %q", got.Type, AdaptSwapExercise)
	}
	want := "Volume flat at maximal effort for many sessions. Swap in a different movement for new stimulus."
	if got.Reason != want {
		t.Errorf("reason = %q, want %q", got.Reason, want)
	}
}

func TestAnalyzeAdaptation_stagnantAtMaxEffortAddsVolume(t *testing.T) {
	t.Parallel()

	// Same plateau but too few sessions to justify a swap yet.
	history := &ExerciseHistory{
		ExerciseID:   "bench-press",
		ExerciseName: "Bench Press",
		Sessions:     loadedSessions(6, 80, 10, 0),
	}

	got := AnalyzeAdaptation(barbellExercise(), history, 3, RepsRange{Min: 8, Max: 12})

	if got.Type != AdaptIncreaseVolume {
		t.Fatalf("type = %q, want %q", got.Type, AdaptIncreaseVolume)
	}
	if got.SuggestedSets == nil || *got.SuggestedSets != 4 {
		t.Errorf("suggested sets = %v, want 4", got.SuggestedSets)
	}
	wantRange := &RepsRange{Min: 10, Max: 14}
	if diff := cmp.Diff(wantRange, got.SuggestedRepsRange); diff != "" {
		t.Errorf("reps range mismatch (-want +got):\n%s", diff)
	}
	want := "Volume flat at maximal effort. Add a set and widen the rep range."
	if got.Reason != want {
		t.Errorf("reason = %q, want %q", got.Reason, want)
	}
}

func TestAnalyzeAdaptation_readyForMoreWeight(t *testing.T) {
	t.Parallel()

	// Five sessions at the top of the rep range with effort in reserve.
	history := &ExerciseHistory{
		ExerciseID:   "bench-press",
		ExerciseName: "Bench Press",
		Sessions:     loadedSessions(5, 80, 12, 2),
	}

	got := AnalyzeAdaptation(barbellExercise(), history, 3, RepsRange{Min: 8, Max: 12})

	if got.Type != AdaptIncreaseIntensity {
		t.Fatalf("type = %q, want %q", got.Type, AdaptIncreaseIntensity)
	}
	want := "Hitting 12 reps with 2 RIR. Ready for more weight."
	if got.Reason != want {
		t.Errorf("reason = %q, want %q", got.Reason, want)
	}
}

func TestAnalyzeAdaptation_steadyProgressMaintains(t *testing.T) {
	t.Parallel()

	history := &ExerciseHistory{
		ExerciseID:   "bench-press",
		ExerciseName: "Bench Press",
		Sessions:     loadedSessions(5, 80, 10, 1),
	}

	got := AnalyzeAdaptation(barbellExercise(), history, 3, RepsRange{Min: 8, Max: 12})

	if got.Type != AdaptMaintain {
		t.Fatalf("type = %q, want %q", got.Type, AdaptMaintain)
	}
	if got.Reason != "Training is progressing. Keep the current prescription." {
		t.Errorf("reason = %q", got.Reason)
	}
}
