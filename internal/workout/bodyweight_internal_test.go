package workout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jsalmi/liftline/internal/catalog"
	"github.com/jsalmi/liftline/internal/ptr"
)

func bodyweightExercise(id, name string) catalog.Exercise {
	return catalog.Exercise{
		ID:           id,
		Name:         name,
		Category:     catalog.CategoryCompound,
		MuscleGroups: []string{"Chest"},
		Equipment:    []string{catalog.BodyweightEquipment},
		Difficulty:   catalog.DifficultyBeginner,
	}
}

// bodyweightSessions builds count sessions with identical reps and RIR.
func bodyweightSessions(count, reps, rir int) []ExerciseSession {
	sessions := make([]ExerciseSession, count)
	for i := range count {
		set := WorkoutSet{Reps: reps, RIR: ptr.Ref(rir), Completed: true}
		sessions[i] = ExerciseSession{
			Date:      day(-i),
			WorkoutID: int64(count - i),
			Sets:      []WorkoutSet{set},
			BestSet:   BestSet{WeightKg: 0, Reps: reps},
		}
	}
	return sessions
}

func TestAnalyzeAdaptation_bodyweightBaseline(t *testing.T) {
	t.Parallel()

	exercise := bodyweightExercise("push-ups", "Push-ups")
	history := &ExerciseHistory{
		ExerciseID:   "push-ups",
		ExerciseName: "Push-ups",
		Sessions:     bodyweightSessions(2, 10, 2),
	}

	got := AnalyzeAdaptation(exercise, history, 3, RepsRange{Min: 8, Max: 12})

	want := AdaptationRecommendation{
		ExerciseID:   "push-ups",
		ExerciseName: "Push-ups",
		Type:         AdaptMaintain,
		Reason:       "Building baseline - keep current variation",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("recommendation mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeAdaptation_bodyweightProgressVariation(t *testing.T) {
	t.Parallel()

	exercise := bodyweightExercise("push-ups", "Push-ups")
	history := &ExerciseHistory{
		ExerciseID:   "push-ups",
		ExerciseName: "Push-ups",
		// Well above the 12 rep ceiling with effort to spare.
		Sessions: bodyweightSessions(5, 15, 3),
	}

	got := AnalyzeAdaptation(exercise, history, 3, RepsRange{Min: 8, Max: 12})

	if got.Type != AdaptProgressVariation {
		t.Fatalf("type = %q, want %q", got.Type, AdaptProgressVariation)
	}
	wantVariation := &ProgressionVariation{
		ID:         "diamond-push-ups",
		Name:       "Diamond Push-ups",
		Difficulty: "harder",
	}
	if diff := cmp.Diff(wantVariation, got.ProgressionVariation); diff != "" {
		t.Errorf("variation mismatch (-want +got):\n%s", diff)
	}
	want := "Exceeding 15 reps with 3 RIR. Ready for a harder variation!"
	if got.Reason != want {
		t.Errorf("reason = %q, want %q", got.Reason, want)
	}
}

func TestAnalyzeAdaptation_bodyweightRegressVariation(t *testing.T) {
	t.Parallel()

	exercise := bodyweightExercise("push-ups", "Push-ups")
	history := &ExerciseHistory{
		ExerciseID:   "push-ups",
		ExerciseName: "Push-ups",
		Sessions:     bodyweightSessions(3, 4, 0),
	}

	got := AnalyzeAdaptation(exercise, history, 3, RepsRange{Min: 8, Max: 12})

	if got.Type != AdaptRegressVariation {
		t.Fatalf("type = %q, want %q", got.Type, AdaptRegressVariation)
	}
	if got.ProgressionVariation == nil || got.ProgressionVariation.ID != "incline-push-ups" {
		t.Errorf("variation = %+v, want incline-push-ups", got.ProgressionVariation)
	}
	want := "Struggling with current variation (avg 4 reps). Try an easier variation to build strength."
	if got.Reason != want {
		t.Errorf("reason = %q, want %q", got.Reason, want)
	}
}

func TestAnalyzeAdaptation_bodyweightRegressUsesExerciseEdges(t *testing.T) {
	t.Parallel()

	// An exercise unknown to the built-in progression graph falls back to
	// the edges carried on the exercise itself.
	exercise := bodyweightExercise("custom-tuck-planche", "Tuck Planche")
	exercise.Progression = catalog.ProgressionEdges{
		Easier: &catalog.Variation{ID: "custom-frog-stand", Name: "Frog Stand"},
	}
	history := &ExerciseHistory{
		ExerciseID:   "custom-tuck-planche",
		ExerciseName: "Tuck Planche",
		Sessions:     bodyweightSessions(3, 2, 0),
	}

	got := AnalyzeAdaptation(exercise, history, 3, RepsRange{Min: 5, Max: 10})

	if got.Type != AdaptRegressVariation {
		t.Fatalf("type = %q, want %q", got.Type, AdaptRegressVariation)
	}
	if got.ProgressionVariation == nil || got.ProgressionVariation.ID != "custom-frog-stand" {
		t.Errorf("variation = %+v, want custom-frog-stand", got.ProgressionVariation)
	}
}

func TestAnalyzeAdaptation_bodyweightPlateauSwapsAlternative(t *testing.T) {
	t.Parallel()

	exercise := bodyweightExercise("push-ups", "Push-ups")
	history := &ExerciseHistory{
		ExerciseID:   "push-ups",
		ExerciseName: "Push-ups",
		// Six identical sessions at maximal effort.
		Sessions: bodyweightSessions(6, 10, 1),
	}

	got := AnalyzeAdaptation(exercise, history, 3, RepsRange{Min: 8, Max: 12})

	if got.Type != AdaptSwapExercise {
		t.Fatalf("type = %q, want %q", got.Type, AdaptSwapExercise)
	}
	if got.ProgressionVariation == nil || got.ProgressionVariation.ID != "wide-push-ups" {
		t.Errorf("variation = %+v, want wide-push-ups", got.ProgressionVariation)
	}
	wantAlternatives := []string{"wide-push-ups", "decline-push-ups"}
	if diff := cmp.Diff(wantAlternatives, got.AlternativeExercises); diff != "" {
		t.Errorf("alternatives mismatch (-want +got):\n%s", diff)
	}
	want := "Plateaued at 10 reps for 6 sessions. Try a variation for different stimulus."
	if got.Reason != want {
		t.Errorf("reason = %q, want %q", got.Reason, want)
	}
}

func TestAnalyzeAdaptation_bodyweightPlateauWithoutAlternatives(t *testing.T) {
	t.Parallel()

	exercise := bodyweightExercise("diamond-push-ups", "Diamond Push-ups")
	history := &ExerciseHistory{
		ExerciseID:   "diamond-push-ups",
		ExerciseName: "Diamond Push-ups",
		Sessions:     bodyweightSessions(6, 10, 1),
	}

	got := AnalyzeAdaptation(exercise, history, 3, RepsRange{Min: 8, Max: 12})

	if got.Type != AdaptIncreaseVolume {
		t.Fatalf("type = %q, want %q", got.Type, AdaptIncreaseVolume)
	}
	if got.SuggestedSets == nil || *got.SuggestedSets != 4 {
		t.Errorf("suggested sets = %v, want 4", got.SuggestedSets)
	}
	want := "Plateaued at 10 reps. Add a set or increase time under tension."
	if got.Reason != want {
		t.Errorf("reason = %q, want %q", got.Reason, want)
	}
}

func TestAnalyzeAdaptation_bodyweightProgressingWell(t *testing.T) {
	t.Parallel()

	exercise := bodyweightExercise("push-ups", "Push-ups")
	sessions := bodyweightSessions(5, 10, 2)
	sessions = append(sessions, bodyweightSessions(3, 8, 2)...)
	history := &ExerciseHistory{
		ExerciseID:   "push-ups",
		ExerciseName: "Push-ups",
		Sessions:     sessions,
	}

	got := AnalyzeAdaptation(exercise, history, 3, RepsRange{Min: 8, Max: 12})

	if got.Type != AdaptMaintain {
		t.Fatalf("type = %q, want %q", got.Type, AdaptMaintain)
	}
	want := "Progressing well! Keep pushing toward 12 reps before moving to harder variation."
	if got.Reason != want {
		t.Errorf("reason = %q, want %q", got.Reason, want)
	}
}

func TestAnalyzeAdaptation_bodyweightDefault(t *testing.T) {
	t.Parallel()

	exercise := bodyweightExercise("push-ups", "Push-ups")
	// Reps trending down but not yet under the failing threshold.
	sessions := bodyweightSessions(5, 8, 2)
	sessions = append(sessions, bodyweightSessions(3, 10, 2)...)
	history := &ExerciseHistory{
		ExerciseID:   "push-ups",
		ExerciseName: "Push-ups",
		Sessions:     sessions,
	}

	got := AnalyzeAdaptation(exercise, history, 3, RepsRange{Min: 8, Max: 12})

	if got.Type != AdaptMaintain {
		t.Fatalf("type = %q, want %q", got.Type, AdaptMaintain)
	}
	want := "Continue current training. Focus on form and controlled tempo."
	if got.Reason != want {
		t.Errorf("reason = %q, want %q", got.Reason, want)
	}
}
