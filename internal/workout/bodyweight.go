package workout

import (
	"fmt"
	"math"

	"github.com/jsalmi/liftline/internal/catalog"
)

// Bodyweight-specific thresholds. Without load to adjust, progression moves
// through rep counts and exercise variations instead.
const (
	bodyweightExceedFactor  = 1.2
	bodyweightFailingFactor = 0.7
)

// analyzeBodyweightAdaptation recommends variation changes for bodyweight
// exercises using the catalog's progression edges.
func analyzeBodyweightAdaptation(
	exercise catalog.Exercise,
	history *ExerciseHistory,
	currentSets int,
	repsRange RepsRange,
) AdaptationRecommendation {
	maintain := func(reason string) AdaptationRecommendation {
		return AdaptationRecommendation{
			ExerciseID:   exercise.ID,
			ExerciseName: exercise.Name,
			Type:         AdaptMaintain,
			Reason:       reason,
		}
	}

	if history == nil || len(history.Sessions) < adaptMinSessions {
		return maintain("Building baseline - keep current variation")
	}

	recent := history.Sessions[:min(len(history.Sessions), 5)]
	var older []ExerciseSession
	if len(history.Sessions) > 5 {
		older = history.Sessions[5:min(len(history.Sessions), 10)]
	}

	recentAvgReps := avgSessionReps(recent)
	olderAvgReps := recentAvgReps
	if len(older) > 0 {
		olderAvgReps = avgSessionReps(older)
	}
	avgRir := avgSessionRIR(recent)

	edges, hasEdges := catalog.ProgressionFor(exercise.ID)
	if !hasEdges {
		edges = exercise.Progression
	}

	repsStagnant := olderAvgReps > 0 &&
		math.Abs(recentAvgReps-olderAvgReps)/olderAvgReps < stagnationFactor

	exceedsMaxReps := recentAvgReps >= float64(repsRange.Max)*bodyweightExceedFactor
	highRepsLowRir := recentAvgReps >= float64(repsRange.Max) && avgRir >= 3

	failingMinReps := recentAvgReps < float64(repsRange.Min)*bodyweightFailingFactor
	lowRepsNoRir := recentAvgReps < float64(repsRange.Min) && avgRir < 1

	if (failingMinReps || lowRepsNoRir) && edges.Easier != nil {
		return AdaptationRecommendation{
			ExerciseID:   exercise.ID,
			ExerciseName: exercise.Name,
			Type:         AdaptRegressVariation,
			Reason: fmt.Sprintf(
				"Struggling with current variation (avg %d reps). Try an easier variation to build strength.",
				int(math.Round(recentAvgReps))),
			ProgressionVariation: &ProgressionVariation{
				ID:         edges.Easier.ID,
				Name:       edges.Easier.Name,
				Difficulty: "easier",
			},
		}
	}

	if (exceedsMaxReps || highRepsLowRir) && edges.Harder != nil {
		return AdaptationRecommendation{
			ExerciseID:   exercise.ID,
			ExerciseName: exercise.Name,
			Type:         AdaptProgressVariation,
			Reason: fmt.Sprintf(
				"Exceeding %d reps with %d RIR. Ready for a harder variation!",
				int(math.Round(recentAvgReps)), int(math.Round(avgRir))),
			ProgressionVariation: &ProgressionVariation{
				ID:         edges.Harder.ID,
				Name:       edges.Harder.Name,
				Difficulty: "harder",
			},
		}
	}

	if repsStagnant && avgRir < 2 {
		if len(edges.Alternatives) > 0 {
			alternative := edges.Alternatives[0]
			ids := make([]string, len(edges.Alternatives))
			for i, alt := range edges.Alternatives {
				ids[i] = alt.ID
			}
			return AdaptationRecommendation{
				ExerciseID:   exercise.ID,
				ExerciseName: exercise.Name,
				Type:         AdaptSwapExercise,
				Reason: fmt.Sprintf(
					"Plateaued at %d reps for %d sessions. Try a variation for different stimulus.",
					int(math.Round(recentAvgReps)), len(history.Sessions)),
				ProgressionVariation: &ProgressionVariation{
					ID:         alternative.ID,
					Name:       alternative.Name,
					Difficulty: "harder",
				},
				AlternativeExercises: ids,
			}
		}

		sets := currentSets + 1
		return AdaptationRecommendation{
			ExerciseID:   exercise.ID,
			ExerciseName: exercise.Name,
			Type:         AdaptIncreaseVolume,
			Reason: fmt.Sprintf(
				"Plateaued at %d reps. Add a set or increase time under tension.",
				int(math.Round(recentAvgReps))),
			SuggestedSets: &sets,
		}
	}

	if recentAvgReps > olderAvgReps && recentAvgReps < float64(repsRange.Max) {
		return maintain(fmt.Sprintf(
			"Progressing well! Keep pushing toward %d reps before moving to harder variation.",
			repsRange.Max))
	}

	return maintain("Continue current training. Focus on form and controlled tempo.")
}
