package workout

import (
	"fmt"
	"math"

	"github.com/jsalmi/liftline/internal/catalog"
)

// Adaptation analysis thresholds shared by both paths.
const (
	adaptMinSessions       = 3
	stagnationFactor       = 0.05
	declineFactor          = 0.85
	adaptSwapMinSessions   = 8
	adaptRestStep          = 15
	adaptRestFloor         = 30
	adaptDeloadRest        = 120
	adaptRepsRangeWidening = 2
)

// AnalyzeAdaptation reviews an exercise's recent history and recommends how
// to adapt its prescription. Bodyweight exercises route through the
// variation graph; loaded exercises use volume and RIR trends.
func AnalyzeAdaptation(
	exercise catalog.Exercise,
	history *ExerciseHistory,
	currentSets int,
	repsRange RepsRange,
) AdaptationRecommendation {
	if exercise.IsBodyweight() {
		return analyzeBodyweightAdaptation(exercise, history, currentSets, repsRange)
	}

	maintain := func(reason string) AdaptationRecommendation {
		return AdaptationRecommendation{
			ExerciseID:   exercise.ID,
			ExerciseName: exercise.Name,
			Type:         AdaptMaintain,
			Reason:       reason,
		}
	}

	if history == nil || len(history.Sessions) < adaptMinSessions {
		return maintain("Not enough training data yet. Keep logging sessions.")
	}

	recent := history.Sessions[:min(len(history.Sessions), 5)]
	var older []ExerciseSession
	if len(history.Sessions) > 5 {
		older = history.Sessions[5:min(len(history.Sessions), 10)]
	}

	recentAvgVolume := avgSessionVolume(recent)
	olderAvgVolume := avgSessionVolume(older)
	recentAvgReps := avgSessionReps(recent)
	recentAvgRIR := avgSessionRIR(recent)

	volumeStagnant := olderAvgVolume > 0 &&
		math.Abs(recentAvgVolume-olderAvgVolume)/olderAvgVolume < stagnationFactor
	performanceDecline := olderAvgVolume > 0 && recentAvgVolume < olderAvgVolume*declineFactor

	switch {
	case performanceDecline:
		sets := max(1, currentSets-1)
		rest := adaptDeloadRest
		return AdaptationRecommendation{
			ExerciseID:   exercise.ID,
			ExerciseName: exercise.Name,
			Type:         AdaptDeload,
			Reason: fmt.Sprintf("Volume down %d%% versus earlier sessions. Back off to recover.",
				int(math.Round((1-recentAvgVolume/olderAvgVolume)*100))),
			SuggestedSets:        &sets,
			SuggestedRestSeconds: &rest,
		}

	case volumeStagnant && recentAvgRIR >= 3:
		rest := max(adaptRestFloor, adaptDeloadRest-adaptRestStep)
		return AdaptationRecommendation{
			ExerciseID:   exercise.ID,
			ExerciseName: exercise.Name,
			Type:         AdaptIncreaseIntensity,
			Reason: fmt.Sprintf("Volume flat with %d RIR to spare. Shorten rest to raise intensity.",
				int(math.Round(recentAvgRIR))),
			SuggestedRestSeconds: &rest,
		}

	case volumeStagnant && recentAvgRIR < 1 && len(history.Sessions) >= adaptSwapMinSessions:
		return AdaptationRecommendation{
			ExerciseID:   exercise.ID,
			ExerciseName: exercise.Name,
			Type:         AdaptSwapExercise,
			Reason:       "Volume flat at maximal effort for many sessions. Swap in a different movement for new stimulus.",
		}

	case volumeStagnant && recentAvgRIR < 1:
		sets := currentSets + 1
		widened := RepsRange{
			Min: repsRange.Min + adaptRepsRangeWidening,
			Max: repsRange.Max + adaptRepsRangeWidening,
		}
		return AdaptationRecommendation{
			ExerciseID:         exercise.ID,
			ExerciseName:       exercise.Name,
			Type:               AdaptIncreaseVolume,
			Reason:             "Volume flat at maximal effort. Add a set and widen the rep range.",
			SuggestedSets:      &sets,
			SuggestedRepsRange: &widened,
		}

	case recentAvgReps >= float64(repsRange.Max) && recentAvgRIR >= 2:
		return AdaptationRecommendation{
			ExerciseID:   exercise.ID,
			ExerciseName: exercise.Name,
			Type:         AdaptIncreaseIntensity,
			Reason: fmt.Sprintf("Hitting %d reps with %d RIR. Ready for more weight.",
				int(math.Round(recentAvgReps)), int(math.Round(recentAvgRIR))),
		}
	}

	return maintain("Training is progressing. Keep the current prescription.")
}

// avgSessionVolume averages total volume over sessions.
func avgSessionVolume(sessions []ExerciseSession) float64 {
	if len(sessions) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range sessions {
		sum += s.TotalVolume
	}
	return sum / float64(len(sessions))
}

// avgSessionReps averages the per-session average reps.
func avgSessionReps(sessions []ExerciseSession) float64 {
	if len(sessions) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range sessions {
		sum += avgReps(s.Sets)
	}
	return sum / float64(len(sessions))
}

// avgSessionRIR averages the per-session average RIR, missing values as 1.
func avgSessionRIR(sessions []ExerciseSession) float64 {
	if len(sessions) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range sessions {
		sum += avgRIR(s.Sets)
	}
	return sum / float64(len(sessions))
}
