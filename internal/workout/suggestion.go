package workout

import (
	"fmt"
	"math"
)

// roundTo1 rounds to one decimal, matching how suggested weights are shown.
func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

// progression is the outcome of the progressive overload rule.
type progression struct {
	newWeightKg    float64
	newReps        int
	recommendation string
}

// calculateProgression applies the progressive overload rule to the last
// session's outcome. Missing RIR is treated as 1 upstream.
func calculateProgression(currentWeightKg float64, targetReps, actualReps, rir int) progression {
	if actualReps >= targetReps && rir >= 2 {
		return progression{
			newWeightKg:    roundTo1(currentWeightKg * 1.025),
			newReps:        targetReps,
			recommendation: "Increase weight by 2.5%",
		}
	}
	if actualReps >= targetReps && rir < 2 {
		return progression{
			newWeightKg:    currentWeightKg,
			newReps:        targetReps,
			recommendation: "Maintain current weight",
		}
	}
	return progression{
		newWeightKg:    roundTo1(currentWeightKg * 0.95),
		newReps:        targetReps,
		recommendation: "Reduce weight by 5% or target fewer reps",
	}
}

// failureFactor marks a session as failed when its average reps fall under
// 90% of the target.
const failureFactor = 0.9

// deloadAfterFailures triggers an exercise-level deload once this many
// sessions in a row missed the target.
const deloadAfterFailures = 3

// Suggest produces the next-session weight and rep suggestion for an
// exercise. History sessions must be ordered newest first; a nil or empty
// history yields the first-time suggestion. targetReps 0 falls back to the
// last best set's reps.
func Suggest(history *ExerciseHistory, targetReps int) ProgressionSuggestion {
	if history == nil || len(history.Sessions) == 0 {
		return ProgressionSuggestion{
			WeightKg:            0,
			Reps:                targetReps,
			Recommendation:      "First time - start light and find your working weight",
			Trend:               TrendMaintain,
			PreviousBest:        nil,
			ConsecutiveFailures: 0,
		}
	}

	lastSession := history.Sessions[0]
	lastBest := lastSession.BestSet
	target := targetReps
	if target == 0 {
		target = lastBest.Reps
	}

	// Count consecutive sessions that missed the target, newest first.
	consecutiveFailures := 0
	for _, session := range history.Sessions {
		if avgReps(session.Sets) < float64(target)*failureFactor {
			consecutiveFailures++
		} else {
			break
		}
	}

	if consecutiveFailures >= deloadAfterFailures {
		deloaded := lastBest.WeightKg * 0.85
		return ProgressionSuggestion{
			WeightKg: roundTo1(deloaded),
			Reps:     target,
			Recommendation: fmt.Sprintf(
				"Deload: reduce to %d for %d reps. You've missed targets %d sessions in a row.",
				int(math.Round(deloaded)), target, consecutiveFailures),
			Trend:               TrendDeload,
			PreviousBest:        &lastBest,
			ConsecutiveFailures: consecutiveFailures,
		}
	}

	reps := int(math.Round(avgReps(lastSession.Sets)))
	rir := int(math.Round(avgRIR(lastSession.Sets)))
	result := calculateProgression(lastBest.WeightKg, target, reps, rir)

	trend := TrendMaintain
	switch {
	case result.newWeightKg > lastBest.WeightKg:
		trend = TrendUp
	case result.newWeightKg < lastBest.WeightKg:
		trend = TrendDown
	}

	return ProgressionSuggestion{
		WeightKg:            result.newWeightKg,
		Reps:                result.newReps,
		Recommendation:      result.recommendation,
		Trend:               trend,
		PreviousBest:        &lastBest,
		ConsecutiveFailures: consecutiveFailures,
	}
}

func avgReps(sets []WorkoutSet) float64 {
	if len(sets) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range sets {
		sum += float64(s.Reps)
	}
	return sum / float64(len(sets))
}

// avgRIR averages reps-in-reserve over sets, treating missing values as 1.
func avgRIR(sets []WorkoutSet) float64 {
	if len(sets) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range sets {
		if s.RIR != nil {
			sum += float64(*s.RIR)
		} else {
			sum++
		}
	}
	return sum / float64(len(sets))
}
