package workout

import (
	"fmt"
	"math"
)

// ProgramUpdates reviews a finished workout against the program's targets
// and returns per-exercise feedback keyed by exercise ID. Targets whose
// exercise was skipped, or logged with no completed set, are left out.
func ProgramUpdates(completedExercises []LoggedExercise, targets []ProgramTarget) map[string]TargetUpdate {
	updates := make(map[string]TargetUpdate)

	for _, target := range targets {
		var logged *LoggedExercise
		for i := range completedExercises {
			if completedExercises[i].ExerciseID == target.ExerciseID {
				logged = &completedExercises[i]
				break
			}
		}
		if logged == nil {
			continue
		}

		var done []WorkoutSet
		for _, set := range logged.Sets {
			if set.Completed {
				done = append(done, set)
			}
		}
		if len(done) == 0 {
			continue
		}

		reps := avgReps(done)
		rir := avgRIR(done)
		roundedReps := int(math.Round(reps))

		var recommendation string
		switch {
		case reps >= float64(target.RepsMax) && rir >= 2:
			recommendation = fmt.Sprintf("Increase weight next session. Hit %d reps with %d RIR.",
				roundedReps, int(math.Round(rir)))
		case reps < float64(target.RepsMin):
			recommendation = fmt.Sprintf("Consider lowering weight. Only managed %d reps (target: %d-%d).",
				roundedReps, target.RepsMin, target.RepsMax)
		default:
			recommendation = fmt.Sprintf("Good work! %d reps is within target range.", roundedReps)
		}

		updates[target.ExerciseID] = TargetUpdate{
			Sets:           target.Sets,
			RepsMin:        target.RepsMin,
			RepsMax:        target.RepsMax,
			Recommendation: recommendation,
		}
	}

	return updates
}
