package workout

import (
	"fmt"
	"math"
	"time"
)

// Deload analysis thresholds.
const (
	deloadMinWorkouts       = 6
	deloadVolumeDropFactor  = 0.85
	deloadLongStreakDays    = 28
	deloadLongStreakCount   = 12
	deloadProactiveCount    = 16
	deloadLowCompletionRate = 0.75
)

// CheckDeload analyzes recent workouts for accumulated fatigue. Workouts
// must be ordered newest first; callers pass at most the last 20.
func CheckDeload(workouts []Workout) DeloadRecommendation {
	none := func(reason string) DeloadRecommendation {
		return DeloadRecommendation{
			Needed:           false,
			Reason:           reason,
			WeightMultiplier: 1,
			VolumeMultiplier: 1,
		}
	}

	if len(workouts) < deloadMinWorkouts {
		return none("Not enough training data yet")
	}

	var dates []time.Time
	for _, w := range workouts {
		if !w.Date.IsZero() {
			dates = append(dates, w.Date)
		}
	}
	if len(dates) < 2 {
		return none("Insufficient data")
	}
	span := dates[0].Sub(dates[len(dates)-1])
	trainingSpanDays := int(math.Round(span.Hours() / 24))

	avgRecent := avgWorkoutVolume(workouts[:min(len(workouts), 5)])
	var avgOlder float64
	if len(workouts) > 5 {
		avgOlder = avgWorkoutVolume(workouts[5:min(len(workouts), 10)])
	}

	avgCompletion := avgCompletionRate(workouts[:min(len(workouts), 5)])

	volumeDeclining := avgOlder > 0 && avgRecent < avgOlder*deloadVolumeDropFactor
	longStreak := trainingSpanDays >= deloadLongStreakDays && len(workouts) >= deloadLongStreakCount
	lowCompletion := avgCompletion < deloadLowCompletionRate

	if volumeDeclining && longStreak {
		dropPct := int(math.Round((1 - avgRecent/avgOlder) * 100))
		return DeloadRecommendation{
			Needed: true,
			Reason: fmt.Sprintf(
				"Volume has dropped %d%% over recent sessions after %d days of training. Time for a deload week.",
				dropPct, trainingSpanDays),
			WeightMultiplier: 0.85,
			VolumeMultiplier: 0.6,
		}
	}

	if lowCompletion && longStreak {
		return DeloadRecommendation{
			Needed: true,
			Reason: fmt.Sprintf(
				"Set completion rate has dropped to %d%%. A deload will help you recover and push through the plateau.",
				int(math.Round(avgCompletion*100))),
			WeightMultiplier: 0.85,
			VolumeMultiplier: 0.6,
		}
	}

	if longStreak && len(workouts) >= deloadProactiveCount {
		return DeloadRecommendation{
			Needed: true,
			Reason: fmt.Sprintf(
				"You've been training for %d days (%d sessions) without a light week. A proactive deload is recommended.",
				trainingSpanDays, len(workouts)),
			WeightMultiplier: 0.9,
			VolumeMultiplier: 0.7,
		}
	}

	return none("Training load looks sustainable. Keep pushing!")
}

// avgWorkoutVolume averages the completed-set volume per workout.
func avgWorkoutVolume(workouts []Workout) float64 {
	if len(workouts) == 0 {
		return 0
	}
	total := 0.0
	for _, w := range workouts {
		for _, ex := range w.Exercises {
			for _, set := range ex.Sets {
				if set.Completed {
					total += set.Volume()
				}
			}
		}
	}
	return total / float64(len(workouts))
}

// avgCompletionRate averages the completed/planned set ratio per workout.
// A workout with no sets counts as fully completed.
func avgCompletionRate(workouts []Workout) float64 {
	if len(workouts) == 0 {
		return 0
	}
	sum := 0.0
	for _, w := range workouts {
		total, completed := 0, 0
		for _, ex := range w.Exercises {
			for _, set := range ex.Sets {
				total++
				if set.Completed {
					completed++
				}
			}
		}
		if total == 0 {
			sum++
		} else {
			sum += float64(completed) / float64(total)
		}
	}
	return sum / float64(len(workouts))
}
