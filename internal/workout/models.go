package workout

import "time"

// WorkoutSet is a single logged set.
type WorkoutSet struct {
	WeightKg  float64 `json:"weight_kg"`
	Reps      int     `json:"reps"`
	RIR       *int    `json:"rir,omitempty"`
	Completed bool    `json:"completed"`
}

// Volume is the load moved in this set.
func (s WorkoutSet) Volume() float64 {
	return s.WeightKg * float64(s.Reps)
}

// LoggedExercise groups the sets logged for one exercise in a workout.
type LoggedExercise struct {
	ExerciseID   string       `json:"exercise_id"`
	ExerciseName string       `json:"exercise_name"`
	Sets         []WorkoutSet `json:"sets"`
}

// Workout is a logged training session.
type Workout struct {
	ID        int64            `json:"id"`
	Date      time.Time        `json:"date"`
	Name      string           `json:"name,omitempty"`
	Exercises []LoggedExercise `json:"exercises"`
}

// BestSet is the heaviest effective set of a session, ranked by weight*reps.
type BestSet struct {
	WeightKg float64 `json:"weight_kg"`
	Reps     int     `json:"reps"`
}

// ExerciseSession is one workout's contribution to an exercise's history.
// It carries only the completed sets.
type ExerciseSession struct {
	Date        time.Time    `json:"date"`
	WorkoutID   int64        `json:"workout_id"`
	Sets        []WorkoutSet `json:"sets"`
	BestSet     BestSet      `json:"best_set"`
	TotalVolume float64      `json:"total_volume"`
}

// ExerciseHistory is the per-exercise training history, newest session first.
type ExerciseHistory struct {
	ExerciseID   string            `json:"exercise_id"`
	ExerciseName string            `json:"exercise_name"`
	Sessions     []ExerciseSession `json:"sessions"`
}

// Trend describes the direction of a progression suggestion.
type Trend string

const (
	TrendUp       Trend = "up"
	TrendMaintain Trend = "maintain"
	TrendDown     Trend = "down"
	TrendDeload   Trend = "deload"
)

// ProgressionSuggestion is the next-session weight and rep target for an
// exercise.
type ProgressionSuggestion struct {
	WeightKg            float64  `json:"weight_kg"`
	Reps                int      `json:"reps"`
	Recommendation      string   `json:"recommendation"`
	Trend               Trend    `json:"trend"`
	PreviousBest        *BestSet `json:"previous_best"`
	ConsecutiveFailures int      `json:"consecutive_failures"`
}

// DeloadRecommendation is the outcome of fatigue analysis over recent
// workouts.
type DeloadRecommendation struct {
	Needed           bool    `json:"needed"`
	Reason           string  `json:"reason"`
	WeightMultiplier float64 `json:"suggested_weight_multiplier"`
	VolumeMultiplier float64 `json:"suggested_volume_multiplier"`
}

// AdaptationType classifies an adaptation recommendation.
type AdaptationType string

const (
	AdaptIncreaseVolume    AdaptationType = "increase-volume"
	AdaptIncreaseIntensity AdaptationType = "increase-intensity"
	AdaptDecreaseVolume    AdaptationType = "decrease-volume"
	AdaptSwapExercise      AdaptationType = "swap-exercise"
	AdaptDeload            AdaptationType = "deload"
	AdaptMaintain          AdaptationType = "maintain"
	AdaptProgressVariation AdaptationType = "progress-variation"
	AdaptRegressVariation  AdaptationType = "regress-variation"
)

// RepsRange is an inclusive rep target range.
type RepsRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ProgressionVariation points at an easier or harder variation of an
// exercise.
type ProgressionVariation struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"`
}

// AdaptationRecommendation is the outcome of per-exercise adaptation
// analysis. The optional fields are populated per adaptation type.
type AdaptationRecommendation struct {
	ExerciseID           string                `json:"exercise_id"`
	ExerciseName         string                `json:"exercise_name"`
	Type                 AdaptationType        `json:"adaptation_type"`
	Reason               string                `json:"reason"`
	SuggestedSets        *int                  `json:"suggested_sets,omitempty"`
	SuggestedRepsRange   *RepsRange            `json:"suggested_reps_range,omitempty"`
	SuggestedRestSeconds *int                  `json:"suggested_rest_seconds,omitempty"`
	ProgressionVariation *ProgressionVariation `json:"progression_variation,omitempty"`
	AlternativeExercises []string              `json:"alternative_exercises,omitempty"`
}

// ProgramTarget is a program's prescription for one exercise.
type ProgramTarget struct {
	ExerciseID string `json:"exercise_id"`
	Sets       int    `json:"sets"`
	RepsMin    int    `json:"reps_min"`
	RepsMax    int    `json:"reps_max"`
}

// TargetUpdate is the post-workout feedback for one program target. The
// numeric prescription passes through unchanged; the recommendation tells
// the user what to change by hand.
type TargetUpdate struct {
	Sets           int    `json:"sets"`
	RepsMin        int    `json:"reps_min"`
	RepsMax        int    `json:"reps_max"`
	Recommendation string `json:"recommendation"`
}
