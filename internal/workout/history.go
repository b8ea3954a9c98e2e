package workout

import "slices"

// historyScanLimit caps how many workouts the aggregators look at.
const historyScanLimit = 50

// defaultSessionLimit caps how many sessions a history carries per exercise.
const defaultSessionLimit = 10

// sessionFor extracts the completed-set session for one exercise occurrence.
// It returns false when no set was completed.
func sessionFor(w Workout, ex LoggedExercise) (ExerciseSession, bool) {
	var completed []WorkoutSet
	for _, set := range ex.Sets {
		if set.Completed {
			completed = append(completed, set)
		}
	}
	if len(completed) == 0 {
		return ExerciseSession{}, false
	}

	best := completed[0]
	totalVolume := 0.0
	for _, set := range completed {
		if set.Volume() > best.Volume() {
			best = set
		}
		totalVolume += set.Volume()
	}

	return ExerciseSession{
		Date:        w.Date,
		WorkoutID:   w.ID,
		Sets:        completed,
		BestSet:     BestSet{WeightKg: best.WeightKg, Reps: best.Reps},
		TotalVolume: totalVolume,
	}, true
}

// BuildHistory aggregates an exercise's history out of workouts, which must
// be ordered newest first. It returns nil when the exercise was never
// performed with at least one completed set.
func BuildHistory(workouts []Workout, exerciseID string, sessionLimit int) *ExerciseHistory {
	if sessionLimit <= 0 {
		sessionLimit = defaultSessionLimit
	}
	workouts = workouts[:min(len(workouts), historyScanLimit)]

	var sessions []ExerciseSession
	exerciseName := ""
	for _, w := range workouts {
		if len(sessions) >= sessionLimit {
			break
		}
		for _, ex := range w.Exercises {
			if ex.ExerciseID != exerciseID {
				continue
			}
			if ex.ExerciseName != "" {
				exerciseName = ex.ExerciseName
			} else if exerciseName == "" {
				exerciseName = exerciseID
			}
			session, ok := sessionFor(w, ex)
			if !ok {
				continue
			}
			sessions = append(sessions, session)
		}
	}

	if len(sessions) == 0 {
		return nil
	}
	return &ExerciseHistory{
		ExerciseID:   exerciseID,
		ExerciseName: exerciseName,
		Sessions:     sessions,
	}
}

// BuildMultiHistory aggregates histories for several exercises in one pass.
// Exercises with no completed sets are absent from the result rather than
// mapped to an empty history.
func BuildMultiHistory(workouts []Workout, exerciseIDs []string) map[string]*ExerciseHistory {
	workouts = workouts[:min(len(workouts), historyScanLimit)]

	sessionsByID := make(map[string][]ExerciseSession)
	namesByID := make(map[string]string)

	for _, w := range workouts {
		for _, ex := range w.Exercises {
			if ex.ExerciseID == "" || !slices.Contains(exerciseIDs, ex.ExerciseID) {
				continue
			}
			if ex.ExerciseName != "" {
				namesByID[ex.ExerciseID] = ex.ExerciseName
			}
			existing := sessionsByID[ex.ExerciseID]
			if len(existing) >= defaultSessionLimit {
				continue
			}
			session, ok := sessionFor(w, ex)
			if !ok {
				continue
			}
			sessionsByID[ex.ExerciseID] = append(existing, session)
		}
	}

	result := make(map[string]*ExerciseHistory, len(sessionsByID))
	for id, sessions := range sessionsByID {
		name := namesByID[id]
		if name == "" {
			name = id
		}
		result[id] = &ExerciseHistory{
			ExerciseID:   id,
			ExerciseName: name,
			Sessions:     sessions,
		}
	}
	return result
}
