package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jsalmi/liftline/internal/errors"
	"github.com/jsalmi/liftline/internal/program"
	"github.com/jsalmi/liftline/internal/workout"
)

// workoutsPOST logs a finished training session. A missing date defaults to
// today.
func (app *application) workoutsPOST(w http.ResponseWriter, r *http.Request) {
	var logged workout.Workout
	if !app.readJSON(w, r, &logged) {
		return
	}
	if logged.Date.IsZero() {
		logged.Date = time.Now()
	}
	if len(logged.Exercises) == 0 {
		app.clientError(w, http.StatusBadRequest, "workout has no exercises")
		return
	}

	id, err := app.workoutService.LogWorkout(r.Context(), logged)
	if err != nil {
		app.serverError(w, r, fmt.Errorf("log workout: %w", err))
		return
	}
	app.writeJSON(w, r, http.StatusCreated, map[string]int64{"workout_id": id})
}

func (app *application) workoutsGET(w http.ResponseWriter, r *http.Request) {
	workouts, err := app.workoutService.Workouts(r.Context(), queryInt(r, "limit", 0))
	if err != nil {
		app.serverError(w, r, fmt.Errorf("list workouts: %w", err))
		return
	}
	if workouts == nil {
		workouts = []workout.Workout{}
	}
	app.writeJSON(w, r, http.StatusOK, workouts)
}

func (app *application) workoutDELETE(w http.ResponseWriter, r *http.Request) {
	id, ok := app.parseIDParam(w, r)
	if !ok {
		return
	}
	if err := app.workoutService.DeleteWorkout(r.Context(), id); err != nil {
		if errors.Is(err, workout.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		app.serverError(w, r, fmt.Errorf("delete workout: %w", err))
		return
	}
	app.writeJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

type workoutReviewRequest struct {
	DayName string `json:"day_name"`
}

// workoutReviewPOST compares a logged workout against the active program
// day's targets.
func (app *application) workoutReviewPOST(w http.ResponseWriter, r *http.Request) {
	id, ok := app.parseIDParam(w, r)
	if !ok {
		return
	}
	var req workoutReviewRequest
	if !app.readJSON(w, r, &req) {
		return
	}

	prescriptions, err := app.programService.ActiveTargets(r.Context(), req.DayName)
	if err != nil {
		app.serverError(w, r, fmt.Errorf("active targets: %w", err))
		return
	}
	if prescriptions == nil {
		app.clientError(w, http.StatusNotFound, "no active program day named "+req.DayName)
		return
	}

	updates, err := app.workoutService.ReviewWorkout(r.Context(), id, programTargets(prescriptions))
	if err != nil {
		if errors.Is(err, workout.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		app.serverError(w, r, fmt.Errorf("review workout: %w", err))
		return
	}
	app.writeJSON(w, r, http.StatusOK, updates)
}

// programTargets reduces prescriptions to the rep targets the review cares
// about. Warmups and stretches carry no targets.
func programTargets(prescriptions []program.Prescription) []workout.ProgramTarget {
	targets := make([]workout.ProgramTarget, 0, len(prescriptions))
	for _, p := range prescriptions {
		if p.Section != program.SectionMain {
			continue
		}
		targets = append(targets, workout.ProgramTarget{
			ExerciseID: p.ExerciseID,
			Sets:       p.Sets,
			RepsMin:    p.RepsMin,
			RepsMax:    p.RepsMax,
		})
	}
	return targets
}
