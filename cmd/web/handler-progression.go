package main

import (
	"fmt"
	"net/http"

	"github.com/jsalmi/liftline/internal/catalog"
	"github.com/jsalmi/liftline/internal/errors"
	"github.com/jsalmi/liftline/internal/workout"
)

// exerciseHistoryGET returns the aggregated training history for one
// exercise, newest session first.
func (app *application) exerciseHistoryGET(w http.ResponseWriter, r *http.Request) {
	exerciseID := r.PathValue("exerciseID")
	history, err := app.workoutService.History(r.Context(), exerciseID, queryInt(r, "limit", 0))
	if err != nil {
		app.serverError(w, r, fmt.Errorf("exercise history: %w", err))
		return
	}
	if history == nil {
		app.clientError(w, http.StatusNotFound, "no training history for "+exerciseID)
		return
	}
	app.writeJSON(w, r, http.StatusOK, history)
}

// suggestionGET returns the next-session weight and rep suggestion.
func (app *application) suggestionGET(w http.ResponseWriter, r *http.Request) {
	exerciseID := r.PathValue("exerciseID")
	suggestion, err := app.workoutService.Suggestion(r.Context(), exerciseID, queryInt(r, "target_reps", 0))
	if err != nil {
		app.serverError(w, r, fmt.Errorf("progression suggestion: %w", err))
		return
	}
	app.writeJSON(w, r, http.StatusOK, suggestion)
}

// adaptationGET analyzes one exercise's recent history against its current
// prescription.
func (app *application) adaptationGET(w http.ResponseWriter, r *http.Request) {
	exerciseID := r.PathValue("exerciseID")
	repsRange := workout.RepsRange{
		Min: queryInt(r, "reps_min", 8),
		Max: queryInt(r, "reps_max", 12),
	}
	recommendation, err := app.workoutService.Adaptation(r.Context(), exerciseID, queryInt(r, "current_sets", 3), repsRange)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			app.clientError(w, http.StatusNotFound, "unknown exercise "+exerciseID)
			return
		}
		app.serverError(w, r, fmt.Errorf("adaptation analysis: %w", err))
		return
	}
	app.writeJSON(w, r, http.StatusOK, recommendation)
}

// deloadGET analyzes recent workouts for accumulated fatigue.
func (app *application) deloadGET(w http.ResponseWriter, r *http.Request) {
	recommendation, err := app.workoutService.Deload(r.Context())
	if err != nil {
		app.serverError(w, r, fmt.Errorf("deload analysis: %w", err))
		return
	}
	app.writeJSON(w, r, http.StatusOK, recommendation)
}
