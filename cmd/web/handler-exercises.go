package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jsalmi/liftline/internal/catalog"
)

// exercisesGET lists the exercise catalog. Supports a free-text query or
// comma-separated equipment/muscles filters.
func (app *application) exercisesGET(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	equipment := splitCSV(query.Get("equipment"))
	muscles := splitCSV(query.Get("muscles"))

	var exercises []catalog.Exercise
	if len(equipment) > 0 || len(muscles) > 0 {
		exercises = app.catalogService.Filtered(r.Context(), equipment, muscles)
	} else {
		exercises = app.catalogService.Search(r.Context(), query.Get("query"))
	}
	if exercises == nil {
		exercises = []catalog.Exercise{}
	}
	app.writeJSON(w, r, http.StatusOK, exercises)
}

func (app *application) equipmentPresetsGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, catalog.EquipmentPresets)
}

type generateExerciseRequest struct {
	Name string `json:"name"`
}

// exerciseGeneratePOST classifies a custom exercise by name so it can be
// logged and analyzed like catalog exercises.
func (app *application) exerciseGeneratePOST(w http.ResponseWriter, r *http.Request) {
	var req generateExerciseRequest
	if !app.readJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		app.clientError(w, http.StatusBadRequest, "name is required")
		return
	}

	exercise, err := app.generator.Generate(r.Context(), req.Name)
	if err != nil {
		app.serverError(w, r, fmt.Errorf("generate exercise: %w", err))
		return
	}
	app.writeJSON(w, r, http.StatusOK, exercise)
}

func splitCSV(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
