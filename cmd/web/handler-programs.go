package main

import (
	"fmt"
	"net/http"

	"github.com/jsalmi/liftline/internal/errors"
	"github.com/jsalmi/liftline/internal/program"
)

// programGeneratePOST generates a program from wizard answers without
// persisting it.
func (app *application) programGeneratePOST(w http.ResponseWriter, r *http.Request) {
	var answers program.WizardAnswers
	if !app.readJSON(w, r, &answers) {
		return
	}
	if answers.DaysPerWeek < 1 || answers.DaysPerWeek > 7 {
		app.clientError(w, http.StatusBadRequest, "days_per_week must be between 1 and 7")
		return
	}

	generated, err := app.programService.Generate(r.Context(), answers)
	if err != nil {
		if errors.Is(err, program.ErrEmptyPool) {
			app.clientError(w, http.StatusUnprocessableEntity, "no exercises available for selected equipment/experience")
			return
		}
		app.serverError(w, r, fmt.Errorf("generate program: %w", err))
		return
	}
	app.writeJSON(w, r, http.StatusOK, generated)
}

// programsPOST saves a program, typically one returned by the generate
// endpoint after user review.
func (app *application) programsPOST(w http.ResponseWriter, r *http.Request) {
	var prog program.Program
	if !app.readJSON(w, r, &prog) {
		return
	}
	if len(prog.Days) == 0 {
		app.clientError(w, http.StatusBadRequest, "program has no days")
		return
	}

	id, err := app.programService.Save(r.Context(), prog)
	if err != nil {
		app.serverError(w, r, fmt.Errorf("save program: %w", err))
		return
	}
	app.writeJSON(w, r, http.StatusCreated, map[string]int64{"program_id": id})
}

func (app *application) programsGET(w http.ResponseWriter, r *http.Request) {
	programs, err := app.programService.Programs(r.Context())
	if err != nil {
		app.serverError(w, r, fmt.Errorf("list programs: %w", err))
		return
	}
	if programs == nil {
		programs = []program.Program{}
	}
	app.writeJSON(w, r, http.StatusOK, programs)
}

func (app *application) programGET(w http.ResponseWriter, r *http.Request) {
	id, ok := app.parseIDParam(w, r)
	if !ok {
		return
	}
	prog, err := app.programService.Program(r.Context(), id)
	if err != nil {
		if errors.Is(err, program.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		app.serverError(w, r, fmt.Errorf("get program: %w", err))
		return
	}
	app.writeJSON(w, r, http.StatusOK, prog)
}

func (app *application) programDELETE(w http.ResponseWriter, r *http.Request) {
	id, ok := app.parseIDParam(w, r)
	if !ok {
		return
	}
	if err := app.programService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, program.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		app.serverError(w, r, fmt.Errorf("delete program: %w", err))
		return
	}
	app.writeJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// programActivatePOST marks a program active and deactivates the rest.
func (app *application) programActivatePOST(w http.ResponseWriter, r *http.Request) {
	id, ok := app.parseIDParam(w, r)
	if !ok {
		return
	}
	if err := app.programService.Activate(r.Context(), id); err != nil {
		if errors.Is(err, program.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		app.serverError(w, r, fmt.Errorf("activate program: %w", err))
		return
	}
	app.writeJSON(w, r, http.StatusOK, map[string]string{"status": "activated"})
}
