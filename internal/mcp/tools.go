package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/jsalmi/liftline/internal/catalog"
	"github.com/jsalmi/liftline/internal/program"
	"github.com/jsalmi/liftline/internal/workout"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolLogWorkout = mcp.NewTool("log_workout",
	mcp.WithDescription("Log a finished training session. Exercises are a JSON array of {exercise_id, exercise_name, sets: [{weight_kg, reps, rir, completed}]}."),
	mcp.WithString("exercises", mcp.Required(), mcp.Description("JSON array of exercises with their sets")),
	mcp.WithString("name", mcp.Description("Workout name (e.g. 'Push Day')")),
	mcp.WithString("date", mcp.Description("Completion date as YYYY-MM-DD. Defaults to today.")),
)

var toolGetProgressionSuggestion = mcp.NewTool("get_progression_suggestion",
	mcp.WithDescription("Get the next-session weight and rep suggestion for an exercise, based on recent training history. Includes deload advice after repeated missed targets."),
	mcp.WithString("exercise_id", mcp.Required(), mcp.Description("Exercise ID (e.g. 'bench-press'). Use list_exercises to discover IDs.")),
	mcp.WithNumber("target_reps", mcp.Description("Target reps per set. Defaults to the last session's best-set reps.")),
)

var toolCheckDeload = mcp.NewTool("check_deload",
	mcp.WithDescription("Analyze recent workouts for accumulated fatigue. Returns whether a deload week is recommended and suggested weight/volume multipliers."),
)

var toolAnalyzeAdaptation = mcp.NewTool("analyze_adaptation",
	mcp.WithDescription("Analyze one exercise's recent history against its current prescription. Recommends volume, intensity, or variation changes; bodyweight exercises progress through the variation graph."),
	mcp.WithString("exercise_id", mcp.Required(), mcp.Description("Exercise ID")),
	mcp.WithNumber("current_sets", mcp.Description("Current sets per session. Defaults to 3.")),
	mcp.WithNumber("reps_min", mcp.Description("Lower bound of the current rep range. Defaults to 8.")),
	mcp.WithNumber("reps_max", mcp.Description("Upper bound of the current rep range. Defaults to 12.")),
)

var toolGetExerciseHistory = mcp.NewTool("get_exercise_history",
	mcp.WithDescription("Aggregated training history for one exercise: per-session completed sets, best set, and total volume, newest first."),
	mcp.WithString("exercise_id", mcp.Required(), mcp.Description("Exercise ID")),
	mcp.WithNumber("limit", mcp.Description("Maximum sessions to return. Defaults to 10.")),
)

var toolGetWorkouts = mcp.NewTool("get_workouts",
	mcp.WithDescription("List logged workouts newest first, including exercises and sets."),
	mcp.WithNumber("limit", mcp.Description("Maximum workouts to return. Defaults to 20.")),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("Search the exercise catalog by name, muscle group, or equipment. Empty query returns the whole catalog."),
	mcp.WithString("query", mcp.Description("Substring matched against name, muscle groups, and equipment")),
)

var toolGenerateProgram = mcp.NewTool("generate_program",
	mcp.WithDescription("Generate a multi-day training program from goal, experience, schedule, and equipment. Optionally save it."),
	mcp.WithString("goal", mcp.Required(), mcp.Description("Training goal"), mcp.Enum("strength", "hypertrophy", "endurance", "general")),
	mcp.WithString("experience", mcp.Required(), mcp.Description("Experience level"), mcp.Enum("beginner", "intermediate", "advanced")),
	mcp.WithNumber("days_per_week", mcp.Required(), mcp.Description("Training days per week (1-7)")),
	mcp.WithString("session_length", mcp.Description("Session length bucket. Defaults to medium."), mcp.Enum("short", "medium", "long")),
	mcp.WithString("equipment", mcp.Description("Comma-separated equipment names, or a preset key (bodyweight, homeBasic, homeComplete, commercialGym). Defaults to bodyweight.")),
	mcp.WithString("focus_muscles", mcp.Description("Comma-separated muscle groups to emphasize")),
	mcp.WithString("split", mcp.Description("Weekly split. Defaults to auto."), mcp.Enum("auto", "full-body", "upper-lower", "push-pull-legs", "bro-split")),
	mcp.WithBoolean("save", mcp.Description("Persist the generated program. Defaults to false.")),
)

var toolListPrograms = mcp.NewTool("list_programs",
	mcp.WithDescription("List saved training programs newest first, including days and prescriptions."),
)

// --- Tool handlers ---

func (h *handlers) logWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercisesJSON, err := req.RequireString("exercises")
	if err != nil {
		return mcp.NewToolResultError("exercises parameter is required"), nil
	}
	var exercises []workout.LoggedExercise
	if err := json.Unmarshal([]byte(exercisesJSON), &exercises); err != nil {
		return mcp.NewToolResultError("exercises must be a JSON array: " + err.Error()), nil
	}

	date := time.Now()
	if raw := req.GetString("date", ""); raw != "" {
		date, err = time.Parse(time.DateOnly, raw)
		if err != nil {
			return mcp.NewToolResultError("date must be YYYY-MM-DD"), nil
		}
	}

	id, err := h.workouts.LogWorkout(withUser(ctx), workout.Workout{
		Date:      date,
		Name:      req.GetString("name", ""),
		Exercises: exercises,
	})
	if err != nil {
		h.log.Error("mcp log_workout", "error", err)
		return mcp.NewToolResultError("log workout failed: " + err.Error()), nil
	}
	return jsonResult(map[string]int64{"workout_id": id})
}

func (h *handlers) getProgressionSuggestion(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exerciseID, err := req.RequireString("exercise_id")
	if err != nil {
		return mcp.NewToolResultError("exercise_id parameter is required"), nil
	}
	targetReps := req.GetInt("target_reps", 0)

	suggestion, err := h.workouts.Suggestion(withUser(ctx), exerciseID, targetReps)
	if err != nil {
		h.log.Error("mcp get_progression_suggestion", "error", err)
		return mcp.NewToolResultError("suggestion failed: " + err.Error()), nil
	}
	return jsonResult(suggestion)
}

func (h *handlers) checkDeload(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	recommendation, err := h.workouts.Deload(withUser(ctx))
	if err != nil {
		h.log.Error("mcp check_deload", "error", err)
		return mcp.NewToolResultError("deload analysis failed: " + err.Error()), nil
	}
	return jsonResult(recommendation)
}

func (h *handlers) analyzeAdaptation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exerciseID, err := req.RequireString("exercise_id")
	if err != nil {
		return mcp.NewToolResultError("exercise_id parameter is required"), nil
	}
	currentSets := req.GetInt("current_sets", 3)
	repsRange := workout.RepsRange{
		Min: req.GetInt("reps_min", 8),
		Max: req.GetInt("reps_max", 12),
	}

	recommendation, err := h.workouts.Adaptation(withUser(ctx), exerciseID, currentSets, repsRange)
	if err != nil {
		h.log.Error("mcp analyze_adaptation", "error", err)
		return mcp.NewToolResultError("adaptation analysis failed: " + err.Error()), nil
	}
	return jsonResult(recommendation)
}

func (h *handlers) getExerciseHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exerciseID, err := req.RequireString("exercise_id")
	if err != nil {
		return mcp.NewToolResultError("exercise_id parameter is required"), nil
	}
	limit := req.GetInt("limit", 10)

	history, err := h.workouts.History(withUser(ctx), exerciseID, limit)
	if err != nil {
		h.log.Error("mcp get_exercise_history", "error", err)
		return mcp.NewToolResultError("history query failed: " + err.Error()), nil
	}
	if history == nil {
		return mcp.NewToolResultText("no training history for " + exerciseID), nil
	}
	return jsonResult(history)
}

func (h *handlers) getWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 20)

	workouts, err := h.workouts.Workouts(withUser(ctx), limit)
	if err != nil {
		h.log.Error("mcp get_workouts", "error", err)
		return mcp.NewToolResultError("workout query failed: " + err.Error()), nil
	}
	return jsonResult(workouts)
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")

	return jsonResult(h.exercises.Search(withUser(ctx), query))
}

func (h *handlers) generateProgram(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	goal, err := req.RequireString("goal")
	if err != nil {
		return mcp.NewToolResultError("goal parameter is required"), nil
	}
	experience, err := req.RequireString("experience")
	if err != nil {
		return mcp.NewToolResultError("experience parameter is required"), nil
	}
	daysPerWeek := req.GetInt("days_per_week", 0)
	if daysPerWeek < 1 || daysPerWeek > 7 {
		return mcp.NewToolResultError("days_per_week must be between 1 and 7"), nil
	}

	answers := program.WizardAnswers{
		Goal:          program.Goal(goal),
		Experience:    catalog.Difficulty(experience),
		DaysPerWeek:   daysPerWeek,
		SessionLength: program.SessionLength(req.GetString("session_length", "medium")),
		Equipment:     resolveEquipment(req.GetString("equipment", "bodyweight")),
		FocusMuscles:  splitList(req.GetString("focus_muscles", "")),
		Split:         program.Split(req.GetString("split", "auto")),
	}

	ctx = withUser(ctx)
	generated, err := h.programs.Generate(ctx, answers)
	if err != nil {
		h.log.Error("mcp generate_program", "error", err)
		return mcp.NewToolResultError("generation failed: " + err.Error()), nil
	}

	if req.GetBool("save", false) {
		id, err := h.programs.Save(ctx, generated)
		if err != nil {
			h.log.Error("mcp generate_program save", "error", err)
			return mcp.NewToolResultError("save failed: " + err.Error()), nil
		}
		generated.ID = id
	}
	return jsonResult(generated)
}

func (h *handlers) listPrograms(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	programs, err := h.programs.Programs(withUser(ctx))
	if err != nil {
		h.log.Error("mcp list_programs", "error", err)
		return mcp.NewToolResultError("program query failed: " + err.Error()), nil
	}
	return jsonResult(programs)
}

// --- Helpers ---

// resolveEquipment accepts a preset key or a comma-separated equipment list.
func resolveEquipment(value string) []string {
	if preset, ok := catalog.PresetByKey(strings.TrimSpace(value)); ok {
		return preset.Equipment
	}
	return splitList(value)
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
