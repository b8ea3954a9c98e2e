// Package mcp exposes the progression engine to MCP clients over the
// Model Context Protocol.
package mcp

import (
	"context"
	"log/slog"

	"github.com/jsalmi/liftline/internal/catalog"
	"github.com/jsalmi/liftline/internal/contexthelpers"
	"github.com/jsalmi/liftline/internal/program"
	"github.com/jsalmi/liftline/internal/workout"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// defaultUserID is the fixture user. The stdio transport serves one local
// user; multi-user scoping happens in the web server instead.
const defaultUserID = 1

// withUser scopes a tool call to the local user.
func withUser(ctx context.Context) context.Context {
	return context.WithValue(ctx, contexthelpers.AuthenticatedUserIDContextKey, defaultUserID)
}

// New creates an MCP server with all tools and resources registered.
func New(
	workouts *workout.Service,
	programs *program.Service,
	exercises *catalog.Service,
	version string,
	log *slog.Logger,
) *server.MCPServer {
	s := server.NewMCPServer("LiftLine", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("LiftLine training progression server. Log workouts, query training history, get progression and deload recommendations, and generate training programs. All data is scoped to the local user."),
	)

	h := &handlers{workouts: workouts, programs: programs, exercises: exercises, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolLogWorkout, Handler: h.logWorkout},
		server.ServerTool{Tool: toolGetProgressionSuggestion, Handler: h.getProgressionSuggestion},
		server.ServerTool{Tool: toolCheckDeload, Handler: h.checkDeload},
		server.ServerTool{Tool: toolAnalyzeAdaptation, Handler: h.analyzeAdaptation},
		server.ServerTool{Tool: toolGetExerciseHistory, Handler: h.getExerciseHistory},
		server.ServerTool{Tool: toolGetWorkouts, Handler: h.getWorkouts},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolGenerateProgram, Handler: h.generateProgram},
		server.ServerTool{Tool: toolListPrograms, Handler: h.listPrograms},
	)

	s.AddResources(
		server.ServerResource{Resource: resEquipmentPresets, Handler: h.equipmentPresets},
		server.ServerResource{Resource: resMuscleGroups, Handler: h.muscleGroups},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	workouts  *workout.Service
	programs  *program.Service
	exercises *catalog.Service
	log       *slog.Logger
}

// --- Resource definitions ---

var resEquipmentPresets = mcp.NewResource(
	"liftline://equipment_presets",
	"Equipment Presets",
	mcp.WithResourceDescription("Named equipment presets (bodyweight, home basic, home complete, commercial gym) usable as generate_program input"),
	mcp.WithMIMEType("application/json"),
)

var resMuscleGroups = mcp.NewResource(
	"liftline://muscle_groups",
	"Muscle Groups",
	mcp.WithResourceDescription("All muscle group and equipment names known to the exercise catalog"),
	mcp.WithMIMEType("application/json"),
)

func (h *handlers) equipmentPresets(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, catalog.EquipmentPresets)
}

func (h *handlers) muscleGroups(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, map[string]any{
		"muscle_groups": catalog.MuscleGroups,
		"equipment":     catalog.Equipment,
	})
}
