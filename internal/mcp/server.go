package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("Vincera", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Vincera workout tracker. Query training splits, workout history, personal records, set volume, and the exercise catalog."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetWorkouts, Handler: h.getWorkouts},
		server.ServerTool{Tool: toolGetActiveWorkout, Handler: h.getActiveWorkout},
		server.ServerTool{Tool: toolGetCurrentSplit, Handler: h.getCurrentSplit},
		server.ServerTool{Tool: toolGetPersonalRecords, Handler: h.getPersonalRecords},
		server.ServerTool{Tool: toolGetVolume, Handler: h.getVolume},
		server.ServerTool{Tool: toolGetPreviousSets, Handler: h.getPreviousSets},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resRecentWorkouts, Handler: h.recentWorkouts},
		server.ServerResource{Resource: resCurrentSplit, Handler: h.currentSplit},
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resRecentWorkouts = mcp.NewResource(
	"vincera://recent_workouts",
	"Recent Workouts",
	mcp.WithResourceDescription("Workouts from the last month, newest first"),
	mcp.WithMIMEType("application/json"),
)

var resCurrentSplit = mcp.NewResource(
	"vincera://current_split",
	"Current Split",
	mcp.WithResourceDescription("The selected training split and the day scheduled next"),
	mcp.WithMIMEType("application/json"),
)

var resExerciseCatalog = mcp.NewResource(
	"vincera://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("All known exercises, catalog and custom, with muscle groups and equipment"),
	mcp.WithMIMEType("application/json"),
)
