package mcp

import (
	"context"
	"strings"

	"github.com/claude/vincera/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// parseTimeframe maps the timeframe parameter onto a history window,
// defaulting to all time.
func parseTimeframe(s string) models.Timeframe {
	switch t := models.Timeframe(s); t {
	case models.Week, models.Month, models.Year:
		return t
	}
	return models.AllTime
}

// --- Tool definitions ---

var toolGetWorkouts = mcp.NewTool("get_workouts",
	mcp.WithDescription("Query workout history, newest first. Each workout includes its exercise groups and logged sets."),
	mcp.WithString("timeframe", mcp.Description("History window ending now. Defaults to 'all'."), mcp.Enum("week", "month", "year", "all")),
	mcp.WithString("search", mcp.Description("Filter by workout name (case-insensitive substring)")),
)

var toolGetActiveWorkout = mcp.NewTool("get_active_workout",
	mcp.WithDescription("Get the in-progress workout session, including per-set completion, or a note that none is active."),
)

var toolGetCurrentSplit = mcp.NewTool("get_current_split",
	mcp.WithDescription("Get the selected training split and which day is scheduled next."),
)

var toolGetPersonalRecords = mcp.NewTool("get_personal_records",
	mcp.WithDescription("Best value recorded per tracked exercise and unit, scanned over the whole history."),
)

var toolGetVolume = mcp.NewTool("get_volume",
	mcp.WithDescription("Set counts per body part over a timeframe. Every body part is reported, zero included."),
	mcp.WithString("timeframe", mcp.Description("History window ending now. Defaults to 'all'."), mcp.Enum("week", "month", "year", "all")),
)

var toolGetPreviousSets = mcp.NewTool("get_previous_sets",
	mcp.WithDescription("Most recent logged instance of each requested catalog exercise, for judging progression."),
	mcp.WithString("list_ids", mcp.Required(), mcp.Description("Comma-separated catalog exercise ids (e.g. '52,68')")),
	mcp.WithString("after", mcp.Description("Workout id to search backward from, exclusive. Defaults to the newest workout.")),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List catalog and custom exercises with muscle groups, equipment, and rep ranges."),
	mcp.WithString("search", mcp.Description("Filter by exercise name (case-insensitive substring)")),
)

// --- Tool handlers ---

func (h *handlers) getWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t := parseTimeframe(req.GetString("timeframe", ""))
	search := req.GetString("search", "")

	workouts, err := h.ds.Workouts(ctx, t, search)
	if err != nil {
		h.log.Error("mcp get_workouts", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(workouts)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getActiveWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workout, err := h.ds.ActiveWorkout(ctx)
	if err != nil {
		h.log.Error("mcp get_active_workout", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if workout == nil {
		return mcp.NewToolResultText("no workout is in progress"), nil
	}

	result, err := mcp.NewToolResultJSON(workout)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getCurrentSplit(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	split, day, err := h.ds.CurrentSplit(ctx)
	if err != nil {
		h.log.Error("mcp get_current_split", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if split == nil {
		return mcp.NewToolResultText("no split is selected"), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{"split": split, "day": day})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPersonalRecords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	records, err := h.ds.PersonalRecords(ctx)
	if err != nil {
		h.log.Error("mcp get_personal_records", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(records)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getVolume(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	volumes, err := h.ds.Volume(ctx, parseTimeframe(req.GetString("timeframe", "")))
	if err != nil {
		h.log.Error("mcp get_volume", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(volumes)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPreviousSets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids, err := req.RequireString("list_ids")
	if err != nil {
		return mcp.NewToolResultError("list_ids parameter is required"), nil
	}

	previous, err := h.ds.PreviousExercises(ctx, strings.Split(ids, ","), req.GetString("after", ""))
	if err != nil {
		h.log.Error("mcp get_previous_sets", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(previous)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercises, err := h.ds.Exercises(ctx, req.GetString("search", ""))
	if err != nil {
		h.log.Error("mcp list_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(exercises)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
