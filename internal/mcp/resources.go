package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/vincera/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

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

func (h *handlers) recentWorkouts(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	workouts, err := h.ds.Workouts(ctx, models.Month, "")
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, workouts)
}

func (h *handlers) currentSplit(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	split, day, err := h.ds.CurrentSplit(ctx)
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, map[string]any{"split": split, "day": day})
}

func (h *handlers) exerciseCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	exercises, err := h.ds.Exercises(ctx, "")
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, exercises)
}
