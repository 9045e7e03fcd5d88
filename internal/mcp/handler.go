package mcp

import (
	"context"
	"encoding/json"

	"github.com/2beens/undergroundgym/internal/workout"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const maxSessionsLimit = 100

// Handler parses tool input, calls the service and formats the MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

// GetWorkoutSchemaTool returns the MCP tool handler for get_workout_schema.
func (h *Handler) GetWorkoutSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// ListExercisesInput is the input for list_exercises.
type ListExercisesInput struct {
	MuscleGroup string `json:"muscle_group,omitempty" jsonschema:"Filter by muscle group (e.g. Chest, Legs)"`
}

// ListExercisesTool returns the MCP tool handler for list_exercises.
func (h *Handler) ListExercisesTool() func(context.Context, *mcp.CallToolRequest, ListExercisesInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ListExercisesInput) (*mcp.CallToolResult, any, error) {
		list, err := h.service.ListExercises(ctx, in.MuscleGroup)
		if err != nil {
			return errorResult("Error listing exercises: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

// ListSplitsTool returns the MCP tool handler for list_splits.
func (h *Handler) ListSplitsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		splits, err := h.service.ListSplits(ctx)
		if err != nil {
			return errorResult("Error listing splits: " + err.Error()), nil, nil
		}
		return jsonResult(splits), nil, nil
	}
}

// GetSplitInput is the input for get_split.
type GetSplitInput struct {
	SplitID string `json:"split_id" jsonschema:"Id of the workout split"`
}

// GetSplitTool returns the MCP tool handler for get_split.
func (h *Handler) GetSplitTool() func(context.Context, *mcp.CallToolRequest, GetSplitInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in GetSplitInput) (*mcp.CallToolResult, any, error) {
		if in.SplitID == "" {
			return errorResult("split_id is required"), nil, nil
		}
		split, err := h.service.GetSplit(ctx, in.SplitID)
		if err != nil {
			return errorResult("Error fetching split: " + err.Error()), nil, nil
		}
		return jsonResult(split), nil, nil
	}
}

// ListSessionsInput is the input for list_sessions.
type ListSessionsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max number of sessions, newest first (default 20, max 100)"`
}

// ListSessionsTool returns the MCP tool handler for list_sessions.
func (h *Handler) ListSessionsTool() func(context.Context, *mcp.CallToolRequest, ListSessionsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ListSessionsInput) (*mcp.CallToolResult, any, error) {
		limit := in.Limit
		if limit <= 0 {
			limit = 20
		}
		if limit > maxSessionsLimit {
			limit = maxSessionsLimit
		}
		sessions, err := h.service.ListSessions(ctx, limit)
		if err != nil {
			return errorResult("Error listing sessions: " + err.Error()), nil, nil
		}
		return jsonResult(sessions), nil, nil
	}
}

// ExerciseHistoryInput is the input for get_exercise_history.
type ExerciseHistoryInput struct {
	ExerciseID string `json:"exercise_id,omitempty" jsonschema:"Only this exercise; all exercises if empty"`
}

type exerciseHistoryItem struct {
	workout.HistoryEntry
	Summary string `json:"summary"`
}

// GetExerciseHistoryTool returns the MCP tool handler for get_exercise_history.
func (h *Handler) GetExerciseHistoryTool() func(context.Context, *mcp.CallToolRequest, ExerciseHistoryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseHistoryInput) (*mcp.CallToolResult, any, error) {
		history, err := h.service.GetExerciseHistory(ctx, in.ExerciseID)
		if err != nil {
			return errorResult("Error fetching exercise history: " + err.Error()), nil, nil
		}
		if in.ExerciseID != "" && len(history) == 0 {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "No history for exercise " + in.ExerciseID}},
			}, nil, nil
		}

		items := make(map[string]exerciseHistoryItem, len(history))
		for id, entry := range history {
			items[id] = exerciseHistoryItem{
				HistoryEntry: entry,
				Summary:      workout.DisplayFor(id, history).String(),
			}
		}
		return jsonResult(items), nil, nil
	}
}
