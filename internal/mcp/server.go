package mcp

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with workout tracker tools. Used both by the
// backend at /mcp and by cmd/workout_mcp over stdio.
func NewServer(pool *pgxpool.Pool, exercisesRepo ExercisesRepo, splitsRepo SplitsRepo, sessionsRepo SessionsRepo) *mcp.Server {
	svc := NewContextService(NewPoolSchemaRepo(pool), exercisesRepo, splitsRepo, sessionsRepo)
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "underground-gym-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout_schema",
		Description: "Returns the DB schema of the workout tracker tables (exercise, workout_split, workout_session, session_exercise): columns, types, nullable, default.",
	}, h.GetWorkoutSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_exercises",
		Description: "Returns the exercise catalog in catalog order. Optional filter: muscle_group (e.g. Chest, Legs).",
	}, h.ListExercisesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_splits",
		Description: "Returns all workout splits, newest first, with their days and muscle groups.",
	}, h.ListSplitsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_split",
		Description: "Returns one workout split by split_id.",
	}, h.GetSplitTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_sessions",
		Description: "Returns recorded workout sessions, newest first, with exercises, sets and completion progress. Optional: limit (default 20).",
	}, h.ListSessionsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_history",
		Description: "Returns the latest recorded performance (date, sets, completions) per exercise, with a one-line summary. Optional: exercise_id.",
	}, h.GetExerciseHistoryTool())

	return s
}
