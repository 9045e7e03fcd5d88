package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/undergroundgym/internal/workout"
)

type ExercisesRepo interface {
	List(ctx context.Context, muscleGroup string) ([]workout.Exercise, error)
}

type SplitsRepo interface {
	List(ctx context.Context) ([]workout.Split, error)
	Get(ctx context.Context, id string) (*workout.Split, error)
}

type SessionsRepo interface {
	List(ctx context.Context, limit int) ([]workout.Session, error)
}

// contextService is what the tool handlers read from.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	ListExercises(ctx context.Context, muscleGroup string) ([]workout.Exercise, error)
	ListSplits(ctx context.Context) ([]workout.Split, error)
	GetSplit(ctx context.Context, id string) (*workout.Split, error)
	ListSessions(ctx context.Context, limit int) ([]workout.Session, error)
	GetExerciseHistory(ctx context.Context, exerciseID string) (workout.History, error)
}

// ContextService holds dependencies and implements the workout context business logic.
type ContextService struct {
	schema    SchemaRepo
	exercises ExercisesRepo
	splits    SplitsRepo
	sessions  SessionsRepo
}

func NewContextService(schemaRepo SchemaRepo, exercisesRepo ExercisesRepo, splitsRepo SplitsRepo, sessionsRepo SessionsRepo) *ContextService {
	return &ContextService{
		schema:    schemaRepo,
		exercises: exercisesRepo,
		splits:    splitsRepo,
		sessions:  sessionsRepo,
	}
}

// GetSchema returns the DB schema (table names, columns, types) of the
// workout tracker tables.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetWorkoutColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatWorkoutSchema(cols), nil
}

func formatWorkoutSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Workout Tracker DB Schema\n\nNo workout tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Workout Tracker DB Schema\n\n")
	b.WriteString("Tables: " + strings.Join(workoutTables, ", ") + " (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) ListExercises(ctx context.Context, muscleGroup string) ([]workout.Exercise, error) {
	return s.exercises.List(ctx, muscleGroup)
}

func (s *ContextService) ListSplits(ctx context.Context) ([]workout.Split, error) {
	return s.splits.List(ctx)
}

func (s *ContextService) GetSplit(ctx context.Context, id string) (*workout.Split, error) {
	return s.splits.Get(ctx, id)
}

func (s *ContextService) ListSessions(ctx context.Context, limit int) ([]workout.Session, error) {
	return s.sessions.List(ctx, limit)
}

// GetExerciseHistory returns the latest recorded performance per exercise,
// narrowed to one exercise if exerciseID is set.
func (s *ContextService) GetExerciseHistory(ctx context.Context, exerciseID string) (workout.History, error) {
	sessions, err := s.sessions.List(ctx, 0)
	if err != nil {
		return nil, err
	}

	history := workout.BuildHistory(sessions)
	if exerciseID == "" {
		return history, nil
	}

	narrowed := make(workout.History, 1)
	if entry, ok := history[exerciseID]; ok {
		narrowed[exerciseID] = entry
	}
	return narrowed, nil
}
