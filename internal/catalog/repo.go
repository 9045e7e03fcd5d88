package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/undergroundgym/internal/telemetry/tracing"
	"github.com/2beens/undergroundgym/internal/workout"
	"github.com/2beens/undergroundgym/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrExerciseExists   = errors.New("exercise already exists")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// List returns the catalog in catalog order, optionally narrowed to one
// muscle group.
func (r *Repo) List(ctx context.Context, muscleGroup string) (_ []workout.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("muscle_group", muscleGroup))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, muscle_group, equipment, instructions
			FROM exercise
			WHERE $1 = '' OR muscle_group = $1
			ORDER BY seq;`,
		muscleGroup,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]workout.Exercise, 0)
	for rows.Next() {
		var ex workout.Exercise
		if err := rows.Scan(&ex.ID, &ex.Name, &ex.MuscleGroup, &ex.Equipment, &ex.Instructions); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(exercises)))
	return exercises, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *workout.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	var ex workout.Exercise
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, muscle_group, equipment, instructions FROM exercise WHERE id = $1;`,
		id,
	).Scan(&ex.ID, &ex.Name, &ex.MuscleGroup, &ex.Equipment, &ex.Instructions)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	return &ex, nil
}

// Add inserts the exercise at the end of the catalog.
func (r *Repo) Add(ctx context.Context, ex workout.Exercise) (_ *workout.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ex.ID = uuid.NewString()
	span.SetAttributes(attribute.String("id", ex.ID))

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO exercise (id, name, muscle_group, equipment, instructions)
			VALUES ($1, $2, $3, $4, $5);`,
		ex.ID, ex.Name, ex.MuscleGroup, ex.Equipment, ex.Instructions,
	); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrExerciseExists
		}
		return nil, err
	}

	return &ex, nil
}

// MuscleGroups returns the distinct muscle groups, sorted.
func (r *Repo) MuscleGroups(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.muscleGroups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT DISTINCT muscle_group FROM exercise ORDER BY muscle_group;`)
	if err != nil {
		return nil, err
	}

	groups, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect rows: %w", err)
	}
	return groups, nil
}

// SeedIfEmpty inserts the exercises only if the catalog has none, and
// returns how many were inserted.
func (r *Repo) SeedIfEmpty(ctx context.Context, exercises []workout.Exercise) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.seed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		// no-op after commit
		_ = tx.Rollback(ctx)
	}()

	// serialize concurrent seeders
	if _, err := tx.Exec(ctx, `LOCK TABLE exercise IN SHARE ROW EXCLUSIVE MODE;`); err != nil {
		return 0, fmt.Errorf("lock exercise table: %w", err)
	}

	var count int
	if err := tx.QueryRow(ctx, `SELECT count(*) FROM exercise;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count exercises: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, ex := range exercises {
		if strings.TrimSpace(ex.Name) == "" || strings.TrimSpace(ex.MuscleGroup) == "" {
			return 0, fmt.Errorf("seed exercise with empty name or muscle group: %+v", ex)
		}
		batch.Queue(
			`INSERT INTO exercise (id, name, muscle_group, equipment, instructions) VALUES ($1, $2, $3, $4, $5);`,
			uuid.NewString(), ex.Name, ex.MuscleGroup, ex.Equipment, ex.Instructions,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, fmt.Errorf("insert exercises: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	span.SetAttributes(attribute.Int("inserted", len(exercises)))
	return len(exercises), nil
}
