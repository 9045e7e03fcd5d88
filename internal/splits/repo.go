package splits

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/undergroundgym/internal/telemetry/tracing"
	"github.com/2beens/undergroundgym/internal/workout"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrSplitNotFound = errors.New("split not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add stores a validated split, assigning its id and creation time.
func (r *Repo) Add(ctx context.Context, split workout.Split) (_ *workout.Split, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.splits.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	daysJson, err := json.Marshal(split.Days)
	if err != nil {
		return nil, fmt.Errorf("marshal days: %w", err)
	}

	split.ID = uuid.NewString()
	split.CreatedAt = time.Now().UTC()
	span.SetAttributes(attribute.String("id", split.ID))

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO workout_split (id, name, days_per_week, days, created_at)
			VALUES ($1, $2, $3, $4, $5);`,
		split.ID, split.Name, split.DaysPerWeek, daysJson, split.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &split, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *workout.Split, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.splits.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	split, err := scanSplit(r.db.QueryRow(
		ctx,
		`SELECT id, name, days_per_week, days, created_at FROM workout_split WHERE id = $1;`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSplitNotFound
		}
		return nil, err
	}

	return split, nil
}

// List returns all splits, newest first.
func (r *Repo) List(ctx context.Context) (_ []workout.Split, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.splits.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, days_per_week, days, created_at
			FROM workout_split
			ORDER BY created_at DESC, id;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	splits := make([]workout.Split, 0)
	for rows.Next() {
		split, err := scanSplit(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		splits = append(splits, *split)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(splits)))
	return splits, nil
}

// Update overwrites name and days of an existing split. Id and creation
// time are kept.
func (r *Repo) Update(ctx context.Context, split workout.Split) (_ *workout.Split, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.splits.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", split.ID))

	daysJson, err := json.Marshal(split.Days)
	if err != nil {
		return nil, fmt.Errorf("marshal days: %w", err)
	}

	updated, err := scanSplit(r.db.QueryRow(
		ctx,
		`UPDATE workout_split
			SET name = $2, days_per_week = $3, days = $4
			WHERE id = $1
			RETURNING id, name, days_per_week, days, created_at;`,
		split.ID, split.Name, split.DaysPerWeek, daysJson,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSplitNotFound
		}
		return nil, err
	}

	return updated, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.splits.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_split WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSplitNotFound
	}

	return nil
}

func scanSplit(row pgx.Row) (*workout.Split, error) {
	var split workout.Split
	var daysJson []byte
	if err := row.Scan(&split.ID, &split.Name, &split.DaysPerWeek, &daysJson, &split.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(daysJson, &split.Days); err != nil {
		return nil, fmt.Errorf("unmarshal days of split [%s]: %w", split.ID, err)
	}
	return &split, nil
}
