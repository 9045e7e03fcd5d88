package sessions

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

var (
	ErrSessionNotFound         = errors.New("session not found")
	ErrSessionExerciseNotFound = errors.New("exercise not found in session")
	ErrExercisesMismatch       = errors.New("exercises do not match the session")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Create stores the session and its worklist. The draft is expected to be
// validated already.
func (r *Repo) Create(ctx context.Context, draft workout.SessionDraft) (_ *workout.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session := workout.Session{
		ID:          uuid.NewString(),
		SplitID:     draft.SplitID,
		DayNumber:   draft.DayNumber,
		Exercises:   draft.Exercises,
		CompletedAt: time.Now().UTC(),
	}
	if session.Exercises == nil {
		session.Exercises = []workout.WorkoutExercise{}
	}
	span.SetAttributes(
		attribute.String("id", session.ID),
		attribute.Int("exercises", len(session.Exercises)),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(
		ctx,
		`INSERT INTO workout_session (id, split_id, day_number, completed_at) VALUES ($1, $2, $3, $4);`,
		session.ID, session.SplitID, session.DayNumber, session.CompletedAt,
	); err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	batch := &pgx.Batch{}
	for i, we := range session.Exercises {
		setsJson, err := json.Marshal(we.Sets)
		if err != nil {
			return nil, fmt.Errorf("marshal sets of [%s]: %w", we.ExerciseID, err)
		}
		batch.Queue(
			`INSERT INTO session_exercise
				(session_id, position, exercise_id, exercise_name, muscle_group, sets, completed_count, target_completions, is_archived)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
			session.ID, i, we.ExerciseID, we.ExerciseName, we.MuscleGroup, setsJson,
			we.CompletedCount, we.TargetCompletions, we.IsArchived,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return nil, fmt.Errorf("insert session exercises: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &session, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *workout.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	var session workout.Session
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, split_id, day_number, completed_at FROM workout_session WHERE id = $1;`,
		id,
	).Scan(&session.ID, &session.SplitID, &session.DayNumber, &session.CompletedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	exercises, err := r.exercisesOf(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	session.Exercises = exercises[id]
	if session.Exercises == nil {
		session.Exercises = []workout.WorkoutExercise{}
	}

	return &session, nil
}

// List returns sessions newest first, each with its exercises. A limit of
// zero or less returns all of them.
func (r *Repo) List(ctx context.Context, limit int) (_ []workout.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit))

	var limitArg any
	if limit > 0 {
		limitArg = limit
	}
	rows, err := r.db.Query(
		ctx,
		`SELECT id, split_id, day_number, completed_at
			FROM workout_session
			ORDER BY completed_at DESC, id
			LIMIT $1;`,
		limitArg,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]workout.Session, 0)
	ids := make([]string, 0)
	for rows.Next() {
		var s workout.Session
		if err := rows.Scan(&s.ID, &s.SplitID, &s.DayNumber, &s.CompletedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sessions = append(sessions, s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return sessions, nil
	}

	exercises, err := r.exercisesOf(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		sessions[i].Exercises = exercises[sessions[i].ID]
		if sessions[i].Exercises == nil {
			sessions[i].Exercises = []workout.WorkoutExercise{}
		}
	}

	span.SetAttributes(attribute.Int("count", len(sessions)))
	return sessions, nil
}

// UpdateExercises replaces the sets snapshot of the session, matched by
// worklist position. Progress is owned by complete/reset and left untouched.
func (r *Repo) UpdateExercises(ctx context.Context, sessionID string, exercises []workout.WorkoutExercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.updateExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", sessionID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	rows, err := tx.Query(
		ctx,
		`SELECT exercise_id FROM session_exercise WHERE session_id = $1 ORDER BY position FOR UPDATE;`,
		sessionID,
	)
	if err != nil {
		return err
	}
	storedIDs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return fmt.Errorf("collect rows: %w", err)
	}

	if len(storedIDs) == 0 {
		var exists bool
		if err := tx.QueryRow(
			ctx, `SELECT EXISTS (SELECT 1 FROM workout_session WHERE id = $1);`, sessionID,
		).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrSessionNotFound
		}
	}
	if len(storedIDs) != len(exercises) {
		return fmt.Errorf("%w: expected %d exercises, got %d", ErrExercisesMismatch, len(storedIDs), len(exercises))
	}

	batch := &pgx.Batch{}
	for i, we := range exercises {
		if storedIDs[i] != we.ExerciseID {
			return fmt.Errorf("%w: position %d holds [%s], got [%s]", ErrExercisesMismatch, i, storedIDs[i], we.ExerciseID)
		}
		setsJson, err := json.Marshal(we.Sets)
		if err != nil {
			return fmt.Errorf("marshal sets of [%s]: %w", we.ExerciseID, err)
		}
		batch.Queue(
			`UPDATE session_exercise SET sets = $3 WHERE session_id = $1 AND position = $2;`,
			sessionID, i, setsJson,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("update session exercises: %w", err)
	}

	return tx.Commit(ctx)
}

// CompleteExercise records one completion of the exercise in a single
// statement, so concurrent calls can never pass the target. Every worklist
// entry of the exercise shares the counter.
func (r *Repo) CompleteExercise(ctx context.Context, sessionID, exerciseID string) (_ workout.Progress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.completeExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("session_id", sessionID),
		attribute.String("exercise_id", exerciseID),
	)

	return r.updateProgress(
		ctx,
		`UPDATE session_exercise
			SET completed_count = LEAST(completed_count + 1, target_completions),
				is_archived = (LEAST(completed_count + 1, target_completions) = target_completions)
			WHERE session_id = $1 AND exercise_id = $2
			RETURNING completed_count, target_completions, is_archived;`,
		sessionID, exerciseID,
	)
}

func (r *Repo) ResetExercise(ctx context.Context, sessionID, exerciseID string) (_ workout.Progress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.resetExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("session_id", sessionID),
		attribute.String("exercise_id", exerciseID),
	)

	return r.updateProgress(
		ctx,
		`UPDATE session_exercise
			SET completed_count = 0, is_archived = FALSE
			WHERE session_id = $1 AND exercise_id = $2
			RETURNING completed_count, target_completions, is_archived;`,
		sessionID, exerciseID,
	)
}

func (r *Repo) updateProgress(ctx context.Context, query, sessionID, exerciseID string) (workout.Progress, error) {
	rows, err := r.db.Query(ctx, query, sessionID, exerciseID)
	if err != nil {
		return workout.Progress{}, err
	}
	updated, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (workout.Progress, error) {
		var p workout.Progress
		err := row.Scan(&p.CompletedCount, &p.TargetCompletions, &p.IsArchived)
		return p, err
	})
	if err != nil {
		return workout.Progress{}, fmt.Errorf("collect rows: %w", err)
	}
	if len(updated) > 0 {
		return updated[0], nil
	}

	var exists bool
	if err := r.db.QueryRow(
		ctx, `SELECT EXISTS (SELECT 1 FROM workout_session WHERE id = $1);`, sessionID,
	).Scan(&exists); err != nil {
		return workout.Progress{}, err
	}
	if !exists {
		return workout.Progress{}, ErrSessionNotFound
	}
	return workout.Progress{}, ErrSessionExerciseNotFound
}

func (r *Repo) exercisesOf(ctx context.Context, sessionIDs []string) (map[string][]workout.WorkoutExercise, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT session_id, exercise_id, exercise_name, muscle_group, sets, completed_count, target_completions, is_archived
			FROM session_exercise
			WHERE session_id = ANY($1)
			ORDER BY session_id, position;`,
		sessionIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make(map[string][]workout.WorkoutExercise, len(sessionIDs))
	for rows.Next() {
		var sessionID string
		var setsJson []byte
		var we workout.WorkoutExercise
		if err := rows.Scan(
			&sessionID, &we.ExerciseID, &we.ExerciseName, &we.MuscleGroup, &setsJson,
			&we.CompletedCount, &we.TargetCompletions, &we.IsArchived,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if err := json.Unmarshal(setsJson, &we.Sets); err != nil {
			return nil, fmt.Errorf("unmarshal sets of [%s/%s]: %w", sessionID, we.ExerciseID, err)
		}
		exercises[sessionID] = append(exercises[sessionID], we)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}
