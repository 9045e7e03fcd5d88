package workout

import (
	"context"
	"errors"
	"sync"
)

//go:generate mockgen -source=$GOFILE -destination=engine_mocks_test.go -package=workout_test

// SessionStore is the persistence contract the engine drives.
type SessionStore interface {
	CreateSession(ctx context.Context, draft SessionDraft) (*Session, error)
	UpdateSessionExercises(ctx context.Context, sessionID string, exercises []WorkoutExercise) (*Session, error)
	CompleteExercise(ctx context.Context, sessionID, exerciseID string) (Progress, error)
	ResetExercise(ctx context.Context, sessionID, exerciseID string) (Progress, error)
}

// Outcome is the result of a completion transition, mirrored from the store.
type Outcome struct {
	ExerciseID string `json:"exercise_id"`
	Progress
	// JustArchived is set when this transition moved the exercise into the archive.
	JustArchived bool `json:"just_archived"`
}

// Engine owns the state of one workout: the derived worklist of a split day
// and the id of the session persisting it. All mutation goes through its
// methods.
type Engine struct {
	store SessionStore
	split Split
	day   Day
	opts  WorklistOptions

	// sessionMu serializes session creation
	sessionMu sync.Mutex

	mu        sync.Mutex
	worklist  []WorkoutExercise
	positions map[string][]int
	sessionID string
	inFlight  map[string]bool
}

func NewEngine(
	store SessionStore,
	split Split,
	dayNumber int,
	catalog []Exercise,
	opts WorklistOptions,
) (*Engine, error) {
	day, ok := split.Day(dayNumber)
	if !ok {
		return nil, newValidationError("day_number", "split [%s] has no day %d", split.ID, dayNumber)
	}

	e := &Engine{
		store:    store,
		split:    split,
		day:      day,
		opts:     opts,
		inFlight: make(map[string]bool),
	}
	e.setWorklist(DeriveWorklist(day, catalog, opts))
	return e, nil
}

func (e *Engine) Split() Split {
	return e.split
}

func (e *Engine) Day() Day {
	return e.day
}

// SessionID returns the id of the persisted session, or "" if none exists yet.
func (e *Engine) SessionID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sessionID
}

// Worklist returns a copy of the current worklist.
func (e *Engine) Worklist() []WorkoutExercise {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) Active() []WorkoutExercise {
	return e.filter(false)
}

func (e *Engine) Archived() []WorkoutExercise {
	return e.filter(true)
}

func (e *Engine) filter(archived bool) []WorkoutExercise {
	e.mu.Lock()
	defer e.mu.Unlock()
	var res []WorkoutExercise
	for _, we := range e.worklist {
		if we.IsArchived == archived {
			res = append(res, we.clone())
		}
	}
	return res
}

// Refresh re-derives the worklist after a catalog change. Once a session
// exists the worklist is bound to it and cannot be re-derived.
func (e *Engine) Refresh(catalog []Exercise) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sessionID != "" {
		return ErrSessionStarted
	}
	e.setWorklist(DeriveWorklist(e.day, catalog, e.opts))
	return nil
}

// EnsureSession creates the session for this workout unless one already
// exists, and returns its id.
func (e *Engine) EnsureSession(ctx context.Context) (string, error) {
	e.sessionMu.Lock()
	defer e.sessionMu.Unlock()

	e.mu.Lock()
	if e.sessionID != "" {
		id := e.sessionID
		e.mu.Unlock()
		return id, nil
	}
	draft := SessionDraft{
		SplitID:   e.split.ID,
		DayNumber: e.day.DayNumber,
		Exercises: e.snapshotLocked(),
	}
	e.mu.Unlock()

	session, err := e.store.CreateSession(ctx, draft)
	if err != nil {
		return "", transportErr("create session", err)
	}
	if session == nil || session.ID == "" {
		return "", &TransportError{Op: "create session", Err: errors.New("store returned no session id")}
	}

	e.mu.Lock()
	e.sessionID = session.ID
	e.mu.Unlock()

	return session.ID, nil
}

// Complete records one completion of the exercise. The local mirror is only
// updated from the store's answer.
func (e *Engine) Complete(ctx context.Context, exerciseID string) (Outcome, error) {
	current, err := e.begin(exerciseID)
	if err != nil {
		return Outcome{}, err
	}
	defer e.finish(exerciseID)

	if current.IsArchived {
		return Outcome{ExerciseID: exerciseID, Progress: current}, nil
	}

	sessionID, err := e.EnsureSession(ctx)
	if err != nil {
		return Outcome{ExerciseID: exerciseID, Progress: current}, err
	}

	confirmed, err := e.store.CompleteExercise(ctx, sessionID, exerciseID)
	if err != nil {
		return Outcome{ExerciseID: exerciseID, Progress: current}, transportErr("complete exercise", err)
	}

	confirmed = e.apply(exerciseID, current, confirmed)
	return Outcome{
		ExerciseID:   exerciseID,
		Progress:     confirmed,
		JustArchived: !current.IsArchived && confirmed.IsArchived,
	}, nil
}

// Reset clears the exercise's progress. Without a session there is no
// server state, and the exercise is already at zero.
func (e *Engine) Reset(ctx context.Context, exerciseID string) (Outcome, error) {
	current, err := e.begin(exerciseID)
	if err != nil {
		return Outcome{}, err
	}
	defer e.finish(exerciseID)

	sessionID := e.SessionID()
	if sessionID == "" {
		return Outcome{ExerciseID: exerciseID, Progress: current.Reset()}, nil
	}

	confirmed, err := e.store.ResetExercise(ctx, sessionID, exerciseID)
	if err != nil {
		return Outcome{ExerciseID: exerciseID, Progress: current}, transportErr("reset exercise", err)
	}

	confirmed = e.apply(exerciseID, current, confirmed)
	return Outcome{ExerciseID: exerciseID, Progress: confirmed}, nil
}

// UpdateSet edits the weight and reps of one set of the exercise.
func (e *Engine) UpdateSet(exerciseID string, setIndex int, weight float64, reps int) error {
	if weight < 0 {
		return newValidationError("weight", "must not be negative, got %v", weight)
	}
	if reps <= 0 {
		return newValidationError("reps", "must be positive, got %d", reps)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	positions, ok := e.positions[exerciseID]
	if !ok {
		return ErrUnknownExercise
	}
	for _, pos := range positions {
		we := &e.worklist[pos]
		if we.IsArchived {
			return ErrExerciseArchived
		}
		if setIndex < 0 || setIndex >= len(we.Sets) {
			return newValidationError("set_index", "out of range [0, %d): %d", len(we.Sets), setIndex)
		}
	}
	for _, pos := range positions {
		we := &e.worklist[pos]
		we.Sets[setIndex].Weight = weight
		we.Sets[setIndex].Reps = reps
	}
	return nil
}

// Save makes sure the session exists and persists the current sets snapshot.
func (e *Engine) Save(ctx context.Context) (string, error) {
	sessionID, err := e.EnsureSession(ctx)
	if err != nil {
		return "", err
	}

	snapshot := e.Worklist()
	if _, err := e.store.UpdateSessionExercises(ctx, sessionID, snapshot); err != nil {
		return sessionID, transportErr("save session", err)
	}
	return sessionID, nil
}

// begin marks the exercise as having an action in flight and returns its
// last confirmed progress.
func (e *Engine) begin(exerciseID string) (Progress, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	positions, ok := e.positions[exerciseID]
	if !ok {
		return Progress{}, ErrUnknownExercise
	}
	if e.inFlight[exerciseID] {
		return Progress{}, ErrExerciseBusy
	}
	e.inFlight[exerciseID] = true
	return e.worklist[positions[0]].Progress(), nil
}

func (e *Engine) finish(exerciseID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.inFlight, exerciseID)
}

// apply mirrors confirmed progress onto every worklist entry of the exercise.
func (e *Engine) apply(exerciseID string, current, confirmed Progress) Progress {
	if confirmed.TargetCompletions <= 0 {
		confirmed.TargetCompletions = current.TargetCompletions
	}
	confirmed = confirmed.normalized()

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, pos := range e.positions[exerciseID] {
		e.worklist[pos].applyProgress(confirmed)
	}
	return confirmed
}

func (e *Engine) setWorklist(worklist []WorkoutExercise) {
	e.worklist = worklist
	e.positions = make(map[string][]int, len(worklist))
	for i, we := range worklist {
		e.positions[we.ExerciseID] = append(e.positions[we.ExerciseID], i)
	}
}

func (e *Engine) snapshotLocked() []WorkoutExercise {
	snapshot := make([]WorkoutExercise, len(e.worklist))
	for i, we := range e.worklist {
		snapshot[i] = we.clone()
	}
	return snapshot
}
