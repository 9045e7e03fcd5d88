package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/undergroundgym/internal/telemetry/metrics"
	"github.com/2beens/undergroundgym/internal/telemetry/tracing"
	"github.com/2beens/undergroundgym/internal/workout"
	"github.com/2beens/undergroundgym/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=sessions_mocks_test.go -package=sessions_test

type sessionsRepo interface {
	Create(ctx context.Context, draft workout.SessionDraft) (*workout.Session, error)
	Get(ctx context.Context, id string) (*workout.Session, error)
	List(ctx context.Context, limit int) ([]workout.Session, error)
	UpdateExercises(ctx context.Context, sessionID string, exercises []workout.WorkoutExercise) error
	CompleteExercise(ctx context.Context, sessionID, exerciseID string) (workout.Progress, error)
	ResetExercise(ctx context.Context, sessionID, exerciseID string) (workout.Progress, error)
}

// ProgressResponse answers complete and reset calls.
type ProgressResponse struct {
	Message        string `json:"message"`
	ExerciseID     string `json:"exercise_id"`
	CompletedCount int    `json:"completed_count"`
	IsArchived     bool   `json:"is_archived"`
}

type UpdateExercisesRequest struct {
	Exercises []workout.WorkoutExercise `json:"exercises"`
}

type Handler struct {
	repo           sessionsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo sessionsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.create")
	defer span.End()

	var draft workout.SessionDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Tracef("new session, unmarshal json: %s", err)
		http.Error(w, "invalid session json", http.StatusBadRequest)
		return
	}
	if err := draft.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := handler.repo.Create(ctx, draft)
	if err != nil {
		log.Errorf("create session [%s/%d]: %s", draft.SplitID, draft.DayNumber, err)
		http.Error(w, "failed to create session", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterSessionsCreated.Inc()
	}
	span.SetAttributes(attribute.String("session_id", session.ID))
	log.Debugf("new session created: %s [split %s, day %d]", session.ID, session.SplitID, session.DayNumber)
	pkg.WriteJSON(w, session, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.list")
	defer span.End()

	limit := 0
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		var err error
		limit, err = strconv.Atoi(limitParam)
		if err != nil || limit < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
	}

	sessions, err := handler.repo.List(ctx, limit)
	if err != nil {
		log.Errorf("list sessions: %s", err)
		http.Error(w, "failed to list sessions", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, sessions, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	session, err := handler.repo.Get(ctx, id)
	if err != nil {
		writeRepoError(w, "get session", id, err)
		return
	}

	pkg.WriteJSON(w, session, http.StatusOK)
}

// HandleUpdate replaces the sets snapshot of a session and answers with the
// stored session.
func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.update")
	defer span.End()

	id := mux.Vars(r)["id"]

	var req UpdateExercisesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update session, unmarshal json: %s", err)
		http.Error(w, "invalid session json", http.StatusBadRequest)
		return
	}
	for _, we := range req.Exercises {
		if err := workout.ValidateSets(we.Sets); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	if err := handler.repo.UpdateExercises(ctx, id, req.Exercises); err != nil {
		if errors.Is(err, ErrExercisesMismatch) {
			log.Debugf("update session [%s]: %s", id, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeRepoError(w, "update session", id, err)
		return
	}

	session, err := handler.repo.Get(ctx, id)
	if err != nil {
		writeRepoError(w, "get session", id, err)
		return
	}

	pkg.WriteJSON(w, session, http.StatusOK)
}

func (handler *Handler) HandleCompleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.completeExercise")
	defer span.End()

	sessionID := mux.Vars(r)["id"]
	exerciseID := mux.Vars(r)["exercise_id"]

	progress, err := handler.repo.CompleteExercise(ctx, sessionID, exerciseID)
	if err != nil {
		writeRepoError(w, "complete exercise", sessionID+"/"+exerciseID, err)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterExerciseCompletions.WithLabelValues(strconv.FormatBool(progress.IsArchived)).Inc()
	}

	pkg.WriteJSON(w, ProgressResponse{
		Message:        "Exercise completion updated",
		ExerciseID:     exerciseID,
		CompletedCount: progress.CompletedCount,
		IsArchived:     progress.IsArchived,
	}, http.StatusOK)
}

func (handler *Handler) HandleResetExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.resetExercise")
	defer span.End()

	sessionID := mux.Vars(r)["id"]
	exerciseID := mux.Vars(r)["exercise_id"]

	progress, err := handler.repo.ResetExercise(ctx, sessionID, exerciseID)
	if err != nil {
		writeRepoError(w, "reset exercise", sessionID+"/"+exerciseID, err)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterExerciseResets.Inc()
	}

	pkg.WriteJSON(w, ProgressResponse{
		Message:        "Exercise progress reset",
		ExerciseID:     exerciseID,
		CompletedCount: progress.CompletedCount,
		IsArchived:     progress.IsArchived,
	}, http.StatusOK)
}

// HandleHistory answers with the latest recorded performance of every
// exercise found in past sessions.
func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.history")
	defer span.End()

	sessions, err := handler.repo.List(ctx, 0)
	if err != nil {
		log.Errorf("exercise history, list sessions: %s", err)
		http.Error(w, "failed to get exercise history", http.StatusInternalServerError)
		return
	}

	history := workout.BuildHistory(sessions)
	span.SetAttributes(attribute.Int("exercises", len(history)))
	pkg.WriteJSON(w, history, http.StatusOK)
}

func writeRepoError(w http.ResponseWriter, op, id string, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "Workout session not found", http.StatusNotFound)
	case errors.Is(err, ErrSessionExerciseNotFound):
		http.Error(w, "Exercise not found in session", http.StatusNotFound)
	default:
		log.Errorf("%s [%s]: %s", op, id, err)
		http.Error(w, "failed to "+op, http.StatusInternalServerError)
	}
}
