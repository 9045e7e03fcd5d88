package splits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/undergroundgym/internal/telemetry/metrics"
	"github.com/2beens/undergroundgym/internal/telemetry/tracing"
	"github.com/2beens/undergroundgym/internal/workout"
	"github.com/2beens/undergroundgym/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=splits_mocks_test.go -package=splits_test

type splitsRepo interface {
	Add(ctx context.Context, split workout.Split) (*workout.Split, error)
	Get(ctx context.Context, id string) (*workout.Split, error)
	List(ctx context.Context) ([]workout.Split, error)
	Update(ctx context.Context, split workout.Split) (*workout.Split, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	repo           splitsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo splitsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.splits.list")
	defer span.End()

	splits, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("list splits: %s", err)
		http.Error(w, "failed to list splits", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, splits, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.splits.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	split, err := handler.repo.Get(ctx, id)
	if err != nil {
		handler.writeRepoError(w, "get", id, err)
		return
	}

	pkg.WriteJSON(w, split, http.StatusOK)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.splits.create")
	defer span.End()

	split, ok := decodeSplit(w, r)
	if !ok {
		return
	}

	added, err := handler.repo.Add(ctx, split)
	if err != nil {
		log.Errorf("add split [%s]: %s", split.Name, err)
		http.Error(w, "failed to create split", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterSplitsCreated.Inc()
	}
	log.Debugf("new split created: %s [%s]", added.Name, added.ID)
	pkg.WriteJSON(w, added, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.splits.update")
	defer span.End()

	split, ok := decodeSplit(w, r)
	if !ok {
		return
	}
	split.ID = mux.Vars(r)["id"]

	updated, err := handler.repo.Update(ctx, split)
	if err != nil {
		handler.writeRepoError(w, "update", split.ID, err)
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.splits.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if err := handler.repo.Delete(ctx, id); err != nil {
		handler.writeRepoError(w, "delete", id, err)
		return
	}

	pkg.WriteJSON(w, map[string]string{"message": "Workout split deleted successfully"}, http.StatusOK)
}

func (handler *Handler) writeRepoError(w http.ResponseWriter, op, id string, err error) {
	if errors.Is(err, ErrSplitNotFound) {
		http.Error(w, "Workout split not found", http.StatusNotFound)
		return
	}
	log.Errorf("%s split [%s]: %s", op, id, err)
	http.Error(w, "failed to "+op+" split", http.StatusInternalServerError)
}

func decodeSplit(w http.ResponseWriter, r *http.Request) (workout.Split, bool) {
	var split workout.Split
	if err := json.NewDecoder(r.Body).Decode(&split); err != nil {
		log.Tracef("split, unmarshal json: %s", err)
		http.Error(w, "invalid split json", http.StatusBadRequest)
		return workout.Split{}, false
	}

	if err := split.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return workout.Split{}, false
	}

	return split, true
}
