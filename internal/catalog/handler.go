package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/undergroundgym/internal/telemetry/tracing"
	"github.com/2beens/undergroundgym/internal/workout"
	"github.com/2beens/undergroundgym/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=catalog_test

type catalogRepo interface {
	List(ctx context.Context, muscleGroup string) ([]workout.Exercise, error)
	Get(ctx context.Context, id string) (*workout.Exercise, error)
	Add(ctx context.Context, ex workout.Exercise) (*workout.Exercise, error)
	MuscleGroups(ctx context.Context) ([]string, error)
}

type Handler struct {
	repo catalogRepo
}

func NewHandler(repo catalogRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleMuscleGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.muscleGroups")
	defer span.End()

	groups, err := handler.repo.MuscleGroups(ctx)
	if err != nil {
		log.Errorf("list muscle groups: %s", err)
		http.Error(w, "failed to list muscle groups", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, groups, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.list")
	defer span.End()

	muscleGroup := strings.TrimSpace(r.URL.Query().Get("muscle_group"))
	exercises, err := handler.repo.List(ctx, muscleGroup)
	if err != nil {
		log.Errorf("list exercises [%s]: %s", muscleGroup, err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	ex, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "Exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("get exercise [%s]: %s", id, err)
		http.Error(w, "failed to get exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ex, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.add")
	defer span.End()

	var ex workout.Exercise
	if err := json.NewDecoder(r.Body).Decode(&ex); err != nil {
		log.Tracef("new exercise, unmarshal json: %s", err)
		http.Error(w, "invalid exercise json", http.StatusBadRequest)
		return
	}

	ex.Name = strings.TrimSpace(ex.Name)
	ex.MuscleGroup = strings.TrimSpace(ex.MuscleGroup)
	if ex.Name == "" || ex.MuscleGroup == "" {
		http.Error(w, "error, exercise name or muscle group empty", http.StatusBadRequest)
		return
	}

	added, err := handler.repo.Add(ctx, ex)
	if err != nil {
		if errors.Is(err, ErrExerciseExists) {
			http.Error(w, "exercise already exists", http.StatusConflict)
			return
		}
		log.Errorf("add exercise [%s] [%s]: %s", ex.MuscleGroup, ex.Name, err)
		http.Error(w, "failed to add exercise", http.StatusInternalServerError)
		return
	}

	log.Debugf("new exercise added: %s [%s]", added.Name, added.ID)
	pkg.WriteJSON(w, added, http.StatusOK)
}

func (handler *Handler) HandleTemplates(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.templates")
	defer span.End()

	pkg.WriteJSON(w, Templates(), http.StatusOK)
}
