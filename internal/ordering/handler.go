package ordering

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/2beens/undergroundgym/internal/telemetry/tracing"
	"github.com/2beens/undergroundgym/internal/workout"
	"github.com/2beens/undergroundgym/pkg"

	log "github.com/sirupsen/logrus"
)

type orderRepo interface {
	Get(ctx context.Context) ([]string, error)
	Save(ctx context.Context, ids []string) error
}

type catalogLister interface {
	List(ctx context.Context, muscleGroup string) ([]workout.Exercise, error)
}

type OrderPayload struct {
	ExerciseIDs []string `json:"exercise_ids"`
}

type Handler struct {
	repo    orderRepo
	catalog catalogLister
}

func NewHandler(repo orderRepo, catalog catalogLister) *Handler {
	return &Handler{
		repo:    repo,
		catalog: catalog,
	}
}

// HandleGet answers with the catalog ids in display order. Exercises added
// after the order was saved come last. The optional search and muscle_group
// query params narrow the result.
func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ordering.get")
	defer span.End()

	catalog, err := handler.catalog.List(ctx, "")
	if err != nil {
		log.Errorf("exercise order, list catalog: %s", err)
		http.Error(w, "failed to get exercise order", http.StatusInternalServerError)
		return
	}

	stored, err := handler.repo.Get(ctx)
	if err != nil {
		log.Errorf("exercise order, get stored: %s", err)
		http.Error(w, "failed to get exercise order", http.StatusInternalServerError)
		return
	}

	order := workout.NewOrderStore(catalog)
	if len(stored) > 0 {
		order.Load(stored)
	}

	filter := workout.Filter{
		Search:      strings.TrimSpace(r.URL.Query().Get("search")),
		MuscleGroup: strings.TrimSpace(r.URL.Query().Get("muscle_group")),
	}
	visible := order.Visible(catalog, filter)

	ids := make([]string, len(visible))
	for i, ex := range visible {
		ids[i] = ex.ID
	}
	pkg.WriteJSON(w, OrderPayload{ExerciseIDs: ids}, http.StatusOK)
}

func (handler *Handler) HandlePut(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ordering.put")
	defer span.End()

	var payload OrderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Tracef("exercise order, unmarshal json: %s", err)
		http.Error(w, "invalid exercise order json", http.StatusBadRequest)
		return
	}
	if payload.ExerciseIDs == nil {
		http.Error(w, "error, exercise_ids missing", http.StatusBadRequest)
		return
	}

	catalog, err := handler.catalog.List(ctx, "")
	if err != nil {
		log.Errorf("exercise order, list catalog: %s", err)
		http.Error(w, "failed to save exercise order", http.StatusInternalServerError)
		return
	}
	known := make(map[string]bool, len(catalog))
	for _, ex := range catalog {
		known[ex.ID] = true
	}

	seen := make(map[string]bool, len(payload.ExerciseIDs))
	for _, id := range payload.ExerciseIDs {
		if !known[id] {
			http.Error(w, "unknown exercise id: "+id, http.StatusBadRequest)
			return
		}
		if seen[id] {
			http.Error(w, "duplicate exercise id: "+id, http.StatusBadRequest)
			return
		}
		seen[id] = true
	}

	if err := handler.repo.Save(ctx, payload.ExerciseIDs); err != nil {
		log.Errorf("exercise order, save: %s", err)
		http.Error(w, "failed to save exercise order", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, payload, http.StatusOK)
}
