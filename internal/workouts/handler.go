package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/hamzfitness/internal/telemetry/metrics"
	"github.com/2beens/hamzfitness/internal/telemetry/tracing"
	"github.com/2beens/hamzfitness/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsStore interface {
	Load(ctx context.Context) []Workout
	Add(ctx context.Context, workout Workout) Workout
	Get(ctx context.Context, id string) (*Workout, error)
	Delete(ctx context.Context, id string) error
}

// streakRefresher recomputes the goal streak counters after the workout
// log changed.
type streakRefresher interface {
	RefreshStreaks(ctx context.Context)
}

type DeleteWorkoutResponse struct {
	DeletedID string `json:"deletedId"`
}

type WorkoutsListResponse struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
}

type Handler struct {
	store   workoutsStore
	streaks streakRefresher
	metrics *metrics.Manager
}

func NewHandler(store workoutsStore, streaks streakRefresher, metrics *metrics.Manager) *Handler {
	return &Handler{
		store:   store,
		streaks: streaks,
		metrics: metrics,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var workout Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Errorf("new workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	if workout.ExerciseName == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}
	if !workout.ExerciseType.Valid() {
		http.Error(w, "error, invalid exercise type", http.StatusBadRequest)
		return
	}

	added := handler.store.Add(ctx, workout)
	handler.streaks.RefreshStreaks(ctx)
	handler.metrics.CounterWorkoutsAdded.Inc()

	log.Debugf("new workout added: [%s] [%s]: %s", added.ExerciseType, added.ExerciseName, added.ID)

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal new workout: %s", err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	workout, err := handler.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get workout %s: %s", id, err)
		http.Error(w, "failed to get workout", http.StatusInternalServerError)
		return
	}

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("failed to marshal workout: %s", err)
		http.Error(w, "failed to marshal workout", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.store.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete workout %s: %s", id, err)
		http.Error(w, "failed to delete workout", http.StatusInternalServerError)
		return
	}

	handler.streaks.RefreshStreaks(ctx)
	handler.metrics.CounterWorkoutsDeleted.Inc()

	deletedJson, err := json.Marshal(DeleteWorkoutResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete workout response: %s", err)
		http.Error(w, "failed to delete workout", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, deletedJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	vars := mux.Vars(r)

	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Errorf("handle list workouts, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		log.Errorf("handle list workouts, from <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	all := handler.store.Load(ctx)

	from := (page - 1) * size
	if from > len(all) {
		from = len(all)
	}
	to := from + size
	if to > len(all) {
		to = len(all)
	}

	listJson, err := json.Marshal(WorkoutsListResponse{
		Workouts: all[from:to],
		Total:    len(all),
	})
	if err != nil {
		log.Errorf("failed to marshal workouts list: %s", err)
		http.Error(w, "failed to list workouts", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listJson, http.StatusOK)
}

func (handler *Handler) HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.suggestions")
	defer span.End()

	suggestionsJson, err := json.Marshal(Suggestions)
	if err != nil {
		log.Errorf("failed to marshal workout suggestions: %s", err)
		http.Error(w, "failed to get suggestions", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, suggestionsJson, http.StatusOK)
}
