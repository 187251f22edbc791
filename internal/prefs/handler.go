package prefs

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/hamzfitness/internal/telemetry/metrics"
	"github.com/2beens/hamzfitness/internal/telemetry/tracing"
	"github.com/2beens/hamzfitness/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=prefs_test

type prefsStore interface {
	Load(ctx context.Context) (*Prefs, bool)
	Update(ctx context.Context, u Update) *Prefs
	Reset(ctx context.Context) error
}

// workoutsCleaner wipes the workout log, used by the full data reset.
type workoutsCleaner interface {
	Clear(ctx context.Context) error
}

type ProfileResponse struct {
	Onboarded bool   `json:"onboarded"`
	Profile   *Prefs `json:"profile,omitempty"`
}

// UpdateRequest is the HTTP-facing profile update shape. The streak
// counters are deliberately absent here: they are derived from the workout
// log and written back by the stats service, not by clients.
type UpdateRequest struct {
	Name      *string    `json:"name,omitempty"`
	DailyGoal *int       `json:"dailyGoal,omitempty"`
	JoinDate  *time.Time `json:"joinDate,omitempty"`
}

type Handler struct {
	store    prefsStore
	workouts workoutsCleaner
	metrics  *metrics.Manager
}

func NewHandler(store prefsStore, workouts workoutsCleaner, metrics *metrics.Manager) *Handler {
	return &Handler{
		store:    store,
		workouts: workouts,
		metrics:  metrics,
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.prefs.get")
	defer span.End()

	p, ok := handler.store.Load(ctx)

	respJson, err := json.Marshal(ProfileResponse{
		Onboarded: ok,
		Profile:   p,
	})
	if err != nil {
		log.Errorf("failed to marshal profile: %s", err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.prefs.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("update profile, unmarshal json params: %s", err)
		http.Error(w, "update profile failed", http.StatusBadRequest)
		return
	}

	updated := handler.store.Update(ctx, Update{
		Name:      req.Name,
		DailyGoal: req.DailyGoal,
		JoinDate:  req.JoinDate,
	})
	handler.metrics.CounterPrefsUpdates.Inc()

	log.Debugf("profile updated: name [%s], daily goal %d", updated.Name, updated.DailyGoal)

	updatedJson, err := json.Marshal(updated)
	if err != nil {
		log.Errorf("failed to marshal updated profile: %s", err)
		http.Error(w, "update profile failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, updatedJson, http.StatusOK)
}

// HandleReset wipes the profile together with the workout log.
func (handler *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.prefs.reset")
	defer span.End()

	if err := handler.workouts.Clear(ctx); err != nil {
		log.Errorf("reset data, clear workouts: %s", err)
		http.Error(w, "reset failed", http.StatusInternalServerError)
		return
	}
	if err := handler.store.Reset(ctx); err != nil {
		log.Errorf("reset data, reset profile: %s", err)
		http.Error(w, "reset failed", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterDataResets.Inc()
	log.Warnln("all fitness data has been reset")

	pkg.WriteJSONResponseOK(w, `{"reset":true}`)
}
