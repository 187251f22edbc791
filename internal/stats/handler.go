package stats

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/hamzfitness/internal/telemetry/tracing"
	"github.com/2beens/hamzfitness/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats_test

type statsService interface {
	TodayProgress(ctx context.Context) TodayProgress
	WeeklyHistogram(ctx context.Context) []DayCount
	Totals(ctx context.Context) Totals
	PersonalRecords(ctx context.Context) []PersonalRecord
	Achievements(ctx context.Context) []Achievement
	Streaks(ctx context.Context) Streaks
	Summary(ctx context.Context) Summary
	History(ctx context.Context, filter HistoryFilter, query string) []HistoryGroup
}

type Handler struct {
	service statsService
}

func NewHandler(service statsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.today")
	defer span.End()
	handler.respond(w, handler.service.TodayProgress(ctx))
}

func (handler *Handler) HandleWeekly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.weekly")
	defer span.End()
	handler.respond(w, handler.service.WeeklyHistogram(ctx))
}

func (handler *Handler) HandleTotals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.totals")
	defer span.End()
	handler.respond(w, handler.service.Totals(ctx))
}

func (handler *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.records")
	defer span.End()

	records := handler.service.PersonalRecords(ctx)
	if records == nil {
		records = []PersonalRecord{}
	}
	handler.respond(w, records)
}

func (handler *Handler) HandleAchievements(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.achievements")
	defer span.End()
	handler.respond(w, handler.service.Achievements(ctx))
}

func (handler *Handler) HandleStreak(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.streak")
	defer span.End()
	handler.respond(w, handler.service.Streaks(ctx))
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.summary")
	defer span.End()
	handler.respond(w, handler.service.Summary(ctx))
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.history")
	defer span.End()

	filter := ParseHistoryFilter(r.URL.Query().Get("type"))
	query := r.URL.Query().Get("q")

	groups := handler.service.History(ctx, filter, query)
	if groups == nil {
		groups = []HistoryGroup{}
	}
	handler.respond(w, groups)
}

func (handler *Handler) respond(w http.ResponseWriter, payload interface{}) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("failed to marshal stats response: %s", err)
		http.Error(w, "failed to get stats", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, payloadJson, http.StatusOK)
}
