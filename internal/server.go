package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/hamzfitness/internal/auth"
	"github.com/2beens/hamzfitness/internal/config"
	"github.com/2beens/hamzfitness/internal/db"
	"github.com/2beens/hamzfitness/internal/kvstore"
	"github.com/2beens/hamzfitness/internal/middleware"
	"github.com/2beens/hamzfitness/internal/misc"
	"github.com/2beens/hamzfitness/internal/prefs"
	"github.com/2beens/hamzfitness/internal/stats"
	"github.com/2beens/hamzfitness/internal/telemetry/metrics"
	"github.com/2beens/hamzfitness/internal/telemetry/tracing"
	"github.com/2beens/hamzfitness/internal/workouts"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	fitnessAppSecret  string // used with the fitness mobile app
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool // nil when the redis storage backend is used
	kv     kvstore.Store

	prefsStore    *prefs.Store
	workoutsStore *workouts.Store
	statsService  *stats.Service

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	FitnessAppSecret        string
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	var (
		dbPool          *pgxpool.Pool
		kv              kvstore.Store
		extraCollectors []prometheus.Collector
	)
	switch strings.ToLower(params.Config.StorageBackend) {
	case "postgres":
		pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         params.Config.PostgresHost,
			DBPort:         params.Config.PostgresPort,
			DBName:         params.Config.PostgresDBName,
			TracingEnabled: params.HoneycombTracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}

		if err := pool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}

		pgStore, err := kvstore.NewPostgresStore(ctx, pool)
		if err != nil {
			return nil, fmt.Errorf("new postgres kv store: %w", err)
		}

		dbPool = pool
		kv = pgStore
		extraCollectors = append(extraCollectors, pgxpoolprometheus.NewCollector(
			pool,
			map[string]string{"db_name": params.Config.PostgresDBName},
		))
	case "", "redis":
		kv = kvstore.NewRedisStore(rdb)
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", params.Config.StorageBackend)
	}

	promRegistry := metrics.SetupPrometheus(extraCollectors...)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0) // will be set to 1 when all is set and ran

	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitness-backend", rdb)
	if err != nil {
		return nil, err
	}

	prefsStore := prefs.NewStore(kv)
	workoutsStore := workouts.NewStore(kv)
	statsService := stats.NewService(
		stats.NewAnalyzer(workoutsStore, prefsStore),
		prefsStore,
	)

	return &Server{
		config:           params.Config,
		dbPool:           dbPool,
		kv:               kv,
		fitnessAppSecret: params.FitnessAppSecret,
		versionInfo:      params.VersionInfo,

		prefsStore:    prefsStore,
		workoutsStore: workoutsStore,
		statsService:  statsService,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	profileHandler := prefs.NewHandler(s.prefsStore, s.workoutsStore, s.metricsManager)
	r.HandleFunc("/profile", profileHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/profile", profileHandler.HandleUpdate).Methods("POST", "PUT", "OPTIONS").Name("update-profile")
	r.HandleFunc("/profile", profileHandler.HandleReset).Methods("DELETE", "OPTIONS").Name("reset-profile")

	workoutsHandler := workouts.NewHandler(s.workoutsStore, s.statsService, s.metricsManager)
	r.HandleFunc("/workouts", workoutsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/workouts/suggestions", workoutsHandler.HandleSuggestions).Methods("GET", "OPTIONS").Name("workout-suggestions")
	r.HandleFunc("/workouts/list/page/{page}/size/{size}", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")

	statsHandler := stats.NewHandler(s.statsService)
	r.HandleFunc("/stats/today", statsHandler.HandleToday).Methods("GET", "OPTIONS").Name("stats-today")
	r.HandleFunc("/stats/weekly", statsHandler.HandleWeekly).Methods("GET", "OPTIONS").Name("stats-weekly")
	r.HandleFunc("/stats/totals", statsHandler.HandleTotals).Methods("GET", "OPTIONS").Name("stats-totals")
	r.HandleFunc("/stats/records", statsHandler.HandleRecords).Methods("GET", "OPTIONS").Name("stats-records")
	r.HandleFunc("/stats/achievements", statsHandler.HandleAchievements).Methods("GET", "OPTIONS").Name("stats-achievements")
	r.HandleFunc("/stats/streak", statsHandler.HandleStreak).Methods("GET", "OPTIONS").Name("stats-streak")
	r.HandleFunc("/stats/summary", statsHandler.HandleSummary).Methods("GET", "OPTIONS").Name("stats-summary")
	r.HandleFunc("/history", statsHandler.HandleHistory).Methods("GET", "OPTIONS").Name("history")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.versionInfo, s.authService)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.config.LoginRateLimitAllowedPerMin, s.metricsManager)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(
		s.fitnessAppSecret,
		s.loginChecker,
	)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}
