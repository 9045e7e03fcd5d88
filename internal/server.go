package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/undergroundgym/internal/catalog"
	"github.com/2beens/undergroundgym/internal/config"
	"github.com/2beens/undergroundgym/internal/db"
	gymmcp "github.com/2beens/undergroundgym/internal/mcp"
	"github.com/2beens/undergroundgym/internal/middleware"
	"github.com/2beens/undergroundgym/internal/ordering"
	"github.com/2beens/undergroundgym/internal/sessions"
	"github.com/2beens/undergroundgym/internal/splits"
	"github.com/2beens/undergroundgym/internal/telemetry/metrics"
	"github.com/2beens/undergroundgym/internal/telemetry/tracing"
	"github.com/2beens/undergroundgym/pkg"
)

const maxRequestBodyBytes = 1 << 20

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	catalogRepo *catalog.CachedRepo

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	PostgresPassword        string
	RedisPassword           string
	HoneycombTracingEnabled bool
	OtelServiceName         string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbParams := db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	}

	if params.Config.RunMigrations {
		if err := db.RunMigrations(dbParams.ConnString()); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	dbPool, err := db.NewDBPool(ctx, dbParams)
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

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

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, params.OtelServiceName, rdb)
	if err != nil {
		return nil, err
	}

	exercisesRepo := catalog.NewRepo(dbPool)
	if params.Config.SeedExercises {
		inserted, err := exercisesRepo.SeedIfEmpty(ctx, catalog.PredefinedExercises())
		if err != nil {
			return nil, fmt.Errorf("seed exercises: %w", err)
		}
		if inserted > 0 {
			log.Infof("seeded exercise catalog with %d exercises", inserted)
		}
	}

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		redisClient: rdb,
		catalogRepo: catalog.NewCachedRepo(exercisesRepo, params.Config.CatalogCacheSize, metricsManager),
		versionInfo: params.VersionInfo,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	rootHandler := func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteJSON(w, map[string]string{"message": "Workout Tracker API"}, http.StatusOK)
	}
	r.HandleFunc("/", rootHandler).Methods("GET", "OPTIONS").Name("root")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/", rootHandler).Methods("GET", "OPTIONS").Name("api-root")

	catalogHandler := catalog.NewHandler(s.catalogRepo)
	api.HandleFunc("/muscle-groups", catalogHandler.HandleMuscleGroups).Methods("GET", "OPTIONS").Name("list-muscle-groups")
	api.HandleFunc("/templates", catalogHandler.HandleTemplates).Methods("GET", "OPTIONS").Name("list-templates")

	// fixed paths before /exercises/{id}
	orderingHandler := ordering.NewHandler(ordering.NewRepo(s.redisClient), s.catalogRepo)
	api.HandleFunc("/exercises/order", orderingHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise-order")
	api.HandleFunc("/exercises/order", orderingHandler.HandlePut).Methods("PUT", "OPTIONS").Name("save-exercise-order")

	sessionsRepo := sessions.NewRepo(s.dbPool)
	sessionsHandler := sessions.NewHandler(sessionsRepo, s.metricsManager)
	api.HandleFunc("/exercises/history", sessionsHandler.HandleHistory).Methods("GET", "OPTIONS").Name("exercise-history")

	api.HandleFunc("/exercises", catalogHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	api.HandleFunc("/exercises", catalogHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	api.HandleFunc("/exercises/{id}", catalogHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")

	splitsRepo := splits.NewRepo(s.dbPool)
	splitsHandler := splits.NewHandler(splitsRepo, s.metricsManager)
	api.HandleFunc("/splits", splitsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-splits")
	api.HandleFunc("/splits", splitsHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-split")
	api.HandleFunc("/splits/{id}", splitsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-split")
	api.HandleFunc("/splits/{id}", splitsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-split")
	api.HandleFunc("/splits/{id}", splitsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-split")

	api.HandleFunc("/sessions", sessionsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-sessions")
	api.HandleFunc("/sessions", sessionsHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-session")
	api.HandleFunc("/sessions/{id}", sessionsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-session")
	api.HandleFunc("/sessions/{id}", sessionsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-session")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	progressRouter := api.PathPrefix("/sessions/{id}/exercises/{exercise_id}").Subrouter()
	progressRouter.Use(middleware.RateLimit(
		reqRateLimiter,
		s.metricsManager,
		"progress",
		s.config.ProgressRateLimitPerMinute,
	))
	progressRouter.HandleFunc("/complete", sessionsHandler.HandleCompleteExercise).Methods("PATCH", "OPTIONS").Name("complete-exercise")
	progressRouter.HandleFunc("/reset", sessionsHandler.HandleResetExercise).Methods("PATCH", "OPTIONS").Name("reset-exercise")

	mcpServer := gymmcp.NewServer(s.dbPool, s.catalogRepo, splitsRepo, sessionsRepo)
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return mcpServer
	}, nil)
	r.Handle("/mcp", mcpHandler).Name("mcp")

	// all the rest - unhandled paths
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.DrainAndCloseRequest(maxRequestBodyBytes))

	return r, nil
}

func (s *Server) Serve(host string, port int) {
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
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(host, strconv.Itoa(s.config.MetricsPort))
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

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

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
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
