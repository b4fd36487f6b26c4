package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mkovacev/fitindex/internal/config"
	"github.com/mkovacev/fitindex/internal/db"
	"github.com/mkovacev/fitindex/internal/fitindex"
	"github.com/mkovacev/fitindex/internal/fitindex/history"
	"github.com/mkovacev/fitindex/internal/fitindex/workouts"
	"github.com/mkovacev/fitindex/internal/logging"
	"github.com/mkovacev/fitindex/internal/telemetry/metrics"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "fitindex-service",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	redisPassword := os.Getenv("FITINDEX_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use FITINDEX_REDIS_PASS env var to set it")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.DBHost,
		DBPort:         cfg.DBPort,
		DBName:         cfg.DBName,
		DBUser:         cfg.DBUser,
		DBPassword:     os.Getenv("FITINDEX_DB_PASS"),
		TracingEnabled: cfg.TracingEnabled,
	})
	if err != nil {
		log.Fatalf("create db pool: %s", err)
	}
	defer dbPool.Close()

	redisClient := history.NewRedisClient(
		cfg.RedisHost, cfg.RedisPort,
		redisPassword, cfg.TracingEnabled,
	)
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Errorf("close redis client: %s", err)
		}
	}()

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.DBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fitindex", "engine", promRegistry)

	workoutsRepo := workouts.NewRepo(dbPool, metricsManager)
	historyStore := history.NewRedisStore(redisClient)

	engine := fitindex.NewEngine(workoutsRepo, historyStore, metricsManager)
	if cfg.HistoryRetentionDays > 0 {
		engine.RetentionDays = cfg.HistoryRetentionDays
	}

	refreshInterval := time.Duration(cfg.RefreshIntervalMinutes) * time.Minute
	if refreshInterval <= 0 {
		refreshInterval = time.Hour
	}
	refresher := fitindex.NewRefresher(engine, workoutsRepo, refreshInterval)
	go refresher.Run(ctx)

	router := http.NewServeMux()
	router.Handle("/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	go func() {
		log.Infof("metrics and health listener on port %d", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %s", err)
		}
	}()

	receivedSig := <-chOsInterrupt
	log.Warnf("interrupt signal [%s] received, shutting down ...", receivedSig)

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("http server shutdown: %s", err)
	}

	log.Infoln("server stopped")
}
