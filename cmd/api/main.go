// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/angelamos/precinct/internal/admin"
	"github.com/angelamos/precinct/internal/auth"
	"github.com/angelamos/precinct/internal/cases"
	"github.com/angelamos/precinct/internal/config"
	"github.com/angelamos/precinct/internal/core"
	"github.com/angelamos/precinct/internal/health"
	"github.com/angelamos/precinct/internal/middleware"
	"github.com/angelamos/precinct/internal/ob"
	"github.com/angelamos/precinct/internal/plates"
	"github.com/angelamos/precinct/internal/server"
	"github.com/angelamos/precinct/internal/session"
	"github.com/angelamos/precinct/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	// Redis is optional: without it sessions and rate limit counters live in
	// process memory and die with the process, same as the record store.
	var rdb *core.Redis
	if cfg.Redis.URL != "" {
		rdb, err = core.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		logger.Info("redis connected",
			"pool_size", cfg.Redis.PoolSize,
		)
	}

	var sessions session.Store
	if rdb != nil {
		sessions = session.NewRedisStore(rdb.Client, cfg.Session.TTL)
	} else {
		sessions = session.NewMemoryStore(cfg.Session.TTL)
	}

	userRepo := user.NewMemoryRepository()
	caseRepo := cases.NewMemoryRepository()
	obRepo := ob.NewMemoryRepository()
	plateRepo := plates.NewMemoryRepository()
	tokenRepo := auth.NewMemoryTokenRepository()

	userSvc := user.NewService(userRepo)
	if err := userSvc.EnsureDefaultAdmin(ctx); err != nil {
		return err
	}
	logger.Info("default admin ensured")

	authSvc := auth.NewService(userSvc, sessions, tokenRepo)
	caseSvc := cases.NewService(caseRepo)
	obSvc := ob.NewService(obRepo)
	plateSvc := plates.NewService(plateRepo)

	userHandler := user.NewHandler(userSvc)
	authHandler := auth.NewHandler(authSvc, cfg)
	caseHandler := cases.NewHandler(caseSvc)
	obHandler := ob.NewHandler(obSvc)
	plateHandler := plates.NewHandler(plateSvc)

	var redisChecker health.Checker
	if rdb != nil {
		redisChecker = rdb
	}
	healthHandler := health.NewHandler(redisChecker)

	adminCfg := admin.HandlerConfig{
		Users:     userRepo,
		Cases:     caseRepo,
		OBEntries: obRepo,
		Plates:    plateRepo,
		Sessions:  sessions,
	}
	if rdb != nil {
		adminCfg.RedisStats = rdb.PoolStats
		adminCfg.RedisPing = rdb.Ping
	}
	adminHandler := admin.NewHandler(adminCfg)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	var redisClient *redis.Client
	if rdb != nil {
		redisClient = rdb.Client
	}
	loginLimiter := middleware.NewRateLimiter(
		redisClient,
		middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		},
	).Handler

	authenticator := middleware.SessionAuthenticator(
		sessions,
		cfg.Session.CookieName,
	)
	adminOnly := middleware.RequireAdmin(userSvc)

	router.Route("/api", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authenticator, adminOnly, loginLimiter)
		userHandler.RegisterRoutes(r, authenticator, adminOnly)
		caseHandler.RegisterRoutes(r, authenticator)
		obHandler.RegisterRoutes(r, authenticator)
		plateHandler.RegisterRoutes(r, authenticator)
		adminHandler.RegisterRoutes(r, authenticator, adminOnly)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.Error("redis close error", "error", err)
		}
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
