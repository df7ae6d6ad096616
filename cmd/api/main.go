package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"majestyxpress_backend/internal/audit"
	"majestyxpress_backend/internal/events"
	"majestyxpress_backend/internal/gazetteer"
	"majestyxpress_backend/internal/geocoding"
	apphttp "majestyxpress_backend/internal/http"
	"majestyxpress_backend/internal/http/router"
	"majestyxpress_backend/internal/quotes"
	"majestyxpress_backend/internal/routing"
	"majestyxpress_backend/internal/tariff"
	"majestyxpress_backend/platform/config"
	"majestyxpress_backend/platform/db"
	"majestyxpress_backend/platform/logger"
	"majestyxpress_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	// The database is optional. Without it the tariff store runs on
	// environment defaults and readiness has no dependency to check.
	var pool *pgxpool.Pool
	if cfg.IsDatabaseEnabled() {
		if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
			p, err := db.NewPool(ctx, cfg)
			if err != nil {
				return err
			}
			pool = p
			return nil
		}); err != nil {
			log.Error("failed to connect to database", "error", err)
			panic("failed to connect to database: " + err.Error())
		}
		defer pool.Close()
		log.Info("database connection established")
	} else {
		log.Info("running without database: DATABASE_URL not configured")
	}

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Shared validator instance for dependency injection
	val := validator.New()

	gaz, err := gazetteer.Load()
	if err != nil {
		log.Error("failed to load location gazetteer", "error", err)
		panic("failed to load location gazetteer: " + err.Error())
	}
	log.Info("location gazetteer loaded", "entries", gaz.Len())

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	// Audit module subscribes to domain events (not HTTP-facing)
	auditModule := audit.NewModule(log)
	auditModule.RegisterHandlers(eventBus)

	geocodingModule, err := geocoding.NewModule(cfg, gaz, eventBus, log)
	if err != nil {
		log.Error("failed to initialize geocoding module", "error", err)
		panic("failed to initialize geocoding module: " + err.Error())
	}

	tariffModule := tariff.NewModule(pool, cfg, log)
	if pool != nil {
		if err := withRetry(ctx, log, "tariff schema", 5, 2*time.Second, func() error {
			return tariffModule.EnsureSchema(ctx)
		}); err != nil {
			log.Error("failed to ensure tariff schema", "error", err)
			panic("failed to ensure tariff schema: " + err.Error())
		}
	}

	routingModule, err := routing.NewModule(cfg, geocodingModule.Resolver(), tariffModule.Store(), log)
	if err != nil {
		log.Error("failed to initialize routing module", "error", err)
		panic("failed to initialize routing module: " + err.Error())
	}

	quotesModule := quotes.NewModule(routingModule.Estimator(), tariffModule.Store(), eventBus, val, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	var health apphttp.HealthChecker
	if pool != nil {
		health = db.NewPoolAdapter(pool)
	}

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   health,
		EventBus: eventBus,
		Modules: []apphttp.Module{
			geocodingModule,
			routingModule,
			quotesModule,
			tariffModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
