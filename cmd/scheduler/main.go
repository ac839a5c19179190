package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	discovery "prospect_backend/internal/discovery/client"
	"prospect_backend/internal/events"
	"prospect_backend/internal/prospects"
	prospectservice "prospect_backend/internal/prospects/service"
	research "prospect_backend/internal/research/client"
	"prospect_backend/internal/scheduler"
	"prospect_backend/platform/config"
	"prospect_backend/platform/db"
	"prospect_backend/platform/logger"
	"prospect_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting scheduler", "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var pool *pgxpool.Pool
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

	eventBus := events.NewInMemoryBus(log)
	val := validator.New()

	// Rescans chain: a completed run schedules the next one.
	rescanClient, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize rescan scheduler client", "error", err)
		panic("failed to initialize rescan scheduler client: " + err.Error())
	}
	defer func() { _ = rescanClient.Close() }()

	finder := discovery.New(cfg, log)
	researcher := research.New(cfg, log)

	// Worker-side prospect pipeline wiring (no HTTP handlers required).
	prospectsModule, err := prospects.NewModule(pool, finder, researcher, rescanClient, eventBus, cfg, val, log)
	if err != nil {
		log.Error("failed to initialize prospects module", "error", err)
		panic("failed to initialize prospects module: " + err.Error())
	}
	prospectsModule.RegisterHandlers(eventBus)

	worker, err := scheduler.NewWorker(cfg, rescanSearcher{svc: prospectsModule.Service()}, log)
	if err != nil {
		log.Error("failed to initialize scheduler worker", "error", err)
		panic("failed to initialize scheduler worker: " + err.Error())
	}

	worker.Run(ctx)
}

// rescanSearcher adapts the prospects service to the worker's interface.
type rescanSearcher struct {
	svc *prospectservice.Service
}

func (r rescanSearcher) Rescan(ctx context.Context, company string) error {
	_, err := r.svc.Search(ctx, company)
	return err
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return errors.New(name + ": invalid retry attempts")
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
