package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"supplychain-assistant/internal/api"
	processquery "supplychain-assistant/internal/assistant/process-query"
	"supplychain-assistant/internal/common/camunda"
	"supplychain-assistant/internal/common/config"
	"supplychain-assistant/internal/common/database"
	"supplychain-assistant/internal/common/logger"
	"supplychain-assistant/internal/common/observability"
	"supplychain-assistant/internal/fixtures"
	"supplychain-assistant/internal/session"
	"supplychain-assistant/pkg/registry"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(ctx context.Context, operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("info", "console")
		boot.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.NewWithOutput(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting supplychain assistant...",
		zap.String("environment", cfg.App.Environment),
		zap.String("sessionBackend", cfg.Session.Backend),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	// --- Session store ---
	var rdb *database.RedisClient
	var ready func(context.Context) error
	if cfg.Session.Backend == config.SessionBackendRedis {
		err = retryWithBackoff(ctx, func() error {
			var err error
			rdb, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return rdb.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer rdb.Close()
		ready = rdb.Ping
		zapLog.Info("Redis connected successfully")
	}

	var store session.Store
	if rdb != nil {
		store, err = session.New(cfg.Session, rdb.GetClient())
	} else {
		store, err = session.New(cfg.Session, nil)
	}
	if err != nil {
		zapLog.Fatal("session store init failed", zap.Error(err))
	}

	// --- Query engine ---
	reg := registry.Default()
	if err := reg.Validate(); err != nil {
		zapLog.Fatal("capability registry invalid", zap.Error(err))
	}
	anchor := time.Now().UTC().Truncate(time.Minute)
	processor := processquery.NewFromStore(cfg, fixtures.NewStore(anchor), reg, obs, log)

	// --- Zeebe worker (optional) ---
	if cfg.Camunda.Enabled {
		zeebe, err := camunda.Connect(ctx, camunda.ConfigFrom(cfg.Camunda))
		if err != nil {
			zapLog.Fatal("zeebe client failed", zap.Error(err))
		}
		defer zeebe.Close()

		handler := processquery.NewHandler(processquery.LoadConfig(cfg), processor, log)
		w := camunda.NewWorker(zeebe.GetClient(), processquery.TaskType, config.GetWorkerConfig(cfg, processquery.TaskType), handler, log)
		if w.Start() {
			defer w.Stop()
		}
	}

	// --- HTTP API ---
	srv := &http.Server{
		Addr: cfg.Server.Address,
		Handler: api.NewServer(api.Options{
			Processor: processor,
			Store:     store,
			Registry:  reg,
			Logger:    log,
			Latency:   config.GetDuration(cfg.Server.SimulatedLatency),
			Ready:     ready,
		}).Handler(),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zapLog.Info("HTTP server listening", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		zapLog.Info("Shutdown signal received, draining requests...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zapLog.Error("server stopped with error", zap.Error(err))
	}
	zapLog.Info("Supplychain assistant stopped")
}
