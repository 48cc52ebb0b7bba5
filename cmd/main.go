// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Shivanand-hulikatti/party-events/internal/config"
	"github.com/Shivanand-hulikatti/party-events/internal/database"
	"github.com/Shivanand-hulikatti/party-events/internal/handler"
	"github.com/Shivanand-hulikatti/party-events/internal/logger"
	"github.com/Shivanand-hulikatti/party-events/internal/metrics"
	"github.com/Shivanand-hulikatti/party-events/internal/repository"
	"github.com/Shivanand-hulikatti/party-events/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("load config")
	}
	log := logger.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── 1. Connect to PostgreSQL ──────────────────────────────────────────
	pool, err := database.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("database")
	}
	defer pool.Close()
	log.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.Name).Msg("connected to postgres")

	// ── 2. Wire up layers ────────────────────────────────────────────────
	partySvc := service.NewPartyService(repository.NewPartyRepository(pool))
	eventSvc := service.NewEventService(repository.NewEventRepository(pool))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// ── 3. Build the router ───────────────────────────────────────────────
	router := handler.NewRouter(handler.RouterConfig{
		Parties:    handler.NewPartyHandler(partySvc, log),
		Events:     handler.NewEventHandler(eventSvc, log),
		Log:        log,
		Metrics:    metrics.New(reg),
		Gatherer:   reg,
		CORSOrigin: cfg.Server.CORSOrigin,
	})

	// ── 4. Start server with graceful shutdown ────────────────────────────
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	log.Info().Msg("server stopped")
}
