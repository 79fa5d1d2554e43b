package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/site-marker-service/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/site-marker-service/internal/adapter/kafka"
	"github.com/couchcryptid/site-marker-service/internal/config"
	"github.com/couchcryptid/site-marker-service/internal/observability"
	"github.com/couchcryptid/site-marker-service/internal/pipeline"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

// alwaysReady serves /readyz when the Kafka pipeline is disabled and only the
// HTTP resolver runs.
type alwaysReady struct{}

func (alwaysReady) CheckReadiness(context.Context) error { return nil }

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		reader *kafkaadapter.Reader
		writer *kafkaadapter.Writer
		p      *pipeline.Pipeline
	)
	if cfg.PipelineEnabled {
		reader = kafkaadapter.NewReader(cfg, logger)
		writer = kafkaadapter.NewWriter(cfg, logger)
		transformer := pipeline.NewTransformer(logger, metrics)
		p = pipeline.New(reader, transformer, writer, logger, metrics, cfg.BatchSize)
	} else {
		logger.Info("kafka pipeline disabled, serving http resolver only")
	}

	var ready sharedobs.ReadinessChecker = alwaysReady{}
	if p != nil {
		ready = p
	}
	srv := httpadapter.NewServer(cfg.HTTPAddr, ready, cfg.MaxRequestSites, metrics, logger)

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start marker pipeline.
	if p != nil {
		go func() {
			if err := p.Run(ctx); err != nil {
				logger.Error("pipeline error", "error", err)
			}
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if reader != nil {
		if err := reader.Close(); err != nil {
			logger.Error("kafka reader close error", "error", err)
		}
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
