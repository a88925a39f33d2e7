package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"loyalty-server/internal/bootstrap"
	"loyalty-server/internal/config"
	"loyalty-server/internal/jobs/scheduler"
	"loyalty-server/internal/observability"
)

// The worker runs ERP sync, RFM segmentation and call queue reclassification
// on their configured intervals.
func main() {
	logger := observability.NewLogger().Named("worker")
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info(ctx, "starting scheduled job worker...")

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}
	defer deps.Cleanup()

	s := scheduler.New(deps.Metrics, logger)
	s.Register(scheduler.NewERPSyncJob(deps.ERPSync, cfg.Jobs.ERPSyncInterval))
	s.Register(scheduler.NewSegmentsJob(deps.Segments, cfg.Jobs.SegmentsInterval))
	s.Register(scheduler.NewReclassifyJob(deps.Queues, cfg.Jobs.ReclassifyInterval))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info(ctx, "shutdown signal received")
		cancel()
	}()

	if err := s.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error(ctx, "scheduler stopped with error", err)
	}
	logger.Info(ctx, "worker exited")
}
