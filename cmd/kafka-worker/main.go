package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"loyalty-server/internal/bootstrap"
	"loyalty-server/internal/clients/kafka"
	"loyalty-server/internal/config"
	"loyalty-server/internal/jobs/consumer"
	"loyalty-server/internal/observability"
)

// The kafka worker consumes loyalty events and sends customers a Telegram
// notice for every accrual and redemption.
func main() {
	logger := observability.NewLogger().Named("kafka-worker")
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatal("KAFKA_BROKERS is not set")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}
	defer deps.Cleanup()

	eventConsumer := consumer.New(&deps.Store, deps.Notifications, logger)
	kafkaConsumer := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.ConsumerGroup,
	}, eventConsumer.Handle, logger)
	defer kafkaConsumer.Close()

	logger.Info(ctx, fmt.Sprintf(`kafka worker configuration:
  - Kafka brokers: %v
  - Kafka topic: %s
  - Consumer group: %s`,
		cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.ConsumerGroup))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info(ctx, "shutdown signal received")
		cancel()
	}()

	if err := kafkaConsumer.Start(ctx); err != nil {
		logger.Error(ctx, "consumer stopped with error", err)
	}
	logger.Info(ctx, "kafka worker exited")
}
