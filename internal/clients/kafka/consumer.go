package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"loyalty-server/internal/observability"

	"github.com/segmentio/kafka-go"
)

// MessageHandler is a function that processes a Kafka message
type MessageHandler func(ctx context.Context, message kafka.Message) error

// Consumer handles consuming messages from a Kafka topic
type Consumer struct {
	reader  *kafka.Reader
	logger  *observability.Logger
	handler MessageHandler
}

// ConsumerConfig holds configuration for the Kafka consumer
type ConsumerConfig struct {
	Brokers []string
	Topic   string
	GroupID string
	MaxWait time.Duration // Max time to wait for new data (default 10s)
}

// NewConsumer creates a new Kafka consumer
func NewConsumer(config ConsumerConfig, handler MessageHandler, logger *observability.Logger) *Consumer {
	maxWait := config.MaxWait
	if maxWait == 0 {
		maxWait = 10 * time.Second
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        config.Brokers,
		Topic:          config.Topic,
		GroupID:        config.GroupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        maxWait,
		StartOffset:    kafka.LastOffset,
		CommitInterval: time.Second,
		SessionTimeout: 30 * time.Second,
	})

	return &Consumer{
		reader:  reader,
		logger:  logger,
		handler: handler,
	}
}

// Start consumes messages until ctx is cancelled. Handler failures are
// logged and the offset is still committed; no message is retried.
func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info(ctx, fmt.Sprintf("starting consumer for topic %s with group %s", c.reader.Config().Topic, c.reader.Config().GroupID))

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				c.logger.Info(ctx, "consumer stopped")
				return nil
			}
			c.logger.Error(ctx, "error fetching message", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(time.Second):
			}
			continue
		}

		if err := c.processMessage(ctx, msg); err != nil {
			c.logger.Error(ctx, fmt.Sprintf("error processing message from topic %s", msg.Topic), err)
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error(ctx, "failed to commit offset", err)
		}
	}
}

func (c *Consumer) processMessage(ctx context.Context, msg kafka.Message) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "topic", Value: msg.Topic},
		observability.Field{Key: "partition", Value: msg.Partition},
		observability.Field{Key: "offset", Value: msg.Offset},
		observability.Field{Key: "key", Value: string(msg.Key)},
	)

	start := time.Now()
	if err := c.handler(ctx, msg); err != nil {
		return fmt.Errorf("handler failed after %v: %w", time.Since(start), err)
	}
	return nil
}

// Close closes the consumer
func (c *Consumer) Close() error {
	return c.reader.Close()
}

// UnmarshalMessage unmarshals a Kafka message value into a struct
func UnmarshalMessage(msg kafka.Message, v interface{}) error {
	return json.Unmarshal(msg.Value, v)
}
