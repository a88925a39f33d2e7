package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"loyalty-server/internal/observability"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Producer handles producing messages to Kafka topics
type Producer struct {
	writer *kafka.Writer
	logger *observability.Logger
}

// ProducerConfig holds configuration for the Kafka producer
type ProducerConfig struct {
	Brokers []string
	Topic   string
	// BatchSize is the max number of messages to batch together
	BatchSize int
	// BatchTimeout is the max time to wait before sending a batch
	BatchTimeout time.Duration
}

// NewProducer creates a new Kafka producer
func NewProducer(config ProducerConfig, logger *observability.Logger) *Producer {
	batchSize := config.BatchSize
	if batchSize == 0 {
		batchSize = 100
	}

	batchTimeout := config.BatchTimeout
	if batchTimeout == 0 {
		batchTimeout = 10 * time.Millisecond
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(config.Brokers...),
		Topic:        config.Topic,
		Balancer:     &kafka.Hash{}, // keeps all events of one agent on one partition
		BatchSize:    batchSize,
		BatchTimeout: batchTimeout,
		RequiredAcks: kafka.RequireAll,
	}

	return &Producer{
		writer: writer,
		logger: logger,
	}
}

// Message represents a Kafka message
type Message struct {
	Key       string            // Used for partitioning
	Value     interface{}       // Will be JSON encoded
	Headers   map[string]string // Message headers
	Timestamp time.Time         // Message timestamp
}

// ProduceMessage sends a message to the configured topic
func (p *Producer) ProduceMessage(ctx context.Context, msg Message) error {
	kafkaMsg, err := buildMessage(msg)
	if err != nil {
		p.logger.Error(ctx, "failed to marshal message value", err)
		return err
	}

	if err := p.writer.WriteMessages(ctx, kafkaMsg); err != nil {
		p.logger.Error(ctx, fmt.Sprintf("failed to write message to topic %s", p.writer.Topic), err)
		return fmt.Errorf("failed to write message to topic %s: %w", p.writer.Topic, err)
	}

	p.logger.Debug(ctx, fmt.Sprintf("produced message to topic %s with key %s", p.writer.Topic, msg.Key))
	return nil
}

func buildMessage(msg Message) (kafka.Message, error) {
	valueBytes, err := json.Marshal(msg.Value)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal message value: %w", err)
	}

	headers := make([]kafka.Header, 0, len(msg.Headers)+3)
	for k, v := range msg.Headers {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}
	headers = append(headers,
		kafka.Header{Key: "message_id", Value: []byte(uuid.New().String())},
		kafka.Header{Key: "produced_at", Value: []byte(time.Now().UTC().Format(time.RFC3339))},
		kafka.Header{Key: "producer", Value: []byte("loyalty-server")},
	)

	kafkaMsg := kafka.Message{
		Key:     []byte(msg.Key),
		Value:   valueBytes,
		Headers: headers,
		Time:    msg.Timestamp,
	}
	if kafkaMsg.Time.IsZero() {
		kafkaMsg.Time = time.Now()
	}
	return kafkaMsg, nil
}

// PublishEvent produces an event keyed by its agent so per-agent order holds
func (p *Producer) PublishEvent(ctx context.Context, event EventMessage) error {
	key := event.AgentID
	if key == "" {
		key = event.Type
	}
	return p.ProduceMessage(ctx, Message{
		Key:     key,
		Value:   event,
		Headers: map[string]string{"event_type": event.Type},
	})
}

// Close closes the producer
func (p *Producer) Close() error {
	return p.writer.Close()
}
