package events

import (
	"context"
	"time"

	"loyalty-server/internal/clients/kafka"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
)

// Producer is the event sink the Publisher writes to
type Producer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher handles publishing loyalty domain events. A Publisher without a
// producer drops events, which is how publishing is disabled.
type Publisher struct {
	producer Producer
	logger   *observability.Logger
	now      func() time.Time
}

// NewPublisher creates a new event publisher. producer may be nil.
func NewPublisher(producer Producer, logger *observability.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		logger:   logger,
		now:      time.Now,
	}
}

func (p *Publisher) publish(ctx context.Context, eventType, agentID string, data map[string]interface{}) {
	if p == nil || p.producer == nil {
		return
	}
	event := kafka.EventMessage{
		ID:        uuid.New().String(),
		Type:      eventType,
		AgentID:   agentID,
		Data:      data,
		Timestamp: p.now().UTC().Format(time.RFC3339),
	}
	if err := p.producer.PublishEvent(ctx, event); err != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "event_type", Value: eventType})
		p.logger.WarnWithError(ctx, "failed to publish event", err)
	}
}

// PublishBonusTransaction publishes a bonus.transaction.recorded event
func (p *Publisher) PublishBonusTransaction(ctx context.Context, tx store.BonusTransaction, balance int64) {
	data := map[string]interface{}{
		"transaction_id": tx.ID,
		"type":           tx.Type,
		"amount":         tx.Amount,
		"balance":        balance,
		"description":    tx.Description,
	}
	if tx.RelatedDemandID != nil {
		data["related_demand_id"] = *tx.RelatedDemandID
	}
	p.publish(ctx, kafka.EventBonusTransactionRecorded, tx.AgentID, data)
}

// PublishContactRecorded publishes a contact.recorded event
func (p *Publisher) PublishContactRecorded(ctx context.Context, contact store.ContactHistory, queueType string, deactivated bool) {
	p.publish(ctx, kafka.EventContactRecorded, contact.AgentID, map[string]interface{}{
		"contact_id":   contact.ID,
		"queue_id":     contact.QueueID,
		"queue_type":   queueType,
		"contact_type": contact.ContactType,
		"result":       contact.Result,
		"deactivated":  deactivated,
	})
}

// PublishQueueReclassified publishes a queue.reclassified event
func (p *Publisher) PublishQueueReclassified(ctx context.Context, queueType string, result store.QueueApplyResult) {
	p.publish(ctx, kafka.EventQueueReclassified, "", map[string]interface{}{
		"queue_type":  queueType,
		"activated":   result.Activated,
		"updated":     result.Updated,
		"unchanged":   result.Unchanged,
		"deactivated": result.Deactivated,
	})
}
