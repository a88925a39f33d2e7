package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"loyalty-server/internal/clients/kafka"
	"loyalty-server/internal/notifications/processor"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"

	kafkago "github.com/segmentio/kafka-go"
)

// EventConsumer turns loyalty events into customer notices
type EventConsumer struct {
	agents   AgentReader
	notifier Deliverer
	logger   *observability.Logger
}

func New(agents AgentReader, notifier Deliverer, logger *observability.Logger) *EventConsumer {
	return &EventConsumer{
		agents:   agents,
		notifier: notifier,
		logger:   logger,
	}
}

// bonusEvent is the data of a bonus.transaction.recorded event. JSON numbers
// decode as float64 in the generic envelope so they are re-decoded here.
type bonusEvent struct {
	Type    string `json:"type"`
	Amount  int64  `json:"amount"`
	Balance int64  `json:"balance"`
}

// Handle processes one message. Unknown event types are ignored.
func (c *EventConsumer) Handle(ctx context.Context, msg kafkago.Message) error {
	var event kafka.EventMessage
	if err := kafka.UnmarshalMessage(msg, &event); err != nil {
		return fmt.Errorf("failed to decode event: %w", err)
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_id", Value: event.ID},
		observability.Field{Key: "event_type", Value: event.Type},
		observability.Field{Key: "agent_id", Value: event.AgentID},
	)

	switch event.Type {
	case kafka.EventBonusTransactionRecorded:
		return c.handleBonusTransaction(ctx, event)
	default:
		c.logger.Debug(ctx, "event ignored")
		return nil
	}
}

func (c *EventConsumer) handleBonusTransaction(ctx context.Context, event kafka.EventMessage) error {
	raw, err := json.Marshal(event.Data)
	if err != nil {
		return fmt.Errorf("failed to re-encode event data: %w", err)
	}
	var data bonusEvent
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to decode bonus event: %w", err)
	}

	message := bonusNotice(data)
	if message == "" {
		return nil
	}

	agent, err := c.agents.GetAgentByID(ctx, event.AgentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.logger.Warn(ctx, "bonus event for unknown agent")
			return nil
		}
		return fmt.Errorf("failed to load agent: %w", err)
	}
	if agent.TelegramID == nil {
		return nil
	}

	res := c.notifier.Deliver(ctx, processor.Recipient{
		AgentID:    agent.AgentID,
		Name:       agent.Name,
		Phone:      agent.Phone,
		TelegramID: agent.TelegramID,
	}, message, []string{processor.ChannelTelegram})

	if r := res.Channels[processor.ChannelTelegram]; r.Outcome == processor.OutcomeError {
		return fmt.Errorf("telegram notice failed: %s", r.Error)
	}
	return nil
}

func bonusNotice(e bonusEvent) string {
	switch e.Type {
	case store.TransactionTypeAccrual:
		return fmt.Sprintf("You earned %d bonus points. Balance: %d.", e.Amount, e.Balance)
	case store.TransactionTypeRedemption:
		return fmt.Sprintf("%d bonus points were redeemed. Balance: %d.", e.Amount, e.Balance)
	default:
		return ""
	}
}
