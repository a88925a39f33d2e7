package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"loyalty-server/internal/domain"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	ChannelTelegram = "telegram"
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"

	OutcomeSent     = "sent"
	OutcomeNoTarget = "no_target"
	OutcomeError    = "error"

	broadcastPageSize = 100
)

var Channels = []string{ChannelTelegram, ChannelSMS, ChannelWhatsApp}

type Config struct {
	Concurrency   int
	RatePerSecond float64
	Burst         int
}

type NotificationProcessor struct {
	store       NotificationStore
	telegram    TelegramSender
	phone       PhoneSender
	limiter     *rate.Limiter
	concurrency int
	metrics     *observability.Metrics
	logger      *observability.Logger
}

func New(store NotificationStore, telegram TelegramSender, phone PhoneSender, cfg Config, metrics *observability.Metrics, logger *observability.Logger) NotificationProcessor {
	concurrency := max(cfg.Concurrency, 1)
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	return NotificationProcessor{
		store:       store,
		telegram:    telegram,
		phone:       phone,
		limiter:     rate.NewLimiter(limit, max(cfg.Burst, 1)),
		concurrency: concurrency,
		metrics:     metrics,
		logger:      logger,
	}
}

// Recipient is the addressable part of a customer
type Recipient struct {
	AgentID    string
	Name       string
	Phone      *string
	TelegramID *int64
}

func recipientFromAgent(a store.Agent) Recipient {
	return Recipient{AgentID: a.AgentID, Name: a.Name, Phone: a.Phone, TelegramID: a.TelegramID}
}

type ChannelResult struct {
	Outcome   string `json:"outcome"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

type CustomerResult struct {
	AgentID  string                   `json:"agent_id"`
	Channels map[string]ChannelResult `json:"channels"`
}

type SendRequest struct {
	AgentID  string
	Message  string
	Channels []string
}

// SendToCustomer delivers message to one customer on each requested channel.
// Channel failures are reported per channel, never as an error.
func (p *NotificationProcessor) SendToCustomer(ctx context.Context, req SendRequest) (CustomerResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "send_to_customer"},
		observability.Field{Key: "agent_id", Value: req.AgentID},
	)

	channels, err := validateMessage(req.Message, req.Channels)
	if err != nil {
		return CustomerResult{}, err
	}
	if req.AgentID == "" {
		return CustomerResult{}, domain.NewValidationError("agent_id", "is required")
	}

	agent, err := p.store.GetAgentByID(ctx, req.AgentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CustomerResult{}, &domain.NotFoundError{Resource: "agent", ID: req.AgentID}
		}
		p.logger.Error(ctx, "failed to get agent", err)
		return CustomerResult{}, err
	}

	return p.Deliver(ctx, recipientFromAgent(agent), req.Message, channels), nil
}

// Deliver sends message to an already loaded recipient. Channels must be
// validated by the caller.
func (p *NotificationProcessor) Deliver(ctx context.Context, r Recipient, message string, channels []string) CustomerResult {
	result := CustomerResult{AgentID: r.AgentID, Channels: make(map[string]ChannelResult, len(channels))}
	for _, channel := range channels {
		res := p.sendChannel(ctx, r, channel, message)
		result.Channels[channel] = res
		p.metrics.RecordNotification(channel, res.Outcome)
	}
	return result
}

func (p *NotificationProcessor) sendChannel(ctx context.Context, r Recipient, channel, message string) (res ChannelResult) {
	defer func() {
		if rec := recover(); rec != nil {
			p.logger.Error(observability.WithFields(ctx,
				observability.Field{Key: "channel", Value: channel},
				observability.Field{Key: "agent_id", Value: r.AgentID},
			), "notification transport panicked", fmt.Errorf("panic: %v", rec))
			res = ChannelResult{Outcome: OutcomeError, Error: fmt.Sprintf("transport panic: %v", rec)}
		}
	}()

	send, ok := p.target(r, channel)
	if !ok {
		return ChannelResult{Outcome: OutcomeNoTarget}
	}
	if err := p.limiter.Wait(ctx); err != nil {
		return ChannelResult{Outcome: OutcomeError, Error: err.Error()}
	}

	id, err := send(ctx, message)
	if err != nil {
		p.logger.WarnWithError(observability.WithFields(ctx,
			observability.Field{Key: "channel", Value: channel},
			observability.Field{Key: "agent_id", Value: r.AgentID},
		), "notification failed", err)
		return ChannelResult{Outcome: OutcomeError, Error: err.Error()}
	}
	return ChannelResult{Outcome: OutcomeSent, MessageID: id}
}

// target resolves the transport call for channel, false when the customer
// has no address on it
func (p *NotificationProcessor) target(r Recipient, channel string) (func(context.Context, string) (string, error), bool) {
	switch channel {
	case ChannelTelegram:
		if r.TelegramID == nil || *r.TelegramID == 0 || p.telegram == nil {
			return nil, false
		}
		chatID := *r.TelegramID
		return func(ctx context.Context, text string) (string, error) {
			return p.telegram.SendMessage(ctx, chatID, text)
		}, true
	case ChannelSMS, ChannelWhatsApp:
		if r.Phone == nil || *r.Phone == "" || p.phone == nil {
			return nil, false
		}
		phone := *r.Phone
		if channel == ChannelSMS {
			return func(ctx context.Context, text string) (string, error) {
				return p.phone.SendSMS(ctx, phone, text)
			}, true
		}
		return func(ctx context.Context, text string) (string, error) {
			return p.phone.SendWhatsApp(ctx, phone, text)
		}, true
	}
	return nil, false
}

type BroadcastRequest struct {
	QueueType string
	Message   string
	Channels  []string
}

// BroadcastResult aggregates per-channel outcomes over every customer
type BroadcastResult struct {
	QueueType string           `json:"queue_type"`
	Customers int              `json:"customers"`
	Sent      int              `json:"sent"`
	Errors    int              `json:"errors"`
	NoTarget  int              `json:"no_target"`
	Results   []CustomerResult `json:"results"`
}

// BroadcastToQueue sends message to every active customer of a queue in
// call order. Individual failures are counted and never stop the run.
func (p *NotificationProcessor) BroadcastToQueue(ctx context.Context, req BroadcastRequest) (BroadcastResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "broadcast_to_queue"},
		observability.Field{Key: "queue_type", Value: req.QueueType},
	)

	channels, err := validateMessage(req.Message, req.Channels)
	if err != nil {
		return BroadcastResult{}, err
	}
	if !slices.Contains(store.QueueTypes, req.QueueType) {
		return BroadcastResult{}, domain.NewValidationError("queue_type", "unknown queue type")
	}

	result := BroadcastResult{QueueType: req.QueueType, Results: []CustomerResult{}}
	for offset := 0; ; offset += broadcastPageSize {
		items, total, err := p.store.ListActiveQueue(ctx, req.QueueType, broadcastPageSize, offset)
		if err != nil {
			p.logger.Error(ctx, "failed to list queue for broadcast", err)
			return result, err
		}

		pageResults := make([]CustomerResult, len(items))
		g := errgroup.Group{}
		g.SetLimit(p.concurrency)
		for i, item := range items {
			r := Recipient{AgentID: item.AgentID, Name: item.Name, Phone: item.Phone, TelegramID: item.TelegramID}
			g.Go(func() error {
				pageResults[i] = p.Deliver(ctx, r, req.Message, channels)
				return nil
			})
		}
		_ = g.Wait()

		result.Results = append(result.Results, pageResults...)
		if len(items) < broadcastPageSize || offset+len(items) >= total {
			break
		}
	}

	for _, cr := range result.Results {
		for _, ch := range cr.Channels {
			switch ch.Outcome {
			case OutcomeSent:
				result.Sent++
			case OutcomeNoTarget:
				result.NoTarget++
			case OutcomeError:
				result.Errors++
			}
		}
	}
	result.Customers = len(result.Results)

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "customers", Value: result.Customers},
		observability.Field{Key: "sent", Value: result.Sent},
		observability.Field{Key: "errors", Value: result.Errors},
		observability.Field{Key: "no_target", Value: result.NoTarget},
	), "broadcast finished")
	return result, nil
}

// validateMessage checks the message and returns the channels deduplicated
// in request order
func validateMessage(message string, channels []string) ([]string, error) {
	if message == "" {
		return nil, domain.NewValidationError("message", "is required")
	}
	if len(channels) == 0 {
		return nil, domain.NewValidationError("channels", "at least one channel is required")
	}
	out := make([]string, 0, len(channels))
	for _, ch := range channels {
		if !slices.Contains(Channels, ch) {
			return nil, domain.NewValidationError("channels", fmt.Sprintf("unknown channel %q", ch))
		}
		if !slices.Contains(out, ch) {
			out = append(out, ch)
		}
	}
	return out, nil
}
