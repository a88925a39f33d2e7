package processor

import (
	"context"
	"errors"
	"strconv"

	"loyalty-server/internal/domain"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"
)

type AgentProcessor struct {
	store  AgentStore
	logger *observability.Logger
}

func New(store AgentStore, logger *observability.Logger) AgentProcessor {
	return AgentProcessor{store: store, logger: logger}
}

// Profile is an agent together with its active call queue entries
type Profile struct {
	store.Agent
	Queues []store.CallQueueEntry `json:"queues"`
}

func (p *AgentProcessor) GetProfile(ctx context.Context, agentID string) (Profile, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "get_agent_profile"},
		observability.Field{Key: "agent_id", Value: agentID},
	)

	agent, err := p.store.GetAgentByID(ctx, agentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Profile{}, &domain.NotFoundError{Resource: "agent", ID: agentID}
		}
		p.logger.Error(ctx, "failed to get agent", err)
		return Profile{}, err
	}

	entries, err := p.store.ListAgentQueueEntries(ctx, agentID)
	if err != nil {
		p.logger.Error(ctx, "failed to list queue entries", err)
		return Profile{}, err
	}
	active := make([]store.CallQueueEntry, 0, len(entries))
	for _, e := range entries {
		if e.IsActive {
			active = append(active, e)
		}
	}
	return Profile{Agent: agent, Queues: active}, nil
}

// LinkTelegram binds a Telegram user to an agent. A Telegram user can be
// linked to one agent only.
func (p *AgentProcessor) LinkTelegram(ctx context.Context, agentID string, telegramID int64) (store.Agent, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "link_telegram"},
		observability.Field{Key: "agent_id", Value: agentID},
		observability.Field{Key: "telegram_id", Value: telegramID},
	)

	if telegramID <= 0 {
		return store.Agent{}, domain.NewValidationError("telegram_id", "must be positive")
	}

	if err := p.store.LinkAgentTelegram(ctx, agentID, telegramID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Agent{}, &domain.NotFoundError{Resource: "agent", ID: agentID}
		}
		if !errors.Is(err, store.ErrDuplicate) {
			p.logger.Error(ctx, "failed to link telegram", err)
		}
		return store.Agent{}, err
	}

	p.logger.Info(ctx, "telegram account linked")
	agent, err := p.store.GetAgentByID(ctx, agentID)
	if err != nil {
		p.logger.Error(ctx, "failed to reload agent", err)
		return store.Agent{}, err
	}
	return agent, nil
}

// ResolveTelegram returns the agent linked to a Telegram user
func (p *AgentProcessor) ResolveTelegram(ctx context.Context, telegramID int64) (store.Agent, error) {
	agent, err := p.store.GetAgentByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Agent{}, &domain.NotFoundError{Resource: "telegram_link", ID: strconv.FormatInt(telegramID, 10)}
		}
		p.logger.Error(observability.WithFields(ctx,
			observability.Field{Key: "telegram_id", Value: telegramID},
		), "failed to resolve telegram user", err)
		return store.Agent{}, err
	}
	return agent, nil
}
