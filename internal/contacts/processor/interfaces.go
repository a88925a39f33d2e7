package processor

import (
	"context"

	"loyalty-server/internal/store"
)

type ContactStore interface {
	GetAgentByID(ctx context.Context, agentID string) (store.Agent, error)
	RecordContact(ctx context.Context, params store.RecordContactParams) (store.RecordContactResult, error)
	ListContactHistory(ctx context.Context, agentID string, limit, offset int) ([]store.ContactHistory, error)
}

type EventPublisher interface {
	PublishContactRecorded(ctx context.Context, contact store.ContactHistory, queueType string, deactivated bool)
}
