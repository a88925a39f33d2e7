package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"loyalty-server/internal/store"
)

type AgentStore interface {
	GetAgentByID(ctx context.Context, agentID string) (store.Agent, error)
	GetAgentByTelegramID(ctx context.Context, telegramID int64) (store.Agent, error)
	LinkAgentTelegram(ctx context.Context, agentID string, telegramID int64) error
	ListAgentQueueEntries(ctx context.Context, agentID string) ([]store.CallQueueEntry, error)
}
