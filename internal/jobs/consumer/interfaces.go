package consumer

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=consumer

import (
	"context"

	"loyalty-server/internal/notifications/processor"
	"loyalty-server/internal/store"
)

type AgentReader interface {
	GetAgentByID(ctx context.Context, agentID string) (store.Agent, error)
}

type Deliverer interface {
	Deliver(ctx context.Context, r processor.Recipient, message string, channels []string) processor.CustomerResult
}
