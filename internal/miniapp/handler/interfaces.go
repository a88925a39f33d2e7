package handler

import (
	"context"

	"loyalty-server/internal/bonus/processor"
	"loyalty-server/internal/store"
	"loyalty-server/internal/tiers"
)

type AgentResolver interface {
	ResolveTelegram(ctx context.Context, telegramID int64) (store.Agent, error)
}

type BonusService interface {
	ListTransactions(ctx context.Context, req processor.ListTransactionsRequest) (processor.TransactionPage, error)
	Redeem(ctx context.Context, req processor.RedeemRequest) (processor.TransactionResult, error)
}

type TierReader interface {
	GetAgentTier(ctx context.Context, agentID string) (tiers.AgentTier, error)
}

type SegmentReader interface {
	GetSegment(ctx context.Context, agentID string) (store.CustomerSegment, error)
}
