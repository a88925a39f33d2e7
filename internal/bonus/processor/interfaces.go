package processor

import (
	"context"

	"loyalty-server/internal/store"
)

// BonusStore defines the database operations required by BonusProcessor
type BonusStore interface {
	GetAgentByID(ctx context.Context, agentID string) (store.Agent, error)
	AppendBonusTransaction(ctx context.Context, params store.AppendBonusTransactionParams) (store.AppendResult, error)
	GetBonusAccount(ctx context.Context, agentID string) (store.BonusAccount, error)
	SumBonusTransactions(ctx context.Context, agentID string) (int64, error)
	ListBonusTransactions(ctx context.Context, params store.ListBonusTransactionsParams) ([]store.BonusTransaction, int, error)
	UpsertPurchase(ctx context.Context, params store.UpsertPurchaseParams) (store.Purchase, error)
	ApplyPurchase(ctx context.Context, demandID, description string, policy store.PurchasePolicy) (store.ApplyPurchaseResult, error)
}

// EventPublisher receives ledger events
type EventPublisher interface {
	PublishBonusTransaction(ctx context.Context, tx store.BonusTransaction, balance int64)
}
