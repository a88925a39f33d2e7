package store

import (
	"context"
	"time"
)

// Storer defines all public methods available on the Store
type Storer interface {
	// Database
	Ping(ctx context.Context) error
	Close() error

	// Agent operations
	UpsertAgent(ctx context.Context, params UpsertAgentParams) (Agent, error)
	GetAgentByID(ctx context.Context, agentID string) (Agent, error)
	GetAgentByTelegramID(ctx context.Context, telegramID int64) (Agent, error)
	LinkAgentTelegram(ctx context.Context, agentID string, telegramID int64) error

	// Ledger operations
	AppendBonusTransaction(ctx context.Context, params AppendBonusTransactionParams) (AppendResult, error)
	GetBonusAccount(ctx context.Context, agentID string) (BonusAccount, error)
	SumBonusTransactions(ctx context.Context, agentID string) (int64, error)
	ListBonusTransactions(ctx context.Context, params ListBonusTransactionsParams) ([]BonusTransaction, int, error)

	// Loyalty level operations
	GetLoyaltyLevel(ctx context.Context, agentID string) (LoyaltyLevel, error)

	// Purchase operations
	UpsertPurchase(ctx context.Context, params UpsertPurchaseParams) (Purchase, error)
	ListPendingPurchases(ctx context.Context, limit int) ([]Purchase, error)
	LatestPurchaseMoment(ctx context.Context) (*time.Time, error)
	ApplyPurchase(ctx context.Context, demandID, description string, policy PurchasePolicy) (ApplyPurchaseResult, error)

	// Segment operations
	AggregatePurchases(ctx context.Context) ([]PurchaseAggregate, error)
	SaveCustomerSegments(ctx context.Context, segments []CustomerSegment) error
	GetCustomerSegment(ctx context.Context, agentID string) (CustomerSegment, error)
	ListClassificationInputs(ctx context.Context) ([]ClassificationInput, error)

	// Call queue operations
	ApplyQueueClassification(ctx context.Context, queueType string, assignments []QueueAssignment) (QueueApplyResult, error)
	ListActiveQueue(ctx context.Context, queueType string, limit, offset int) ([]QueueListItem, int, error)
	GetActiveQueueEntry(ctx context.Context, agentID, queueType string) (CallQueueEntry, error)
	ListAgentQueueEntries(ctx context.Context, agentID string) ([]CallQueueEntry, error)
	ListRecentlyClosedAgents(ctx context.Context, queueType string, since time.Time) ([]string, error)

	// Contact history operations
	RecordContact(ctx context.Context, params RecordContactParams) (RecordContactResult, error)
	ListContactHistory(ctx context.Context, agentID string, limit, offset int) ([]ContactHistory, error)
}

var _ Storer = (*Store)(nil)
