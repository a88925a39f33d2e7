package erpsync

import (
	"context"
	"time"

	"loyalty-server/internal/bonus/processor"
	"loyalty-server/internal/clients/moysklad"
	"loyalty-server/internal/store"
)

type ERPClient interface {
	ListDemandsUpdatedSince(ctx context.Context, since time.Time) ([]moysklad.Demand, error)
	GetCounterparty(ctx context.Context, id string) (moysklad.Counterparty, error)
}

type SyncStore interface {
	UpsertAgent(ctx context.Context, params store.UpsertAgentParams) (store.Agent, error)
	LatestPurchaseMoment(ctx context.Context) (*time.Time, error)
	ListPendingPurchases(ctx context.Context, limit int) ([]store.Purchase, error)
}

type Accruer interface {
	AccruePurchase(ctx context.Context, req processor.AccruePurchaseRequest) (processor.AccrualResult, error)
}
