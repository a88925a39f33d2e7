package processor

import (
	"context"

	"loyalty-server/internal/store"
)

type SegmentStore interface {
	AggregatePurchases(ctx context.Context) ([]store.PurchaseAggregate, error)
	SaveCustomerSegments(ctx context.Context, segments []store.CustomerSegment) error
	GetCustomerSegment(ctx context.Context, agentID string) (store.CustomerSegment, error)
}
