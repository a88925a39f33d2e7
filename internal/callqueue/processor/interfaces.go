package processor

import (
	"context"
	"time"

	"loyalty-server/internal/store"
)

type QueueStore interface {
	ListClassificationInputs(ctx context.Context) ([]store.ClassificationInput, error)
	ListRecentlyClosedAgents(ctx context.Context, queueType string, since time.Time) ([]string, error)
	ApplyQueueClassification(ctx context.Context, queueType string, assignments []store.QueueAssignment) (store.QueueApplyResult, error)
	ListActiveQueue(ctx context.Context, queueType string, limit, offset int) ([]store.QueueListItem, int, error)
}

type EventPublisher interface {
	PublishQueueReclassified(ctx context.Context, queueType string, result store.QueueApplyResult)
}
