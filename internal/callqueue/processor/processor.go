package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"slices"
	"strings"
	"time"

	"loyalty-server/internal/config"
	"loyalty-server/internal/domain"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type QueueProcessor struct {
	store   QueueStore
	rules   config.Rules
	events  EventPublisher
	metrics *observability.Metrics
	logger  *observability.Logger
	now     func() time.Time
}

func New(store QueueStore, rules config.Rules, events EventPublisher, metrics *observability.Metrics, logger *observability.Logger) QueueProcessor {
	return QueueProcessor{
		store:   store,
		rules:   rules,
		events:  events,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// ReclassifyResult reports per-queue changes of a run. Skipped counts
// customers with incomplete data; CooledDown counts assignments dropped
// because of a recent terminal contact.
type ReclassifyResult struct {
	Queues     map[string]store.QueueApplyResult `json:"queues"`
	Skipped    int                               `json:"skipped"`
	CooledDown int                               `json:"cooled_down"`
}

// Reclassify recomputes every call queue from the current segment and
// contact data. Each queue type is applied in its own transaction.
func (p *QueueProcessor) Reclassify(ctx context.Context) (ReclassifyResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "operation", Value: "reclassify"})

	inputs, err := p.store.ListClassificationInputs(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list classification inputs", err)
		return ReclassifyResult{}, err
	}

	now := p.now()
	classification := Classify(inputs, p.rules, now)
	result := ReclassifyResult{
		Queues:  make(map[string]store.QueueApplyResult, len(store.QueueTypes)),
		Skipped: classification.Skipped,
	}
	if classification.Skipped > 0 {
		p.logger.Warn(observability.WithFields(ctx,
			observability.Field{Key: "skipped", Value: classification.Skipped},
		), "customers skipped because of incomplete data")
	}

	cooldownSince := now.AddDate(0, 0, -p.rules.ContactCooldownDays)
	for _, queueType := range store.QueueTypes {
		qctx := observability.WithFields(ctx, observability.Field{Key: "queue_type", Value: queueType})

		assignments := classification.Assignments[queueType]
		if p.rules.ContactCooldownDays > 0 {
			closed, err := p.store.ListRecentlyClosedAgents(qctx, queueType, cooldownSince)
			if err != nil {
				p.logger.Error(qctx, "failed to list recently closed agents", err)
				return result, err
			}
			var dropped int
			assignments, dropped = withoutAgents(assignments, closed)
			result.CooledDown += dropped
		}

		applied, err := p.store.ApplyQueueClassification(qctx, queueType, assignments)
		if err != nil {
			p.logger.Error(qctx, "failed to apply queue classification", err)
			return result, err
		}
		result.Queues[queueType] = applied

		p.metrics.RecordQueueChange(queueType, "activated", applied.Activated)
		p.metrics.RecordQueueChange(queueType, "updated", applied.Updated)
		p.metrics.RecordQueueChange(queueType, "deactivated", applied.Deactivated)
		p.events.PublishQueueReclassified(qctx, queueType, applied)
	}

	p.logger.Info(ctx, "call queues reclassified")
	return result, nil
}

func withoutAgents(assignments []store.QueueAssignment, agentIDs []string) ([]store.QueueAssignment, int) {
	if len(agentIDs) == 0 {
		return assignments, 0
	}
	excluded := make(map[string]struct{}, len(agentIDs))
	for _, id := range agentIDs {
		excluded[id] = struct{}{}
	}
	kept := make([]store.QueueAssignment, 0, len(assignments))
	for _, a := range assignments {
		if _, ok := excluded[a.AgentID]; ok {
			continue
		}
		kept = append(kept, a)
	}
	return kept, len(assignments) - len(kept)
}

type QueuePage struct {
	QueueType string                `json:"queue_type"`
	Entries   []store.QueueListItem `json:"entries"`
	Total     int                   `json:"total"`
	Limit     int                   `json:"limit"`
	Offset    int                   `json:"offset"`
}

// ListQueue returns a page of active entries ordered by priority, then score
func (p *QueueProcessor) ListQueue(ctx context.Context, queueType string, limit, offset int) (QueuePage, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "list_queue"},
		observability.Field{Key: "queue_type", Value: queueType},
	)

	if err := ValidateQueueType(queueType); err != nil {
		return QueuePage{}, err
	}
	if limit < 0 || offset < 0 {
		return QueuePage{}, domain.NewValidationError("limit", "limit and offset must not be negative")
	}
	if limit == 0 {
		limit = defaultPageSize
	}
	limit = min(limit, maxPageSize)

	entries, total, err := p.store.ListActiveQueue(ctx, queueType, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list active queue", err)
		return QueuePage{}, err
	}
	return QueuePage{QueueType: queueType, Entries: entries, Total: total, Limit: limit, Offset: offset}, nil
}

// ValidateQueueType rejects names outside the known queue types
func ValidateQueueType(queueType string) error {
	if !slices.Contains(store.QueueTypes, queueType) {
		return domain.NewValidationError("queue_type", "must be one of: "+strings.Join(store.QueueTypes, " "))
	}
	return nil
}
