package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"time"

	"loyalty-server/internal/config"
	"loyalty-server/internal/domain"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"
)

type SegmentProcessor struct {
	store  SegmentStore
	rules  config.RFMRules
	logger *observability.Logger
	now    func() time.Time
}

func New(store SegmentStore, rules config.RFMRules, logger *observability.Logger) SegmentProcessor {
	return SegmentProcessor{
		store:  store,
		rules:  rules,
		logger: logger,
		now:    time.Now,
	}
}

// RecomputeResult counts segments written per label
type RecomputeResult struct {
	Customers  int            `json:"customers"`
	BySegment  map[string]int `json:"by_segment"`
	ComputedAt time.Time      `json:"computed_at"`
}

// Recompute rebuilds customer_segments from the purchase history
func (p *SegmentProcessor) Recompute(ctx context.Context) (RecomputeResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "operation", Value: "recompute_segments"})

	aggregates, err := p.store.AggregatePurchases(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to aggregate purchases", err)
		return RecomputeResult{}, err
	}

	now := p.now()
	result := RecomputeResult{BySegment: map[string]int{}, ComputedAt: now}
	segments := make([]store.CustomerSegment, 0, len(aggregates))
	for _, agg := range aggregates {
		seg := Score(agg, p.rules, now)
		segments = append(segments, seg)
		result.BySegment[seg.Segment]++
	}

	if err := p.store.SaveCustomerSegments(ctx, segments); err != nil {
		p.logger.Error(ctx, "failed to save customer segments", err)
		return RecomputeResult{}, err
	}
	result.Customers = len(segments)

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "customers", Value: result.Customers},
	), "customer segments recomputed")
	return result, nil
}

// GetSegment returns the last computed segment of an agent
func (p *SegmentProcessor) GetSegment(ctx context.Context, agentID string) (store.CustomerSegment, error) {
	seg, err := p.store.GetCustomerSegment(ctx, agentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CustomerSegment{}, &domain.NotFoundError{Resource: "customer_segment", ID: agentID}
		}
		p.logger.Error(ctx, "failed to get customer segment", err)
		return store.CustomerSegment{}, err
	}
	return seg, nil
}
