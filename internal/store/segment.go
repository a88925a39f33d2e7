package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const sqlAggregatePurchases = `
SELECT agent_id, MAX(moment) AS last_purchase_at, COUNT(*) AS frequency, COALESCE(SUM(amount), 0) AS monetary_total
FROM purchases
GROUP BY agent_id
ORDER BY agent_id
`

// AggregatePurchases rolls purchases up per agent for RFM scoring
func (s *Store) AggregatePurchases(ctx context.Context) ([]PurchaseAggregate, error) {
	aggregates := []PurchaseAggregate{}
	if err := s.db.SelectContext(ctx, &aggregates, sqlAggregatePurchases); err != nil {
		return nil, fmt.Errorf("failed to aggregate purchases: %w", err)
	}
	return aggregates, nil
}

const sqlUpsertCustomerSegment = `
INSERT INTO customer_segments (
    agent_id, recency_days, frequency, monetary_total, avg_check,
    r_score, f_score, m_score, segment, activity_status, growth_potential,
    last_purchase_at, computed_at
)
VALUES (
    :agent_id, :recency_days, :frequency, :monetary_total, :avg_check,
    :r_score, :f_score, :m_score, :segment, :activity_status, :growth_potential,
    :last_purchase_at, :computed_at
)
ON CONFLICT (agent_id) DO UPDATE SET
    recency_days = EXCLUDED.recency_days,
    frequency = EXCLUDED.frequency,
    monetary_total = EXCLUDED.monetary_total,
    avg_check = EXCLUDED.avg_check,
    r_score = EXCLUDED.r_score,
    f_score = EXCLUDED.f_score,
    m_score = EXCLUDED.m_score,
    segment = EXCLUDED.segment,
    activity_status = EXCLUDED.activity_status,
    growth_potential = EXCLUDED.growth_potential,
    last_purchase_at = EXCLUDED.last_purchase_at,
    computed_at = EXCLUDED.computed_at
`

// SaveCustomerSegments upserts a batch of segments in one transaction
func (s *Store) SaveCustomerSegments(ctx context.Context, segments []CustomerSegment) error {
	if len(segments) == 0 {
		return nil
	}
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		stmt, err := tx.PrepareNamedContext(ctx, sqlUpsertCustomerSegment)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer stmt.Close()

		for _, segment := range segments {
			if _, err := stmt.ExecContext(ctx, segment); err != nil {
				return fmt.Errorf("failed to save segment for %s: %w", segment.AgentID, err)
			}
		}
		return nil
	})
}

const sqlGetCustomerSegment = `
SELECT agent_id, recency_days, frequency, monetary_total, avg_check,
       r_score, f_score, m_score, segment, activity_status, growth_potential,
       last_purchase_at, computed_at
FROM customer_segments
WHERE agent_id = $1
`

// GetCustomerSegment retrieves the last computed segment of an agent
func (s *Store) GetCustomerSegment(ctx context.Context, agentID string) (CustomerSegment, error) {
	var segment CustomerSegment
	if err := s.db.GetContext(ctx, &segment, sqlGetCustomerSegment, agentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CustomerSegment{}, ErrNotFound
		}
		return CustomerSegment{}, fmt.Errorf("failed to get customer segment: %w", err)
	}
	return segment, nil
}

const sqlListClassificationInputs = `
SELECT a.agent_id, a.phone, a.email,
       cs.frequency, cs.monetary_total, cs.segment, cs.last_purchase_at
FROM agents a
LEFT JOIN customer_segments cs ON cs.agent_id = a.agent_id
ORDER BY a.agent_id
`

// ListClassificationInputs returns the queue classifier input of every agent
func (s *Store) ListClassificationInputs(ctx context.Context) ([]ClassificationInput, error) {
	inputs := []ClassificationInput{}
	if err := s.db.SelectContext(ctx, &inputs, sqlListClassificationInputs); err != nil {
		return nil, fmt.Errorf("failed to list classification inputs: %w", err)
	}
	return inputs, nil
}
