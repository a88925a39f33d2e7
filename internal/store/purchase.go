package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type UpsertPurchaseParams struct {
	DemandID string
	AgentID  string
	Amount   int64
	Moment   time.Time
}

const sqlUpsertPurchase = `
INSERT INTO purchases (demand_id, agent_id, amount, moment)
VALUES ($1, $2, $3, $4)
ON CONFLICT (demand_id) DO UPDATE SET
    amount = CASE WHEN purchases.accrued_at IS NULL THEN EXCLUDED.amount ELSE purchases.amount END,
    moment = EXCLUDED.moment,
    synced_at = now()
RETURNING demand_id, agent_id, amount, moment, accrued_at, synced_at
`

// UpsertPurchase mirrors an ERP demand. The amount of an already accrued
// purchase is frozen.
func (s *Store) UpsertPurchase(ctx context.Context, params UpsertPurchaseParams) (Purchase, error) {
	var purchase Purchase
	err := s.db.GetContext(ctx, &purchase, sqlUpsertPurchase,
		params.DemandID, params.AgentID, params.Amount, params.Moment)
	if err != nil {
		if isForeignKeyViolation(err) {
			return Purchase{}, ErrNotFound
		}
		return Purchase{}, fmt.Errorf("failed to upsert purchase: %w", err)
	}
	return purchase, nil
}

const sqlListPendingPurchases = `
SELECT demand_id, agent_id, amount, moment, accrued_at, synced_at
FROM purchases
WHERE accrued_at IS NULL
ORDER BY moment ASC, demand_id ASC
LIMIT $1
`

// ListPendingPurchases returns purchases not yet applied to spend and bonus, oldest first
func (s *Store) ListPendingPurchases(ctx context.Context, limit int) ([]Purchase, error) {
	purchases := []Purchase{}
	if err := s.db.SelectContext(ctx, &purchases, sqlListPendingPurchases, limit); err != nil {
		return nil, fmt.Errorf("failed to list pending purchases: %w", err)
	}
	return purchases, nil
}

const sqlLatestPurchaseMoment = `SELECT MAX(moment) FROM purchases`

// LatestPurchaseMoment returns the moment of the newest mirrored purchase, or nil
func (s *Store) LatestPurchaseMoment(ctx context.Context) (*time.Time, error) {
	var moment sql.NullTime
	if err := s.db.GetContext(ctx, &moment, sqlLatestPurchaseMoment); err != nil {
		return nil, fmt.Errorf("failed to get latest purchase moment: %w", err)
	}
	if !moment.Valid {
		return nil, nil
	}
	return &moment.Time, nil
}

// PurchasePolicy supplies the tier rules applied while a purchase is accrued.
type PurchasePolicy interface {
	LevelFor(totalSpent int64) int
	ComputeBonus(amount int64, levelID int) (int64, error)
}

// ApplyPurchaseResult reports what accruing a purchase changed.
type ApplyPurchaseResult struct {
	PreviousLevelID int
	LevelID         int
	TotalSpent      int64
	Bonus           int64
	Balance         int64
	Transaction     *BonusTransaction
}

const sqlLockPurchase = `
SELECT demand_id, agent_id, amount, moment, accrued_at, synced_at
FROM purchases
WHERE demand_id = $1
FOR UPDATE
`

const sqlMarkPurchaseAccrued = `UPDATE purchases SET accrued_at = now() WHERE demand_id = $1`

const sqlAddLoyaltySpend = `
INSERT INTO loyalty_levels (agent_id, total_spent)
VALUES ($1, $2)
ON CONFLICT (agent_id) DO UPDATE SET
    total_spent = loyalty_levels.total_spent + EXCLUDED.total_spent,
    updated_at = now()
RETURNING total_spent
`

const sqlLockLoyaltyLevel = `
SELECT level_id FROM loyalty_levels WHERE agent_id = $1 FOR UPDATE
`

// ApplyPurchase adds a mirrored purchase to the agent's spend, recomputes
// the level and appends the accrual earned at the level held before the
// purchase. A purchase is applied at most once: ErrDuplicate reports a
// repeat, ErrNotFound an unknown demand.
func (s *Store) ApplyPurchase(ctx context.Context, demandID, description string, policy PurchasePolicy) (ApplyPurchaseResult, error) {
	var result ApplyPurchaseResult
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var purchase Purchase
		if err := tx.GetContext(ctx, &purchase, sqlLockPurchase, demandID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to lock purchase: %w", err)
		}
		if purchase.AccruedAt != nil {
			return ErrDuplicate
		}

		result.PreviousLevelID = 1
		if err := tx.GetContext(ctx, &result.PreviousLevelID, sqlLockLoyaltyLevel, purchase.AgentID); err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to lock loyalty level: %w", err)
		}

		if err := tx.GetContext(ctx, &result.TotalSpent, sqlAddLoyaltySpend, purchase.AgentID, purchase.Amount); err != nil {
			return fmt.Errorf("failed to add loyalty spend: %w", err)
		}

		result.LevelID = policy.LevelFor(result.TotalSpent)
		if _, err := tx.ExecContext(ctx, sqlSetLoyaltyLevel, purchase.AgentID, result.LevelID); err != nil {
			return fmt.Errorf("failed to set loyalty level: %w", err)
		}

		bonus, err := policy.ComputeBonus(purchase.Amount, result.PreviousLevelID)
		if err != nil {
			return err
		}
		result.Bonus = bonus

		if bonus > 0 {
			demand := purchase.DemandID
			appended, err := appendBonusTransaction(ctx, tx, AppendBonusTransactionParams{
				AgentID:         purchase.AgentID,
				Type:            TransactionTypeAccrual,
				Amount:          bonus,
				Description:     description,
				RelatedDemandID: &demand,
			})
			if err != nil {
				return err
			}
			result.Balance = appended.Balance
			result.Transaction = &appended.Transaction
		} else if err := tx.GetContext(ctx, &result.Balance, sqlGetBalanceOrZero, purchase.AgentID); err != nil {
			return fmt.Errorf("failed to read bonus balance: %w", err)
		}

		if _, err := tx.ExecContext(ctx, sqlMarkPurchaseAccrued, purchase.DemandID); err != nil {
			return fmt.Errorf("failed to mark purchase accrued: %w", err)
		}
		return nil
	})
	if err != nil {
		return ApplyPurchaseResult{}, err
	}
	return result, nil
}

const sqlGetBalanceOrZero = `
SELECT COALESCE((SELECT balance FROM bonus_accounts WHERE agent_id = $1), 0)
`
