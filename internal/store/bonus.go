package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// AppendBonusTransactionParams describes one ledger append. With
// RequireFunds set, a redemption only succeeds while the balance covers it.
type AppendBonusTransactionParams struct {
	AgentID         string
	Type            string
	Amount          int64
	Description     string
	RelatedDemandID *string
	RequireFunds    bool
}

// AppendResult is the stored transaction plus the balance after it.
type AppendResult struct {
	Transaction BonusTransaction
	Balance     int64
}

const sqlInsertBonusTransaction = `
INSERT INTO bonus_transactions (agent_id, type, amount, description, related_demand_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, agent_id, type, amount, description, related_demand_id, created_at
`

const sqlApplyBalanceDelta = `
INSERT INTO bonus_accounts (agent_id, balance)
VALUES ($1, $2)
ON CONFLICT (agent_id) DO UPDATE SET
    balance = bonus_accounts.balance + EXCLUDED.balance,
    updated_at = now()
RETURNING balance
`

const sqlDebitBalanceGuarded = `
UPDATE bonus_accounts
SET balance = balance - $2, updated_at = now()
WHERE agent_id = $1 AND balance >= $2
RETURNING balance
`

const sqlApplyLevelCounters = `
INSERT INTO loyalty_levels (agent_id, total_earned, total_redeemed)
VALUES ($1, $2, $3)
ON CONFLICT (agent_id) DO UPDATE SET
    total_earned = loyalty_levels.total_earned + EXCLUDED.total_earned,
    total_redeemed = loyalty_levels.total_redeemed + EXCLUDED.total_redeemed,
    updated_at = now()
`

// AppendBonusTransaction inserts a ledger row and applies its signed delta
// to the cached balance and level counters in one transaction.
func (s *Store) AppendBonusTransaction(ctx context.Context, params AppendBonusTransactionParams) (AppendResult, error) {
	var result AppendResult
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		result, err = appendBonusTransaction(ctx, tx, params)
		return err
	})
	if err != nil {
		return AppendResult{}, err
	}
	return result, nil
}

func appendBonusTransaction(ctx context.Context, tx *sqlx.Tx, params AppendBonusTransactionParams) (AppendResult, error) {
	var result AppendResult

	delta := params.Amount
	earned, redeemed := params.Amount, int64(0)
	if params.Type == TransactionTypeRedemption {
		delta = -params.Amount
		earned, redeemed = 0, params.Amount
	}

	if params.Type == TransactionTypeRedemption && params.RequireFunds {
		err := tx.GetContext(ctx, &result.Balance, sqlDebitBalanceGuarded, params.AgentID, params.Amount)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return AppendResult{}, ErrInsufficientBalance
			}
			return AppendResult{}, fmt.Errorf("failed to debit bonus balance: %w", err)
		}
	} else {
		err := tx.GetContext(ctx, &result.Balance, sqlApplyBalanceDelta, params.AgentID, delta)
		if err != nil {
			if isForeignKeyViolation(err) {
				return AppendResult{}, ErrNotFound
			}
			return AppendResult{}, fmt.Errorf("failed to apply bonus balance delta: %w", err)
		}
	}

	err := tx.GetContext(ctx, &result.Transaction, sqlInsertBonusTransaction,
		params.AgentID,
		params.Type,
		params.Amount,
		params.Description,
		params.RelatedDemandID)
	if err != nil {
		if isUniqueViolation(err) {
			return AppendResult{}, ErrDuplicate
		}
		return AppendResult{}, fmt.Errorf("failed to insert bonus transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, sqlApplyLevelCounters, params.AgentID, earned, redeemed); err != nil {
		return AppendResult{}, fmt.Errorf("failed to update level counters: %w", err)
	}

	return result, nil
}

const sqlGetBonusAccount = `
SELECT agent_id, balance, updated_at
FROM bonus_accounts
WHERE agent_id = $1
`

// GetBonusAccount retrieves the cached balance of an agent
func (s *Store) GetBonusAccount(ctx context.Context, agentID string) (BonusAccount, error) {
	var account BonusAccount
	err := s.db.GetContext(ctx, &account, sqlGetBonusAccount, agentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return BonusAccount{}, ErrNotFound
		}
		return BonusAccount{}, fmt.Errorf("failed to get bonus account: %w", err)
	}
	return account, nil
}

const sqlSumBonusTransactions = `
SELECT COALESCE(SUM(CASE WHEN type = 'redemption' THEN -amount ELSE amount END), 0)
FROM bonus_transactions
WHERE agent_id = $1
`

// SumBonusTransactions replays the ledger of an agent into a balance
func (s *Store) SumBonusTransactions(ctx context.Context, agentID string) (int64, error) {
	var sum int64
	if err := s.db.GetContext(ctx, &sum, sqlSumBonusTransactions, agentID); err != nil {
		return 0, fmt.Errorf("failed to sum bonus transactions: %w", err)
	}
	return sum, nil
}

// ListBonusTransactionsParams filters the ledger. Nil filters match all.
type ListBonusTransactionsParams struct {
	AgentID *string
	Type    *string
	Limit   int
	Offset  int
}

const sqlListBonusTransactions = `
SELECT id, agent_id, type, amount, description, related_demand_id, created_at
FROM bonus_transactions
WHERE ($1::text IS NULL OR agent_id = $1)
  AND ($2::text IS NULL OR type = $2)
ORDER BY id DESC
LIMIT $3 OFFSET $4
`

const sqlCountBonusTransactions = `
SELECT COUNT(*)
FROM bonus_transactions
WHERE ($1::text IS NULL OR agent_id = $1)
  AND ($2::text IS NULL OR type = $2)
`

// ListBonusTransactions returns a page of ledger rows, newest first, and the total count
func (s *Store) ListBonusTransactions(ctx context.Context, params ListBonusTransactionsParams) ([]BonusTransaction, int, error) {
	transactions := []BonusTransaction{}
	err := s.db.SelectContext(ctx, &transactions, sqlListBonusTransactions,
		params.AgentID, params.Type, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bonus transactions: %w", err)
	}

	var total int
	if err := s.db.GetContext(ctx, &total, sqlCountBonusTransactions, params.AgentID, params.Type); err != nil {
		return nil, 0, fmt.Errorf("failed to count bonus transactions: %w", err)
	}
	return transactions, total, nil
}
