package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loyalty-server/internal/domain"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"
	"loyalty-server/internal/tiers"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type BonusProcessor struct {
	store   BonusStore
	table   *tiers.Table
	events  EventPublisher
	metrics *observability.Metrics
	logger  *observability.Logger
}

func New(store BonusStore, table *tiers.Table, events EventPublisher, metrics *observability.Metrics, logger *observability.Logger) BonusProcessor {
	return BonusProcessor{
		store:   store,
		table:   table,
		events:  events,
		metrics: metrics,
		logger:  logger,
	}
}

// AppendTransactionRequest is a raw ledger append
type AppendTransactionRequest struct {
	AgentID         string
	Type            string
	Amount          int64
	Description     string
	RelatedDemandID *string
}

// TransactionResult is the stored transaction and the balance after it
type TransactionResult struct {
	Transaction store.BonusTransaction `json:"transaction"`
	Balance     int64                  `json:"balance"`
}

// AppendTransaction records a transaction and applies its signed delta once.
// It does not check the balance; Redeem does.
func (p *BonusProcessor) AppendTransaction(ctx context.Context, req AppendTransactionRequest) (TransactionResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "append_transaction"},
		observability.Field{Key: "agent_id", Value: req.AgentID},
		observability.Field{Key: "transaction_type", Value: req.Type},
		observability.Field{Key: "amount", Value: req.Amount},
	)

	if err := validateTransaction(req.AgentID, req.Type, req.Amount); err != nil {
		return TransactionResult{}, err
	}

	return p.append(ctx, store.AppendBonusTransactionParams{
		AgentID:         req.AgentID,
		Type:            req.Type,
		Amount:          req.Amount,
		Description:     req.Description,
		RelatedDemandID: req.RelatedDemandID,
	})
}

func (p *BonusProcessor) append(ctx context.Context, params store.AppendBonusTransactionParams) (TransactionResult, error) {
	res, err := p.store.AppendBonusTransaction(ctx, params)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return TransactionResult{}, &domain.NotFoundError{Resource: "agent", ID: params.AgentID}
		case errors.Is(err, store.ErrInsufficientBalance), errors.Is(err, store.ErrDuplicate):
			return TransactionResult{}, err
		}
		p.logger.Error(ctx, "failed to append bonus transaction", err)
		return TransactionResult{}, err
	}

	p.metrics.RecordBonusTransaction(params.Type)
	p.events.PublishBonusTransaction(ctx, res.Transaction, res.Balance)
	p.logger.Info(ctx, "bonus transaction recorded")

	return TransactionResult{Transaction: res.Transaction, Balance: res.Balance}, nil
}

// RedeemRequest spends bonus. With CheckAmount set, the redemption is also
// capped by the configured share of the check.
type RedeemRequest struct {
	AgentID     string
	Amount      int64
	CheckAmount *int64
	Description string
}

// Redeem debits bonus after checking the balance. The debit itself is
// conditional on the balance so concurrent redemptions cannot overdraw.
func (p *BonusProcessor) Redeem(ctx context.Context, req RedeemRequest) (TransactionResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "redeem"},
		observability.Field{Key: "agent_id", Value: req.AgentID},
		observability.Field{Key: "amount", Value: req.Amount},
	)

	if err := validateTransaction(req.AgentID, store.TransactionTypeRedemption, req.Amount); err != nil {
		return TransactionResult{}, err
	}
	if req.CheckAmount != nil && *req.CheckAmount <= 0 {
		return TransactionResult{}, domain.NewValidationError("check_amount", "must be positive")
	}

	if _, err := p.requireAgent(ctx, req.AgentID); err != nil {
		return TransactionResult{}, err
	}

	balance, err := p.balance(ctx, req.AgentID)
	if err != nil {
		return TransactionResult{}, err
	}
	if req.Amount > balance {
		return TransactionResult{}, &domain.InsufficientBalanceError{AgentID: req.AgentID, Requested: req.Amount, Available: balance}
	}
	if req.CheckAmount != nil {
		limit := p.table.ComputeMaxRedemption(*req.CheckAmount, balance)
		if req.Amount > limit {
			return TransactionResult{}, domain.NewValidationError("amount",
				fmt.Sprintf("exceeds the maximum redemption of %d for this check", limit))
		}
	}

	description := req.Description
	if description == "" {
		description = "Bonus redemption"
	}

	res, err := p.append(ctx, store.AppendBonusTransactionParams{
		AgentID:      req.AgentID,
		Type:         store.TransactionTypeRedemption,
		Amount:       req.Amount,
		Description:  description,
		RequireFunds: true,
	})
	if errors.Is(err, store.ErrInsufficientBalance) {
		available, readErr := p.balance(ctx, req.AgentID)
		if readErr != nil {
			available = 0
		}
		p.logger.Warn(ctx, "redemption lost a race against a concurrent debit")
		return TransactionResult{}, &domain.InsufficientBalanceError{AgentID: req.AgentID, Requested: req.Amount, Available: available}
	}
	return res, err
}

// AccruePurchaseRequest is a purchase (ERP demand) to accrue bonus for
type AccruePurchaseRequest struct {
	AgentID  string
	DemandID string
	Amount   int64
	Moment   time.Time
}

// AccrualResult reports the effect of accruing a purchase. Duplicate marks a
// purchase that had already been applied; nothing changed in that case.
type AccrualResult struct {
	DemandID        string `json:"demand_id"`
	Duplicate       bool   `json:"duplicate"`
	Bonus           int64  `json:"bonus"`
	Balance         int64  `json:"balance"`
	PreviousLevelID int    `json:"previous_level_id"`
	LevelID         int    `json:"level_id"`
	TotalSpent      int64  `json:"total_spent"`
}

// AccruePurchase mirrors a purchase, adds it to the agent's spend and
// credits the bonus earned at the level held before the purchase.
func (p *BonusProcessor) AccruePurchase(ctx context.Context, req AccruePurchaseRequest) (AccrualResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "accrue_purchase"},
		observability.Field{Key: "agent_id", Value: req.AgentID},
		observability.Field{Key: "demand_id", Value: req.DemandID},
	)

	switch {
	case req.AgentID == "":
		return AccrualResult{}, domain.NewValidationError("agent_id", "is required")
	case req.DemandID == "":
		return AccrualResult{}, domain.NewValidationError("demand_id", "is required")
	case req.Amount < 0:
		return AccrualResult{}, domain.NewValidationError("amount", "must not be negative")
	}
	moment := req.Moment
	if moment.IsZero() {
		moment = time.Now()
	}

	_, err := p.store.UpsertPurchase(ctx, store.UpsertPurchaseParams{
		DemandID: req.DemandID,
		AgentID:  req.AgentID,
		Amount:   req.Amount,
		Moment:   moment,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AccrualResult{}, &domain.NotFoundError{Resource: "agent", ID: req.AgentID}
		}
		p.logger.Error(ctx, "failed to upsert purchase", err)
		return AccrualResult{}, err
	}

	applied, err := p.store.ApplyPurchase(ctx, req.DemandID, "Bonus for purchase "+req.DemandID, p.table)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return AccrualResult{DemandID: req.DemandID, Duplicate: true}, nil
		}
		p.logger.Error(ctx, "failed to apply purchase", err)
		return AccrualResult{}, err
	}

	if applied.Transaction != nil {
		p.metrics.RecordBonusTransaction(store.TransactionTypeAccrual)
		p.events.PublishBonusTransaction(ctx, *applied.Transaction, applied.Balance)
	}
	if applied.LevelID != applied.PreviousLevelID {
		p.logger.Info(ctx, fmt.Sprintf("loyalty level changed from %d to %d", applied.PreviousLevelID, applied.LevelID))
	}

	return AccrualResult{
		DemandID:        req.DemandID,
		Bonus:           applied.Bonus,
		Balance:         applied.Balance,
		PreviousLevelID: applied.PreviousLevelID,
		LevelID:         applied.LevelID,
		TotalSpent:      applied.TotalSpent,
	}, nil
}

// Balance is the cached bonus balance of an agent
type Balance struct {
	AgentID string `json:"agent_id"`
	Balance int64  `json:"balance"`
}

// GetBalance returns the cached balance; agents without transactions have 0
func (p *BonusProcessor) GetBalance(ctx context.Context, agentID string) (Balance, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "get_balance"},
		observability.Field{Key: "agent_id", Value: agentID},
	)

	if _, err := p.requireAgent(ctx, agentID); err != nil {
		return Balance{}, err
	}
	balance, err := p.balance(ctx, agentID)
	if err != nil {
		return Balance{}, err
	}
	return Balance{AgentID: agentID, Balance: balance}, nil
}

// BalanceVerification compares the cached balance with the ledger replay
type BalanceVerification struct {
	AgentID    string `json:"agent_id"`
	Cached     int64  `json:"cached"`
	Computed   int64  `json:"computed"`
	Consistent bool   `json:"consistent"`
}

// VerifyBalance replays the ledger. A divergence is returned together with
// a *domain.DataIntegrityWarning.
func (p *BonusProcessor) VerifyBalance(ctx context.Context, agentID string) (BalanceVerification, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "verify_balance"},
		observability.Field{Key: "agent_id", Value: agentID},
	)

	if _, err := p.requireAgent(ctx, agentID); err != nil {
		return BalanceVerification{}, err
	}
	cached, err := p.balance(ctx, agentID)
	if err != nil {
		return BalanceVerification{}, err
	}
	computed, err := p.store.SumBonusTransactions(ctx, agentID)
	if err != nil {
		p.logger.Error(ctx, "failed to sum bonus transactions", err)
		return BalanceVerification{}, err
	}

	result := BalanceVerification{
		AgentID:    agentID,
		Cached:     cached,
		Computed:   computed,
		Consistent: cached == computed,
	}
	if !result.Consistent {
		warning := &domain.DataIntegrityWarning{
			Subject: "bonus_balance",
			Detail:  fmt.Sprintf("cached balance %d differs from ledger sum %d", cached, computed),
		}
		p.logger.WarnWithError(ctx, "bonus balance diverged from ledger", warning)
		return result, warning
	}
	return result, nil
}

// ListTransactionsRequest filters the ledger; empty filters match everything
type ListTransactionsRequest struct {
	AgentID string
	Type    string
	Limit   int
	Offset  int
}

type TransactionPage struct {
	Transactions []store.BonusTransaction `json:"transactions"`
	Total        int                      `json:"total"`
	Limit        int                      `json:"limit"`
	Offset       int                      `json:"offset"`
}

// ListTransactions returns a page of the ledger, newest first
func (p *BonusProcessor) ListTransactions(ctx context.Context, req ListTransactionsRequest) (TransactionPage, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "list_transactions"},
		observability.Field{Key: "agent_id", Value: req.AgentID},
	)

	if req.Type != "" && !isValidType(req.Type) {
		return TransactionPage{}, domain.NewValidationError("type", "must be one of: accrual redemption")
	}
	limit, offset, err := normalizePage(req.Limit, req.Offset)
	if err != nil {
		return TransactionPage{}, err
	}

	params := store.ListBonusTransactionsParams{Limit: limit, Offset: offset}
	if req.AgentID != "" {
		params.AgentID = &req.AgentID
	}
	if req.Type != "" {
		params.Type = &req.Type
	}

	transactions, total, err := p.store.ListBonusTransactions(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to list bonus transactions", err)
		return TransactionPage{}, err
	}
	return TransactionPage{Transactions: transactions, Total: total, Limit: limit, Offset: offset}, nil
}

func (p *BonusProcessor) requireAgent(ctx context.Context, agentID string) (store.Agent, error) {
	if agentID == "" {
		return store.Agent{}, domain.NewValidationError("agent_id", "is required")
	}
	agent, err := p.store.GetAgentByID(ctx, agentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Agent{}, &domain.NotFoundError{Resource: "agent", ID: agentID}
		}
		p.logger.Error(ctx, "failed to get agent", err)
		return store.Agent{}, err
	}
	return agent, nil
}

func (p *BonusProcessor) balance(ctx context.Context, agentID string) (int64, error) {
	account, err := p.store.GetBonusAccount(ctx, agentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, nil
		}
		p.logger.Error(ctx, "failed to get bonus account", err)
		return 0, err
	}
	return account.Balance, nil
}

func validateTransaction(agentID, txType string, amount int64) error {
	if agentID == "" {
		return domain.NewValidationError("agent_id", "is required")
	}
	if !isValidType(txType) {
		return domain.NewValidationError("type", "must be one of: accrual redemption")
	}
	if amount <= 0 {
		return domain.NewValidationError("amount", "must be a positive integer")
	}
	return nil
}

func isValidType(txType string) bool {
	return txType == store.TransactionTypeAccrual || txType == store.TransactionTypeRedemption
}

func normalizePage(limit, offset int) (int, int, error) {
	if limit < 0 || offset < 0 {
		return 0, 0, domain.NewValidationError("limit", "limit and offset must not be negative")
	}
	if limit == 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return limit, offset, nil
}
