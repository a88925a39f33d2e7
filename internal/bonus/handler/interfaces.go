package handler

import (
	"context"

	"loyalty-server/internal/bonus/processor"
	"loyalty-server/internal/tiers"
)

// BonusService is the part of the bonus processor the HTTP layer uses
type BonusService interface {
	GetBalance(ctx context.Context, agentID string) (processor.Balance, error)
	VerifyBalance(ctx context.Context, agentID string) (processor.BalanceVerification, error)
	AppendTransaction(ctx context.Context, req processor.AppendTransactionRequest) (processor.TransactionResult, error)
	Redeem(ctx context.Context, req processor.RedeemRequest) (processor.TransactionResult, error)
	AccruePurchase(ctx context.Context, req processor.AccruePurchaseRequest) (processor.AccrualResult, error)
	ListTransactions(ctx context.Context, req processor.ListTransactionsRequest) (processor.TransactionPage, error)
}

type TierReader interface {
	GetAgentTier(ctx context.Context, agentID string) (tiers.AgentTier, error)
}
