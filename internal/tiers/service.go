package tiers

import (
	"context"
	"errors"

	"loyalty-server/internal/domain"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=mocks_test.go -package=tiers

// TierStore defines the database operations required by TierService
type TierStore interface {
	GetAgentByID(ctx context.Context, agentID string) (store.Agent, error)
	GetLoyaltyLevel(ctx context.Context, agentID string) (store.LoyaltyLevel, error)
	GetBonusAccount(ctx context.Context, agentID string) (store.BonusAccount, error)
}

// TierService resolves the loyalty standing of an agent
type TierService struct {
	store  TierStore
	table  *Table
	logger *observability.Logger
}

// New creates a new TierService
func New(store TierStore, table *Table, logger *observability.Logger) *TierService {
	return &TierService{
		store:  store,
		table:  table,
		logger: logger,
	}
}

// AgentTier is the tier view plus the counters shown to admins and in the Mini App
type AgentTier struct {
	AgentID       string `json:"agent_id"`
	AgentName     string `json:"agent_name"`
	Balance       int64  `json:"balance"`
	TotalEarned   int64  `json:"total_earned"`
	TotalRedeemed int64  `json:"total_redeemed"`
	Tier
}

// Table exposes the tier table the service computes with
func (s *TierService) Table() *Table {
	return s.table
}

// GetAgentTier computes the tier of an agent from the stored spend. Agents
// without a level row or bonus account are reported at zero.
func (s *TierService) GetAgentTier(ctx context.Context, agentID string) (AgentTier, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "get_agent_tier"},
		observability.Field{Key: "agent_id", Value: agentID},
	)

	agent, err := s.store.GetAgentByID(ctx, agentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AgentTier{}, &domain.NotFoundError{Resource: "agent", ID: agentID}
		}
		s.logger.Error(ctx, "failed to get agent", err)
		return AgentTier{}, err
	}

	level, err := s.store.GetLoyaltyLevel(ctx, agentID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		s.logger.Error(ctx, "failed to get loyalty level", err)
		return AgentTier{}, err
	}

	account, err := s.store.GetBonusAccount(ctx, agentID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		s.logger.Error(ctx, "failed to get bonus account", err)
		return AgentTier{}, err
	}

	tier, err := s.table.ComputeTier(level.TotalSpent)
	if err != nil {
		if !domain.IsWarning(err) {
			return AgentTier{}, err
		}
		s.logger.WarnWithError(ctx, "loyalty level data integrity", err)
	}
	if level.AgentID != "" && level.LevelID != tier.LevelID {
		s.logger.Warn(ctx, "stored level differs from computed tier")
	}

	return AgentTier{
		AgentID:       agent.AgentID,
		AgentName:     agent.Name,
		Balance:       account.Balance,
		TotalEarned:   level.TotalEarned,
		TotalRedeemed: level.TotalRedeemed,
		Tier:          tier,
	}, nil
}
