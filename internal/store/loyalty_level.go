package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const sqlGetLoyaltyLevel = `
SELECT agent_id, level_id, total_spent, total_earned, total_redeemed, created_at, updated_at
FROM loyalty_levels
WHERE agent_id = $1
`

// GetLoyaltyLevel retrieves the level row of an agent
func (s *Store) GetLoyaltyLevel(ctx context.Context, agentID string) (LoyaltyLevel, error) {
	var level LoyaltyLevel
	err := s.db.GetContext(ctx, &level, sqlGetLoyaltyLevel, agentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LoyaltyLevel{}, ErrNotFound
		}
		return LoyaltyLevel{}, fmt.Errorf("failed to get loyalty level: %w", err)
	}
	return level, nil
}

const sqlSetLoyaltyLevel = `
UPDATE loyalty_levels SET level_id = $2, updated_at = now()
WHERE agent_id = $1
`
