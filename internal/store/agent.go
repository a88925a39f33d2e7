package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// UpsertAgentParams mirrors an ERP counterparty. TelegramID is only
// overwritten when provided.
type UpsertAgentParams struct {
	AgentID    string
	Name       string
	Phone      *string
	Email      *string
	Address    *string
	TelegramID *int64
}

const sqlUpsertAgent = `
INSERT INTO agents (agent_id, name, phone, email, address, telegram_id)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (agent_id) DO UPDATE SET
    name = EXCLUDED.name,
    phone = EXCLUDED.phone,
    email = EXCLUDED.email,
    address = EXCLUDED.address,
    telegram_id = COALESCE(EXCLUDED.telegram_id, agents.telegram_id),
    updated_at = now()
RETURNING agent_id, name, phone, email, address, telegram_id, created_at, updated_at
`

// UpsertAgent inserts or refreshes an agent record
func (s *Store) UpsertAgent(ctx context.Context, params UpsertAgentParams) (Agent, error) {
	var agent Agent
	err := s.db.GetContext(ctx, &agent, sqlUpsertAgent,
		params.AgentID,
		params.Name,
		params.Phone,
		params.Email,
		params.Address,
		params.TelegramID)
	if err != nil {
		if isUniqueViolation(err) {
			return Agent{}, ErrDuplicate
		}
		return Agent{}, fmt.Errorf("failed to upsert agent: %w", err)
	}
	return agent, nil
}

const sqlGetAgentByID = `
SELECT agent_id, name, phone, email, address, telegram_id, created_at, updated_at
FROM agents
WHERE agent_id = $1
`

// GetAgentByID retrieves an agent by its ERP id
func (s *Store) GetAgentByID(ctx context.Context, agentID string) (Agent, error) {
	var agent Agent
	err := s.db.GetContext(ctx, &agent, sqlGetAgentByID, agentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Agent{}, ErrNotFound
		}
		return Agent{}, fmt.Errorf("failed to get agent: %w", err)
	}
	return agent, nil
}

const sqlGetAgentByTelegramID = `
SELECT agent_id, name, phone, email, address, telegram_id, created_at, updated_at
FROM agents
WHERE telegram_id = $1
`

// GetAgentByTelegramID resolves the agent linked to a Telegram user
func (s *Store) GetAgentByTelegramID(ctx context.Context, telegramID int64) (Agent, error) {
	var agent Agent
	err := s.db.GetContext(ctx, &agent, sqlGetAgentByTelegramID, telegramID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Agent{}, ErrNotFound
		}
		return Agent{}, fmt.Errorf("failed to get agent by telegram id: %w", err)
	}
	return agent, nil
}

const sqlLinkAgentTelegram = `
UPDATE agents SET telegram_id = $2, updated_at = now()
WHERE agent_id = $1
`

// LinkAgentTelegram binds a Telegram user id to an agent
func (s *Store) LinkAgentTelegram(ctx context.Context, agentID string, telegramID int64) error {
	res, err := s.db.ExecContext(ctx, sqlLinkAgentTelegram, agentID, telegramID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to link telegram id: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to link telegram id: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
