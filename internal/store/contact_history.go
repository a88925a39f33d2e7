package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type RecordContactParams struct {
	AgentID     string
	QueueType   string
	ContactType string
	Result      string
	Notes       string
	// Deactivate closes the referenced queue entry in the same transaction.
	Deactivate bool
}

// RecordContactResult is the appended history row and the entry it references.
type RecordContactResult struct {
	Contact ContactHistory
	Entry   CallQueueEntry
}

const sqlLockActiveQueueEntry = `
SELECT id, agent_id, queue_type, priority, score, is_active, created_at, updated_at, deactivated_at
FROM call_queue
WHERE agent_id = $1 AND queue_type = $2 AND is_active
FOR UPDATE
`

const sqlInsertContactHistory = `
INSERT INTO contact_history (agent_id, queue_id, contact_type, result, notes)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, agent_id, queue_id, contact_type, result, notes, contact_date
`

const sqlDeactivateQueueEntryReturning = `
UPDATE call_queue SET is_active = FALSE, deactivated_at = now(), updated_at = now()
WHERE id = $1
RETURNING id, agent_id, queue_type, priority, score, is_active, created_at, updated_at, deactivated_at
`

// RecordContact appends a contact against the active entry of
// (agent, queue type). ErrNotFound means there is no active entry.
func (s *Store) RecordContact(ctx context.Context, params RecordContactParams) (RecordContactResult, error) {
	var result RecordContactResult
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &result.Entry, sqlLockActiveQueueEntry, params.AgentID, params.QueueType); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to lock queue entry: %w", err)
		}

		err := tx.GetContext(ctx, &result.Contact, sqlInsertContactHistory,
			params.AgentID,
			result.Entry.ID,
			params.ContactType,
			params.Result,
			params.Notes)
		if err != nil {
			return fmt.Errorf("failed to insert contact history: %w", err)
		}

		if params.Deactivate {
			if err := tx.GetContext(ctx, &result.Entry, sqlDeactivateQueueEntryReturning, result.Entry.ID); err != nil {
				return fmt.Errorf("failed to deactivate queue entry: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return RecordContactResult{}, err
	}
	return result, nil
}

const sqlListContactHistory = `
SELECT id, agent_id, queue_id, contact_type, result, notes, contact_date
FROM contact_history
WHERE agent_id = $1
ORDER BY contact_date DESC, id DESC
LIMIT $2 OFFSET $3
`

// ListContactHistory returns a page of an agent's contacts, newest first
func (s *Store) ListContactHistory(ctx context.Context, agentID string, limit, offset int) ([]ContactHistory, error) {
	contacts := []ContactHistory{}
	if err := s.db.SelectContext(ctx, &contacts, sqlListContactHistory, agentID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list contact history: %w", err)
	}
	return contacts, nil
}
