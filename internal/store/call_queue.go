package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// QueueAssignment is the desired active state of one agent in a queue.
type QueueAssignment struct {
	AgentID  string
	Priority int
	Score    float64
}

// QueueApplyResult counts the changes one reclassification made to a queue.
type QueueApplyResult struct {
	Activated   int `json:"activated"`
	Updated     int `json:"updated"`
	Unchanged   int `json:"unchanged"`
	Deactivated int `json:"deactivated"`
}

const sqlLockActiveQueue = `
SELECT id, agent_id, queue_type, priority, score, is_active, created_at, updated_at, deactivated_at
FROM call_queue
WHERE queue_type = $1 AND is_active
FOR UPDATE
`

const sqlInsertQueueEntry = `
INSERT INTO call_queue (agent_id, queue_type, priority, score)
VALUES ($1, $2, $3, $4)
`

const sqlUpdateQueueEntry = `
UPDATE call_queue SET priority = $2, score = $3, updated_at = now()
WHERE id = $1
`

const sqlDeactivateQueueEntry = `
UPDATE call_queue SET is_active = FALSE, deactivated_at = now(), updated_at = now()
WHERE id = $1 AND is_active
`

// ApplyQueueClassification makes the active entries of queueType match
// assignments in one transaction. Matching rows are updated in place, new
// agents get a fresh row and rows no longer assigned are deactivated.
func (s *Store) ApplyQueueClassification(ctx context.Context, queueType string, assignments []QueueAssignment) (QueueApplyResult, error) {
	var result QueueApplyResult
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var active []CallQueueEntry
		if err := tx.SelectContext(ctx, &active, sqlLockActiveQueue, queueType); err != nil {
			return fmt.Errorf("failed to lock active queue: %w", err)
		}
		existing := make(map[string]CallQueueEntry, len(active))
		for _, entry := range active {
			existing[entry.AgentID] = entry
		}

		seen := make(map[string]bool, len(assignments))
		for _, a := range assignments {
			if seen[a.AgentID] {
				continue
			}
			seen[a.AgentID] = true

			entry, ok := existing[a.AgentID]
			switch {
			case !ok:
				if _, err := tx.ExecContext(ctx, sqlInsertQueueEntry, a.AgentID, queueType, a.Priority, a.Score); err != nil {
					return fmt.Errorf("failed to insert queue entry: %w", err)
				}
				result.Activated++
			case entry.Priority != a.Priority || entry.Score != a.Score:
				if _, err := tx.ExecContext(ctx, sqlUpdateQueueEntry, entry.ID, a.Priority, a.Score); err != nil {
					return fmt.Errorf("failed to update queue entry: %w", err)
				}
				result.Updated++
			default:
				result.Unchanged++
			}
		}

		for agentID, entry := range existing {
			if seen[agentID] {
				continue
			}
			if _, err := tx.ExecContext(ctx, sqlDeactivateQueueEntry, entry.ID); err != nil {
				return fmt.Errorf("failed to deactivate queue entry: %w", err)
			}
			result.Deactivated++
		}
		return nil
	})
	if err != nil {
		return QueueApplyResult{}, err
	}
	return result, nil
}

const sqlListActiveQueue = `
SELECT q.id, q.agent_id, q.queue_type, q.priority, q.score, q.is_active,
       q.created_at, q.updated_at, q.deactivated_at,
       a.name, a.phone, a.email, a.telegram_id
FROM call_queue q
JOIN agents a ON a.agent_id = q.agent_id
WHERE q.queue_type = $1 AND q.is_active
ORDER BY q.priority ASC, q.score DESC, q.id ASC
LIMIT $2 OFFSET $3
`

const sqlCountActiveQueue = `
SELECT COUNT(*) FROM call_queue WHERE queue_type = $1 AND is_active
`

// ListActiveQueue returns a page of active entries ordered by priority,
// then score descending, then id, with the total active count
func (s *Store) ListActiveQueue(ctx context.Context, queueType string, limit, offset int) ([]QueueListItem, int, error) {
	items := []QueueListItem{}
	if err := s.db.SelectContext(ctx, &items, sqlListActiveQueue, queueType, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list active queue: %w", err)
	}
	var total int
	if err := s.db.GetContext(ctx, &total, sqlCountActiveQueue, queueType); err != nil {
		return nil, 0, fmt.Errorf("failed to count active queue: %w", err)
	}
	return items, total, nil
}

const sqlGetActiveQueueEntry = `
SELECT id, agent_id, queue_type, priority, score, is_active, created_at, updated_at, deactivated_at
FROM call_queue
WHERE agent_id = $1 AND queue_type = $2 AND is_active
`

// GetActiveQueueEntry retrieves the active entry of an agent in a queue
func (s *Store) GetActiveQueueEntry(ctx context.Context, agentID, queueType string) (CallQueueEntry, error) {
	var entry CallQueueEntry
	if err := s.db.GetContext(ctx, &entry, sqlGetActiveQueueEntry, agentID, queueType); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CallQueueEntry{}, ErrNotFound
		}
		return CallQueueEntry{}, fmt.Errorf("failed to get active queue entry: %w", err)
	}
	return entry, nil
}

const sqlListAgentQueueEntries = `
SELECT id, agent_id, queue_type, priority, score, is_active, created_at, updated_at, deactivated_at
FROM call_queue
WHERE agent_id = $1
ORDER BY id ASC
`

// ListAgentQueueEntries returns every queue entry of an agent, active or not
func (s *Store) ListAgentQueueEntries(ctx context.Context, agentID string) ([]CallQueueEntry, error) {
	entries := []CallQueueEntry{}
	if err := s.db.SelectContext(ctx, &entries, sqlListAgentQueueEntries, agentID); err != nil {
		return nil, fmt.Errorf("failed to list agent queue entries: %w", err)
	}
	return entries, nil
}

const sqlRecentTerminalContacts = `
SELECT DISTINCT h.agent_id
FROM contact_history h
JOIN call_queue q ON q.id = h.queue_id
WHERE q.queue_type = $1
  AND h.result IN ('success', 'not_interested')
  AND h.contact_date >= $2
`

// ListRecentlyClosedAgents returns agents whose entry in queueType was
// closed by a terminal contact at or after since
func (s *Store) ListRecentlyClosedAgents(ctx context.Context, queueType string, since time.Time) ([]string, error) {
	agentIDs := []string{}
	if err := s.db.SelectContext(ctx, &agentIDs, sqlRecentTerminalContacts, queueType, since); err != nil {
		return nil, fmt.Errorf("failed to list recently closed agents: %w", err)
	}
	return agentIDs, nil
}
