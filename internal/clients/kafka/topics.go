package kafka

// Event types carried on the loyalty events topic
const (
	EventBonusTransactionRecorded = "bonus.transaction.recorded"
	EventContactRecorded          = "contact.recorded"
	EventQueueReclassified        = "queue.reclassified"
)

// EventMessage is the envelope of every loyalty event
type EventMessage struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	AgentID   string                 `json:"agent_id,omitempty"`
	Data      map[string]interface{} `json:"data"`
	Timestamp string                 `json:"timestamp"`
}
