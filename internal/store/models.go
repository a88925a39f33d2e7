package store

import (
	"time"
)

// Agent is a customer mirrored from the ERP.
type Agent struct {
	AgentID    string    `db:"agent_id" json:"agent_id"`
	Name       string    `db:"name" json:"name"`
	Phone      *string   `db:"phone" json:"phone,omitempty"`
	Email      *string   `db:"email" json:"email,omitempty"`
	Address    *string   `db:"address" json:"address,omitempty"`
	TelegramID *int64    `db:"telegram_id" json:"telegram_id,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// BonusAccount caches the sum of an agent's bonus transactions.
type BonusAccount struct {
	AgentID   string    `db:"agent_id" json:"agent_id"`
	Balance   int64     `db:"balance" json:"balance"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// BonusTransaction is an immutable ledger row. Amount is always a positive
// magnitude; Type decides the sign.
type BonusTransaction struct {
	ID              int64     `db:"id" json:"id"`
	AgentID         string    `db:"agent_id" json:"agent_id"`
	Type            string    `db:"type" json:"type"`
	Amount          int64     `db:"amount" json:"amount"`
	Description     string    `db:"description" json:"description"`
	RelatedDemandID *string   `db:"related_demand_id" json:"related_demand_id,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// SignedAmount returns the balance delta of the transaction.
func (t BonusTransaction) SignedAmount() int64 {
	if t.Type == TransactionTypeRedemption {
		return -t.Amount
	}
	return t.Amount
}

type LoyaltyLevel struct {
	AgentID       string    `db:"agent_id" json:"agent_id"`
	LevelID       int       `db:"level_id" json:"level_id"`
	TotalSpent    int64     `db:"total_spent" json:"total_spent"`
	TotalEarned   int64     `db:"total_earned" json:"total_earned"`
	TotalRedeemed int64     `db:"total_redeemed" json:"total_redeemed"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// Purchase is an ERP shipment (demand). AccruedAt is set once the purchase
// has been applied to spend and bonus.
type Purchase struct {
	DemandID  string     `db:"demand_id" json:"demand_id"`
	AgentID   string     `db:"agent_id" json:"agent_id"`
	Amount    int64      `db:"amount" json:"amount"`
	Moment    time.Time  `db:"moment" json:"moment"`
	AccruedAt *time.Time `db:"accrued_at" json:"accrued_at,omitempty"`
	SyncedAt  time.Time  `db:"synced_at" json:"synced_at"`
}

type CustomerSegment struct {
	AgentID         string     `db:"agent_id" json:"agent_id"`
	RecencyDays     *int       `db:"recency_days" json:"recency_days"`
	Frequency       *int       `db:"frequency" json:"frequency"`
	MonetaryTotal   *int64     `db:"monetary_total" json:"monetary_total"`
	AvgCheck        *int64     `db:"avg_check" json:"avg_check"`
	RScore          int        `db:"r_score" json:"r_score"`
	FScore          int        `db:"f_score" json:"f_score"`
	MScore          int        `db:"m_score" json:"m_score"`
	Segment         string     `db:"segment" json:"segment"`
	ActivityStatus  string     `db:"activity_status" json:"activity_status"`
	GrowthPotential string     `db:"growth_potential" json:"growth_potential"`
	LastPurchaseAt  *time.Time `db:"last_purchase_at" json:"last_purchase_at"`
	ComputedAt      time.Time  `db:"computed_at" json:"computed_at"`
}

// PurchaseAggregate is the per-agent rollup of purchases used for RFM.
type PurchaseAggregate struct {
	AgentID        string    `db:"agent_id"`
	LastPurchaseAt time.Time `db:"last_purchase_at"`
	Frequency      int       `db:"frequency"`
	MonetaryTotal  int64     `db:"monetary_total"`
}

type CallQueueEntry struct {
	ID            int64      `db:"id" json:"id"`
	AgentID       string     `db:"agent_id" json:"agent_id"`
	QueueType     string     `db:"queue_type" json:"queue_type"`
	Priority      int        `db:"priority" json:"priority"`
	Score         float64    `db:"score" json:"score"`
	IsActive      bool       `db:"is_active" json:"is_active"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
	DeactivatedAt *time.Time `db:"deactivated_at" json:"deactivated_at,omitempty"`
}

// QueueListItem is an active queue entry joined with the agent's contact data.
type QueueListItem struct {
	CallQueueEntry
	Name       string  `db:"name" json:"name"`
	Phone      *string `db:"phone" json:"phone,omitempty"`
	Email      *string `db:"email" json:"email,omitempty"`
	TelegramID *int64  `db:"telegram_id" json:"telegram_id,omitempty"`
}

type ContactHistory struct {
	ID          int64     `db:"id" json:"id"`
	AgentID     string    `db:"agent_id" json:"agent_id"`
	QueueID     int64     `db:"queue_id" json:"queue_id"`
	ContactType string    `db:"contact_type" json:"contact_type"`
	Result      string    `db:"result" json:"result"`
	Notes       string    `db:"notes" json:"notes"`
	ContactDate time.Time `db:"contact_date" json:"contact_date"`
}

// ClassificationInput is everything the queue classifier reads for one agent.
// Segment-derived fields are nil when no segment has been computed yet.
type ClassificationInput struct {
	AgentID        string     `db:"agent_id"`
	Phone          *string    `db:"phone"`
	Email          *string    `db:"email"`
	Frequency      *int       `db:"frequency"`
	MonetaryTotal  *int64     `db:"monetary_total"`
	Segment        *string    `db:"segment"`
	LastPurchaseAt *time.Time `db:"last_purchase_at"`
}
