package store

// Bonus transaction types
const (
	TransactionTypeAccrual    = "accrual"
	TransactionTypeRedemption = "redemption"
)

// Call queue types
const (
	QueueTypeReactivationHigh = "reactivation_high"
	QueueTypePreTO            = "pre_to"
	QueueTypeVIPFrequent      = "vip_frequent"
	QueueTypeDataPoor         = "data_poor"
)

// QueueTypes lists every queue the classifier maintains.
var QueueTypes = []string{
	QueueTypeReactivationHigh,
	QueueTypePreTO,
	QueueTypeVIPFrequent,
	QueueTypeDataPoor,
}

// Contact ENUMs
const (
	ContactTypeCall    = "call"
	ContactTypeMessage = "message"
)

const (
	ContactResultSuccess       = "success"
	ContactResultNoAnswer      = "no_answer"
	ContactResultNotInterested = "not_interested"
	ContactResultCallback      = "callback"
	ContactResultPending       = "pending"
)

// Segment activity ENUMs
const (
	ActivityStatusActive  = "active"
	ActivityStatusCooling = "cooling"
	ActivityStatusLapsed  = "lapsed"
)

const (
	GrowthPotentialHigh   = "high"
	GrowthPotentialMedium = "medium"
	GrowthPotentialLow    = "low"
)
