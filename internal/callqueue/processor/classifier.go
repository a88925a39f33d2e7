package processor

import (
	"time"

	"loyalty-server/internal/config"
	"loyalty-server/internal/store"

	"github.com/shopspring/decimal"
)

// Classification is the desired state of every queue for one run
type Classification struct {
	Assignments map[string][]store.QueueAssignment
	Skipped     int
}

// Classify buckets customers into queues. An input missing last purchase,
// frequency or monetary is skipped for every queue. A customer may land in
// several queues; each assignment carries its own priority and score.
func Classify(inputs []store.ClassificationInput, rules config.Rules, now time.Time) Classification {
	result := Classification{Assignments: make(map[string][]store.QueueAssignment, len(store.QueueTypes))}
	for _, qt := range store.QueueTypes {
		result.Assignments[qt] = []store.QueueAssignment{}
	}

	q := rules.Queues
	for _, in := range inputs {
		if in.LastPurchaseAt == nil || in.Frequency == nil || in.MonetaryTotal == nil {
			result.Skipped++
			continue
		}
		recency := daysBetween(*in.LastPurchaseAt, now)
		frequency := *in.Frequency
		monetary := *in.MonetaryTotal
		score := weightedScore(recency, frequency, monetary, q.Weights)

		assign := func(queueType string, priority int) {
			result.Assignments[queueType] = append(result.Assignments[queueType], store.QueueAssignment{
				AgentID:  in.AgentID,
				Priority: priority,
				Score:    score,
			})
		}

		if recency > q.ReactivationHigh.RecencyDays && monetary >= q.ReactivationHigh.MinMonetary {
			priority := q.ReactivationHigh.Priority + 1
			if recency >= q.ReactivationHigh.CriticalRecencyDays {
				priority = q.ReactivationHigh.Priority
			}
			assign(store.QueueTypeReactivationHigh, priority)
		}

		dueFrom := rules.ServiceIntervalDays - rules.ServiceLookaheadDays
		dueUntil := rules.ServiceIntervalDays + rules.ServiceOverdueGraceDays
		if recency >= dueFrom && recency <= dueUntil {
			assign(store.QueueTypePreTO, q.PreTO.Priority)
		}

		if frequency >= q.VIPFrequent.MinFrequency && monetary >= q.VIPFrequent.MinMonetary {
			assign(store.QueueTypeVIPFrequent, q.VIPFrequent.Priority)
		}

		if (isBlank(in.Phone) || isBlank(in.Email)) && frequency > 0 {
			assign(store.QueueTypeDataPoor, q.DataPoor.Priority)
		}
	}
	return result
}

// weightedScore is recency*w.Recency + frequency*w.Frequency +
// (monetary/unit)*w.Monetary, rounded to 2 decimals
func weightedScore(recencyDays, frequency int, monetary int64, w config.ScoreWeights) float64 {
	score := decimal.NewFromInt(int64(recencyDays)).Mul(decimal.NewFromFloat(w.Recency)).
		Add(decimal.NewFromInt(int64(frequency)).Mul(decimal.NewFromFloat(w.Frequency))).
		Add(decimal.NewFromInt(monetary).Div(decimal.NewFromInt(w.MonetaryUnit)).Mul(decimal.NewFromFloat(w.Monetary)))
	return score.Round(2).InexactFloat64()
}

func daysBetween(from, to time.Time) int {
	days := int(to.Sub(from).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}
