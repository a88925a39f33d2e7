package processor

import (
	"time"

	"loyalty-server/internal/config"
	"loyalty-server/internal/store"

	"github.com/shopspring/decimal"
)

// RFM segment labels
const (
	SegmentChampions   = "champions"
	SegmentLoyal       = "loyal"
	SegmentNew         = "new"
	SegmentPotential   = "potential"
	SegmentAtRisk      = "at_risk"
	SegmentCantLose    = "cant_lose"
	SegmentHibernating = "hibernating"
	SegmentLost        = "lost"
)

// Score turns one purchase rollup into a customer segment
func Score(agg store.PurchaseAggregate, rules config.RFMRules, now time.Time) store.CustomerSegment {
	recency := int(now.Sub(agg.LastPurchaseAt).Hours() / 24)
	if recency < 0 {
		recency = 0
	}
	frequency := agg.Frequency
	monetary := agg.MonetaryTotal

	var avgCheck int64
	if frequency > 0 {
		avgCheck = decimal.NewFromInt(monetary).Div(decimal.NewFromInt(int64(frequency))).Round(0).IntPart()
	}

	r := recencyScore(recency, rules.RecencyDays)
	f := ascendingScore(int64(frequency), toInt64(rules.Frequency))
	m := ascendingScore(monetary, rules.Monetary)
	activity := activityStatus(recency, rules)
	last := agg.LastPurchaseAt

	return store.CustomerSegment{
		AgentID:         agg.AgentID,
		RecencyDays:     &recency,
		Frequency:       &frequency,
		MonetaryTotal:   &monetary,
		AvgCheck:        &avgCheck,
		RScore:          r,
		FScore:          f,
		MScore:          m,
		Segment:         label(r, f, m),
		ActivityStatus:  activity,
		GrowthPotential: growthPotential(activity, f, m),
		LastPurchaseAt:  &last,
		ComputedAt:      now,
	}
}

// recencyScore gives 5 to the most recent band and 1 past the last cut point
func recencyScore(days int, cuts []int) int {
	for i, cut := range cuts {
		if days <= cut {
			return 5 - i
		}
	}
	return 1
}

// ascendingScore is 1 plus the number of cut points the value reaches
func ascendingScore(value int64, cuts []int64) int {
	score := 1
	for _, cut := range cuts {
		if value >= cut {
			score++
		}
	}
	return min(score, 5)
}

func label(r, f, m int) string {
	switch {
	case r >= 4 && f >= 4 && m >= 4:
		return SegmentChampions
	case r >= 3 && f >= 3:
		return SegmentLoyal
	case r >= 4:
		return SegmentNew
	case r == 1 && f >= 4:
		return SegmentCantLose
	case r <= 2 && f >= 3:
		return SegmentAtRisk
	case r == 1 && f == 1:
		return SegmentLost
	case r <= 2:
		return SegmentHibernating
	default:
		return SegmentPotential
	}
}

func activityStatus(recencyDays int, rules config.RFMRules) string {
	switch {
	case recencyDays <= rules.ActiveDays:
		return store.ActivityStatusActive
	case recencyDays <= rules.CoolingDays:
		return store.ActivityStatusCooling
	default:
		return store.ActivityStatusLapsed
	}
}

// growthPotential is high for engaged customers who still spend little
func growthPotential(activity string, f, m int) string {
	switch {
	case activity == store.ActivityStatusLapsed || m == 5:
		return store.GrowthPotentialLow
	case f >= 2 && m <= 3:
		return store.GrowthPotentialHigh
	default:
		return store.GrowthPotentialMedium
	}
}

func toInt64(values []int) []int64 {
	out := make([]int64, len(values))
	for i, v := range values {
		out[i] = int64(v)
	}
	return out
}
