package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

var ErrInvalidRules = errors.New("invalid loyalty rules")

// Rules holds every business threshold of the loyalty program. They are
// read from a YAML file so operators can retune them without a release.
type Rules struct {
	Tiers                   []TierRule `yaml:"tiers"`
	MaxRedemptionPercent    float64    `yaml:"max_redemption_percent"`
	Queues                  QueueRules `yaml:"queues"`
	RFM                     RFMRules   `yaml:"rfm"`
	ContactCooldownDays     int        `yaml:"contact_cooldown_days"`
	ServiceIntervalDays     int        `yaml:"service_interval_days"`
	ServiceLookaheadDays    int        `yaml:"service_lookahead_days"`
	ServiceOverdueGraceDays int        `yaml:"service_overdue_grace_days"`
}

// TierRule is one row of the loyalty level table.
type TierRule struct {
	Level           int     `yaml:"level"`
	Name            string  `yaml:"name"`
	MinSpent        int64   `yaml:"min_spent"`
	AccrualPercent  float64 `yaml:"accrual_percent"`
	DiscountPercent float64 `yaml:"discount_percent"`
}

// QueueRules holds per-queue classification thresholds.
type QueueRules struct {
	ReactivationHigh ReactivationRule `yaml:"reactivation_high"`
	PreTO            PreTORule        `yaml:"pre_to"`
	VIPFrequent      VIPRule          `yaml:"vip_frequent"`
	DataPoor         DataPoorRule     `yaml:"data_poor"`
	Weights          ScoreWeights     `yaml:"weights"`
}

type ReactivationRule struct {
	RecencyDays         int   `yaml:"recency_days"`
	CriticalRecencyDays int   `yaml:"critical_recency_days"`
	MinMonetary         int64 `yaml:"min_monetary"`
	Priority            int   `yaml:"priority"`
}

type PreTORule struct {
	Priority int `yaml:"priority"`
}

type VIPRule struct {
	MinFrequency int   `yaml:"min_frequency"`
	MinMonetary  int64 `yaml:"min_monetary"`
	Priority     int   `yaml:"priority"`
}

type DataPoorRule struct {
	Priority int `yaml:"priority"`
}

// ScoreWeights combine recency, frequency and monetary into a queue score.
// MonetaryUnit converts minor currency units into score points.
type ScoreWeights struct {
	Recency      float64 `yaml:"recency"`
	Frequency    float64 `yaml:"frequency"`
	Monetary     float64 `yaml:"monetary"`
	MonetaryUnit int64   `yaml:"monetary_unit"`
}

// RFMRules holds ascending thresholds used to assign 1..5 scores.
// RecencyDays is ascending too: fewer days scores higher.
type RFMRules struct {
	RecencyDays []int   `yaml:"recency_days"`
	Frequency   []int   `yaml:"frequency"`
	Monetary    []int64 `yaml:"monetary"`
	ActiveDays  int     `yaml:"active_days"`
	CoolingDays int     `yaml:"cooling_days"`
}

// DefaultRules returns the rules the program ships with.
func DefaultRules() Rules {
	return Rules{
		Tiers: []TierRule{
			{Level: 1, Name: "Bronze", MinSpent: 0, AccrualPercent: 5, DiscountPercent: 30},
			{Level: 2, Name: "Silver", MinSpent: 30000, AccrualPercent: 7, DiscountPercent: 35},
			{Level: 3, Name: "Gold", MinSpent: 70000, AccrualPercent: 10, DiscountPercent: 40},
			{Level: 4, Name: "Platinum", MinSpent: 120000, AccrualPercent: 15, DiscountPercent: 50},
			{Level: 5, Name: "Diamond", MinSpent: 200000, AccrualPercent: 20, DiscountPercent: 60},
		},
		MaxRedemptionPercent: 30,
		Queues: QueueRules{
			ReactivationHigh: ReactivationRule{RecencyDays: 90, CriticalRecencyDays: 180, MinMonetary: 50000, Priority: 1},
			PreTO:            PreTORule{Priority: 2},
			VIPFrequent:      VIPRule{MinFrequency: 6, MinMonetary: 100000, Priority: 3},
			DataPoor:         DataPoorRule{Priority: 5},
			Weights:          ScoreWeights{Recency: 0.5, Frequency: 2, Monetary: 1, MonetaryUnit: 1000},
		},
		RFM: RFMRules{
			RecencyDays: []int{30, 60, 120, 240},
			Frequency:   []int{2, 3, 5, 8},
			Monetary:    []int64{10000, 30000, 70000, 150000},
			ActiveDays:  90,
			CoolingDays: 180,
		},
		ContactCooldownDays:     30,
		ServiceIntervalDays:     180,
		ServiceLookaheadDays:    14,
		ServiceOverdueGraceDays: 45,
	}
}

// LoadRules reads rules from path on top of DefaultRules. An empty path
// yields the defaults.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

// Validate checks the tier table and thresholds for consistency. Tiers are
// sorted by MinSpent as a side effect.
func (r *Rules) Validate() error {
	if len(r.Tiers) == 0 {
		return fmt.Errorf("%w: at least one tier is required", ErrInvalidRules)
	}
	sort.SliceStable(r.Tiers, func(i, j int) bool { return r.Tiers[i].MinSpent < r.Tiers[j].MinSpent })
	if r.Tiers[0].MinSpent != 0 {
		return fmt.Errorf("%w: lowest tier must start at 0", ErrInvalidRules)
	}
	seen := make(map[int]bool, len(r.Tiers))
	for i, t := range r.Tiers {
		if seen[t.Level] {
			return fmt.Errorf("%w: duplicate tier level %d", ErrInvalidRules, t.Level)
		}
		seen[t.Level] = true
		if i > 0 {
			prev := r.Tiers[i-1]
			if t.MinSpent == prev.MinSpent {
				return fmt.Errorf("%w: tiers %d and %d share min_spent", ErrInvalidRules, prev.Level, t.Level)
			}
			if t.Level <= prev.Level {
				return fmt.Errorf("%w: tier levels must ascend with min_spent", ErrInvalidRules)
			}
		}
		if t.AccrualPercent < 0 || t.AccrualPercent > 100 || t.DiscountPercent < 0 || t.DiscountPercent > 100 {
			return fmt.Errorf("%w: tier %d percentages out of range", ErrInvalidRules, t.Level)
		}
	}
	if r.MaxRedemptionPercent <= 0 || r.MaxRedemptionPercent > 100 {
		return fmt.Errorf("%w: max_redemption_percent must be in (0, 100]", ErrInvalidRules)
	}
	if len(r.RFM.RecencyDays) != 4 || len(r.RFM.Frequency) != 4 || len(r.RFM.Monetary) != 4 {
		return fmt.Errorf("%w: rfm thresholds need exactly 4 cut points each", ErrInvalidRules)
	}
	if r.Queues.Weights.MonetaryUnit <= 0 {
		return fmt.Errorf("%w: weights.monetary_unit must be positive", ErrInvalidRules)
	}
	return nil
}
