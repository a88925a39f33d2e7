package tiers

import (
	"fmt"

	"loyalty-server/internal/config"
	"loyalty-server/internal/domain"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Level is one row of the loyalty tier table.
type Level struct {
	ID              int
	Name            string
	MinSpent        int64
	AccrualPercent  decimal.Decimal
	DiscountPercent decimal.Decimal
}

// Table is the ordered tier table plus the redemption cap.
type Table struct {
	levels               []Level
	maxRedemptionPercent decimal.Decimal
}

// Tier is the computed view of a customer's position in the table.
type Tier struct {
	LevelID         int     `json:"level_id"`
	Name            string  `json:"name"`
	AccrualPercent  float64 `json:"accrual_percent"`
	DiscountPercent float64 `json:"discount_percent"`
	NextLevel       *int    `json:"next_level"`
	ProgressPercent float64 `json:"progress_percent"`
	AmountToNext    int64   `json:"amount_to_next"`
	TotalSpent      int64   `json:"total_spent"`
}

// NewTable builds a Table from validated rules.
func NewTable(rules config.Rules) (*Table, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	levels := make([]Level, 0, len(rules.Tiers))
	for _, t := range rules.Tiers {
		levels = append(levels, Level{
			ID:              t.Level,
			Name:            t.Name,
			MinSpent:        t.MinSpent,
			AccrualPercent:  decimal.NewFromFloat(t.AccrualPercent),
			DiscountPercent: decimal.NewFromFloat(t.DiscountPercent),
		})
	}
	return &Table{
		levels:               levels,
		maxRedemptionPercent: decimal.NewFromFloat(rules.MaxRedemptionPercent),
	}, nil
}

// Levels returns a copy of the table ordered by ascending MinSpent.
func (t *Table) Levels() []Level {
	out := make([]Level, len(t.levels))
	copy(out, t.levels)
	return out
}

// LevelFor returns the id of the highest tier whose MinSpent <= totalSpent.
func (t *Table) LevelFor(totalSpent int64) int {
	return t.levels[t.indexFor(totalSpent)].ID
}

func (t *Table) indexFor(totalSpent int64) int {
	idx := 0
	for i, l := range t.levels {
		if l.MinSpent <= totalSpent {
			idx = i
		}
	}
	return idx
}

func (t *Table) level(levelID int) (Level, bool) {
	for _, l := range t.levels {
		if l.ID == levelID {
			return l, true
		}
	}
	return Level{}, false
}

// ComputeTier maps cumulative spend onto the table. A negative totalSpent is
// treated as the first tier with zero progress; the returned error is then a
// *domain.DataIntegrityWarning and the Tier is still usable.
func (t *Table) ComputeTier(totalSpent int64) (Tier, error) {
	var warning error
	if totalSpent < 0 {
		warning = &domain.DataIntegrityWarning{
			Subject: "total_spent",
			Detail:  fmt.Sprintf("negative cumulative spend %d", totalSpent),
		}
		first := t.levels[0]
		tier := Tier{
			LevelID:         first.ID,
			Name:            first.Name,
			AccrualPercent:  first.AccrualPercent.InexactFloat64(),
			DiscountPercent: first.DiscountPercent.InexactFloat64(),
			TotalSpent:      totalSpent,
		}
		if len(t.levels) > 1 {
			next := t.levels[1]
			tier.NextLevel = &next.ID
			tier.AmountToNext = max(0, next.MinSpent-totalSpent)
		} else {
			tier.ProgressPercent = 100
		}
		return tier, warning
	}

	idx := t.indexFor(totalSpent)
	current := t.levels[idx]
	tier := Tier{
		LevelID:         current.ID,
		Name:            current.Name,
		AccrualPercent:  current.AccrualPercent.InexactFloat64(),
		DiscountPercent: current.DiscountPercent.InexactFloat64(),
		TotalSpent:      totalSpent,
	}

	if idx == len(t.levels)-1 {
		tier.ProgressPercent = 100
		return tier, nil
	}

	next := t.levels[idx+1]
	tier.NextLevel = &next.ID
	tier.AmountToNext = max(0, next.MinSpent-totalSpent)

	progress := decimal.NewFromInt(totalSpent - current.MinSpent).
		Div(decimal.NewFromInt(next.MinSpent - current.MinSpent)).
		Mul(hundred)
	if progress.LessThan(decimal.Zero) {
		progress = decimal.Zero
	}
	if progress.GreaterThan(hundred) {
		progress = hundred
	}
	tier.ProgressPercent = progress.Round(2).InexactFloat64()

	return tier, nil
}

// ComputeBonus returns amount * accrual% of levelID, rounded half away from zero.
func (t *Table) ComputeBonus(amount int64, levelID int) (int64, error) {
	if amount < 0 {
		return 0, domain.NewValidationError("amount", "must not be negative")
	}
	l, ok := t.level(levelID)
	if !ok {
		return 0, domain.NewValidationError("level_id", fmt.Sprintf("unknown loyalty level %d", levelID))
	}
	return percentOf(amount, l.AccrualPercent), nil
}

// ComputeMaxRedemption caps a redemption at the configured share of the
// check and at the available balance, whichever binds first.
func (t *Table) ComputeMaxRedemption(checkAmount, balance int64) int64 {
	if checkAmount <= 0 || balance <= 0 {
		return 0
	}
	return min(percentOf(checkAmount, t.maxRedemptionPercent), balance)
}

func percentOf(amount int64, percent decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(percent).Div(hundred).Round(0).IntPart()
}
