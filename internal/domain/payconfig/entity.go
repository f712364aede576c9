package payconfig

// FallbackRate is applied when no tier matches and no rule fires, so a
// payout never ends up without a rate.
const FallbackRate = 130

// RuleType enum
type RuleType string

const (
	RuleUnderHours RuleType = "under_hours"
	RuleMinHours   RuleType = "min_hours"
	RuleBonusHours RuleType = "bonus_hours"
)

// RuleMode enum
type RuleMode string

const (
	ModeSet RuleMode = "set"
	ModeAdd RuleMode = "add"
)

// Tier - one row of the tiered hourly-rate table. MaxGross nil means the
// tier is unbounded above.
type Tier struct {
	ID          int
	MinGross    int
	MaxGross    *int
	RatePerHour int
}

// Rule - an override applied on top of the tier lookup.
type Rule struct {
	ID         int
	Type       RuleType
	Hours      int
	Adjustment int
	Mode       RuleMode
}
