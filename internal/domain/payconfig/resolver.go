package payconfig

// RateTable is a read-only snapshot of the tier and rule tables. It is
// loaded once per import (or per resolution request) and passed in
// explicitly, so resolution stays deterministic and testable.
type RateTable struct {
	Tiers []Tier // ordered by MinGross ascending
	Rules []Rule // evaluation order = table order
}

// ResolveRate determines the hourly rate for the given hours worked and
// reported gross-per-hour.
//
// Rules are checked first, in order: the first matching "set" rule
// replaces the rate outright, every matching "add" rule accumulates onto
// the tier-resolved base. Without any rule hit the first matching tier
// wins, and FallbackRate covers an empty or non-matching table.
func (t RateTable) ResolveRate(hoursWorked, grossPerHour float64) int {
	addTotal := 0
	for _, r := range t.Rules {
		if !r.Matches(hoursWorked) {
			continue
		}
		switch r.Mode {
		case ModeSet:
			return r.Adjustment
		case ModeAdd:
			addTotal += r.Adjustment
		}
	}

	base, ok := t.baseRate(grossPerHour)
	if !ok {
		base = FallbackRate
	}
	return base + addTotal
}

// Matches reports whether the hours-threshold check fires for this rule.
// Bonus rules fire above the threshold, under-hours rules below it.
func (r Rule) Matches(hoursWorked float64) bool {
	switch r.Type {
	case RuleBonusHours:
		return hoursWorked > float64(r.Hours)
	case RuleUnderHours, RuleMinHours:
		return hoursWorked < float64(r.Hours)
	default:
		return false
	}
}

func (t RateTable) baseRate(grossPerHour float64) (int, bool) {
	gross := int(grossPerHour)
	for _, tier := range t.Tiers {
		if gross >= tier.MinGross && (tier.MaxGross == nil || gross <= *tier.MaxGross) {
			return tier.RatePerHour, true
		}
	}
	return 0, false
}
