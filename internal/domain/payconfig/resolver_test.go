package payconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func defaultTable() RateTable {
	return RateTable{
		Tiers: []Tier{
			{ID: 1, MinGross: 0, MaxGross: intPtr(449), RatePerHour: 140},
			{ID: 2, MinGross: 450, MaxGross: intPtr(559), RatePerHour: 160},
			{ID: 3, MinGross: 560, MaxGross: intPtr(659), RatePerHour: 180},
			{ID: 4, MinGross: 660, MaxGross: intPtr(759), RatePerHour: 200},
			{ID: 5, MinGross: 760, MaxGross: nil, RatePerHour: 220},
		},
		Rules: []Rule{
			{ID: 1, Type: RuleUnderHours, Hours: 35, Adjustment: 130, Mode: ModeSet},
		},
	}
}

func TestResolveRate_TierSelection(t *testing.T) {
	table := defaultTable()

	cases := []struct {
		name  string
		gross float64
		want  int
	}{
		{"first tier", 300, 140},
		{"second tier", 500, 160},
		{"tier lower bound", 450, 160},
		{"tier upper bound", 559, 160},
		{"open-ended tier", 1200, 220},
		{"fraction truncates into lower tier", 449.9, 140},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := table.ResolveRate(40, c.gross)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestResolveRate_UnderHoursRuleOverridesTier(t *testing.T) {
	table := defaultTable()

	// 30 hours is below the 35-hour threshold, so the set rule wins
	// regardless of the gross figure.
	assert.Equal(t, 130, table.ResolveRate(30, 800))
	assert.Equal(t, 130, table.ResolveRate(34.99, 500))

	// At or above the threshold the tier applies.
	assert.Equal(t, 220, table.ResolveRate(35, 800))
	assert.Equal(t, 160, table.ResolveRate(40, 500))
}

func TestResolveRate_FirstSetRuleShortCircuits(t *testing.T) {
	table := defaultTable()
	table.Rules = []Rule{
		{Type: RuleUnderHours, Hours: 35, Adjustment: 130, Mode: ModeSet},
		{Type: RuleUnderHours, Hours: 35, Adjustment: 999, Mode: ModeSet},
	}

	assert.Equal(t, 130, table.ResolveRate(10, 500))
}

func TestResolveRate_AddRulesAccumulate(t *testing.T) {
	table := defaultTable()
	table.Rules = []Rule{
		{Type: RuleBonusHours, Hours: 50, Adjustment: 10, Mode: ModeAdd},
		{Type: RuleBonusHours, Hours: 60, Adjustment: 5, Mode: ModeAdd},
	}

	// 55 hours clears only the first threshold.
	assert.Equal(t, 170, table.ResolveRate(55, 500))
	// 65 hours clears both.
	assert.Equal(t, 175, table.ResolveRate(65, 500))
	// 40 hours clears neither.
	assert.Equal(t, 160, table.ResolveRate(40, 500))
}

func TestResolveRate_AddAppliesOnTopOfFallback(t *testing.T) {
	table := RateTable{
		Rules: []Rule{
			{Type: RuleBonusHours, Hours: 50, Adjustment: 10, Mode: ModeAdd},
		},
	}

	assert.Equal(t, FallbackRate+10, table.ResolveRate(60, 500))
}

func TestResolveRate_FallbackOnEmptyTable(t *testing.T) {
	var table RateTable
	assert.Equal(t, FallbackRate, table.ResolveRate(40, 500))
}

func TestResolveRate_FallbackOnGapBetweenTiers(t *testing.T) {
	table := RateTable{
		Tiers: []Tier{
			{MinGross: 0, MaxGross: intPtr(100), RatePerHour: 140},
			{MinGross: 200, MaxGross: nil, RatePerHour: 180},
		},
	}

	assert.Equal(t, FallbackRate, table.ResolveRate(40, 150))
}

func TestRuleMatches(t *testing.T) {
	under := Rule{Type: RuleUnderHours, Hours: 35}
	assert.True(t, under.Matches(34.5))
	assert.False(t, under.Matches(35))
	assert.False(t, under.Matches(40))

	bonus := Rule{Type: RuleBonusHours, Hours: 50}
	assert.False(t, bonus.Matches(50))
	assert.True(t, bonus.Matches(50.5))

	unknown := Rule{Type: RuleType("weekend"), Hours: 10}
	assert.False(t, unknown.Matches(5))
}
