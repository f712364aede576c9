package payconfig

import "context"

// Repository defines data access for the tier and rule tables.
type Repository interface {
	ListTiers(ctx context.Context) ([]Tier, error)
	ListRules(ctx context.Context) ([]Rule, error)
	UpdateTier(ctx context.Context, req UpdateTierRequest) error
	UpdateRule(ctx context.Context, req UpdateRuleRequest) error
	// SeedDefaults fills the tables with the stock configuration when
	// they are empty. Idempotent.
	SeedDefaults(ctx context.Context) error
}

// Service - pay configuration administration plus rate resolution.
type Service interface {
	ListTiers(ctx context.Context) ([]TierResponse, error)
	ListRules(ctx context.Context) ([]RuleResponse, error)
	UpdateTier(ctx context.Context, req UpdateTierRequest) error
	UpdateRule(ctx context.Context, req UpdateRuleRequest) error
	// Snapshot loads the current rate table for injection into the
	// import pipeline and ad-hoc resolution.
	Snapshot(ctx context.Context) (RateTable, error)
	ResolveRate(ctx context.Context, hoursWorked, grossPerHour float64) (int, error)
}
