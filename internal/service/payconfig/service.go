package payconfig

import (
	"context"

	"github.com/jezdibolt/backend-go/internal/domain/payconfig"
)

type PayConfigServiceImpl struct {
	repo payconfig.Repository
}

func NewPayConfigService(repo payconfig.Repository) payconfig.Service {
	return &PayConfigServiceImpl{repo: repo}
}

func (s *PayConfigServiceImpl) ListTiers(ctx context.Context) ([]payconfig.TierResponse, error) {
	tiers, err := s.repo.ListTiers(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]payconfig.TierResponse, 0, len(tiers))
	for _, t := range tiers {
		responses = append(responses, payconfig.TierResponse{
			ID:          t.ID,
			MinGross:    t.MinGross,
			MaxGross:    t.MaxGross,
			RatePerHour: t.RatePerHour,
		})
	}
	return responses, nil
}

func (s *PayConfigServiceImpl) ListRules(ctx context.Context) ([]payconfig.RuleResponse, error) {
	rules, err := s.repo.ListRules(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]payconfig.RuleResponse, 0, len(rules))
	for _, r := range rules {
		responses = append(responses, payconfig.RuleResponse{
			ID:         r.ID,
			Type:       string(r.Type),
			Hours:      r.Hours,
			Adjustment: r.Adjustment,
			Mode:       string(r.Mode),
		})
	}
	return responses, nil
}

func (s *PayConfigServiceImpl) UpdateTier(ctx context.Context, req payconfig.UpdateTierRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.repo.UpdateTier(ctx, req)
}

func (s *PayConfigServiceImpl) UpdateRule(ctx context.Context, req payconfig.UpdateRuleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.repo.UpdateRule(ctx, req)
}

// Snapshot loads the full rate configuration once so callers can
// resolve many rows against a consistent view.
func (s *PayConfigServiceImpl) Snapshot(ctx context.Context) (payconfig.RateTable, error) {
	tiers, err := s.repo.ListTiers(ctx)
	if err != nil {
		return payconfig.RateTable{}, err
	}
	rules, err := s.repo.ListRules(ctx)
	if err != nil {
		return payconfig.RateTable{}, err
	}
	return payconfig.RateTable{Tiers: tiers, Rules: rules}, nil
}

func (s *PayConfigServiceImpl) ResolveRate(ctx context.Context, hoursWorked, grossPerHour float64) (int, error) {
	table, err := s.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return table.ResolveRate(hoursWorked, grossPerHour), nil
}
