package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jezdibolt/backend-go/internal/domain/payconfig"
	"github.com/jezdibolt/backend-go/internal/pkg/database"
)

type payConfigRepository struct {
	db *database.DB
}

func NewPayConfigRepository(db *database.DB) payconfig.Repository {
	return &payConfigRepository{db: db}
}

func (r *payConfigRepository) ListTiers(ctx context.Context) ([]payconfig.Tier, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, min_gross, max_gross, rate_per_hour FROM pay_rates ORDER BY min_gross ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay rate tiers: %w", err)
	}
	defer rows.Close()

	var tiers []payconfig.Tier
	for rows.Next() {
		var t payconfig.Tier
		if err := rows.Scan(&t.ID, &t.MinGross, &t.MaxGross, &t.RatePerHour); err != nil {
			return nil, fmt.Errorf("failed to scan pay rate tier: %w", err)
		}
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}

func (r *payConfigRepository) ListRules(ctx context.Context) ([]payconfig.Rule, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, type, hours, adjustment, mode FROM pay_rules ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay rules: %w", err)
	}
	defer rows.Close()

	var rules []payconfig.Rule
	for rows.Next() {
		var rule payconfig.Rule
		if err := rows.Scan(&rule.ID, &rule.Type, &rule.Hours, &rule.Adjustment, &rule.Mode); err != nil {
			return nil, fmt.Errorf("failed to scan pay rule: %w", err)
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

func (r *payConfigRepository) UpdateTier(ctx context.Context, req payconfig.UpdateTierRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{}
	args := []interface{}{req.ID}

	if req.MinGross != nil {
		args = append(args, *req.MinGross)
		sets = append(sets, fmt.Sprintf("min_gross = $%d", len(args)))
	}
	if req.Unbounded != nil && *req.Unbounded {
		sets = append(sets, "max_gross = NULL")
	} else if req.MaxGross != nil {
		args = append(args, *req.MaxGross)
		sets = append(sets, fmt.Sprintf("max_gross = $%d", len(args)))
	}
	if req.RatePerHour != nil {
		args = append(args, *req.RatePerHour)
		sets = append(sets, fmt.Sprintf("rate_per_hour = $%d", len(args)))
	}
	if len(sets) == 0 {
		return nil
	}

	tag, err := q.Exec(ctx,
		fmt.Sprintf("UPDATE pay_rates SET %s WHERE id = $1", strings.Join(sets, ", ")),
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to update pay rate tier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payconfig.ErrTierNotFound
	}
	return nil
}

func (r *payConfigRepository) UpdateRule(ctx context.Context, req payconfig.UpdateRuleRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{}
	args := []interface{}{req.ID}

	if req.Type != nil {
		args = append(args, *req.Type)
		sets = append(sets, fmt.Sprintf("type = $%d", len(args)))
	}
	if req.Hours != nil {
		args = append(args, *req.Hours)
		sets = append(sets, fmt.Sprintf("hours = $%d", len(args)))
	}
	if req.Adjustment != nil {
		args = append(args, *req.Adjustment)
		sets = append(sets, fmt.Sprintf("adjustment = $%d", len(args)))
	}
	if req.Mode != nil {
		args = append(args, *req.Mode)
		sets = append(sets, fmt.Sprintf("mode = $%d", len(args)))
	}
	if len(sets) == 0 {
		return nil
	}

	tag, err := q.Exec(ctx,
		fmt.Sprintf("UPDATE pay_rules SET %s WHERE id = $1", strings.Join(sets, ", ")),
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to update pay rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payconfig.ErrRuleNotFound
	}
	return nil
}

func (r *payConfigRepository) SeedDefaults(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	var tierCount int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM pay_rates`).Scan(&tierCount); err != nil {
		return fmt.Errorf("failed to count pay rate tiers: %w", err)
	}
	if tierCount == 0 {
		_, err := q.Exec(ctx, `
			INSERT INTO pay_rates (min_gross, max_gross, rate_per_hour) VALUES
				(0, 449, 140),
				(450, 559, 160),
				(560, 659, 180),
				(660, 759, 200),
				(760, NULL, 220)
		`)
		if err != nil {
			return fmt.Errorf("failed to seed pay rate tiers: %w", err)
		}
	}

	var ruleCount int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM pay_rules`).Scan(&ruleCount); err != nil {
		return fmt.Errorf("failed to count pay rules: %w", err)
	}
	if ruleCount == 0 {
		_, err := q.Exec(ctx, `
			INSERT INTO pay_rules (type, hours, adjustment, mode)
			VALUES ('under_hours', 35, 130, 'set')
		`)
		if err != nil {
			return fmt.Errorf("failed to seed pay rules: %w", err)
		}
	}

	return nil
}
