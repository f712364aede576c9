package postgresql

import (
	"context"
	"fmt"

	"github.com/jezdibolt/backend-go/internal/domain/earnings"
	"github.com/jezdibolt/backend-go/internal/pkg/database"
)

type adjustmentRepository struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) earnings.AdjustmentRepository {
	return &adjustmentRepository{db: db}
}

func (r *adjustmentRepository) ListByRecord(ctx context.Context, earningID int) ([]earnings.Adjustment, error) {
	return r.list(ctx,
		`SELECT id, earning_id, type, category, amount, note, created_at
		 FROM earning_adjustments WHERE earning_id = $1 ORDER BY id`,
		earningID,
	)
}

func (r *adjustmentRepository) ListByRecordAndType(ctx context.Context, earningID int, typ earnings.AdjustmentType) ([]earnings.Adjustment, error) {
	return r.list(ctx,
		`SELECT id, earning_id, type, category, amount, note, created_at
		 FROM earning_adjustments WHERE earning_id = $1 AND type = $2 ORDER BY id`,
		earningID, typ,
	)
}

func (r *adjustmentRepository) list(ctx context.Context, query string, args ...interface{}) ([]earnings.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}
	defer rows.Close()

	var items []earnings.Adjustment
	for rows.Next() {
		var a earnings.Adjustment
		if err := rows.Scan(&a.ID, &a.EarningID, &a.Type, &a.Category, &a.Amount, &a.Note, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *adjustmentRepository) ReplaceForType(ctx context.Context, earningID int, typ earnings.AdjustmentType, items []earnings.Adjustment) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`DELETE FROM earning_adjustments WHERE earning_id = $1 AND type = $2`,
		earningID, typ,
	)
	if err != nil {
		return fmt.Errorf("failed to delete adjustments: %w", err)
	}

	for _, item := range items {
		_, err := q.Exec(ctx,
			`INSERT INTO earning_adjustments (earning_id, type, category, amount, note)
			 VALUES ($1, $2, $3, $4, $5)`,
			earningID, typ, item.Category, item.Amount, item.Note,
		)
		if err != nil {
			return fmt.Errorf("failed to insert adjustment: %w", err)
		}
	}

	return nil
}

func (r *adjustmentRepository) DeleteTypes(ctx context.Context, earningID int, types []earnings.AdjustmentType) error {
	q := GetQuerier(ctx, r.db)

	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}

	_, err := q.Exec(ctx,
		`DELETE FROM earning_adjustments WHERE earning_id = $1 AND type = ANY($2)`,
		earningID, names,
	)
	if err != nil {
		return fmt.Errorf("failed to delete adjustments: %w", err)
	}

	return nil
}
