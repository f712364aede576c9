package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jezdibolt/backend-go/internal/domain/earnings"
	"github.com/jezdibolt/backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type earningsRepository struct {
	db *database.DB
}

func NewEarningsRepository(db *database.DB) earnings.Repository {
	return &earningsRepository{db: db}
}

const earningsColumns = `
	e.id, e.user_id, e.batch_id, e.driver_identifier, e.unique_identifier,
	e.gross_total_kc, e.tips_kc, e.hourly_gross_kc, e.cash_taken_kc,
	e.hours_worked, e.applied_rate, e.earnings_kc, e.settlement_kc,
	e.partially_paid_kc, e.paid, e.paid_at,
	e.bonus_kc, e.penalty_kc, e.rental_fee_kc, e.service_fee_kc, e.vat_deduction_kc,
	u.name, u.email, u.role
`

func scanEarningsRow(row pgx.Row) (earnings.Record, error) {
	var rec earnings.Record
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.BatchID, &rec.DriverIdentifier, &rec.UniqueIdentifier,
		&rec.GrossTotal, &rec.Tips, &rec.HourlyGross, &rec.CashTaken,
		&rec.HoursWorked, &rec.AppliedRate, &rec.Earnings, &rec.Settlement,
		&rec.PartiallyPaid, &rec.Paid, &rec.PaidAt,
		&rec.Bonus, &rec.Penalty, &rec.RentalFee, &rec.ServiceFee, &rec.VATDeduction,
		&rec.UserName, &rec.Email, &rec.Role,
	)
	return rec, err
}

func (r *earningsRepository) Create(ctx context.Context, rec earnings.Record) (earnings.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bolt_earnings (
			user_id, batch_id, driver_identifier, unique_identifier,
			gross_total_kc, tips_kc, hourly_gross_kc, cash_taken_kc,
			hours_worked, applied_rate, earnings_kc, settlement_kc
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		rec.UserID, rec.BatchID, rec.DriverIdentifier, rec.UniqueIdentifier,
		rec.GrossTotal, rec.Tips, rec.HourlyGross, rec.CashTaken,
		rec.HoursWorked, rec.AppliedRate, rec.Earnings, rec.Settlement,
	).Scan(&rec.ID)
	if err != nil {
		return earnings.Record{}, fmt.Errorf("failed to create earnings record: %w", err)
	}

	return rec, nil
}

func (r *earningsRepository) GetByID(ctx context.Context, id int) (earnings.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM bolt_earnings e
		JOIN users u ON u.id = e.user_id
		WHERE e.id = $1
	`, earningsColumns)

	rec, err := scanEarningsRow(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return earnings.Record{}, earnings.ErrRecordNotFound
		}
		return earnings.Record{}, fmt.Errorf("failed to get earnings record: %w", err)
	}

	return rec, nil
}

func (r *earningsRepository) ExistsInBatch(ctx context.Context, uniqueID string, batchID int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM bolt_earnings WHERE unique_identifier = $1 AND batch_id = $2)`,
		uniqueID, batchID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check earnings duplicate: %w", err)
	}

	return exists, nil
}

func (r *earningsRepository) list(ctx context.Context, where string, args ...interface{}) ([]earnings.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM bolt_earnings e
		JOIN users u ON u.id = e.user_id
		WHERE %s
		ORDER BY e.id DESC
	`, earningsColumns, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list earnings records: %w", err)
	}
	defer rows.Close()

	var records []earnings.Record
	for rows.Next() {
		rec, err := scanEarningsRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan earnings record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *earningsRepository) ListByBatch(ctx context.Context, batchID int) ([]earnings.Record, error) {
	return r.list(ctx, "e.batch_id = $1", batchID)
}

func (r *earningsRepository) ListUnpaid(ctx context.Context) ([]earnings.Record, error) {
	return r.list(ctx, "e.paid = false OR e.partially_paid_kc > 0")
}

func (r *earningsRepository) ListUnpaidByUser(ctx context.Context, userID int) ([]earnings.Record, error) {
	return r.list(ctx, "e.user_id = $1 AND e.paid = false", userID)
}

func (r *earningsRepository) UpdateSettlement(ctx context.Context, id int, sums earnings.AdjustmentSums, settlement decimal.Decimal, reopen bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE bolt_earnings
		SET bonus_kc = $2,
			penalty_kc = $3,
			service_fee_kc = $4,
			rental_fee_kc = $5,
			vat_deduction_kc = $6,
			settlement_kc = $7,
			paid = CASE WHEN $8 THEN false ELSE paid END
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		id, sums.Bonus, sums.Penalty, sums.ServiceFee, sums.RentalFee, sums.VATDeduction,
		settlement, reopen,
	)
	if err != nil {
		return fmt.Errorf("failed to update settlement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return earnings.ErrRecordNotFound
	}

	return nil
}

func (r *earningsRepository) UpdatePayment(ctx context.Context, id int, settlement, partiallyPaid decimal.Decimal, paid bool, paidAt *time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE bolt_earnings
		SET settlement_kc = $2,
			partially_paid_kc = $3,
			paid = $4,
			paid_at = $5
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, settlement, partiallyPaid, paid, paidAt)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return earnings.ErrRecordNotFound
	}

	return nil
}
