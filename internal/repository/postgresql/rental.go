package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jezdibolt/backend-go/internal/domain/rental"
	"github.com/jezdibolt/backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type rentalRepository struct {
	db *database.DB
}

func NewRentalRepository(db *database.DB) rental.Repository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) WeeklyPrice(ctx context.Context, userID int) (*decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	var price decimal.Decimal
	err := q.QueryRow(ctx,
		`SELECT price_per_week FROM rental_records WHERE user_id = $1`, userID,
	).Scan(&price)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rental price: %w", err)
	}

	return &price, nil
}
