package rental

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository - rental price lookup consumed by the earnings core.
type Repository interface {
	// WeeklyPrice returns nil when the user has no rental record.
	WeeklyPrice(ctx context.Context, userID int) (*decimal.Decimal, error)
}
