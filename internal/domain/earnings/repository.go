package earnings

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Repository defines data access for earnings records.
type Repository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id int) (Record, error)
	// ExistsInBatch checks the (uniqueIdentifier, batchId) natural key
	// used for de-duplication.
	ExistsInBatch(ctx context.Context, uniqueID string, batchID int) (bool, error)
	ListByBatch(ctx context.Context, batchID int) ([]Record, error)
	ListUnpaid(ctx context.Context) ([]Record, error)
	ListUnpaidByUser(ctx context.Context, userID int) ([]Record, error)
	// UpdateSettlement writes the recomputed balance and the per-type
	// cached sums; reopen forces paid=false.
	UpdateSettlement(ctx context.Context, id int, sums AdjustmentSums, settlement decimal.Decimal, reopen bool) error
	// UpdatePayment persists a payment application.
	UpdatePayment(ctx context.Context, id int, settlement, partiallyPaid decimal.Decimal, paid bool, paidAt *time.Time) error
}

// AdjustmentRepository defines data access for adjustment line items.
type AdjustmentRepository interface {
	ListByRecord(ctx context.Context, earningID int) ([]Adjustment, error)
	ListByRecordAndType(ctx context.Context, earningID int, typ AdjustmentType) ([]Adjustment, error)
	// ReplaceForType deletes all items of the type and inserts the new
	// list. Callers wrap this in a transaction together with the
	// settlement recompute.
	ReplaceForType(ctx context.Context, earningID int, typ AdjustmentType, items []Adjustment) error
	DeleteTypes(ctx context.Context, earningID int, types []AdjustmentType) error
}

// Service - adjustment ledger and payment tracking.
type Service interface {
	GetAdjustments(ctx context.Context, recordID int, typ AdjustmentType) ([]AdjustmentItemResponse, error)
	ReplaceAdjustments(ctx context.Context, recordID int, typ AdjustmentType, req AdjustmentRequest) error
	RecalculateForRoleChange(ctx context.Context, driverID int) error
	ApplyPayment(ctx context.Context, recordID int, req PayRequest) (PaymentResult, error)
	ListByBatch(ctx context.Context, batchID int) ([]Response, error)
	ListUnpaid(ctx context.Context) ([]Response, error)
	Statement(ctx context.Context, recordID int) ([]byte, error)
}
