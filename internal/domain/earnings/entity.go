package earnings

import (
	"time"

	"github.com/jezdibolt/backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

// AdjustmentType enum
type AdjustmentType string

const (
	TypeBonus        AdjustmentType = "BONUS"
	TypePenalty      AdjustmentType = "PENALTY"
	TypeRentalFee    AdjustmentType = "RENTAL_FEE"
	TypeServiceFee   AdjustmentType = "SERVICE_FEE"
	TypeVATDeduction AdjustmentType = "VAT_DEDUCTION"
)

// Record - one driver's computed result for one imported batch.
//
// Bonus, Penalty, RentalFee, ServiceFee and VATDeduction are caches of
// the adjustment-item sums, written only by settlement recomputation.
type Record struct {
	ID      int
	UserID  int
	BatchID int

	DriverIdentifier *string
	UniqueIdentifier *string

	// Raw imported figures; nil when the column was absent or the cell
	// unparsable.
	GrossTotal  *decimal.Decimal
	Tips        *decimal.Decimal
	HourlyGross *decimal.Decimal
	CashTaken   *decimal.Decimal

	// Derived figures
	HoursWorked decimal.Decimal
	AppliedRate *int
	Earnings    *decimal.Decimal
	Settlement  *decimal.Decimal

	PartiallyPaid decimal.Decimal
	Paid          bool
	PaidAt        *time.Time

	Bonus        decimal.Decimal
	Penalty      decimal.Decimal
	RentalFee    decimal.Decimal
	ServiceFee   decimal.Decimal
	VATDeduction decimal.Decimal

	// Joined fields
	UserName string
	Email    string
	Role     user.Role
}

// Adjustment - one bonus/penalty/fee line item. Deductions carry a
// negative amount, penalties are stored positive and subtracted during
// recomputation.
type Adjustment struct {
	ID        int
	EarningID int
	Type      AdjustmentType
	Category  string
	Amount    decimal.Decimal
	Note      *string
	CreatedAt time.Time
}
