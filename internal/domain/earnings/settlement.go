package earnings

import "github.com/shopspring/decimal"

// paidTolerance is the magnitude under which a settlement counts as
// fully reconciled.
var paidTolerance = decimal.NewFromFloat(0.01)

// ServiceFeePct is the renter platform fee taken from the gross total.
var ServiceFeePct = decimal.NewFromFloat(0.04)

// AdjustmentSums holds the per-type totals of a record's adjustment
// items.
type AdjustmentSums struct {
	Bonus        decimal.Decimal
	Penalty      decimal.Decimal
	ServiceFee   decimal.Decimal
	RentalFee    decimal.Decimal
	VATDeduction decimal.Decimal
}

// SumAdjustments totals the given items by type.
func SumAdjustments(items []Adjustment) AdjustmentSums {
	var s AdjustmentSums
	for _, it := range items {
		switch it.Type {
		case TypeBonus:
			s.Bonus = s.Bonus.Add(it.Amount)
		case TypePenalty:
			s.Penalty = s.Penalty.Add(it.Amount)
		case TypeServiceFee:
			s.ServiceFee = s.ServiceFee.Add(it.Amount)
		case TypeRentalFee:
			s.RentalFee = s.RentalFee.Add(it.Amount)
		case TypeVATDeduction:
			s.VATDeduction = s.VATDeduction.Add(it.Amount)
		}
	}
	return s
}

// ComputeSettlement derives the authoritative balance:
//
//	earnings − cashTaken + bonus − penalty + serviceFee + rentalFee
//	+ vatDeduction − partiallyPaid
//
// Fee sums are stored negative, so adding them deducts.
func ComputeSettlement(baseEarnings, cashTaken decimal.Decimal, sums AdjustmentSums, partiallyPaid decimal.Decimal) decimal.Decimal {
	return baseEarnings.
		Sub(cashTaken).
		Add(sums.Bonus).
		Sub(sums.Penalty).
		Add(sums.ServiceFee).
		Add(sums.RentalFee).
		Add(sums.VATDeduction).
		Sub(partiallyPaid)
}

// IsSettled reports whether the balance is zero within tolerance.
func IsSettled(settlement decimal.Decimal) bool {
	return settlement.Abs().LessThan(paidTolerance)
}

// PaymentOutcome is the result of applying one payment.
type PaymentOutcome struct {
	Settlement    decimal.Decimal
	PartiallyPaid decimal.Decimal
	FullyPaid     bool
	Applied       decimal.Decimal
}

// ApplyPaymentAmount reduces the settlement magnitude by the payment.
// The direction follows the settlement sign: a negative settlement means
// the driver owes the company, so the payment moves it toward zero from
// below. Overpayment is not clamped and flips the balance direction.
func ApplyPaymentAmount(settlement, partiallyPaid, amount decimal.Decimal) PaymentOutcome {
	payment := amount.Abs()

	var next decimal.Decimal
	if settlement.IsNegative() {
		next = settlement.Add(payment)
	} else {
		next = settlement.Sub(payment)
	}

	if IsSettled(next) {
		return PaymentOutcome{
			Settlement:    decimal.Zero,
			PartiallyPaid: decimal.Zero,
			FullyPaid:     true,
			Applied:       payment,
		}
	}
	return PaymentOutcome{
		Settlement:    next,
		PartiallyPaid: partiallyPaid.Add(payment),
		FullyPaid:     false,
		Applied:       payment,
	}
}
