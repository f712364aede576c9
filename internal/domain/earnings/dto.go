package earnings

import (
	"github.com/jezdibolt/backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AdjustmentItemResponse struct {
	ID       int             `json:"id"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"` // absolute value for display
	Note     *string         `json:"note"`
}

type AdjustmentItemInput struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Note     *string         `json:"note,omitempty"`
}

type AdjustmentRequest struct {
	Items []AdjustmentItemInput `json:"items"`
}

func (r *AdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	for _, item := range r.Items {
		if validator.IsEmpty(item.Category) {
			errs = append(errs, validator.ValidationError{Field: "items", Message: "category is required"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayRequest struct {
	Amount string `json:"amount"`
}

type PaymentStatus string

const (
	PaymentFullyPaid     PaymentStatus = "fully_paid"
	PaymentPartiallyPaid PaymentStatus = "partially_paid"
)

type PaymentResult struct {
	Status PaymentStatus   `json:"status"`
	Amount decimal.Decimal `json:"amount"`
}

// Response mirrors one earnings row for the back office, with joined
// user fields.
type Response struct {
	ID            int             `json:"id"`
	UserID        int             `json:"user_id"`
	BatchID       int             `json:"batch_id"`
	UserName      string          `json:"user_name"`
	Email         string          `json:"email"`
	Role          string          `json:"role"`
	HoursWorked   decimal.Decimal `json:"hours_worked"`
	AppliedRate   int             `json:"applied_rate"`
	GrossTotal    decimal.Decimal `json:"gross_total"`
	Earnings      decimal.Decimal `json:"earnings"`
	CashTaken     decimal.Decimal `json:"cash_taken"`
	Bonus         decimal.Decimal `json:"bonus"`
	Penalty       decimal.Decimal `json:"penalty"`
	RentalFee     decimal.Decimal `json:"rental_fee"`
	ServiceFee    decimal.Decimal `json:"service_fee"`
	VATDeduction  decimal.Decimal `json:"vat_deduction"`
	PartiallyPaid decimal.Decimal `json:"partially_paid"`
	Settlement    decimal.Decimal `json:"settlement"`
	Paid          bool            `json:"paid"`
}
