package earnings

import "errors"

var (
	ErrRecordNotFound        = errors.New("earnings record not found")
	ErrInvalidPaymentAmount  = errors.New("invalid payment amount")
	ErrUnknownAdjustmentType = errors.New("unknown adjustment type")
)
