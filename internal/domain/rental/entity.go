package rental

import "github.com/shopspring/decimal"

// RentalRecord - one weekly rental price per user
type RentalRecord struct {
	ID           int
	UserID       int
	PricePerWeek decimal.Decimal
}
