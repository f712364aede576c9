package earnings

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSumAdjustments(t *testing.T) {
	items := []Adjustment{
		{Type: TypeBonus, Amount: dec("100")},
		{Type: TypeBonus, Amount: dec("50")},
		{Type: TypePenalty, Amount: dec("200")},
		{Type: TypeServiceFee, Amount: dec("-120")},
		{Type: TypeRentalFee, Amount: dec("-3000")},
		{Type: TypeVATDeduction, Amount: dec("-90")},
	}

	sums := SumAdjustments(items)
	assert.True(t, sums.Bonus.Equal(dec("150")))
	assert.True(t, sums.Penalty.Equal(dec("200")))
	assert.True(t, sums.ServiceFee.Equal(dec("-120")))
	assert.True(t, sums.RentalFee.Equal(dec("-3000")))
	assert.True(t, sums.VATDeduction.Equal(dec("-90")))
}

func TestComputeSettlement(t *testing.T) {
	sums := AdjustmentSums{
		Bonus:        dec("150"),
		Penalty:      dec("200"),
		ServiceFee:   dec("-120"),
		RentalFee:    dec("-3000"),
		VATDeduction: dec("-90"),
	}

	// 10000 - 2000 + 150 - 200 - 120 - 3000 - 90 - 500 = 4240
	got := ComputeSettlement(dec("10000"), dec("2000"), sums, dec("500"))
	assert.True(t, got.Equal(dec("4240")), "got %s", got)
}

func TestComputeSettlement_Empty(t *testing.T) {
	got := ComputeSettlement(dec("6400"), dec("1500"), AdjustmentSums{}, decimal.Zero)
	assert.True(t, got.Equal(dec("4900")))
}

func TestIsSettled(t *testing.T) {
	assert.True(t, IsSettled(decimal.Zero))
	assert.True(t, IsSettled(dec("0.009")))
	assert.True(t, IsSettled(dec("-0.009")))
	assert.False(t, IsSettled(dec("0.01")))
	assert.False(t, IsSettled(dec("-5")))
}

func TestApplyPaymentAmount_PartialThenFull(t *testing.T) {
	// Two 300 payments settle a 600 balance.
	first := ApplyPaymentAmount(dec("600"), decimal.Zero, dec("300"))
	assert.False(t, first.FullyPaid)
	assert.True(t, first.Settlement.Equal(dec("300")))
	assert.True(t, first.PartiallyPaid.Equal(dec("300")))

	second := ApplyPaymentAmount(first.Settlement, first.PartiallyPaid, dec("300"))
	assert.True(t, second.FullyPaid)
	assert.True(t, second.Settlement.Equal(decimal.Zero))
	assert.True(t, second.PartiallyPaid.Equal(decimal.Zero))
}

func TestApplyPaymentAmount_SinglePaymentSettles(t *testing.T) {
	out := ApplyPaymentAmount(dec("600"), decimal.Zero, dec("600"))
	assert.True(t, out.FullyPaid)
	assert.True(t, out.Settlement.Equal(decimal.Zero))
	assert.True(t, out.Applied.Equal(dec("600")))
}

func TestApplyPaymentAmount_NegativeSettlementMovesUp(t *testing.T) {
	// Driver owes 400; a 150 payment shrinks the debt.
	out := ApplyPaymentAmount(dec("-400"), decimal.Zero, dec("150"))
	assert.False(t, out.FullyPaid)
	assert.True(t, out.Settlement.Equal(dec("-250")))
	assert.True(t, out.PartiallyPaid.Equal(dec("150")))
}

func TestApplyPaymentAmount_SignOfAmountIgnored(t *testing.T) {
	out := ApplyPaymentAmount(dec("500"), decimal.Zero, dec("-200"))
	assert.True(t, out.Settlement.Equal(dec("300")))
	assert.True(t, out.Applied.Equal(dec("200")))
}

func TestApplyPaymentAmount_OverpaymentFlipsDirection(t *testing.T) {
	out := ApplyPaymentAmount(dec("100"), decimal.Zero, dec("150"))
	assert.False(t, out.FullyPaid)
	assert.True(t, out.Settlement.Equal(dec("-50")))
}

func TestApplyPaymentAmount_WithinTolerance(t *testing.T) {
	out := ApplyPaymentAmount(dec("299.995"), decimal.Zero, dec("300"))
	assert.True(t, out.FullyPaid)
	assert.True(t, out.Settlement.Equal(decimal.Zero))
}
