package importer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCols() columnSet {
	phone, gross, hourly, cash, tips := 2, 5, 6, 7, 8
	return columnSet{
		Name:        0,
		Email:       1,
		Phone:       &phone,
		DriverID:    3,
		UniqueID:    4,
		GrossTotal:  &gross,
		HourlyGross: &hourly,
		CashTaken:   &cash,
		Tips:        &tips,
	}
}

func TestParseRow(t *testing.T) {
	cells := []string{
		"Jan Novák", "Jan.Novak@Example.COM", "+420777123456",
		"D-42", "U-1001", "6400,50", "160,01", "1500", "120",
	}

	cand := parseRow(cells, testCols())
	require.NotNil(t, cand)

	assert.Equal(t, "jan.novak@example.com", cand.Email)
	require.NotNil(t, cand.Name)
	assert.Equal(t, "Jan Novák", *cand.Name)
	require.NotNil(t, cand.UniqueID)
	assert.Equal(t, "U-1001", *cand.UniqueID)
	require.NotNil(t, cand.GrossTotal)
	assert.True(t, cand.GrossTotal.Equal(decimal.NewFromFloat(6400.50)))
	require.NotNil(t, cand.CashTaken)
	assert.True(t, cand.CashTaken.Equal(decimal.NewFromInt(1500)))
}

func TestParseRow_NoEmail(t *testing.T) {
	cells := []string{"Jan Novák", "  ", "", "D-42", "U-1001"}
	assert.Nil(t, parseRow(cells, testCols()))
}

func TestParseRow_ShortRow(t *testing.T) {
	// A row truncated before the money columns still parses.
	cells := []string{"Jan", "jan@example.com", "", "D-1", "U-1"}

	cand := parseRow(cells, testCols())
	require.NotNil(t, cand)
	assert.Nil(t, cand.GrossTotal)
	assert.Nil(t, cand.Tips)
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"6400,50", "6400.5", true},
		{"6400.50", "6400.5", true},
		{"1 234,56", "1234.56", true},
		{"-120", "-120", true},
		{"0", "0", true},
		{"", "", false},
		{"   ", "", false},
		{"n/a", "", false},
		{"12,34,56", "", false},
	}
	for _, c := range cases {
		got := parseAmount(c.input)
		if !c.ok {
			assert.Nil(t, got, "input %q", c.input)
			continue
		}
		require.NotNil(t, got, "input %q", c.input)
		assert.True(t, got.Equal(dec(c.want)), "input %q got %s", c.input, got)
	}
}

func TestParseAmount_NonBreakingSpaceThousands(t *testing.T) {
	got := parseAmount("1\u00a0234,56")
	require.NotNil(t, got)
	assert.True(t, got.Equal(dec("1234.56")))
}

func TestHoursWorked(t *testing.T) {
	gross := dec("6400")
	hourly := dec("160")
	cand := &rowCandidate{GrossTotal: &gross, HourlyGross: &hourly}
	assert.True(t, cand.HoursWorked().Equal(dec("40")))
}

func TestHoursWorked_Rounding(t *testing.T) {
	gross := dec("1000")
	hourly := dec("155")
	cand := &rowCandidate{GrossTotal: &gross, HourlyGross: &hourly}
	// 1000/155 = 6.4516... rounds to 6.45
	assert.True(t, cand.HoursWorked().Equal(dec("6.45")))
}

func TestHoursWorked_MissingOrZeroHourly(t *testing.T) {
	gross := dec("1000")
	zero := decimal.Zero

	assert.True(t, (&rowCandidate{GrossTotal: &gross}).HoursWorked().IsZero())
	assert.True(t, (&rowCandidate{GrossTotal: &gross, HourlyGross: &zero}).HoursWorked().IsZero())
	assert.True(t, (&rowCandidate{}).HoursWorked().IsZero())
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
