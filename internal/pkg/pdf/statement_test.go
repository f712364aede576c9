package pdf

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderStatement_CzechDiacritics(t *testing.T) {
	out, err := RenderStatement(StatementData{
		DriverName:  "Jiří Dvořák",
		Email:       "jiri.dvorak@example.com",
		Week:        "2026-W05",
		Company:     "Žlutá Flotila s.r.o.",
		HoursWorked: decimal.NewFromInt(42),
		AppliedRate: 160,
		Earnings:    decimal.NewFromInt(6720),
		Settlement:  decimal.NewFromInt(6720),
	})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Greater(t, len(out), 500)
}

func TestRenderStatement_PaidStatus(t *testing.T) {
	out, err := RenderStatement(StatementData{
		DriverName: "Jan Novak",
		Email:      "jan.novak@example.com",
		Week:       "2026-W06",
		Company:    "Fleet",
		Paid:       true,
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
