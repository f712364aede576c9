package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// StatementData holds everything rendered onto a settlement statement.
type StatementData struct {
	DriverName    string
	Email         string
	Week          string
	Company       string
	HoursWorked   decimal.Decimal
	AppliedRate   int
	Earnings      decimal.Decimal
	CashTaken     decimal.Decimal
	Bonus         decimal.Decimal
	Penalty       decimal.Decimal
	RentalFee     decimal.Decimal
	ServiceFee    decimal.Decimal
	VATDeduction  decimal.Decimal
	PartiallyPaid decimal.Decimal
	Settlement    decimal.Decimal
	Paid          bool
}

// RenderStatement produces a one-page settlement statement PDF.
func RenderStatement(data StatementData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; driver and company names carry Czech
	// diacritics, so route text through the cp1250 translator.
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1250")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Settlement statement")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Driver: %s", data.DriverName)))
	pdf.Ln(7)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Email: %s", data.Email)))
	pdf.Ln(7)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Week: %s  Company: %s", data.Week, data.Company)))
	pdf.Ln(10)

	line := func(label string, v decimal.Decimal) {
		pdf.Cell(0, 8, fmt.Sprintf("%s: %s Kc", label, v.StringFixed(2)))
		pdf.Ln(7)
	}

	pdf.Cell(0, 8, fmt.Sprintf("Hours worked: %s at %d Kc/h", data.HoursWorked.StringFixed(2), data.AppliedRate))
	pdf.Ln(7)
	line("Earnings", data.Earnings)
	line("Cash taken", data.CashTaken)
	line("Bonus", data.Bonus)
	line("Penalty", data.Penalty)
	line("Rental fee", data.RentalFee)
	line("Service fee", data.ServiceFee)
	line("VAT deduction", data.VATDeduction)
	line("Partially paid", data.PartiallyPaid)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	status := "open"
	if data.Paid {
		status = "paid"
	}
	pdf.Cell(0, 8, fmt.Sprintf("Settlement: %s Kc (%s)", data.Settlement.StringFixed(2), status))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
