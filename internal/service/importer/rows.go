package importer

import (
	"strings"

	"github.com/shopspring/decimal"
)

// rowCandidate is one data row extracted from an export, before driver
// resolution and persistence.
type rowCandidate struct {
	Email    string
	Name     *string
	Contact  *string
	DriverID *string
	UniqueID *string

	GrossTotal  *decimal.Decimal
	Tips        *decimal.Decimal
	HourlyGross *decimal.Decimal
	CashTaken   *decimal.Decimal
}

// parseRow extracts one candidate record. A row without an e-mail never
// reaches persistence and returns nil; it is neither imported nor
// counted as skipped.
func parseRow(cells []string, cols columnSet) *rowCandidate {
	email := strings.ToLower(strings.TrimSpace(cell(cells, cols.Email)))
	if email == "" {
		return nil
	}

	cand := &rowCandidate{Email: email}
	cand.Name = nonEmpty(cell(cells, cols.Name))
	cand.DriverID = nonEmpty(cell(cells, cols.DriverID))
	cand.UniqueID = nonEmpty(cell(cells, cols.UniqueID))
	cand.Contact = nonEmpty(cellOpt(cells, cols.Phone))

	cand.GrossTotal = parseAmount(cellOpt(cells, cols.GrossTotal))
	cand.Tips = parseAmount(cellOpt(cells, cols.Tips))
	cand.HourlyGross = parseAmount(cellOpt(cells, cols.HourlyGross))
	cand.CashTaken = parseAmount(cellOpt(cells, cols.CashTaken))

	return cand
}

// HoursWorked derives hours from the reported figures: grossTotal
// divided by the reported gross-per-hour, rounded half-up to two
// decimals. Zero when the hourly figure is absent or zero.
func (c *rowCandidate) HoursWorked() decimal.Decimal {
	if c.GrossTotal == nil || c.HourlyGross == nil || c.HourlyGross.IsZero() {
		return decimal.Zero
	}
	return c.GrossTotal.Div(*c.HourlyGross).Round(2)
}

// parseAmount tolerates native numeric cells and string cells with
// either "." or "," decimal separators. Anything unparsable degrades to
// nil rather than failing the row.
func parseAmount(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\u00a0", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

func cell(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}

func cellOpt(cells []string, idx *int) string {
	if idx == nil {
		return ""
	}
	return cell(cells, *idx)
}

func nonEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
