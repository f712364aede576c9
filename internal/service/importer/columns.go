package importer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jezdibolt/backend-go/internal/domain/importer"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// columnSet holds the resolved indexes of the semantic columns in one
// export's header row. Optional columns are nil when the export does not
// carry them.
type columnSet struct {
	Name     int
	Email    int
	DriverID int
	UniqueID int

	Phone       *int
	GrossTotal  *int
	HourlyGross *int
	CashTaken   *int
	Tips        *int
}

// The vendor renamed headers across export versions, so every semantic
// column is matched against all known spellings after normalization.
var (
	nameAliases        = []string{"ridic", "jmeno ridice", "driver", "driver name"}
	emailAliases       = []string{"e-mail", "email", "e-mail ridice"}
	driverIDAliases    = []string{"identifikator ridice", "driver identifier", "driver id"}
	uniqueIDAliases    = []string{"jedinecny identifikator", "unique identifier", "unique id"}
	phoneAliases       = []string{"telefonni cislo", "telefon", "kontakt", "phone number"}
	grossTotalAliases  = []string{"hruby vydelek (celkem)|kc", "hruby vydelek celkem", "gross earnings (total)"}
	hourlyGrossAliases = []string{"hruby vydelek za hodinu|kc/hod.", "hruby vydelek za hodinu", "gross earnings per hour"}
	cashTakenAliases   = []string{"vybrana hotovost|kc", "vybrana hotovost", "collected cash"}
	tipsAliases        = []string{"spropitne|kc", "spropitne", "tips"}
)

var headerTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeHeader produces the canonical lookup key for one header cell:
// BOM artifact stripped, surrounding quotes trimmed, lower-cased,
// diacritics removed, whitespace trimmed.
func normalizeHeader(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.Trim(s, `"'`)
	s = strings.ToLower(s)
	if folded, _, err := transform.String(headerTransformer, s); err == nil {
		s = folded
	}
	return strings.TrimSpace(s)
}

// mapHeader resolves the header row into a columnSet. A missing required
// column fails the whole file import.
func mapHeader(header []string) (columnSet, error) {
	index := make(map[string]int, len(header))
	for i, cell := range header {
		key := normalizeHeader(cell)
		if key == "" {
			continue
		}
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}

	lookup := func(aliases []string) *int {
		for _, alias := range aliases {
			if i, ok := index[alias]; ok {
				return &i
			}
		}
		return nil
	}
	required := func(aliases []string, label string) (int, error) {
		if i := lookup(aliases); i != nil {
			return *i, nil
		}
		return 0, fmt.Errorf("%w: %s", importer.ErrMissingColumn, label)
	}

	var cols columnSet
	var err error
	if cols.Name, err = required(nameAliases, "driver name"); err != nil {
		return columnSet{}, err
	}
	if cols.Email, err = required(emailAliases, "e-mail"); err != nil {
		return columnSet{}, err
	}
	if cols.DriverID, err = required(driverIDAliases, "driver identifier"); err != nil {
		return columnSet{}, err
	}
	if cols.UniqueID, err = required(uniqueIDAliases, "unique identifier"); err != nil {
		return columnSet{}, err
	}

	cols.Phone = lookup(phoneAliases)
	cols.GrossTotal = lookup(grossTotalAliases)
	cols.HourlyGross = lookup(hourlyGrossAliases)
	cols.CashTaken = lookup(cashTakenAliases)
	cols.Tips = lookup(tipsAliases)

	return cols, nil
}
