package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readCSV decodes a vendor CSV export. A UTF-8 BOM selects UTF-8,
// anything else is treated as the legacy Windows-1250 export. The
// delimiter is auto-detected from the first line, preferring the
// semicolon the vendor switched to over the older comma.
func readCSV(data []byte) ([][]string, error) {
	var reader io.Reader
	if bytes.HasPrefix(data, utf8BOM) {
		reader = bytes.NewReader(data[len(utf8BOM):])
	} else {
		reader = transform.NewReader(bytes.NewReader(data), charmap.Windows1250.NewDecoder())
	}

	decoded, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode csv: %w", err)
	}

	text := string(decoded)
	firstLine := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		firstLine = text[:i]
	}

	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = ','
	if strings.Contains(firstLine, ";") {
		cr.Comma = ';'
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return rows, nil
}
