package importer

import (
	"bytes"
	"fmt"

	"github.com/jezdibolt/backend-go/internal/domain/importer"
	"github.com/xuri/excelize/v2"
)

// readXLSX reads all rows of the first sheet as strings; numeric cells
// come back in their display form and go through the same cell parsing
// as CSV values.
func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, importer.ErrEmptyFile
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read xlsx rows: %w", err)
	}
	return rows, nil
}
