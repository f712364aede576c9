package importer

// FilePayload is one uploaded file as received by the orchestrator.
type FilePayload struct {
	Filename string
	Data     []byte
}

// FileResult is the per-file outcome. Files fail independently: Error is
// set and the counters stay zero when this file could not be imported.
type FileResult struct {
	Filename string `json:"filename"`
	BatchID  int    `json:"batch_id"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
	Error    string `json:"error,omitempty"`
}

// ImportResult aggregates a multi-file import request.
type ImportResult struct {
	Results       []FileResult `json:"results"`
	TotalImported int          `json:"total_imported"`
	TotalSkipped  int          `json:"total_skipped"`
}

type BatchResponse struct {
	ID        int     `json:"id"`
	Filename  string  `json:"filename"`
	ISOWeek   string  `json:"iso_week"`
	Company   string  `json:"company"`
	City      *string `json:"city"`
	CreatedAt string  `json:"created_at"`
}
