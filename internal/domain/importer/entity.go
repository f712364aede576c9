package importer

import "time"

// Batch - one uploaded payout export file. The filename acts as a
// natural key: re-uploading the same file short-circuits to the existing
// batch.
type Batch struct {
	ID        int
	Filename  string
	ISOWeek   string
	Company   string
	City      *string
	CreatedAt time.Time
}

// FileMeta is the metadata parsed out of an export filename. Malformed
// names degrade to "unknown" rather than failing the import.
type FileMeta struct {
	ISOWeek string
	Company string
	City    *string
}
