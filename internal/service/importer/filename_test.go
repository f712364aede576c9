package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFileMeta_DateRangeWithFleetMarker(t *testing.T) {
	meta := parseFileMeta("05_01_2026-11_01_2026-Praha-Fleet-Rychla-Kola.xlsx")

	assert.Equal(t, "2026-W02", meta.ISOWeek)
	require.NotNil(t, meta.City)
	assert.Equal(t, "Praha", *meta.City)
	assert.Equal(t, "Rychla Kola", meta.Company)
}

func TestParseFileMeta_DateRangeWithoutFleetMarker(t *testing.T) {
	meta := parseFileMeta("12_01_2026-18_01_2026-Brno-Taxi-Jih.csv")

	assert.Equal(t, "2026-W03", meta.ISOWeek)
	require.NotNil(t, meta.City)
	assert.Equal(t, "Brno", *meta.City)
	assert.Equal(t, "Taxi Jih", meta.Company)
}

func TestParseFileMeta_WeekFromFirstDate(t *testing.T) {
	// The range spans a week boundary; the first date decides.
	meta := parseFileMeta("29_12_2025-04_01_2026-Praha-Fleet-X.xlsx")
	assert.Equal(t, "2026-W01", meta.ISOWeek)
}

func TestParseFileMeta_LegacyWeekFormat(t *testing.T) {
	meta := parseFileMeta("2025W48-Ostrava-Fleet-Sever.xlsx")

	assert.Equal(t, "2025-W48", meta.ISOWeek)
	require.NotNil(t, meta.City)
	assert.Equal(t, "Ostrava", *meta.City)
	assert.Equal(t, "Sever", meta.Company)
}

func TestParseFileMeta_Malformed(t *testing.T) {
	meta := parseFileMeta("export.xlsx")

	assert.Equal(t, "unknown", meta.ISOWeek)
	assert.Equal(t, "unknown", meta.Company)
	// A single token still becomes the city.
	require.NotNil(t, meta.City)
	assert.Equal(t, "export", *meta.City)
}

func TestParseFileMeta_DateRangeOnly(t *testing.T) {
	meta := parseFileMeta("05_01_2026-11_01_2026.csv")

	assert.Equal(t, "2026-W02", meta.ISOWeek)
	assert.Nil(t, meta.City)
	assert.Equal(t, "unknown", meta.Company)
}

func TestIsoWeekFromDate_RejectsNonsense(t *testing.T) {
	_, ok := isoWeekFromDate("00", "13", "1999")
	assert.False(t, ok)

	week, ok := isoWeekFromDate("01", "01", "2026")
	assert.True(t, ok)
	assert.Equal(t, "2026-W01", week)
}
