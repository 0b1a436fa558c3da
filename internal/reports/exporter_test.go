package reports

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []MemberReportRow {
	dob := time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC)
	return []MemberReportRow{
		{
			ProfileID:    1,
			FullName:     "Kumar Raj",
			Mobile:       "9876543210",
			Gender:       "M",
			Caste:        "Devar",
			DateOfBirth:  &dob,
			RegisteredAt: time.Date(2026, 1, 10, 9, 30, 0, 0, time.UTC),
		},
		{
			ProfileID:    2,
			FullName:     "Meena",
			Mobile:       "9123456780",
			Gender:       "F",
			RegisteredAt: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
		},
	}
}

func TestExportMemberListCSV(t *testing.T) {
	e := NewExporter()
	data, filename, contentType, err := e.Export(FormatCSV, sampleRows())
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.Contains(t, filename, "member_list_report_")

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 rows
	assert.Equal(t, memberListHeaders, records[0])
	assert.Equal(t, "Kumar Raj", records[1][1])
	assert.Equal(t, "1995-06-15", records[1][6])
	// missing date of birth exports as empty, not a zero date
	assert.Equal(t, "", records[2][6])
}

func TestExportMemberListFormats(t *testing.T) {
	e := NewExporter()

	t.Run("excel", func(t *testing.T) {
		data, filename, contentType, err := e.Export(FormatExcel, sampleRows())
		require.NoError(t, err)
		assert.NotEmpty(t, data)
		assert.Contains(t, filename, ".xlsx")
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", contentType)
	})

	t.Run("pdf", func(t *testing.T) {
		data, filename, contentType, err := e.Export(FormatPDF, sampleRows())
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
		assert.Contains(t, filename, ".pdf")
		assert.Equal(t, "application/pdf", contentType)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, _, _, err := e.Export("docx", sampleRows())
		assert.Error(t, err)
	})
}
