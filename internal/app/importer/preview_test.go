package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewValidWorkbook(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"MatricNumber", "Name", "Email"},
		{"M001", "Alice", "a@x.com"},
		{"M002", "Bob", "b@x.com"},
	})

	result := Preview(path)

	assert.True(t, result.Success)
	assert.Equal(t, "Excel file structure is valid", result.Message)
	assert.Equal(t, []string{"MatricNumber", "Name", "Email"}, result.Columns)
	assert.Equal(t, 2, result.RowCount)
	// Header row plus both data rows.
	require.Len(t, result.Preview, 3)
	assert.Equal(t, "MatricNumber", result.Preview[0]["MatricNumber"])
	assert.Equal(t, "Alice", result.Preview[1]["Name"])
	assert.Equal(t, "b@x.com", result.Preview[2]["Email"])
}

func TestPreviewRejectsMissingRequiredHeader(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"MatricNumber", "Email"},
		{"M001", "a@x.com"},
	})

	result := Preview(path)

	assert.False(t, result.Success)
	assert.Equal(t, []string{"Name"}, result.Errors)
	assert.Contains(t, result.Message, "Missing required columns: Name")
	assert.Empty(t, result.Preview)
}

func TestPreviewRequiredHeadersAreExactButCaseInsensitive(t *testing.T) {
	// "Full Name" satisfies the fuzzy mapper but not the preview pass.
	path := writeWorkbook(t, [][]string{
		{"matricnumber", "Full Name"},
		{"M001", "Alice"},
	})

	result := Preview(path)

	assert.False(t, result.Success)
	assert.Equal(t, []string{"Name"}, result.Errors)
}

func TestPreviewCapsAtFiveDataRows(t *testing.T) {
	rows := [][]string{{"MatricNumber", "Name"}}
	for i := 0; i < 8; i++ {
		rows = append(rows, []string{"M00" + string(rune('1'+i)), "Student"})
	}
	path := writeWorkbook(t, rows)

	result := Preview(path)

	require.True(t, result.Success)
	assert.Equal(t, 8, result.RowCount)
	assert.Len(t, result.Preview, 6)
}
