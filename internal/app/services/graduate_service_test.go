package services

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSpreadsheet(t *testing.T) {
	assert.True(t, isSpreadsheet("graduates.xlsx"))
	assert.True(t, isSpreadsheet("graduates.xls"))
	assert.True(t, isSpreadsheet("GRADUATES.XLSX"))

	assert.False(t, isSpreadsheet("graduates.csv"))
	assert.False(t, isSpreadsheet("graduates.pdf"))
	assert.False(t, isSpreadsheet("graduates"))
	assert.False(t, isSpreadsheet("xlsx"))
}

func TestSaveTempUploadRoundTrip(t *testing.T) {
	path, err := saveTempUpload(strings.NewReader("workbook bytes"), "upload.xlsx")
	require.NoError(t, err)
	defer os.Remove(path)

	assert.True(t, strings.HasSuffix(path, ".xlsx"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "workbook bytes", string(data))
}
