package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

var errNoWorksheet = errors.New("Excel file does not contain any worksheets")

// readFirstSheet opens the workbook at path and returns every row of its
// first worksheet, header included.
func readFirstSheet(path string) ([][]string, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errNoWorksheet
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return rows, nil
}

// cellValue returns the trimmed cell at the 1-based column, or empty when
// the column is unset (0) or beyond the row's width.
func cellValue(row []string, col int) string {
	if col <= 0 || col > len(row) {
		return ""
	}
	return strings.TrimSpace(row[col-1])
}

// rowData captures the full raw row as a header→value map, for failure
// reports. Columns with blank headers are dropped.
func rowData(headers, row []string) map[string]string {
	data := make(map[string]string)
	for i, raw := range headers {
		header := strings.TrimSpace(raw)
		if header == "" {
			continue
		}
		data[header] = cellValue(row, i+1)
	}
	return data
}

// isRowEmpty reports whether every mapped field's cell is blank.
func isRowEmpty(row []string, mapping ColumnMapping) bool {
	for _, col := range mapping.indices() {
		if cellValue(row, col) != "" {
			return false
		}
	}
	return true
}
