package importer

import "strings"

// Required headers for the preview pass: exact case-insensitive names. This
// is deliberately stricter than the fuzzy mapper used during the real
// import, so a previewed file that passes here always maps cleanly.
var requiredColumns = []string{"MatricNumber", "Name"}

// Validation is the outcome of the structural preview pass. Nothing is
// written while producing it.
type Validation struct {
	Success  bool                `json:"success"`
	Message  string              `json:"message"`
	Columns  []string            `json:"columns"`
	RowCount int                 `json:"rowCount"`
	Preview  []map[string]string `json:"preview,omitempty"`
	Errors   []string            `json:"errors,omitempty"`
}

// previewDataRows caps the preview at the header row plus five data rows.
const previewDataRows = 5

// Preview validates the workbook's structure and builds a bounded preview of
// its contents without touching the store.
func Preview(path string) *Validation {
	result := &Validation{Columns: []string{}}

	rows, err := readFirstSheet(path)
	if err != nil {
		if err == errNoWorksheet {
			result.Message = errNoWorksheet.Error()
		} else {
			result.Message = "Error validating Excel file: " + err.Error()
			result.Errors = []string{err.Error()}
		}
		return result
	}

	var headers []string
	if len(rows) > 0 {
		headers = rows[0]
	}
	for _, raw := range headers {
		header := strings.TrimSpace(raw)
		if header != "" {
			result.Columns = append(result.Columns, header)
		}
	}

	var missing []string
	for _, required := range requiredColumns {
		if !hasHeader(result.Columns, required) {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		result.Message = "Missing required columns: " + strings.Join(missing, ", ")
		result.Errors = missing
		return result
	}

	result.RowCount = len(rows) - 1

	limit := len(rows)
	if limit > previewDataRows+1 {
		limit = previewDataRows + 1
	}
	for i := 0; i < limit; i++ {
		result.Preview = append(result.Preview, rowData(headers, rows[i]))
	}

	result.Success = true
	result.Message = "Excel file structure is valid"
	return result
}

func hasHeader(headers []string, name string) bool {
	for _, h := range headers {
		if strings.EqualFold(h, name) {
			return true
		}
	}
	return false
}
