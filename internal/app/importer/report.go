package importer

import "fmt"

// FailedRow records one row-scoped failure: the original row number, the
// error message, and the full raw row as a header→value map.
type FailedRow struct {
	RowNumber int               `json:"rowNumber"`
	Error     string            `json:"error"`
	Data      map[string]string `json:"data"`
}

// Details summarizes the outcome counts. TotalRows is always
// processed + skipped + failed.
type Details struct {
	TotalRows int `json:"totalRows"`
	Success   int `json:"success"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// Result is the aggregated import report. Success and failure are row-scoped:
// rows persisted before a later row fails stay persisted.
type Result struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Processed  int         `json:"processed"`
	Skipped    int         `json:"skipped"`
	Details    Details     `json:"details"`
	FailedRows []FailedRow `json:"failedRows"`
	Errors     []string    `json:"errors,omitempty"`
}

func (r *Result) fail(message string) *Result {
	r.Success = false
	r.Message = message
	r.Errors = append(r.Errors, message)
	return r
}

func (r *Result) finish() *Result {
	r.Success = true
	r.Message = fmt.Sprintf("Processed %d graduate(s)", r.Processed)
	r.Details = Details{
		TotalRows: r.Processed + r.Skipped + len(r.FailedRows),
		Success:   r.Processed,
		Failed:    len(r.FailedRows),
		Skipped:   r.Skipped,
	}
	return r
}
