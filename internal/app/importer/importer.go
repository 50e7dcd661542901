// Package importer implements the spreadsheet bulk-import pipeline: header
// column detection, per-row validation with duplicate checks, and the
// aggregated partial-failure report.
package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/adewale/gradlink/internal/app/models"
	"github.com/adewale/gradlink/internal/app/repositories/predicate"
)

// GraduateStore is the slice of the generic repository the importer needs.
type GraduateStore interface {
	GetByPredicate(ctx context.Context, p predicate.Expr) (*models.GraduateProfile, error)
	Add(ctx context.Context, g *models.GraduateProfile) (bool, error)
}

// Importer runs the row-by-row import for one uploaded workbook.
type Importer struct {
	graduates GraduateStore
	logger    zerolog.Logger
}

// NewImporter creates an importer over the graduate store.
func NewImporter(graduates GraduateStore, lgr zerolog.Logger) *Importer {
	return &Importer{
		graduates: graduates,
		logger:    lgr.With().Str("component", "importer").Logger(),
	}
}

// Run processes the workbook at path against the given department and
// graduation year. Rows are processed strictly sequentially in file order; a
// row's failure never aborts the batch. The duplicate check and the insert
// are two separate store round-trips, so concurrent imports can both pass
// the check for the same matric number; that permissive behavior is kept
// deliberately.
func (im *Importer) Run(ctx context.Context, path, departmentID string, year int) *Result {
	result := &Result{FailedRows: []FailedRow{}}

	rows, err := readFirstSheet(path)
	if err != nil {
		if err == errNoWorksheet {
			return result.fail(errNoWorksheet.Error())
		}
		return result.fail("Error processing Excel file: " + err.Error())
	}

	if len(rows) <= 1 {
		return result.fail("Excel file contains no data rows")
	}

	headers := rows[0]
	mapping := MapColumns(headers)

	for i, row := range rows[1:] {
		rowNumber := i + 2
		im.importRow(ctx, result, headers, row, rowNumber, mapping, departmentID, year)
	}

	im.logger.Info().
		Int("processed", result.Processed).
		Int("skipped", result.Skipped).
		Int("failed", len(result.FailedRows)).
		Str("departmentId", departmentID).
		Msg("Import finished")

	return result.finish()
}

func (im *Importer) importRow(ctx context.Context, result *Result, headers, row []string, rowNumber int, mapping ColumnMapping, departmentID string, year int) {
	if isRowEmpty(row, mapping) {
		result.Skipped++
		return
	}

	failRow := func(message string) {
		result.FailedRows = append(result.FailedRows, FailedRow{
			RowNumber: rowNumber,
			Error:     message,
			Data:      rowData(headers, row),
		})
	}

	// Matric number always comes from the literal first column; the other
	// fields go through the resolved mapping.
	matricNumber := cellValue(row, 1)
	name := cellValue(row, mapping.Name)

	if matricNumber == "" {
		failRow("Matric number is required")
		return
	}
	if name == "" {
		failRow("Name is required")
		return
	}

	existing, err := im.graduates.GetByPredicate(ctx, predicate.FieldEq("matric_number", matricNumber))
	if err != nil {
		failRow("Processing error: " + err.Error())
		return
	}
	if existing != nil {
		failRow(fmt.Sprintf("Duplicate matric number: %s", matricNumber))
		return
	}

	graduate := &models.GraduateProfile{
		BaseEntity:       models.NewBaseEntity(),
		MatricNumber:     strings.TrimSpace(matricNumber),
		DepartmentID:     departmentID,
		YearOfGraduation: year,
		Name:             name,
		Email:            cellValue(row, mapping.Email),
		Gender:           cellValue(row, mapping.Gender),
		PhoneNumber:      cellValue(row, mapping.Phone),
		Qualification:    cellValue(row, mapping.Qualification),
	}

	saved, err := im.graduates.Add(ctx, graduate)
	if err != nil {
		failRow("Processing error: " + err.Error())
		return
	}
	if !saved {
		// A commit that affects no rows is a row failure, not a success.
		failRow("Processing error: persist affected no rows")
		return
	}

	result.Processed++
}
