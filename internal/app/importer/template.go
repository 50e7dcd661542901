package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Canonical template headers, in column order.
var templateHeaders = []string{
	"MatricNumber", "Name", "Email", "Gender", "PhoneNumber", "HighestAcademicQualification",
}

var templateExampleRow = []string{
	"PGDE/0000/0000", "John Doe", "john.doe@example.com", "Male", "+2348012345678", "B.Sc Computer Science",
}

var templateColumnWidths = []float64{20, 25, 30, 15, 20, 30}

// Template builds the downloadable upload template: the canonical headers,
// one example row, and an instructions sheet. The caller owns closing the
// returned file.
func Template() (*excelize.File, error) {
	file := excelize.NewFile()

	const sheet = "Graduates"
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name template sheet: %w", err)
	}

	for i, header := range templateHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}

		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetColWidth(sheet, col, col, templateColumnWidths[i]); err != nil {
			return nil, err
		}
	}

	headerStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		lastCol, _ := excelize.ColumnNumberToName(len(templateHeaders))
		_ = file.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle)
	}

	for i, value := range templateExampleRow {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheet, cell, value); err != nil {
			return nil, err
		}
	}

	if err := addInstructionsSheet(file); err != nil {
		return nil, err
	}

	return file, nil
}

func addInstructionsSheet(file *excelize.File) error {
	const sheet = "Instructions"
	if _, err := file.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to add instructions sheet: %w", err)
	}

	lines := []string{
		"Excel Upload Template Instructions",
		"",
		"Required Columns:",
		"- MatricNumber: Unique student identification number (Required)",
		"- Name: Full name of graduate (Required)",
		"- Email: Valid email address",
		"- Gender: Male/Female/Other",
		"- PhoneNumber: Contact phone number",
		"- HighestAcademicQualification: Highest degree obtained",
		"",
		"Notes:",
		"- Do not modify the column headers",
		"- All columns are optional except MatricNumber and Name",
		"- Remove the example row before uploading your data",
		"- Save the file as .xlsx format",
	}

	for i, line := range lines {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, cell, line); err != nil {
			return err
		}
	}

	return file.SetColWidth(sheet, "A", "A", 60)
}
