package importer

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/adewale/gradlink/internal/app/models"
	"github.com/adewale/gradlink/internal/app/repositories/predicate"
)

// fakeStore is an in-memory GraduateStore evaluating predicates against the
// held records.
type fakeStore struct {
	graduates  []*models.GraduateProfile
	addErr     error
	failCommit bool
}

func (f *fakeStore) GetByPredicate(_ context.Context, p predicate.Expr) (*models.GraduateProfile, error) {
	for _, g := range f.graduates {
		lookup := func(col string) any {
			switch col {
			case "id":
				return g.ID
			case "matric_number":
				return g.MatricNumber
			case "department_id":
				return g.DepartmentID
			default:
				return nil
			}
		}
		if predicate.Matches(p, lookup) {
			return g, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Add(_ context.Context, g *models.GraduateProfile) (bool, error) {
	if f.addErr != nil {
		return false, f.addErr
	}
	if f.failCommit {
		return false, nil
	}
	f.graduates = append(f.graduates, g)
	return true, nil
}

func writeWorkbook(t *testing.T, rows [][]string) string {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close()
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, file.SetCellValue("Sheet1", cell, value))
		}
	}

	path := filepath.Join(t.TempDir(), "upload.xlsx")
	require.NoError(t, file.SaveAs(path))
	return path
}

func newTestImporter(store *fakeStore) *Importer {
	return NewImporter(store, zerolog.Nop())
}

func TestRunEndToEndWithDuplicateInFile(t *testing.T) {
	store := &fakeStore{}
	path := writeWorkbook(t, [][]string{
		{"MatricNumber", "Name", "Email"},
		{"M001", "Alice", "a@x.com"},
		{"M001", "Bob", "b@x.com"},
	})

	result := newTestImporter(store).Run(context.Background(), path, "dep-1", 2024)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 0, result.Skipped)
	require.Len(t, result.FailedRows, 1)
	assert.Equal(t, 3, result.FailedRows[0].RowNumber)
	assert.Contains(t, result.FailedRows[0].Error, "Duplicate matric number: M001")
	assert.Equal(t, "Bob", result.FailedRows[0].Data["Name"])

	require.Len(t, store.graduates, 1)
	saved := store.graduates[0]
	assert.Equal(t, "M001", saved.MatricNumber)
	assert.Equal(t, "Alice", saved.Name)
	assert.Equal(t, "a@x.com", saved.Email)
	assert.Equal(t, "dep-1", saved.DepartmentID)
	assert.Equal(t, 2024, saved.YearOfGraduation)
	assert.NotEmpty(t, saved.ID)

	assert.Equal(t, Details{TotalRows: 2, Success: 1, Failed: 1, Skipped: 0}, result.Details)
}

func TestRunRejectsDuplicateAgainstExistingRecord(t *testing.T) {
	store := &fakeStore{graduates: []*models.GraduateProfile{
		{BaseEntity: models.BaseEntity{ID: "g-0"}, MatricNumber: "M100"},
	}}
	path := writeWorkbook(t, [][]string{
		{"MatricNumber", "Name"},
		{"M100", "Carol"},
	})

	result := newTestImporter(store).Run(context.Background(), path, "dep-1", 2023)

	assert.Equal(t, 0, result.Processed)
	require.Len(t, result.FailedRows, 1)
	assert.Contains(t, result.FailedRows[0].Error, "Duplicate matric number: M100")
	assert.Len(t, store.graduates, 1)
}

func TestRunSkipsBlankRows(t *testing.T) {
	store := &fakeStore{}
	path := writeWorkbook(t, [][]string{
		{"MatricNumber", "Name"},
		{" ", " "},
		{"M001", "Alice"},
		{" ", " "},
	})

	result := newTestImporter(store).Run(context.Background(), path, "dep-1", 2024)

	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 2, result.Skipped)
	assert.Empty(t, result.FailedRows)
}

func TestRunRequiredFieldMessages(t *testing.T) {
	store := &fakeStore{}
	path := writeWorkbook(t, [][]string{
		{"MatricNumber", "Name"},
		{"", "NoMatric"},
		{"M002", ""},
	})

	result := newTestImporter(store).Run(context.Background(), path, "dep-1", 2024)

	assert.Equal(t, 0, result.Processed)
	require.Len(t, result.FailedRows, 2)
	assert.Equal(t, "Matric number is required", result.FailedRows[0].Error)
	assert.Equal(t, "Name is required", result.FailedRows[1].Error)
}

func TestRunPreservesFailedRowOrder(t *testing.T) {
	store := &fakeStore{}
	path := writeWorkbook(t, [][]string{
		{"MatricNumber", "Name"},
		{"", "A"},
		{"M001", "B"},
		{"", "C"},
		{"M001", "D"},
	})

	result := newTestImporter(store).Run(context.Background(), path, "dep-1", 2024)

	require.Len(t, result.FailedRows, 3)
	assert.Equal(t, []int{2, 4, 5}, []int{
		result.FailedRows[0].RowNumber,
		result.FailedRows[1].RowNumber,
		result.FailedRows[2].RowNumber,
	})
}

func TestRunHeaderOnlyFileAbortsBeforeRows(t *testing.T) {
	store := &fakeStore{}
	path := writeWorkbook(t, [][]string{{"MatricNumber", "Name"}})

	result := newTestImporter(store).Run(context.Background(), path, "dep-1", 2024)

	assert.False(t, result.Success)
	assert.Equal(t, "Excel file contains no data rows", result.Message)
	assert.Equal(t, 0, result.Processed)
	assert.Empty(t, store.graduates)
}

func TestRunStoreErrorIsRowScoped(t *testing.T) {
	store := &fakeStore{addErr: errors.New("persistence failed")}
	path := writeWorkbook(t, [][]string{
		{"MatricNumber", "Name"},
		{"M001", "Alice"},
		{"M002", "Bob"},
	})

	result := newTestImporter(store).Run(context.Background(), path, "dep-1", 2024)

	// Every row fails, but the batch still runs to completion.
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.Processed)
	require.Len(t, result.FailedRows, 2)
	assert.Contains(t, result.FailedRows[0].Error, "Processing error:")
}

func TestRunFailedCommitIsRowFailure(t *testing.T) {
	store := &fakeStore{failCommit: true}
	path := writeWorkbook(t, [][]string{
		{"MatricNumber", "Name"},
		{"M001", "Alice"},
	})

	result := newTestImporter(store).Run(context.Background(), path, "dep-1", 2024)

	assert.Equal(t, 0, result.Processed)
	require.Len(t, result.FailedRows, 1)
	assert.Contains(t, result.FailedRows[0].Error, "Processing error:")
}

func TestRunReadsMatricFromFirstColumnRegardlessOfMapping(t *testing.T) {
	store := &fakeStore{}
	// "Matric No" resolves to column 3, but the importer must still read the
	// matric number from column 1.
	path := writeWorkbook(t, [][]string{
		{"Ref", "Name", "Matric No"},
		{"M500", "Alice", "IGNORED"},
	})

	result := newTestImporter(store).Run(context.Background(), path, "dep-1", 2024)

	assert.Equal(t, 1, result.Processed)
	require.Len(t, store.graduates, 1)
	assert.Equal(t, "M500", store.graduates[0].MatricNumber)
}
