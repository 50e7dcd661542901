package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/adewale/gradlink/internal/app/importer"
	"github.com/adewale/gradlink/internal/app/models"
	"github.com/adewale/gradlink/internal/app/models/dto"
	"github.com/adewale/gradlink/internal/app/repositories"
	"github.com/adewale/gradlink/internal/app/repositories/predicate"
	"github.com/adewale/gradlink/internal/pkg/apperrors"
)

// GraduateService handles graduate profiles, including the spreadsheet
// bulk-import flow.
type GraduateService struct {
	graduates   *repositories.Repository[models.GraduateProfile]
	departments *repositories.Repository[models.Department]
	programmes  *repositories.Repository[models.Programme]
	logger      zerolog.Logger
}

// NewGraduateService creates a graduate service.
func NewGraduateService(
	graduates *repositories.Repository[models.GraduateProfile],
	departments *repositories.Repository[models.Department],
	programmes *repositories.Repository[models.Programme],
	lgr zerolog.Logger,
) *GraduateService {
	return &GraduateService{
		graduates:   graduates,
		departments: departments,
		programmes:  programmes,
		logger:      lgr,
	}
}

func (s *GraduateService) graduateResponse(ctx context.Context, g *models.GraduateProfile) dto.GraduateResponse {
	resp := dto.GraduateResponse{
		ID:               g.ID,
		MatricNumber:     g.MatricNumber,
		DepartmentID:     g.DepartmentID,
		DepartmentName:   "Unknown",
		YearOfGraduation: g.YearOfGraduation,
		Name:             g.Name,
		Email:            g.Email,
		PhoneNumber:      g.PhoneNumber,
		Gender:           g.Gender,
		Qualification:    g.Qualification,
		EmploymentStatus: g.EmploymentStatus,
		CurrentEmployer:  g.CurrentEmployer,
		JobTitle:         g.JobTitle,
		Location:         g.Location,
		Skills:           g.Skills,
		PhotoURL:         g.PhotoURL,
		CreatedAt:        g.CreatedAt,
		UpdatedAt:        g.UpdatedAt,
	}

	department, err := s.departments.GetByID(ctx, g.DepartmentID)
	if err != nil || department == nil {
		return resp
	}
	resp.DepartmentName = department.Title

	if programme, err := s.programmes.GetByID(ctx, department.ProgrammeID); err == nil && programme != nil {
		resp.ProgrammeID = programme.ID
		resp.ProgrammeName = programme.Title
	}
	return resp
}

// List returns every graduate, newest first, with department and programme
// names resolved.
func (s *GraduateService) List(ctx context.Context) ([]dto.GraduateResponse, error) {
	graduates, err := s.graduates.GetAllNoTracking(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error retrieving graduates: %w", err)
	}

	sort.Slice(graduates, func(i, j int) bool {
		return graduates[i].CreatedAt > graduates[j].CreatedAt
	})

	responses := make([]dto.GraduateResponse, 0, len(graduates))
	for i := range graduates {
		responses = append(responses, s.graduateResponse(ctx, &graduates[i]))
	}
	return responses, nil
}

// Get returns one graduate by id.
func (s *GraduateService) Get(ctx context.Context, id string) (dto.GraduateResponse, error) {
	graduate, err := s.graduates.GetByID(ctx, id)
	if err != nil {
		return dto.GraduateResponse{}, fmt.Errorf("error retrieving graduate: %w", err)
	}
	if graduate == nil {
		return dto.GraduateResponse{}, apperrors.ErrGraduateNotFound
	}
	return s.graduateResponse(ctx, graduate), nil
}

func (s *GraduateService) checkDuplicateMatric(ctx context.Context, matricNumber, excludeID string) error {
	existing, err := s.graduates.GetByPredicate(ctx, predicate.FieldEq("matric_number", matricNumber))
	if err != nil {
		return fmt.Errorf("error checking matric number: %w", err)
	}
	if existing != nil && existing.ID != excludeID {
		return apperrors.NewCustomError(
			apperrors.ErrDuplicateMatricNumber,
			fmt.Sprintf("Graduate with matric number '%s' already exists", matricNumber),
		)
	}
	return nil
}

// Create persists a single graduate profile.
func (s *GraduateService) Create(ctx context.Context, req dto.GraduateRequest) (dto.GraduateResponse, error) {
	matricNumber := strings.TrimSpace(req.MatricNumber)
	if matricNumber == "" {
		return dto.GraduateResponse{}, fmt.Errorf("%w: matric number cannot be empty", apperrors.ErrValidationFailed)
	}

	department, err := s.departments.GetByID(ctx, req.DepartmentID)
	if err != nil {
		return dto.GraduateResponse{}, fmt.Errorf("error retrieving department: %w", err)
	}
	if department == nil {
		return dto.GraduateResponse{}, apperrors.ErrDepartmentNotFound
	}

	if err := s.checkDuplicateMatric(ctx, matricNumber, ""); err != nil {
		return dto.GraduateResponse{}, err
	}

	graduate := &models.GraduateProfile{
		BaseEntity:       models.NewBaseEntity(),
		MatricNumber:     matricNumber,
		DepartmentID:     req.DepartmentID,
		YearOfGraduation: req.YearOfGraduation,
		Name:             req.Name,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		Gender:           req.Gender,
		Qualification:    req.Qualification,
		EmploymentStatus: req.EmploymentStatus,
		CurrentEmployer:  req.CurrentEmployer,
		JobTitle:         req.JobTitle,
		Location:         req.Location,
		Skills:           req.Skills,
		PhotoURL:         req.PhotoURL,
	}

	if _, err := s.graduates.Add(ctx, graduate); err != nil {
		return dto.GraduateResponse{}, fmt.Errorf("error creating graduate: %w", err)
	}

	s.logger.Info().
		Str("graduateId", graduate.ID).
		Str("matricNumber", graduate.MatricNumber).
		Msg("Graduate created")
	return s.graduateResponse(ctx, graduate), nil
}

// Update replaces a graduate's fields.
func (s *GraduateService) Update(ctx context.Context, id string, req dto.GraduateRequest) (dto.GraduateResponse, error) {
	matricNumber := strings.TrimSpace(req.MatricNumber)
	if matricNumber == "" {
		return dto.GraduateResponse{}, fmt.Errorf("%w: matric number cannot be empty", apperrors.ErrValidationFailed)
	}

	graduate, err := s.graduates.GetByID(ctx, id)
	if err != nil {
		return dto.GraduateResponse{}, fmt.Errorf("error retrieving graduate: %w", err)
	}
	if graduate == nil {
		return dto.GraduateResponse{}, apperrors.ErrGraduateNotFound
	}

	department, err := s.departments.GetByID(ctx, req.DepartmentID)
	if err != nil {
		return dto.GraduateResponse{}, fmt.Errorf("error retrieving department: %w", err)
	}
	if department == nil {
		return dto.GraduateResponse{}, apperrors.ErrDepartmentNotFound
	}

	if err := s.checkDuplicateMatric(ctx, matricNumber, id); err != nil {
		return dto.GraduateResponse{}, err
	}

	graduate.MatricNumber = matricNumber
	graduate.DepartmentID = req.DepartmentID
	graduate.YearOfGraduation = req.YearOfGraduation
	graduate.Name = req.Name
	graduate.Email = req.Email
	graduate.PhoneNumber = req.PhoneNumber
	graduate.Gender = req.Gender
	graduate.Qualification = req.Qualification
	graduate.EmploymentStatus = req.EmploymentStatus
	graduate.CurrentEmployer = req.CurrentEmployer
	graduate.JobTitle = req.JobTitle
	graduate.Location = req.Location
	graduate.Skills = req.Skills
	graduate.PhotoURL = req.PhotoURL

	if _, err := s.graduates.Update(ctx, graduate); err != nil {
		return dto.GraduateResponse{}, fmt.Errorf("error updating graduate: %w", err)
	}
	return s.graduateResponse(ctx, graduate), nil
}

// Delete removes a graduate by id.
func (s *GraduateService) Delete(ctx context.Context, id string) error {
	graduate, err := s.graduates.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving graduate: %w", err)
	}
	if graduate == nil {
		return apperrors.ErrGraduateNotFound
	}

	if _, err := s.graduates.Delete(ctx, graduate); err != nil {
		return fmt.Errorf("error deleting graduate: %w", err)
	}

	s.logger.Info().Str("graduateId", id).Msg("Graduate deleted")
	return nil
}

func isSpreadsheet(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return true
	}
	return false
}

// saveTempUpload spools the upload to a temporary file so excelize can open
// it by path. Callers own the returned path and must remove it.
func saveTempUpload(file io.Reader, filename string) (string, error) {
	tmp, err := os.CreateTemp("", "gradlink-upload-*"+strings.ToLower(filepath.Ext(filename)))
	if err != nil {
		return "", fmt.Errorf("error creating temporary file: %w", err)
	}
	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("error saving uploaded file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("error saving uploaded file: %w", err)
	}
	return tmp.Name(), nil
}

// ImportFromUpload validates the upload and department, then runs the
// row-by-row import. The returned result reports partial failures; only
// structural problems (bad file type, unknown department) surface as errors.
func (s *GraduateService) ImportFromUpload(ctx context.Context, file io.Reader, filename, departmentID string, year int) (*importer.Result, error) {
	if !isSpreadsheet(filename) {
		return nil, apperrors.ErrUnsupportedFileType
	}

	department, err := s.departments.GetByID(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	if department == nil {
		return nil, apperrors.ErrDepartmentNotFound
	}

	path, err := saveTempUpload(file, filename)
	if err != nil {
		return nil, err
	}
	defer os.Remove(path)

	run := importer.NewImporter(s.graduates, s.logger)
	return run.Run(ctx, path, departmentID, year), nil
}

// PreviewUpload checks the workbook's structure without persisting anything.
func (s *GraduateService) PreviewUpload(file io.Reader, filename string) (*importer.Validation, error) {
	if !isSpreadsheet(filename) {
		return nil, apperrors.ErrUnsupportedFileType
	}

	path, err := saveTempUpload(file, filename)
	if err != nil {
		return nil, err
	}
	defer os.Remove(path)

	return importer.Preview(path), nil
}

// Template builds the downloadable import template workbook.
func (s *GraduateService) Template() (*excelize.File, error) {
	return importer.Template()
}
