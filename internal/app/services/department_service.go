package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/adewale/gradlink/internal/app/models"
	"github.com/adewale/gradlink/internal/app/models/dto"
	"github.com/adewale/gradlink/internal/app/repositories"
	"github.com/adewale/gradlink/internal/app/repositories/predicate"
	"github.com/adewale/gradlink/internal/pkg/apperrors"
)

// DepartmentService handles department CRUD rules.
type DepartmentService struct {
	departments *repositories.Repository[models.Department]
	programmes  *repositories.Repository[models.Programme]
	logger      zerolog.Logger
}

// NewDepartmentService creates a department service.
func NewDepartmentService(
	departments *repositories.Repository[models.Department],
	programmes *repositories.Repository[models.Programme],
	lgr zerolog.Logger,
) *DepartmentService {
	return &DepartmentService{
		departments: departments,
		programmes:  programmes,
		logger:      lgr,
	}
}

func (s *DepartmentService) departmentResponse(ctx context.Context, d *models.Department) dto.DepartmentResponse {
	resp := dto.DepartmentResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		ProgrammeID: d.ProgrammeID,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if programme, err := s.programmes.GetByID(ctx, d.ProgrammeID); err == nil && programme != nil {
		resp.ProgrammeTitle = programme.Title
	} else {
		resp.ProgrammeTitle = "Unknown"
	}
	return resp
}

// List returns departments, optionally filtered to one programme.
func (s *DepartmentService) List(ctx context.Context, programmeID string) ([]dto.DepartmentResponse, error) {
	var (
		departments []models.Department
		err         error
	)
	if programmeID != "" {
		departments, err = s.departments.GetAllNoTracking(ctx, predicate.FieldEq("programme_id", programmeID))
	} else {
		departments, err = s.departments.GetAllNoTracking(ctx, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}

	sort.Slice(departments, func(i, j int) bool {
		return departments[i].Title < departments[j].Title
	})

	responses := make([]dto.DepartmentResponse, 0, len(departments))
	for i := range departments {
		responses = append(responses, s.departmentResponse(ctx, &departments[i]))
	}
	return responses, nil
}

// Get returns one department by id.
func (s *DepartmentService) Get(ctx context.Context, id string) (dto.DepartmentResponse, error) {
	department, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return dto.DepartmentResponse{}, fmt.Errorf("error retrieving department: %w", err)
	}
	if department == nil {
		return dto.DepartmentResponse{}, apperrors.ErrDepartmentNotFound
	}
	return s.departmentResponse(ctx, department), nil
}

// Create persists a new department under an existing programme.
func (s *DepartmentService) Create(ctx context.Context, req dto.DepartmentRequest) (dto.DepartmentResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return dto.DepartmentResponse{}, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	programme, err := s.programmes.GetByID(ctx, req.ProgrammeID)
	if err != nil {
		return dto.DepartmentResponse{}, fmt.Errorf("error retrieving programme: %w", err)
	}
	if programme == nil {
		return dto.DepartmentResponse{}, apperrors.ErrProgrammeNotFound
	}

	department := &models.Department{
		BaseEntity:  models.NewBaseEntity(),
		Title:       req.Title,
		Description: req.Description,
		ProgrammeID: req.ProgrammeID,
	}

	if _, err := s.departments.Add(ctx, department); err != nil {
		return dto.DepartmentResponse{}, fmt.Errorf("error creating department: %w", err)
	}

	s.logger.Info().
		Str("departmentId", department.ID).
		Str("programmeId", department.ProgrammeID).
		Str("title", department.Title).
		Msg("Department created")
	return s.departmentResponse(ctx, department), nil
}

// Update replaces a department's fields, re-validating its programme.
func (s *DepartmentService) Update(ctx context.Context, id string, req dto.DepartmentRequest) (dto.DepartmentResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return dto.DepartmentResponse{}, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	department, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return dto.DepartmentResponse{}, fmt.Errorf("error retrieving department: %w", err)
	}
	if department == nil {
		return dto.DepartmentResponse{}, apperrors.ErrDepartmentNotFound
	}

	programme, err := s.programmes.GetByID(ctx, req.ProgrammeID)
	if err != nil {
		return dto.DepartmentResponse{}, fmt.Errorf("error retrieving programme: %w", err)
	}
	if programme == nil {
		return dto.DepartmentResponse{}, apperrors.ErrProgrammeNotFound
	}

	department.Title = req.Title
	department.Description = req.Description
	department.ProgrammeID = req.ProgrammeID

	if _, err := s.departments.Update(ctx, department); err != nil {
		return dto.DepartmentResponse{}, fmt.Errorf("error updating department: %w", err)
	}
	return s.departmentResponse(ctx, department), nil
}

// Delete removes a department by id.
func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	department, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving department: %w", err)
	}
	if department == nil {
		return apperrors.ErrDepartmentNotFound
	}

	if _, err := s.departments.Delete(ctx, department); err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}

	s.logger.Info().Str("departmentId", id).Msg("Department deleted")
	return nil
}
