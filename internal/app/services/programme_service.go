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

// ProgrammeService handles programme CRUD rules.
type ProgrammeService struct {
	programmes  *repositories.Repository[models.Programme]
	departments *repositories.Repository[models.Department]
	logger      zerolog.Logger
}

// NewProgrammeService creates a programme service.
func NewProgrammeService(
	programmes *repositories.Repository[models.Programme],
	departments *repositories.Repository[models.Department],
	lgr zerolog.Logger,
) *ProgrammeService {
	return &ProgrammeService{
		programmes:  programmes,
		departments: departments,
		logger:      lgr,
	}
}

func programmeResponse(p *models.Programme) dto.ProgrammeResponse {
	return dto.ProgrammeResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// List returns every programme, newest first.
func (s *ProgrammeService) List(ctx context.Context) ([]dto.ProgrammeResponse, error) {
	programmes, err := s.programmes.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving programmes: %w", err)
	}

	sort.Slice(programmes, func(i, j int) bool {
		return programmes[i].CreatedAt > programmes[j].CreatedAt
	})

	responses := make([]dto.ProgrammeResponse, 0, len(programmes))
	for _, p := range programmes {
		responses = append(responses, programmeResponse(p))
	}
	return responses, nil
}

// Get returns one programme by id.
func (s *ProgrammeService) Get(ctx context.Context, id string) (dto.ProgrammeResponse, error) {
	programme, err := s.programmes.GetByID(ctx, id)
	if err != nil {
		return dto.ProgrammeResponse{}, fmt.Errorf("error retrieving programme: %w", err)
	}
	if programme == nil {
		return dto.ProgrammeResponse{}, apperrors.ErrProgrammeNotFound
	}
	return programmeResponse(programme), nil
}

// Create persists a new programme.
func (s *ProgrammeService) Create(ctx context.Context, req dto.ProgrammeRequest) (dto.ProgrammeResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return dto.ProgrammeResponse{}, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	programme := &models.Programme{
		BaseEntity:  models.NewBaseEntity(),
		Title:       req.Title,
		Description: req.Description,
	}

	if _, err := s.programmes.Add(ctx, programme); err != nil {
		return dto.ProgrammeResponse{}, fmt.Errorf("error creating programme: %w", err)
	}

	s.logger.Info().Str("programmeId", programme.ID).Str("title", programme.Title).Msg("Programme created")
	return programmeResponse(programme), nil
}

// Update replaces a programme's title and description.
func (s *ProgrammeService) Update(ctx context.Context, id string, req dto.ProgrammeRequest) (dto.ProgrammeResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return dto.ProgrammeResponse{}, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	programme, err := s.programmes.GetByID(ctx, id)
	if err != nil {
		return dto.ProgrammeResponse{}, fmt.Errorf("error retrieving programme: %w", err)
	}
	if programme == nil {
		return dto.ProgrammeResponse{}, apperrors.ErrProgrammeNotFound
	}

	programme.Title = req.Title
	programme.Description = req.Description

	if _, err := s.programmes.Update(ctx, programme); err != nil {
		return dto.ProgrammeResponse{}, fmt.Errorf("error updating programme: %w", err)
	}
	return programmeResponse(programme), nil
}

// Delete removes a programme. Deletion is rejected while departments still
// reference it; there is no cascade.
func (s *ProgrammeService) Delete(ctx context.Context, id string) error {
	programme, err := s.programmes.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving programme: %w", err)
	}
	if programme == nil {
		return apperrors.ErrProgrammeNotFound
	}

	departments, err := s.departments.GetAllByPredicate(ctx, predicate.FieldEq("programme_id", id))
	if err != nil {
		return fmt.Errorf("error checking programme departments: %w", err)
	}
	if len(departments) > 0 {
		return apperrors.ErrProgrammeHasDepartments
	}

	if _, err := s.programmes.Delete(ctx, programme); err != nil {
		return fmt.Errorf("error deleting programme: %w", err)
	}

	s.logger.Info().Str("programmeId", id).Msg("Programme deleted")
	return nil
}
