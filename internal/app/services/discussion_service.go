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

// DiscussionService handles the discussion board: subjects and their
// comments.
type DiscussionService struct {
	subjects *repositories.Repository[models.RoomSubject]
	comments *repositories.Repository[models.RoomSubjectComment]
	logger   zerolog.Logger
}

// NewDiscussionService creates a discussion service.
func NewDiscussionService(
	subjects *repositories.Repository[models.RoomSubject],
	comments *repositories.Repository[models.RoomSubjectComment],
	lgr zerolog.Logger,
) *DiscussionService {
	return &DiscussionService{
		subjects: subjects,
		comments: comments,
		logger:   lgr,
	}
}

// ListSubjects returns every subject, newest first, with comment counts.
func (s *DiscussionService) ListSubjects(ctx context.Context) ([]dto.SubjectSummary, error) {
	subjects, err := s.subjects.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subjects: %w", err)
	}

	sort.Slice(subjects, func(i, j int) bool {
		return subjects[i].CreatedAt > subjects[j].CreatedAt
	})

	summaries := make([]dto.SubjectSummary, 0, len(subjects))
	for _, subject := range subjects {
		comments, err := s.comments.GetAllByPredicate(ctx, predicate.FieldEq("subject_id", subject.ID))
		if err != nil {
			return nil, fmt.Errorf("error counting comments: %w", err)
		}
		summaries = append(summaries, dto.SubjectSummary{
			ID:           subject.ID,
			Title:        subject.Title,
			Description:  subject.Description,
			CreatedAt:    subject.CreatedAt,
			CommentCount: len(comments),
		})
	}
	return summaries, nil
}

// GetSubjectDetail returns one subject with its comments in creation order.
// currentUser marks which comments belong to the caller.
func (s *DiscussionService) GetSubjectDetail(ctx context.Context, id, currentUser string) (dto.SubjectDetail, error) {
	subject, err := s.subjects.GetByID(ctx, id)
	if err != nil {
		return dto.SubjectDetail{}, fmt.Errorf("error retrieving subject: %w", err)
	}
	if subject == nil {
		return dto.SubjectDetail{}, apperrors.ErrSubjectNotFound
	}

	comments, err := s.comments.GetAllByPredicate(ctx, predicate.FieldEq("subject_id", id))
	if err != nil {
		return dto.SubjectDetail{}, fmt.Errorf("error retrieving comments: %w", err)
	}

	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt < comments[j].CreatedAt
	})

	views := make([]dto.CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, dto.CommentView{
			ID:            comment.ID,
			Comment:       comment.Comment,
			Sender:        comment.Sender,
			CreatedAt:     comment.CreatedAt,
			IsCurrentUser: currentUser != "" && comment.Sender == currentUser,
		})
	}

	return dto.SubjectDetail{
		ID:          subject.ID,
		Title:       subject.Title,
		Description: subject.Description,
		CreatedAt:   subject.CreatedAt,
		Comments:    views,
	}, nil
}

// CreateSubject opens a new discussion topic.
func (s *DiscussionService) CreateSubject(ctx context.Context, req dto.CreateSubjectRequest) (dto.SubjectSummary, error) {
	if strings.TrimSpace(req.Title) == "" {
		return dto.SubjectSummary{}, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	subject := &models.RoomSubject{
		BaseEntity:  models.NewBaseEntity(),
		Title:       req.Title,
		Description: req.Description,
	}

	if _, err := s.subjects.Add(ctx, subject); err != nil {
		return dto.SubjectSummary{}, fmt.Errorf("error creating subject: %w", err)
	}

	s.logger.Info().Str("subjectId", subject.ID).Str("title", subject.Title).Msg("Subject created")
	return dto.SubjectSummary{
		ID:          subject.ID,
		Title:       subject.Title,
		Description: subject.Description,
		CreatedAt:   subject.CreatedAt,
	}, nil
}

// EditSubject updates a topic's title and description.
func (s *DiscussionService) EditSubject(ctx context.Context, id string, req dto.UpdateSubjectRequest) (dto.SubjectSummary, error) {
	if strings.TrimSpace(req.Title) == "" {
		return dto.SubjectSummary{}, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	subject, err := s.subjects.GetByID(ctx, id)
	if err != nil {
		return dto.SubjectSummary{}, fmt.Errorf("error retrieving subject: %w", err)
	}
	if subject == nil {
		return dto.SubjectSummary{}, apperrors.ErrSubjectNotFound
	}

	subject.Title = req.Title
	subject.Description = req.Description

	if _, err := s.subjects.Update(ctx, subject); err != nil {
		return dto.SubjectSummary{}, fmt.Errorf("error updating subject: %w", err)
	}

	return dto.SubjectSummary{
		ID:          subject.ID,
		Title:       subject.Title,
		Description: subject.Description,
		CreatedAt:   subject.CreatedAt,
	}, nil
}

// AddComment appends a comment under an existing subject, attributed to
// sender.
func (s *DiscussionService) AddComment(ctx context.Context, subjectID, sender string, req dto.CommentRequest) (dto.CommentView, error) {
	if strings.TrimSpace(req.Comment) == "" {
		return dto.CommentView{}, fmt.Errorf("%w: comment cannot be empty", apperrors.ErrValidationFailed)
	}

	subject, err := s.subjects.GetByID(ctx, subjectID)
	if err != nil {
		return dto.CommentView{}, fmt.Errorf("error retrieving subject: %w", err)
	}
	if subject == nil {
		return dto.CommentView{}, apperrors.ErrSubjectNotFound
	}

	comment := &models.RoomSubjectComment{
		BaseEntity: models.NewBaseEntity(),
		SubjectID:  subjectID,
		Comment:    req.Comment,
		Sender:     sender,
	}

	if _, err := s.comments.Add(ctx, comment); err != nil {
		return dto.CommentView{}, fmt.Errorf("error creating comment: %w", err)
	}

	return dto.CommentView{
		ID:            comment.ID,
		Comment:       comment.Comment,
		Sender:        comment.Sender,
		CreatedAt:     comment.CreatedAt,
		IsCurrentUser: true,
	}, nil
}

// EditComment replaces a comment's text. Only the original sender may edit.
func (s *DiscussionService) EditComment(ctx context.Context, commentID, sender string, req dto.CommentRequest) (dto.CommentView, error) {
	if strings.TrimSpace(req.Comment) == "" {
		return dto.CommentView{}, fmt.Errorf("%w: comment cannot be empty", apperrors.ErrValidationFailed)
	}

	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return dto.CommentView{}, fmt.Errorf("error retrieving comment: %w", err)
	}
	if comment == nil {
		return dto.CommentView{}, apperrors.ErrCommentNotFound
	}
	if comment.Sender != sender {
		return dto.CommentView{}, apperrors.ErrPermissionDenied
	}

	comment.Comment = req.Comment

	if _, err := s.comments.Update(ctx, comment); err != nil {
		return dto.CommentView{}, fmt.Errorf("error updating comment: %w", err)
	}

	return dto.CommentView{
		ID:            comment.ID,
		Comment:       comment.Comment,
		Sender:        comment.Sender,
		CreatedAt:     comment.CreatedAt,
		IsCurrentUser: true,
	}, nil
}
