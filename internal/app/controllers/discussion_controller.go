package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adewale/gradlink/internal/app/models/dto"
	"github.com/adewale/gradlink/internal/app/services"
	"github.com/adewale/gradlink/internal/middleware"
)

// DiscussionController handles the discussion board endpoints
type DiscussionController struct {
	discussionService *services.DiscussionService
}

// NewDiscussionController creates a new DiscussionController
func NewDiscussionController(discussionService *services.DiscussionService) *DiscussionController {
	return &DiscussionController{
		discussionService: discussionService,
	}
}

// GetAllSubjects lists discussion subjects
// @Summary Get all discussion subjects
// @Description Retrieves every subject, newest first, with comment counts
// @Tags discussions
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.SubjectSummary} "Subjects retrieved successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /discussions [get]
func (c *DiscussionController) GetAllSubjects(ctx *gin.Context) {
	subjects, err := c.discussionService.ListSubjects(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(subjects))
}

// GetSubjectByID retrieves a subject with its comments
// @Summary Get a discussion subject
// @Description Retrieves one subject and its comments in creation order
// @Tags discussions
// @Accept json
// @Produce json
// @Param id path string true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=dto.SubjectDetail} "Subject retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Subject not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /discussions/{id} [get]
func (c *DiscussionController) GetSubjectByID(ctx *gin.Context) {
	detail, err := c.discussionService.GetSubjectDetail(ctx, ctx.Param("id"), middleware.CurrentUser(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(detail))
}

// CreateSubject opens a new discussion subject
// @Summary Create a discussion subject
// @Description Opens a new discussion topic
// @Tags discussions
// @Accept json
// @Produce json
// @Param request body dto.CreateSubjectRequest true "Subject information"
// @Success 201 {object} dto.APIResponse{data=dto.SubjectSummary} "Subject created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /discussions [post]
func (c *DiscussionController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid subject data: "+err.Error()))
		return
	}

	subject, err := c.discussionService.CreateSubject(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.OK(subject))
}

// UpdateSubject edits a subject's title and description
// @Summary Update a discussion subject
// @Description Edits an existing topic's title and description
// @Tags discussions
// @Accept json
// @Produce json
// @Param id path string true "Subject ID"
// @Param request body dto.UpdateSubjectRequest true "Updated subject information"
// @Success 200 {object} dto.APIResponse{data=dto.SubjectSummary} "Subject updated successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Subject not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /discussions/{id} [put]
func (c *DiscussionController) UpdateSubject(ctx *gin.Context) {
	var req dto.UpdateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid subject data: "+err.Error()))
		return
	}

	subject, err := c.discussionService.EditSubject(ctx, ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(subject))
}

// AddComment appends a comment to a subject
// @Summary Add a comment
// @Description Appends a comment under a subject, attributed to the authenticated user
// @Tags discussions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subject ID"
// @Param request body dto.CommentRequest true "Comment text"
// @Success 201 {object} dto.APIResponse{data=dto.CommentView} "Comment created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Subject not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /discussions/{id}/comments [post]
func (c *DiscussionController) AddComment(ctx *gin.Context) {
	var req dto.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid comment data: "+err.Error()))
		return
	}

	comment, err := c.discussionService.AddComment(ctx, ctx.Param("id"), middleware.CurrentUser(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.OK(comment))
}

// EditComment replaces a comment's text
// @Summary Edit a comment
// @Description Replaces a comment's text. Only the original sender may edit.
// @Tags discussions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param commentId path string true "Comment ID"
// @Param request body dto.CommentRequest true "Updated comment text"
// @Success 200 {object} dto.APIResponse{data=dto.CommentView} "Comment updated successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Not the comment's sender"
// @Failure 404 {object} dto.APIResponse "Comment not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /discussions/comments/{commentId} [put]
func (c *DiscussionController) EditComment(ctx *gin.Context) {
	var req dto.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid comment data: "+err.Error()))
		return
	}

	comment, err := c.discussionService.EditComment(ctx, ctx.Param("commentId"), middleware.CurrentUser(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(comment))
}
