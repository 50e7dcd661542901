package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adewale/gradlink/internal/app/models/dto"
	"github.com/adewale/gradlink/internal/app/services"
	"github.com/adewale/gradlink/internal/middleware"
)

// ProgrammeController handles programme-related operations
type ProgrammeController struct {
	programmeService *services.ProgrammeService
}

// NewProgrammeController creates a new ProgrammeController
func NewProgrammeController(programmeService *services.ProgrammeService) *ProgrammeController {
	return &ProgrammeController{
		programmeService: programmeService,
	}
}

// GetAllProgrammes retrieves all programmes
// @Summary Get all programmes
// @Description Retrieves a list of all programmes, newest first
// @Tags programmes
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ProgrammeResponse} "Programmes retrieved successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /programmes [get]
func (c *ProgrammeController) GetAllProgrammes(ctx *gin.Context) {
	programmes, err := c.programmeService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(programmes))
}

// GetProgrammeByID retrieves a programme by ID
// @Summary Get programme by ID
// @Description Retrieves a specific programme by its ID
// @Tags programmes
// @Accept json
// @Produce json
// @Param id path string true "Programme ID"
// @Success 200 {object} dto.APIResponse{data=dto.ProgrammeResponse} "Programme retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Programme not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /programmes/{id} [get]
func (c *ProgrammeController) GetProgrammeByID(ctx *gin.Context) {
	programme, err := c.programmeService.Get(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(programme))
}

// CreateProgramme handles programme creation
// @Summary Create a new programme
// @Description Creates a new programme with the provided information
// @Tags programmes
// @Accept json
// @Produce json
// @Param request body dto.ProgrammeRequest true "Programme information"
// @Success 201 {object} dto.APIResponse{data=dto.ProgrammeResponse} "Programme created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /programmes [post]
func (c *ProgrammeController) CreateProgramme(ctx *gin.Context) {
	var req dto.ProgrammeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid programme data: "+err.Error()))
		return
	}

	programme, err := c.programmeService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.OK(programme))
}

// UpdateProgramme updates an existing programme
// @Summary Update a programme
// @Description Updates an existing programme with the provided information
// @Tags programmes
// @Accept json
// @Produce json
// @Param id path string true "Programme ID"
// @Param request body dto.ProgrammeRequest true "Updated programme information"
// @Success 200 {object} dto.APIResponse{data=dto.ProgrammeResponse} "Programme updated successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Programme not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /programmes/{id} [put]
func (c *ProgrammeController) UpdateProgramme(ctx *gin.Context) {
	var req dto.ProgrammeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid programme data: "+err.Error()))
		return
	}

	programme, err := c.programmeService.Update(ctx, ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(programme))
}

// DeleteProgramme deletes a programme
// @Summary Delete a programme
// @Description Deletes a programme. Fails while departments still reference it.
// @Tags programmes
// @Accept json
// @Produce json
// @Param id path string true "Programme ID"
// @Success 200 {object} dto.APIResponse "Programme deleted successfully"
// @Failure 404 {object} dto.APIResponse "Programme not found"
// @Failure 409 {object} dto.APIResponse "Programme still has departments"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /programmes/{id} [delete]
func (c *ProgrammeController) DeleteProgramme(ctx *gin.Context) {
	if err := c.programmeService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OKWithMessage(nil, "Programme deleted"))
}
