package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adewale/gradlink/internal/app/models/dto"
	"github.com/adewale/gradlink/internal/app/services"
	"github.com/adewale/gradlink/internal/middleware"
)

// GraduateController handles graduate profile operations, including the
// spreadsheet bulk-import endpoints.
type GraduateController struct {
	graduateService *services.GraduateService
}

// NewGraduateController creates a new GraduateController
func NewGraduateController(graduateService *services.GraduateService) *GraduateController {
	return &GraduateController{
		graduateService: graduateService,
	}
}

// GetAllGraduates retrieves all graduates
// @Summary Get all graduates
// @Description Retrieves all graduates, newest first, with department and programme names
// @Tags graduates
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.GraduateResponse} "Graduates retrieved successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /graduates [get]
func (c *GraduateController) GetAllGraduates(ctx *gin.Context) {
	graduates, err := c.graduateService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(graduates))
}

// GetGraduateByID retrieves a graduate by ID
// @Summary Get graduate by ID
// @Description Retrieves a specific graduate by its ID
// @Tags graduates
// @Accept json
// @Produce json
// @Param id path string true "Graduate ID"
// @Success 200 {object} dto.APIResponse{data=dto.GraduateResponse} "Graduate retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Graduate not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /graduates/{id} [get]
func (c *GraduateController) GetGraduateByID(ctx *gin.Context) {
	graduate, err := c.graduateService.Get(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(graduate))
}

// CreateGraduate handles single graduate creation
// @Summary Create a graduate
// @Description Creates a single graduate profile
// @Tags graduates
// @Accept json
// @Produce json
// @Param request body dto.GraduateRequest true "Graduate information"
// @Success 201 {object} dto.APIResponse{data=dto.GraduateResponse} "Graduate created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Failure 409 {object} dto.APIResponse "Matric number already exists"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /graduates [post]
func (c *GraduateController) CreateGraduate(ctx *gin.Context) {
	var req dto.GraduateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid graduate data: "+err.Error()))
		return
	}

	graduate, err := c.graduateService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.OK(graduate))
}

// UpdateGraduate updates an existing graduate
// @Summary Update a graduate
// @Description Updates an existing graduate profile
// @Tags graduates
// @Accept json
// @Produce json
// @Param id path string true "Graduate ID"
// @Param request body dto.GraduateRequest true "Updated graduate information"
// @Success 200 {object} dto.APIResponse{data=dto.GraduateResponse} "Graduate updated successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Graduate not found"
// @Failure 409 {object} dto.APIResponse "Matric number already exists"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /graduates/{id} [put]
func (c *GraduateController) UpdateGraduate(ctx *gin.Context) {
	var req dto.GraduateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid graduate data: "+err.Error()))
		return
	}

	graduate, err := c.graduateService.Update(ctx, ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(graduate))
}

// DeleteGraduate deletes a graduate
// @Summary Delete a graduate
// @Description Deletes a graduate profile by ID
// @Tags graduates
// @Accept json
// @Produce json
// @Param id path string true "Graduate ID"
// @Success 200 {object} dto.APIResponse "Graduate deleted successfully"
// @Failure 404 {object} dto.APIResponse "Graduate not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /graduates/{id} [delete]
func (c *GraduateController) DeleteGraduate(ctx *gin.Context) {
	if err := c.graduateService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OKWithMessage(nil, "Graduate deleted"))
}

// ImportGraduates bulk-imports graduates from a spreadsheet
// @Summary Import graduates from Excel
// @Description Processes an uploaded workbook row by row. Row failures are reported, not fatal.
// @Tags graduates
// @Accept multipart/form-data
// @Produce json
// @Param departmentId formData string true "Department ID the rows belong to"
// @Param yearOfGraduation formData int true "Graduation year applied to every row"
// @Param excelFile formData file true "Workbook (.xlsx or .xls)"
// @Success 200 {object} importer.Result "Import report"
// @Failure 400 {object} dto.APIResponse "Missing or invalid upload"
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /graduates/import [post]
func (c *GraduateController) ImportGraduates(ctx *gin.Context) {
	departmentID := ctx.PostForm("departmentId")
	if departmentID == "" {
		ctx.JSON(http.StatusBadRequest, dto.Fail("departmentId is required"))
		return
	}

	year, err := strconv.Atoi(ctx.PostForm("yearOfGraduation"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("yearOfGraduation must be a valid year"))
		return
	}

	fileHeader, err := ctx.FormFile("excelFile")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("excelFile is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Could not read uploaded file"))
		return
	}
	defer file.Close()

	result, err := c.graduateService.ImportFromUpload(ctx, file, fileHeader.Filename, departmentID, year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// PreviewImport validates a spreadsheet's structure without importing
// @Summary Preview an import file
// @Description Checks the workbook's headers and returns the first few rows
// @Tags graduates
// @Accept multipart/form-data
// @Produce json
// @Param excelFile formData file true "Workbook (.xlsx or .xls)"
// @Success 200 {object} importer.Validation "Validation report"
// @Failure 400 {object} dto.APIResponse "Missing or invalid upload"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /graduates/preview [post]
func (c *GraduateController) PreviewImport(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("excelFile")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("excelFile is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Could not read uploaded file"))
		return
	}
	defer file.Close()

	validation, err := c.graduateService.PreviewUpload(file, fileHeader.Filename)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, validation)
}

// DownloadTemplate streams the import template workbook
// @Summary Download the import template
// @Description Returns an Excel workbook with the expected columns, an example row, and instructions
// @Tags graduates
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Template workbook"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /graduates/template [get]
func (c *GraduateController) DownloadTemplate(ctx *gin.Context) {
	template, err := c.graduateService.Template()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer template.Close()

	filename := fmt.Sprintf("graduate_import_template_%s.xlsx", time.Now().Format("20060102"))
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := template.Write(ctx.Writer); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
}
