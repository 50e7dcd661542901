package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/adewale/gradlink/internal/app/controllers"
	"github.com/adewale/gradlink/internal/app/models/dto"
	"github.com/adewale/gradlink/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	programmeController *controllers.ProgrammeController,
	departmentController *controllers.DepartmentController,
	graduateController *controllers.GraduateController,
	discussionController *controllers.DiscussionController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Programme routes
	programmes := v1.Group("/programmes")
	{
		programmes.GET("", programmeController.GetAllProgrammes)
		programmes.GET("/:id", programmeController.GetProgrammeByID)
		programmes.POST("", programmeController.CreateProgramme)
		programmes.PUT("/:id", programmeController.UpdateProgramme)
		programmes.DELETE("/:id", programmeController.DeleteProgramme)
	}

	// Department routes
	departments := v1.Group("/departments")
	{
		departments.GET("", departmentController.GetAllDepartments)
		departments.GET("/:id", departmentController.GetDepartmentByID)
		departments.POST("", departmentController.CreateDepartment)
		departments.PUT("/:id", departmentController.UpdateDepartment)
		departments.DELETE("/:id", departmentController.DeleteDepartment)
	}

	// Graduate routes, including the bulk-import endpoints
	graduates := v1.Group("/graduates")
	{
		graduates.GET("", graduateController.GetAllGraduates)
		graduates.GET("/template", graduateController.DownloadTemplate)
		graduates.GET("/:id", graduateController.GetGraduateByID)
		graduates.POST("", graduateController.CreateGraduate)
		graduates.POST("/import", graduateController.ImportGraduates)
		graduates.POST("/preview", graduateController.PreviewImport)
		graduates.PUT("/:id", graduateController.UpdateGraduate)
		graduates.DELETE("/:id", graduateController.DeleteGraduate)
	}

	// Discussion board routes; writing comments requires authentication so
	// edits can be attributed to a sender.
	discussions := v1.Group("/discussions")
	{
		discussions.GET("", discussionController.GetAllSubjects)
		discussions.GET("/:id", discussionController.GetSubjectByID)
		discussions.POST("", discussionController.CreateSubject)
		discussions.PUT("/:id", discussionController.UpdateSubject)

		comments := discussions.Group("")
		comments.Use(authMiddleware.JWTAuth())
		{
			comments.POST("/:id/comments", discussionController.AddComment)
			comments.PUT("/comments/:commentId", discussionController.EditComment)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.OK(gin.H{"status": "ok"}))
	})
}
