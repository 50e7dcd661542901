package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adewale/gradlink/internal/app/models/dto"
	"github.com/adewale/gradlink/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto HTTP responses. Sentinel errors
// carry the status; a CustomError's message, when present, overrides the
// default wording.
func HandleAPIError(c *gin.Context, err error) {
	message := err.Error()

	switch {
	case errors.Is(err, apperrors.ErrProgrammeNotFound),
		errors.Is(err, apperrors.ErrDepartmentNotFound),
		errors.Is(err, apperrors.ErrGraduateNotFound),
		errors.Is(err, apperrors.ErrSubjectNotFound),
		errors.Is(err, apperrors.ErrCommentNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.Fail(message))

	case errors.Is(err, apperrors.ErrDuplicateMatricNumber),
		errors.Is(err, apperrors.ErrProgrammeHasDepartments),
		errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.Fail(message))

	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrUnsupportedFileType),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.Fail(message))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.Fail("Permission denied"))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.Fail("Token expired"))

	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.Fail("Invalid token"))

	default:
		c.JSON(http.StatusInternalServerError, dto.Fail("Internal server error"))
	}
}
