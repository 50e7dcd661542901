package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adewale/gradlink/internal/app/models/dto"
	"github.com/adewale/gradlink/internal/pkg/apperrors"
)

func recordError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	HandleAPIError(c, err)

	var body dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{apperrors.ErrProgrammeNotFound, http.StatusNotFound},
		{apperrors.ErrDepartmentNotFound, http.StatusNotFound},
		{apperrors.ErrGraduateNotFound, http.StatusNotFound},
		{apperrors.ErrSubjectNotFound, http.StatusNotFound},
		{apperrors.ErrCommentNotFound, http.StatusNotFound},
		{apperrors.ErrDuplicateMatricNumber, http.StatusConflict},
		{apperrors.ErrProgrammeHasDepartments, http.StatusConflict},
		{apperrors.ErrValidationFailed, http.StatusBadRequest},
		{apperrors.ErrUnsupportedFileType, http.StatusBadRequest},
		{apperrors.ErrPermissionDenied, http.StatusForbidden},
		{apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{apperrors.ErrTokenInvalid, http.StatusUnauthorized},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w, body := recordError(t, tc.err)
		assert.Equal(t, tc.status, w.Code, "error: %v", tc.err)
		assert.False(t, body.Success)
	}
}

func TestHandleAPIErrorKeepsCustomMessage(t *testing.T) {
	err := apperrors.NewCustomError(apperrors.ErrDuplicateMatricNumber,
		"Graduate with matric number 'M001' already exists")

	w, body := recordError(t, err)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Graduate with matric number 'M001' already exists", body.Message)
}

func TestHandleAPIErrorWrappedSentinelStillMaps(t *testing.T) {
	err := fmt.Errorf("error retrieving graduate: %w", apperrors.ErrGraduateNotFound)

	w, _ := recordError(t, err)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	_, body := recordError(t, fmt.Errorf("pq: connection refused"))
	assert.Equal(t, "Internal server error", body.Message)
}
