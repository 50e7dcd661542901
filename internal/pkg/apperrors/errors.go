package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Persistence errors. Repository operations surface every store failure
	// as this single generic condition.
	ErrPersistenceFailed = errors.New("persistence failed")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Token errors
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Programme errors
var (
	ErrProgrammeNotFound       = errors.New("programme not found")
	ErrProgrammeHasDepartments = errors.New("programme has departments and cannot be deleted")
)

// Department errors
var (
	ErrDepartmentNotFound = errors.New("department not found")
)

// Graduate errors
var (
	ErrGraduateNotFound      = errors.New("graduate not found")
	ErrDuplicateMatricNumber = errors.New("graduate with this matric number already exists")
)

// Discussion board errors
var (
	ErrSubjectNotFound = errors.New("subject not found")
	ErrCommentNotFound = errors.New("comment not found")
)

// Upload errors
var (
	ErrUnsupportedFileType = errors.New("only Excel files (.xlsx, .xls) are allowed")
)

// CustomError attaches a caller-facing message to one of the sentinel errors
// above so errors.Is keeps working through it.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel.
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}

// NewConflictError creates a conflict error with a message.
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewResourceNotFoundError creates a not-found error with a message.
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}
