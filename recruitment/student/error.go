package student

import (
	"net/http"

	"github.com/ajcportal/careerhub/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("STUDENT")

// Error codes
var (
	CodeStudentNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Student not found")
	CodeEmailInUse      = ErrRegistry.Register("EMAIL_IN_USE", errx.TypeConflict, http.StatusConflict, "A student with this email already exists")
	CodeInvalidRequest  = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request")
	CodeStorageFailure  = ErrRegistry.Register("STORAGE_FAILURE", errx.TypeInternal, http.StatusInternalServerError, "Failed to persist student")
)

// Helper functions
func ErrStudentNotFound() *errx.Error {
	return ErrRegistry.New(CodeStudentNotFound)
}

func ErrEmailInUse() *errx.Error {
	return ErrRegistry.New(CodeEmailInUse)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrStorageFailure() *errx.Error {
	return ErrRegistry.New(CodeStorageFailure)
}
