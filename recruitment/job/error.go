package job

import (
	"net/http"

	"github.com/ajcportal/careerhub/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("JOB")

// Error codes
var (
	CodeJobNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job not found")
	CodeNotOwner         = ErrRegistry.Register("NOT_OWNER", errx.TypeAuthorization, http.StatusForbidden, "Job belongs to a different recruiter")
	CodeStudentsNotFound = ErrRegistry.Register("STUDENTS_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "One or more students do not exist")
	CodeInvalidRequest   = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request")
	CodeCreateFailed     = ErrRegistry.Register("CREATE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to create job")
)

// Helper functions
func ErrJobNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobNotFound)
}

func ErrNotOwner() *errx.Error {
	return ErrRegistry.New(CodeNotOwner)
}

func ErrStudentsNotFound() *errx.Error {
	return ErrRegistry.New(CodeStudentsNotFound)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrCreateFailed() *errx.Error {
	return ErrRegistry.New(CodeCreateFailed)
}
