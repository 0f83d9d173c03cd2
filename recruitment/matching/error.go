package matching

import (
	"net/http"

	"github.com/ajcportal/careerhub/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("MATCHRUN")

// Error codes
var (
	CodeRunNotFound     = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Match run not found")
	CodeInvalidArchive  = ErrRegistry.Register("INVALID_ARCHIVE", errx.TypeValidation, http.StatusBadRequest, "Uploaded file must be a zip archive")
	CodeInvalidRequest  = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request")
	CodeNotCancellable  = ErrRegistry.Register("NOT_CANCELLABLE", errx.TypeConflict, http.StatusConflict, "Run can no longer be cancelled")
	CodeResultsNotReady = ErrRegistry.Register("RESULTS_NOT_READY", errx.TypeConflict, http.StatusConflict, "Run has no results yet")
	CodeStartFailed     = ErrRegistry.Register("START_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to start match run")
)

// Helper functions
func ErrRunNotFound() *errx.Error {
	return ErrRegistry.New(CodeRunNotFound)
}

func ErrInvalidArchive() *errx.Error {
	return ErrRegistry.New(CodeInvalidArchive)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrNotCancellable() *errx.Error {
	return ErrRegistry.New(CodeNotCancellable)
}

func ErrResultsNotReady() *errx.Error {
	return ErrRegistry.New(CodeResultsNotReady)
}

func ErrStartFailed() *errx.Error {
	return ErrRegistry.New(CodeStartFailed)
}
