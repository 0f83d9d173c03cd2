package notification

import (
	"net/http"

	"github.com/ajcportal/careerhub/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("NOTIFY")

// Error codes
var (
	CodeInvalidRequest = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid notification request")
	CodeRenderFailed   = ErrRegistry.Register("RENDER_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to render email body")
	CodeSendFailed     = ErrRegistry.Register("SEND_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to send email")
)

// Helper functions
func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrRenderFailed() *errx.Error {
	return ErrRegistry.New(CodeRenderFailed)
}

func ErrSendFailed() *errx.Error {
	return ErrRegistry.New(CodeSendFailed)
}
