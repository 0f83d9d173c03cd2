package matchsvc

import (
	"net/http"

	"github.com/ajcportal/careerhub/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("MATCHSVC")

// Error codes
var (
	CodeServiceUnavailable = ErrRegistry.Register("UNAVAILABLE", errx.TypeExternal, http.StatusBadGateway, "Matching service unreachable")
	CodeServiceFailed      = ErrRegistry.Register("FAILED", errx.TypeExternal, http.StatusBadGateway, "Matching service returned an error")
	CodeServiceProtocol    = ErrRegistry.Register("PROTOCOL", errx.TypeExternal, http.StatusBadGateway, "Unexpected response from matching service")
)

// Helper functions
func ErrServiceUnavailable() *errx.Error {
	return ErrRegistry.New(CodeServiceUnavailable)
}

func ErrServiceFailed() *errx.Error {
	return ErrRegistry.New(CodeServiceFailed)
}

func ErrServiceProtocol() *errx.Error {
	return ErrRegistry.New(CodeServiceProtocol)
}
