package recruiter

import (
	"net/http"

	"github.com/ajcportal/careerhub/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("RECRUITER")

// Error codes
var (
	CodeRecruiterNotFound   = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Recruiter not found")
	CodeEmailAlreadyUsed    = ErrRegistry.Register("EMAIL_ALREADY_USED", errx.TypeConflict, http.StatusConflict, "Email already registered")
	CodeInvalidCredentials  = ErrRegistry.Register("INVALID_CREDENTIALS", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid credentials")
	CodeInvalidRequest      = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request")
	CodeTokenInvalid        = ErrRegistry.Register("TOKEN_INVALID", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid or expired token")
	CodeIdentityMismatch    = ErrRegistry.Register("IDENTITY_MISMATCH", errx.TypeAuthorization, http.StatusForbidden, "Request identity does not match authenticated recruiter")
	CodeSignupFailed        = ErrRegistry.Register("SIGNUP_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to create recruiter")
	CodePasswordHashFailure = ErrRegistry.Register("PASSWORD_HASH_FAILURE", errx.TypeInternal, http.StatusInternalServerError, "Failed to process password")
)

// Helper functions
func ErrRecruiterNotFound() *errx.Error {
	return ErrRegistry.New(CodeRecruiterNotFound)
}

func ErrEmailAlreadyUsed() *errx.Error {
	return ErrRegistry.New(CodeEmailAlreadyUsed)
}

func ErrInvalidCredentials() *errx.Error {
	return ErrRegistry.New(CodeInvalidCredentials)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrTokenInvalid() *errx.Error {
	return ErrRegistry.New(CodeTokenInvalid)
}

func ErrIdentityMismatch() *errx.Error {
	return ErrRegistry.New(CodeIdentityMismatch)
}

func ErrSignupFailed() *errx.Error {
	return ErrRegistry.New(CodeSignupFailed)
}

func ErrPasswordHashFailure() *errx.Error {
	return ErrRegistry.New(CodePasswordHashFailure)
}
