package recruiterapi

import (
	"github.com/ajcportal/careerhub/recruitment/recruiter"
	"github.com/ajcportal/careerhub/recruitment/recruiter/recruitersrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for recruiter account operations
type Handlers struct {
	service *recruitersrv.RecruiterService
}

// NewHandlers creates a new recruiter handlers instance
func NewHandlers(service *recruitersrv.RecruiterService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Signup registers a new recruiter account
// POST /api/recruiter/signup
func (h *Handlers) Signup(c *fiber.Ctx) error {
	var req recruiter.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return recruiter.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	rec, err := h.service.Signup(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(recruiter.AuthResponse{
		Message:   "Recruiter registered successfully",
		Recruiter: rec,
		Success:   true,
	})
}

// Login authenticates a recruiter and returns an access token
// POST /api/recruiter/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req recruiter.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return recruiter.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	rec, token, err := h.service.Login(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(recruiter.AuthResponse{
		Message:     "Login successful",
		Recruiter:   rec,
		AccessToken: token,
		Success:     true,
	})
}

// RegisterRoutes registers all recruiter account routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/recruiter")

	api.Post("/signup", handlers.Signup)
	api.Post("/login", handlers.Login)
}
