package matchingapi

import (
	"github.com/ajcportal/careerhub/pkg/kernel"
	"github.com/ajcportal/careerhub/recruitment/matching"
	"github.com/ajcportal/careerhub/recruitment/matching/matchingsrv"
	"github.com/ajcportal/careerhub/recruitment/recruiter"
	"github.com/ajcportal/careerhub/recruitment/recruiter/recruiterauth"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for the match-run pipeline
type Handlers struct {
	service *matchingsrv.MatchingService
}

// NewHandlers creates a new matching handlers instance
func NewHandlers(service *matchingsrv.MatchingService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// StartRun accepts a resume archive and starts a match run for a job
// POST /api/matching/runs (multipart: jobId + archive)
func (h *Handlers) StartRun(c *fiber.Ctx) error {
	actingID, ok := recruiterauth.GetRecruiterID(c)
	if !ok {
		return recruiter.ErrTokenInvalid()
	}

	jobID := kernel.NewJobID(c.FormValue("jobId"))

	fileHeader, err := c.FormFile("archive")
	if err != nil {
		return matching.ErrInvalidRequest().WithDetail("archive", "missing multipart file field")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return matching.ErrInvalidRequest().WithDetail("archive", err.Error())
	}
	defer file.Close()

	status, err := h.service.StartRun(c.Context(), actingID, jobID, fileHeader.Filename, file)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusAccepted).JSON(status)
}

// GetRunStatus returns the polling view of a run
// GET /api/matching/runs/:id
func (h *Handlers) GetRunStatus(c *fiber.Ctx) error {
	runID := kernel.NewRunID(c.Params("id"))
	if runID.IsEmpty() {
		return matching.ErrRunNotFound().WithDetail("id", "missing or empty")
	}

	status, err := h.service.GetRunStatus(c.Context(), runID)
	if err != nil {
		return err
	}

	return c.JSON(status)
}

// GetRunResults returns the stored ranked result list
// GET /api/matching/runs/:id/results
func (h *Handlers) GetRunResults(c *fiber.Ctx) error {
	runID := kernel.NewRunID(c.Params("id"))
	if runID.IsEmpty() {
		return matching.ErrRunNotFound().WithDetail("id", "missing or empty")
	}

	results, err := h.service.GetRunResults(c.Context(), runID)
	if err != nil {
		return err
	}

	return c.JSON(results)
}

// CancelRun stops a run before its notification goes out
// POST /api/matching/runs/:id/cancel
func (h *Handlers) CancelRun(c *fiber.Ctx) error {
	actingID, ok := recruiterauth.GetRecruiterID(c)
	if !ok {
		return recruiter.ErrTokenInvalid()
	}

	runID := kernel.NewRunID(c.Params("id"))
	if runID.IsEmpty() {
		return matching.ErrRunNotFound().WithDetail("id", "missing or empty")
	}

	resp, err := h.service.CancelRun(c.Context(), actingID, runID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// RegisterRoutes registers all match-run routes behind authentication
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api/matching", authMiddleware)

	api.Post("/runs", handlers.StartRun)
	api.Get("/runs/:id", handlers.GetRunStatus)
	api.Get("/runs/:id/results", handlers.GetRunResults)
	api.Post("/runs/:id/cancel", handlers.CancelRun)
}
