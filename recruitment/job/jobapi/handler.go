package jobapi

import (
	"github.com/ajcportal/careerhub/pkg/kernel"
	"github.com/ajcportal/careerhub/recruitment/job"
	"github.com/ajcportal/careerhub/recruitment/job/jobsrv"
	"github.com/ajcportal/careerhub/recruitment/recruiter/recruiterauth"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for job operations
type Handlers struct {
	service *jobsrv.JobService
}

// NewHandlers creates a new job handlers instance
func NewHandlers(service *jobsrv.JobService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateJob creates a new job under the authenticated recruiter
// POST /api/recruiter/create-job
func (h *Handlers) CreateJob(c *fiber.Ctx) error {
	var req job.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	actingID, err := recruiterauth.RequireIdentity(c, kernel.NewRecruiterID(req.RecruiterID))
	if err != nil {
		return err
	}

	created, err := h.service.CreateJob(c.Context(), actingID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(job.MutationResponse{
		Message: "Job created successfully",
		Job:     created,
		Success: true,
	})
}

// UpdateJob updates an owned job's posting fields
// POST /api/recruiter/update-job
func (h *Handlers) UpdateJob(c *fiber.Ctx) error {
	var req job.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	actingID, err := recruiterauth.RequireIdentity(c, kernel.NewRecruiterID(req.RecruiterID))
	if err != nil {
		return err
	}

	updated, err := h.service.UpdateJob(c.Context(), actingID, req)
	if err != nil {
		return err
	}

	return c.JSON(job.MutationResponse{
		Message: "Job updated successfully",
		Job:     updated,
		Success: true,
	})
}

// DeleteJob deletes an owned job
// POST /api/recruiter/delete-job
func (h *Handlers) DeleteJob(c *fiber.Ctx) error {
	var req job.DeleteJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	actingID, err := recruiterauth.RequireIdentity(c, kernel.NewRecruiterID(req.RecruiterID))
	if err != nil {
		return err
	}

	if err := h.service.DeleteJob(c.Context(), actingID, req); err != nil {
		return err
	}

	return c.JSON(job.MutationResponse{
		Message: "Job deleted successfully",
		Success: true,
	})
}

// GetRecruiter returns the recruiter profile with jobs and applicants
// resolved two levels deep
// POST /api/recruiter/get-recruiter
func (h *Handlers) GetRecruiter(c *fiber.Ctx) error {
	var req job.GetRecruiterRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	profile, err := h.service.GetRecruiterWithJobs(c.Context(), kernel.NewRecruiterID(req.RecruiterID))
	if err != nil {
		return err
	}

	return c.JSON(profile)
}

// ListAllJobs returns every job with its recruiter summary
// GET /api/recruiter/allJobs
func (h *Handlers) ListAllJobs(c *fiber.Ctx) error {
	jobs, err := h.service.ListAllJobs(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// ProcessCandidates attaches externally-supplied candidates to a job
// POST /api/recruiter/process-candidates
func (h *Handlers) ProcessCandidates(c *fiber.Ctx) error {
	var req job.ProcessCandidatesRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.ProcessCandidates(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// AddStudents attaches existing students to a job
// POST /api/recruiter/add-student
func (h *Handlers) AddStudents(c *fiber.Ctx) error {
	var req job.AddStudentsRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.AddStudentsToJob(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// RegisterRoutes registers all job routes. Listing is public, everything
// that mutates requires an authenticated recruiter.
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api/recruiter")

	api.Get("/allJobs", handlers.ListAllJobs)

	api.Post("/create-job", authMiddleware, handlers.CreateJob)
	api.Post("/update-job", authMiddleware, handlers.UpdateJob)
	api.Post("/delete-job", authMiddleware, handlers.DeleteJob)
	api.Post("/get-recruiter", authMiddleware, handlers.GetRecruiter)
	api.Post("/process-candidates", authMiddleware, handlers.ProcessCandidates)
	api.Post("/add-student", authMiddleware, handlers.AddStudents)
}
