package studentapi

import (
	"github.com/ajcportal/careerhub/recruitment/student"
	"github.com/ajcportal/careerhub/recruitment/student/studentsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for candidate profile operations
type Handlers struct {
	service *studentsrv.StudentService
}

// NewHandlers creates a new student handlers instance
func NewHandlers(service *studentsrv.StudentService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// AddStudent creates a new candidate profile
// POST /api/student/add
func (h *Handlers) AddStudent(c *fiber.Ctx) error {
	var req student.AddStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return student.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	stu, err := h.service.AddStudent(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(student.StudentResponse{
		Message: "Student added successfully",
		Student: stu,
		Success: true,
	})
}

// DeleteStudent removes a candidate profile
// POST /api/student/delete
func (h *Handlers) DeleteStudent(c *fiber.Ctx) error {
	var req student.DeleteStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return student.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.service.DeleteStudent(c.Context(), req); err != nil {
		return err
	}

	return c.JSON(student.StudentResponse{
		Message: "Student deleted successfully",
		Success: true,
	})
}

// ListStudents returns every candidate profile
// GET /api/student/all
func (h *Handlers) ListStudents(c *fiber.Ctx) error {
	students, err := h.service.ListStudents(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(students)
}

// RegisterRoutes registers all student routes. Mutating routes require an
// authenticated recruiter.
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api/student")

	api.Post("/add", authMiddleware, handlers.AddStudent)
	api.Post("/delete", authMiddleware, handlers.DeleteStudent)
	api.Get("/all", handlers.ListStudents)
}
