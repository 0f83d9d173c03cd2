package notifyapi

import (
	"github.com/ajcportal/careerhub/recruitment/notification"
	"github.com/ajcportal/careerhub/recruitment/notification/notifysrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for notification operations
type Handlers struct {
	service *notifysrv.NotificationService
}

// NewHandlers creates a new notification handlers instance
func NewHandlers(service *notifysrv.NotificationService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// SendDigest composes and sends a candidate digest email
// POST /api/send-mail
func (h *Handlers) SendDigest(c *fiber.Ctx) error {
	var req notification.SendDigestRequest
	if err := c.BodyParser(&req); err != nil {
		return notification.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.service.SendCandidateDigest(c.Context(), req); err != nil {
		return err
	}

	return c.JSON(notification.SendDigestResponse{
		Message: "Email sent successfully",
		Success: true,
	})
}

// RegisterRoutes registers the notification routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	app.Post("/api/send-mail", authMiddleware, handlers.SendDigest)
}
