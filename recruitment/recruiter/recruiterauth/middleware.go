package recruiterauth

import (
	"strings"

	"github.com/ajcportal/careerhub/pkg/kernel"
	"github.com/ajcportal/careerhub/recruitment/recruiter"
	"github.com/gofiber/fiber/v2"
)

// Middleware validates recruiter access tokens on protected routes
func Middleware(tokenService recruiter.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return recruiter.ErrTokenInvalid().WithDetail("reason", "missing authorization header")
		}

		// Format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return recruiter.ErrTokenInvalid().WithDetail("reason", "invalid authorization format")
		}

		claims, err := tokenService.ValidateAccessToken(parts[1])
		if err != nil {
			return err
		}

		c.Locals("recruiter_id", claims.RecruiterID)
		c.Locals("recruiter_email", claims.Email)

		return c.Next()
	}
}

// GetRecruiterID extracts the authenticated recruiter ID from context
func GetRecruiterID(c *fiber.Ctx) (kernel.RecruiterID, bool) {
	id, ok := c.Locals("recruiter_id").(kernel.RecruiterID)
	return id, ok
}

// GetRecruiterEmail extracts the authenticated recruiter email from context
func GetRecruiterEmail(c *fiber.Ctx) (kernel.Email, bool) {
	email, ok := c.Locals("recruiter_email").(kernel.Email)
	return email, ok
}

// RequireIdentity enforces that a client-supplied recruiter id (kept on the
// wire for SPA compatibility) matches the authenticated recruiter.
func RequireIdentity(c *fiber.Ctx, claimed kernel.RecruiterID) (kernel.RecruiterID, error) {
	actingID, ok := GetRecruiterID(c)
	if !ok {
		return "", recruiter.ErrTokenInvalid()
	}

	if !claimed.IsEmpty() && claimed != actingID {
		return "", recruiter.ErrIdentityMismatch().
			WithDetail("claimed_id", claimed.String()).
			WithDetail("authenticated_id", actingID.String())
	}

	return actingID, nil
}
