package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/swipefile/internal/services"
	"github.com/localnerve/swipefile/internal/types"
)

const sessionCookie = "cookie_session"

// AuthAdmin validates that the request has admin role authorization.
// With no validator configured every request passes.
func AuthAdmin(v services.SessionValidator) fiber.Handler {
	if v == nil {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}
	return func(c *fiber.Ctx) error {
		return authorize(c, v, []string{"admin"}, "authorization.admin")
	}
}

// authorize performs the authorization check
func authorize(c *fiber.Ctx, v services.SessionValidator, roles []string, errorType string) error {
	session := c.Cookies(sessionCookie)
	if session == "" {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: fmt.Sprintf("Authorizer cookie %q not found", sessionCookie),
			Type:    errorType,
		}
	}

	data, err := v.ValidateSession(session, roles)
	if err != nil {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: fmt.Sprintf("Invalid session: %v", err),
			Type:    errorType,
		}
	}

	if user, ok := data["user"]; ok {
		c.Locals("user", user)
	}

	return c.Next()
}
