package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const (
	versionHeader  = "X-Api-Version"
	defaultVersion = "1.0.0"
)

// VersionMiddleware parses the X-Api-Version header, stores it in context and echoes it
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get(versionHeader, defaultVersion)

		// Support version aliases
		switch version {
		case "1", "1.0":
			version = defaultVersion
		}

		c.Locals("apiVersion", version)
		c.Set(versionHeader, version)

		return c.Next()
	}
}
