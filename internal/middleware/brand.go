package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/swipefile/internal/types"
)

const (
	brandHeader = "X-Brand-Id"
	brandLocal  = "brandId"
)

// BrandScope reads an optional X-Brand-Id header. List routes fall back to it
// when the request carries no brandId query parameter.
func BrandScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(brandHeader)
		if raw == "" {
			return c.Next()
		}
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return types.NewError(fiber.StatusBadRequest, "validation.brand", "invalid %s header %q", brandHeader, raw)
		}
		c.Locals(brandLocal, id)
		return c.Next()
	}
}

// BrandID returns the brand scope of the request: the brandId query parameter
// first, then the X-Brand-Id header. Zero means unscoped.
func BrandID(c *fiber.Ctx) uint64 {
	if raw := c.Query("brandId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return id
		}
	}
	if id, ok := c.Locals(brandLocal).(uint64); ok {
		return id
	}
	return 0
}
