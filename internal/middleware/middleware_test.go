package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/swipefile/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeValidator struct {
	roles []string
}

func (f *fakeValidator) ValidateSession(cookie string, roles []string) (map[string]interface{}, error) {
	f.roles = roles
	if cookie != "good" {
		return nil, errors.New("expired")
	}
	return map[string]interface{}{"user": "ops@example.com"}, nil
}

func newApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var custom *types.CustomError
			if errors.As(err, &custom) {
				return c.Status(custom.Code).SendString(custom.Type)
			}
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		},
	})
}

func TestAuthAdminWithoutValidatorPasses(t *testing.T) {
	app := newApp()
	app.Delete("/x", AuthAdmin(nil), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestAuthAdmin(t *testing.T) {
	v := &fakeValidator{}
	app := newApp()
	app.Delete("/x", AuthAdmin(v), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user").(string))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req := httptest.NewRequest(http.MethodDelete, "/x", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "stale"})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest(http.MethodDelete, "/x", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "good"})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"admin"}, v.roles)
}

func TestVersionMiddleware(t *testing.T) {
	app := newApp()
	app.Use(VersionMiddleware())
	app.Get("/v", func(c *fiber.Ctx) error { return c.SendString(c.Locals("apiVersion").(string)) })

	req := httptest.NewRequest(http.MethodGet, "/v", nil)
	req.Header.Set(versionHeader, "1.0")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, defaultVersion, resp.Header.Get(versionHeader))
}

func TestBrandScope(t *testing.T) {
	app := newApp()
	app.Use(BrandScope())
	app.Get("/b", func(c *fiber.Ctx) error { return c.JSON(BrandID(c)) })

	cases := []struct {
		name   string
		target string
		header string
		status int
	}{
		{"none", "/b", "", fiber.StatusOK},
		{"header", "/b", "7", fiber.StatusOK},
		{"query wins", "/b?brandId=3", "7", fiber.StatusOK},
		{"bad header", "/b", "x", fiber.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.header != "" {
				req.Header.Set(brandHeader, tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
