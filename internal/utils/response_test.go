package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponseEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/missing", func(c *fiber.Ctx) error {
		return NotFoundResponse(c, "brand 7 not found")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing?x=1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body ErrorResponseStruct
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, fiber.StatusNotFound, body.Status)
	assert.Equal(t, "brand 7 not found", body.Message)
	assert.Equal(t, "/missing?x=1", body.URL)
	assert.Equal(t, "notFound", body.Type)
	assert.False(t, body.Ok)
	assert.NotEmpty(t, body.Timestamp)
}

func TestMutationSuccessResponse(t *testing.T) {
	app := fiber.New()
	app.Delete("/thing", func(c *fiber.Ctx) error {
		return MutationSuccessResponse(c, 3)
	})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/thing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body SuccessResponseStruct
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Ok)
	assert.Equal(t, int64(3), body.AffectedRows)
}
