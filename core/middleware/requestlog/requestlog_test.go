package requestlog

import (
	"net/http/httptest"
	"testing"

	"server-relay/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_LogsRequestWithRayID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	app := fiber.New()
	app.Use(rayid.New())
	app.Use(New(zap.New(core)))
	app.Get("/messages", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusTeapot).SendString("x")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/messages", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	entries := logs.FilterMessage("Request handled").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/messages", fields["path"])
	assert.Equal(t, int64(fiber.StatusTeapot), fields["status"])
	assert.Equal(t, resp.Header.Get(rayid.HeaderName), fields["ray_id"])
}

func TestNew_LogsHandlerError(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	app := fiber.New()
	app.Use(New(zap.New(core)))
	app.Get("/", func(c *fiber.Ctx) error {
		return fiber.ErrBadRequest
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("Request error").Len())
}
