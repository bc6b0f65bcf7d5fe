package isolation_test

import (
	"net/http/httptest"
	"testing"

	"wasm-player-server/core/middleware/isolation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestNew_HeadersOnEveryResponse(t *testing.T) {
	app := fiber.New()
	app.Use(isolation.New())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/fail", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusInternalServerError).SendString("boom")
	})

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"Success", "/ok", 200},
		{"HandlerError", "/fail", 500},
		{"NotFound", "/missing", 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, "require-corp", resp.Header.Get("Cross-Origin-Embedder-Policy"))
			assert.Equal(t, "same-origin", resp.Header.Get("Cross-Origin-Opener-Policy"))
		})
	}
}
