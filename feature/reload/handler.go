package reload

import (
	"bufio"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// Handler serves the Server-Sent Events reload stream.
type Handler struct {
	hub *Hub
}

// NewHandler creates a new HTTP handler.
func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// RegisterRoutes registers the reload routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/events", h.HandleEvents)
}

// HandleEvents streams reload signals to the browser as SSE messages.
// The stream ends when the client disconnects or the hub shuts down.
func (h *Handler) HandleEvents(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	ch := h.hub.Subscribe()
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer h.hub.Unsubscribe(ch)

		_, _ = fmt.Fprint(w, "data: connected\n\n")
		if err := w.Flush(); err != nil {
			return
		}

		for range ch {
			_, _ = fmt.Fprint(w, "data: reload\n\n")
			if err := w.Flush(); err != nil {
				// Client went away; the hub forgets us on return
				return
			}
		}
	}))
	return nil
}
