package isolation

import (
	"github.com/gofiber/fiber/v2"
)

// Header values browsers require before exposing SharedArrayBuffer,
// which the WASM player needs for threading.
const (
	EmbedderPolicyHeader = "Cross-Origin-Embedder-Policy"
	EmbedderPolicyValue  = "require-corp"
	OpenerPolicyHeader   = "Cross-Origin-Opener-Policy"
	OpenerPolicyValue    = "same-origin"
)

// New returns a middleware that sets the cross-origin isolation headers
// on every response, error responses included. The headers are set before
// the handler runs so they survive any status the chain produces.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(EmbedderPolicyHeader, EmbedderPolicyValue)
		c.Set(OpenerPolicyHeader, OpenerPolicyValue)
		return c.Next()
	}
}
