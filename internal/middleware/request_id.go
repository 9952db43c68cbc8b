package middleware

import (
	"edubridge/internal/util"

	"github.com/gofiber/fiber/v2"
)

const (
	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID assigns a ULID to every request, or keeps a valid one supplied
// by the caller, and exposes it through the header, Locals and the user context.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if !util.IsULID(id) {
			id = util.NewULID()
		}
		c.Locals(requestIDKey, id)
		c.SetUserContext(util.WithRequestID(c.UserContext(), id))
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}

// RequestIDFromCtx returns the id assigned by RequestID, or "".
func RequestIDFromCtx(c *fiber.Ctx) string {
	id, _ := c.Locals(requestIDKey).(string)
	return id
}
