package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKeyRequestID is the echo context key under which the request id is
// stored for handlers.
const ContextKeyRequestID = "request_id"

// RequestID propagates an inbound X-Request-ID header or generates a UUID
// when the client did not send one.  The id is echoed on the response and
// made available to handlers and the request logger.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, rid)
			c.Set(ContextKeyRequestID, rid)
			return next(c)
		}
	}
}
