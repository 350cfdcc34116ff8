package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestLogger emits one structured log line per request.  The level
// follows the status class: 5xx at error, 4xx at warn, everything else at
// info.  Errors returned by downstream handlers are dispatched to the
// central error handler here so the logged status is the one the client saw.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Int("status", res.Status),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("bytes_out", res.Size),
				zap.String("remote_ip", c.RealIP()),
				zap.String("user_agent", req.UserAgent()),
			}
			if rid, ok := c.Get(ContextKeyRequestID).(string); ok && rid != "" {
				fields = append(fields, zap.String("request_id", rid))
			}
			if q := req.URL.RawQuery; q != "" {
				fields = append(fields, zap.String("query", q))
			}

			switch {
			case res.Status >= 500:
				log.Error("request completed with server error", fields...)
			case res.Status >= 400:
				log.Warn("request completed with client error", fields...)
			default:
				log.Info("request completed", fields...)
			}
			return nil
		}
	}
}
