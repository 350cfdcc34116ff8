package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/avesong/go-api-skeleton/internal/response"
)

// NewHTTPErrorHandler returns the central echo error handler.  Every error
// that reaches it, whatever its shape, is normalized into exactly one
// failure envelope and status:
//
//  1. *response.APIError keeps its own status, code, message and details.
//  2. *echo.HTTPError (404s, 405s, bind failures, recovered panics) keeps
//     its status; the code comes from the status table and the message is
//     used only when it is a plain string.
//  3. Anything else becomes a 500 INTERNAL_SERVER_ERROR with a generic
//     message.  The real error is logged, never sent to the client.
func NewHTTPErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		apiErr := normalize(err)

		fields := []zap.Field{
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Int("status", apiErr.Status),
			zap.String("error_code", string(apiErr.Code)),
			zap.Error(err),
		}
		if rid := c.Response().Header().Get(echo.HeaderXRequestID); rid != "" {
			fields = append(fields, zap.String("request_id", rid))
		}
		if apiErr.Status >= http.StatusInternalServerError {
			log.Error("request failed", fields...)
		} else {
			log.Warn("request rejected", fields...)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(apiErr.Status)
		} else {
			writeErr = c.JSON(apiErr.Status, apiErr.Envelope())
		}
		if writeErr != nil {
			log.Error("failed to write error response", zap.Error(writeErr))
		}
	}
}

// normalize maps an arbitrary error value onto the fixed taxonomy.
func normalize(err error) *response.APIError {
	var apiErr *response.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg := ""
		if s, ok := httpErr.Message.(string); ok {
			msg = s
		}
		return response.FromStatus(httpErr.Code, msg)
	}

	return response.NewInternal()
}
