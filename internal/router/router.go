package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/avesong/go-api-skeleton/internal/handler"
)

// RegisterRoutes registers the system endpoints and the generated API
// documentation on the provided Echo instance.
func RegisterRoutes(e *echo.Echo, system *handler.SystemHandler) {
	// Liveness probe for load balancers and orchestration tooling.
	e.GET("/health", system.Health)
	// Service metadata for humans and tooling.
	e.GET("/info", system.Info)
	// Swagger UI backed by the generated docs package.
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
