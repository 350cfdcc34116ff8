package handler // handler contains the HTTP handlers for the system endpoints

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/avesong/go-api-skeleton/internal/config"
	"github.com/avesong/go-api-skeleton/internal/response"
)

var startTime = time.Now()

// SystemHandler serves the liveness and info endpoints.  The mongo client is
// optional; when present its ping state is reported under dependencies.
type SystemHandler struct {
	cfg   config.Config
	mongo *mongo.Client
}

func NewSystemHandler(cfg config.Config, client *mongo.Client) *SystemHandler {
	return &SystemHandler{cfg: cfg, mongo: client}
}

// HealthData is the payload of the liveness probe.
type HealthData struct {
	Status       string            `json:"status" example:"ok"`
	Uptime       string            `json:"uptime" example:"2h30m45s"`
	Timestamp    string            `json:"timestamp" example:"2026-01-01T12:00:00Z"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// InfoData is the payload of the service info endpoint.
type InfoData struct {
	Name        string `json:"name" example:"go-api-skeleton"`
	Version     string `json:"version" example:"1.0.0"`
	Environment string `json:"environment" example:"dev"`
	GoVersion   string `json:"goVersion" example:"go1.24.3"`
	StartedAt   string `json:"startedAt" example:"2026-01-01T10:00:00Z"`
}

// Health godoc
//
//	@Summary		Liveness probe
//	@Description	Reports process uptime and dependency reachability. Always 200 while the process serves requests; orchestrators restart on process death, not on degraded dependencies.
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	response.APIResponse{data=handler.HealthData}
//	@Router			/health [get]
func (h *SystemHandler) Health(c echo.Context) error {
	data := HealthData{
		Status:    "ok",
		Uptime:    time.Since(startTime).Round(time.Second).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if h.mongo != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		state := "ok"
		if err := h.mongo.Ping(ctx, readpref.Primary()); err != nil {
			state = "unreachable"
		}
		data.Dependencies = map[string]string{"mongodb": state}
	}

	return response.OK(c, http.StatusOK, "service is healthy", data)
}

// Info godoc
//
//	@Summary		Service info
//	@Description	Returns service name, version, environment and runtime details.
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	response.APIResponse{data=handler.InfoData}
//	@Router			/info [get]
func (h *SystemHandler) Info(c echo.Context) error {
	data := InfoData{
		Name:        h.cfg.ServiceName,
		Version:     h.cfg.ServiceVersion,
		Environment: h.cfg.Env,
		GoVersion:   runtime.Version(),
		StartedAt:   startTime.UTC().Format(time.RFC3339),
	}
	return response.OK(c, http.StatusOK, "service info", data)
}
