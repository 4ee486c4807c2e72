package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/clothes-catalog/internal/middleware"
	"github.com/deppfellow/clothes-catalog/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HealthHandler reports whether the service and its dependencies are
// reachable.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckResult is the outcome of one dependency ping.
type CheckResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// HealthResponse is the body of GET /status.
type HealthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]CheckResult `json:"checks"`
}

// check pings one dependency and records a HealthCheckError custom event
// in New Relic when it fails.
func (h *HealthHandler) check(ctx context.Context, logger zerolog.Logger, name string, ping func(context.Context) error) CheckResult {
	ctx, cancel := context.WithTimeout(ctx, h.server.Config.Observability.HealthChecks.Timeout)
	defer cancel()

	start := time.Now()
	err := ping(ctx)
	elapsed := time.Since(start)

	if err == nil {
		logger.Debug().Str("check", name).Dur("response_time", elapsed).Msg("health check passed")
		return CheckResult{Status: "healthy", ResponseTime: elapsed.String()}
	}

	logger.Error().Err(err).Str("check", name).Dur("response_time", elapsed).Msg("health check failed")

	if h.server.LoggerService != nil && h.server.LoggerService.GetApplication() != nil {
		h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", map[string]interface{}{
			"check_type":       name,
			"error_type":       name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})
	}

	return CheckResult{Status: "unhealthy", ResponseTime: elapsed.String(), Error: err.Error()}
}

// CheckHealth pings PostgreSQL and Redis, skipping checks disabled in the
// observability config. It answers 503 when the database is down, or when
// Redis is down while notifications depend on it.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	obs := h.server.Config.Observability
	ctx := c.Request().Context()
	logger := middleware.GetLogger(c).With().Str("operation", "health_check").Logger()

	response := HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]CheckResult),
	}

	healthy := true

	if obs.HealthCheckEnabled("database") {
		db := h.check(ctx, logger, "database", h.server.DB.Pool.Ping)
		response.Checks["database"] = db
		healthy = db.Status == "healthy"
	}

	if h.server.Redis != nil && obs.HealthCheckEnabled("redis") {
		redisCheck := h.check(ctx, logger, "redis", func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		})
		response.Checks["redis"] = redisCheck
		if redisCheck.Status != "healthy" && h.server.Job != nil {
			healthy = false
		}
	}

	if !healthy {
		response.Status = "unhealthy"
		logger.Warn().Msg("service unhealthy")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}
