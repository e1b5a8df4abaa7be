package handler

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/deppfellow/employee-service/internal/middleware"
	"github.com/deppfellow/employee-service/internal/server"
	"github.com/labstack/echo/v4"
)

const (
	checkDatabase = "database"
	checkRedis    = "redis"
)

// HealthHandler reports whether the service and its dependencies are reachable.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// HealthCheck is the outcome of a single dependency probe.
type HealthCheck struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// HealthResponse is the /status body.
type HealthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]HealthCheck `json:"checks"`
}

// pinger is satisfied by both database backends.
type pinger interface {
	Ping(ctx context.Context) error
}

func (h *HealthHandler) database() pinger {
	switch {
	case h.server.SQLite != nil:
		return h.server.SQLite
	case h.server.DB != nil:
		return h.server.DB
	}
	return nil
}

func (h *HealthHandler) checkEnabled(name string) bool {
	obs := h.server.Config.Observability
	if obs == nil {
		return true
	}
	return obs.HealthChecks.Enabled && slices.Contains(obs.HealthChecks.Checks, name)
}

func (h *HealthHandler) timeout() time.Duration {
	if h.server.Config.Observability == nil {
		return 5 * time.Second
	}
	return h.server.Config.Observability.HealthCheckTimeout()
}

// recordFailure sends a HealthCheckError custom event when New Relic is enabled.
func (h *HealthHandler) recordFailure(checkType string, attrs map[string]interface{}) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}
	attrs["check_type"] = checkType
	attrs["operation"] = "health_check"
	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", attrs)
}

func (h *HealthHandler) probe(c echo.Context, name string, p pinger) HealthCheck {
	logger := middleware.GetLogger(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout())
	defer cancel()

	start := time.Now()
	err := p.Ping(ctx)
	elapsed := time.Since(start)

	if err != nil {
		logger.Error().
			Err(err).
			Str("check", name).
			Dur("response_time", elapsed).
			Msg("health check failed")

		h.recordFailure(name, map[string]interface{}{
			"error_type":       name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})

		return HealthCheck{Status: "unhealthy", ResponseTime: elapsed.String(), Error: err.Error()}
	}

	logger.Debug().
		Str("check", name).
		Dur("response_time", elapsed).
		Msg("health check passed")

	return HealthCheck{Status: "healthy", ResponseTime: elapsed.String()}
}

type redisPinger struct {
	h *HealthHandler
}

func (r redisPinger) Ping(ctx context.Context) error {
	return r.h.server.Redis.Ping(ctx).Err()
}

// CheckHealth returns 200 when the database answers and 503 otherwise.
// Redis is reported but optional, so its failure does not flip the status.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c)

	response := HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]HealthCheck),
	}

	if db := h.database(); db != nil && h.checkEnabled(checkDatabase) {
		check := h.probe(c, checkDatabase, db)
		response.Checks[checkDatabase] = check
		if check.Status != "healthy" {
			response.Status = "unhealthy"
		}
	}

	if h.server.Redis != nil && h.checkEnabled(checkRedis) {
		response.Checks[checkRedis] = h.probe(c, checkRedis, redisPinger{h: h})
	}

	if response.Status != "healthy" {
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordFailure("overall", map[string]interface{}{
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}
