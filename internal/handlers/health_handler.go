package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"funds-mover/internal/errors"
	"funds-mover/internal/services"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	ledger services.LedgerServiceInterface
	logger *slog.Logger
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(ledger services.LedgerServiceInterface, logger *slog.Logger) *HealthCheckHandler {
	return &HealthCheckHandler{ledger: ledger, logger: logger}
}

// HealthCheck reports whether the balance store is reachable
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (storage unreachable)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if err := h.ledger.HealthCheck(); err != nil {
		h.logger.ErrorContext(c.Request().Context(), "health check failed", "error", err)
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Balance storage unavailable"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
