package handlers

import (
	"log/slog"
	"net/http"

	"funds-mover/internal/errors"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For client errors and business logic errors (4xx responses)
//    Use cases:
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - PIN errors: SendError(c, errors.PinIncorrect)
//    - Not found errors: SendError(c, errors.AccountNotFound)
//    - Business rule violations: SendError(c, errors.TransferInsufficientFunds)
//
// 2. SendSystemError - For system/internal errors (500 responses)
//    Use cases:
//    - Service layer internal errors
//    - Unexpected errors that should not expose internal details to client
//
// 3. SendStorageError - When balances could not be persisted (SYSTEM_002)
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions
//    - return err without wrapping - Use SendSystemError to protect internal details

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// Helper functions for creating standardized error responses in handlers
// These wrap the internal/errors package for convenience

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, logger *slog.Logger, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := errors.WrapSystemError(err, traceID)
	logger.ErrorContext(c.Request().Context(), "internal error",
		"trace_id", traceID,
		"error", internalErr,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendStorageError reports a failure to persist balances without exposing the cause
func SendStorageError(c echo.Context, logger *slog.Logger, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := errors.WrapStorageError(err, traceID)
	logger.ErrorContext(c.Request().Context(), "storage error",
		"trace_id", traceID,
		"error", internalErr,
	)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}
