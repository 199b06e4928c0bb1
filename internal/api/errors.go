package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"
)

// getTraceID extracts the trace ID from the OpenTelemetry span context
// Returns empty string if no active span exists
func getTraceID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return ""
	}
	return span.SpanContext().TraceID().String()
}

// InternalServerError returns a 500 error response to the client and logs
// the full error details server-side with the trace ID for debugging.
// detail is the client-visible detail string; it must be a controlled
// message, never raw model output. When empty, a trace reference is
// substituted so the matching log line can be found. The actual error is
// logged but NOT sent to the client.
func InternalServerError(c echo.Context, userMessage, detail string, err error) error {
	traceID := getTraceID(c.Request().Context())

	if traceID != "" {
		c.Logger().Errorf("[%s] %s: %v", traceID, userMessage, err)
	} else {
		c.Logger().Errorf("%s: %v", userMessage, err)
	}

	if detail == "" && traceID != "" {
		detail = fmt.Sprintf("Reference: %s", traceID)
	}

	return c.JSON(http.StatusInternalServerError, NewErrorResponse(userMessage, detail))
}

// ValidationError returns a 400 error response with full details.
// Validation errors are safe to show because they're controlled messages.
func ValidationError(c echo.Context, message string, details string) error {
	return c.JSON(http.StatusBadRequest, NewErrorResponse(message, details))
}
