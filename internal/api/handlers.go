package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopsmart-ai/backend/internal/generator"
	"github.com/shopsmart-ai/backend/internal/models"
	"github.com/shopsmart-ai/backend/internal/telemetry"
)

const (
	serviceName    = "shopsmart-api"
	serviceVersion = "1.0.0"
)

// GeneratorInterface defines the interface for AI list generation
// This allows for mocking in tests
type GeneratorInterface interface {
	Generate(ctx context.Context, req models.GenerateRequest) (*generator.GenerateResult, error)
}

// AttemptLoggerInterface defines the interface for logging generation attempts
type AttemptLoggerInterface interface {
	LogSuccess(req models.GenerateRequest, items int, durationMS int)
	LogFailure(req models.GenerateRequest, status, rawResponse string, err error, durationMS int)
}

// Handlers holds the HTTP handlers and dependencies
type Handlers struct {
	generator GeneratorInterface
	attempts  AttemptLoggerInterface
}

// NewHandlers creates a new Handlers instance. The generator is optional:
// when the completion credential is absent it stays nil and generation
// requests are rejected with a configuration error.
func NewHandlers() *Handlers {
	return &Handlers{}
}

// SetGenerator sets the AI generator
func (h *Handlers) SetGenerator(gen GeneratorInterface) {
	h.generator = gen
}

// SetAttemptLogger sets the generation attempt logger
func (h *Handlers) SetAttemptLogger(logger AttemptLoggerInterface) {
	h.attempts = logger
}

// Root returns the static service descriptor
// GET /
func (h *Handlers) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, ServiceInfoResponse{
		Message: "ShopSmart AI API",
		Version: serviceVersion,
	})
}

// Supermarkets returns the known store catalog
// GET /api/supermarkets
func (h *Handlers) Supermarkets(c echo.Context) error {
	return c.JSON(http.StatusOK, SupermarketsResponse{Supermarkets: models.Supermarkets()})
}

// Categories returns the product category catalog
// GET /api/categories
func (h *Handlers) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, CategoriesResponse{Categories: models.Categories()})
}

// Generate handles shopping list / meal plan generation requests
// POST /generate (alias POST /api/generate)
func (h *Handlers) Generate(c echo.Context) error {
	var req models.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return ValidationError(c, "Invalid request body", err.Error())
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		telemetry.GenerationsTotal.WithLabelValues(generator.StatusValidationFailed).Inc()
		return ValidationError(c, "Invalid request", err.Error())
	}

	if h.generator == nil {
		return c.JSON(http.StatusServiceUnavailable, NewErrorResponse(
			"Generation is not available",
			"Completion service credential is not configured",
		))
	}

	start := time.Now()
	result, err := h.generator.Generate(c.Request().Context(), req)
	duration := time.Since(start)
	durationMS := int(duration.Milliseconds())
	telemetry.GenerationDuration.Observe(duration.Seconds())

	if err != nil {
		var rawResponse string
		if result != nil {
			rawResponse = result.RawResponse
		}
		return h.generateError(c, req, err, rawResponse, durationMS)
	}

	telemetry.GenerationsTotal.WithLabelValues(generator.StatusSuccess).Inc()
	if h.attempts != nil {
		h.attempts.LogSuccess(req, len(result.Result.Items), durationMS)
	}

	return c.JSON(http.StatusOK, result.Result)
}

// generateError maps the generator's closed error kinds to status codes and
// logs the attempt. Raw model output is logged, never returned.
func (h *Handlers) generateError(c echo.Context, req models.GenerateRequest, err error, rawResponse string, durationMS int) error {
	logFailure := func(status string) {
		if h.attempts != nil {
			h.attempts.LogFailure(req, status, rawResponse, err, durationMS)
		}
	}

	switch {
	case errors.Is(err, generator.ErrBlockedPattern):
		telemetry.GenerationsTotal.WithLabelValues(generator.StatusValidationFailed).Inc()
		logFailure(generator.StatusValidationFailed)
		return ValidationError(c, "Invalid request", "Preferences were flagged for potentially unsafe content")

	case errors.Is(err, generator.ErrMalformedOutput):
		telemetry.GenerationsTotal.WithLabelValues(generator.StatusMalformedOutput).Inc()
		logFailure(generator.StatusMalformedOutput)
		return InternalServerError(c, "AI generation failed", "Failed to parse AI response", err)

	case errors.Is(err, generator.ErrUpstreamRateLimited):
		telemetry.GenerationsTotal.WithLabelValues(generator.StatusRateLimited).Inc()
		logFailure(generator.StatusRateLimited)
		return c.JSON(http.StatusTooManyRequests, NewErrorResponse(
			"AI service rate limited",
			"The completion service is rate limiting requests, try again later",
		))

	case errors.Is(err, generator.ErrUpstreamUnavailable), errors.Is(err, generator.ErrEmptyResponse):
		telemetry.GenerationsTotal.WithLabelValues(generator.StatusUpstreamError).Inc()
		logFailure(generator.StatusUpstreamError)
		return c.JSON(http.StatusServiceUnavailable, NewErrorResponse(
			"AI service unavailable",
			"The completion service did not produce a response, try again later",
		))

	default:
		telemetry.GenerationsTotal.WithLabelValues(generator.StatusError).Inc()
		logFailure(generator.StatusError)
		return InternalServerError(c, "AI generation failed", err.Error(), err)
	}
}

// Health Check Handlers

// HealthHandlers holds health check dependencies
type HealthHandlers struct {
	modelConfigured bool
}

// NewHealthHandlers creates a new HealthHandlers instance
func NewHealthHandlers(modelConfigured bool) *HealthHandlers {
	return &HealthHandlers{
		modelConfigured: modelConfigured,
	}
}

// Health returns a basic liveness check
// GET /health
func (hh *HealthHandlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Service:   serviceName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Readiness returns a readiness check including completion client state
// GET /health/ready
func (hh *HealthHandlers) Readiness(c echo.Context) error {
	checks := make(map[string]string)
	status := "ready"

	if hh.modelConfigured {
		checks["completion_client"] = "configured"
	} else {
		checks["completion_client"] = "not_configured: OPENAI_API_KEY missing"
		status = "not_ready"
	}

	httpStatus := http.StatusOK
	if status == "not_ready" {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, ReadinessResponse{
		Status:  status,
		Service: serviceName,
		Checks:  checks,
	})
}
