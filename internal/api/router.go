package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all API routes. bodyLimit bounds request body
// sizes on the generation routes (e.g. "64KB").
func SetupRoutes(e *echo.Echo, h *Handlers, hh *HealthHandlers, bodyLimit string) {
	// Health check and metrics endpoints (no middleware)
	e.GET("/health", hh.Health)
	e.GET("/health/ready", hh.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Apply middleware to all other routes
	e.Use(RequestIDMiddleware())
	e.Use(MetricsMiddleware())
	e.Use(SecurityHeadersMiddleware())
	e.Use(middleware.BodyLimit(bodyLimit))

	// Service descriptor
	e.GET("/", h.Root)

	// Generation endpoint, plus the /api alias kept for older clients
	e.POST("/generate", h.Generate)

	api := e.Group("/api")
	api.POST("/generate", h.Generate)

	// Static reference data
	api.GET("/supermarkets", h.Supermarkets)
	api.GET("/categories", h.Categories)
}
