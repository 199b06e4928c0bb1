package api

import (
	"time"

	"github.com/shopsmart-ai/backend/internal/models"
)

// ServiceInfoResponse is the static descriptor served at GET /
type ServiceInfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// SupermarketsResponse wraps the known store catalog
type SupermarketsResponse struct {
	Supermarkets []models.Supermarket `json:"supermarkets"`
}

// CategoriesResponse wraps the product category catalog
type CategoriesResponse struct {
	Categories []models.Category `json:"categories"`
}

// ErrorResponse is the uniform error envelope: category, human-readable
// detail and a timestamp
type ErrorResponse struct {
	Error     string `json:"error"`
	Detail    string `json:"detail,omitempty"`
	Timestamp string `json:"timestamp"`
}

// NewErrorResponse builds an envelope stamped with the current time
func NewErrorResponse(category, detail string) ErrorResponse {
	return ErrorResponse{
		Error:     category,
		Detail:    detail,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// HealthResponse represents the liveness probe response
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// ReadinessResponse represents the readiness probe response
type ReadinessResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Checks  map[string]string `json:"checks"`
}
