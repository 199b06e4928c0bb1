package generator

import (
	"github.com/shopsmart-ai/backend/internal/models"
	"github.com/sirupsen/logrus"
)

// maxLoggedResponse caps how much raw model output lands in the logs
const maxLoggedResponse = 2048

// Attempt statuses
const (
	StatusSuccess          = "success"
	StatusValidationFailed = "validation_failed"
	StatusMalformedOutput  = "malformed_output"
	StatusUpstreamError    = "upstream_error"
	StatusRateLimited      = "rate_limited"
	StatusError            = "error"
)

// AttemptLogger records every generation attempt through structured logging.
// Raw model output is logged here on failures and never returned to clients.
type AttemptLogger struct {
	log *logrus.Logger
}

// NewAttemptLogger creates a logger writing to the given logrus instance
func NewAttemptLogger(log *logrus.Logger) *AttemptLogger {
	return &AttemptLogger{log: log}
}

// LogSuccess records a completed generation
func (l *AttemptLogger) LogSuccess(req models.GenerateRequest, items int, durationMS int) {
	l.fields(req, durationMS).WithFields(logrus.Fields{
		"status": StatusSuccess,
		"items":  items,
	}).Info("generation succeeded")
}

// LogFailure records a failed attempt, including the raw reply when the
// model output could not be parsed
func (l *AttemptLogger) LogFailure(req models.GenerateRequest, status, rawResponse string, err error, durationMS int) {
	entry := l.fields(req, durationMS).WithFields(logrus.Fields{
		"status": status,
		"error":  err.Error(),
	})
	if rawResponse != "" {
		entry = entry.WithField("raw_response", truncate(rawResponse, maxLoggedResponse))
	}
	entry.Warn("generation failed")
}

func (l *AttemptLogger) fields(req models.GenerateRequest, durationMS int) *logrus.Entry {
	return l.log.WithFields(logrus.Fields{
		"mode":        string(req.Mode),
		"language":    req.Language,
		"stores":      len(req.Supermarkets),
		"budget":      req.Budget,
		"family_size": req.FamilySizeValue(),
		"duration_ms": durationMS,
	})
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
