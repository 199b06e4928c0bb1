package generator

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyResponse is returned when the LLM returns an empty reply
	ErrEmptyResponse = errors.New("LLM returned empty response")

	// ErrContextCanceled is returned when the request context is canceled
	ErrContextCanceled = errors.New("context canceled")

	// ErrUpstreamRateLimited is returned when the completion provider
	// signals overload or quota exhaustion
	ErrUpstreamRateLimited = errors.New("completion service rate limited")

	// ErrUpstreamUnavailable is returned when the completion call fails
	// transiently
	ErrUpstreamUnavailable = errors.New("completion service unavailable")

	// ErrMalformedOutput is returned when the model reply cannot be turned
	// into a validated result
	ErrMalformedOutput = errors.New("malformed model output")
)

// Sanitation stages reported by MalformedOutputError
const (
	StageParse  = "parse"
	StageItems  = "items"
	StageStrict = "strict"
)

// MalformedOutputError tags which sanitation stage rejected the model reply.
// The message stays generic; the raw reply is logged, never returned.
type MalformedOutputError struct {
	Stage string
	Err   error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed model output (%s stage)", e.Stage)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrMalformedOutput) match any stage
func (e *MalformedOutputError) Is(target error) bool {
	return target == ErrMalformedOutput
}

// classifyUpstreamError maps a completion-call failure onto the closed
// error-kind set the HTTP boundary switches on. The langchaingo providers
// surface HTTP status codes only in the error text, so this sniffs strings.
func classifyUpstreamError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429"),
		strings.Contains(msg, "rate limit"),
		strings.Contains(msg, "quota"):
		return fmt.Errorf("%w: %v", ErrUpstreamRateLimited, err)
	case strings.Contains(msg, "502"),
		strings.Contains(msg, "503"),
		strings.Contains(msg, "unavailable"),
		strings.Contains(msg, "overloaded"),
		strings.Contains(msg, "timeout"),
		strings.Contains(msg, "connection refused"):
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	default:
		return fmt.Errorf("LLM generation failed: %w", err)
	}
}
