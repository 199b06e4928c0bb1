package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopsmart-ai/backend/internal/models"
	"github.com/tmc/langchaingo/llms"
)

// Defaults matching the hosted completion setup
const (
	DefaultModel       = "gpt-4o-mini"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 4000
)

// GenerateResult carries the sanitized result plus the material needed for
// attempt logging. On sanitation failure Result is nil but Prompt and
// RawResponse are still populated so the offending reply can be logged.
type GenerateResult struct {
	Result      *models.GenerationResult
	Prompt      Prompt
	RawResponse string
}

// ListGenerator produces shopping lists and meal plans through an LLM.
// Single-attempt by design: a transient upstream failure surfaces directly
// as a typed error, the retry decision belongs to the caller.
type ListGenerator struct {
	llm         llms.Model
	model       string
	temperature float64
	maxTokens   int
	validator   *InputValidator
	sanitizer   *Sanitizer
}

// NewListGenerator creates a generator with the default trust-the-model
// sanitizer
func NewListGenerator(llm llms.Model, model string) *ListGenerator {
	return newListGenerator(llm, model, NewSanitizer())
}

// NewStrictListGenerator enforces the opt-in stricter output validation
func NewStrictListGenerator(llm llms.Model, model string) *ListGenerator {
	return newListGenerator(llm, model, NewStrictSanitizer())
}

func newListGenerator(llm llms.Model, model string, sanitizer *Sanitizer) *ListGenerator {
	if model == "" {
		model = DefaultModel
	}
	return &ListGenerator{
		llm:         llm,
		model:       model,
		temperature: DefaultTemperature,
		maxTokens:   DefaultMaxTokens,
		validator:   NewInputValidator(),
		sanitizer:   sanitizer,
	}
}

// SetSampling overrides the default temperature and token budget
func (g *ListGenerator) SetSampling(temperature float64, maxTokens int) {
	if temperature > 0 {
		g.temperature = temperature
	}
	if maxTokens > 0 {
		g.maxTokens = maxTokens
	}
}

// Generate issues one completion call for a normalized, validated request
// and sanitizes the reply into a structured result
func (g *ListGenerator) Generate(ctx context.Context, req models.GenerateRequest) (*GenerateResult, error) {
	if ctx.Err() != nil {
		return nil, ErrContextCanceled
	}

	if err := g.validator.Validate(req.Preferences); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	prompt := BuildPrompt(req)

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextContent{Text: prompt.System},
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextContent{Text: prompt.User},
			},
		},
	}

	resp, err := g.llm.GenerateContent(ctx, messages,
		llms.WithModel(g.model),
		llms.WithTemperature(g.temperature),
		llms.WithMaxTokens(g.maxTokens),
	)
	if err != nil {
		return nil, classifyUpstreamError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	responseText := resp.Choices[0].Content
	if strings.TrimSpace(responseText) == "" {
		return nil, ErrEmptyResponse
	}

	result, err := g.sanitizer.Sanitize(responseText, req)
	if err != nil {
		// Partial result so the caller can log the raw reply
		return &GenerateResult{Prompt: prompt, RawResponse: responseText}, err
	}

	return &GenerateResult{
		Result:      result,
		Prompt:      prompt,
		RawResponse: responseText,
	}, nil
}
