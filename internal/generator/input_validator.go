package generator

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrBlockedPattern is returned when the preferences text contains a
	// pattern that must not be embedded into the prompt
	ErrBlockedPattern = errors.New("preferences contain blocked pattern")
)

// InputValidator screens the free-text preferences field before it is
// embedded into the user prompt. The structured request fields are bounded
// by models.GenerateRequest.Validate; this only guards the one free-text
// channel into the model.
type InputValidator struct {
	blockedPatterns []*regexp.Regexp
}

// NewInputValidator creates a validator with the predefined blocked patterns
func NewInputValidator() *InputValidator {
	return &InputValidator{
		blockedPatterns: compileBlockedPatterns(),
	}
}

// Validate checks if the text is safe to embed into the prompt. Empty text
// is fine; the prompt builder substitutes "None".
func (v *InputValidator) Validate(input string) error {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}

	lowerInput := strings.ToLower(trimmed)
	for _, pattern := range v.blockedPatterns {
		if pattern.MatchString(lowerInput) {
			return ErrBlockedPattern
		}
	}

	return nil
}

// compileBlockedPatterns returns the patterns to block. These protect
// against prompt injection and markup smuggled into the generated list.
func compileBlockedPatterns() []*regexp.Regexp {
	patterns := []string{
		// Markup / XSS patterns
		`<script[^>]*>`,
		`</script>`,
		`javascript:`,
		`<iframe`,
		`<img[^>]+onerror`,

		// Prompt injection patterns
		`\bignore\s+(all\s+)?(previous|above|prior)\s+instructions`,
		`\bsystem\s*:\s*you\s+are\s+(now\s+)?`,
		`\bassistant\s*:\s*i\s+will`,
		`\breplace\s+your\s+instructions`,
		`\bforget\s+(everything|all|your\s+rules)`,
		`\bact\s+as\s+(if\s+)?you\s+(are|were)\s+`,
	}

	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}

	return compiled
}
