package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the service configuration, loaded from an optional YAML file
// and overridden by environment variables
type Config struct {
	Port             string  `yaml:"port"`
	Model            string  `yaml:"model"`
	Temperature      float64 `yaml:"temperature"`
	MaxTokens        int     `yaml:"max_tokens"`
	BodyLimit        string  `yaml:"body_limit"`
	StrictValidation bool    `yaml:"strict_validation"`

	// OpenAIKey comes from the environment only, never from the file.
	// A missing key does not fail Load: the process must boot for health
	// probes, and generation requests are rejected with a configuration
	// error instead.
	OpenAIKey string `yaml:"-"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Port:        "8000",
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
		MaxTokens:   4000,
		BodyLimit:   "64KB",
	}
}

// Load builds the configuration from defaults, the YAML file named by
// SHOPSMART_CONFIG (if set), and environment overrides, then validates it
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("SHOPSMART_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		cfg.Model = model
	}
	if strict := os.Getenv("STRICT_VALIDATION"); strict != "" {
		v, err := strconv.ParseBool(strict)
		if err != nil {
			return Config{}, fmt.Errorf("invalid STRICT_VALIDATION: %w", err)
		}
		cfg.StrictValidation = v
	}
	cfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the configuration fields that must be sane at startup
func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %g", c.Temperature)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	return nil
}
