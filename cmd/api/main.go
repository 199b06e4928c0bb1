package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopsmart-ai/backend/internal/api"
	"github.com/shopsmart-ai/backend/internal/config"
	"github.com/shopsmart-ai/backend/internal/generator"
	"github.com/shopsmart-ai/backend/internal/telemetry"
	"github.com/sirupsen/logrus"
	"github.com/tmc/langchaingo/llms/openai"
)

func main() {
	// Load .env if present (local development convenience)
	_ = godotenv.Load()

	// Register Prometheus metrics
	telemetry.RegisterMetrics()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLog := logrus.New()
	appLog.SetFormatter(&logrus.JSONFormatter{})

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Basic middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	// The frontend is served separately, mirror its open CORS policy
	e.Use(middleware.CORS())

	// Create handlers. Without a credential the service still boots for
	// health probes; generation requests get a configuration error.
	handlers := api.NewHandlers()
	handlers.SetAttemptLogger(generator.NewAttemptLogger(appLog))

	modelConfigured := cfg.OpenAIKey != ""
	if modelConfigured {
		llm, err := openai.New(
			openai.WithToken(cfg.OpenAIKey),
			openai.WithModel(cfg.Model),
		)
		if err != nil {
			log.Fatalf("Failed to create completion client: %v", err)
		}

		var gen *generator.ListGenerator
		if cfg.StrictValidation {
			gen = generator.NewStrictListGenerator(llm, cfg.Model)
		} else {
			gen = generator.NewListGenerator(llm, cfg.Model)
		}
		gen.SetSampling(cfg.Temperature, cfg.MaxTokens)
		handlers.SetGenerator(gen)
	} else {
		log.Println("OPENAI_API_KEY not set; generation requests will be rejected until configured")
	}

	healthHandlers := api.NewHealthHandlers(modelConfigured)

	// Setup routes (includes metrics and request ID middleware)
	api.SetupRoutes(e, handlers, healthHandlers, cfg.BodyLimit)

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Starting server on %s", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}

	log.Println("Server shutdown complete")
}
