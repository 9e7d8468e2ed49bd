package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mshogin/aibackend/internal/application/services"
	"github.com/mshogin/aibackend/internal/infrastructure/config"
	"github.com/mshogin/aibackend/internal/infrastructure/logging"
	"github.com/mshogin/aibackend/internal/presentation/api"
)

func main() {
	// Parse CLI flags
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	host := flag.String("host", "", "Server host (overrides config)")
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		cfg = config.Default()
	}

	// Apply CLI overrides
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Setup logging
	logger := logging.NewStructuredLogger(os.Stdout, logging.ParseLevel(cfg.Logging.Level))
	logging.SetDefaultLogger(logger)
	logging.Info("Starting "+cfg.App.Name, map[string]interface{}{
		"debug":             cfg.App.Debug,
		"unrestricted_mode": cfg.Engine.UnrestrictedMode,
	})

	// Initialize engine and orchestrator
	engine := services.NewAIEngine(cfg.Engine)
	orchestrator := services.NewOrchestrator(engine)

	// Initialize HTTP handler
	handler := api.NewHandler(engine, orchestrator, cfg)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(api.RequestIDMiddleware())
	r.Use(api.CORSMiddleware(cfg.Security.CORSOrigins))
	r.Use(api.RateLimitMiddleware(cfg.Security.RateLimitRequests))

	// Routes
	r.Route(cfg.App.APIPrefix, func(r chi.Router) {
		r.Post("/generate", handler.Generate)
		r.Post("/execute-code", handler.ExecuteCode)
		r.Post("/analyze-sentiment", handler.AnalyzeSentiment)
		r.Post("/workflow", handler.RunWorkflow)
		r.Get("/workflows", handler.ListWorkflows)
		r.Post("/telegram-webhook", handler.TelegramWebhook)
	})
	r.Get("/health", handler.Health)

	// HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s", addr)
		serverErrors <- server.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatalf("Server error: %v", err)

	case sig := <-shutdown:
		log.Printf("Received signal %v, shutting down gracefully...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Graceful shutdown failed: %v", err)
			if err := server.Close(); err != nil {
				log.Fatalf("Failed to close server: %v", err)
			}
		}

		log.Println("Server stopped")
	}
}
