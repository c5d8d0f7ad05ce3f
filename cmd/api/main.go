package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lunarbloom/courtship/internal/config"
	"github.com/lunarbloom/courtship/internal/handlers"
	"github.com/lunarbloom/courtship/internal/logger"
	"github.com/lunarbloom/courtship/internal/middleware"
	"github.com/lunarbloom/courtship/internal/services"
	"github.com/lunarbloom/courtship/internal/storage"
	"github.com/lunarbloom/courtship/pkg/catalog"
	"github.com/lunarbloom/courtship/pkg/engine"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logger.Setup(cfg)

	logger.Info("Starting Courtship API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"llm_provider", cfg.LLMProvider,
		"model_name", cfg.ModelName)

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			logger.Error("Failed to load catalog", "error", err, "path", cfg.CatalogPath)
			os.Exit(1)
		}
		logger.Info("Loaded external catalog", "path", cfg.CatalogPath)
	}
	if err := cat.Validate(); err != nil {
		logger.Error("Catalog validation failed", "error", err)
		os.Exit(1)
	}

	var llmService services.LLMService
	switch strings.ToLower(cfg.LLMProvider) {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			logger.Error("Anthropic API key is required when using anthropic provider")
			os.Exit(1)
		}
		llmService = services.NewAnthropicService(cfg.AnthropicAPIKey, cfg.ModelName, logger)
		logger.Info("Using Anthropic LLM provider")
	case "mock":
		llmService = services.NewMockLLMService()
		logger.Info("Using mock LLM provider")
	default:
		logger.Error("Invalid LLM provider specified", "provider", cfg.LLMProvider, "supported", []string{"anthropic", "mock"})
		os.Exit(1)
	}

	store, err := storage.NewSQLStore(cfg.SQLitePath, logger)
	if err != nil {
		logger.Error("Failed to open database", "error", err, "path", cfg.SQLitePath)
		os.Exit(1)
	}

	transient, err := storage.NewTransientStore(cfg.RedisURL, logger)
	if err != nil {
		logger.Error("Failed to connect to redis", "error", err, "url", cfg.RedisURL)
		os.Exit(1)
	}

	storageCtx, storageCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer storageCancel()
	if err := store.Ping(storageCtx); err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := transient.Ping(storageCtx); err != nil {
		logger.Error("Failed to connect to redis", "error", err)
		os.Exit(1)
	}
	logger.Info("Storage connections established successfully")

	initCtx, initCancel := context.WithTimeout(context.Background(), time.Minute)
	defer initCancel()
	if err := llmService.InitModel(initCtx, cfg.ModelName); err != nil {
		logger.Error("Failed to initialize LLM model", "error", err, "model", cfg.ModelName)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	eng := engine.New(cat, rng, transient, logger)

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(store, transient, logger)
	mux.Handle("/health", healthHandler)

	commandHandler := handlers.NewCommandHandler(store, eng, transient, llmService, logger)
	mux.Handle("/v1/command", commandHandler)

	characterHandler := handlers.NewCharacterHandler(store, logger)
	mux.Handle("/v1/character", characterHandler)

	handler := middleware.Logger(mux)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	if err := store.Close(); err != nil {
		logger.Error("Error closing database", "error", err)
	}
	if err := transient.Close(); err != nil {
		logger.Error("Error closing redis connection", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("Server exited")
}
