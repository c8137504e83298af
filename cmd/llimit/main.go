// LLimit gateway server. Exposes the HTTP API, runs the task work
// queue, and brokers LLM calls through OpenRouter.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/llimit/gateway/pkg/api"
	"github.com/llimit/gateway/pkg/catalogue"
	"github.com/llimit/gateway/pkg/completion"
	"github.com/llimit/gateway/pkg/config"
	"github.com/llimit/gateway/pkg/database"
	"github.com/llimit/gateway/pkg/events"
	"github.com/llimit/gateway/pkg/llm"
	"github.com/llimit/gateway/pkg/pricing"
	"github.com/llimit/gateway/pkg/queue"
	"github.com/llimit/gateway/pkg/selection"
	"github.com/llimit/gateway/pkg/services"
	"github.com/llimit/gateway/pkg/task"
	"github.com/llimit/gateway/pkg/version"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting LLimit gateway",
		"version", version.Full(),
		"http_addr", cfg.HTTPAddr,
		"planning_model", cfg.PlanningModel)

	ctx := context.Background()

	// Database
	dbClient, err := database.NewClient(ctx, cfg.Database)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Database ready", "path", cfg.Database.Path)

	// LLM adapter and model catalogue. The adapter fetches the
	// catalogue, the catalogue caches it, and the adapter resolves
	// models through the cache.
	llmClient := llm.NewClient(nil)
	modelCache := catalogue.New(llmClient, cfg.ModelCacheTTL)
	llmClient.SetModelLookup(modelCache)

	// Model scoring client; grpc.NewClient dials lazily, the first
	// selection triggers the actual connection.
	scoringClient, err := selection.NewScoringClient(cfg.ScoringAddr)
	if err != nil {
		slog.Error("Failed to initialize scoring client", "addr", cfg.ScoringAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := scoringClient.Close(); err != nil {
			slog.Error("Error closing scoring client", "error", err)
		}
	}()

	calculator := pricing.NewCalculator(modelCache)
	selector := selection.NewSelector(modelCache, scoringClient, calculator)

	// Event bus and domain services
	bus := events.NewBus()
	keyService := services.NewAPIKeyService(dbClient.Client)
	taskStore := services.NewTaskStore(dbClient.Client)
	fileService, err := services.NewFileService(dbClient.Client, cfg.UploadsDir)
	if err != nil {
		slog.Error("Failed to initialize file service", "error", err)
		os.Exit(1)
	}
	chatService := services.NewChatService(dbClient.Client, llmClient, bus)
	completionService := completion.NewService(llmClient, bus)

	if err := keyService.Bootstrap(ctx); err != nil {
		slog.Error("Failed to bootstrap initial API key", "error", err)
		os.Exit(1)
	}
	slog.Info("Services initialized")

	// Task engine behind the single-consumer work queue
	engine := task.NewEngine(taskStore, fileService, selector, llmClient, calculator, bus, cfg.PlanningModel)
	workQueue := queue.New(engine, task.FailTask(taskStore, bus))
	workQueue.Start(ctx)

	// HTTP server
	server := api.NewServer(keyService, taskStore, fileService, chatService,
		modelCache, llmClient, completionService, workQueue, bus)
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: server.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	// Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	// Let the in-flight work item finish before closing the database.
	workQueue.Stop()
	slog.Info("LLimit gateway stopped")
}
