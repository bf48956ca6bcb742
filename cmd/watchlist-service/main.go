package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-stock-watchlist/internal/watchlist/config"
	delivery "golang-stock-watchlist/internal/watchlist/delivery/http"
	_ "golang-stock-watchlist/internal/watchlist/docs"
	"golang-stock-watchlist/internal/watchlist/repository"
	"golang-stock-watchlist/internal/watchlist/service"
	"golang-stock-watchlist/pkg/logger"
	"golang-stock-watchlist/pkg/telegram"

	"google.golang.org/genai"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the watchlist HTTP service",
	Run:   runServe,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Runs the pipeline once and prints the watchlist as JSON",
	Run:   runGenerate,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Watchlist Service", zap.String("name", cfg.App.Name))

	watchlistSvc := buildWatchlistService(cfg, appLogger)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	// Initialize handlers and routes
	watchlistHandler := delivery.NewWatchlistHandler(watchlistSvc, appLogger)
	apiV1 := e.Group("/api/v1")
	watchlistGroup := apiV1.Group("/watchlist")
	watchlistHandler.RegisterRoutes(watchlistGroup)

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

func runGenerate(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Generating watchlist", zap.String("name", cfg.App.Name))

	watchlistSvc := buildWatchlistService(cfg, appLogger)

	data, err := watchlistSvc.GenerateWatchlist(ctx, nil)
	if err != nil {
		appLogger.Fatal("Failed to generate watchlist", logger.ErrorField(err))
	}

	output, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		appLogger.Fatal("Failed to marshal watchlist", logger.ErrorField(err))
	}
	fmt.Println(string(output))

	if cfg.Telegram.Enabled {
		telegramNotifier, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
		if err := telegramNotifier.SendMessage(telegram.FormatWatchlistForTelegram(data)); err != nil {
			appLogger.Error("Failed to send Telegram notification", logger.ErrorField(err))
		}
	}
}

// buildWatchlistService wires the news source, the configured AI provider and
// the pipeline services.
func buildWatchlistService(cfg *config.Config, appLogger *logger.Logger) service.WatchlistService {
	newsRepo := repository.NewZerodhaNewsRepository(cfg, appLogger)
	aiRepo := buildAIRepository(cfg, appLogger)

	ingestSvc := service.NewNewsIngestService(newsRepo, appLogger)
	analyzerSvc := service.NewAnalyzerService(aiRepo, appLogger)
	return service.NewWatchlistService(cfg, ingestSvc, analyzerSvc, appLogger)
}

func buildAIRepository(cfg *config.Config, appLogger *logger.Logger) repository.AIRepository {
	switch cfg.AI.Provider {
	case "gemini":
		genAiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey: cfg.Gemini.APIKey,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini AI client", zap.Error(err))
		}
		repo, err := repository.NewGeminiAIRepository(cfg, appLogger, genAiClient)
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini AI repository", zap.Error(err))
		}
		return repo
	case "anthropic":
		repo, err := repository.NewAnthropicAIRepository(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize Anthropic AI repository", zap.Error(err))
		}
		return repo
	case "openai":
		return repository.NewOpenAIRepository(cfg, appLogger)
	case "openrouter":
		return repository.NewOpenRouterAIRepository(cfg, appLogger)
	default:
		appLogger.Fatal("Invalid AI provider specified in config", zap.String("provider", cfg.AI.Provider))
	}
	return nil
}

// @title Stock Watchlist API
// @version 1.0
// @description Pre-market news analysis service that generates a ranked, directional stock watchlist.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "watchlist-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-watchlist.yaml", "Path to the configuration file")
	generateCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-watchlist.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing watchlist-service CLI: %s\n", err)
		os.Exit(1)
	}
}
