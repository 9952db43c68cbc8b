// @title EduBridge API
// @version 1.0
// @description Generation API for educational content: quizzes, summaries, reports, feedback, recommendations and quiz evaluation.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:5000
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"edubridge/internal/adapter/generator"
	"edubridge/internal/config"
	"edubridge/internal/format"
	"edubridge/internal/handler"
	"edubridge/internal/logger"
	"edubridge/internal/prompt"
	"edubridge/internal/router"
	"edubridge/internal/service"
	"edubridge/internal/validation"

	_ "edubridge/cmd/api/docs"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		appLogger.Fatal("Invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		appLogger.Error("Server stopped with error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	appLogger.Info("Server exited gracefully")
}

// run serves the API until ctx is cancelled, then shuts the server down.
func run(ctx context.Context, cfg *config.Config) error {
	appLogger := logger.Get()

	// Initialize generation provider
	provider, err := generator.New(ctx, cfg.LLM)
	if err != nil {
		return err
	}
	defer func() {
		if err := provider.Close(); err != nil {
			appLogger.Warn("Failed to close generation provider", zap.Error(err))
		}
	}()

	// Initialize services
	prompts := prompt.New(cfg.Prompts.SubjectArea, cfg.Prompts.DefaultTopic)
	formatter := format.NewQuizFormatter(prompts.DefaultTopic())
	educationService := service.NewEducationService(provider, prompts, formatter)

	// Initialize handlers
	app := router.New(cfg.Server, router.Handlers{
		Education: handler.NewEducationHandler(educationService, validation.NewValidator()),
		Health:    handler.NewHealthHandler(provider.Name()),
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("provider", provider.Name()),
			zap.String("model", cfg.LLM.Model),
			zap.String("env", cfg.Logger.Env))
		return app.Listen(cfg.Addr())
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
