package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"schedule-calendar/config"
	_ "schedule-calendar/docs" // Swagger docs
	"schedule-calendar/internal/httpserver"
	"schedule-calendar/internal/schedule/usecase"
	"schedule-calendar/pkg/llmprovider"
	"schedule-calendar/pkg/log"
)

// @title       Schedule Calendar API
// @description Turns free-text course schedules into calendar events, iCalendar documents and CSV imports.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Schedule Calendar API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Schedule timezone: %s", cfg.Schedule.Location())

	// 3. Completion providers
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Invalid LLM manager config: ", err)
		return
	}
	llm := llmprovider.NewManager(providers, managerCfg, logger)

	// 4. Schedule UseCase
	scheduleUC := usecase.New(logger, llm, usecase.Config{
		Location:        cfg.Schedule.Location(),
		Temperature:     cfg.Schedule.Temperature,
		MaxTokens:       cfg.Schedule.MaxTokens,
		MaxContentBytes: cfg.Schedule.MaxContentBytes,
		ProductID:       cfg.Schedule.ProductID,
		UIDDomain:       cfg.Schedule.UIDDomain,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ScheduleUseCase: scheduleUC,
		RateLimit:       cfg.RateLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
