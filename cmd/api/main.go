package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"medflow-insights/config"
	_ "medflow-insights/docs" // Swagger docs
	"medflow-insights/internal/httpserver"
	"medflow-insights/internal/suppression"
	suppressionMemory "medflow-insights/internal/suppression/memory"
	suppressionRedis "medflow-insights/internal/suppression/redis"
	"medflow-insights/pkg/gcalendar"
	"medflow-insights/pkg/log"
	"medflow-insights/pkg/postgres"
	"medflow-insights/pkg/rediscli"
	"medflow-insights/pkg/scope"
)

// @title       MedFlow Insights API
// @description Progress, scheduling and risk analytics for medical device projects.
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

	logger.Info(ctx, "Starting MedFlow Insights...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	pool, err := postgres.Connect(ctx, postgres.Config{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Database: cfg.Postgres.Database,
		SSLMode:  cfg.Postgres.SSLMode,
		MaxConns: cfg.Postgres.MaxConns,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to Postgres: ", err)
		return
	}
	defer pool.Close()

	// 4. Suppression store
	var store suppression.Store
	if cfg.Insights.SuppressionBackend == "memory" {
		logger.Warn(ctx, "Using in-memory suppression store; acks and snoozes will not survive restarts")
		store = suppressionMemory.New()
	} else {
		rdb, redisErr := rediscli.Connect(ctx, rediscli.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if redisErr != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", redisErr)
			return
		}
		defer rdb.Close()
		store = suppressionRedis.New(rdb, logger)
	}

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.Enabled && cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.CalendarID)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. HTTP Server
	jwtManager := scope.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		PostgresDB:       pool,
		SuppressionStore: store,
		CalendarClient:   calendarClient,
		JWTManager:       jwtManager,
		Insights:         cfg.Insights,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
