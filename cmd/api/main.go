package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/Aashutosh2004011/TaskManagement-Backend/config"
	_ "github.com/Aashutosh2004011/TaskManagement-Backend/docs" // Swagger docs
	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/classifier"
	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/httpserver"
	"github.com/Aashutosh2004011/TaskManagement-Backend/pkg/datemath"
	"github.com/Aashutosh2004011/TaskManagement-Backend/pkg/log"
)

// @title       Task Management API
// @description REST task tracking backend with automatic content classification: category, priority, entity extraction and suggested actions.
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

	logger.Info(ctx, "Starting Task Management Backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. PostgreSQL
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		logger.Fatalf(ctx, "Failed to open postgres connection: %v", err)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Fatalf(ctx, "Failed to ping postgres: %v", err)
	}
	logger.Infof(ctx, "Connected to postgres at %s:%d", cfg.Postgres.Host, cfg.Postgres.Port)

	// 4. Classification engine + due-date parser
	contentClassifier := classifier.New(classifier.DefaultTables())

	dateMathParser, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		AppConfig:   cfg,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		Classifier:  contentClassifier,
		DateMath:    dateMathParser,
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
