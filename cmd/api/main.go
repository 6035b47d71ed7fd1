package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gtd-task-management/config"
	configSqlite "gtd-task-management/config/sqlite"
	_ "gtd-task-management/docs" // Swagger docs
	"gtd-task-management/internal/httpserver"
	projectSqlite "gtd-task-management/internal/project/repository/sqlite"
	syncDomain "gtd-task-management/internal/sync"
	syncSqlite "gtd-task-management/internal/sync/repository/sqlite"
	syncUC "gtd-task-management/internal/sync/usecase"
	taskSqlite "gtd-task-management/internal/task/repository/sqlite"
	taskUC "gtd-task-management/internal/task/usecase"
	"gtd-task-management/pkg/datemath"
	"gtd-task-management/pkg/gtasks"
	"gtd-task-management/pkg/log"
)

// @title       GTD Task Management API
// @description Personal task management core: GTD status lifecycle, dependency graph, priority scoring, smart suggestions and chain analysis.
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

	logger.Info(ctx, "Starting GTD Task Management...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Database: %s", cfg.SQLite.Path)

	// 3. Storage
	db, err := configSqlite.Connect(ctx, cfg.SQLite)
	if err != nil {
		logger.Error(ctx, "Failed to connect to sqlite: ", err)
		return
	}
	defer configSqlite.Disconnect(db)

	// 4. Date parsing
	dateMathParser, dtErr := datemath.NewParser(cfg.Engine.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Engine.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 5. Remote sync (optional)
	var webhookHandler syncDomain.Handler
	if cfg.GoogleTasks.CredentialsPath != "" {
		client, gtErr := gtasks.NewClientFromCredentialsFile(ctx, cfg.GoogleTasks.CredentialsPath)
		if gtErr != nil {
			logger.Warnf(ctx, "Google Tasks not available (optional): %v", gtErr)
		} else if cfg.Webhook.Enabled {
			taskRepo := taskSqlite.New(db, logger)
			projectRepo := projectSqlite.New(db, logger)
			tasks := taskUC.New(logger, taskRepo, projectRepo, dateMathParser, nil)
			linkRepo := syncSqlite.New(db, logger)

			syncer := syncUC.New(logger, client, linkRepo, taskRepo, tasks, cfg.GoogleTasks.ListID, nil)
			validator := syncDomain.NewSecurityValidator(syncDomain.SecurityConfig{
				Secret:          cfg.Webhook.Secret,
				AllowedIPs:      cfg.Webhook.AllowedIPs,
				RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
			})
			webhookHandler = syncDomain.NewWebhookHandler(logger, syncer, validator)
			logger.Info(ctx, "Google Tasks sync initialized")
		}
	}

	// 6. Periodic dependency sweep
	if interval, pErr := time.ParseDuration(cfg.Engine.SweepInterval); pErr == nil && interval > 0 {
		taskRepo := taskSqlite.New(db, logger)
		projectRepo := projectSqlite.New(db, logger)
		tasks := taskUC.New(logger, taskRepo, projectRepo, dateMathParser, nil)

		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if _, err := tasks.Sweep(ctx); err != nil {
						logger.Errorf(ctx, "periodic sweep: %v", err)
					}
				}
			}
		}()
		logger.Infof(ctx, "Dependency sweep every %s", interval)
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		DB:             db,
		DateMath:       dateMathParser,
		APIKey:         cfg.HTTPServer.APIKey,
		WebhookHandler: webhookHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
