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

// main is the entry point for the background sync service.
// This binary runs a full push+pull cycle against Google Tasks on a timer.
//
// Pattern:
//  1. Initialize infra (same as cmd/api/main.go)
//  2. Create UseCases
//  3. Run the cycle on a ticker & graceful shutdown
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting sync service...")

	if cfg.GoogleTasks.CredentialsPath == "" {
		logger.Error(ctx, "google_tasks.credentials_path is required for the syncer")
		return
	}

	// Infrastructure
	db, err := configSqlite.Connect(ctx, cfg.SQLite)
	if err != nil {
		logger.Error(ctx, "Failed to connect to sqlite: ", err)
		return
	}
	defer configSqlite.Disconnect(db)

	client, err := gtasks.NewClientFromCredentialsFile(ctx, cfg.GoogleTasks.CredentialsPath)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Google Tasks client: ", err)
		return
	}

	dateMathParser, dtErr := datemath.NewParser(cfg.Engine.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Engine.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// UseCases
	taskRepo := taskSqlite.New(db, logger)
	projectRepo := projectSqlite.New(db, logger)
	tasks := taskUC.New(logger, taskRepo, projectRepo, dateMathParser, nil)
	linkRepo := syncSqlite.New(db, logger)
	syncer := syncUC.New(logger, client, linkRepo, taskRepo, tasks, cfg.GoogleTasks.ListID, nil)

	interval, err := time.ParseDuration(cfg.GoogleTasks.SyncInterval)
	if err != nil || interval <= 0 {
		interval = 15 * time.Minute
	}

	logger.Infof(ctx, "Sync service running every %s. Waiting for shutdown signal...", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	runCycle(ctx, logger, syncer)
	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Sync service stopped gracefully")
			return
		case <-ticker.C:
			runCycle(ctx, logger, syncer)
		}
	}
}

func runCycle(ctx context.Context, logger log.Logger, syncer syncDomain.UseCase) {
	cycleCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	out, err := syncer.FullSync(cycleCtx)
	if err != nil {
		logger.Errorf(ctx, "Sync cycle failed: %v", err)
		return
	}

	logger.Infof(ctx, "Sync cycle done: pushed %d created / %d updated, pulled %d created / %d completed",
		out.Push.Created, out.Push.Updated, out.Pull.Created, out.Pull.Completed)
}
