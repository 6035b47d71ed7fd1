package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Config holds sqlite connection settings.
type Config struct {
	Path string
}

// Connect opens the sqlite database at cfg.Path and bootstraps the schema.
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	path := cfg.Path
	if path == "" {
		path = "gtd.db"
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("connect sqlite db: %w", err)
	}

	if err := createTables(ctx, db); err != nil {
		return nil, err
	}

	return db, nil
}

// Disconnect closes the database handle.
func Disconnect(db *sql.DB) {
	if db != nil {
		db.Close()
	}
}

func createTables(ctx context.Context, db *sql.DB) error {
	schema := `
    CREATE TABLE IF NOT EXISTS tasks (
        id TEXT PRIMARY KEY,
        created_at TEXT NOT NULL,
        updated_at TEXT NOT NULL,
        type TEXT NOT NULL DEFAULT 'task',
        status TEXT NOT NULL DEFAULT 'inbox',
        title TEXT NOT NULL,
        description TEXT NOT NULL DEFAULT '',
        notes TEXT NOT NULL DEFAULT '',
        due_date TEXT,
        defer_date TEXT,
        recurrence TEXT,
        recurrence_end TEXT,
        energy TEXT NOT NULL DEFAULT '',
        time_estimate INTEGER NOT NULL DEFAULT 0,
        time_spent INTEGER NOT NULL DEFAULT 0,
        waiting_for TEXT,
        waiting_for_description TEXT NOT NULL DEFAULT '',
        project_id TEXT NOT NULL DEFAULT '',
        contexts TEXT,
        subtasks TEXT,
        starred INTEGER NOT NULL DEFAULT 0,
        completed INTEGER NOT NULL DEFAULT 0,
        completed_at TEXT
    );

    CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);
    CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id);

    CREATE TABLE IF NOT EXISTS projects (
        id TEXT PRIMARY KEY,
        created_at TEXT NOT NULL,
        updated_at TEXT NOT NULL,
        title TEXT NOT NULL,
        description TEXT NOT NULL DEFAULT '',
        status TEXT NOT NULL DEFAULT 'active',
        contexts TEXT,
        position INTEGER NOT NULL DEFAULT 0
    );

    CREATE TABLE IF NOT EXISTS sync_links (
        local_id TEXT PRIMARY KEY,
        remote_id TEXT NOT NULL,
        remote_list TEXT NOT NULL DEFAULT '',
        synced_at TEXT NOT NULL
    );

    CREATE INDEX IF NOT EXISTS idx_sync_links_remote ON sync_links(remote_id);
    `

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}
