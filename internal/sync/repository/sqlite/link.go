package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gtd-task-management/internal/sync"
	"gtd-task-management/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a sqlite-backed sync link repository.
func New(db *sql.DB, l log.Logger) *implRepository {
	return &implRepository{db: db, l: l}
}

func (r *implRepository) GetLink(ctx context.Context, localID string) (sync.Link, error) {
	return r.getOne(ctx, `SELECT local_id, remote_id, remote_list, synced_at FROM sync_links WHERE local_id = ?`, localID)
}

func (r *implRepository) GetLinkByRemote(ctx context.Context, remoteID string) (sync.Link, error) {
	return r.getOne(ctx, `SELECT local_id, remote_id, remote_list, synced_at FROM sync_links WHERE remote_id = ?`, remoteID)
}

func (r *implRepository) getOne(ctx context.Context, query, arg string) (sync.Link, error) {
	var link sync.Link
	var syncedAt string
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&link.LocalID, &link.RemoteID, &link.RemoteList, &syncedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return sync.Link{}, sync.ErrLinkNotFound
	}
	if err != nil {
		return sync.Link{}, fmt.Errorf("select sync link: %w", err)
	}
	link.SyncedAt, _ = time.Parse(time.RFC3339Nano, syncedAt)
	return link, nil
}

func (r *implRepository) AllLinks(ctx context.Context) ([]sync.Link, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT local_id, remote_id, remote_list, synced_at FROM sync_links`)
	if err != nil {
		return nil, fmt.Errorf("select sync links: %w", err)
	}
	defer rows.Close()

	var links []sync.Link
	for rows.Next() {
		var link sync.Link
		var syncedAt string
		if err := rows.Scan(&link.LocalID, &link.RemoteID, &link.RemoteList, &syncedAt); err != nil {
			return nil, fmt.Errorf("scan sync link: %w", err)
		}
		link.SyncedAt, _ = time.Parse(time.RFC3339Nano, syncedAt)
		links = append(links, link)
	}
	return links, rows.Err()
}

func (r *implRepository) SaveLink(ctx context.Context, link sync.Link) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO sync_links (local_id, remote_id, remote_list, synced_at) VALUES (?, ?, ?, ?)`,
		link.LocalID, link.RemoteID, link.RemoteList, link.SyncedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save sync link: %w", err)
	}
	return nil
}

func (r *implRepository) DeleteLink(ctx context.Context, localID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sync_links WHERE local_id = ?`, localID); err != nil {
		return fmt.Errorf("delete sync link: %w", err)
	}
	return nil
}
