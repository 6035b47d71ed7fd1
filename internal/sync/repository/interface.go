package repository

import (
	"context"

	"gtd-task-management/internal/sync"
)

// Repository persists local-to-remote task links.
type Repository interface {
	// GetLink returns the link for a local task ID, or ErrLinkNotFound.
	GetLink(ctx context.Context, localID string) (sync.Link, error)
	// GetLinkByRemote returns the link for a remote task ID, or ErrLinkNotFound.
	GetLinkByRemote(ctx context.Context, remoteID string) (sync.Link, error)
	AllLinks(ctx context.Context) ([]sync.Link, error)
	// SaveLink inserts or replaces the link for its local task ID.
	SaveLink(ctx context.Context, link sync.Link) error
	DeleteLink(ctx context.Context, localID string) error
}
