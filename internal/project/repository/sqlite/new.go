package sqlite

import (
	"database/sql"

	"gtd-task-management/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a sqlite-backed project repository.
func New(db *sql.DB, l log.Logger) *implRepository {
	return &implRepository{db: db, l: l}
}
