package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gtd-task-management/internal/model"
	"gtd-task-management/internal/project"
	"gtd-task-management/internal/project/repository"
)

// Projects are stored one row per project; the contexts list is a
// JSON-encoded TEXT column, timestamps are RFC3339 TEXT.

const projectColumns = `id, created_at, updated_at, title, description, status, contexts, position`

type projectRow struct {
	id          string
	createdAt   string
	updatedAt   string
	title       string
	description string
	status      string
	contexts    sql.NullString
	position    int
}

func encodeProject(p model.Project) projectRow {
	row := projectRow{
		id:          p.ID,
		createdAt:   p.CreatedAt.UTC().Format(time.RFC3339Nano),
		updatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339Nano),
		title:       p.Title,
		description: p.Description,
		status:      string(p.Status),
		position:    p.Position,
	}
	if len(p.Contexts) > 0 {
		if b, err := json.Marshal(p.Contexts); err == nil {
			row.contexts = sql.NullString{String: string(b), Valid: true}
		}
	}
	return row
}

func decodeProject(row projectRow) model.Project {
	p := model.Project{
		ID:          row.id,
		Title:       row.title,
		Description: row.description,
		Status:      model.ProjectStatus(row.status),
		Position:    row.position,
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339Nano, row.createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339Nano, row.updatedAt)
	if row.contexts.Valid {
		_ = json.Unmarshal([]byte(row.contexts.String), &p.Contexts)
	}
	return p
}

func (r *implRepository) CreateProject(ctx context.Context, p model.Project) (model.Project, error) {
	row := encodeProject(p)

	query := fmt.Sprintf(`INSERT INTO projects (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`, projectColumns)
	_, err := r.db.ExecContext(ctx, query,
		row.id, row.createdAt, row.updatedAt,
		row.title, row.description, row.status, row.contexts, row.position,
	)
	if err != nil {
		return model.Project{}, fmt.Errorf("insert project: %w", err)
	}
	return p, nil
}

func (r *implRepository) GetProject(ctx context.Context, id string) (model.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE id = ?`, projectColumns)

	var row projectRow
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&row.id, &row.createdAt, &row.updatedAt,
		&row.title, &row.description, &row.status, &row.contexts, &row.position,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Project{}, project.ErrProjectNotFound
	}
	if err != nil {
		return model.Project{}, fmt.Errorf("select project: %w", err)
	}
	return decodeProject(row), nil
}

func (r *implRepository) ListProjects(ctx context.Context, opt repository.ListProjectsOptions) ([]model.Project, error) {
	var conds []string
	var args []any

	if opt.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, string(opt.Status))
	} else if !opt.IncludeArchived {
		conds = append(conds, "status != ?")
		args = append(args, string(model.ProjectArchived))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	query := fmt.Sprintf(`SELECT %s FROM projects%s ORDER BY position, created_at`, projectColumns, where)
	return r.queryProjects(ctx, query, args...)
}

func (r *implRepository) AllProjects(ctx context.Context) ([]model.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects`, projectColumns)
	return r.queryProjects(ctx, query)
}

func (r *implRepository) queryProjects(ctx context.Context, query string, args ...any) ([]model.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select projects: %w", err)
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var row projectRow
		if err := rows.Scan(
			&row.id, &row.createdAt, &row.updatedAt,
			&row.title, &row.description, &row.status, &row.contexts, &row.position,
		); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, decodeProject(row))
	}
	return projects, rows.Err()
}

func (r *implRepository) UpdateProject(ctx context.Context, p model.Project) (model.Project, error) {
	row := encodeProject(p)

	result, err := r.db.ExecContext(ctx, `UPDATE projects
		SET updated_at = ?, title = ?, description = ?, status = ?, contexts = ?, position = ?
		WHERE id = ?`,
		row.updatedAt, row.title, row.description, row.status, row.contexts, row.position,
		row.id,
	)
	if err != nil {
		return model.Project{}, fmt.Errorf("update project: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return model.Project{}, project.ErrProjectNotFound
	}
	return p, nil
}

func (r *implRepository) DeleteProject(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}

func (r *implRepository) CountProjectTasks(ctx context.Context, projectID string) (done, total int, err error) {
	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(completed), 0) FROM tasks WHERE project_id = ?`,
		projectID,
	).Scan(&total, &done)
	if err != nil {
		return 0, 0, fmt.Errorf("count project tasks: %w", err)
	}
	return done, total, nil
}
