package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gtd-task-management/internal/model"
	"gtd-task-management/internal/task"
	"gtd-task-management/internal/task/repository"
)

const taskColumns = `id, created_at, updated_at, type, status, title, description, notes,
	due_date, defer_date, recurrence, recurrence_end, energy, time_estimate, time_spent,
	waiting_for, waiting_for_description, project_id, contexts, subtasks, starred,
	completed, completed_at`

func (r *implRepository) CreateTask(ctx context.Context, t model.Task) (model.Task, error) {
	row := encodeRow(t)

	query := fmt.Sprintf(`INSERT INTO tasks (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, taskColumns)
	_, err := r.db.ExecContext(ctx, query,
		row.id, row.createdAt, row.updatedAt, row.taskType, row.status,
		row.title, row.description, row.notes,
		row.dueDate, row.deferDate, row.recurrence, row.recurrenceEnd,
		row.energy, row.timeEstimate, row.timeSpent,
		row.waitingFor, row.waitingForDesc, row.projectID,
		row.contexts, row.subtasks, row.starred,
		row.completed, row.completedAt,
	)
	if err != nil {
		return model.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return t, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = ?`, taskColumns)
	t, err := r.scanOne(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, task.ErrTaskNotFound
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("select task: %w", err)
	}
	return t, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	var conds []string
	var args []any

	if opt.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, string(opt.Status))
	} else if !opt.IncludeCompleted {
		conds = append(conds, "completed = 0")
	}
	if opt.ProjectID != "" {
		conds = append(conds, "project_id = ?")
		args = append(args, opt.ProjectID)
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tasks"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM tasks%s ORDER BY created_at`, taskColumns, where)
	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", opt.Limit, opt.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("select tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, scanErr := r.scanOne(rows)
		if scanErr != nil {
			return nil, 0, fmt.Errorf("scan task: %w", scanErr)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	// The context filter walks the decoded JSON, so it is applied in memory.
	if opt.Context != "" {
		filtered := tasks[:0]
		for _, t := range tasks {
			for _, c := range t.Contexts {
				if c == opt.Context {
					filtered = append(filtered, t)
					break
				}
			}
		}
		tasks = filtered
		total = len(tasks)
	}

	return tasks, total, nil
}

func (r *implRepository) AllTasks(ctx context.Context) ([]model.Task, error) {
	tasks, _, err := r.ListTasks(ctx, repository.ListTasksOptions{IncludeCompleted: true})
	return tasks, err
}

func (r *implRepository) UpdateTask(ctx context.Context, t model.Task) (model.Task, error) {
	res, err := r.execUpdate(ctx, r.db, t)
	if err != nil {
		return model.Task{}, err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

func (r *implRepository) UpdateTasks(ctx context.Context, tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	for _, t := range tasks {
		if _, err := r.execUpdate(ctx, tx, t); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

func (r *implRepository) UnlinkProject(ctx context.Context, projectID string) (int, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET project_id = '' WHERE project_id = ?`, projectID)
	if err != nil {
		return 0, fmt.Errorf("unlink project tasks: %w", err)
	}
	affected, _ := res.RowsAffected()
	return int(affected), nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *implRepository) execUpdate(ctx context.Context, db execer, t model.Task) (sql.Result, error) {
	row := encodeRow(t)

	res, err := db.ExecContext(ctx, `UPDATE tasks SET
		updated_at = ?, type = ?, status = ?, title = ?, description = ?, notes = ?,
		due_date = ?, defer_date = ?, recurrence = ?, recurrence_end = ?,
		energy = ?, time_estimate = ?, time_spent = ?,
		waiting_for = ?, waiting_for_description = ?, project_id = ?,
		contexts = ?, subtasks = ?, starred = ?, completed = ?, completed_at = ?
		WHERE id = ?`,
		row.updatedAt, row.taskType, row.status, row.title, row.description, row.notes,
		row.dueDate, row.deferDate, row.recurrence, row.recurrenceEnd,
		row.energy, row.timeEstimate, row.timeSpent,
		row.waitingFor, row.waitingForDesc, row.projectID,
		row.contexts, row.subtasks, row.starred, row.completed, row.completedAt,
		row.id,
	)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return res, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanOne(s rowScanner) (model.Task, error) {
	var row taskRow
	err := s.Scan(
		&row.id, &row.createdAt, &row.updatedAt, &row.taskType, &row.status,
		&row.title, &row.description, &row.notes,
		&row.dueDate, &row.deferDate, &row.recurrence, &row.recurrenceEnd,
		&row.energy, &row.timeEstimate, &row.timeSpent,
		&row.waitingFor, &row.waitingForDesc, &row.projectID,
		&row.contexts, &row.subtasks, &row.starred,
		&row.completed, &row.completedAt,
	)
	if err != nil {
		return model.Task{}, err
	}
	return decodeRow(row), nil
}
