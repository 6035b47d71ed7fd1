package sqlite

import (
	"database/sql"
	"encoding/json"
	"time"

	"gtd-task-management/internal/model"
	"gtd-task-management/pkg/recurrence"
)

// Tasks are stored one row per task; the list-valued fields (contexts,
// subtasks, dependency IDs, recurrence rule) are JSON-encoded TEXT columns,
// timestamps are RFC3339 TEXT.

type taskRow struct {
	id        string
	createdAt string
	updatedAt string

	taskType string
	status   string

	title       string
	description string
	notes       string

	dueDate       sql.NullString
	deferDate     sql.NullString
	recurrence    sql.NullString
	recurrenceEnd sql.NullString

	energy       string
	timeEstimate int
	timeSpent    int

	waitingFor     sql.NullString
	waitingForDesc string

	projectID string
	contexts  sql.NullString
	subtasks  sql.NullString
	starred   bool

	completed   bool
	completedAt sql.NullString
}

func encodeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func encodeTimePtr(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: encodeTime(*t), Valid: true}
}

func decodeTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func decodeTimePtr(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t := decodeTime(s.String)
	return &t
}

func encodeJSON(v any) sql.NullString {
	b, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(b), Valid: true}
}

func encodeRow(t model.Task) taskRow {
	row := taskRow{
		id:        t.ID,
		createdAt: encodeTime(t.CreatedAt),
		updatedAt: encodeTime(t.UpdatedAt),

		taskType: string(t.Type),
		status:   string(t.Status),

		title:       t.Title,
		description: t.Description,
		notes:       t.Notes,

		dueDate:       encodeTimePtr(t.DueDate),
		deferDate:     encodeTimePtr(t.DeferDate),
		recurrenceEnd: encodeTimePtr(t.RecurrenceEnd),

		energy:       string(t.Energy),
		timeEstimate: t.Time,
		timeSpent:    t.TimeSpent,

		waitingForDesc: t.WaitingForDescription,

		projectID: t.ProjectID,
		starred:   t.Starred,

		completed:   t.Completed,
		completedAt: encodeTimePtr(t.CompletedAt),
	}

	if t.Recurrence.Recurs() {
		row.recurrence = encodeJSON(t.Recurrence)
	}
	if len(t.WaitingForTaskIDs) > 0 {
		row.waitingFor = encodeJSON(t.WaitingForTaskIDs)
	}
	if len(t.Contexts) > 0 {
		row.contexts = encodeJSON(t.Contexts)
	}
	if len(t.Subtasks) > 0 {
		row.subtasks = encodeJSON(t.Subtasks)
	}

	return row
}

func decodeRow(row taskRow) model.Task {
	t := model.Task{
		ID:        row.id,
		CreatedAt: decodeTime(row.createdAt),
		UpdatedAt: decodeTime(row.updatedAt),

		Type:   model.TaskType(row.taskType),
		Status: model.TaskStatus(row.status),

		Title:       row.title,
		Description: row.description,
		Notes:       row.notes,

		DueDate:       decodeTimePtr(row.dueDate),
		DeferDate:     decodeTimePtr(row.deferDate),
		RecurrenceEnd: decodeTimePtr(row.recurrenceEnd),

		Energy:    model.Energy(row.energy),
		Time:      row.timeEstimate,
		TimeSpent: row.timeSpent,

		WaitingForDescription: row.waitingForDesc,

		ProjectID: row.projectID,
		Starred:   row.starred,

		Completed:   row.completed,
		CompletedAt: decodeTimePtr(row.completedAt),
	}

	if row.recurrence.Valid {
		var rule recurrence.Rule
		if err := json.Unmarshal([]byte(row.recurrence.String), &rule); err == nil {
			t.Recurrence = rule
		}
	}
	if row.waitingFor.Valid {
		_ = json.Unmarshal([]byte(row.waitingFor.String), &t.WaitingForTaskIDs)
	}
	if row.contexts.Valid {
		_ = json.Unmarshal([]byte(row.contexts.String), &t.Contexts)
	}
	if row.subtasks.Valid {
		_ = json.Unmarshal([]byte(row.subtasks.String), &t.Subtasks)
	}

	return t
}
