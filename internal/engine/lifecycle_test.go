package engine_test

import (
	"testing"
	"time"

	"gtd-task-management/internal/engine"
	"gtd-task-management/internal/model"
	"gtd-task-management/pkg/recurrence"
)

func TestComplete(t *testing.T) {
	task := model.Task{ID: "t", Status: model.StatusNext, Title: "Write report"}

	result := engine.Complete(task, testNow)
	got := result.Task

	if got.Status != model.StatusCompleted || !got.Completed {
		t.Errorf("status = %s completed = %v, want completed/true", got.Status, got.Completed)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(testNow) {
		t.Errorf("completedAt = %v, want %v", got.CompletedAt, testNow)
	}
	if result.Next != nil {
		t.Errorf("non-recurring completion produced an instance")
	}
}

func TestCompleteRecurringRollsOver(t *testing.T) {
	due := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	task := model.Task{
		ID:         "t",
		Status:     model.StatusNext,
		Title:      "Water plants",
		Contexts:   []string{"@home"},
		Energy:     model.EnergyLow,
		Time:       10,
		TimeSpent:  45,
		DueDate:    &due,
		Recurrence: recurrence.Rule{Frequency: recurrence.Daily},
	}

	result := engine.Complete(task, testNow)
	next := result.Next
	if next == nil {
		t.Fatalf("expected a next-occurrence instance")
	}

	if next.ID == "" || next.ID == task.ID {
		t.Errorf("instance ID = %q, want a fresh ID", next.ID)
	}
	if next.Completed || next.CompletedAt != nil {
		t.Errorf("instance must start uncompleted")
	}
	if next.Status != model.StatusNext {
		t.Errorf("instance status = %s, want pre-completion status next", next.Status)
	}
	if next.Title != task.Title || next.Energy != task.Energy || next.Time != task.Time {
		t.Errorf("instance did not carry over title/energy/time")
	}
	if len(next.Contexts) != 1 || next.Contexts[0] != "@home" {
		t.Errorf("instance contexts = %v, want [@home]", next.Contexts)
	}
	if next.Recurrence.Frequency != recurrence.Daily {
		t.Errorf("instance recurrence = %q, want daily", next.Recurrence.Frequency)
	}
	if next.TimeSpent != 0 {
		t.Errorf("instance timeSpent = %d, want 0", next.TimeSpent)
	}
	wantDue := due.AddDate(0, 0, 1)
	if next.DueDate == nil || !next.DueDate.Equal(wantDue) {
		t.Errorf("instance due = %v, want %v", next.DueDate, wantDue)
	}
}

func TestCompleteRecurrenceEndStopsRollover(t *testing.T) {
	due := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)
	task := model.Task{
		ID:            "t",
		Status:        model.StatusNext,
		DueDate:       &due,
		Recurrence:    recurrence.Rule{Frequency: recurrence.Daily},
		RecurrenceEnd: &end,
	}

	result := engine.Complete(task, testNow)
	if result.Next != nil {
		t.Errorf("recurrence past its end date still produced an instance")
	}
}

func TestUncomplete(t *testing.T) {
	at := testNow
	task := model.Task{
		ID:          "t",
		Status:      model.StatusCompleted,
		Completed:   true,
		CompletedAt: &at,
	}

	got := engine.Uncomplete(task, model.StatusSomeday, testNow)
	if got.Status != model.StatusSomeday {
		t.Errorf("status = %s, want someday", got.Status)
	}
	if got.Completed || got.CompletedAt != nil {
		t.Errorf("completion state not cleared")
	}

	defaulted := engine.Uncomplete(task, "", testNow)
	if defaulted.Status != model.StatusNext {
		t.Errorf("default revert status = %s, want next", defaulted.Status)
	}
}

func TestSweepDemotesBlockedTasks(t *testing.T) {
	tasks := []model.Task{
		{ID: "open"},
		{ID: "next-blocked", Status: model.StatusNext, WaitingForTaskIDs: []string{"open"}},
		{ID: "someday-blocked", Status: model.StatusSomeday, WaitingForTaskIDs: []string{"open"}},
		{ID: "next-free", Status: model.StatusNext},
	}

	result := engine.Sweep(tasks, testNow)
	if len(result.MovedIDs) != 2 {
		t.Fatalf("moved = %v, want 2 demotions", result.MovedIDs)
	}
	for _, changed := range result.Changed {
		if changed.Status != model.StatusWaiting {
			t.Errorf("%s status = %s, want waiting", changed.ID, changed.Status)
		}
	}
}

func TestSweepPromotesUnblockedTasks(t *testing.T) {
	tests := []struct {
		name    string
		task    model.Task
		all     []model.Task
		promote bool
	}{
		{
			name:    "Dependencies all met",
			task:    model.Task{ID: "w", Status: model.StatusWaiting, WaitingForTaskIDs: []string{"done"}},
			all:     []model.Task{{ID: "done", Completed: true}},
			promote: true,
		},
		{
			name:    "Dependencies unmet",
			task:    model.Task{ID: "w", Status: model.StatusWaiting, WaitingForTaskIDs: []string{"open"}},
			all:     []model.Task{{ID: "open"}},
			promote: false,
		},
		{
			name:    "Defer date arrived",
			task:    model.Task{ID: "w", Status: model.StatusWaiting, DeferDate: datePtr(testNow.AddDate(0, 0, -1))},
			promote: true,
		},
		{
			name:    "Defer date in the future",
			task:    model.Task{ID: "w", Status: model.StatusWaiting, DeferDate: datePtr(testNow.AddDate(0, 0, 2))},
			promote: false,
		},
		{
			name:    "Nothing actually blocking",
			task:    model.Task{ID: "w", Status: model.StatusWaiting},
			promote: true,
		},
		{
			name:    "External wait note keeps it waiting",
			task:    model.Task{ID: "w", Status: model.StatusWaiting, WaitingForDescription: "vendor reply"},
			promote: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Sweep(append(tt.all, tt.task), testNow)
			moved := len(result.MovedIDs) == 1 && result.MovedIDs[0] == "w"
			if moved != tt.promote {
				t.Fatalf("moved = %v, want %v", moved, tt.promote)
			}
			if tt.promote {
				got := result.Changed[0]
				if got.Status != model.StatusNext {
					t.Errorf("status = %s, want next", got.Status)
				}
				if got.HasDependencies() || got.WaitingForDescription != "" {
					t.Errorf("promotion must clear dependency fields")
				}
			}
		})
	}
}

func TestSweepIsIdempotent(t *testing.T) {
	tasks := []model.Task{
		{ID: "done", Completed: true, Status: model.StatusCompleted},
		{ID: "w", Status: model.StatusWaiting, WaitingForTaskIDs: []string{"done"}},
		{ID: "n", Status: model.StatusNext, WaitingForTaskIDs: []string{"open"}},
		{ID: "open"},
	}

	first := engine.Sweep(tasks, testNow)
	if len(first.MovedIDs) == 0 {
		t.Fatalf("first sweep moved nothing")
	}

	// Apply the sweep the way a caller would, then run it again.
	updated := engine.NewIndex(tasks)
	for _, c := range first.Changed {
		updated[c.ID] = c
	}
	var applied []model.Task
	for _, t0 := range tasks {
		applied = append(applied, updated[t0.ID])
	}

	second := engine.Sweep(applied, testNow)
	if len(second.MovedIDs) != 0 {
		t.Errorf("second sweep moved %v, want none", second.MovedIDs)
	}
}
