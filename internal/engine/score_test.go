package engine_test

import (
	"testing"
	"time"

	"gtd-task-management/internal/engine"
	"gtd-task-management/internal/model"
)

func score(t model.Task, all []model.Task, projects []model.Project) int {
	return engine.PriorityScore(t, engine.NewIndex(all), engine.NewProjectIndex(projects), testNow)
}

func TestPriorityScoreCompletedIsZero(t *testing.T) {
	task := model.Task{
		ID:        "t",
		Status:    model.StatusCompleted,
		Completed: true,
		Starred:   true,
		DueDate:   datePtr(testNow.AddDate(0, 0, -5)),
	}
	if got := score(task, nil, nil); got != 0 {
		t.Errorf("completed task score = %d, want 0", got)
	}
}

func TestPriorityScoreBounds(t *testing.T) {
	tasks := []model.Task{
		{}, // zero value
		{
			// Every positive signal at once, must clamp to 100.
			ID:        "max",
			Status:    model.StatusNext,
			Starred:   true,
			DueDate:   datePtr(testNow.AddDate(0, 0, -1)),
			CreatedAt: testNow.AddDate(0, 0, -40),
			Energy:    model.EnergyHigh,
			Time:      5,
		},
		{
			// Every penalty at once, must clamp to 0... base keeps it above.
			ID:                "min",
			Energy:            model.EnergyLow,
			Time:              90,
			DeferDate:         datePtr(testNow.AddDate(0, 0, 10)),
			WaitingForTaskIDs: []string{"open"},
		},
	}
	all := append(tasks, model.Task{ID: "open"})

	for _, task := range tasks {
		got := score(task, all, nil)
		if got < 0 || got > 100 {
			t.Errorf("score(%s) = %d, out of [0,100]", task.ID, got)
		}
	}
}

func TestPriorityScoreWorkedExample(t *testing.T) {
	// Overdue, starred, next, quick high-energy, short, old: every bucket
	// fires and the raw total of 123 clamps to 100.
	task := model.Task{
		ID:        "t",
		Status:    model.StatusNext,
		Starred:   true,
		DueDate:   datePtr(testNow.AddDate(0, 0, -1)),
		CreatedAt: testNow.AddDate(0, 0, -40),
		Energy:    model.EnergyHigh,
		Time:      10,
	}
	if got := score(task, nil, nil); got != 100 {
		t.Errorf("worked example score = %d, want 100", got)
	}
}

func TestPriorityScoreDueBuckets(t *testing.T) {
	tests := []struct {
		name string
		due  *time.Time
		want int
	}{
		{name: "Overdue", due: datePtr(testNow.AddDate(0, 0, -1)), want: 75},
		{name: "Due today", due: datePtr(testNow), want: 70},
		{name: "Due tomorrow", due: datePtr(testNow.AddDate(0, 0, 1)), want: 65},
		{name: "Due in 3 days", due: datePtr(testNow.AddDate(0, 0, 3)), want: 60},
		{name: "Due in 7 days", due: datePtr(testNow.AddDate(0, 0, 7)), want: 55},
		{name: "Due beyond a week", due: datePtr(testNow.AddDate(0, 0, 8)), want: 50},
		{name: "No due date", due: nil, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := model.Task{ID: "t", CreatedAt: testNow, DueDate: tt.due}
			if got := score(task, nil, nil); got != tt.want {
				t.Errorf("score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPriorityScoreTimeBucketsDoNotStack(t *testing.T) {
	// time<=5 earns the very-quick bonus only, not very-quick plus short.
	veryQuick := model.Task{ID: "t", CreatedAt: testNow, Time: 5}
	if got := score(veryQuick, nil, nil); got != 55 {
		t.Errorf("very quick score = %d, want 55", got)
	}
	short := model.Task{ID: "t", CreatedAt: testNow, Time: 12}
	if got := score(short, nil, nil); got != 53 {
		t.Errorf("short score = %d, want 53", got)
	}
}

func TestPriorityScoreAgeBuckets(t *testing.T) {
	tests := []struct {
		name    string
		ageDays int
		want    int
	}{
		{name: "Fresh", ageDays: 3, want: 50},
		{name: "Over a week", ageDays: 10, want: 53},
		{name: "Over two weeks", ageDays: 20, want: 55},
		{name: "Over a month", ageDays: 40, want: 57},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := model.Task{ID: "t", CreatedAt: testNow.AddDate(0, 0, -tt.ageDays)}
			if got := score(task, nil, nil); got != tt.want {
				t.Errorf("score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPriorityScoreDependencySignals(t *testing.T) {
	all := []model.Task{
		{ID: "done", Completed: true},
		{ID: "open"},
	}

	ready := model.Task{ID: "t", CreatedAt: testNow, WaitingForTaskIDs: []string{"done"}}
	if got := score(ready, all, nil); got != 60 {
		t.Errorf("ready score = %d, want 60", got)
	}

	blocked := model.Task{ID: "t", CreatedAt: testNow, WaitingForTaskIDs: []string{"open"}}
	if got := score(blocked, all, nil); got != 40 {
		t.Errorf("blocked score = %d, want 40", got)
	}
}

func TestPriorityScoreProjectAndDefer(t *testing.T) {
	projects := []model.Project{
		{ID: "p-active", Status: model.ProjectActive},
		{ID: "p-someday", Status: model.ProjectSomeday},
	}

	active := model.Task{ID: "t", CreatedAt: testNow, ProjectID: "p-active"}
	if got := score(active, nil, projects); got != 55 {
		t.Errorf("active project score = %d, want 55", got)
	}

	inactive := model.Task{ID: "t", CreatedAt: testNow, ProjectID: "p-someday"}
	if got := score(inactive, nil, projects); got != 50 {
		t.Errorf("inactive project score = %d, want 50", got)
	}

	deferred := model.Task{ID: "t", CreatedAt: testNow, DeferDate: datePtr(testNow.AddDate(0, 0, 5))}
	if got := score(deferred, nil, nil); got != 30 {
		t.Errorf("deferred score = %d, want 30", got)
	}
}

func TestScoreLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{score: 95, want: "Urgent"},
		{score: 80, want: "Urgent"},
		{score: 60, want: "High"},
		{score: 40, want: "Medium"},
		{score: 20, want: "Low"},
		{score: 19, want: "Very Low"},
		{score: 0, want: "Very Low"},
	}
	for _, tt := range tests {
		if got := engine.ScoreLabel(tt.score); got != tt.want {
			t.Errorf("ScoreLabel(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
