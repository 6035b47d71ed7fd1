package http

import (
	"time"

	"gtd-task-management/internal/engine"
	"gtd-task-management/internal/model"
	"gtd-task-management/internal/task"
	"gtd-task-management/pkg/recurrence"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title" binding:"required,min=1,max=500"`
	Description string `json:"description"`
	Notes       string `json:"notes"`

	Type   string `json:"type"   binding:"omitempty,oneof=task reference"`
	Status string `json:"status" binding:"omitempty,oneof=inbox next waiting someday completed"`

	DueDate       *time.Time `json:"dueDate"`
	DueDateExpr   string     `json:"dueDateExpr"`
	DeferDate     *time.Time `json:"deferDate"`
	DeferDateExpr string     `json:"deferDateExpr"`

	Recurrence    recurrence.Rule `json:"recurrence"`
	RecurrenceEnd *time.Time      `json:"recurrenceEndDate"`

	Energy string `json:"energy" binding:"omitempty,oneof=low medium high"`
	Time   int    `json:"time"   binding:"omitempty,min=0"`

	WaitingForTaskIDs     []string `json:"waitingForTaskIds"`
	WaitingForDescription string   `json:"waitingForDescription"`

	ProjectID string   `json:"projectId"`
	Contexts  []string `json:"contexts"`
	Subtasks  []string `json:"subtasks"`
	Starred   bool     `json:"starred"`
}

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Notes:       r.Notes,

		Type:   model.TaskType(r.Type),
		Status: model.TaskStatus(r.Status),

		DueDate:       r.DueDate,
		DueDateExpr:   r.DueDateExpr,
		DeferDate:     r.DeferDate,
		DeferDateExpr: r.DeferDateExpr,

		Recurrence:    r.Recurrence,
		RecurrenceEnd: r.RecurrenceEnd,

		Energy: model.Energy(r.Energy),
		Time:   r.Time,

		WaitingForTaskIDs:     r.WaitingForTaskIDs,
		WaitingForDescription: r.WaitingForDescription,

		ProjectID: r.ProjectID,
		Contexts:  r.Contexts,
		Subtasks:  r.Subtasks,
		Starred:   r.Starred,
	}
}

// ---

type updateReq struct {
	ID string `json:"-"` // populated from URI param

	Title       *string `json:"title"  binding:"omitempty,min=1,max=500"`
	Description *string `json:"description"`
	Notes       *string `json:"notes"`

	Status *string `json:"status" binding:"omitempty,oneof=inbox next waiting someday completed"`

	DueDate    *time.Time `json:"dueDate"`
	ClearDue   bool       `json:"clearDueDate"`
	DeferDate  *time.Time `json:"deferDate"`
	ClearDefer bool       `json:"clearDeferDate"`

	Recurrence    *recurrence.Rule `json:"recurrence"`
	RecurrenceEnd *time.Time       `json:"recurrenceEndDate"`

	Energy    *string `json:"energy" binding:"omitempty,oneof=low medium high"`
	Time      *int    `json:"time"   binding:"omitempty,min=0"`
	TimeSpent *int    `json:"timeSpent" binding:"omitempty,min=0"`

	WaitingForTaskIDs     *[]string `json:"waitingForTaskIds"`
	WaitingForDescription *string   `json:"waitingForDescription"`

	ProjectID *string          `json:"projectId"`
	Contexts  *[]string        `json:"contexts"`
	Subtasks  *[]model.Subtask `json:"subtasks"`
	Starred   *bool            `json:"starred"`
}

func (r updateReq) toInput() task.UpdateTaskInput {
	input := task.UpdateTaskInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Notes:       r.Notes,

		DueDate:    r.DueDate,
		ClearDue:   r.ClearDue,
		DeferDate:  r.DeferDate,
		ClearDefer: r.ClearDefer,

		Recurrence:    r.Recurrence,
		RecurrenceEnd: r.RecurrenceEnd,

		Time:      r.Time,
		TimeSpent: r.TimeSpent,

		WaitingForTaskIDs:     r.WaitingForTaskIDs,
		WaitingForDescription: r.WaitingForDescription,

		ProjectID: r.ProjectID,
		Contexts:  r.Contexts,
		Subtasks:  r.Subtasks,
		Starred:   r.Starred,
	}
	if r.Status != nil {
		status := model.TaskStatus(*r.Status)
		input.Status = &status
	}
	if r.Energy != nil {
		energy := model.Energy(*r.Energy)
		input.Energy = &energy
	}
	return input
}

// ---

type listReq struct {
	Status           string `form:"status" binding:"omitempty,oneof=inbox next waiting someday completed"`
	ProjectID        string `form:"projectId"`
	Context          string `form:"context"`
	IncludeCompleted bool   `form:"includeCompleted"`
	Limit            int    `form:"limit"`
	Offset           int    `form:"offset"`
}

func (r listReq) toInput() task.ListTasksInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return task.ListTasksInput{
		Status:           model.TaskStatus(r.Status),
		ProjectID:        r.ProjectID,
		Context:          r.Context,
		IncludeCompleted: r.IncludeCompleted,
		Limit:            limit,
		Offset:           offset,
	}
}

// ---

type uncompleteReq struct {
	Status string `json:"status" binding:"omitempty,oneof=inbox next waiting someday"`
}

// ---

type suggestReq struct {
	Context          string `form:"context"`
	AvailableMinutes int    `form:"availableMinutes" binding:"omitempty,min=0"`
	Energy           string `form:"energy" binding:"omitempty,oneof=low medium high"`
	Limit            int    `form:"limit"  binding:"omitempty,min=0"`
}

func (r suggestReq) toInput() task.SuggestInput {
	return task.SuggestInput{
		Preferences: engine.Preferences{
			Context:          r.Context,
			AvailableMinutes: r.AvailableMinutes,
			EnergyLevel:      model.Energy(r.Energy),
			MaxSuggestions:   r.Limit,
		},
	}
}

// --- Response DTOs ---

type taskResp struct {
	model.Task
	SubtasksDone  int `json:"subtasksDone,omitempty"`
	SubtasksTotal int `json:"subtasksTotal,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	done, total := t.SubtaskProgress()
	return taskResp{Task: t, SubtasksDone: done, SubtasksTotal: total}
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateTaskOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	return listResp{
		Tasks:  newTaskResps(out.Tasks),
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailTaskOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type updateResp struct {
	Task  taskResp `json:"task"`
	Moved []string `json:"moved,omitempty"`
}

func (h *handler) newUpdateResp(out task.UpdateTaskOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task), Moved: out.Moved}
}

type completeResp struct {
	Task      taskResp  `json:"task"`
	Next      *taskResp `json:"next,omitempty"`
	Unblocked []string  `json:"unblocked,omitempty"`
}

func (h *handler) newCompleteResp(out task.CompleteTaskOutput) completeResp {
	resp := completeResp{Task: newTaskResp(out.Task), Unblocked: out.Unblocked}
	if out.Next != nil {
		next := newTaskResp(*out.Next)
		resp.Next = &next
	}
	return resp
}

type sweepResp struct {
	Moved []string `json:"moved"`
}

func (h *handler) newSweepResp(out task.SweepOutput) sweepResp {
	moved := out.Moved
	if moved == nil {
		moved = []string{}
	}
	return sweepResp{Moved: moved}
}

type scoreResp struct {
	TaskID string `json:"taskId"`
	Score  int    `json:"score"`
	Label  string `json:"label"`
	Color  string `json:"color"`
}

func (h *handler) newScoreResp(out task.ScoreOutput) scoreResp {
	return scoreResp{
		TaskID: out.TaskID,
		Score:  out.Score,
		Label:  out.Label,
		Color:  out.Color,
	}
}

type suggestionResp struct {
	Task    taskResp `json:"task"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

type suggestResp struct {
	Suggestions []suggestionResp `json:"suggestions"`
}

func (h *handler) newSuggestResp(out task.SuggestOutput) suggestResp {
	suggestions := make([]suggestionResp, len(out.Suggestions))
	for i, s := range out.Suggestions {
		suggestions[i] = suggestionResp{
			Task:    newTaskResp(s.Task),
			Score:   s.Score,
			Reasons: s.Reasons,
		}
	}
	return suggestResp{Suggestions: suggestions}
}

type chainResp struct {
	Tasks  []taskResp `json:"tasks"`
	Length int        `json:"length"`
}

func newChainResp(chain engine.Chain) chainResp {
	return chainResp{Tasks: newTaskResps(chain), Length: len(chain)}
}

type chainsResp struct {
	Chains []chainResp `json:"chains"`
}

func (h *handler) newChainsResp(out task.ChainsOutput) chainsResp {
	chains := make([]chainResp, len(out.Chains))
	for i, chain := range out.Chains {
		chains[i] = newChainResp(chain)
	}
	return chainsResp{Chains: chains}
}

type criticalPathResp struct {
	Path chainResp `json:"path"`
}

func (h *handler) newCriticalPathResp(out task.CriticalPathOutput) criticalPathResp {
	return criticalPathResp{Path: newChainResp(out.Path)}
}
