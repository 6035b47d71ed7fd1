package http

import (
	"gtd-task-management/internal/model"
	"gtd-task-management/internal/project"
)

// --- Request DTOs ---

type createReq struct {
	Title       string   `json:"title" binding:"required,min=1,max=500"`
	Description string   `json:"description"`
	Status      string   `json:"status" binding:"omitempty,oneof=active someday completed archived"`
	Contexts    []string `json:"contexts"`
	Position    int      `json:"position"`
}

func (r createReq) toInput() project.CreateProjectInput {
	return project.CreateProjectInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      model.ProjectStatus(r.Status),
		Contexts:    r.Contexts,
		Position:    r.Position,
	}
}

// ---

type updateReq struct {
	ID string `json:"-"` // populated from URI param

	Title       *string   `json:"title" binding:"omitempty,min=1,max=500"`
	Description *string   `json:"description"`
	Status      *string   `json:"status" binding:"omitempty,oneof=active someday completed archived"`
	Contexts    *[]string `json:"contexts"`
	Position    *int      `json:"position"`
}

func (r updateReq) toInput() project.UpdateProjectInput {
	input := project.UpdateProjectInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Contexts:    r.Contexts,
		Position:    r.Position,
	}
	if r.Status != nil {
		status := model.ProjectStatus(*r.Status)
		input.Status = &status
	}
	return input
}

// ---

type listReq struct {
	Status          string `form:"status" binding:"omitempty,oneof=active someday completed archived"`
	IncludeArchived bool   `form:"includeArchived"`
}

func (r listReq) toInput() project.ListProjectsInput {
	return project.ListProjectsInput{
		Status:          model.ProjectStatus(r.Status),
		IncludeArchived: r.IncludeArchived,
	}
}

// --- Response DTOs ---

type createResp struct {
	Project model.Project `json:"project"`
}

func (h *handler) newCreateResp(out project.CreateProjectOutput) createResp {
	return createResp{Project: out.Project}
}

type listResp struct {
	Projects []model.Project `json:"projects"`
	Total    int             `json:"total"`
}

func (h *handler) newListResp(out project.ListProjectsOutput) listResp {
	return listResp{Projects: out.Projects, Total: out.Total}
}

type detailResp struct {
	Project    model.Project `json:"project"`
	TasksDone  int           `json:"tasksDone"`
	TasksTotal int           `json:"tasksTotal"`
}

func (h *handler) newDetailResp(out project.DetailProjectOutput) detailResp {
	return detailResp{
		Project:    out.Project,
		TasksDone:  out.Progress.TasksDone,
		TasksTotal: out.Progress.TasksTotal,
	}
}

type updateResp struct {
	Project model.Project `json:"project"`
}

func (h *handler) newUpdateResp(out project.UpdateProjectOutput) updateResp {
	return updateResp{Project: out.Project}
}

type deleteResp struct {
	UnlinkedTasks int `json:"unlinkedTasks"`
}

func (h *handler) newDeleteResp(out project.DeleteProjectOutput) deleteResp {
	return deleteResp{UnlinkedTasks: out.UnlinkedTasks}
}
