package usecase

import (
	"context"

	"github.com/google/uuid"

	"gtd-task-management/internal/model"
	"gtd-task-management/internal/project"
	"gtd-task-management/internal/project/repository"
)

// Create registers a new project.
func (uc *implUseCase) Create(ctx context.Context, input project.CreateProjectInput) (project.CreateProjectOutput, error) {
	if input.Title == "" {
		return project.CreateProjectOutput{}, project.ErrEmptyTitle
	}
	if input.Status != "" && !model.ValidProjectStatus(input.Status) {
		return project.CreateProjectOutput{}, project.ErrInvalidStatus
	}

	now := uc.now()

	p := model.Project{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,

		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Contexts:    input.Contexts,
		Position:    input.Position,
	}
	if p.Status == "" {
		p.Status = model.ProjectActive
	}

	created, err := uc.repo.CreateProject(ctx, p)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateProject: %v", err)
		return project.CreateProjectOutput{}, err
	}

	return project.CreateProjectOutput{Project: created}, nil
}

// List returns projects matching the filter.
func (uc *implUseCase) List(ctx context.Context, input project.ListProjectsInput) (project.ListProjectsOutput, error) {
	projects, err := uc.repo.ListProjects(ctx, repository.ListProjectsOptions{
		Status:          input.Status,
		IncludeArchived: input.IncludeArchived,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListProjects: %v", err)
		return project.ListProjectsOutput{}, err
	}

	return project.ListProjectsOutput{Projects: projects, Total: len(projects)}, nil
}

// Detail returns one project with its task progress.
func (uc *implUseCase) Detail(ctx context.Context, id string) (project.DetailProjectOutput, error) {
	p, err := uc.repo.GetProject(ctx, id)
	if err != nil {
		return project.DetailProjectOutput{}, err
	}

	done, total, err := uc.repo.CountProjectTasks(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail CountProjectTasks: %v", err)
		return project.DetailProjectOutput{}, err
	}

	return project.DetailProjectOutput{
		Project:  p,
		Progress: project.ProjectProgress{TasksDone: done, TasksTotal: total},
	}, nil
}

// Update applies a partial edit.
func (uc *implUseCase) Update(ctx context.Context, input project.UpdateProjectInput) (project.UpdateProjectOutput, error) {
	p, err := uc.repo.GetProject(ctx, input.ID)
	if err != nil {
		return project.UpdateProjectOutput{}, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return project.UpdateProjectOutput{}, project.ErrEmptyTitle
		}
		p.Title = *input.Title
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Status != nil {
		if !model.ValidProjectStatus(*input.Status) {
			return project.UpdateProjectOutput{}, project.ErrInvalidStatus
		}
		p.Status = *input.Status
	}
	if input.Contexts != nil {
		p.Contexts = *input.Contexts
	}
	if input.Position != nil {
		p.Position = *input.Position
	}

	p.UpdatedAt = uc.now()

	updated, err := uc.repo.UpdateProject(ctx, p)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateProject: %v", err)
		return project.UpdateProjectOutput{}, err
	}

	return project.UpdateProjectOutput{Project: updated}, nil
}

// Delete removes the project and detaches its tasks.
func (uc *implUseCase) Delete(ctx context.Context, id string) (project.DeleteProjectOutput, error) {
	if _, err := uc.repo.GetProject(ctx, id); err != nil {
		return project.DeleteProjectOutput{}, err
	}

	unlinked, err := uc.tasks.UnlinkProject(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete UnlinkProject: %v", err)
		return project.DeleteProjectOutput{}, err
	}

	if err := uc.repo.DeleteProject(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteProject: %v", err)
		return project.DeleteProjectOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Delete: project %s removed, %d tasks unlinked", id, unlinked)
	return project.DeleteProjectOutput{UnlinkedTasks: unlinked}, nil
}
