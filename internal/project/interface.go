package project

import (
	"context"
)

// UseCase defines the business logic interface for the project domain.
type UseCase interface {
	Create(ctx context.Context, input CreateProjectInput) (CreateProjectOutput, error)
	List(ctx context.Context, input ListProjectsInput) (ListProjectsOutput, error)
	Detail(ctx context.Context, id string) (DetailProjectOutput, error)
	Update(ctx context.Context, input UpdateProjectInput) (UpdateProjectOutput, error)
	// Delete removes the project and detaches its tasks; the tasks
	// themselves survive.
	Delete(ctx context.Context, id string) (DeleteProjectOutput, error)
}
