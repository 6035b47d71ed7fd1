package sync

import (
	"context"

	"github.com/gin-gonic/gin"

	"gtd-task-management/pkg/gtasks"
)

// UseCase defines the remote synchronization operations.
type UseCase interface {
	// Push sends local tasks to the remote list: unlinked tasks are
	// created remotely, linked ones updated.
	Push(ctx context.Context) (PushOutput, error)
	// Pull applies remote changes locally: unknown remote tasks are
	// captured into the inbox, remote completions complete the local task.
	Pull(ctx context.Context) (PullOutput, error)
	// FullSync runs Push then Pull.
	FullSync(ctx context.Context) (SyncOutput, error)
}

// Handler defines the inbound webhook handler.
type Handler interface {
	// HandleTasksWebhook processes change notifications from the remote
	// side and triggers a pull.
	HandleTasksWebhook(c *gin.Context)
}

// RemoteStore is the slice of the Google Tasks client the sync usecase
// needs. *gtasks.Client satisfies this.
type RemoteStore interface {
	ListTasks(ctx context.Context, req gtasks.ListTasksRequest) ([]gtasks.RemoteTask, error)
	UpsertTask(ctx context.Context, req gtasks.UpsertTaskRequest) (*gtasks.RemoteTask, error)
	DeleteTask(ctx context.Context, listID, taskID string) error
}
