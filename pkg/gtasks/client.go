package gtasks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/tasks/v1"
)

// DefaultListID targets the user's default task list.
const DefaultListID = "@default"

// Client wraps the Google Tasks API service.
type Client struct {
	service *tasks.Service
}

// NewClientFromCredentialsFile creates a Tasks client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Tasks client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	// Try service account first
	config, err := google.JWTConfigFromJSON(credentialsJSON, tasks.TasksScope)
	if err == nil {
		tokenSource := config.TokenSource(ctx)
		svc, svcErr := tasks.NewService(ctx, option.WithTokenSource(tokenSource))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create tasks service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	// Fallback: try OAuth2 installed app credentials
	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{tasks.TasksScope},
		Endpoint:     google.Endpoint,
	}

	// For OAuth2 Desktop app: use a static token if token.json exists
	tokenData, tokenErr := os.ReadFile("token.json")
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token.json found: use Service Account instead")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	tokenSource := oauthConfig.TokenSource(ctx, &tok)
	svc, svcErr := tasks.NewService(ctx, option.WithTokenSource(tokenSource))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create tasks service from OAuth token: %w", svcErr)
	}

	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Tasks client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListTaskLists returns the user's task lists.
func (c *Client) ListTaskLists(ctx context.Context) ([]TaskList, error) {
	result, err := c.service.Tasklists.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list task lists: %w", err)
	}

	lists := make([]TaskList, 0, len(result.Items))
	for _, item := range result.Items {
		lists = append(lists, TaskList{ID: item.Id, Title: item.Title})
	}
	return lists, nil
}

// ListTasks returns the tasks in one remote list.
func (c *Client) ListTasks(ctx context.Context, req ListTasksRequest) ([]RemoteTask, error) {
	listID := req.ListID
	if listID == "" {
		listID = DefaultListID
	}

	call := c.service.Tasks.List(listID).
		ShowCompleted(req.ShowCompleted).
		ShowDeleted(req.ShowDeleted).
		ShowHidden(req.ShowCompleted)
	if !req.UpdatedMin.IsZero() {
		call = call.UpdatedMin(req.UpdatedMin.Format(time.RFC3339))
	}
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	result, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	remote := make([]RemoteTask, 0, len(result.Items))
	for _, item := range result.Items {
		remote = append(remote, decodeRemote(listID, item))
	}
	return remote, nil
}

// UpsertTask creates or updates a remote task depending on TaskID.
func (c *Client) UpsertTask(ctx context.Context, req UpsertTaskRequest) (*RemoteTask, error) {
	listID := req.ListID
	if listID == "" {
		listID = DefaultListID
	}

	payload := &tasks.Task{
		Title:  req.Title,
		Notes:  req.Notes,
		Status: "needsAction",
	}
	if req.Completed {
		payload.Status = "completed"
	}
	if req.Due != nil {
		payload.Due = req.Due.UTC().Format(time.RFC3339)
	}

	var (
		saved *tasks.Task
		err   error
	)
	if req.TaskID == "" {
		saved, err = c.service.Tasks.Insert(listID, payload).Context(ctx).Do()
	} else {
		payload.Id = req.TaskID
		saved, err = c.service.Tasks.Update(listID, req.TaskID, payload).Context(ctx).Do()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to upsert task: %w", err)
	}

	remote := decodeRemote(listID, saved)
	return &remote, nil
}

// DeleteTask removes a remote task.
func (c *Client) DeleteTask(ctx context.Context, listID, taskID string) error {
	if listID == "" {
		listID = DefaultListID
	}
	if err := c.service.Tasks.Delete(listID, taskID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func decodeRemote(listID string, item *tasks.Task) RemoteTask {
	remote := RemoteTask{
		ID:        item.Id,
		ListID:    listID,
		Title:     item.Title,
		Notes:     item.Notes,
		Completed: item.Status == "completed",
		Deleted:   item.Deleted,
	}
	if item.Due != "" {
		if due, err := time.Parse(time.RFC3339, item.Due); err == nil {
			remote.Due = &due
		}
	}
	if item.Updated != "" {
		if updated, err := time.Parse(time.RFC3339, item.Updated); err == nil {
			remote.Updated = updated
		}
	}
	return remote
}
