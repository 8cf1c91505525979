package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tasksync/internal/domain"
	"tasksync/internal/errors"
)

// Client talks to the remote task API over HTTP. Every call may fail or time
// out; callers are expected to have checked connectivity immediately before
// use and to treat failures as transient.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new remote store client. The timeout bounds every
// request end to end; expiry surfaces as an ordinary remote error.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetAll retrieves all tasks from the remote store.
func (c *Client) GetAll(ctx context.Context) ([]domain.Task, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/tasks", nil)
	if err != nil {
		return nil, errors.NewRemoteError("list tasks", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewRemoteError("list tasks", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewRemoteError("list tasks", statusError(resp))
	}

	var list TaskList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, errors.NewRemoteError("decode task list", err)
	}

	tasks := make([]domain.Task, 0, len(list.Tasks))
	for _, wireTask := range list.Tasks {
		task, err := wireTask.ToDomain()
		if err != nil {
			return nil, errors.NewRemoteError("decode task list", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// Put creates or replaces a task on the remote store, keyed by its ID.
func (c *Client) Put(ctx context.Context, task domain.Task) error {
	body, err := json.Marshal(FromDomain(task))
	if err != nil {
		return errors.NewRemoteError("encode task", err)
	}

	url := fmt.Sprintf("%s/tasks/%d", c.baseURL, task.ID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return errors.NewRemoteError("put task", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewRemoteError("put task", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return errors.NewRemoteError("put task", statusError(resp))
	}
	return nil
}

// Delete removes a task from the remote store. Deleting a task that is already
// gone is a success; deletion is idempotent so retried tombstones converge.
func (c *Client) Delete(ctx context.Context, id int64) error {
	url := fmt.Sprintf("%s/tasks/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return errors.NewRemoteError("delete task", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewRemoteError("delete task", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		return errors.NewRemoteError("delete task", statusError(resp))
	}
	return nil
}

// MarkCompleted sets the completed flag for the task on the remote store.
func (c *Client) MarkCompleted(ctx context.Context, id int64) error {
	url := fmt.Sprintf("%s/tasks/%d/complete", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return errors.NewRemoteError("complete task", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewRemoteError("complete task", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}
	if resp.StatusCode != http.StatusOK {
		return errors.NewRemoteError("complete task", statusError(resp))
	}
	return nil
}

// Ping checks whether the remote store is reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return errors.NewRemoteError("ping", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewRemoteError("ping", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.NewRemoteError("ping", statusError(resp))
	}
	return nil
}

// statusError reads a short error description from a non-2xx response body.
func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	if len(body) == 0 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
}
