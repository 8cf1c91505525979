package api

import (
	"context"
	"time"

	"tasksync/internal/config"
	"tasksync/internal/domain"
	"tasksync/internal/sync"
	"tasksync/internal/validation"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// Status describes the sync engine state for presentation.
type Status struct {
	Online  bool
	Pending int // tasks and deletions not yet accepted by the remote store
}

// API defines the interface for all task operations the presentation layer
// consumes. Every call returns the freshly reconciled, grouped view where one
// applies; validation failures surface synchronously, remote failures never
// block an action.
type API interface {
	AddTask(ctx context.Context, title string, date time.Time) (*domain.Task, []sync.Group, error)
	CompleteTask(ctx context.Context, id int64) ([]sync.Group, error)
	DeleteTask(ctx context.Context, id int64) ([]sync.Group, error)
	ListTasks(ctx context.Context) ([]sync.Group, error)
	Sync(ctx context.Context) ([]sync.Group, error)
	Status(ctx context.Context) (*Status, error)
}

type apiImpl struct {
	reconciler    *sync.Reconciler
	local         sync.LocalStore
	connectivity  sync.ConnectivitySource
	taskValidator *validation.TaskValidator
}

// New creates a new API instance. The config drives the validation bounds;
// a nil config falls back to the defaults.
func New(reconciler *sync.Reconciler, local sync.LocalStore, connectivity sync.ConnectivitySource, cfg *config.Config) API {
	return &apiImpl{
		reconciler:    reconciler,
		local:         local,
		connectivity:  connectivity,
		taskValidator: validation.NewTaskValidatorWithConfig(validation.NewValidatorWithConfig(cfg)),
	}
}

// AddTask validates the inputs, creates the task, and returns it with the
// reconciled view.
func (a *apiImpl) AddTask(ctx context.Context, title string, date time.Time) (*domain.Task, []sync.Group, error) {
	// Validate input
	if err := a.taskValidator.ValidateTaskForCreation(title, date); err != nil {
		return nil, nil, err
	}

	cleanedTitle, err := a.taskValidator.GetValidTitle(title)
	if err != nil {
		return nil, nil, err
	}

	task, view, err := a.reconciler.Add(ctx, cleanedTitle, date)
	if err != nil {
		return nil, nil, err
	}
	return &task, a.group(view), nil
}

// CompleteTask marks a task completed and returns the reconciled view.
func (a *apiImpl) CompleteTask(ctx context.Context, id int64) ([]sync.Group, error) {
	// Validate input
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return nil, err
	}

	view, err := a.reconciler.Complete(ctx, id)
	if err != nil {
		return nil, err
	}
	return a.group(view), nil
}

// DeleteTask removes a task and returns the reconciled view.
func (a *apiImpl) DeleteTask(ctx context.Context, id int64) ([]sync.Group, error) {
	// Validate input
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return nil, err
	}

	view, err := a.reconciler.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return a.group(view), nil
}

// ListTasks runs a reconciliation pass and returns the grouped view.
func (a *apiImpl) ListTasks(ctx context.Context) ([]sync.Group, error) {
	view, err := a.reconciler.Reconcile(ctx)
	if err != nil {
		return nil, err
	}
	return a.group(view), nil
}

// Sync is ListTasks under a name the CLI exposes directly.
func (a *apiImpl) Sync(ctx context.Context) ([]sync.Group, error) {
	return a.ListTasks(ctx)
}

// Status reports connectivity and the amount of unsynchronized work, reading
// only the local store so it works offline.
func (a *apiImpl) Status(ctx context.Context) (*Status, error) {
	tasks, err := a.local.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	pending := 0
	for _, task := range tasks {
		if !task.Synced {
			pending++
		}
	}

	tombstones, err := a.local.ListTombstones(ctx)
	if err != nil {
		return nil, err
	}
	pending += len(tombstones)

	return &Status{
		Online:  a.connectivity.Online(),
		Pending: pending,
	}, nil
}

func (a *apiImpl) group(view []domain.Task) []sync.Group {
	return sync.GroupByDay(view, timeNow())
}
