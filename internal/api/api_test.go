package api

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasksync/internal/config"
	"tasksync/internal/domain"
	"tasksync/internal/store"
	"tasksync/internal/sync"
	"tasksync/internal/validation"
)

// memRemote is an in-memory remote store with a reachability switch.
type memRemote struct {
	tasks map[int64]domain.Task
	down  bool
}

func newMemRemote() *memRemote {
	return &memRemote{tasks: make(map[int64]domain.Task)}
}

func (m *memRemote) Put(ctx context.Context, task domain.Task) error {
	if m.down {
		return errors.New("remote unreachable")
	}
	m.tasks[task.ID] = task
	return nil
}

func (m *memRemote) GetAll(ctx context.Context) ([]domain.Task, error) {
	if m.down {
		return nil, errors.New("remote unreachable")
	}
	tasks := make([]domain.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

func (m *memRemote) Delete(ctx context.Context, id int64) error {
	if m.down {
		return errors.New("remote unreachable")
	}
	delete(m.tasks, id)
	return nil
}

func (m *memRemote) MarkCompleted(ctx context.Context, id int64) error {
	if m.down {
		return errors.New("remote unreachable")
	}
	task, ok := m.tasks[id]
	if !ok {
		return errors.New("task not found")
	}
	task.Completed = true
	m.tasks[id] = task
	return nil
}

type stubConnectivity struct {
	online bool
}

func (s *stubConnectivity) Online() bool { return s.online }

func setupAPI(t *testing.T, online bool) (API, *store.Local, *memRemote, *stubConnectivity) {
	repo, err := config.CreateTestRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	local := store.NewLocal(repo)
	remote := newMemRemote()
	connectivity := &stubConnectivity{online: online}
	reconciler := sync.NewReconciler(local, remote, connectivity, nil)

	original := timeNow
	timeNow = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { timeNow = original })

	return New(reconciler, local, connectivity, nil), local, remote, connectivity
}

func TestAddTaskHonorsConfiguredTitleBounds(t *testing.T) {
	repo, err := config.CreateTestRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	local := store.NewLocal(repo)
	remote := newMemRemote()
	connectivity := &stubConnectivity{online: true}
	reconciler := sync.NewReconciler(local, remote, connectivity, nil)

	cfg := config.NewConfig()
	cfg.Validation.TitleMinLength = 5
	cfg.Validation.TitleMaxLength = 10
	apiInstance := New(reconciler, local, connectivity, cfg)

	due := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)

	_, _, err = apiInstance.AddTask(context.Background(), "abc", due)
	require.Error(t, err)
	assert.True(t, validation.IsValidationError(err))

	_, _, err = apiInstance.AddTask(context.Background(), "this title is far too long for the configured maximum", due)
	require.Error(t, err)
	assert.True(t, validation.IsValidationError(err))

	task, _, err := apiInstance.AddTask(context.Background(), "groceries", due)
	require.NoError(t, err)
	assert.Equal(t, "groceries", task.Title)
}

func allTasks(groups []sync.Group) []domain.Task {
	var tasks []domain.Task
	for _, group := range groups {
		tasks = append(tasks, group.Tasks...)
	}
	return tasks
}

func TestAddTask_Online(t *testing.T) {
	api, _, remote, _ := setupAPI(t, true)

	task, groups, err := api.AddTask(context.Background(), "Buy groceries", time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.True(t, task.Synced)
	assert.Contains(t, remote.tasks, task.ID)
	assert.Len(t, allTasks(groups), 1)
}

func TestAddTask_TrimsTitle(t *testing.T) {
	api, _, _, _ := setupAPI(t, true)

	task, _, err := api.AddTask(context.Background(), "  Buy groceries  ", time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, "Buy groceries", task.Title)
}

func TestAddTask_ValidationFailures(t *testing.T) {
	api, _, remote, _ := setupAPI(t, true)

	tests := []struct {
		name  string
		title string
		date  time.Time
	}{
		{"empty title", "", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
		{"whitespace title", "   ", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
		{"zero date", "Buy groceries", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := api.AddTask(context.Background(), tt.title, tt.date)

			require.Error(t, err)
			assert.True(t, validation.IsValidationError(err))
			assert.Empty(t, remote.tasks, "invalid input must reach no store")
		})
	}
}

func TestCompleteTask(t *testing.T) {
	api, _, remote, _ := setupAPI(t, true)

	task, _, err := api.AddTask(context.Background(), "Buy groceries", time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	groups, err := api.CompleteTask(context.Background(), task.ID)
	require.NoError(t, err)

	tasks := allTasks(groups)
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].Completed)
	assert.True(t, remote.tasks[task.ID].Completed)
}

func TestCompleteTask_InvalidID(t *testing.T) {
	api, _, _, _ := setupAPI(t, true)

	_, err := api.CompleteTask(context.Background(), 0)

	require.Error(t, err)
	assert.True(t, validation.IsValidationError(err))
}

func TestDeleteTask(t *testing.T) {
	api, _, remote, _ := setupAPI(t, true)

	task, _, err := api.AddTask(context.Background(), "Buy groceries", time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	groups, err := api.DeleteTask(context.Background(), task.ID)
	require.NoError(t, err)

	assert.Empty(t, allTasks(groups))
	assert.NotContains(t, remote.tasks, task.ID)
}

func TestListTasks_GroupsPastAndUpcoming(t *testing.T) {
	api, local, _, _ := setupAPI(t, false)
	ctx := context.Background()

	// today is pinned to 2026-09-01 in setupAPI
	require.NoError(t, local.Put(ctx, domain.Task{ID: 1, Title: "Overdue", Date: time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)}))
	require.NoError(t, local.Put(ctx, domain.Task{ID: 2, Title: "Today", Date: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)}))
	require.NoError(t, local.Put(ctx, domain.Task{ID: 3, Title: "Tomorrow", Date: time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)}))

	groups, err := api.ListTasks(ctx)
	require.NoError(t, err)

	require.Len(t, groups, 3)
	assert.True(t, groups[0].Past)
	assert.Equal(t, "Overdue", groups[0].Tasks[0].Title)
	assert.Equal(t, "Today", groups[1].Tasks[0].Title)
	assert.Equal(t, "Tomorrow", groups[2].Tasks[0].Title)
}

func TestSync_PushesOfflineWork(t *testing.T) {
	api, _, remote, connectivity := setupAPI(t, false)
	ctx := context.Background()

	task, _, err := api.AddTask(ctx, "Made offline", time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, remote.tasks)

	connectivity.online = true
	groups, err := api.Sync(ctx)
	require.NoError(t, err)

	assert.Contains(t, remote.tasks, task.ID)
	tasks := allTasks(groups)
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].Synced)
}

func TestStatus(t *testing.T) {
	api, local, _, connectivity := setupAPI(t, false)
	ctx := context.Background()

	status, err := api.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.Online)
	assert.Zero(t, status.Pending)

	// An offline add and an offline delete both count as pending work
	_, _, err = api.AddTask(ctx, "Made offline", time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, local.PutTombstone(ctx, 999))

	status, err = api.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, status.Pending)

	connectivity.online = true
	status, err = api.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.Online)
}

func TestStatus_ClearsAfterSync(t *testing.T) {
	api, _, _, connectivity := setupAPI(t, false)
	ctx := context.Background()

	_, _, err := api.AddTask(ctx, "Made offline", time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	connectivity.online = true
	_, err = api.Sync(ctx)
	require.NoError(t, err)

	status, err := api.Status(ctx)
	require.NoError(t, err)
	assert.Zero(t, status.Pending)
}
