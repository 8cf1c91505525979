package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasksync/internal/config"
	"tasksync/internal/domain"
	"tasksync/internal/remote"
	"tasksync/internal/repository/sqlite"
)

func setupServer(t *testing.T) *Server {
	gin.SetMode(gin.TestMode)
	repo, err := config.CreateTestRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return New(repo)
}

func seedTask(t *testing.T, srv *Server, id int64, title string, date time.Time) {
	task := &sqlite.Task{ID: id, Title: title, Date: date}
	require.NoError(t, srv.repo.PutTask(context.Background(), task))
}

func doRequest(srv *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHandleHealth(t *testing.T) {
	srv := setupServer(t)

	w := doRequest(srv, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestHandleListTasks(t *testing.T) {
	srv := setupServer(t)
	seedTask(t, srv, 1, "Buy groceries", time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC))
	seedTask(t, srv, 2, "Walk the dog", time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC))

	w := doRequest(srv, http.MethodGet, "/tasks", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var list remote.TaskList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Tasks, 2)
	assert.Equal(t, "Buy groceries", list.Tasks[0].Title)
	assert.Equal(t, "2026-09-01T09:30:00Z", list.Tasks[0].Date)
}

func TestHandleListTasks_Empty(t *testing.T) {
	srv := setupServer(t)

	w := doRequest(srv, http.MethodGet, "/tasks", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var list remote.TaskList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list.Tasks)
}

func TestHandlePutTask(t *testing.T) {
	srv := setupServer(t)

	wireTask := remote.Task{
		ID:     42,
		Title:  "Buy groceries",
		Date:   "2026-09-01T09:30:00Z",
		Synced: true,
	}
	body, _ := json.Marshal(wireTask)

	w := doRequest(srv, http.MethodPut, "/tasks/42", body)

	require.Equal(t, http.StatusOK, w.Code)

	stored, err := srv.repo.GetTask(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Buy groceries", stored.Title)
	assert.True(t, stored.Synced)
}

func TestHandlePutTask_Upsert(t *testing.T) {
	srv := setupServer(t)
	seedTask(t, srv, 42, "Old title", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	wireTask := remote.Task{ID: 42, Title: "New title", Date: "2026-09-01T00:00:00Z"}
	body, _ := json.Marshal(wireTask)

	w := doRequest(srv, http.MethodPut, "/tasks/42", body)

	require.Equal(t, http.StatusOK, w.Code)
	stored, err := srv.repo.GetTask(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "New title", stored.Title)
}

func TestHandlePutTask_BadRequests(t *testing.T) {
	srv := setupServer(t)

	tests := []struct {
		name string
		path string
		body string
	}{
		{"invalid ID", "/tasks/abc", `{"id":1,"title":"x","date":"2026-09-01T00:00:00Z"}`},
		{"ID mismatch", "/tasks/1", `{"id":2,"title":"x","date":"2026-09-01T00:00:00Z"}`},
		{"malformed body", "/tasks/1", `{not json`},
		{"bad date", "/tasks/1", `{"id":1,"title":"x","date":"tomorrow"}`},
		{"empty title", "/tasks/1", `{"id":1,"title":"","date":"2026-09-01T00:00:00Z"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(srv, http.MethodPut, tt.path, []byte(tt.body))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleDeleteTask(t *testing.T) {
	srv := setupServer(t)
	seedTask(t, srv, 7, "Buy groceries", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	w := doRequest(srv, http.MethodDelete, "/tasks/7", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(srv, http.MethodDelete, "/tasks/7", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleCompleteTask(t *testing.T) {
	srv := setupServer(t)
	seedTask(t, srv, 7, "Buy groceries", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	w := doRequest(srv, http.MethodPost, "/tasks/7/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := srv.repo.GetTask(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, stored.Completed)
}

func TestHandleCompleteTask_NotFound(t *testing.T) {
	srv := setupServer(t)

	w := doRequest(srv, http.MethodPost, "/tasks/999/complete", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestClientServerRoundTrip exercises the full wire surface: the real HTTP
// client against the real handler stack over a live listener.
func TestClientServerRoundTrip(t *testing.T) {
	srv := setupServer(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	client := remote.NewClient(ts.URL, time.Second)
	ctx := context.Background()

	require.NoError(t, client.Ping(ctx))

	task := domain.Task{
		ID:     1756291413000,
		Title:  "Buy groceries",
		Date:   time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC),
		Synced: true,
	}
	require.NoError(t, client.Put(ctx, task))

	tasks, err := client.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task.ID, tasks[0].ID)
	assert.Equal(t, task.Title, tasks[0].Title)
	assert.True(t, tasks[0].Date.Equal(task.Date))

	require.NoError(t, client.MarkCompleted(ctx, task.ID))
	tasks, err = client.GetAll(ctx)
	require.NoError(t, err)
	assert.True(t, tasks[0].Completed)

	require.NoError(t, client.Delete(ctx, task.ID))
	tasks, err = client.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// Deleting again is idempotent through the 404 contract
	require.NoError(t, client.Delete(ctx, task.ID))
}
