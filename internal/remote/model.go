package remote

import (
	"time"

	"tasksync/internal/domain"
)

// Task is the wire representation of a task. Dates travel as RFC3339 strings.
type Task struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
	Synced    bool   `json:"synced"`
}

// TaskList is the envelope returned by the task list endpoint.
type TaskList struct {
	Tasks []Task `json:"tasks"`
}

// FromDomain converts a domain Task to its wire representation.
func FromDomain(task domain.Task) Task {
	return Task{
		ID:        task.ID,
		Title:     task.Title,
		Date:      task.Date.UTC().Format(time.RFC3339),
		Completed: task.Completed,
		Synced:    task.Synced,
	}
}

// ToDomain converts a wire Task to a domain Task.
func (t Task) ToDomain() (domain.Task, error) {
	date, err := time.Parse(time.RFC3339, t.Date)
	if err != nil {
		return domain.Task{}, err
	}
	return domain.Task{
		ID:        t.ID,
		Title:     t.Title,
		Date:      date,
		Completed: t.Completed,
		Synced:    t.Synced,
	}, nil
}
