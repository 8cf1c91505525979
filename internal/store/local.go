package store

import (
	"context"

	"tasksync/internal/domain"
	"tasksync/internal/repository/sqlite"
)

// Local adapts the sqlite repository to the task store the sync engine
// consumes, converting between domain and database models.
type Local struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewLocal creates a local task store over the given repository.
func NewLocal(repo sqlite.Repository) *Local {
	return &Local{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// Put inserts or replaces a task keyed by its ID.
func (s *Local) Put(ctx context.Context, task domain.Task) error {
	dbTask := s.mapper.Task.ToDatabase(task)
	return s.repo.PutTask(ctx, &dbTask)
}

// Get retrieves a task by ID.
func (s *Local) Get(ctx context.Context, id int64) (domain.Task, error) {
	dbTask, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	return s.mapper.Task.FromDatabase(*dbTask), nil
}

// GetAll retrieves every stored task.
func (s *Local) GetAll(ctx context.Context) ([]domain.Task, error) {
	dbTasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// Delete removes a task by ID.
func (s *Local) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteTask(ctx, id)
}

// MarkCompleted sets the completed flag for a task.
func (s *Local) MarkCompleted(ctx context.Context, id int64) error {
	return s.repo.MarkCompleted(ctx, id)
}

// PutTombstone records a pending remote deletion.
func (s *Local) PutTombstone(ctx context.Context, id int64) error {
	return s.repo.PutTombstone(ctx, id)
}

// ListTombstones returns the IDs of all pending remote deletions.
func (s *Local) ListTombstones(ctx context.Context) ([]int64, error) {
	tombstones, err := s.repo.ListTombstones(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(tombstones))
	for i, tombstone := range tombstones {
		ids[i] = tombstone.TaskID
	}
	return ids, nil
}

// DeleteTombstone clears a tombstone once the remote deletion has landed.
func (s *Local) DeleteTombstone(ctx context.Context, id int64) error {
	return s.repo.DeleteTombstone(ctx, id)
}
