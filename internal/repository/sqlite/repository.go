package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"tasksync/internal/errors"
	"tasksync/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for local task storage. All operations are
// durable across process restarts and never touch the network.
type Repository interface {
	// Task operations
	PutTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	DeleteTask(ctx context.Context, id int64) error
	MarkCompleted(ctx context.Context, id int64) error

	// Tombstone operations
	PutTombstone(ctx context.Context, id int64) error
	ListTombstones(ctx context.Context) ([]*Tombstone, error)
	DeleteTombstone(ctx context.Context, id int64) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// PutTask inserts or replaces a task keyed by its client-generated ID.
func (r *SQLiteRepository) PutTask(ctx context.Context, task *Task) error {
	query := `
	INSERT INTO tasks (id, title, date, completed, synced)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		title = excluded.title,
		date = excluded.date,
		completed = excluded.completed,
		synced = excluded.synced`

	return ExecuteWrite(ctx, r.db, query, task.ID, task.Title, FormatTimeForDB(task.Date), task.Completed, task.Synced)
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := `
	SELECT id, title, date, completed, synced
	FROM tasks
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves all tasks ordered by due date
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `
	SELECT id, title, date, completed, synced
	FROM tasks
	ORDER BY date ASC, id ASC`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}

// MarkCompleted sets the completed flag for a task. Completion is
// one-directional; nothing in this repository clears the flag again.
func (r *SQLiteRepository) MarkCompleted(ctx context.Context, id int64) error {
	query := `UPDATE tasks SET completed = 1 WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}

// PutTombstone records a pending remote deletion for the given task ID.
func (r *SQLiteRepository) PutTombstone(ctx context.Context, id int64) error {
	query := `
	INSERT INTO tombstones (task_id, deleted_at)
	VALUES (?, ?)
	ON CONFLICT(task_id) DO NOTHING`

	return ExecuteWrite(ctx, r.db, query, id, FormatTimeForDB(timeNow()))
}

// ListTombstones retrieves all pending remote deletions
func (r *SQLiteRepository) ListTombstones(ctx context.Context) ([]*Tombstone, error) {
	query := `
	SELECT task_id, deleted_at
	FROM tombstones
	ORDER BY deleted_at ASC`

	return QueryMultiple(ctx, r.db, query, ScanTombstones, "tombstones")
}

// DeleteTombstone removes a tombstone once the remote deletion has landed.
// A missing row is not an error; the tombstone may already be cleared.
func (r *SQLiteRepository) DeleteTombstone(ctx context.Context, id int64) error {
	query := `DELETE FROM tombstones WHERE task_id = ?`
	return ExecuteWrite(ctx, r.db, query, id)
}
