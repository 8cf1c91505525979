package sync

import (
	"context"

	"tasksync/internal/domain"
)

// LocalStore is the durable, network-free task store. Operations are fast and
// are never issued concurrently with a reconciliation pass.
type LocalStore interface {
	Put(ctx context.Context, task domain.Task) error
	Get(ctx context.Context, id int64) (domain.Task, error)
	GetAll(ctx context.Context) ([]domain.Task, error)
	Delete(ctx context.Context, id int64) error
	MarkCompleted(ctx context.Context, id int64) error

	// Tombstones record deletions made while offline so a reconnect does not
	// resurrect the task from the remote store.
	PutTombstone(ctx context.Context, id int64) error
	ListTombstones(ctx context.Context) ([]int64, error)
	DeleteTombstone(ctx context.Context, id int64) error
}

// RemoteStore is the network-backed, authoritative task store. Every call may
// fail independently; the reconciler only invokes it after an online check.
type RemoteStore interface {
	Put(ctx context.Context, task domain.Task) error
	GetAll(ctx context.Context) ([]domain.Task, error)
	Delete(ctx context.Context, id int64) error
	MarkCompleted(ctx context.Context, id int64) error
}

// ConnectivitySource reports the last observed online/offline state.
type ConnectivitySource interface {
	Online() bool
}
