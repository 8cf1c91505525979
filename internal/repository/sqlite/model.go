package sqlite

import "time"

// Task represents a task row.
// IDs are client-generated, so the primary key is not autoincrementing.
type Task struct {
	ID        int64
	Title     string
	Date      time.Time
	Completed bool
	Synced    bool
}

// Tombstone records a task deleted while the remote store was unreachable.
// The row exists until the deletion has been propagated remotely.
type Tombstone struct {
	TaskID    int64
	DeletedAt time.Time
}
