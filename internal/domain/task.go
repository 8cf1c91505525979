package domain

import (
	"sync"
	"time"
)

// Task represents a task in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID        int64
	Title     string
	Date      time.Time
	Completed bool
	Synced    bool
}

// NewTask creates a new Task with a fresh unique ID. The Synced flag records
// whether the task was created while the remote store was reachable.
func NewTask(title string, date time.Time, online bool) Task {
	return Task{
		ID:     NextID(),
		Title:  title,
		Date:   date,
		Synced: online,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Title != "" && !t.Date.IsZero()
}

// SameContent reports whether two tasks carry the same user-visible content,
// ignoring ID and Synced. Used to detect an already-created remote copy when
// an earlier add only partially succeeded.
func (t Task) SameContent(other Task) bool {
	return t.Title == other.Title &&
		t.Date.Equal(other.Date) &&
		t.Completed == other.Completed
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

var (
	idMu   sync.Mutex
	lastID int64
)

// NextID returns a unique client-generated task ID. IDs are millisecond
// timestamps with a monotonic guard so two tasks created in the same
// millisecond never collide. Uniqueness, not time ordering, is the contract.
func NextID() int64 {
	idMu.Lock()
	defer idMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}
