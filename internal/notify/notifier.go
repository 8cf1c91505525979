package notify

import "log"

// Kind identifies the event a notification reports.
type Kind string

const (
	KindOffline       Kind = "offline"
	KindOnline        Kind = "online"
	KindTaskAdded     Kind = "task-added"
	KindTaskUpdated   Kind = "task-updated"
	KindTaskDeleted   Kind = "task-deleted"
	KindSyncCompleted Kind = "sync-completed"
)

// Notifier receives high-level events from the sync engine. How the event
// reaches the user (platform notification, toast, log line) is entirely the
// implementation's concern.
type Notifier interface {
	Notify(kind Kind, title, message string)
}

// LogNotifier writes notifications to the process log.
type LogNotifier struct{}

// NewLogNotifier creates a notifier that logs events.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify implements Notifier.
func (n *LogNotifier) Notify(kind Kind, title, message string) {
	log.Printf("[%s] %s: %s", kind, title, message)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

// Notify implements Notifier.
func (NopNotifier) Notify(kind Kind, title, message string) {}
