package cli

import (
	"context"
	"fmt"

	"tasksync/internal/api"
)

// SyncCommand handles the sync command
type SyncCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewSyncCommand creates a new sync command handler
func NewSyncCommand(app *App) *SyncCommand {
	return &SyncCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the sync command
func (c *SyncCommand) Execute(ctx context.Context, args []string) error {
	if _, err := c.api.Sync(ctx); err != nil {
		return c.errorHandler.Handle("sync tasks", err)
	}

	status, err := c.api.Status(ctx)
	if err != nil {
		return c.errorHandler.Handle("sync tasks", err)
	}

	if status.Pending == 0 {
		fmt.Println("All tasks synchronized")
	} else {
		fmt.Printf("%d change(s) still pending; will retry when online\n", status.Pending)
	}
	return nil
}
