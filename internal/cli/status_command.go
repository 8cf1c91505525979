package cli

import (
	"context"
	"fmt"

	"tasksync/internal/api"
)

// StatusCommand handles the status command
type StatusCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(app *App) *StatusCommand {
	return &StatusCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the status command
func (c *StatusCommand) Execute(ctx context.Context, args []string) error {
	status, err := c.api.Status(ctx)
	if err != nil {
		return c.errorHandler.Handle("get status", err)
	}

	state := "offline"
	if status.Online {
		state = "online"
	}
	fmt.Printf("Connectivity: %s\n", state)
	fmt.Printf("Pending changes: %d\n", status.Pending)
	return nil
}
