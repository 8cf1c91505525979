package cli

import (
	"context"
	"fmt"
	"strconv"

	"tasksync/internal/api"
	"tasksync/internal/errors"
)

// RemoveCommand handles the rm command
type RemoveCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewRemoveCommand creates a new rm command handler
func NewRemoveCommand(app *App) *RemoveCommand {
	return &RemoveCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the rm command
func (c *RemoveCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "rm", "usage: tasksync rm <task-id>")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errors.NewInvalidInputError("task-id", args[0], "must be a number")
	}

	if _, err := c.api.DeleteTask(ctx, id); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	fmt.Printf("Deleted task %d\n", id)
	return nil
}
