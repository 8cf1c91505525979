package cli

import (
	"context"
	"fmt"
	"strconv"

	"tasksync/internal/api"
	"tasksync/internal/errors"
)

// DoneCommand handles the done command
type DoneCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the done command
func (c *DoneCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "done", "usage: tasksync done <task-id>")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errors.NewInvalidInputError("task-id", args[0], "must be a number")
	}

	if _, err := c.api.CompleteTask(ctx, id); err != nil {
		return c.errorHandler.Handle("complete task", err)
	}

	fmt.Printf("Completed task %d\n", id)
	return nil
}
