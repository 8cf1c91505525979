package cli

import (
	"context"
	"fmt"
	"strings"

	"tasksync/internal/api"
	"tasksync/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "add", "usage: tasksync add \"title\" YYYY-MM-DD[THH:MM]")
	}

	date, err := ParseDueDate(args[len(args)-1])
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}
	title := strings.Join(args[:len(args)-1], " ")

	task, _, err := c.api.AddTask(ctx, title, date)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	if task.Synced {
		fmt.Printf("Added task %d: %s\n", task.ID, task.Title)
	} else {
		fmt.Printf("Added task %d: %s (will sync when online)\n", task.ID, task.Title)
	}
	return nil
}
