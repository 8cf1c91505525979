package cli

import (
	"context"
	"fmt"

	"tasksync/internal/api"
	"tasksync/internal/sync"
)

// ListCommand handles the list command
type ListCommand struct {
	api          api.API
	app          *App
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		api:          app.api,
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	groups, err := c.api.ListTasks(ctx)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}
	c.printGroups(groups)
	return nil
}

// printGroups prints the grouped canonical view, one bucket per day with
// past-due tasks collapsed into a single leading bucket.
func (c *ListCommand) printGroups(groups []sync.Group) {
	if len(groups) == 0 {
		fmt.Println("No tasks found")
		return
	}

	display := c.app.config.Display
	for _, group := range groups {
		if group.Past {
			fmt.Printf("%s:\n", display.PastLabel)
		} else {
			fmt.Printf("%s:\n", group.Day.Format(display.DateFormat))
		}
		for _, task := range group.Tasks {
			marker := "[ ]"
			if task.Completed {
				marker = "[x]"
			}
			suffix := ""
			if !task.Synced {
				suffix = " (not synced)"
			}
			fmt.Printf("  %s %d  %s  %s%s\n", marker, task.ID, task.Date.Format(display.TimeFormat), task.Title, suffix)
		}
	}
}
