package cli

import (
	"time"

	"tasksync/internal/api"
	"tasksync/internal/config"
	"tasksync/internal/errors"
)

// App bundles the dependencies shared by all command handlers.
type App struct {
	api    api.API
	config *config.Config
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, cfg *config.Config) *App {
	return &App{
		api:    apiInstance,
		config: cfg,
	}
}

// dueDateLayouts are the accepted forms for the add command's date argument,
// tried in order.
var dueDateLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDueDate parses a due date argument in local time.
func ParseDueDate(value string) (time.Time, error) {
	for _, layout := range dueDateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.NewInvalidInputError("date", value,
		"expected YYYY-MM-DD[THH:MM]")
}
